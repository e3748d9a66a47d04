// internal/score/tracker.go
package score

import (
	"first-person-hopper/internal/defs"

	"github.com/rs/zerolog"
)

// Snapshot is a read-only copy of the tracker, handed to UI consumers.
type Snapshot struct {
	Current int
	High    int
	Bests   map[defs.Difficulty]int
}

// Tracker keeps the running round score and the best score per difficulty.
// One Tracker lives for the whole process; scores are never persisted.
type Tracker struct {
	current int
	high    int
	bests   map[defs.Difficulty]int
	log     zerolog.Logger
}

func NewTracker(logger zerolog.Logger) *Tracker {
	return &Tracker{
		bests: make(map[defs.Difficulty]int, len(defs.Difficulties)),
		log:   logger,
	}
}

// RecordHit adds one point to the running round.
func (t *Tracker) RecordHit() {
	t.current++
	t.log.Debug().Int("score", t.current).Msg("hit")
}

// ResetRound zeroes the running score. Bests and high are kept.
func (t *Tracker) ResetRound() {
	t.current = 0
}

// CommitRound folds the running score into the best for d and sets high to
// the best for d. It is not idempotent on its own; callers commit once per
// round.
func (t *Tracker) CommitRound(d defs.Difficulty) {
	best := t.bests[d]
	if t.current > best {
		best = t.current
		t.bests[d] = best
	}
	t.high = best

	t.log.Info().
		Str("difficulty", d.String()).
		Int("score", t.current).
		Int("best", best).
		Msg("round committed")
}

func (t *Tracker) Current() int { return t.current }

func (t *Tracker) High() int { return t.high }

// Best returns the best committed score for d, zero if none.
func (t *Tracker) Best(d defs.Difficulty) int { return t.bests[d] }

func (t *Tracker) Snapshot() Snapshot {
	bests := make(map[defs.Difficulty]int, len(t.bests))
	for d, b := range t.bests {
		bests[d] = b
	}
	return Snapshot{Current: t.current, High: t.high, Bests: bests}
}
