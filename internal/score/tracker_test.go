package score

import (
	"testing"

	"first-person-hopper/internal/defs"

	"github.com/rs/zerolog"
)

func newTestTracker() *Tracker {
	return NewTracker(zerolog.Nop())
}

func seedBest(tr *Tracker, d defs.Difficulty, best int) {
	tr.bests[d] = best
}

func TestRecordHit_Monotonic(t *testing.T) {
	for _, n := range []int{0, 1, 7, 250} {
		tr := newTestTracker()
		tr.RecordHit()
		before := tr.Current()
		for i := 0; i < n; i++ {
			tr.RecordHit()
		}
		if got := tr.Current(); got != before+n {
			t.Fatalf("after %d hits: got %d, want %d", n, got, before+n)
		}
	}
}

func TestCommitRound_NeverDecreasesBest(t *testing.T) {
	cases := []struct {
		name    string
		best    int
		current int
		want    int
	}{
		{"beats", 2, 3, 3},
		{"ties", 5, 5, 5},
		{"below", 10, 4, 10},
		{"first", 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := newTestTracker()
			seedBest(tr, defs.Medium, c.best)
			for i := 0; i < c.current; i++ {
				tr.RecordHit()
			}
			tr.CommitRound(defs.Medium)
			if got := tr.Best(defs.Medium); got != c.want {
				t.Fatalf("best = %d, want %d", got, c.want)
			}
			if tr.High() != c.want {
				t.Fatalf("high = %d, want max(best, current) = %d", tr.High(), c.want)
			}
		})
	}
}

func TestCommitRound_OnlyTouchesOwnBucket(t *testing.T) {
	tr := newTestTracker()
	seedBest(tr, defs.Easy, 4)
	seedBest(tr, defs.Hard, 9)
	for i := 0; i < 6; i++ {
		tr.RecordHit()
	}
	tr.CommitRound(defs.Medium)

	if tr.Best(defs.Easy) != 4 || tr.Best(defs.Hard) != 9 {
		t.Fatalf("other buckets changed: %+v", tr.Snapshot().Bests)
	}
	if tr.Best(defs.Medium) != 6 {
		t.Fatalf("medium best = %d, want 6", tr.Best(defs.Medium))
	}
}

func TestScenario_EasyNewBest(t *testing.T) {
	tr := newTestTracker()
	seedBest(tr, defs.Easy, 2)
	tr.ResetRound()
	for i := 0; i < 3; i++ {
		tr.RecordHit()
	}
	if tr.Current() != 3 {
		t.Fatalf("current = %d, want 3", tr.Current())
	}
	tr.CommitRound(defs.Easy)
	if tr.Best(defs.Easy) != 3 || tr.High() != 3 {
		t.Fatalf("easy best = %d high = %d, want 3/3", tr.Best(defs.Easy), tr.High())
	}
}

func TestScenario_HardNoHits(t *testing.T) {
	tr := newTestTracker()
	seedBest(tr, defs.Hard, 10)
	tr.ResetRound()
	tr.CommitRound(defs.Hard)
	if tr.Best(defs.Hard) != 10 || tr.High() != 10 {
		t.Fatalf("hard best = %d high = %d, want 10/10", tr.Best(defs.Hard), tr.High())
	}
}

func TestResetRound_KeepsBests(t *testing.T) {
	tr := newTestTracker()
	tr.RecordHit()
	tr.RecordHit()
	tr.CommitRound(defs.Hard)
	tr.ResetRound()
	if tr.Current() != 0 {
		t.Fatalf("current = %d after reset", tr.Current())
	}
	if tr.Best(defs.Hard) != 2 || tr.High() != 2 {
		t.Fatal("reset must keep bests and high")
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	tr := newTestTracker()
	seedBest(tr, defs.Easy, 1)
	snap := tr.Snapshot()
	snap.Bests[defs.Easy] = 99
	if tr.Best(defs.Easy) != 1 {
		t.Fatal("snapshot mutation leaked into tracker")
	}
}
