package state

import (
	"testing"

	game "first-person-hopper/internal/app"
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/defs"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/utils"

	"github.com/rs/zerolog"
)

type stubInput struct {
	x, y    float64
	inside  bool
	pressed bool
}

func (s *stubInput) CursorPosition() (float64, float64, bool) { return s.x, s.y, s.inside }
func (s *stubInput) FireJustPressed() bool                    { return s.pressed }

type stubCursor struct{ captured bool }

func (c *stubCursor) Capture() { c.captured = true }
func (c *stubCursor) Release() { c.captured = false }

type screenLog struct{ screens []string }

func (l *screenLog) OnEvent(e event.Event) {
	l.screens = append(l.screens, e.Data.(event.ScreenData).Screen)
}

type harness struct {
	sm     *StateMachine
	game   *game.Game
	input  *stubInput
	cursor *stubCursor
	menu   *MenuState
	play   *GameState
	over   *GameOverState
}

func newHarness() *harness {
	in := &stubInput{}
	cursor := &stubCursor{}
	g := game.NewGame(game.Options{
		Input:  in,
		Cursor: cursor,
		Rng:    &utils.SequenceSource{Values: []float64{0.5}},
		Logger: zerolog.Nop(),
	})
	sm := NewStateMachine(g.ECS, zerolog.Nop())
	g.Navigator = sm
	h := &harness{
		sm:     sm,
		game:   g,
		input:  in,
		cursor: cursor,
		menu:   NewMenuState(g),
		play:   NewGameState(g),
		over:   NewGameOverState(g),
	}
	sm.Register(h.menu, h.play, h.over)
	return h
}

func (h *harness) click(x, y float64) {
	h.input.x, h.input.y, h.input.inside, h.input.pressed = x, y, true, true
	h.sm.Update(1.0 / 60)
	h.input.pressed = false
}

func TestSetState_TearsDownPreviousScreen(t *testing.T) {
	h := newHarness()
	h.sm.SetState(h.menu)
	if h.game.ECS.CountScreen(component.MainMenu) == 0 {
		t.Fatal("menu spawned nothing")
	}

	h.sm.SetState(h.play)
	if h.game.ECS.CountScreen(component.MainMenu) != 0 {
		t.Fatal("menu entities survived the switch")
	}
	if h.game.ECS.CountScreen(component.InGame) == 0 {
		t.Fatal("round spawned nothing")
	}
	if !h.cursor.captured {
		t.Fatal("cursor should be captured in game")
	}
	if h.game.ECS.Count(component.Background) != 1 {
		t.Fatal("background must persist across screens")
	}
}

func TestSetState_ReenterLeavesNoDuplicates(t *testing.T) {
	h := newHarness()
	h.sm.SetState(h.over)
	first := h.game.ECS.CountScreen(component.GameOver)

	// Entering the same screen twice in a row keeps a single copy.
	h.over.Enter()
	h.sm.SetState(h.over)
	if got := h.game.ECS.CountScreen(component.GameOver); got != first {
		t.Fatalf("game over entities = %d, want %d", got, first)
	}
}

func TestGoTo_DefersDuringUpdate(t *testing.T) {
	h := newHarness()
	h.sm.SetState(h.menu)

	// Leftmost button is EASY.
	h.click(300, 360)
	if h.sm.Current() != h.play {
		t.Fatalf("current = %v", h.sm.Current().Screen())
	}
	if h.game.Difficulty != defs.Easy {
		t.Fatalf("difficulty = %v", h.game.Difficulty)
	}
	if h.game.ECS.Count(component.Ball) != 1 {
		t.Fatal("expected exactly one ball")
	}
}

func TestGoTo_UnknownScreenIsIgnored(t *testing.T) {
	in := &stubInput{}
	g := game.NewGame(game.Options{Input: in, Logger: zerolog.Nop()})
	sm := NewStateMachine(g.ECS, zerolog.Nop())
	sm.GoTo(component.GameOver)
	if sm.Current() != nil {
		t.Fatal("nothing is registered, nothing should run")
	}
}

func TestFullSession(t *testing.T) {
	h := newHarness()
	entered := &screenLog{}
	h.game.EventDispatcher.Subscribe(event.ScreenEntered, entered)
	h.sm.SetState(h.menu)

	// Pick EASY, hit the hanging ball once, then let it fall out.
	h.click(300, 360)
	cx, cy := utils.WorldToScreen(0, 0)
	h.click(cx, cy)
	if h.game.Scores.Current() != 1 {
		t.Fatalf("score = %d", h.game.Scores.Current())
	}
	for i := 0; i < 60*60 && h.sm.Current() == h.play; i++ {
		h.sm.Update(1.0 / 60)
	}
	if h.sm.Current() != h.over {
		t.Fatal("round never ended")
	}
	if h.cursor.captured {
		t.Fatal("cursor should be released on game over")
	}
	if h.game.ECS.CountScreen(component.InGame) != 0 {
		t.Fatal("in-game entities survived game over")
	}
	if h.game.Scores.Best(defs.Easy) != 1 {
		t.Fatalf("easy best = %d", h.game.Scores.Best(defs.Easy))
	}

	// RESTART is the right-hand button and keeps the difficulty.
	h.click(390+200+100+50, 590)
	if h.sm.Current() != h.play || h.game.Difficulty != defs.Easy {
		t.Fatal("restart should start another easy round")
	}
	if h.game.Scores.Current() != 0 {
		t.Fatal("restart should reset the running score")
	}

	want := []string{"main_menu", "in_game", "game_over", "in_game"}
	if len(entered.screens) != len(want) {
		t.Fatalf("screens = %v", entered.screens)
	}
	for i := range want {
		if entered.screens[i] != want[i] {
			t.Fatalf("screens = %v, want %v", entered.screens, want)
		}
	}
}
