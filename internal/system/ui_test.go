package system

import (
	"testing"

	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/score"

	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

func spawnButton(ecs *entity.ECS, action component.ButtonAction, rect component.Rect) *donburi.Entry {
	entry := ecs.Spawn(component.MainMenu, component.Node, component.Panel, component.Button)
	component.Node.SetValue(entry, component.NodeData{Rect: rect})
	component.Panel.SetValue(entry, component.PanelData{Fill: config.ButtonNormalColor, Border: config.ButtonBorderColor})
	component.Button.SetValue(entry, component.ButtonData{Action: action})
	return entry
}

func TestButtons_HoverStylesAndNotifiesOnce(t *testing.T) {
	ecs := entity.NewECS(zerolog.Nop())
	events := event.NewDispatcher()
	rec := &recorder{}
	events.Subscribe(event.ButtonHovered, rec)
	in := &fakeInput{x: 50, y: 50, inside: true}
	button := spawnButton(ecs, component.ActionPlayEasy, component.Rect{X: 0, Y: 0, W: 100, H: 100})
	sys := NewButtonSystem(ecs, in, events, nil)

	sys.Update(0)
	sys.Update(0)
	if rec.count(event.ButtonHovered) != 1 {
		t.Fatalf("hover events = %d, want 1", rec.count(event.ButtonHovered))
	}
	if component.Panel.Get(button).Fill != config.ButtonHoverColor {
		t.Fatal("hovered button should be highlighted")
	}

	in.x = 500
	sys.Update(0)
	if component.Button.Get(button).Hovered || component.Panel.Get(button).Border != config.ButtonBorderColor {
		t.Fatal("button should return to normal when the cursor leaves")
	}
}

func TestButtons_PressReportsAction(t *testing.T) {
	ecs := entity.NewECS(zerolog.Nop())
	var got []component.ButtonAction
	in := &fakeInput{x: 150, y: 10, inside: true, pressed: true}
	spawnButton(ecs, component.ActionHome, component.Rect{X: 0, Y: 0, W: 100, H: 100})
	spawnButton(ecs, component.ActionRestart, component.Rect{X: 100, Y: 0, W: 100, H: 100})
	sys := NewButtonSystem(ecs, in, event.NewDispatcher(), func(a component.ButtonAction) {
		got = append(got, a)
		ecs.DespawnScreen(component.MainMenu)
	})

	sys.Update(0)
	if len(got) != 1 || got[0] != component.ActionRestart {
		t.Fatalf("actions = %v", got)
	}

	in.x = 1000
	sys.Update(0)
	if len(got) != 1 {
		t.Fatal("click outside every button should do nothing")
	}
}

func TestHUD_ShowsCurrentScore(t *testing.T) {
	ecs := entity.NewECS(zerolog.Nop())
	scores := score.NewTracker(zerolog.Nop())
	label := ecs.Spawn(component.InGame, component.ScoreText, component.Label)

	hud := NewHUDSystem(ecs, scores)
	hud.Update(0)
	if component.Label.Get(label).Text != "0" {
		t.Fatalf("label = %q", component.Label.Get(label).Text)
	}
	for i := 0; i < 12; i++ {
		scores.RecordHit()
	}
	hud.Update(0)
	if component.Label.Get(label).Text != "12" {
		t.Fatalf("label = %q", component.Label.Get(label).Text)
	}
}
