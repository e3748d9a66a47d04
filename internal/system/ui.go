// internal/system/ui.go
package system

import (
	"strconv"

	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/input"
	"first-person-hopper/internal/score"

	"github.com/yohamta/donburi"
)

// HUDSystem keeps the in-game score label current.
type HUDSystem struct {
	ecs    *entity.ECS
	scores *score.Tracker
}

func NewHUDSystem(ecs *entity.ECS, scores *score.Tracker) *HUDSystem {
	return &HUDSystem{ecs: ecs, scores: scores}
}

func (s *HUDSystem) Update(deltaTime float64) {
	text := strconv.Itoa(s.scores.Current())
	s.ecs.Each(func(entry *donburi.Entry) {
		component.Label.Get(entry).Text = text
	}, component.ScoreText, component.Label)
}

// ButtonSystem highlights the button under the cursor and reports presses.
type ButtonSystem struct {
	ecs             *entity.ECS
	input           input.Source
	eventDispatcher *event.Dispatcher
	onPress         func(component.ButtonAction)
}

func NewButtonSystem(ecs *entity.ECS, in input.Source, eventDispatcher *event.Dispatcher, onPress func(component.ButtonAction)) *ButtonSystem {
	return &ButtonSystem{
		ecs:             ecs,
		input:           in,
		eventDispatcher: eventDispatcher,
		onPress:         onPress,
	}
}

func (s *ButtonSystem) Update(deltaTime float64) {
	x, y, ok := s.input.CursorPosition()
	clicked := s.input.FireJustPressed()

	pressed := -1
	s.ecs.Each(func(entry *donburi.Entry) {
		button := component.Button.Get(entry)
		hovered := ok && component.Node.Get(entry).Rect.Contains(x, y)
		if hovered && !button.Hovered {
			s.eventDispatcher.Dispatch(event.Event{Type: event.ButtonHovered})
		}
		button.Hovered = hovered
		styleButton(entry, hovered)
		if hovered && clicked {
			pressed = int(button.Action)
		}
	}, component.Button, component.Node)

	// Callbacks may tear the screen down, so run them outside the query.
	if pressed >= 0 && s.onPress != nil {
		s.onPress(component.ButtonAction(pressed))
	}
}

func styleButton(entry *donburi.Entry, hovered bool) {
	if !entry.HasComponent(component.Panel) {
		return
	}
	panel := component.Panel.Get(entry)
	if hovered {
		panel.Fill = config.ButtonHoverColor
		panel.Border = config.ButtonBorderHover
	} else {
		panel.Fill = config.ButtonNormalColor
		panel.Border = config.ButtonBorderColor
	}
}
