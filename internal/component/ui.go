// internal/component/ui.go
package component

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned box in screen pixels (origin top-left).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// NodeData positions a UI element. Layer orders drawing among UI nodes.
type NodeData struct {
	Rect  Rect
	Layer int
}

var Node = donburi.NewComponentType[NodeData]()

// PanelData fills a node's rect.
type PanelData struct {
	Fill        color.Color
	Border      color.Color
	BorderWidth float64
}

var Panel = donburi.NewComponentType[PanelData]()

// LabelData draws text centred in a node's rect.
type LabelData struct {
	Text  string
	Size  float64
	Color color.Color
}

var Label = donburi.NewComponentType[LabelData]()

// ImageNodeData draws an asset centred in a node's rect.
type ImageNodeData struct {
	Image string
}

var ImageNode = donburi.NewComponentType[ImageNodeData]()

// ButtonAction is what pressing a button asks for.
type ButtonAction int

const (
	ActionPlayEasy ButtonAction = iota
	ActionPlayMedium
	ActionPlayHard
	ActionHome
	ActionRestart
)

// ButtonData makes a node's rect clickable. Panel colours follow Hovered.
type ButtonData struct {
	Action  ButtonAction
	Hovered bool
}

var Button = donburi.NewComponentType[ButtonData]()

// ScoreText marks the label showing the running score.
var ScoreText = donburi.NewTag()
