// internal/render/renderer.go
package render

import (
	"image"
	"image/color"
	"sort"

	"first-person-hopper/internal/assets"
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// Renderer draws sprites back to front by Z, then UI nodes by layer.
type Renderer struct {
	ecs     *entity.ECS
	assets  *assets.Manager
	sprites []*donburi.Entry
	nodes   []*donburi.Entry
}

func NewRenderer(ecs *entity.ECS, manager *assets.Manager) *Renderer {
	return &Renderer{ecs: ecs, assets: manager}
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	r.sprites = r.sprites[:0]
	r.ecs.Each(func(entry *donburi.Entry) {
		if entry.HasComponent(component.Sprite) || entry.HasComponent(component.SpriteSheet) {
			r.sprites = append(r.sprites, entry)
		}
	}, component.Transform)
	sort.SliceStable(r.sprites, func(i, j int) bool {
		return component.Transform.Get(r.sprites[i]).Z < component.Transform.Get(r.sprites[j]).Z
	})
	for _, entry := range r.sprites {
		r.drawSprite(screen, entry)
	}

	r.nodes = r.nodes[:0]
	r.ecs.Each(func(entry *donburi.Entry) {
		r.nodes = append(r.nodes, entry)
	}, component.Node)
	sort.SliceStable(r.nodes, func(i, j int) bool {
		return component.Node.Get(r.nodes[i]).Layer < component.Node.Get(r.nodes[j]).Layer
	})
	for _, entry := range r.nodes {
		r.drawNode(screen, entry)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, entry *donburi.Entry) {
	t := component.Transform.Get(entry)
	op := &ebiten.DrawImageOptions{}

	var img *ebiten.Image
	var w, h float64
	if entry.HasComponent(component.SpriteSheet) {
		sheet := component.SpriteSheet.Get(entry)
		atlas := r.assets.Sheet(sheet.Image, sheet.FrameWidth, sheet.FrameHeight, sheet.Columns, sheet.Rows)
		img = frame(atlas, sheet)
		w, h = float64(sheet.FrameWidth), float64(sheet.FrameHeight)
		if sheet.Tint != nil {
			op.ColorScale.ScaleWithColor(sheet.Tint)
		}
		if sheet.Glow {
			op.Blend = ebiten.BlendLighter
		}
	} else {
		s := component.Sprite.Get(entry)
		if s.Hidden {
			return
		}
		img = r.assets.Image(s.Image, s.Width, s.Height)
		w, h = s.Width, s.Height
		if s.Tint != nil {
			op.ColorScale.ScaleWithColor(s.Tint)
		}
		if s.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
	}

	bw, bh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if w <= 0 || h <= 0 {
		w, h = bw, bh
	}
	op.GeoM.Scale(w/bw, h/bh)
	op.GeoM.Translate(-w/2, -h/2)
	// World angles turn counter-clockwise with Y up; the screen's Y points down.
	op.GeoM.Rotate(-t.Rotation)
	sx, sy := utils.WorldToScreen(t.X, t.Y)
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(img, op)
}

func frame(atlas *ebiten.Image, sheet *component.SpriteSheetData) *ebiten.Image {
	if sheet.Columns <= 0 || sheet.FrameWidth <= 0 || sheet.FrameHeight <= 0 {
		return atlas
	}
	col := sheet.Index % sheet.Columns
	row := sheet.Index / sheet.Columns
	x, y := col*sheet.FrameWidth, row*sheet.FrameHeight
	rect := image.Rect(x, y, x+sheet.FrameWidth, y+sheet.FrameHeight).Intersect(atlas.Bounds())
	if rect.Empty() {
		return atlas
	}
	return atlas.SubImage(rect).(*ebiten.Image)
}

func (r *Renderer) drawNode(screen *ebiten.Image, entry *donburi.Entry) {
	rect := component.Node.Get(entry).Rect

	if entry.HasComponent(component.Panel) {
		p := component.Panel.Get(entry)
		if p.Fill != nil {
			vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), p.Fill, true)
		}
		if p.Border != nil && p.BorderWidth > 0 {
			vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), float32(p.BorderWidth), p.Border, true)
		}
	}

	if entry.HasComponent(component.ImageNode) {
		img := r.assets.Image(component.ImageNode.Get(entry).Image, rect.W, rect.H)
		bw, bh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		scale := min(rect.W/bw, rect.H/bh)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		cx, cy := rect.Center()
		op.GeoM.Translate(cx-bw*scale/2, cy-bh*scale/2)
		screen.DrawImage(img, op)
	}

	if entry.HasComponent(component.Label) {
		l := component.Label.Get(entry)
		face := r.assets.Face(l.Size)
		clr := l.Color
		if clr == nil {
			clr = color.White
		}
		bounds := text.BoundString(face, l.Text)
		cx, cy := rect.Center()
		x := int(cx) - bounds.Dx()/2 - bounds.Min.X
		y := int(cy) - bounds.Dy()/2 - bounds.Min.Y
		text.Draw(screen, l.Text, face, x, y, clr)
	}
}
