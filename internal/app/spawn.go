// internal/app/spawn.go
package app

import (
	"fmt"
	"image/color"

	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/defs"
	"first-person-hopper/internal/physics"

	"github.com/yohamta/donburi"
)

const (
	weaponSpriteSize  = 420.0
	reticleSpriteSize = 40.0
	hudLayer          = 10
)

func (g *Game) spawnEndGameTimer() {
	entry := g.ECS.Spawn(component.InGame, component.EndGameTimer)
	component.EndGameTimer.SetValue(entry, component.NewEndGameTimer(config.EndGameGrace))
}

func (g *Game) spawnWeapon() {
	entry := g.ECS.Spawn(component.InGame, component.Weapon, component.Transform, component.Sprite)
	component.Weapon.SetValue(entry, component.WeaponData{Cooldown: component.NewCooldown(config.FireInterval)})
	component.Transform.SetValue(entry, component.TransformData{
		X: config.WeaponOffsetX,
		Y: config.WeaponOffsetY,
		Z: 4,
	})
	component.Sprite.SetValue(entry, component.SpriteData{
		Image:  config.SpriteWeapon,
		Width:  weaponSpriteSize,
		Height: weaponSpriteSize,
	})
}

func (g *Game) spawnReticle(colliders *physics.Colliders) *physics.Collider {
	collider := colliders.AddCircle(0, 0, config.ReticleRadius, physics.TagReticle)
	entry := g.ECS.Spawn(component.InGame, component.Reticle, component.Transform, component.Sprite)
	component.Reticle.SetValue(entry, component.ReticleData{Collider: collider})
	component.Transform.SetValue(entry, component.TransformData{Z: 5})
	component.Sprite.SetValue(entry, component.SpriteData{
		Image:  config.SpriteReticle,
		Width:  reticleSpriteSize,
		Height: reticleSpriteSize,
	})
	return collider
}

func (g *Game) spawnWalls(world *physics.World) {
	for _, side := range []float64{-1, 1} {
		x := side * config.ScreenWidth / 2
		world.AddWall(x, 0, config.WallHalfWidth, config.WallHalfHeight, config.WallElasticity, config.WallFriction)

		entry := g.ECS.Spawn(component.InGame, component.Wall, component.Transform, component.Sprite)
		component.Transform.SetValue(entry, component.TransformData{X: x})
		component.Sprite.SetValue(entry, component.SpriteData{
			Image:  config.SpriteWall,
			FlipX:  side > 0,
			Width:  config.WallHalfWidth * 2,
			Height: config.WallHalfHeight * 2,
		})
	}
}

// spawnBall hangs the ball at the origin. It stays put until the first hit.
func (g *Game) spawnBall(world *physics.World, colliders *physics.Colliders, p defs.DifficultyProfile) *donburi.Entry {
	entry := g.ECS.Spawn(component.InGame, component.Ball, component.Transform, component.Sprite)
	component.Ball.SetValue(entry, component.BallData{
		Difficulty: p.Difficulty,
		Body: world.AddBall(physics.BallSpec{
			Radius:       p.Radius,
			Density:      p.Density,
			GravityScale: p.GravityScale,
			Restitution:  p.Restitution,
			Friction:     config.BallFriction,
			Asleep:       true,
		}),
		Collider: colliders.AddCircle(0, 0, p.Radius, physics.TagTarget),
	})
	component.Transform.SetValue(entry, component.TransformData{Z: config.BallStartZ})
	component.Sprite.SetValue(entry, component.SpriteData{
		Image:  p.Sprite,
		Width:  p.Radius * 2,
		Height: p.Radius * 2,
	})
	return entry
}

func (g *Game) spawnScoreText() {
	entry := g.ECS.Spawn(component.InGame, component.ScoreText, component.Node, component.Label)
	component.Node.SetValue(entry, component.NodeData{
		Rect:  component.Rect{X: config.ScreenWidth/2 - 200, Y: 20, W: 400, H: 100},
		Layer: hudLayer,
	})
	component.Label.SetValue(entry, component.LabelData{
		Text:  "0",
		Size:  config.ScoreFontSize,
		Color: config.TextLightColor,
	})
}

// SpawnMainMenu builds the title and one play button per difficulty, each
// showing that difficulty's best score.
func (g *Game) SpawnMainMenu() {
	title := g.ECS.Spawn(component.MainMenu, component.Node, component.ImageNode)
	component.Node.SetValue(title, component.NodeData{
		Rect: component.Rect{X: config.ScreenWidth/2 - 400, Y: 60, W: 800, H: 220},
	})
	component.ImageNode.SetValue(title, component.ImageNodeData{Image: config.SpriteTitle})

	actions := map[defs.Difficulty]component.ButtonAction{
		defs.Easy:   component.ActionPlayEasy,
		defs.Medium: component.ActionPlayMedium,
		defs.Hard:   component.ActionPlayHard,
	}
	n := float64(len(defs.Difficulties))
	rowWidth := n*config.MenuButtonWidth + (n-1)*config.MenuButtonGap
	x := (config.ScreenWidth - rowWidth) / 2
	y := config.ScreenHeight/2 + 3.5 - config.MenuButtonHeight/2
	for _, d := range defs.Difficulties {
		rect := component.Rect{X: x, Y: y, W: config.MenuButtonWidth, H: config.MenuButtonHeight}
		text := fmt.Sprintf("%s: %d", d.Label(), g.Scores.Best(d))
		g.spawnButton(component.MainMenu, actions[d], rect, text, g.Profile(d).LabelColor)
		x += config.MenuButtonWidth + config.MenuButtonGap
	}
}

// SpawnGameOver builds the banner, the score panels and the HOME and
// RESTART buttons.
func (g *Game) SpawnGameOver() {
	g.spawnPanel(component.GameOver, component.Rect{X: 240, Y: 240, W: 800, H: 100},
		config.BannerColor, "GAME OVER", config.TitleFontSize*0.6, config.BannerTextColor)

	panel := component.Rect{X: (config.ScreenWidth - 550) / 2, Y: 365, W: 550, H: 75}
	g.spawnPanel(component.GameOver, panel, config.ScorePanelColor,
		fmt.Sprintf("SCORE: %d", g.Scores.Current()), config.ButtonFontSize, config.TextLightColor)
	panel.Y += 100
	g.spawnPanel(component.GameOver, panel, config.ScorePanelColor,
		fmt.Sprintf("HIGH SCORE: %d", g.Scores.High()), config.ButtonFontSize, config.TextLightColor)

	const w, h, gap = 200.0, 65.0, 100.0
	x := (config.ScreenWidth - (2*w + gap)) / 2
	g.spawnButton(component.GameOver, component.ActionHome,
		component.Rect{X: x, Y: 565, W: w, H: h}, "MAIN MENU", config.ButtonTextColor)
	g.spawnButton(component.GameOver, component.ActionRestart,
		component.Rect{X: x + w + gap, Y: 565, W: w, H: h}, "RESTART", config.ButtonTextColor)
}

func (g *Game) spawnPanel(screen component.Screen, rect component.Rect, fill color.Color, text string, size float64, textColor color.Color) *donburi.Entry {
	entry := g.ECS.Spawn(screen, component.Node, component.Panel)
	component.Node.SetValue(entry, component.NodeData{Rect: rect})
	component.Panel.SetValue(entry, component.PanelData{Fill: fill})
	g.spawnLabel(entry, rect, text, size, textColor)
	return entry
}

func (g *Game) spawnButton(screen component.Screen, action component.ButtonAction, rect component.Rect, text string, textColor color.Color) *donburi.Entry {
	entry := g.ECS.Spawn(screen, component.Node, component.Panel, component.Button)
	component.Node.SetValue(entry, component.NodeData{Rect: rect})
	component.Panel.SetValue(entry, component.PanelData{
		Fill:        config.ButtonNormalColor,
		Border:      config.ButtonBorderColor,
		BorderWidth: config.ButtonBorder,
	})
	component.Button.SetValue(entry, component.ButtonData{Action: action})
	g.spawnLabel(entry, rect, text, config.ButtonFontSize, textColor)
	return entry
}

func (g *Game) spawnLabel(parent *donburi.Entry, rect component.Rect, text string, size float64, textColor color.Color) {
	if textColor == nil || textColor == (color.RGBA{}) {
		textColor = config.ButtonTextColor
	}
	label := g.ECS.SpawnChild(parent, component.Node, component.Label)
	component.Node.SetValue(label, component.NodeData{Rect: rect, Layer: 1})
	component.Label.SetValue(label, component.LabelData{Text: text, Size: size, Color: textColor})
}
