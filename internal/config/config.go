// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "First Person Hopper"
	MaxDeltaTime = 0.06
)

// Gameplay tuning. World coordinates are centred on the screen with Y up.
const (
	FireInterval   = 0.2    // seconds between shots
	EndGameGrace   = 0.5    // seconds between the ball dropping out and game over
	FloorThreshold = -420.0 // ball Y below which the round is lost

	ImpulseYMin      = 500000.0
	ImpulseYMax      = 900000.0
	ImpulseXMin      = -500000.0
	ImpulseXMax      = 500000.0
	TorqueImpulseMin = -10000000.0
	TorqueImpulseMax = 10000000.0

	Gravity = -9.81 // one pixel per metre, scaled per ball

	ReticleRadius = 5.0

	WeaponOffsetX = 350.0
	WeaponOffsetY = -400.0

	WallHalfWidth   = 100.0
	WallHalfHeight  = ScreenHeight/2 + 500.0
	WallElasticity  = 0.5
	WallFriction    = 0.0
	BallFriction    = 0.5
	BallStartZ      = -1.0
	BackgroundDepth = -10.0
)

// Effects spawned around a shot.
const (
	ContactFrameSize = 48
	ContactFrames    = 5
	ContactFPS       = 16.0

	MuzzleFrameWidth  = 432
	MuzzleFrameHeight = 80
	MuzzleFrames      = 3
	MuzzleFPS         = 24.0
	MuzzleOffsetX     = 150.0
	MuzzleOffsetY     = -100.0
	MuzzleLifetime    = 0.2

	CasingOffsetY   = 200.0
	CasingSpeedXMin = 4500.0
	CasingSpeedXMax = 5500.0
	CasingSpeedY    = 1000.0
	CasingSpinMin   = -15.0
	CasingSpinMax   = -5.0
	CasingLifetime  = 0.2
)

// UI layout, in screen pixels.
const (
	ScoreFontSize    = 80.0
	TitleFontSize    = 120.0
	SubtitleFontSize = 70.0
	ButtonFontSize   = 40.0

	MenuButtonWidth  = 220.0
	MenuButtonHeight = 65.0
	MenuButtonGap    = 75.0
	ButtonBorder     = 5.0
)

const (
	SpriteBackground = "sprites/menu_background.png"
	SpriteTitle      = "sprites/title.png"
	SpriteWeapon     = "sprites/m4.png"
	SpriteReticle    = "sprites/crosshair.png"
	SpriteWall       = "sprites/wall.png"
	SpriteContact    = "sprites/contact_sheet.png"
	SpriteMuzzle     = "sprites/fire_sheet.png"
	SpriteCasing     = "sprites/bullet_case.png"
	FontMain         = "fonts/NotoSans-Medium.ttf"

	SoundStart    = "sounds/start"
	SoundFire     = "sounds/M16"
	SoundHit      = "sounds/click"
	SoundGameOver = "sounds/gameover_sound"
	SoundHover    = "sounds/hover_button"
	SoundCasing   = "sounds/casing"
)

var (
	BackgroundColor    = color.RGBA{18, 18, 28, 255}
	ButtonNormalColor  = color.RGBA{38, 38, 38, 255}
	ButtonHoverColor   = color.RGBA{64, 64, 64, 255}
	ButtonBorderColor  = color.RGBA{0, 0, 0, 255}
	ButtonBorderHover  = color.RGBA{255, 255, 255, 255}
	ButtonTextColor    = color.RGBA{230, 230, 230, 255}
	BannerColor        = color.RGBA{255, 255, 0, 255}
	BannerTextColor    = color.RGBA{0, 0, 0, 255}
	ScorePanelColor    = color.RGBA{0, 0, 0, 255}
	TextLightColor     = color.RGBA{255, 255, 255, 255}
	MuzzleTint         = color.RGBA{255, 255, 0, 255}
	PlaceholderWall    = color.RGBA{90, 90, 110, 255}
	PlaceholderReticle = color.RGBA{255, 60, 60, 255}
	PlaceholderWeapon  = color.RGBA{60, 60, 60, 255}
)
