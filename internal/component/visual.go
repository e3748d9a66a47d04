// internal/component/visual.go
package component

import "github.com/yohamta/donburi"

// AnimationData is a sprite-sheet clip: which sheet frames to show and how
// fast. A Once clip stops on its last frame; otherwise it loops.
type AnimationData struct {
	Frames []int
	FPS    float64
	Once   bool
}

// FrameRange builds the frame list first..last inclusive.
func FrameRange(first, last int) []int {
	frames := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		frames = append(frames, i)
	}
	return frames
}

var Animation = donburi.NewComponentType[AnimationData]()

// AnimationStateData is the playback position within an AnimationData.
type AnimationStateData struct {
	Position int     // index into AnimationData.Frames
	Elapsed  float64 // time spent on the current frame
	Done     bool
}

// Update advances playback by dt seconds.
func (s *AnimationStateData) Update(anim *AnimationData, dt float64) {
	if s.Done || len(anim.Frames) == 0 || anim.FPS <= 0 || dt <= 0 {
		return
	}
	frameTime := 1 / anim.FPS
	s.Elapsed += dt
	for s.Elapsed+timerEpsilon >= frameTime {
		s.Elapsed -= frameTime
		if s.Position+1 < len(anim.Frames) {
			s.Position++
			continue
		}
		if anim.Once {
			s.Done = true
			s.Elapsed = 0
			return
		}
		s.Position = 0
	}
}

// FrameIndex returns the sheet frame to draw.
func (s *AnimationStateData) FrameIndex(anim *AnimationData) int {
	if len(anim.Frames) == 0 {
		return 0
	}
	return anim.Frames[s.Position]
}

var AnimationState = donburi.NewComponentType[AnimationStateData]()

// LifetimeData despawns its entity once Remaining reaches zero.
type LifetimeData struct {
	Remaining float64
}

var Lifetime = donburi.NewComponentType[LifetimeData]()

// Effect markers.
var (
	ContactSplash = donburi.NewTag()
	MuzzleFlash   = donburi.NewTag()
	Casing        = donburi.NewTag()
)
