// internal/system/utils.go
package system

// System is advanced once per frame.
type System interface {
	Update(deltaTime float64)
}

// Pipeline runs systems in a fixed order.
type Pipeline []System

func (p Pipeline) Update(deltaTime float64) {
	for _, s := range p {
		s.Update(deltaTime)
	}
}
