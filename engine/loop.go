package engine

import (
	"sync/atomic"

	"github.com/milk9111/poimap/render"
)

// Loop gates the per-tick render. The host calls Tick once per frame; while
// stopped, ticks draw nothing and the surface keeps its last frame.
type Loop struct {
	engine  *Engine
	running atomic.Bool
}

func NewLoop(e *Engine) *Loop {
	return &Loop{engine: e}
}

func (l *Loop) Start() { l.running.Store(true) }

func (l *Loop) Stop() { l.running.Store(false) }

// Toggle flips between running and stopped and returns the new state.
func (l *Loop) Toggle() bool {
	for {
		cur := l.running.Load()
		if l.running.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

func (l *Loop) Running() bool { return l.running.Load() }

// Tick renders a frame if the loop is running and reports whether it did.
func (l *Loop) Tick(s render.Surface) bool {
	if !l.running.Load() || l.engine.State() != StateRendering {
		return false
	}
	l.engine.Render(s)
	return true
}
