package animation

import "cutekm/internal/core/companion"

// Cursor tracks which frame of which state is shown next.
type Cursor interface {
	State() companion.State
	FrameIndex() int
	Advance(length int)
}

// Engine paints frames from a library following a cursor.
type Engine[F any] struct {
	library      Library[F]
	cursor       Cursor
	updateSprite func(F)
}

// New creates a new animation engine.
func New[F any](library Library[F], cursor Cursor, updateSprite func(F)) *Engine[F] {
	return &Engine[F]{
		library:      library,
		cursor:       cursor,
		updateSprite: updateSprite,
	}
}

// Tick shows the current frame and advances the cursor. It reports false
// when the active set is empty.
func (engine *Engine[F]) Tick() bool {
	frames := engine.library.For(engine.cursor.State())
	if len(frames) == 0 {
		return false
	}
	index := engine.cursor.FrameIndex() % len(frames)
	if engine.updateSprite != nil {
		engine.updateSprite(frames[index])
	}
	engine.cursor.Advance(len(frames))
	return true
}
