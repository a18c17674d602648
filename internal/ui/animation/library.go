package animation

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"

	"cutekm/internal/core/companion"
	"cutekm/internal/core/model"

	"fyne.io/fyne/v2"
)

// ErrMissingFrames indicates a state has no frames after loading.
var ErrMissingFrames = errors.New("missing frames")

// Library holds one ordered frame set per state.
type Library[F any] [companion.StateCount][]F

// For returns the frame set of state, falling back to watching for
// states outside the enum.
func (library *Library[F]) For(state companion.State) []F {
	if !state.Valid() {
		return library[companion.StateWatching]
	}
	return library[state]
}

// Len returns the number of frames of state.
func (library *Library[F]) Len(state companion.State) int {
	return len(library.For(state))
}

// ResourceOpener resolves an embedded resource by name.
type ResourceOpener func(name string) (fyne.Resource, error)

// LoadLibrary decodes every frame listed in sets. Every state must be
// covered with at least one frame.
func LoadLibrary(sets []model.FrameSetConfig, open ResourceOpener) (Library[image.Image], error) {
	var library Library[image.Image]
	for _, set := range sets {
		state, err := companion.ParseState(set.State)
		if err != nil {
			return library, fmt.Errorf("load frames: %w", err)
		}
		frames := make([]image.Image, 0, set.Count)
		for index := 1; index <= set.Count; index++ {
			name := fmt.Sprintf("%s_%d", set.Prefix, index)
			resource, err := open(name)
			if err != nil {
				return library, fmt.Errorf("load frames %s: %w", state, err)
			}
			frame, _, err := image.Decode(bytes.NewReader(resource.Content()))
			if err != nil {
				return library, fmt.Errorf("decode frame %s: %w", name, err)
			}
			frames = append(frames, frame)
		}
		library[state] = frames
	}

	for state := companion.State(0); state < companion.StateCount; state++ {
		if len(library[state]) == 0 {
			return library, fmt.Errorf("load frames %s: %w", state, ErrMissingFrames)
		}
	}
	return library, nil
}

// MapLibrary converts every frame of library with convert.
func MapLibrary[F, G any](library Library[F], convert func(F) G) Library[G] {
	var mapped Library[G]
	for state, frames := range library {
		converted := make([]G, len(frames))
		for index, frame := range frames {
			converted[index] = convert(frame)
		}
		mapped[state] = converted
	}
	return mapped
}
