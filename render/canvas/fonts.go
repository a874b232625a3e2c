package canvas

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/poimap/render"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches text faces per font string.
type Fonts struct {
	mu      sync.Mutex
	sources map[string]*text.GoTextFaceSource
	faces   map[string]*text.GoTextFace
}

func NewFonts() *Fonts {
	return &Fonts{
		sources: map[string]*text.GoTextFaceSource{},
		faces:   map[string]*text.GoTextFace{},
	}
}

// Face returns the face for a CSS font shorthand.
func (f *Fonts) Face(font string) (*text.GoTextFace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[font]; ok {
		return face, nil
	}
	spec := render.ParseFont(font)
	key, ttf := "regular", goregular.TTF
	switch {
	case spec.Mono:
		key, ttf = "mono", gomono.TTF
	case spec.Bold:
		key, ttf = "bold", gobold.TTF
	}
	src, ok := f.sources[key]
	if !ok {
		var err error
		src, err = text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("canvas: load %s font: %w", key, err)
		}
		f.sources[key] = src
	}
	face := &text.GoTextFace{Source: src, Size: spec.Size}
	f.faces[font] = face
	return face, nil
}
