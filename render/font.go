package render

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Face sizes are quantized to this many steps per pixel so a shrinking page reuses faces
const faceSizeSteps = 2

type faceKey struct {
	family FontFamily
	weight FontWeight
	size   int // quantized pixel size
}

// FontCache resolves bundled Go fonts into sized faces, safe for concurrent use
type FontCache struct {
	mu    sync.Mutex
	fonts map[faceKey]*sfnt.Font
	faces map[faceKey]font.Face
	buf   sfnt.Buffer
}

var (
	defaultFontCache     *FontCache
	defaultFontCacheErr  error
	defaultFontCacheOnce sync.Once
)

// DefaultFontCache returns the shared cache, parsing the bundled fonts once
func DefaultFontCache() (*FontCache, error) {
	defaultFontCacheOnce.Do(func() {
		defaultFontCache, defaultFontCacheErr = NewFontCache()
	})
	return defaultFontCache, defaultFontCacheErr
}

// NewFontCache parses the bundled typefaces
func NewFontCache() (*FontCache, error) {
	sources := map[faceKey][]byte{
		{family: FontSans, weight: WeightNormal}:    goregular.TTF,
		{family: FontSans, weight: WeightBold}:      gobold.TTF,
		{family: FontDisplay, weight: WeightNormal}: gomedium.TTF,
		{family: FontDisplay, weight: WeightBold}:   gobold.TTF,
		{family: FontMono, weight: WeightNormal}:    gomono.TTF,
		{family: FontMono, weight: WeightBold}:      gomonobold.TTF,
	}

	fc := &FontCache{
		fonts: make(map[faceKey]*sfnt.Font, len(sources)),
		faces: make(map[faceKey]font.Face),
	}
	for key, data := range sources {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse bundled font %d/%d: %w", key.family, key.weight, err)
		}
		fc.fonts[key] = f
	}
	return fc, nil
}

// Face returns a face for the style at the given device pixel size
func (fc *FontCache) Face(family FontFamily, weight FontWeight, px float64) (font.Face, error) {
	q := int(math.Round(px * faceSizeSteps))
	if q < 1 {
		q = 1
	}
	key := faceKey{family: family, weight: weight, size: q}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if face, ok := fc.faces[key]; ok {
		return face, nil
	}
	f, ok := fc.fonts[faceKey{family: family, weight: weight}]
	if !ok {
		return nil, fmt.Errorf("unknown font family %d weight %d", family, weight)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(q) / faceSizeSteps,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	fc.faces[key] = face
	return face, nil
}

// HasGlyphs reports whether the family covers every rune of s
func (fc *FontCache) HasGlyphs(family FontFamily, weight FontWeight, s string) bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	f, ok := fc.fonts[faceKey{family: family, weight: weight}]
	if !ok {
		return false
	}
	for _, r := range s {
		// Variation selectors and joiners carry no glyph of their own
		if r == 0xFE0F || r == 0x200D {
			continue
		}
		idx, err := f.GlyphIndex(&fc.buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}
