package render

// Layer is one stage of a composed frame, drawn with shared per-frame context C
type Layer[C any] interface {
	Render(c Canvas, ctx C)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// LayerFunc adapts a plain function to Layer
type LayerFunc[C any] func(c Canvas, ctx C)

func (f LayerFunc[C]) Render(c Canvas, ctx C) {
	f(c, ctx)
}
