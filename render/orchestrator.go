package render

type layerEntry[C any] struct {
	layer    Layer[C]
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator runs registered layers in priority order
type Orchestrator[C any] struct {
	layers   []layerEntry[C]
	regCount int
}

// NewOrchestrator creates an empty layer pipeline
func NewOrchestrator[C any]() *Orchestrator[C] {
	return &Orchestrator[C]{
		layers: make([]layerEntry[C], 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator[C]) Register(l Layer[C], priority Priority) {
	entry := layerEntry[C]{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry[C]{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Len returns the number of registered layers
func (o *Orchestrator[C]) Len() int {
	return len(o.layers)
}

// Render draws every visible layer in order onto c
func (o *Orchestrator[C]) Render(c Canvas, ctx C) {
	for _, entry := range o.layers {
		// Skip if layer implements VisibilityToggle and is not visible
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(c, ctx)
	}
}
