package render

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator runs registered layers in priority order
type Orchestrator struct {
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{layers: make([]layerEntry, 0, 4)}
}

// NewDefaultOrchestrator registers the background, particle and panel layers
func NewDefaultOrchestrator(theme Theme) *Orchestrator {
	o := NewOrchestrator()
	o.Register(NewBackgroundLayer(theme), PriorityBackground)
	o.Register(NewParticleLayer(theme), PriorityParticle)
	o.Register(NewPanelLayer(theme), PriorityPanel)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// RenderFrame draws every visible layer, the caller shows the screen
func (o *Orchestrator) RenderFrame(ctx Context, c Canvas) {
	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, c)
	}
}
