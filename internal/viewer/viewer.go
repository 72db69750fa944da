package viewer

import (
	"time"

	"github.com/sells-group/city-viewer/internal/catalog"
)

// Options configures a Viewer.
type Options struct {
	Zoom        float64
	FlyDuration time.Duration
	BaseLayer   TileLayer
}

// Viewer is the assembled view: one state, its writer and its dependents.
type Viewer struct {
	State     *ViewState
	Selection *SelectionControl
	Viewport  *MapViewport
	Districts *DistrictLayer
	Markers   *MarkerLayer
	Legend    *LegendPanel
}

// New configures the surface's base layer, selects the catalog's first
// city and renders it. Zero option values take the package defaults.
func New(cat *catalog.Catalog, surface Surface, opts Options) *Viewer {
	if opts.Zoom <= 0 {
		opts.Zoom = DefaultZoom
	}
	if opts.FlyDuration == 0 {
		opts.FlyDuration = DefaultFlyDuration
	}

	surface.SetBaseLayer(opts.BaseLayer)

	state := NewViewState(cat)
	return &Viewer{
		State:     state,
		Selection: NewSelectionControl(cat, state),
		Viewport:  NewMapViewport(state, surface, opts.Zoom, opts.FlyDuration),
		Districts: NewDistrictLayer(state, surface),
		Markers:   NewMarkerLayer(state, surface),
		Legend:    NewLegendPanel(),
	}
}
