package viewer

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/city-viewer/internal/model"
)

// Viewport defaults.
const (
	DefaultZoom        = 13
	DefaultFlyDuration = 1500 * time.Millisecond
)

// MapViewport keeps the map centered on the selected city.
type MapViewport struct {
	surface  Surface
	zoom     float64
	duration time.Duration

	center      model.LatLng // last commanded center
	transitions int
}

// NewMapViewport places the map on the current city with one SetView and
// subscribes to later changes. Initial placement is not animated.
func NewMapViewport(state *ViewState, surface Surface, zoom float64, duration time.Duration) *MapViewport {
	v := &MapViewport{
		surface:  surface,
		zoom:     zoom,
		duration: duration,
		center:   state.Selected().Center,
	}
	surface.SetView(v.center, v.zoom)
	state.Subscribe(v.onChange)
	return v
}

// onChange animates to next's center unless the map was already sent
// there. Centers are compared by value, so two cities sharing coordinates
// never re-fire.
func (v *MapViewport) onChange(_, next *model.City) {
	if next.Center == v.center {
		return
	}
	v.center = next.Center
	v.transitions++

	zap.L().Debug("animating viewport",
		zap.String("component", "viewer.viewport"),
		zap.String("city", next.Name),
		zap.Stringer("center", next.Center),
		zap.Float64("zoom", v.zoom),
		zap.Duration("duration", v.duration),
	)
	v.surface.AnimateTo(v.center, v.zoom, v.duration)
}

// Center returns the last center sent to the surface.
func (v *MapViewport) Center() model.LatLng { return v.center }

// Zoom returns the configured zoom level.
func (v *MapViewport) Zoom() float64 { return v.zoom }

// Transitions returns how many animated transitions have been issued.
func (v *MapViewport) Transitions() int { return v.transitions }
