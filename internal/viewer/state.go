package viewer

import (
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/city-viewer/internal/catalog"
	"github.com/sells-group/city-viewer/internal/model"
)

// ErrInvalidSelection is returned when a selection names a city outside
// the catalog. The view state is left unchanged.
var ErrInvalidSelection = eris.New("viewer: invalid selection")

// Listener receives the previous and the newly selected city. It runs
// while the state is locked: it may call Selected but must not call
// Select, SelectName or Subscribe, which would deadlock.
type Listener func(prev, next *model.City)

// ViewState is the single source of truth for the selected city.
type ViewState struct {
	catalog   *catalog.Catalog
	current   atomic.Pointer[model.City]
	mu        sync.Mutex // serializes Select through notification
	listeners []Listener
}

// NewViewState returns a state holding the catalog's first city.
func NewViewState(cat *catalog.Catalog) *ViewState {
	s := &ViewState{catalog: cat}
	s.current.Store(cat.First())
	return s
}

// Selected returns the currently selected city. It is never nil.
func (s *ViewState) Selected() *model.City {
	return s.current.Load()
}

// Subscribe registers fn to run after every selection change, in
// subscription order. It must not be called from inside a listener.
func (s *ViewState) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Select makes city the current selection. Membership is decided by
// name and the catalog's own record is held, never the argument. Selecting
// the current city again notifies nobody. Listeners run before Select
// returns; calling Select from a listener deadlocks.
func (s *ViewState) Select(city *model.City) error {
	if city == nil {
		return eris.Wrap(ErrInvalidSelection, "nil city")
	}
	return s.SelectName(city.Name)
}

// SelectName is Select keyed by city name.
func (s *ViewState) SelectName(name string) error {
	next, err := s.catalog.Get(name)
	if err != nil {
		return eris.Wrapf(ErrInvalidSelection, "city %q is not in the catalog", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	if prev == next {
		return nil
	}
	s.current.Store(next)

	zap.L().Info("city selected",
		zap.String("component", "viewer.state"),
		zap.String("from", prev.Name),
		zap.String("to", next.Name),
	)

	for _, fn := range s.listeners {
		fn(prev, next)
	}
	return nil
}
