package viewer

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/city-viewer/internal/catalog"
)

// Option is one entry of the city choice list.
type Option struct {
	Name     string
	Selected bool
}

// SelectionControl exposes the catalog as a choice list and writes the
// user's choice into the view state.
type SelectionControl struct {
	catalog *catalog.Catalog
	state   *ViewState
}

// NewSelectionControl binds a choice list to state.
func NewSelectionControl(cat *catalog.Catalog, state *ViewState) *SelectionControl {
	return &SelectionControl{catalog: cat, state: state}
}

// Options returns every city in catalog order, marking the current one.
func (c *SelectionControl) Options() []Option {
	current := c.Current()
	names := c.catalog.Names()
	opts := make([]Option, len(names))
	for i, name := range names {
		opts[i] = Option{Name: name, Selected: name == current}
	}
	return opts
}

// Current returns the name of the selected city.
func (c *SelectionControl) Current() string {
	return c.state.Selected().Name
}

// Contains reports whether name is one of the choices.
func (c *SelectionControl) Contains(name string) bool {
	return c.catalog.Contains(name)
}

// Choose selects the city with the given name.
func (c *SelectionControl) Choose(name string) error {
	return c.state.SelectName(name)
}

// ChooseIndex selects the city at the given 1-based position.
func (c *SelectionControl) ChooseIndex(pos int) error {
	names := c.catalog.Names()
	if pos < 1 || pos > len(names) {
		return eris.Wrapf(ErrInvalidSelection, "choice %d out of range 1-%d", pos, len(names))
	}
	return c.state.SelectName(names[pos-1])
}
