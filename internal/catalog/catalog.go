// Package catalog holds the fixed, ordered set of cities the viewer can
// display. A Catalog is built once at startup and never mutated.
package catalog

import (
	"slices"

	"github.com/rotisserie/eris"

	"github.com/sells-group/city-viewer/internal/model"
)

// Catalog construction errors.
var (
	ErrEmptyCatalog  = eris.New("catalog: no cities configured")
	ErrDuplicateCity = eris.New("catalog: duplicate city name")
	ErrDuplicatePOI  = eris.New("catalog: duplicate point of interest id")
	ErrUnknownCity   = eris.New("catalog: unknown city")
)

// Catalog maps city names to their records, preserving insertion order.
type Catalog struct {
	cities map[string]*model.City
	order  []string // insertion order for deterministic iteration
}

// New builds a catalog from the given cities. It fails when the list is
// empty, a name is blank or repeated, or a point of interest id repeats
// within a city. Geometry is not checked here; malformed districts fail
// individually when rendered.
func New(cities []model.City) (*Catalog, error) {
	if len(cities) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{cities: make(map[string]*model.City, len(cities))}
	for i := range cities {
		city := cities[i]
		if city.Name == "" {
			return nil, eris.Errorf("catalog: city at index %d has no name", i)
		}
		if _, dup := c.cities[city.Name]; dup {
			return nil, eris.Wrapf(ErrDuplicateCity, "%q", city.Name)
		}

		seen := make(map[string]bool, len(city.PointsOfInterest))
		for _, poi := range city.PointsOfInterest {
			if seen[poi.ID] {
				return nil, eris.Wrapf(ErrDuplicatePOI, "city %q id %q", city.Name, poi.ID)
			}
			seen[poi.ID] = true
		}

		city.Districts = cloneDistricts(city.Districts)
		city.PointsOfInterest = slices.Clone(city.PointsOfInterest)
		c.cities[city.Name] = &city
		c.order = append(c.order, city.Name)
	}
	return c, nil
}

// cloneDistricts copies districts and their boundaries so the catalog
// shares no backing arrays with its input.
func cloneDistricts(in []model.District) []model.District {
	out := slices.Clone(in)
	for i := range out {
		out[i].Boundary = slices.Clone(out[i].Boundary)
	}
	return out
}

// Get returns a city by name.
func (c *Catalog) Get(name string) (*model.City, error) {
	city, ok := c.cities[name]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownCity, "%q", name)
	}
	return city, nil
}

// Contains reports whether a city with the given name is in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.cities[name]
	return ok
}

// First returns the first city in catalog order.
func (c *Catalog) First() *model.City {
	return c.cities[c.order[0]]
}

// All returns all cities in catalog order.
func (c *Catalog) All() []*model.City {
	result := make([]*model.City, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.cities[name])
	}
	return result
}

// Names returns all city names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of cities.
func (c *Catalog) Len() int { return len(c.order) }
