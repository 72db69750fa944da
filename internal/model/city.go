// Package model defines the city catalog records shared by the viewer,
// the catalog loader and the exporters.
package model

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// LatLng is a (latitude, longitude) pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// UnmarshalYAML accepts both the `[lat, lng]` pair form used by the
// dataset and the `{lat: .., lng: ..}` mapping form.
func (p *LatLng) UnmarshalYAML(unmarshal func(any) error) error {
	var pair []float64
	if err := unmarshal(&pair); err == nil {
		if len(pair) != 2 {
			return eris.Errorf("model: coordinate pair needs 2 values, got %d", len(pair))
		}
		p.Lat, p.Lng = pair[0], pair[1]
		return nil
	}

	var m struct {
		Lat float64 `yaml:"lat"`
		Lng float64 `yaml:"lng"`
	}
	if err := unmarshal(&m); err != nil {
		return err
	}
	p.Lat, p.Lng = m.Lat, m.Lng
	return nil
}

// String formats the coordinate as "lat,lng".
func (p LatLng) String() string {
	return fmt.Sprintf("%.4f,%.4f", p.Lat, p.Lng)
}

// City is a selectable entry of the catalog. Records are immutable once
// the catalog is built; the viewer only ever holds pointers to them.
type City struct {
	Name             string            `json:"name" yaml:"name"`
	Center           LatLng            `json:"center" yaml:"center"`
	Districts        []District        `json:"districts" yaml:"districts"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest" yaml:"points_of_interest"`
}

// District is a polygonal region of a city tagged with a land-use class.
type District struct {
	Classification Classification `json:"classification" yaml:"classification"`
	Label          string         `json:"label" yaml:"label"`
	Boundary       []LatLng       `json:"boundary" yaml:"boundary"`
}

// DisplayLabel returns the label shown in the district callout.
func (d District) DisplayLabel() string {
	if d.Label == "" {
		return "Unnamed District"
	}
	return d.Label
}

// PointOfInterest is a single labeled location rendered as a marker.
type PointOfInterest struct {
	ID       string `json:"id" yaml:"id"`
	Position LatLng `json:"position" yaml:"position"`
	Title    string `json:"title" yaml:"title"`
}
