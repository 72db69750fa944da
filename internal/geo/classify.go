// Package geo provides district styling and boundary geometry for the
// city viewer.
package geo

import "github.com/sells-group/city-viewer/internal/model"

// Fill colors per classification.
const (
	ColorResidential = "#a1d99b"
	ColorCommercial  = "#fc9272"
	ColorMixed       = "#9ecae1"
	ColorOther       = "#cccccc"
)

// Outline and opacity shared by every classification.
const (
	StrokeColor  = "#333333"
	StrokeWeight = 1
	FillOpacity  = 0.6
)

// Style is the visual descriptor of a district polygon.
type Style struct {
	FillColor    string  `json:"fill_color"`
	StrokeColor  string  `json:"stroke_color"`
	StrokeWeight int     `json:"stroke_weight"`
	FillOpacity  float64 `json:"fill_opacity"`
}

// FillColor returns the fill color for a classification. Anything outside
// residential, commercial and mixed takes the neutral gray.
func FillColor(c model.Classification) string {
	switch c {
	case model.ClassificationResidential:
		return ColorResidential
	case model.ClassificationCommercial:
		return ColorCommercial
	case model.ClassificationMixed:
		return ColorMixed
	default:
		return ColorOther
	}
}

// StyleFor returns the polygon style for a classification.
func StyleFor(c model.Classification) Style {
	return Style{
		FillColor:    FillColor(c),
		StrokeColor:  StrokeColor,
		StrokeWeight: StrokeWeight,
		FillOpacity:  FillOpacity,
	}
}

// StyleForValue styles a raw classification value as found in source data.
func StyleForValue(v string) Style {
	return StyleFor(model.ParseClassification(v))
}

// LegendEntry is one row of the classification legend.
type LegendEntry struct {
	Classification model.Classification
	FillColor      string
}

// Legend returns the fixed classification to color table in display order.
func Legend() []LegendEntry {
	classes := model.Classifications()
	entries := make([]LegendEntry, 0, len(classes))
	for _, c := range classes {
		entries = append(entries, LegendEntry{Classification: c, FillColor: FillColor(c)})
	}
	return entries
}
