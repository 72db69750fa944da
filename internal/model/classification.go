package model

import "strings"

// Classification is the land-use class of a district.
type Classification int

const (
	// ClassificationOther covers unclassified land and every value the
	// catalog does not recognize.
	ClassificationOther Classification = iota
	// ClassificationResidential marks housing districts.
	ClassificationResidential
	// ClassificationCommercial marks retail and office districts.
	ClassificationCommercial
	// ClassificationMixed marks mixed-use districts.
	ClassificationMixed
)

// Classifications lists every classification in legend order.
func Classifications() []Classification {
	return []Classification{
		ClassificationResidential,
		ClassificationCommercial,
		ClassificationMixed,
		ClassificationOther,
	}
}

// String returns the catalog spelling of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationResidential:
		return "residential"
	case ClassificationCommercial:
		return "commercial"
	case ClassificationMixed:
		return "mixed"
	default:
		return "other"
	}
}

// ParseClassification maps a raw catalog value to a Classification.
// Unknown values (e.g. "industrial") map to ClassificationOther; parsing
// never fails.
func ParseClassification(s string) Classification {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "residential":
		return ClassificationResidential
	case "commercial":
		return ClassificationCommercial
	case "mixed":
		return ClassificationMixed
	default:
		return ClassificationOther
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so YAML and JSON
// decoders apply the same fallback.
func (c *Classification) UnmarshalText(text []byte) error {
	*c = ParseClassification(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
