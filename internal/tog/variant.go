package tog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant selects which behavioural quirks a Tog carries.
type Variant int

const (
	VariantWanderer Variant = iota // fixed headings, teleports on hover
	VariantChaser                  // wanderer + pointer proximity reaction
	VariantSoarer                  // chaser + free headings, temperament, soars on hover
)

func (v Variant) String() string {
	switch v {
	case VariantWanderer:
		return "wanderer"
	case VariantChaser:
		return "chaser"
	case VariantSoarer:
		return "soarer"
	default:
		return "unknown"
	}
}

// ParseVariant maps a name (case-insensitive) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wanderer":
		return VariantWanderer, nil
	case "chaser":
		return VariantChaser, nil
	case "soarer":
		return VariantSoarer, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{VariantWanderer, VariantChaser, VariantSoarer}
}

// Chases reports whether the variant reacts to pointer proximity.
func (v Variant) Chases() bool {
	return v >= VariantChaser
}

// Soars reports whether hover starts a soaring arc instead of a teleport.
func (v Variant) Soars() bool {
	return v == VariantSoarer
}

// Temperamental reports whether inclination and pep scale movement.
func (v Variant) Temperamental() bool {
	return v == VariantSoarer
}

// FreeHeading reports whether re-rolled headings are arbitrary vectors
// rather than one of the four cardinal directions.
func (v Variant) FreeHeading() bool {
	return v == VariantSoarer
}
