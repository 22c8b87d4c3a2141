// Package selector derives selection-widget contents from the alternatives
// collection. Option sets are a pure function of the current collection:
// every rebuild fully replaces prior options, so no removed alternative's
// ID remains selectable.
package selector

import (
	"fmt"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
)

// Option is one selectable entry in a statistics or comparison selector.
type Option struct {
	ID    int
	Label string
}

// Options rebuilds the option set for the given alternatives, in collection
// order.
func Options(alts []domain.Alternative) []Option {
	out := make([]Option, 0, len(alts))
	for _, a := range alts {
		out = append(out, Option{ID: a.ID, Label: a.Label()})
	}
	return out
}

// CompareVisible reports whether the comparison UI should be shown at all.
// Below two alternatives there is nothing valid to compare, so the panel is
// hidden entirely rather than disabled.
func CompareVisible(alts []domain.Alternative) bool {
	return len(alts) >= 2
}

// ValidatePair checks a comparison selection locally before any exchange.
// Unset or equal IDs resolve to a user-facing validation error.
func ValidatePair(firstID, secondID int) error {
	if firstID == 0 || secondID == 0 {
		return fmt.Errorf("%w: select two alternatives to compare", gateway.ErrLocalValidation)
	}
	if firstID == secondID {
		return fmt.Errorf("%w: select two different alternatives", gateway.ErrLocalValidation)
	}
	return nil
}
