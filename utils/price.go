package utils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is the structured form of a catalog price string such as
// "₹250/100g" or "₹160/100g (MOQ: 10kg)": a numeric amount, the unit text
// after the slash, and the original display string. Arithmetic happens on
// Amount only; Display is for rendering.
type Price struct {
	Amount  decimal.Decimal
	Unit    string
	Display string
}

var ErrInvalidPrice = errors.New("invalid price string")

var currencyGlyphs = []string{"₹", "Rs.", "Rs", "INR"}

// ParsePrice strips the currency glyph, reads the numeric prefix and keeps
// whatever follows as the unit. It does not rely on a float parser stopping
// at the first non-numeric rune; trailing unit text is split off explicitly.
func ParsePrice(s string) (Price, error) {
	trimmed := strings.TrimSpace(s)
	for _, glyph := range currencyGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
			break
		}
	}

	end := 0
	seenDot := false
	for end < len(trimmed) {
		ch := trimmed[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return Price{}, ErrInvalidPrice
	}

	amount, err := decimal.NewFromString(strings.TrimSuffix(trimmed[:end], "."))
	if err != nil {
		return Price{}, ErrInvalidPrice
	}

	unit := strings.TrimSpace(trimmed[end:])
	unit = strings.TrimPrefix(unit, "/")

	return Price{Amount: amount, Unit: unit, Display: s}, nil
}

// ParseAmount returns only the numeric amount of a price string.
func ParseAmount(s string) (decimal.Decimal, error) {
	p, err := ParsePrice(s)
	if err != nil {
		return decimal.Zero, err
	}
	return p.Amount, nil
}
