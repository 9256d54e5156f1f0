package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for values that are not hex colours.
var ErrInvalidColor = errors.New("invalid color")

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsHexColor reports whether value is #rgb, #rgba, #rrggbb or #rrggbbaa.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// NormalizeColor returns value as lower-case #rrggbb, or #rrggbbaa when an
// alpha channel is present.
func NormalizeColor(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !IsHexColor(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	digits := value[1:]
	if len(digits) <= 4 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	c, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
	}

	out := c.Hex()
	if len(digits) == 8 {
		out += strings.ToLower(digits[6:])
	}
	return out, nil
}

// IsDarkColor reports whether a normalized colour is perceptually dark.
func IsDarkColor(value string) bool {
	c, err := colorful.Hex(value[:min(len(value), 7)])
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l < 0.5
}
