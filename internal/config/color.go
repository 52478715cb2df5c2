package config

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ParseColor reads a CSS style colour: rgba(r,g,b,a), rgb(r,g,b) or #rrggbb.
// Alpha in rgba() is a fraction in [0,1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(err, "parse colour %q", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgb("):len(s)-1], 3
	default:
		return color.NRGBA{}, errors.Errorf("unsupported colour %q", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return color.NRGBA{}, errors.Errorf("colour %q: want %d components, got %d", s, want, len(parts))
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(err, "colour %q component %d", s, i)
		}
		if v < 0 || v > 255 {
			return color.NRGBA{}, errors.Errorf("colour %q component %d out of range: %d", s, i, v)
		}
		rgb[i] = uint8(v)
	}

	alpha := uint8(255)
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(err, "colour %q alpha", s)
		}
		if a < 0 || a > 1 {
			return color.NRGBA{}, errors.Errorf("colour %q alpha out of range: %v", s, a)
		}
		alpha = uint8(math.Round(a * 255))
	}

	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}
