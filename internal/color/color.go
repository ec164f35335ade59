package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with integer channels in [0,255].
type RGB struct {
	R, G, B int
}

// HSV holds hue in [0,360), saturation and value in [0,100].
type HSV struct {
	H, S, V float64
}

const (
	// Saturation at or below this counts as grayscale for sorting.
	grayscaleSatThreshold = 5.0

	// Luminance at or below this gets white ink, above it black.
	contrastThreshold = 0.5
)

// HexToRGB parses "#rgb" or "#rrggbb", case-insensitive. A trailing alpha
// digit (short form) or digit pair (long form) is accepted and ignored.
func HexToRGB(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		return RGB{}, fmt.Errorf("unexpected color format %q", s)
	}
	digits := strings.ToLower(s[1:])
	for _, c := range digits {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return RGB{}, fmt.Errorf("unexpected color format %q", s)
		}
	}

	switch len(digits) {
	case 4:
		digits = digits[:3]
		fallthrough
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 8:
		digits = digits[:6]
	case 6:
	default:
		return RGB{}, fmt.Errorf("unexpected color format %q", s)
	}

	var r, g, b int
	if _, err := fmt.Sscanf(digits, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("unexpected color format %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// NormalizeHex reformats any accepted hex form as lowercase "#rrggbb",
// dropping alpha. Idempotent.
func NormalizeHex(s string) (string, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// Hex returns the lowercase "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBToHSV converts via the standard max/min channel formulas. When all
// channels are equal both hue and saturation are 0.
func RGBToHSV(rgb RGB) HSV {
	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	h, s, v := c.Hsv()
	return HSV{H: h, S: s * 100.0, V: v * 100.0}
}

// HexToHSV is HexToRGB followed by RGBToHSV.
func HexToHSV(s string) (HSV, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(rgb), nil
}

// Luminance approximates perceived brightness in [0,1]. The eye favors
// green, hence the channel weights.
func Luminance(rgb RGB) float64 {
	return (0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)) / 255.0
}

// ContrastIsWhite reports whether white ink (as opposed to black) is the more
// legible foreground on the given background color.
func ContrastIsWhite(rgb RGB) bool {
	return Luminance(rgb) <= contrastThreshold
}

// ContrastRGB returns white or black as an RGB value, per ContrastIsWhite.
func ContrastRGB(rgb RGB) RGB {
	if ContrastIsWhite(rgb) {
		return RGB{R: 255, G: 255, B: 255}
	}
	return RGB{}
}

// SortKeyNone is the key for an absent color; it sorts after every real one.
func SortKeyNone() float64 {
	return 360*10000 + 100*100 + 1
}

// SortKey maps a hex color onto a scalar for perceptual ordering: chromatic
// colors first, ordered by hue; grayscale (saturation <= 5) after all hues.
// Within a band, ties order by (100-S)*(100-V). The threshold and formula
// shape are part of the tool's observable ordering and must not drift.
func SortKey(hex string) float64 {
	hsv, err := HexToHSV(hex)
	if err != nil {
		return SortKeyNone()
	}
	satval := (100.0 - hsv.S) * (100.0 - hsv.V)
	if hsv.S > grayscaleSatThreshold {
		return hsv.H*10000 + satval
	}
	return 360*10000 + satval
}
