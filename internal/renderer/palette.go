package renderer

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// A Scheme maps an intensity in [0, 1] to a colour. Callers clamp the
// intensity before asking; a scheme never has to.
type Scheme struct {
	Name        string
	Description string
	At          func(v float64) color.RGBA
}

// Schemes lists every colour scheme in the order they are shown to the
// user. The first entry is the default.
var Schemes = []Scheme{
	{"red-blue", "High values red, low values blue.", redBlue},
	{"blue-red", "High values blue, low values red.", blueRed},
	{"heat", "Black through red and yellow up to white.", heat},
	{"grayscale", "Black up to white.", grayscale},
	{"green-purple", "Green at the low end, purple at the high.", greenPurple},
	{"rainbow", "The full hue wheel, red round to red.", rainbow},
	{"random", "An arbitrary but stable colour per value.", random},
}

// SchemeByName looks up a colour scheme in the registry.
func SchemeByName(name string) (Scheme, bool) {
	for _, s := range Schemes {
		if s.Name == name {
			return s, true
		}
	}
	return Scheme{}, false
}

// SchemeNames returns the registry names in display order.
func SchemeNames() []string {
	names := make([]string, len(Schemes))
	for i, s := range Schemes {
		names[i] = s.Name
	}
	return names
}

func redBlue(v float64) color.RGBA {
	x := uint8(v * 255)
	return color.RGBA{R: x, B: 255 - x, A: 255}
}

func blueRed(v float64) color.RGBA {
	x := uint8(v * 255)
	return color.RGBA{R: 255 - x, B: x, A: 255}
}

// heat runs black, red, orange, yellow, white across three bands. The
// band ratios can land a whisker past 1 at the very top, so the channel
// conversion clamps.
func heat(v float64) color.RGBA {
	switch {
	case v < 0.33:
		return color.RGBA{R: channel(v * 3), A: 255}
	case v < 0.66:
		return color.RGBA{R: 255, G: channel((v - 0.33) * 3), A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: channel((v - 0.66) * 3), A: 255}
	}
}

func grayscale(v float64) color.RGBA {
	x := uint8(v * 255)
	return color.RGBA{R: x, G: x, B: x, A: 255}
}

func greenPurple(v float64) color.RGBA {
	x := uint8(v * 255)
	return color.RGBA{R: x, G: 255 - x, B: x, A: 255}
}

func rainbow(v float64) color.RGBA {
	r, g, b := colorful.Hsv(math.Mod(v*360, 360), 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// random gives every distinct value its own arbitrary colour. The value
// is quantised to four decimal places, then scrambled through one
// SplitMix64 round, so a value maps to the same colour on every run and
// every platform.
func random(v float64) color.RGBA {
	z := uint64(v*10000) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return color.RGBA{R: uint8(z), G: uint8(z >> 8), B: uint8(z >> 16), A: 255}
}

// channel converts a unit ratio to an 8-bit channel, clamping both ends.
func channel(r float64) uint8 {
	if r >= 1 {
		return 255
	}
	if r <= 0 {
		return 0
	}
	return uint8(r * 255)
}
