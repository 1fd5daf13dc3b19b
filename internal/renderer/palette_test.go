package renderer

import (
	"image/color"
	"testing"
)

func TestRedBlueEndpoints(t *testing.T) {
	testCases := []struct {
		value    float64
		expected color.RGBA
	}{
		{0, color.RGBA{R: 0, G: 0, B: 255, A: 255}},
		{0.5, color.RGBA{R: 127, G: 0, B: 128, A: 255}},
		{1, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	}

	for _, tc := range testCases {
		if got := redBlue(tc.value); got != tc.expected {
			t.Errorf("redBlue(%v) = %v, expected %v", tc.value, got, tc.expected)
		}
	}
}

func TestBlueRedMirrorsRedBlue(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		rb := redBlue(v)
		br := blueRed(v)
		if br.R != rb.B || br.B != rb.R || br.G != rb.G {
			t.Errorf("blueRed(%v) = %v does not mirror redBlue(%v) = %v", v, br, v, rb)
		}
	}
}

func TestHeatBands(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected color.RGBA
	}{
		{"black at zero", 0, color.RGBA{A: 255}},
		{"pure red between bands", 0.33, color.RGBA{R: 255, A: 255}},
		{"orange mid scale", 0.5, color.RGBA{R: 255, G: 130, A: 255}},
		{"yellow at second boundary", 0.66, color.RGBA{R: 255, G: 255, A: 255}},
		{"white at full intensity", 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := heat(tc.value); got != tc.expected {
				t.Errorf("heat(%v) = %v, expected %v", tc.value, got, tc.expected)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	if got := grayscale(0); got != (color.RGBA{A: 255}) {
		t.Errorf("grayscale(0) = %v, expected black", got)
	}
	if got := grayscale(1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("grayscale(1) = %v, expected white", got)
	}
	mid := grayscale(0.5)
	if mid.R != mid.G || mid.G != mid.B {
		t.Errorf("grayscale(0.5) = %v, channels differ", mid)
	}
}

func TestGreenPurpleEndpoints(t *testing.T) {
	if got := greenPurple(0); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("greenPurple(0) = %v, expected green", got)
	}
	if got := greenPurple(1); got != (color.RGBA{R: 255, B: 255, A: 255}) {
		t.Errorf("greenPurple(1) = %v, expected purple", got)
	}
}

func TestRainbowWrapsToRed(t *testing.T) {
	testCases := []struct {
		value    float64
		expected color.RGBA
	}{
		{0, color.RGBA{R: 255, A: 255}},
		{0.5, color.RGBA{G: 255, B: 255, A: 255}},
		{1, color.RGBA{R: 255, A: 255}},
	}

	for _, tc := range testCases {
		if got := rainbow(tc.value); got != tc.expected {
			t.Errorf("rainbow(%v) = %v, expected %v", tc.value, got, tc.expected)
		}
	}
}

func TestRandomIsStable(t *testing.T) {
	first := random(0.42)
	second := random(0.42)
	if first != second {
		t.Errorf("random(0.42) changed between calls: %v then %v", first, second)
	}

	// Values inside the same quantisation step share a colour.
	if random(0.00001) != random(0.00009) {
		t.Error("random should quantise nearby values to the same colour")
	}

	if random(0.1) == random(0.9) {
		t.Error("random(0.1) and random(0.9) collided")
	}
}

func TestChannelClamps(t *testing.T) {
	testCases := []struct {
		ratio    float64
		expected uint8
	}{
		{-0.1, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{1.02, 255},
	}

	for _, tc := range testCases {
		if got := channel(tc.ratio); got != tc.expected {
			t.Errorf("channel(%v) = %d, expected %d", tc.ratio, got, tc.expected)
		}
	}
}

func TestSchemeRegistry(t *testing.T) {
	s, ok := SchemeByName("red-blue")
	if !ok {
		t.Fatal("red-blue scheme missing from registry")
	}
	if s.Name != "red-blue" {
		t.Errorf("SchemeByName returned %q, expected red-blue", s.Name)
	}

	if _, ok := SchemeByName("neon"); ok {
		t.Error("SchemeByName found a scheme that should not exist")
	}

	names := SchemeNames()
	if len(names) != 7 {
		t.Fatalf("expected 7 schemes, found %d", len(names))
	}
	if names[0] != "red-blue" {
		t.Errorf("default scheme is %q, expected red-blue", names[0])
	}
}
