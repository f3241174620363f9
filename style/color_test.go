package style

import "testing"

func TestToRGBTotal(t *testing.T) {
	theme := RGB{10, 20, 30}

	colors := []Color{
		{},
		Reset,
		Named("red"),
		Named("no-such-color"),
		Indexed(0),
		Indexed(17),
		Indexed(231),
		Indexed(232),
		Indexed(255),
		FromRGB(1, 2, 3),
	}
	for _, c := range colors {
		// Resolution must be total; just exercise every variant
		_ = c.ToRGB(theme)
	}

	if got := Reset.ToRGB(theme); got != theme {
		t.Errorf("Expected reset to resolve to theme default, got %+v", got)
	}
	if got := (Color{}).ToRGB(theme); got != theme {
		t.Errorf("Expected unset to resolve to theme default, got %+v", got)
	}
	if got := Named("no-such-color").ToRGB(theme); got != ansi16["white"] {
		t.Errorf("Expected unknown name to fall back to white, got %+v", got)
	}
	if got := FromRGB(1, 2, 3).ToRGB(theme); got != (RGB{1, 2, 3}) {
		t.Errorf("Expected rgb passthrough, got %+v", got)
	}
}

func TestIndexedResolution(t *testing.T) {
	// Cube: index 196 = 16 + 36*5 = pure red at full level
	if got := Indexed(196).ToRGB(RGB{}); got != (RGB{255, 0, 0}) {
		t.Errorf("Expected index 196 = full red, got %+v", got)
	}
	// Cube origin: index 16 is black
	if got := Indexed(16).ToRGB(RGB{}); got != (RGB{0, 0, 0}) {
		t.Errorf("Expected index 16 = black, got %+v", got)
	}
	// Grayscale ramp: 232 is level 8, 255 is level 238
	if got := Indexed(232).ToRGB(RGB{}); got != (RGB{8, 8, 8}) {
		t.Errorf("Expected index 232 = gray 8, got %+v", got)
	}
	if got := Indexed(255).ToRGB(RGB{}); got != (RGB{238, 238, 238}) {
		t.Errorf("Expected index 255 = gray 238, got %+v", got)
	}
	// First 16 alias the named palette
	if got := Indexed(1).ToRGB(RGB{}); got != ansi16["red"] {
		t.Errorf("Expected index 1 = named red, got %+v", got)
	}
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#ff8000")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if c != FromRGB(255, 128, 0) {
		t.Errorf("Expected #ff8000 parsed, got %+v", c)
	}

	// Bare form without the hash
	c, err = FromHex("0000ff")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if c != FromRGB(0, 0, 255) {
		t.Errorf("Expected 0000ff parsed, got %+v", c)
	}

	if _, err := FromHex("not-a-color"); err == nil {
		t.Error("Expected error for malformed input")
	}
}

func TestNearestIndexed(t *testing.T) {
	// Exact palette entries map to themselves
	cases := []uint8{16, 17, 46, 196, 231, 232, 244, 255}
	for _, idx := range cases {
		rgb := indexedRGB(idx)
		if got := NearestIndexed(rgb); got != idx {
			t.Errorf("Expected index %d for its own color %+v, got %d", idx, rgb, got)
		}
	}

	// A color near the grayscale ramp lands on it
	if got := NearestIndexed(RGB{120, 120, 120}); got < grayscaleStart {
		t.Errorf("Expected mid gray to land on the grayscale ramp, got %d", got)
	}
}
