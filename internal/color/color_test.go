package color

import (
	"errors"
	"math"
	"testing"
)

func TestResolveSecondaryPrefersWhiteOnRed(t *testing.T) {
	got, err := ResolveSecondary("de3129", "666666")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != White {
		t.Fatalf("expected white, got %s", got.Hex())
	}
}

func TestResolveSecondaryKeepsLegibleCandidate(t *testing.T) {
	got, err := ResolveSecondary("0c2340", "fcb514")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Hex() != "fcb514" {
		t.Fatalf("expected candidate to be kept, got %s", got.Hex())
	}
}

func TestResolveSecondarySameColorFallsBack(t *testing.T) {
	cases := map[string]RGB{
		"ffb81c": Black,
		"002654": White,
		"000000": White,
		"ffffff": Black,
	}
	for hex, want := range cases {
		got, err := ResolveSecondary(hex, hex)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", hex, err)
		}
		if got != want {
			t.Fatalf("%s: expected %s, got %s", hex, want.Hex(), got.Hex())
		}
	}
}

func TestResolveSecondaryIsAlwaysLegible(t *testing.T) {
	palette := []string{"de3129", "666666", "c8102e", "003087", "fc4c02", "ffb81c", "000000", "ffffff", "808080", "41b6e6"}
	for _, primaryHex := range palette {
		for _, candidateHex := range palette {
			primary, _ := ParseHex(primaryHex)
			got, err := ResolveSecondary(primaryHex, candidateHex)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			candidate, _ := ParseHex(candidateHex)
			if Contrast(primary, candidate) > MinContrast {
				if got != candidate {
					t.Fatalf("%s/%s: legible candidate was replaced by %s", primaryHex, candidateHex, got.Hex())
				}
				continue
			}
			best := math.Max(Contrast(primary, White), Contrast(primary, Black))
			if Contrast(primary, got) != best {
				t.Fatalf("%s/%s: expected the better of white and black, got %s", primaryHex, candidateHex, got.Hex())
			}
		}
	}
}

func TestContrastBounds(t *testing.T) {
	if got := Contrast(White, Black); math.Abs(got-21) > 1e-9 {
		t.Fatalf("expected 21:1, got %f", got)
	}
	if got := Contrast(White, White); got != 1 {
		t.Fatalf("expected 1:1, got %f", got)
	}
	if Contrast(White, Black) != Contrast(Black, White) {
		t.Fatal("expected contrast to be symmetric")
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, value := range []string{"", "fff", "#de3129", "zz3129", "de31290"} {
		_, err := ParseHex(value)
		var parseErr *HexParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%q: expected HexParseError, got %v", value, err)
		}
	}
	if _, err := ResolveSecondary("de3129", "nope"); err == nil {
		t.Fatal("expected malformed candidate to fail")
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHex("0C2340")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if c.Hex() != "0c2340" {
		t.Fatalf("expected lowercase hex, got %s", c.Hex())
	}
}
