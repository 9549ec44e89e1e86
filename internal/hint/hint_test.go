package hint

import (
	"errors"
	"testing"
)

func TestEncodeZero(t *testing.T) {
	if got := Encode(0); got != "0" {
		t.Fatalf("expected Encode(0) == %q, got %q", "0", got)
	}
	if got := Encode(-5); got != "0" {
		t.Fatalf("expected negative input clamped to %q, got %q", "0", got)
	}
}

func TestEncodeKnownValues(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{1, "1"},
		{9, "9"},
		{10, "a"},
		{35, "z"},
		{36, "10"},
		{36*36 - 1, "zz"},
		{36 * 36, "100"},
	}
	for _, tc := range cases {
		if got := Encode(tc.index); got != tc.want {
			t.Fatalf("Encode(%d): expected %q, got %q", tc.index, tc.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 10000; i++ {
		encoded := Encode(i)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(%d)) failed: %v", i, err)
		}
		if decoded != i {
			t.Fatalf("round trip failed for %d: got %d via %q", i, decoded, encoded)
		}
	}
}

func TestDecodeRejectsInvalidInput(t *testing.T) {
	for _, s := range []string{"", "A", "1F", "x y", "0-1", "é"} {
		if _, err := Decode(s); !errors.Is(err, ErrInvalidHint) {
			t.Fatalf("expected ErrInvalidHint for %q, got %v", s, err)
		}
	}
}

func TestDecodeRejectsOverflow(t *testing.T) {
	if _, err := Decode("zzzzzzzzzzzzzzzz"); !errors.Is(err, ErrInvalidHint) {
		t.Fatalf("expected overflow to report ErrInvalidHint, got %v", err)
	}
}

func TestPadPreservesValue(t *testing.T) {
	padded := Pad(Encode(7), 3)
	if padded != "007" {
		t.Fatalf("expected %q, got %q", "007", padded)
	}
	decoded, err := Decode(padded)
	if err != nil {
		t.Fatalf("decoding padded hint failed: %v", err)
	}
	if decoded != 7 {
		t.Fatalf("expected padded hint to decode to 7, got %d", decoded)
	}
	if got := Pad("abc", 2); got != "abc" {
		t.Fatalf("expected no padding when already wide enough, got %q", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{36, 1},
		{37, 2},
		{1296, 2},
		{1297, 3},
	}
	for _, tc := range cases {
		if got := Width(tc.n); got != tc.want {
			t.Fatalf("Width(%d): expected %d, got %d", tc.n, tc.want, got)
		}
	}
}
