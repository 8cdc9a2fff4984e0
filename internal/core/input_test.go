package core

import "testing"

func TestKeySet(t *testing.T) {
	var s KeySet
	if s.Has(KeyFire) {
		t.Error("Zero KeySet should be empty")
	}

	s = s.With(KeyFire).With(KeyLeft)
	if !s.Has(KeyFire) || !s.Has(KeyLeft) {
		t.Errorf("KeySet %v should hold Fire and Left", s)
	}
	if s.Has(KeyRight) {
		t.Errorf("KeySet %v should not hold Right", s)
	}

	if s != NewKeySet(KeyLeft, KeyFire) {
		t.Errorf("With() chain = %v, expected NewKeySet(Left, Fire)", s)
	}
	if s.With(KeyFire) != s {
		t.Error("adding a held key should not change the set")
	}
}

func TestKeySetString(t *testing.T) {
	tests := []struct {
		set      KeySet
		expected string
	}{
		{KeySet(0), "none"},
		{NewKeySet(KeyFire), "Fire"},
		{NewKeySet(KeyFire, KeyLeft), "Left+Fire"},
		{NewKeySet(KeyUp, KeyDown, KeyLeft, KeyRight, KeyFire), "Up+Down+Left+Right+Fire"},
	}

	for _, tc := range tests {
		if got := tc.set.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(1000)
	if c.Ticks() != 1000 {
		t.Errorf("Ticks() = %d, expected 1000", c.Ticks())
	}

	c.Advance(30)
	if c.Ticks() != 1030 {
		t.Errorf("Ticks() after Advance(30) = %d, expected 1030", c.Ticks())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Ticks()
	b := c.Ticks()
	if a < 0 || b < a {
		t.Errorf("SystemClock should be monotonic, got %d then %d", a, b)
	}
}
