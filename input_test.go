package main

import "testing"

func TestTriggerFiresOncePerPress(t *testing.T) {
	c := NewControls()
	frames := []struct {
		down bool
		want bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, f := range frames {
		if got := c.pull(f.down); got != f.want {
			t.Fatalf("frame %d: pull(%v) = %v, want %v", i, f.down, got, f.want)
		}
	}
}
