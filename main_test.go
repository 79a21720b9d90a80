// main_test.go - Command line option handling tests

package main

import (
	"testing"
)

// TestMain_ParseBackend tests backend name resolution.
func TestMain_ParseBackend(t *testing.T) {
	testCases := []struct {
		name    string
		backend int
		wantErr bool
	}{
		{"ebiten", VIDEO_BACKEND_EBITEN, false},
		{"terminal", VIDEO_BACKEND_TERMINAL, false},
		{"headless", VIDEO_BACKEND_HEADLESS, false},
		{"sdl", 0, true}, // not a backend we carry
		{"", 0, true},
	}

	for _, tc := range testCases {
		backend, err := parseBackend(tc.name)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseBackend(%q) accepted an unknown backend", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseBackend(%q) failed: %v", tc.name, err)
		}
		if backend != tc.backend {
			t.Errorf("parseBackend(%q) = %d, expected %d", tc.name, backend, tc.backend)
		}
	}
}

// TestMain_ResolveDemo tests auto/none placeholder resolution against
// the startup mode and script flag.
func TestMain_ResolveDemo(t *testing.T) {
	testCases := []struct {
		demo, mode, script string
		want               string
	}{
		{"auto", "graphics", "", "lines"},     // default graphics scene
		{"auto", "text", "", "text"},          // default text scene
		{"auto", "graphics", "x.lua", ""},     // scripts drive themselves
		{"none", "graphics", "", ""},          // explicitly off
		{"none", "text", "x.lua", ""},         // none beats everything
		{"stars", "graphics", "", "stars"},    // explicit name passes through
		{"bitmap", "text", "x.lua", "bitmap"}, // explicit name beats the script
	}

	for _, tc := range testCases {
		got := resolveDemo(tc.demo, tc.mode, tc.script)
		if got != tc.want {
			t.Errorf("resolveDemo(%q, %q, %q) = %q, expected %q",
				tc.demo, tc.mode, tc.script, got, tc.want)
		}
	}
}

// TestMain_ClampScale tests the window scale bounds.
func TestMain_ClampScale(t *testing.T) {
	testCases := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{4, 4},
		{8, 8},
		{99, 8},
	}

	for _, tc := range testCases {
		if got := ClampScale(tc.in); got != tc.want {
			t.Errorf("ClampScale(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
