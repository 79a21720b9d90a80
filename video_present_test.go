// video_present_test.go - Colour hint decoding and plane expansion tests

package main

import (
	"testing"
)

// TestPresent_Decode332 tests the 3-3-2 split with bit replication.
func TestPresent_Decode332(t *testing.T) {
	testCases := []struct {
		c       byte
		r, g, b byte
	}{
		{0x00, 0, 0, 0},       // black
		{0xFF, 255, 255, 255}, // white: every short field saturates
		{0xE0, 255, 0, 0},     // pure red
		{0x1C, 0, 255, 0},     // pure green
		{0x03, 0, 0, 255},     // pure blue
		{0x24, 36, 36, 0},     // dim yellow, replicated low fields
		{0x60, 109, 0, 0},     // mid red
		{0x01, 0, 0, 85},      // blue field 1 of 3
		{0x02, 0, 0, 170},     // blue field 2 of 3
	}

	for _, tc := range testCases {
		r, g, b := Decode332(tc.c)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("Decode332(0x%02X) = (%d,%d,%d), expected (%d,%d,%d)",
				tc.c, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

// TestPresent_ExpandMono1 tests bit-to-pixel expansion with ink and
// paper colouring.
func TestPresent_ExpandMono1(t *testing.T) {
	snap := FrameSnapshot{
		Buffer: []byte{0xA5}, // 1010 0101
		Width:  8,
		Height: 1,
		Format: PIXEL_FORMAT_MONO1,
		Ink:    0xFF,
		Paper:  0x00,
	}

	out := ExpandMono1(snap, nil)
	if len(out) != 8*1*4 {
		t.Fatalf("Expected 32 output bytes, got %d", len(out))
	}

	inkAt := map[int]bool{0: true, 2: true, 5: true, 7: true}
	for px := 0; px < 8; px++ {
		o := px * 4
		want := byte(0)
		if inkAt[px] {
			want = 255
		}
		if out[o] != want || out[o+1] != want || out[o+2] != want {
			t.Errorf("Pixel %d = (%d,%d,%d), expected %d on all channels",
				px, out[o], out[o+1], out[o+2], want)
		}
		if out[o+3] != 0xFF {
			t.Errorf("Pixel %d alpha = %d, expected opaque", px, out[o+3])
		}
	}
}

// TestPresent_ExpandMono1ColourHints tests that the snapshot's palette
// hints colour the output.
func TestPresent_ExpandMono1ColourHints(t *testing.T) {
	snap := FrameSnapshot{
		Buffer: []byte{0x80},
		Width:  8,
		Height: 1,
		Format: PIXEL_FORMAT_MONO1,
		Ink:    0xE0, // red ink
		Paper:  0x03, // blue paper
	}

	out := ExpandMono1(snap, nil)
	if out[0] != 255 || out[1] != 0 || out[2] != 0 {
		t.Errorf("Ink pixel = (%d,%d,%d), expected red", out[0], out[1], out[2])
	}
	if out[4] != 0 || out[5] != 0 || out[6] != 255 {
		t.Errorf("Paper pixel = (%d,%d,%d), expected blue", out[4], out[5], out[6])
	}
}

// TestPresent_ExpandMono1ReusesBuffer tests in-place reuse of a
// correctly sized destination.
func TestPresent_ExpandMono1ReusesBuffer(t *testing.T) {
	snap := FrameSnapshot{
		Buffer: []byte{0x00},
		Width:  8,
		Height: 1,
		Format: PIXEL_FORMAT_MONO1,
	}

	dst := make([]byte, 32)
	out := ExpandMono1(snap, dst)
	if &out[0] != &dst[0] {
		t.Error("Expected the destination buffer to be reused")
	}

	// A wrongly sized destination is replaced.
	out = ExpandMono1(snap, make([]byte, 7))
	if len(out) != 32 {
		t.Errorf("Expected a fresh 32-byte buffer, got %d bytes", len(out))
	}
}

// TestPresent_ExpandMono1RejectsBadInput tests the format and length
// guards.
func TestPresent_ExpandMono1RejectsBadInput(t *testing.T) {
	dst := make([]byte, 32)
	for i := range dst {
		dst[i] = 0x77
	}

	// Unknown pixel format: dst comes back untouched.
	snap := FrameSnapshot{Buffer: []byte{0xFF}, Width: 8, Height: 1, Format: 99}
	out := ExpandMono1(snap, dst)
	for i, b := range out {
		if b != 0x77 {
			t.Fatalf("Byte %d overwritten on format mismatch: 0x%02X", i, b)
		}
	}

	// Snapshot buffer shorter than the plane: same guard.
	snap = FrameSnapshot{Buffer: []byte{0xFF}, Width: 8, Height: 2, Format: PIXEL_FORMAT_MONO1}
	out = ExpandMono1(snap, make([]byte, 64))
	for i, b := range out {
		if b != 0 {
			t.Fatalf("Byte %d written despite short source buffer: 0x%02X", i, b)
		}
	}
}
