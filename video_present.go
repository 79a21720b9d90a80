// video_present.go - Front plane expansion for presentation sinks

package main

// Decode332 splits a 3-3-2 RGB colour hint into full 8-bit channels.
// The short fields are bit-replicated so 0x07 maps to 0xFF rather
// than 0xE0.
func Decode332(c byte) (r, g, b byte) {
	r = (c >> 5) & 0x07
	g = (c >> 2) & 0x07
	b = c & 0x03
	r = r<<5 | r<<2 | r>>1
	g = g<<5 | g<<2 | g>>1
	b = b<<6 | b<<4 | b<<2 | b
	return
}

// ExpandMono1 renders a 1bpp snapshot into an RGBA pixel buffer using
// the snapshot's ink and paper hints. dst is reused when it is already
// the right size, otherwise a new buffer is allocated and returned.
// Non-mono snapshots and short buffers yield an untouched dst.
func ExpandMono1(snap FrameSnapshot, dst []byte) []byte {
	need := snap.Width * snap.Height * 4
	if len(dst) != need {
		dst = make([]byte, need)
	}
	rowBytes := snap.Width / 8
	if snap.Format != PIXEL_FORMAT_MONO1 || len(snap.Buffer) < rowBytes*snap.Height {
		return dst
	}

	ir, ig, ib := Decode332(snap.Ink)
	pr, pg, pb := Decode332(snap.Paper)

	for y := 0; y < snap.Height; y++ {
		src := y * rowBytes
		out := y * snap.Width * 4
		for xb := 0; xb < rowBytes; xb++ {
			bits := snap.Buffer[src+xb]
			base := out + xb*32
			for bit := 0; bit < 8; bit++ {
				o := base + bit*4
				if bits&(0x80>>bit) != 0 {
					dst[o] = ir
					dst[o+1] = ig
					dst[o+2] = ib
				} else {
					dst[o] = pr
					dst[o+1] = pg
					dst[o+2] = pb
				}
				dst[o+3] = 0xFF
			}
		}
	}
	return dst
}
