// charset2png.go - Render the built-in ODC glyph set to a PNG contact sheet
//
// Usage: go run charset2png.go [path/to/video_charset.go] [out.png]
// Output: charset.png - 16x16 grid of 8x8 glyphs, 4x scaled

package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
)

const (
	glyphW   = 8
	glyphH   = 8
	gridCols = 16
	gridRows = 16
	scale    = 4
)

func main() {
	srcPath := "../video_charset.go"
	outPath := "charset.png"
	if len(os.Args) > 1 {
		srcPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	glyphs, err := parseCharset(srcPath)
	if err != nil {
		fmt.Printf("Error parsing charset: %v\n", err)
		os.Exit(1)
	}

	img := image.NewRGBA(image.Rect(0, 0, gridCols*glyphW*scale, gridRows*glyphH*scale))
	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 255}

	for code := 0; code < gridCols*gridRows; code++ {
		baseX := (code % gridCols) * glyphW * scale
		baseY := (code / gridCols) * glyphH * scale
		for row := 0; row < glyphH; row++ {
			bits := glyphs[code][row]
			for col := 0; col < glyphW; col++ {
				c := bg
				if bits&(0x80>>col) != 0 {
					c = fg
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						img.Set(baseX+col*scale+dx, baseY+row*scale+dy, c)
					}
				}
			}
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Printf("Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Written %s (%dx%d)\n", outPath, bounds.Dx(), bounds.Dy())
}

// parseCharset walks the charset source file and pulls the byte rows
// out of every indexed entry. Entries look like:
//
//	0x41: {0x18, 0x3C, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}, // 'A'
func parseCharset(path string) ([256][8]byte, error) {
	var glyphs [256][8]byte
	f, err := os.Open(path)
	if err != nil {
		return glyphs, err
	}
	defer f.Close()

	found := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "0x") || !strings.Contains(line, ": {") {
			continue
		}
		var code int
		if _, err := fmt.Sscanf(line, "0x%x:", &code); err != nil || code < 0 || code > 255 {
			continue
		}
		open := strings.Index(line, "{")
		close := strings.Index(line, "}")
		if open == -1 || close == -1 || close < open {
			continue
		}
		fields := strings.Split(line[open+1:close], ",")
		if len(fields) != 8 {
			continue
		}
		for i, fld := range fields {
			var b int
			if _, err := fmt.Sscanf(strings.TrimSpace(fld), "0x%x", &b); err == nil {
				glyphs[code][i] = byte(b)
			}
		}
		found++
	}
	if err := sc.Err(); err != nil {
		return glyphs, err
	}
	if found == 0 {
		return glyphs, fmt.Errorf("no glyph entries found in %s", path)
	}
	fmt.Printf("Extracted %d glyph entries\n", found)
	return glyphs, nil
}
