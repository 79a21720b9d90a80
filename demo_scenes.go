// demo_scenes.go - Built-in demo scenes driven through the host bus

/*
demo_scenes.go - Demo Scenes

Each scene issues one frame of register traffic per host frame, the
same way firmware on the OrionRisc-128 would: parameters loaded
through the bus, opcodes written to the command register, and an
explicit swap to present. Scenes that show engine operations without
command opcodes (ellipses, triangles, bitmap blits) call the drawing
engine directly from the driving goroutine.
*/

package main

import (
	"math"
)

var demoNames = []string{
	"lines", "shapes", "ellipses", "triangles", "bitmap", "copy", "stars", "text",
}

func validDemo(name string) bool {
	for _, n := range demoNames {
		if n == name {
			return true
		}
	}
	return false
}

// busCmd loads params into the parameter registers and dispatches op,
// all through bus writes.
func busCmd(bus *SystemBus, op uint32, params ...uint32) {
	for i, p := range params {
		bus.Write32(paramRegAddr(i), p)
	}
	bus.Write32(ODC_COMMAND, op)
}

func busText(bus *SystemBus, s string, attr uint32) {
	for i := 0; i < len(s); i++ {
		bus.Write32(ODC_PARAM0, uint32(s[i]))
		bus.Write32(ODC_PARAM1, attr)
		bus.Write32(ODC_COMMAND, ODC_CMD_TEXT_WRITE)
	}
}

func demoStep(m *Machine, name string, frame uint64) {
	switch name {
	case "lines":
		demoLines(m.Bus, frame)
	case "shapes":
		demoShapes(m.Bus, frame)
	case "ellipses":
		demoEllipses(m, frame)
	case "triangles":
		demoTriangles(m, frame)
	case "bitmap":
		demoBitmap(m, frame)
	case "copy":
		demoCopy(m.Bus, frame)
	case "stars":
		demoStars(m.Bus, frame)
	case "text":
		demoText(m.Bus, frame)
	}
}

func demoLines(bus *SystemBus, frame uint64) {
	busCmd(bus, ODC_CMD_CLEAR)
	phase := float64(frame) * 0.02
	cx, cy := ODC_WIDTH/2, ODC_HEIGHT/2
	for i := 0; i < 12; i++ {
		a := phase + float64(i)*math.Pi/6
		x := cx + int(math.Cos(a)*310)
		y := cy + int(math.Sin(a)*95)
		busCmd(bus, ODC_CMD_LINE, uint32(cx), uint32(cy), uint32(x), uint32(y))
	}
	busCmd(bus, ODC_CMD_SWAP)
}

func demoShapes(bus *SystemBus, frame uint64) {
	busCmd(bus, ODC_CMD_CLEAR)
	r := 20 + int(30*(1+math.Sin(float64(frame)*0.05)))
	busCmd(bus, ODC_CMD_RECT, 40, 30, 240, 140)
	busCmd(bus, ODC_CMD_FILL_RECT, 60, 50, 48, 24)
	busCmd(bus, ODC_CMD_RECT, 120, 90, 120, 60)
	busCmd(bus, ODC_CMD_CIRCLE, 460, 100, uint32(r))
	busCmd(bus, ODC_CMD_FILL_CIRCLE, 460, 100, uint32(max(r/2, 2)))
	busCmd(bus, ODC_CMD_SWAP)
}

func demoEllipses(m *Machine, frame uint64) {
	busCmd(m.Bus, ODC_CMD_CLEAR)
	t := float64(frame) * 0.03
	for i := 1; i <= 4; i++ {
		rx := int(40 + 30*float64(i) + 10*math.Sin(t+float64(i)))
		ry := int(15 + 12*float64(i) + 6*math.Cos(t+float64(i)))
		m.ODC.draw.DrawEllipse(ODC_WIDTH/2, ODC_HEIGHT/2, rx, ry, true)
	}
	busCmd(m.Bus, ODC_CMD_SWAP)
}

func demoTriangles(m *Machine, frame uint64) {
	busCmd(m.Bus, ODC_CMD_CLEAR)
	a := float64(frame) * 0.02
	cx, cy := float64(ODC_WIDTH)/2, float64(ODC_HEIGHT)/2
	var px, py [3]int
	for i := 0; i < 3; i++ {
		v := a + float64(i)*2*math.Pi/3
		px[i] = int(cx + math.Cos(v)*150)
		py[i] = int(cy + math.Sin(v)*85)
	}
	m.ODC.draw.FillTriangle(px[0], py[0], px[1], py[1], px[2], py[2], true)
	for i := 0; i < 3; i++ {
		v := a + math.Pi/3 + float64(i)*2*math.Pi/3
		px[i] = int(cx + math.Cos(v)*190)
		py[i] = int(cy + math.Sin(v)*95)
	}
	m.ODC.draw.DrawTriangle(px[0], py[0], px[1], py[1], px[2], py[2], true)
	busCmd(m.Bus, ODC_CMD_SWAP)
}

// demoSprite is an 8x8 invader, one byte per pixel.
var demoSprite = []byte{
	0, 0, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 1, 1, 0, 0, 0,
	0, 0, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 0, 1, 1, 1, 1, 0, 1,
	1, 0, 1, 0, 0, 1, 0, 1,
	0, 0, 0, 1, 1, 0, 0, 0,
}

func demoBitmap(m *Machine, frame uint64) {
	busCmd(m.Bus, ODC_CMD_CLEAR)
	step := int(frame % 120)
	drop := min(step, 60)
	for row := 0; row < 3; row++ {
		for col := 0; col < 10; col++ {
			x := 80 + col*48 + int(frame/4%16)
			y := 20 + row*24 + drop
			m.ODC.draw.DrawBitmap(x, y, demoSprite, 8, 8, 0)
		}
	}
	busCmd(m.Bus, ODC_CMD_SWAP)
}

func demoCopy(bus *SystemBus, frame uint64) {
	busCmd(bus, ODC_CMD_CLEAR)
	busCmd(bus, ODC_CMD_FILL_CIRCLE, 30, 30, 18)
	busCmd(bus, ODC_CMD_RECT, 10, 10, 40, 40)
	shift := uint32(frame % 40)
	for i := uint32(1); i <= 6; i++ {
		busCmd(bus, ODC_CMD_COPY_REGION, 8, 8, 8+i*90+shift, 8+i*20, 44, 44)
	}
	busCmd(bus, ODC_CMD_SWAP)
}

func demoStars(bus *SystemBus, frame uint64) {
	busCmd(bus, ODC_CMD_CLEAR)
	for i := uint64(0); i < 128; i++ {
		speed := 1 + i%3
		x := (ODC_WIDTH - 1) - int((i*53+frame*speed)%ODC_WIDTH)
		y := int((i * 97) % ODC_HEIGHT)
		busCmd(bus, ODC_CMD_SET_PIXEL, uint32(x), uint32(y), 1)
	}
	busCmd(bus, ODC_CMD_SWAP)
}

const demoMarquee = "ORIONRISC-128 DISPLAY ADAPTER * 640X200 MONOCHROME * 80X25 TEXT * "

func demoText(bus *SystemBus, frame uint64) {
	// Present what the previous frame's ticks rendered.
	busCmd(bus, ODC_CMD_SWAP)

	if frame == 0 {
		bus.Write32(ODC_MODE, ODC_MODE_TEXT)
		busCmd(bus, ODC_CMD_TEXT_CLEAR)
		busCmd(bus, ODC_CMD_TEXT_CURSOR, 2, 1)
		busText(bus, "ODC TEXT MODE", 0)
		busCmd(bus, ODC_CMD_TEXT_CURSOR, 2, 2)
		busText(bus, " REVERSE ", ODC_ATTR_REVERSE)
		busCmd(bus, ODC_CMD_TEXT_CURSOR, 2, 3)
		busText(bus, "UNDERLINE", ODC_ATTR_UNDERLINE)
		busCmd(bus, ODC_CMD_TEXT_CURSOR, 0, 5)
		return
	}
	if frame%3 == 0 {
		i := int(frame/3) % len(demoMarquee)
		busText(bus, demoMarquee[i:i+1], 0)
	}
}
