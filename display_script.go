// display_script.go - Lua scripting surface for the display controller

/*
display_script.go - Scripted register access

Embeds a Lua interpreter and exposes the controller through an `odc`
table, so demo scenes and hardware exercises can be written as scripts
instead of Go. Every binding goes through the same HandleRead and
HandleWrite paths the host bus uses; scripts cannot reach anything a
bus master could not.

    odc.poke(addr, value)       register or plane window write
    odc.peek(addr)              register or plane window read
    odc.cmd(op, p0, ..., p5)    load parameters and dispatch an opcode
    odc.tick(n)                 advance n update cycles
    odc.vsync()                 advance until vertical blank
    odc.swap()                  present the back plane
    odc.clear()                 clear the back plane
    odc.cls()                   clear the text plane
    odc.mode(m)                 select graphics (0) or text (1) mode
    odc.locate(x, y)            position the text cursor
    odc.write(s, attr)          write a string through the command port
*/

package main

import (
	lua "github.com/yuin/gopher-lua"
)

func init() {
	compiledFeatures = append(compiledFeatures, "script:lua")
}

// DisplayScript owns one Lua state bound to one controller.
type DisplayScript struct {
	odc *ODCEngine
	L   *lua.LState
}

func NewDisplayScript(odc *ODCEngine) *DisplayScript {
	ds := &DisplayScript{
		odc: odc,
		L:   lua.NewState(),
	}
	ds.register()
	return ds
}

func (ds *DisplayScript) Close() {
	ds.L.Close()
}

// RunFile executes a script from disk.
func (ds *DisplayScript) RunFile(path string) error {
	return ds.L.DoFile(path)
}

// RunString executes inline script source.
func (ds *DisplayScript) RunString(src string) error {
	return ds.L.DoString(src)
}

func (ds *DisplayScript) register() {
	mod := ds.L.NewTable()
	ds.L.SetGlobal("odc", mod)

	bindings := map[string]lua.LGFunction{
		"poke":   ds.luaPoke,
		"peek":   ds.luaPeek,
		"cmd":    ds.luaCmd,
		"tick":   ds.luaTick,
		"vsync":  ds.luaVsync,
		"swap":   ds.luaSwap,
		"clear":  ds.luaClear,
		"cls":    ds.luaCls,
		"mode":   ds.luaMode,
		"locate": ds.luaLocate,
		"write":  ds.luaWrite,
	}
	for name, fn := range bindings {
		ds.L.SetField(mod, name, ds.L.NewFunction(fn))
	}

	constants := map[string]int{
		"WIDTH":           ODC_WIDTH,
		"HEIGHT":          ODC_HEIGHT,
		"CMD_NOP":         ODC_CMD_NOP,
		"CMD_CLEAR":       ODC_CMD_CLEAR,
		"CMD_SWAP":        ODC_CMD_SWAP,
		"CMD_SET_PIXEL":   ODC_CMD_SET_PIXEL,
		"CMD_LINE":        ODC_CMD_LINE,
		"CMD_RECT":        ODC_CMD_RECT,
		"CMD_FILL_RECT":   ODC_CMD_FILL_RECT,
		"CMD_CIRCLE":      ODC_CMD_CIRCLE,
		"CMD_FILL_CIRCLE": ODC_CMD_FILL_CIRCLE,
		"CMD_COPY_REGION": ODC_CMD_COPY_REGION,
		"REG_CONTROL":     ODC_CONTROL,
		"REG_STATUS":      ODC_STATUS,
		"REG_MODE":        ODC_MODE,
		"REG_COMMAND":     ODC_COMMAND,
		"REG_PARAM0":      ODC_PARAM0,
		"REG_PALETTE0":    ODC_PALETTE0,
		"REG_PALETTE1":    ODC_PALETTE1,
		"REG_BORDER":      ODC_BORDER,
		"REG_IRQ_ENABLE":  ODC_IRQ_ENABLE,
		"REG_IRQ_STATUS":  ODC_IRQ_STATUS,
		"FB_WINDOW":       ODC_FB_WINDOW,
		"MODE_GRAPHICS":   ODC_MODE_GRAPHICS,
		"MODE_TEXT":       ODC_MODE_TEXT,
		"ATTR_UNDERLINE":  ODC_ATTR_UNDERLINE,
		"ATTR_REVERSE":    ODC_ATTR_REVERSE,
	}
	for name, value := range constants {
		ds.L.SetField(mod, name, lua.LNumber(value))
	}
}

func (ds *DisplayScript) luaPoke(L *lua.LState) int {
	addr := uint32(L.CheckInt64(1))
	value := uint32(L.CheckInt64(2))
	ds.odc.HandleWrite(addr, value)
	return 0
}

func (ds *DisplayScript) luaPeek(L *lua.LState) int {
	addr := uint32(L.CheckInt64(1))
	L.Push(lua.LNumber(ds.odc.HandleRead(addr)))
	return 1
}

func (ds *DisplayScript) luaCmd(L *lua.LState) int {
	op := uint32(L.CheckInt64(1))
	n := min(L.GetTop(), 7)
	for i := 2; i <= n; i++ {
		ds.odc.HandleWrite(paramRegAddr(i-2), uint32(L.CheckInt64(i)))
	}
	ds.odc.HandleWrite(ODC_COMMAND, op)
	return 0
}

func (ds *DisplayScript) luaTick(L *lua.LState) int {
	n := 1
	if L.GetTop() >= 1 {
		n = int(L.CheckInt64(1))
	}
	for i := 0; i < n; i++ {
		ds.odc.UpdateFrame()
	}
	return 0
}

func (ds *DisplayScript) luaVsync(L *lua.LState) int {
	// Bounded: one full frame of ticks always reaches the wrap.
	for i := 0; i < ODC_HEIGHT+1; i++ {
		ds.odc.UpdateFrame()
		if ds.odc.HandleRead(ODC_STATUS)&1 != 0 {
			break
		}
	}
	return 0
}

func (ds *DisplayScript) luaSwap(L *lua.LState) int {
	ds.odc.HandleWrite(ODC_COMMAND, ODC_CMD_SWAP)
	return 0
}

func (ds *DisplayScript) luaClear(L *lua.LState) int {
	ds.odc.HandleWrite(ODC_COMMAND, ODC_CMD_CLEAR)
	return 0
}

func (ds *DisplayScript) luaCls(L *lua.LState) int {
	ds.odc.HandleWrite(ODC_COMMAND, ODC_CMD_TEXT_CLEAR)
	return 0
}

func (ds *DisplayScript) luaMode(L *lua.LState) int {
	ds.odc.HandleWrite(ODC_MODE, uint32(L.CheckInt64(1)))
	return 0
}

func (ds *DisplayScript) luaLocate(L *lua.LState) int {
	x := uint32(L.CheckInt64(1))
	y := uint32(L.CheckInt64(2))
	ds.odc.HandleWrite(ODC_PARAM0, x)
	ds.odc.HandleWrite(ODC_PARAM1, y)
	ds.odc.HandleWrite(ODC_COMMAND, ODC_CMD_TEXT_CURSOR)
	return 0
}

func (ds *DisplayScript) luaWrite(L *lua.LState) int {
	s := L.CheckString(1)
	attr := uint32(0)
	if L.GetTop() >= 2 {
		attr = uint32(L.CheckInt64(2))
	}
	for i := 0; i < len(s); i++ {
		ds.odc.HandleWrite(ODC_PARAM0, uint32(s[i]))
		ds.odc.HandleWrite(ODC_PARAM1, attr)
		ds.odc.HandleWrite(ODC_COMMAND, ODC_CMD_TEXT_WRITE)
	}
	return 0
}
