// display_script_test.go - Lua scripting surface tests

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestScript(t *testing.T) (*DisplayScript, *ODCEngine) {
	t.Helper()
	odc := NewODCEngine(nil)
	ds := NewDisplayScript(odc)
	t.Cleanup(ds.Close)
	return ds, odc
}

// TestScript_PokePeek tests raw register access from Lua.
func TestScript_PokePeek(t *testing.T) {
	ds, odc := newTestScript(t)

	if err := ds.RunString(`odc.poke(odc.REG_MODE, 1)`); err != nil {
		t.Fatalf("poke failed: %v", err)
	}
	if odc.Mode() != ODC_MODE_TEXT {
		t.Errorf("Expected text mode after scripted poke, got %d", odc.Mode())
	}

	err := ds.RunString(`
		if odc.peek(odc.REG_MODE) ~= 1 then
			error("mode readback mismatch")
		end
		odc.poke(odc.REG_PALETTE0, 0xE0)
		if odc.peek(odc.REG_PALETTE0) ~= 0xE0 then
			error("palette readback mismatch")
		end
	`)
	if err != nil {
		t.Fatalf("peek round-trip failed: %v", err)
	}
}

// TestScript_CommandDispatch tests drawing through cmd and presenting
// with swap.
func TestScript_CommandDispatch(t *testing.T) {
	ds, odc := newTestScript(t)

	err := ds.RunString(`
		odc.cmd(odc.CMD_SET_PIXEL, 100, 50, 1)
		odc.swap()
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if !odc.fb.GetFrontPixel(100, 50) {
		t.Error("Scripted pixel did not reach the front plane")
	}

	err = ds.RunString(`
		odc.clear()
		odc.cmd(odc.CMD_FILL_RECT, 10, 10, 20, 10)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if !odc.fb.GetPixel(15, 15) {
		t.Error("Scripted fill did not reach the back plane")
	}
}

// TestScript_TextHelpers tests the mode, locate, write and cls
// conveniences.
func TestScript_TextHelpers(t *testing.T) {
	ds, odc := newTestScript(t)

	err := ds.RunString(`
		odc.mode(odc.MODE_TEXT)
		odc.locate(10, 5)
		odc.write("Hi")
		odc.write("R", odc.ATTR_REVERSE)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if odc.text.CharAt(10, 5) != 'H' || odc.text.CharAt(11, 5) != 'i' {
		t.Error("Scripted write did not land at the located cursor")
	}
	if odc.text.CharAt(12, 5) != 'R' || odc.text.AttrAt(12, 5) != ODC_ATTR_REVERSE {
		t.Error("Scripted write dropped the attribute argument")
	}

	if err := ds.RunString(`odc.cls()`); err != nil {
		t.Fatalf("cls failed: %v", err)
	}
	if odc.text.CharAt(10, 5) != ' ' {
		t.Error("cls left the text plane dirty")
	}
}

// TestScript_TickVsync tests scripted frame timing.
func TestScript_TickVsync(t *testing.T) {
	ds, odc := newTestScript(t)

	if err := ds.RunString(`odc.tick(5)`); err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if odc.Scanline() != 5 {
		t.Errorf("Expected scanline 5 after tick(5), got %d", odc.Scanline())
	}

	err := ds.RunString(`
		odc.vsync()
		if odc.peek(odc.REG_STATUS) % 2 ~= 1 then
			error("vsync returned outside vertical blank")
		end
	`)
	if err != nil {
		t.Fatalf("vsync failed: %v", err)
	}
	if odc.Scanline() != 0 {
		t.Errorf("Expected scanline 0 after vsync, got %d", odc.Scanline())
	}
	if odc.FrameCount() != 1 {
		t.Errorf("Expected one completed frame, got %d", odc.FrameCount())
	}
}

// TestScript_Constants tests the exported constant table.
func TestScript_Constants(t *testing.T) {
	ds, _ := newTestScript(t)

	err := ds.RunString(`
		if odc.WIDTH ~= 640 or odc.HEIGHT ~= 200 then
			error("geometry constants wrong")
		end
		if odc.CMD_SWAP ~= 0x02 or odc.CMD_FILL_CIRCLE ~= 0x08 then
			error("command constants wrong")
		end
		if odc.MODE_GRAPHICS ~= 0 or odc.MODE_TEXT ~= 1 then
			error("mode constants wrong")
		end
	`)
	if err != nil {
		t.Fatalf("constant check failed: %v", err)
	}
}

// TestScript_Errors tests that script failures surface as errors.
func TestScript_Errors(t *testing.T) {
	ds, _ := newTestScript(t)

	if err := ds.RunString(`this is not lua`); err == nil {
		t.Error("Syntax error not reported")
	}
	if err := ds.RunString(`error("deliberate")`); err == nil {
		t.Error("Runtime error not reported")
	}
	// The state survives a failed script.
	if err := ds.RunString(`odc.cmd(odc.CMD_NOP)`); err != nil {
		t.Errorf("State unusable after an error: %v", err)
	}
}

// TestScript_RunFile tests executing a script from disk.
func TestScript_RunFile(t *testing.T) {
	ds, odc := newTestScript(t)

	path := filepath.Join(t.TempDir(), "scene.lua")
	src := `
		odc.cmd(odc.CMD_RECT, 0, 0, 640, 200)
		odc.swap()
	`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := ds.RunFile(path); err != nil {
		t.Fatalf("RunFile failed: %v", err)
	}
	if !odc.fb.GetFrontPixel(0, 0) || !odc.fb.GetFrontPixel(639, 199) {
		t.Error("Scripted file did not draw the border rectangle")
	}

	if err := ds.RunFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("Missing script file not reported")
	}
}
