// machine_test.go - Host machine wiring and update loop tests

package main

import (
	"testing"
	"time"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := NewMachine(MachineConfig{Backend: VIDEO_BACKEND_HEADLESS, Scale: 2})
	if err != nil {
		t.Fatalf("NewMachine failed: %v", err)
	}
	return m
}

// TestMachine_Wiring tests that the bus, controller and sink come up
// connected.
func TestMachine_Wiring(t *testing.T) {
	m := newTestMachine(t)
	if m.Bus == nil || m.ODC == nil || m.Output == nil {
		t.Fatal("Machine came up with missing components")
	}

	// Host software reaches the controller through the bus.
	m.Bus.Write32(ODC_MODE, ODC_MODE_TEXT)
	if m.ODC.Mode() != ODC_MODE_TEXT {
		t.Error("Bus write did not reach the controller")
	}

	// Sink key bytes flow into the text engine.
	m.Output.(*HeadlessVideoOutput).InjectKey('K')
	if m.ODC.text.CharAt(0, 0) != 'K' {
		t.Error("Sink key byte did not reach the text engine")
	}
}

// TestMachine_PerformanceMode tests the cadence configuration flag.
func TestMachine_PerformanceMode(t *testing.T) {
	m, err := NewMachine(MachineConfig{Backend: VIDEO_BACKEND_HEADLESS, PerfMode: true})
	if err != nil {
		t.Fatalf("NewMachine failed: %v", err)
	}
	if m.ODC.TargetHz() != ODC_REFRESH_HZ_PERF {
		t.Errorf("Expected %d Hz cadence, got %d", ODC_REFRESH_HZ_PERF, m.ODC.TargetHz())
	}
}

// TestMachine_UnknownBackend tests the error path for a bad backend id.
func TestMachine_UnknownBackend(t *testing.T) {
	if _, err := NewMachine(MachineConfig{Backend: 99}); err == nil {
		t.Error("Expected an error for an unknown backend")
	}
}

// TestMachine_StartStop tests the sink lifecycle and the display
// configuration handoff.
func TestMachine_StartStop(t *testing.T) {
	m := newTestMachine(t)
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !m.Output.IsStarted() {
		t.Error("Sink not started")
	}

	cfg := m.Output.GetDisplayConfig()
	if cfg.Width != ODC_WIDTH || cfg.Height != ODC_HEIGHT {
		t.Errorf("Sink config %dx%d, expected %dx%d", cfg.Width, cfg.Height, ODC_WIDTH, ODC_HEIGHT)
	}
	if cfg.Scale != 2 {
		t.Errorf("Sink scale %d, expected 2", cfg.Scale)
	}
	if cfg.RefreshRate != ODC_REFRESH_HZ {
		t.Errorf("Sink refresh %d, expected %d", cfg.RefreshRate, ODC_REFRESH_HZ)
	}

	m.Stop()
	if m.Output.IsStarted() {
		t.Error("Sink still started after Stop")
	}
}

// TestMachine_HardReset tests the reset-key path back to power-on.
func TestMachine_HardReset(t *testing.T) {
	m := newTestMachine(t)
	m.Bus.Write32(ODC_MODE, ODC_MODE_TEXT)
	m.Bus.Write32(0x4000, 0x1234)
	m.Bus.Write32(ODC_PARAM0, 3)
	m.Bus.Write32(ODC_PARAM1, 3)
	m.Bus.Write32(ODC_PARAM2, 1)
	m.Bus.Write32(ODC_COMMAND, ODC_CMD_SET_PIXEL)

	m.HardReset()
	if m.ODC.Mode() != ODC_MODE_GRAPHICS {
		t.Error("HardReset did not restore graphics mode")
	}
	if m.ODC.fb.GetPixel(3, 3) {
		t.Error("HardReset left plane contents behind")
	}
	if got := m.Bus.Read32(0x4000); got != 0 {
		t.Errorf("HardReset left memory contents: 0x%08X", got)
	}
}

// TestMachine_Run tests the frame loop: each interval ticks one full
// frame of scanlines and runs the frame callback first.
func TestMachine_Run(t *testing.T) {
	m := newTestMachine(t)
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer m.Stop()

	var callbackFrames []uint64
	stop := make(chan struct{})
	ran := make(chan struct{})
	go func() {
		m.Run(stop, func(frame uint64) {
			callbackFrames = append(callbackFrames, frame)
		})
		close(ran)
	}()

	time.Sleep(120 * time.Millisecond)
	close(stop)
	<-ran

	if m.ODC.FrameCount() < 1 {
		t.Error("Run completed no frames")
	}
	if len(callbackFrames) < 1 {
		t.Fatal("Frame callback never ran")
	}
	if callbackFrames[0] != 0 {
		t.Errorf("First callback frame = %d, expected 0", callbackFrames[0])
	}

	// One full frame of snapshots per completed frame.
	pushes := m.Output.(*HeadlessVideoOutput).GetFrameCount()
	if pushes < ODC_HEIGHT {
		t.Errorf("Sink saw %d pushes, expected at least one full frame", pushes)
	}
}

// TestMachine_RunNilCallback tests that Run tolerates a nil frame
// callback.
func TestMachine_RunNilCallback(t *testing.T) {
	m := newTestMachine(t)
	stop := make(chan struct{})
	ran := make(chan struct{})
	go func() {
		m.Run(stop, nil)
		close(ran)
	}()
	time.Sleep(40 * time.Millisecond)
	close(stop)
	<-ran

	if m.ODC.FrameCount() < 1 {
		t.Error("Run with nil callback completed no frames")
	}
}
