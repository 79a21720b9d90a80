// machine.go - Host machine wiring for the display adapter

/*
machine.go - Host Machine

Assembles a complete runnable host around the display controller: the
system bus with the controller's two I/O windows mapped, a display
sink, and the update loop that stands in for the CPU core's frame
timing. Everything host software would do through the bus, the demo
scenes and scripts here do through the same bus, so the wiring is
exercised the way real firmware would drive it.

Signal Flow:
1. NewMachine maps the register block and frame window onto the bus
2. Run ticks the controller one full frame of scanlines per interval
3. The controller pushes snapshots to the sink as it ticks
4. Sink key bytes flow back into the controller's text engine
*/

package main

import (
	"time"
)

// doneNotifier is implemented by sinks that can end the session, such
// as a closed window or Ctrl+C on a tty.
type doneNotifier interface {
	Done() <-chan struct{}
}

// hardResetSetter is implemented by sinks with a reset key binding.
type hardResetSetter interface {
	SetHardResetHandler(fn func())
}

type MachineConfig struct {
	Backend  int
	Scale    int
	PerfMode bool
}

// Machine is one display adapter wired to one bus and one sink.
type Machine struct {
	Bus    *SystemBus
	ODC    *ODCEngine
	Output VideoOutput

	cfg MachineConfig
}

func NewMachine(cfg MachineConfig) (*Machine, error) {
	output, err := NewVideoOutput(cfg.Backend)
	if err != nil {
		return nil, err
	}

	odc := NewODCEngine(nil)
	odc.SetPerformanceMode(cfg.PerfMode)
	odc.AttachOutput(output)
	output.SetKeyHandler(odc.HandleKey)

	bus := NewSystemBus()
	bus.MapIO(ODC_CONTROL, ODC_REG_END, odc.HandleRead, odc.HandleWrite)
	bus.MapIO(ODC_FB_WINDOW, ODC_FB_WINDOW_END, odc.HandleRead, odc.HandleWrite)

	m := &Machine{
		Bus:    bus,
		ODC:    odc,
		Output: output,
		cfg:    cfg,
	}
	if hr, ok := output.(hardResetSetter); ok {
		hr.SetHardResetHandler(m.HardReset)
	}
	return m, nil
}

func (m *Machine) Start() error {
	err := m.Output.SetDisplayConfig(DisplayConfig{
		Width:       ODC_WIDTH,
		Height:      ODC_HEIGHT,
		Scale:       m.cfg.Scale,
		RefreshRate: m.ODC.TargetHz(),
		PixelFormat: PIXEL_FORMAT_MONO1,
		VSync:       true,
	})
	if err != nil {
		return err
	}
	return m.Output.Start()
}

func (m *Machine) Stop() {
	_ = m.Output.Stop()
	_ = m.Output.Close()
}

// HardReset returns the adapter and bus to power-on state. Bound to
// the sink's reset key when the sink has one.
func (m *Machine) HardReset() {
	m.ODC.Reset()
	m.Bus.Reset()
}

// Run drives the update loop until stop closes or the sink reports
// the session is over. Each interval advances one full frame of
// scanline ticks; onFrame, when set, runs before each frame so demo
// scenes can issue bus traffic from the driving goroutine. The
// controller is single threaded, so everything that touches it
// happens here.
func (m *Machine) Run(stop <-chan struct{}, onFrame func(frame uint64)) {
	interval := time.Second / time.Duration(m.ODC.TargetHz())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var done <-chan struct{}
	if dn, ok := m.Output.(doneNotifier); ok {
		done = dn.Done()
	}

	var frame uint64
	for {
		select {
		case <-stop:
			return
		case <-done:
			return
		case <-ticker.C:
			if onFrame != nil {
				onFrame(frame)
			}
			for i := 0; i < ODC_HEIGHT; i++ {
				m.ODC.UpdateFrame()
			}
			frame++
		}
	}
}
