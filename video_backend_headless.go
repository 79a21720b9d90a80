// video_backend_headless.go - Frame-counting null backend

package main

import (
	"sync"
	"sync/atomic"
)

// HeadlessVideoOutput accepts frames without presenting them. It
// counts pushes and keeps the most recent snapshot so tests and
// display-less hosts can still observe controller output.
type HeadlessVideoOutput struct {
	mu        sync.RWMutex
	started   bool
	config    DisplayConfig
	frames    atomic.Uint64
	hz        int
	lastFrame FrameSnapshot
	haveFrame bool
	onKey     func(byte)
}

func NewHeadlessOutput() (VideoOutput, error) {
	return &HeadlessVideoOutput{hz: ODC_REFRESH_HZ}, nil
}

func (h *HeadlessVideoOutput) Start() error {
	h.started = true
	return nil
}

func (h *HeadlessVideoOutput) Stop() error {
	h.started = false
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	return h.Stop()
}

func (h *HeadlessVideoOutput) IsStarted() bool {
	return h.started
}

func (h *HeadlessVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	h.mu.Lock()
	h.config = config
	h.mu.Unlock()
	return nil
}

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.config
}

func (h *HeadlessVideoOutput) PushFrame(frame FrameSnapshot) {
	h.frames.Add(1)
	h.mu.Lock()
	h.lastFrame = frame
	h.haveFrame = true
	h.mu.Unlock()
}

// LastFrame returns the most recently pushed snapshot, if any.
func (h *HeadlessVideoOutput) LastFrame() (FrameSnapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastFrame, h.haveFrame
}

func (h *HeadlessVideoOutput) SetKeyHandler(fn func(byte)) {
	h.mu.Lock()
	h.onKey = fn
	h.mu.Unlock()
}

// InjectKey feeds a byte through the registered key handler as if a
// display had produced it.
func (h *HeadlessVideoOutput) InjectKey(b byte) {
	h.mu.RLock()
	handler := h.onKey
	h.mu.RUnlock()
	if handler != nil {
		handler(b)
	}
}

func (h *HeadlessVideoOutput) WaitForVSync() error {
	return nil
}

func (h *HeadlessVideoOutput) GetFrameCount() uint64 {
	return h.frames.Load()
}

func (h *HeadlessVideoOutput) GetRefreshRate() int {
	if h.hz == 0 {
		return ODC_REFRESH_HZ
	}
	return h.hz
}
