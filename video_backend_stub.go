//go:build headless

// video_backend_stub.go - Window backend fallback for headless builds

package main

func init() {
	compiledFeatures = append(compiledFeatures, "video:headless-fallback")
}

// NewEbitenOutput in headless builds hands back the null backend so
// callers asking for a window still get a working sink.
func NewEbitenOutput() (VideoOutput, error) {
	return NewHeadlessOutput()
}
