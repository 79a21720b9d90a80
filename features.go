package main

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// compiledFeatures collects "category:name" strings registered from init()
// in build-tagged files, so -features reflects what this binary contains.
var compiledFeatures []string

func printFeatures() {
	fmt.Printf("OrionDisplay %s\n", Version)
	fmt.Printf("  Device:    ODC %dx%d mono, %d Hz reference cadence\n", ODC_WIDTH, ODC_HEIGHT, ODC_REFRESH_HZ)
	fmt.Printf("  Toolchain: %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if len(compiledFeatures) == 0 {
		fmt.Println("  Features:  (none)")
		return
	}
	sort.Strings(compiledFeatures)
	fmt.Printf("  Features:  %s\n", strings.Join(compiledFeatures, ", "))
}
