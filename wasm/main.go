//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("AnnoAnnotate", js.FuncOf(annotate))
	js.Global().Set("AnnoDump", js.FuncOf(dump))
	js.Global().Set("AnnoTypes", js.FuncOf(listTypes))

	// Keep WASM running
	<-make(chan struct{})
}
