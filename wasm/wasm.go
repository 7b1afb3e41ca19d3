//go:build js && wasm

package main

import (
	"github.com/Skario37/bubbles/wasm/canvas"
)

func main() {
	c := canvas.New()
	c.Render()
}
