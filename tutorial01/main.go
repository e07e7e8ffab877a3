// Tutorial01 opens a window and clears it to black.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfinit/gltutorials/config"
	"github.com/adinfinit/gltutorials/gfx"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	cfg := config.MustParse()

	stopProfile, err := cfg.StartProfile()
	if err != nil {
		return err
	}
	defer stopProfile()

	window, err := gfx.OpenWindow(cfg, "Tutorial01")
	if err != nil {
		return err
	}
	defer window.Close()

	gl.ClearColor(0, 0, 0, 0)

	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)
		window.Present()
	}

	return nil
}
