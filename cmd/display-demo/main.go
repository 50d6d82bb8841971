// Command display-demo presents a running console's PPU framebuffer in
// an SDL2 window, scaled up from the native 160x144 resolution.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"gameboy-emulator/internal/console"
	"gameboy-emulator/internal/ppu"
)

const windowScale = 4

// shades maps the PPU's 2-bit color indices to an RGB grayscale ramp,
// the classic Game Boy panel's DMG-1 tint being out of scope here.
var shades = [4]uint32{0xFFFFFFFF, 0xFFAAAAAA, 0xFF555555, 0xFF000000}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: display-demo <cartridge.gb>")
	}

	cartridgeROM, err := os.ReadFile(os.Args[1])
	if err != nil {
		return fmt.Errorf("reading cartridge: %w", err)
	}
	c, err := console.New(nil, cartridgeROM)
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"Game Boy display demo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		ppu.ScreenWidth*windowScale, ppu.ScreenHeight*windowScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				running = false
			}
		}

		if _, err := c.RunFrame(); err != nil {
			return fmt.Errorf("emulation halted: %w", err)
		}

		if err := blit(texture, &c.PPU.Framebuffer); err != nil {
			return err
		}
		renderer.Copy(texture, nil, nil)
		renderer.Present()
	}
	return nil
}

func blit(texture *sdl.Texture, fb *[ppu.ScreenHeight][ppu.ScreenWidth]uint8) error {
	pixels := make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			color := shades[fb[y][x]]
			offset := (y*ppu.ScreenWidth + x) * 4
			pixels[offset+0] = byte(color)
			pixels[offset+1] = byte(color >> 8)
			pixels[offset+2] = byte(color >> 16)
			pixels[offset+3] = byte(color >> 24)
		}
	}
	return texture.Update(nil, pixels, ppu.ScreenWidth*4)
}
