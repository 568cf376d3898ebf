// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is an SDL implementation of the gui.GUI interface: an
// upscaled window for the framebuffer, the host keyboard as the keypad and
// an SDL audio queue for the buzzer.
package sdlplay

import (
	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/gui"
	"github.com/degiel1982/gopher8/hardware/chip8"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// colours for lit and dark pixels. an amber-on-black palette in the style of
// the small OLED display the core was written for
var litPixel = [pixelDepth]byte{0xff, 0xbf, 0x00, 0xff}
var darkPixel = [pixelDepth]byte{0x10, 0x10, 0x10, 0xff}

// SdlPlay is an SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	ch8 *chip8.CHIP8

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// it to the renderer. scaling is left to the renderer
	pixels [chip8.ScreenWidth * chip8.ScreenHeight * pixelDepth]byte

	snd *sound

	// translation of sdl keycodes to keypad indexes
	keyMap map[sdl.Keycode]uint8
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// Scale is the size of a single framebuffer pixel in window pixels.
func NewSdlPlay(ch8 *chip8.CHIP8, scale int) (gui.GUI, error) {
	scr := &SdlPlay{ch8: ch8}

	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(chip8.ScreenWidth*scale), int32(chip8.ScreenHeight*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		chip8.ScreenWidth, chip8.ScreenHeight)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, err
	}

	// start from an all-dark screen
	for i := 0; i < len(scr.pixels); i += pixelDepth {
		copy(scr.pixels[i:], darkPixel[:])
	}

	scr.keyMap = make(map[sdl.Keycode]uint8)
	for r, k := range gui.KeyMap {
		scr.keyMap[sdl.Keycode(r)] = k
	}

	return scr, nil
}

// Service implements the gui.GUI interface.
func (scr *SdlPlay) Service() error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return curated.Errorf(gui.Quit)

		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return curated.Errorf(gui.Quit)
			}
			if key, ok := scr.keyMap[ev.Keysym.Sym]; ok {
				scr.ch8.SetKeyState(key, ev.Type == sdl.KEYDOWN)
			}
		}
	}

	if scr.ch8.NeedToDraw() {
		if err := scr.repaint(); err != nil {
			return err
		}
		scr.ch8.ResetDraw()
	}

	return scr.snd.service(scr.ch8.Sound())
}

// repaint the dirty regions of the framebuffer and present the frame.
func (scr *SdlPlay) repaint() error {
	dirty := scr.ch8.Dirty()

	for y := 0; y < chip8.ScreenHeight; y++ {
		for c := 0; c < chip8.ScreenWidth/chip8.DirtyChunk; c++ {
			if dirty[y][c] == 0 {
				continue
			}

			for bit := 0; bit < chip8.DirtyChunk; bit++ {
				x := c*chip8.DirtyChunk + bit
				o := (y*chip8.ScreenWidth + x) * pixelDepth
				if scr.ch8.Pixel(x, y) {
					copy(scr.pixels[o:], litPixel[:])
				} else {
					copy(scr.pixels[o:], darkPixel[:])
				}
			}

			dirty[y][c] = 0
		}
	}

	err := scr.texture.Update(nil, scr.pixels[:], chip8.ScreenWidth*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	scr.snd.destroy()
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
