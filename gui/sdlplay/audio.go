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

package sdlplay

import (
	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleFreq = 11025

	// period of the square wave in samples (≈441Hz tone)
	tonePeriod = 25

	// how far ahead of the device to queue samples. queueing too little
	// risks underruns, too much adds latency to the buzzer
	maxQueuedBytes = sampleFreq / 20
)

// sound drives the buzzer through an SDL audio queue. The CHIP-8 buzzer is a
// single tone that is either on or off; a square wave is synthesised on the
// fly while the sound flag is up.
type sound struct {
	id    sdl.AudioDeviceID
	spec  sdl.AudioSpec
	phase int

	// audio is considered optional. if the device could not be opened the
	// buzzer is silently dropped
	ok bool
}

func newSound() (*sound, error) {
	snd := &sound{}

	snd.spec = sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, &snd.spec, &actualSpec, 0)
	if err != nil {
		// an unopenable audio device is not fatal to the emulation
		logger.Logf("sdlplay", "no audio: %v", err)
		return snd, nil
	}

	snd.spec = actualSpec
	snd.ok = true

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// service queues the next batch of samples: a square wave while the buzzer
// is sounding, nothing while it is not. SDL plays silence when the queue is
// empty.
func (snd *sound) service(sounding bool) error {
	if !snd.ok || !sounding {
		return nil
	}

	queued := sdl.GetQueuedAudioSize(snd.id)
	if queued >= maxQueuedBytes {
		return nil
	}

	buf := make([]byte, maxQueuedBytes-queued)
	for i := range buf {
		snd.phase++
		if (snd.phase/(tonePeriod/2))%2 == 0 {
			buf[i] = 0xc0
		} else {
			buf[i] = 0x40
		}
	}

	if err := sdl.QueueAudio(snd.id, buf); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	return nil
}

func (snd *sound) destroy() {
	if snd.ok {
		sdl.CloseAudioDevice(snd.id)
	}
}
