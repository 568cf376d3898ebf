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

// Package wavwriter captures the buzzer signal to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety and written to disk
// on EndMixing(). It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/logger"
	"github.com/youpy/go-wav"
)

// SampleFreq is the number of buzzer samples recorded per second. The buzzer
// is sampled once per 60Hz timer tick, so a square wave is synthesised at a
// fixed tone frequency for ticks where the sound flag is up.
const SampleFreq = 11025

// samples per 60Hz tick
const samplesPerTick = SampleFreq / 60

// period of the synthesised square wave, in samples (≈441Hz tone)
const tonePeriod = 25

// WavWriter accumulates one tick of audio at a time and encodes the result
// as an 8-bit mono WAV file.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
	phase    int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// Tick appends one 60Hz tick's worth of samples: a square wave while the
// buzzer is sounding, silence while it is not.
func (aw *WavWriter) Tick(sounding bool) {
	for i := 0; i < samplesPerTick; i++ {
		s := wav.Sample{}
		if sounding {
			aw.phase++
			if (aw.phase/(tonePeriod/2))%2 == 0 {
				s.Values[0] = 0xc0
			} else {
				s.Values[0] = 0x40
			}
		} else {
			s.Values[0] = 0x80
		}
		aw.buffer = append(aw.buffer, s)
	}
}

// EndMixing writes the accumulated samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(SampleFreq), 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	enc.WriteSamples(aw.buffer)

	return nil
}
