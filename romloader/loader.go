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

// Package romloader is how ROM images enter the emulator. A ROM image is an
// opaque byte sequence with no header, at most 3584 bytes long. The loader
// reads the file, fingerprints it and hands the bytes to the core.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/hardware/chip8"
	"github.com/degiel1982/gopher8/logger"
)

// Sentinel errors raised by the Load() function.
const (
	FileError    = "romloader: %v"
	FileTooLarge = "romloader: %s: %d bytes is too large for a rom image (max %d)"
	HashMismatch = "romloader: %s: hash mismatch"
	FileIsEmpty  = "romloader: %s: file is empty"
)

// Loader specifies the ROM image to attach to the machine.
type Loader struct {
	// filename of the ROM image to load
	Filename string

	// expected SHA1 hash of the image. the empty string means the hash is
	// unknown and need not be validated. after a successful Load() the field
	// holds the hash of the loaded data
	Hash string

	// copy of the loaded data. valid after Load()
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load the ROM image from disk. The size limit is enforced here, before the
// bytes reach the core, so that a too-large file is refused rather than
// clamped.
func (ld *Loader) Load() error {
	d, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	if len(d) == 0 {
		return curated.Errorf(FileIsEmpty, ld.Filename)
	}

	if len(d) > chip8.MaxRomSize {
		return curated.Errorf(FileTooLarge, ld.Filename, len(d), chip8.MaxRomSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(d))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch, ld.Filename)
	}

	ld.Data = d
	ld.Hash = hash

	logger.Logf("romloader", "%s (%d bytes, %s)", ld.Filename, len(d), hash)

	return nil
}
