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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/hardware/chip8"
	"github.com/degiel1982/gopher8/romloader"
	"github.com/degiel1982/gopher8/test"
)

func writeRom(t *testing.T, data []byte) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatalf("could not write test rom: %v", err)
	}
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeRom(t, []byte{0x12, 0x00})

	ld := romloader.NewLoader(fn)
	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, len(ld.Data), 2)
	test.Equate(t, ld.Data[0], 0x12)

	// sha1 of the bytes 0x12 0x00
	test.Equate(t, len(ld.Hash), 40)
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no such file"))
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.FileError))
}

func TestLoadEmptyFile(t *testing.T) {
	fn := writeRom(t, []byte{})

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.FileIsEmpty))
}

func TestLoadTooLarge(t *testing.T) {
	fn := writeRom(t, make([]byte, chip8.MaxRomSize+1))

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.FileTooLarge))

	// exactly the maximum is fine
	fn = writeRom(t, make([]byte, chip8.MaxRomSize))
	ld = romloader.NewLoader(fn)
	test.ExpectedSuccess(t, ld.Load())
}

func TestHashValidation(t *testing.T) {
	fn := writeRom(t, []byte{0x12, 0x00})

	// load once to learn the hash
	ld := romloader.NewLoader(fn)
	test.ExpectedSuccess(t, ld.Load())
	hash := ld.Hash

	// a correct hash validates
	ld = romloader.NewLoader(fn)
	ld.Hash = hash
	test.ExpectedSuccess(t, ld.Load())

	// a wrong hash is refused
	ld = romloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.HashMismatch))
}
