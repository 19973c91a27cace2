package pkg

import (
	"path/filepath"
	"testing"

	"github.com/hansbonini/xv2save/pkg/ps4"
)

// trimmedRange is where the HCD bytes that overflow the PC-ready layout sit
// in a PS4 save: the 0xA0 bytes right before the Z byte.
const (
	trimmedStart = ps4.SaveSize - 1 - 0xA0
	trimmedEnd   = ps4.SaveSize - 1
)

// newPS4Save builds a synthetic PS4 save filled with a non-repeating pattern.
// Without leftovers the overflowing HCD tail is zeroed.
func newPS4Save(t *testing.T, leftovers bool) []byte {
	t.Helper()
	data := make([]byte, ps4.SaveSize)
	for i := range data {
		data[i] = byte(i%251) + 1
	}
	copy(data[ps4.MD5HeaderSize:], ps4.SavMagic[:])
	copy(data[ps4.MD5HeaderSize+ps4.SavHeaderSize:], ps4.SavMagic[:])
	if !leftovers {
		clear(data[trimmedStart:trimmedEnd])
	}
	data[len(data)-1] = 0x5A
	return data
}

// newMinimalPS4Save builds a PS4 save with both "#SAV" blocks and an empty
// (all zero) payload.
func newMinimalPS4Save() []byte {
	data := make([]byte, ps4.SaveSize)
	copy(data[ps4.MD5HeaderSize:], ps4.SavMagic[:])
	copy(data[ps4.MD5HeaderSize+ps4.SavHeaderSize:], ps4.SavMagic[:])
	return data
}

// tempLocation returns a location whose sidecars live in a fresh directory.
func tempLocation(t *testing.T) Location {
	t.Helper()
	dir := t.TempDir()
	return Location{InputPath: filepath.Join(dir, ps4.PS4FileName), Dir: dir}
}
