package common

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// HasMagicAt reports whether magic starts at offset in data
func HasMagicAt(data []byte, offset int, magic []byte) bool {
	if offset < 0 || offset+len(magic) > len(data) {
		return false
	}
	return bytes.Equal(data[offset:offset+len(magic)], magic)
}

// AllZero reports whether every byte in data is zero
func AllZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// AppendZeros returns src extended by count zero bytes
func AppendZeros(src []byte, count int) []byte {
	if count <= 0 {
		return src
	}
	return append(src, make([]byte, count)...)
}

// SHA1Hex returns the hex-encoded SHA-1 digest of data
func SHA1Hex(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// BLAKE3Hex returns the hex-encoded 256-bit BLAKE3 digest of data
func BLAKE3Hex(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
