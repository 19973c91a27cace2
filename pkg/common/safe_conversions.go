package common

import "fmt"

// SafeSlice returns data[offset:offset+length] with bounds checking
func SafeSlice(data []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 {
		return nil, fmt.Errorf("negative range: offset %d, length %d", offset, length)
	}
	if offset+length > len(data) {
		return nil, fmt.Errorf("range 0x%X+0x%X out of bounds (size 0x%X)", offset, length, len(data))
	}
	return data[offset : offset+length], nil
}

// SafeCopy copies src into dst at offset, failing instead of panicking when
// src does not fit
func SafeCopy(dst []byte, offset int, src []byte) (int, error) {
	if offset < 0 || offset+len(src) > len(dst) {
		return 0, fmt.Errorf("cannot copy 0x%X bytes at 0x%X into buffer of size 0x%X", len(src), offset, len(dst))
	}
	return copy(dst[offset:], src), nil
}
