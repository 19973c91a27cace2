// Package pkg provides tests for the PC-ready format marker
package pkg

import (
	"errors"
	"testing"

	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
)

func TestMarker_Bytes(t *testing.T) {
	testCases := []struct {
		name      string
		leftovers bool
		expected  [8]byte
	}{
		{"no leftovers", false, [8]byte{0x58, 0x56, 0x32, 0x53, 0x41, 0x54, 0xD6, 0x31}},
		{"leftovers", true, [8]byte{0x58, 0x56, 0x32, 0x53, 0x41, 0x2B, 0xD6, 0x31}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMarker(tc.leftovers)
			if got := m.Bytes(); got != tc.expected {
				t.Errorf("Bytes() = % X, want % X", got, tc.expected)
			}
			if m.HasLeftovers() != tc.leftovers {
				t.Errorf("HasLeftovers() = %v, want %v", m.HasLeftovers(), tc.leftovers)
			}
		})
	}
}

func withMarker(raw [8]byte) []byte {
	data := make([]byte, 0x20)
	copy(data[ps4.MarkerOffset:], raw[:])
	return data
}

func TestReadMarker(t *testing.T) {
	valid := NewMarker(true).Bytes()

	badFlag := valid
	badFlag[5] = 'X'

	badVersion := valid
	badVersion[7] = 0x30

	badFixed := valid
	badFixed[6] = 0x00

	badSignature := valid
	badSignature[0] = 'Y'

	testCases := []struct {
		name   string
		data   []byte
		target error
	}{
		{"valid", withMarker(valid), nil},
		{"too short", withMarker(valid)[:ps4.MarkerOffset+7], common.ErrInvalidInput},
		{"empty", nil, common.ErrInvalidInput},
		{"bad signature", withMarker(badSignature), common.ErrInvalidInput},
		{"bad fixed byte", withMarker(badFixed), common.ErrInvalidInput},
		{"unknown flag", withMarker(badFlag), common.ErrInvalidInput},
		{"unsupported version", withMarker(badVersion), common.ErrUnsupportedVersion},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ReadMarker(tc.data)
			if tc.target == nil {
				if err != nil {
					t.Fatalf("ReadMarker() failed: %v", err)
				}
				if m != NewMarker(true) {
					t.Errorf("ReadMarker() = %+v, want %+v", m, NewMarker(true))
				}
				return
			}
			if !errors.Is(err, tc.target) {
				t.Errorf("ReadMarker() error = %v, want %v", err, tc.target)
			}
			if _, ok := TryReadMarker(tc.data); ok {
				t.Error("TryReadMarker() should fail")
			}
		})
	}
}

func TestHasMarkerSignature(t *testing.T) {
	badVersion := NewMarker(false).Bytes()
	badVersion[7] = 0x7F

	if !HasMarkerSignature(withMarker(badVersion)) {
		t.Error("signature check should ignore the version byte")
	}
	if HasMarkerSignature(make([]byte, 0x20)) {
		t.Error("zero buffer should not carry a signature")
	}
}
