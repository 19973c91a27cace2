package pkg

import (
	"bytes"

	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
)

// Marker is the 8-byte format marker at 0x08 of a PC-ready save:
// 58 56 32 53 41 <flag> D6 <version>
type Marker struct {
	Flag    byte
	Version byte
}

// NewMarker returns a v2 marker with the leftovers flag set accordingly
func NewMarker(hasLeftovers bool) Marker {
	flag := ps4.FlagNoLeftovers
	if hasLeftovers {
		flag = ps4.FlagLeftovers
	}
	return Marker{Flag: flag, Version: ps4.VersionV2}
}

// Bytes returns the on-disk encoding of the marker
func (m Marker) Bytes() [ps4.MarkerSize]byte {
	sig := ps4.MarkerSignature
	return [ps4.MarkerSize]byte{sig[0], sig[1], sig[2], sig[3], sig[4], m.Flag, ps4.MarkerFixed, m.Version}
}

// HasLeftovers reports whether the marker says a sidecar was written
func (m Marker) HasLeftovers() bool {
	return m.Flag == ps4.FlagLeftovers
}

// HasMarkerSignature reports whether the fixed marker bytes are present at 0x08,
// regardless of flag and version
func HasMarkerSignature(data []byte) bool {
	if len(data) < ps4.MarkerOffset+ps4.MarkerSize {
		return false
	}
	o := ps4.MarkerOffset
	return bytes.Equal(data[o:o+len(ps4.MarkerSignature)], ps4.MarkerSignature[:]) &&
		data[o+6] == ps4.MarkerFixed
}

// ReadMarker parses the marker at 0x08. A missing signature or unknown flag is
// invalid input; a known signature with another version is unsupported.
func ReadMarker(data []byte) (Marker, error) {
	const op = "marker"
	if !HasMarkerSignature(data) {
		return Marker{}, common.InvalidInput(op, common.ErrMarkerNotRecognized)
	}

	o := ps4.MarkerOffset
	m := Marker{Flag: data[o+5], Version: data[o+7]}
	common.LogDebug(common.DebugMarker, m.Flag, m.Version)

	if m.Version != ps4.VersionV2 {
		return Marker{}, common.NewError(common.KindUnsupportedVersion, op,
			"%s 0x%02X, only v2 (0x%02X) is supported", common.ErrUnsupportedMarkerVersion, m.Version, ps4.VersionV2)
	}
	if m.Flag != ps4.FlagNoLeftovers && m.Flag != ps4.FlagLeftovers {
		return Marker{}, common.InvalidInput(op, "unknown leftovers flag 0x%02X", m.Flag)
	}
	return m, nil
}

// TryReadMarker is ReadMarker without the error detail
func TryReadMarker(data []byte) (Marker, bool) {
	m, err := ReadMarker(data)
	return m, err == nil
}
