package pkg

import (
	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
)

// Format classifies a save buffer
type Format int

const (
	FormatUnknown Format = iota
	FormatConsole        // PS4 container
	FormatPCReady        // PC-ready container
)

// String returns the human-readable name of a format
func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "PS4"
	case FormatPCReady:
		return "PC-ready"
	default:
		return "unknown"
	}
}

// HasDualMagic reports whether "#SAV" is present at 0x20 and 0xA0, the start
// of the header block and of the payload in a PS4 save
func HasDualMagic(data []byte) bool {
	return len(data) >= ps4.MinSaveSize &&
		common.HasMagicAt(data, ps4.MD5HeaderSize, ps4.SavMagic[:]) &&
		common.HasMagicAt(data, ps4.MD5HeaderSize+ps4.SavHeaderSize, ps4.SavMagic[:])
}

// LooksLikePCReady reports whether data carries a v2 marker, has the PC-ready
// size and holds the "#SAV" trailer. The Z byte is accepted with any value.
func LooksLikePCReady(data []byte) bool {
	if _, ok := TryReadMarker(data); !ok {
		return false
	}
	if len(data) != ps4.PCReadySize {
		return false
	}
	return common.HasMagicAt(data, ps4.PCTrailerOffset, ps4.SavMagic[:])
}

// Detect classifies data without modifying it. Anything that does not match a
// known layout exactly is FormatUnknown.
func Detect(data []byte) Format {
	format := FormatUnknown
	switch {
	case len(data) == ps4.SaveSize && HasDualMagic(data):
		format = FormatConsole
	case LooksLikePCReady(data):
		format = FormatPCReady
	}
	common.LogDebug(common.DebugDetected, format, len(data))
	return format
}

// Info describes a save buffer for display
type Info struct {
	Format       Format `yaml:"format"`
	Size         int    `yaml:"size"`
	HasMarker    bool   `yaml:"has_marker"`
	MarkerFlag   byte   `yaml:"marker_flag,omitempty"`
	Version      byte   `yaml:"version,omitempty"`
	HasLeftovers bool   `yaml:"has_leftovers"`
}

// Inspect returns detection details for data
func Inspect(data []byte) Info {
	info := Info{
		Format: Detect(data),
		Size:   len(data),
	}
	if HasMarkerSignature(data) {
		o := ps4.MarkerOffset
		info.HasMarker = true
		info.MarkerFlag = data[o+5]
		info.Version = data[o+7]
		info.HasLeftovers = info.MarkerFlag == ps4.FlagLeftovers
	}
	return info
}

// MarshalYAML encodes a format by name
func (f Format) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}
