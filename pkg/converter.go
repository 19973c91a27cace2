// Package pkg provides conversion of Dragon Ball Xenoverse 2 save files
// between the PS4 container (SDATA000.DAT) and the PC-ready container used by
// PC save editors.
//
// Every conversion is a synchronous function over an in-memory buffer. Output
// slices are fresh allocations that never alias the input; on failure no
// output is returned. The only state shared between calls is the leftovers
// sidecar on disk.
package pkg

import (
	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
)

// Mode selects the conversion direction
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModePS4ToPC Mode = "ps4topc"
	ModePCToPS4 Mode = "pctops4"
)

// ParseMode parses a conversion mode name
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeAuto, ModePS4ToPC, ModePCToPS4:
		return Mode(name), nil
	case "":
		return ModeAuto, nil
	default:
		return "", common.FormatError(common.ErrUnknownMode, name)
	}
}

// LeftoversPolicy decides what happens when a sidecar is requested but absent
type LeftoversPolicy string

const (
	// LeftoversFallback warns and zero-fills the missing HCD tail.
	LeftoversFallback LeftoversPolicy = "fallback"
	// LeftoversStrict fails with a leftovers-missing error. A save whose
	// marker carries the no-leftovers flag never needed a sidecar, so a
	// missing one is not an error there.
	LeftoversStrict LeftoversPolicy = "strict"
)

// ParseLeftoversPolicy parses a policy name; empty means fallback
func ParseLeftoversPolicy(name string) (LeftoversPolicy, error) {
	switch LeftoversPolicy(name) {
	case LeftoversFallback, "":
		return LeftoversFallback, nil
	case LeftoversStrict:
		return LeftoversStrict, nil
	default:
		return "", common.FormatError(common.ErrUnknownLeftoversPolicy, name)
	}
}

// Converter dispatches conversions between the two save layouts
type Converter struct {
	policy   LeftoversPolicy
	compress bool
}

// Option configures a Converter
type Option func(*Converter)

// WithLeftoversPolicy sets the missing-sidecar policy
func WithLeftoversPolicy(policy LeftoversPolicy) Option {
	return func(c *Converter) {
		c.policy = policy
	}
}

// WithCompressedLeftovers writes sidecars zstd-compressed
func WithCompressedLeftovers(compress bool) Option {
	return func(c *Converter) {
		c.compress = compress
	}
}

// NewConverter creates a converter with the fallback policy and raw sidecars
func NewConverter(opts ...Option) *Converter {
	c := &Converter{policy: LeftoversFallback}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) store(loc Location) *LeftoversStore {
	return NewLeftoversStore(loc.SidecarDir(), c.compress)
}

// convertAuto detects the input format and dispatches. PC-ready input takes
// its leftovers flag from the marker.
func (c *Converter) convertAuto(data []byte, loc Location) (*Result, error) {
	const op = "auto"
	if len(data) < ps4.MinSaveSize {
		return nil, common.InvalidInput(op, "%s: %d bytes, need at least 0x%X", common.ErrInputTooSmall, len(data), ps4.MinSaveSize)
	}
	format := Detect(data)
	switch format {
	case FormatConsole:
		common.LogDebug(common.DebugDispatch, format, DirectionPS4ToPC)
		return c.ps4ToPCReady(data, loc)
	case FormatPCReady:
		marker, err := ReadMarker(data)
		if err != nil {
			return nil, err
		}
		common.LogDebug(common.DebugDispatch, format, DirectionPCToPS4)
		return c.pcReadyToPS4(data, loc, marker.HasLeftovers())
	}

	if HasMarkerSignature(data) {
		if _, err := ReadMarker(data); common.KindOf(err) == common.KindUnsupportedVersion {
			return nil, err
		}
		return nil, common.NewError(common.KindDetectionFailed, op, "marker says v2 but layout sanity checks failed")
	}
	return nil, common.NewError(common.KindDetectionFailed, op, "unknown format (%d bytes)", len(data))
}

// ConvertAuto detects the input format and converts to the other one
func (c *Converter) ConvertAuto(data []byte, loc Location) ([]byte, error) {
	result, err := c.convertAuto(data, loc)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Convert runs a conversion in the given mode and reports what it did. In
// pctops4 mode the leftovers flag is read from the marker, which must be valid.
func (c *Converter) Convert(data []byte, loc Location, mode Mode) (*Result, error) {
	switch mode {
	case ModePS4ToPC:
		return c.ps4ToPCReady(data, loc)
	case ModePCToPS4:
		marker, err := ReadMarker(data)
		if err != nil {
			return nil, err
		}
		return c.pcReadyToPS4(data, loc, marker.HasLeftovers())
	case ModeAuto, "":
		return c.convertAuto(data, loc)
	default:
		return nil, common.FormatError(common.ErrUnknownMode, mode)
	}
}

var defaultConverter = NewConverter()

// PS4ToPCReady converts a PS4 save using the default converter
func PS4ToPCReady(data []byte, loc Location) ([]byte, error) {
	return defaultConverter.PS4ToPCReady(data, loc)
}

// PCReadyToPS4 converts a PC-ready save using the default converter
func PCReadyToPS4(data []byte, loc Location, restoreLeftovers bool) ([]byte, error) {
	return defaultConverter.PCReadyToPS4(data, loc, restoreLeftovers)
}

// ConvertAuto detects and converts using the default converter
func ConvertAuto(data []byte, loc Location) ([]byte, error) {
	return defaultConverter.ConvertAuto(data, loc)
}

// Release wipes a buffer returned by a conversion. The caller must not use
// buf afterwards. Releasing a buffer that did not come from a conversion, or
// releasing one twice, is a caller error and is not detected.
func Release(buf []byte) {
	common.LogDebug(common.DebugReleaseBuffer, len(buf))
	clear(buf)
}
