package pkg

import (
	"errors"

	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
)

// DecodePCReady parses a PC-ready save container. The marker is kept raw and
// not validated; callers that need it use ReadMarker.
func DecodePCReady(data []byte) (*PCReadySave, error) {
	const op = "pctops4"
	if len(data) != ps4.PCReadySize {
		return nil, common.InvalidInput(op, "%s: expected editor size 0x%X, got 0x%X", common.ErrUnexpectedSize, ps4.PCReadySize, len(data))
	}
	if !common.HasMagicAt(data, ps4.PCTrailerOffset, ps4.SavMagic[:]) {
		return nil, common.InvalidInput(op, common.ErrMissingTrailerMagic)
	}

	segment, err := common.SafeSlice(data, ps4.HeadSize+ps4.MarkerSize, ps4.MiddleSegmentSize)
	if err != nil {
		return nil, common.InvalidInput(op, "middle segment: %v", err)
	}
	hcd, err := common.SafeSlice(data, ps4.HCDStartPCReady, ps4.PCZIndex-ps4.HCDStartPCReady)
	if err != nil {
		return nil, common.InvalidInput(op, "HCD section: %v", err)
	}

	save := &PCReadySave{
		Segment:    segment,
		HCDPresent: hcd,
		ZByte:      data[ps4.PCZIndex],
	}
	copy(save.Head[:], data[:ps4.HeadSize])
	copy(save.MarkerRaw[:], data[ps4.MarkerOffset:ps4.MarkerOffset+ps4.MarkerSize])
	copy(save.SavHeader[:], data[ps4.PCTrailerOffset:ps4.PCTrailerOffset+ps4.SavHeaderSize])
	copy(save.MD5Header[:], data[ps4.PCReadySize-ps4.MD5HeaderSize:])
	return save, nil
}

// Missing returns how many HCD bytes were trimmed when the save was packed
func (s *PCReadySave) Missing() int {
	return ps4.HCDSize - len(s.HCDPresent)
}

// restoreTail fills tail from the leftovers sidecar. The sidecar is looked up
// by the input name, then by the default PS4 save name it was written under
// when that save was converted. A missing sidecar is fatal only under
// LeftoversStrict and only when expected is set.
func (c *Converter) restoreTail(loc Location, tail []byte, expected bool) (string, error) {
	data, path, err := c.store(loc).Read(loc.InputPath, ps4.PS4FileName)
	if errors.Is(err, common.ErrLeftoversMissing) {
		switch {
		case !expected:
			common.LogDebug(common.DebugNoSidecar)
		case c.policy == LeftoversStrict:
			return "", err
		default:
			common.LogWarn(common.WarnLeftoversMissing)
		}
		return "", nil
	}
	if err != nil {
		return "", err
	}

	take := copy(tail, data)
	if take < len(tail) {
		common.LogWarn(common.WarnLeftoversShort, len(data), len(tail))
	}
	common.LogInfo(common.InfoLeftoversUsed, path, take)
	return path, nil
}

// sidecarExpected reports whether data may have a sidecar: anything but a
// valid marker carrying the no-leftovers flag.
func sidecarExpected(data []byte) bool {
	marker, ok := TryReadMarker(data)
	return !ok || marker.HasLeftovers()
}

// pcReadyToPS4 rebuilds a PS4 save. With restoreLeftovers unset the trimmed
// HCD tail is zero-filled and the filesystem is never touched.
func (c *Converter) pcReadyToPS4(data []byte, loc Location, restoreLeftovers bool) (*Result, error) {
	const op = "pctops4"
	save, err := DecodePCReady(data)
	if err != nil {
		return nil, err
	}

	missing := save.Missing()
	if missing < 0 {
		return nil, common.InvalidInput(op, "%s (missing=0x%X)", common.ErrHCDLargerThanFull, -missing)
	}
	common.LogDebug(common.DebugSplitPCReady, len(save.HCDPresent), missing, save.ZByte)

	result := &Result{Direction: DirectionPCToPS4}
	tail := make([]byte, missing)
	if missing > 0 && restoreLeftovers {
		path, err := c.restoreTail(loc, tail, sidecarExpected(data))
		if err != nil {
			return nil, err
		}
		if path != "" {
			result.LeftoversPath = path
			result.LeftoversSize = missing
		}
	}

	// [MD5 header][#SAV header][head][segment][HCD present][HCD tail][Z]
	out := make([]byte, ps4.SaveSize)
	m := copy(out, save.MD5Header[:])
	m += copy(out[m:], save.SavHeader[:])
	m += copy(out[m:], save.Head[:])
	m += copy(out[m:], save.Segment)
	m += copy(out[m:], save.HCDPresent)
	m += copy(out[m:], tail)
	if m != ps4.SaveSize-1 {
		return nil, common.InvalidInput(op, "%s: middle ends at 0x%X, want 0x%X", common.ErrInternalSizeMismatch, m, ps4.SaveSize-1)
	}
	out[m] = save.ZByte

	if !HasDualMagic(out) {
		return nil, common.InvalidInput(op, "%s: produced PS4 save without '#SAV' at 0x20 and 0xA0", common.ErrOutputSanity)
	}

	result.Data = out
	return result, nil
}

// PCReadyToPS4 converts a PC-ready save to PS4 form. restoreLeftovers asks for
// the trimmed HCD tail to be read back from the sidecar.
func (c *Converter) PCReadyToPS4(data []byte, loc Location, restoreLeftovers bool) ([]byte, error) {
	result, err := c.pcReadyToPS4(data, loc, restoreLeftovers)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
