package pkg

import (
	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
)

// DecodePS4 parses a PS4 save container. Input must be exactly the PS4 save
// size with "#SAV" at 0x20 and 0xA0.
func DecodePS4(data []byte) (*PS4Save, error) {
	const op = "ps4topc"
	if len(data) < ps4.MinSaveSize {
		return nil, common.InvalidInput(op, "%s: %d bytes, need at least 0x%X", common.ErrPS4StructureTooSmall, len(data), ps4.MinSaveSize)
	}
	if !HasDualMagic(data) {
		return nil, common.InvalidInput(op, common.ErrMissingDualMagic)
	}
	if len(data) != ps4.SaveSize {
		return nil, common.InvalidInput(op, "%s: expected 0x%X, got 0x%X", common.ErrUnexpectedSize, ps4.SaveSize, len(data))
	}

	save := &PS4Save{
		Middle: data[ps4.MD5HeaderSize+ps4.SavHeaderSize : len(data)-1],
		ZByte:  data[len(data)-1],
	}
	copy(save.MD5Header[:], data[:ps4.MD5HeaderSize])
	copy(save.SavHeader[:], data[ps4.MD5HeaderSize:ps4.MD5HeaderSize+ps4.SavHeaderSize])

	common.LogDebug(common.DebugSplitPS4, len(save.Middle), len(save.Segment()), len(save.HCD()), save.ZByte)
	return save, nil
}

// packPS4 lays out the PC-ready data section:
// [head][marker][segment][fill zeros][HCD], padded or trimmed to the packed
// size. The trimmed tail is returned separately.
func packPS4(save *PS4Save) (packed, trimmed []byte, err error) {
	const op = "ps4topc"
	segment := save.Segment()
	hcd := save.HCD()

	baseHCDStart := ps4.HeadSize + ps4.MarkerSize + len(segment)
	if baseHCDStart > ps4.HCDStartPCReady {
		return nil, nil, common.InvalidInput(op, "%s (0x%X)", common.ErrFillNegative, baseHCDStart-ps4.HCDStartPCReady)
	}
	fill := ps4.HCDStartPCReady - baseHCDStart

	marker := NewMarker(false).Bytes()
	packed = make([]byte, 0, baseHCDStart+fill+len(hcd))
	packed = append(packed, save.Head()...)
	packed = append(packed, marker[:]...)
	packed = append(packed, segment...)
	packed = common.AppendZeros(packed, fill)
	packed = append(packed, hcd...)

	pad := ps4.PackedSize - len(packed)
	common.LogDebug(common.DebugFill, fill, pad)

	switch {
	case pad > 0:
		packed = common.AppendZeros(packed, pad)
	case pad < 0:
		excess := -pad
		if excess > len(packed) {
			return nil, nil, common.InvalidInput(op, common.ErrExcessTrim)
		}
		cut := len(packed) - excess
		trimmed = append([]byte(nil), packed[cut:]...)
		packed = packed[:cut]
	}

	if len(packed) != ps4.PackedSize {
		return nil, nil, common.InvalidInput(op, "%s: packed 0x%X != required 0x%X", common.ErrInternalSizeMismatch, len(packed), ps4.PackedSize)
	}
	return packed, trimmed, nil
}

// ps4ToPCReady converts a PS4 save. Non-zero trimmed HCD bytes go to the
// leftovers sidecar and flip the marker flag to '+'; otherwise any sidecar
// already stored for the input name is removed. Nothing is returned
// unless every step, sidecar write included, succeeds.
func (c *Converter) ps4ToPCReady(data []byte, loc Location) (*Result, error) {
	const op = "ps4topc"
	save, err := DecodePS4(data)
	if err != nil {
		return nil, err
	}

	packed, trimmed, err := packPS4(save)
	if err != nil {
		return nil, err
	}

	leftovers := len(trimmed) > 0 && !common.AllZero(trimmed)
	if len(trimmed) > 0 && !leftovers {
		common.LogDebug(common.DebugTrimAllZero, len(trimmed))
	}

	// [packed][Z][#SAV header][MD5 header]
	out := make([]byte, ps4.PCReadySize)
	copy(out, packed)
	out[ps4.PCZIndex] = save.ZByte
	copy(out[ps4.PCTrailerOffset:], save.SavHeader[:])
	copy(out[ps4.PCReadySize-ps4.MD5HeaderSize:], save.MD5Header[:])

	if leftovers {
		marker := NewMarker(true).Bytes()
		if _, err := common.SafeCopy(out, ps4.MarkerOffset, marker[:]); err != nil {
			return nil, common.InvalidInput(op, "%s: %v", common.ErrOutputSanity, err)
		}
	}

	if !common.HasMagicAt(out, ps4.PCTrailerOffset, ps4.SavMagic[:]) {
		return nil, common.InvalidInput(op, "%s: '#SAV' not found at start of the trailer", common.ErrOutputSanity)
	}

	result := &Result{Data: out, Direction: DirectionPS4ToPC}
	if leftovers {
		path, err := c.store(loc).Write(loc.InputPath, trimmed)
		if err != nil {
			return nil, err
		}
		result.LeftoversPath = path
		result.LeftoversSize = len(trimmed)
		common.LogInfo(common.InfoLeftoversWritten, path, len(trimmed))
	} else if err := c.store(loc).Remove(loc.InputPath); err != nil {
		// A sidecar left by an earlier conversion would be restored into
		// this save later.
		return nil, err
	}
	return result, nil
}

// PS4ToPCReady converts a PS4 save to PC-ready form. The returned slice is a
// fresh allocation.
func (c *Converter) PS4ToPCReady(data []byte, loc Location) ([]byte, error) {
	result, err := c.ps4ToPCReady(data, loc)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
