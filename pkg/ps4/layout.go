// Package ps4 provides the byte-level layout of Xenoverse 2 save containers.
// This file contains size, offset and signature constants for both the PS4
// container (SDATA000.DAT) and the PC-ready container used by PC save editors.
package ps4

// Container sizes
const (
	SaveSize    = 0x12A200 // PS4 save file size (includes the 0x20 byte MD5 header)
	PCReadySize = 0x12A1F8 // PC-ready save file size
)

// Section sizes and offsets
const (
	MD5HeaderSize = 0x20 // Opaque MD5 header at the start of a PS4 save
	SavHeaderSize = 0x80 // "#SAV" block following the MD5 header
	MarkerOffset  = 0x08 // Offset of the 8-byte format marker in a PC-ready save
	MarkerSize    = 8
	HeadSize      = 8 // Payload bytes kept in front of the marker

	// MinSaveSize is the smallest buffer in which both "#SAV" signatures fit.
	MinSaveSize = MD5HeaderSize + SavHeaderSize + len(SavMagic)
)

// Hero Coliseum data alignment
const (
	HCDStartPS4     = 0x07BCA0 // Absolute HCD start in a PS4 save
	HCDStartPCReady = 0x07BCB8 // Absolute HCD start expected in a PC-ready save
)

// SavMagic identifies save data sections.
var SavMagic = [4]byte{'#', 'S', 'A', 'V'}

// Marker signature: 58 56 32 53 41 <flag> D6 <version> ("XV2SA")
var MarkerSignature = [5]byte{'X', 'V', '2', 'S', 'A'}

const (
	MarkerFixed byte = 0xD6 // Fixed byte between flag and version

	FlagNoLeftovers byte = 0x54 // 'T' - nothing stored in a sidecar file
	FlagLeftovers   byte = 0x2B // '+' - trimmed data stored in a sidecar file

	VersionV2 byte = 0x31
)

// Derived layout values shared by both transcoders
const (
	// MiddleSize is the PS4 payload between the headers and the trailing Z byte.
	MiddleSize = SaveSize - MD5HeaderSize - SavHeaderSize - 1

	// HCDStartInMiddle is the HCD start relative to the PS4 middle section.
	HCDStartInMiddle = HCDStartPS4 - SavHeaderSize

	// MiddleSegmentSize is the data between the head bytes and the HCD section.
	MiddleSegmentSize = HCDStartInMiddle - HeadSize

	// HCDSize is the full HCD section length in a PS4 save.
	HCDSize = MiddleSize - HCDStartInMiddle

	// PackedSize is the PC-ready data length before the Z byte and the trailer.
	PackedSize = PCReadySize - 1 - SavHeaderSize - MD5HeaderSize

	// PCTrailerOffset is where the "#SAV" block sits in a PC-ready save.
	PCTrailerOffset = PCReadySize - MD5HeaderSize - SavHeaderSize

	// PCZIndex is the position of the Z byte in a PC-ready save.
	PCZIndex = PCTrailerOffset - 1
)

// Default output file names
const (
	PS4FileName     = "SDATA000.DAT"
	PCReadyFileName = "EditorReady.sav"
	LeftoversSuffix = ".leftovers.dec"
)
