package pkg

import (
	"path/filepath"

	"github.com/hansbonini/xv2save/pkg/ps4"
)

// Location carries the naming context of a conversion. InputPath only names
// the leftovers sidecar; its contents are never read. Dir is where sidecars
// are read and written; when empty the directory of InputPath is used.
type Location struct {
	InputPath string
	Dir       string
}

// SidecarDir returns the directory that holds leftovers sidecars
func (l Location) SidecarDir() string {
	if l.Dir != "" {
		return l.Dir
	}
	if l.InputPath != "" {
		return filepath.Dir(l.InputPath)
	}
	return "."
}

// PS4Save represents a parsed PS4 save container:
// [MD5 header][#SAV header][middle][Z byte]
type PS4Save struct {
	MD5Header [ps4.MD5HeaderSize]byte // Opaque, moved verbatim
	SavHeader [ps4.SavHeaderSize]byte // Starts with "#SAV"
	Middle    []byte                  // Payload, starts with a second "#SAV" block
	ZByte     byte                    // Trailing byte, preserved as-is
}

// Head returns the payload bytes that precede the marker in PC-ready form
func (s *PS4Save) Head() []byte { return s.Middle[:ps4.HeadSize] }

// Segment returns the payload between the head bytes and the HCD section
func (s *PS4Save) Segment() []byte { return s.Middle[ps4.HeadSize:ps4.HCDStartInMiddle] }

// HCD returns the Hero Coliseum data section
func (s *PS4Save) HCD() []byte { return s.Middle[ps4.HCDStartInMiddle:] }

// PCReadySave represents a parsed PC-ready save container:
// [head][marker][segment][fill][HCD present][Z byte][#SAV header][MD5 header]
type PCReadySave struct {
	MD5Header  [ps4.MD5HeaderSize]byte
	SavHeader  [ps4.SavHeaderSize]byte
	Head       [ps4.HeadSize]byte
	MarkerRaw  [ps4.MarkerSize]byte
	Segment    []byte
	HCDPresent []byte // HCD bytes that fit before the Z byte
	ZByte      byte
}

// Result is the outcome of a single conversion
type Result struct {
	Data          []byte // Freshly allocated output, owned by the caller
	Direction     Direction
	LeftoversPath string // Sidecar written or read, empty when none
	LeftoversSize int
}

// Direction names the conversion that produced a Result
type Direction string

const (
	DirectionPS4ToPC Direction = "PS4→PC"
	DirectionPCToPS4 Direction = "PC→PS4"
)

// PS4Transcoder converts PS4 saves to PC-ready form
type PS4Transcoder interface {
	PS4ToPCReady(data []byte, loc Location) ([]byte, error)
}

// PCReadyTranscoder converts PC-ready saves back to PS4 form
type PCReadyTranscoder interface {
	PCReadyToPS4(data []byte, loc Location, restoreLeftovers bool) ([]byte, error)
}

// SaveConverter combines both transcoders with format detection
type SaveConverter interface {
	PS4Transcoder
	PCReadyTranscoder
	ConvertAuto(data []byte, loc Location) ([]byte, error)
	Convert(data []byte, loc Location, mode Mode) (*Result, error)
}
