package pkg

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix is appended to the sidecar name when it is zstd-compressed
const CompressedSuffix = ".zst"

// Shared zstd codecs; both are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("leftovers: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("leftovers: zstd decoder initialization failed: " + err.Error())
	}
}

// LeftoversStore reads and writes the sidecar holding HCD bytes that do not
// fit into a PC-ready save. The raw sidecar is "<input name>.leftovers.dec";
// with Compress set it is written zstd-compressed with a ".zst" suffix.
//
// Concurrent conversions writing to the same directory and input name must be
// serialized by the caller.
type LeftoversStore struct {
	Dir      string
	Compress bool
}

// NewLeftoversStore creates a store rooted at dir
func NewLeftoversStore(dir string, compress bool) *LeftoversStore {
	return &LeftoversStore{Dir: dir, Compress: compress}
}

// Path returns the sidecar path the store writes for inputPath
func (s *LeftoversStore) Path(inputPath string) string {
	name := filepath.Base(inputPath)
	if inputPath == "" || name == "." || name == string(filepath.Separator) {
		name = ps4.PCReadyFileName
	}
	path := filepath.Join(s.Dir, name+ps4.LeftoversSuffix)
	if s.Compress {
		path += CompressedSuffix
	}
	return path
}

// Write stores data as the sidecar for inputPath and returns its path
func (s *LeftoversStore) Write(inputPath string, data []byte) (string, error) {
	const op = "leftovers"
	path := s.Path(inputPath)
	payload := data
	if s.Compress {
		payload = zstdEncoder.EncodeAll(data, make([]byte, 0, len(data)))
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", common.IOFailure(op, common.ErrFailedToWriteLeftovers+": "+path, err)
	}
	if err := s.remove(inputPath, !s.Compress); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes both sidecar variants stored for inputPath. Absent files are
// not an error.
func (s *LeftoversStore) Remove(inputPath string) error {
	for _, compressed := range []bool{false, true} {
		if err := s.remove(inputPath, compressed); err != nil {
			return err
		}
	}
	return nil
}

func (s *LeftoversStore) remove(inputPath string, compressed bool) error {
	const op = "leftovers"
	path := (&LeftoversStore{Dir: s.Dir, Compress: compressed}).Path(inputPath)
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return common.IOFailure(op, common.ErrFailedToRemoveLeftovers+": "+path, err)
	}
	common.LogDebug(common.DebugStaleSidecar, path)
	return nil
}

// Read loads the first sidecar found for inputPaths, in order. For each name
// the variant matching Compress is tried first, then the other one. When none
// exists the error matches ErrLeftoversMissing.
func (s *LeftoversStore) Read(inputPaths ...string) ([]byte, string, error) {
	const op = "leftovers"
	for _, inputPath := range inputPaths {
		for _, compressed := range []bool{s.Compress, !s.Compress} {
			path := (&LeftoversStore{Dir: s.Dir, Compress: compressed}).Path(inputPath)
			common.LogDebug(common.DebugSidecarPath, path)

			payload, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, "", common.IOFailure(op, common.ErrFailedToReadLeftovers+": "+path, err)
			}
			if !compressed {
				return payload, path, nil
			}
			data, err := zstdDecoder.DecodeAll(payload, nil)
			if err != nil {
				return nil, "", common.IOFailure(op, common.ErrFailedToDecompress+": "+path, err)
			}
			return data, path, nil
		}
	}
	return nil, "", common.NewError(common.KindLeftoversMissing, op, "no sidecar for %v in %s", inputPaths, s.Dir)
}
