package pkg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hansbonini/xv2save/pkg/common"
)

// SaveProcessor converts save files on disk
type SaveProcessor struct {
	converter SaveConverter
	config    *Config
}

// NewSaveProcessor creates a processor configured by cfg; nil means defaults
func NewSaveProcessor(cfg *Config) (*SaveProcessor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	opts, err := cfg.ConverterOptions()
	if err != nil {
		return nil, err
	}
	return &SaveProcessor{
		converter: NewConverter(opts...),
		config:    cfg,
	}, nil
}

// OutputName returns the file name written for a conversion direction
func (p *SaveProcessor) OutputName(direction Direction) string {
	if direction == DirectionPCToPS4 {
		return p.config.PS4OutputName
	}
	return p.config.PCOutputName
}

// Convert reads inputFile, converts it in the given mode and writes the result
// into outputDir (the input's directory when empty). A leftovers sidecar is
// written next to the PC-ready output and read from next to the PC-ready input,
// so converting the output back finds it.
func (p *SaveProcessor) Convert(inputFile string, mode Mode, outputDir string) (*Report, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToReadInput, err)
	}

	inputDir := filepath.Dir(inputFile)
	if outputDir == "" {
		outputDir = inputDir
	}

	loc := Location{InputPath: inputFile, Dir: inputDir}
	if writesPCReady(data, mode) {
		loc.Dir = outputDir
	}
	result, err := p.converter.Convert(data, loc, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", inputFile, err)
	}

	outputFile := filepath.Join(outputDir, p.OutputName(result.Direction))
	if err := os.WriteFile(outputFile, result.Data, 0644); err != nil {
		return nil, common.FormatError(common.ErrFailedToWriteOutput, err)
	}

	report := NewReport(inputFile, outputFile, data, result)
	common.LogInfo(common.InfoConverted, result.Direction, filepath.Base(outputFile))
	common.LogDebug(common.InfoInputSHA1, report.InputSHA1)
	common.LogDebug(common.InfoOutputSHA1, report.OutputSHA1)
	return report, nil
}

// Inspect reads inputFile and reports its detected format
func (p *SaveProcessor) Inspect(inputFile string) (Info, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return Info{}, common.FormatError(common.ErrFailedToReadInput, err)
	}
	return Inspect(data), nil
}

// writesPCReady reports whether converting data in mode produces a PC-ready
// save, which is the direction that writes the sidecar
func writesPCReady(data []byte, mode Mode) bool {
	switch mode {
	case ModePS4ToPC:
		return true
	case ModeAuto, "":
		return Detect(data) == FormatConsole
	}
	return false
}
