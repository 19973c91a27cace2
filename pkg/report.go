package pkg

import (
	"io"
	"os"

	"github.com/hansbonini/xv2save/pkg/common"
	"gopkg.in/yaml.v3"
)

// Report describes a finished conversion
type Report struct {
	Direction     Direction `yaml:"direction"`
	Input         string    `yaml:"input"`
	Output        string    `yaml:"output"`
	InputSize     int       `yaml:"input_size"`
	OutputSize    int       `yaml:"output_size"`
	InputSHA1     string    `yaml:"input_sha1"`
	OutputSHA1    string    `yaml:"output_sha1"`
	InputBLAKE3   string    `yaml:"input_blake3"`
	OutputBLAKE3  string    `yaml:"output_blake3"`
	Leftovers     string    `yaml:"leftovers,omitempty"`
	LeftoversSize int       `yaml:"leftovers_size,omitempty"`
}

// NewReport builds a report for a conversion of input into result
func NewReport(inputPath, outputPath string, input []byte, result *Result) *Report {
	return &Report{
		Direction:     result.Direction,
		Input:         inputPath,
		Output:        outputPath,
		InputSize:     len(input),
		OutputSize:    len(result.Data),
		InputSHA1:     common.SHA1Hex(input),
		OutputSHA1:    common.SHA1Hex(result.Data),
		InputBLAKE3:   common.BLAKE3Hex(input),
		OutputBLAKE3:  common.BLAKE3Hex(result.Data),
		Leftovers:     result.LeftoversPath,
		LeftoversSize: result.LeftoversSize,
	}
}

// Encode writes the report as YAML
func (r *Report) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return common.FormatError(common.ErrFailedToWriteReport, err)
	}
	return encoder.Close()
}

// WriteFile writes the report as YAML to path
func (r *Report) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return common.FormatError(common.ErrFailedToWriteReport, err)
	}
	defer file.Close()

	if err := r.Encode(file); err != nil {
		return err
	}
	common.LogInfo(common.InfoReportWritten, path)
	return nil
}
