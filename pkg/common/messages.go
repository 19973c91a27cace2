package common

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global variable to control debug output
var VerboseMode bool = false

var (
	level    = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	loggerMu sync.RWMutex
	logger   *zap.SugaredLogger
)

// Logger returns the package logger. It writes to stderr at info level
// until SetVerboseMode or SetLogger changes that.
func Logger() *zap.SugaredLogger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = newConsoleLogger()
	}
	return logger
}

// SetLogger replaces the package logger. Safe for concurrent use with Logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	logger = l.Sugar()
	loggerMu.Unlock()
}

func newConsoleLogger() *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
	return zap.New(core).Sugar()
}

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Error messages
const (
	ErrFailedToReadInput        = "failed to read input file"
	ErrFailedToWriteOutput      = "failed to write output file"
	ErrFailedToWriteLeftovers   = "failed to write leftovers file"
	ErrFailedToReadLeftovers    = "failed to read leftovers file"
	ErrFailedToRemoveLeftovers  = "failed to remove stale leftovers file"
	ErrFailedToReadConfig       = "failed to read config file"
	ErrFailedToParseConfig      = "failed to parse config file"
	ErrFailedToWriteReport      = "failed to write report"
	ErrFailedToDecompress       = "failed to decompress leftovers"
	ErrUnknownMode              = "unknown conversion mode"
	ErrConversionFailed         = "conversion of %s failed (%s)"
	ErrUnknownLeftoversPolicy   = "unknown leftovers policy"
	ErrMarkerNotRecognized      = "marker not recognized at 0x08"
	ErrPS4StructureTooSmall     = "PS4 structure too small"
	ErrInputTooSmall            = "input too small to classify"
	ErrMissingDualMagic         = "'#SAV' not present at both 0x20 and 0xA0"
	ErrMissingTrailerMagic      = "'#SAV' not found at start of the trailer"
	ErrUnexpectedSize           = "unexpected save size"
	ErrFillNegative             = "HCD fill length negative"
	ErrExcessTrim               = "excess trim larger than packed data"
	ErrInternalSizeMismatch     = "internal size mismatch"
	ErrHCDLargerThanFull        = "HCD present is larger than full HCD"
	ErrOutputSanity             = "output sanity check failed"
	ErrUnsupportedMarkerVersion = "unsupported marker version"
)

// Info messages
const (
	InfoLeftoversWritten = "LEFTOVERS → %s (0x%X bytes)"
	InfoLeftoversUsed    = "used leftovers %s (0x%X bytes)"
	InfoConverted        = "%s → %s"
	InfoInputSHA1        = "Input  SHA1: %s"
	InfoOutputSHA1       = "Output SHA1: %s"
	InfoReportWritten    = "Report written to: %s"
	InfoConfigLoaded     = "Loaded config: %s"
)

// Debug messages
const (
	DebugDetected      = "Detected format %s (%d bytes)"
	DebugSplitPS4      = "PS4 split: middle=0x%X segment=0x%X hcd=0x%X z=0x%02X"
	DebugFill          = "HCD fill: 0x%X zero bytes, pad=%d"
	DebugTrimAllZero   = "Trimmed 0x%X bytes are all zero, no sidecar needed"
	DebugSplitPCReady  = "PC-ready split: hcd present=0x%X missing=0x%X z=0x%02X"
	DebugMarker        = "Marker: flag=0x%02X version=0x%02X"
	DebugSidecarPath   = "Leftovers sidecar path: %s"
	DebugDispatch      = "Auto mode dispatching %s input to %s"
	DebugReleaseBuffer = "Released buffer of %d bytes"
	DebugNoSidecar     = "No leftovers sidecar and marker says none was written; tail zero-filled"
	DebugStaleSidecar  = "Removed stale leftovers sidecar %s"
)

// Warning messages
const (
	WarnLeftoversMissing = "marker indicates leftovers, but leftovers file not found — filling missing with zeros"
	WarnLeftoversShort   = "leftovers file holds 0x%X bytes, 0x%X expected; remainder zero-filled"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		Logger().Infof(message, args...)
	} else {
		Logger().Info(message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		Logger().Warnf(message, args...)
	} else {
		Logger().Warn(message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		Logger().Errorf(message, args...)
	} else {
		Logger().Error(message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		Logger().Debugf(message, args...)
	} else {
		Logger().Debug(message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}

// FormatErrorString creates a formatted error with string details
func FormatErrorString(baseMessage, details string, args ...interface{}) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: "+details, append([]interface{}{baseMessage}, args...)...)
	}
	return fmt.Errorf("%s: %s", baseMessage, details)
}
