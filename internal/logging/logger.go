package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the file-only production logger used by the API server.
func NewLogger(logDir string) (*zap.Logger, error) {
	core, err := fileCore(logDir)
	if err != nil {
		return nil, err
	}
	return zap.New(core), nil
}

// NewScanLogger builds the logger for interactive scans: the rotated JSON
// file plus a human-readable console core on stderr, so probe events stay
// visible while the run is in progress.
func NewScanLogger(logDir string) (*zap.Logger, error) {
	fc, err := fileCore(logDir)
	if err != nil {
		return nil, err
	}
	ec := zap.NewDevelopmentEncoderConfig()
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(ec),
		zapcore.Lock(os.Stderr),
		zap.InfoLevel,
	)
	return zap.New(zapcore.NewTee(fc, console)), nil
}

func fileCore(logDir string) (zapcore.Core, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "racehunter.log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, zap.InfoLevel), nil
}
