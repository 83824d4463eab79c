package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-fifo/pkg/settings"
)

// New builds a JSON zap logger from cfg. When cfg.FileLogName is set, output
// goes to that file with lumberjack rotation; otherwise to stderr, keeping
// stdout free for program output.
// The returned close func flushes the logger and closes the log file.
func New(cfg settings.Logger) (*zap.Logger, func() error, error) {
	var (
		w   io.Writer = os.Stderr
		rot *lumberjack.Logger
	)
	if cfg.FileLogName != "" {
		rot = &lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w = rot
	}

	log, err := NewWithWriter(cfg.LogLevel, w)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() error {
		_ = log.Sync() // stderr may not support fsync
		if rot != nil {
			return errors.Wrap(rot.Close(), "failed to close log file")
		}
		return nil
	}
	return log, closeFn, nil
}

// NewWithWriter builds a JSON zap logger at level writing to w.
// An empty level means info.
func NewWithWriter(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core, zap.AddCaller()), nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}
