package debug

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable read by InitFromEnv.
const EnvVar = "BOXLAYOUT_DEBUG"

// Config controls the logger built by Init.
type Config struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the current logger. It is never nil.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the current logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Init builds a logger from cfg and installs it. Console output goes to
// console; when cfg.LogFile is set, JSON records are also written to that
// file through a rotating writer.
func Init(cfg Config, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	cores := []zapcore.Core{zapcore.NewCore(newEncoder(cfg.Format), console, level)}
	if cfg.LogFile != "" {
		cores = append(cores, zapcore.NewCore(newEncoder("json"), fileWriter(cfg), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("boxlayout")
	SetLogger(l)
	return l, nil
}

// InitFromEnv adds a debug-level JSON file core to the current logger when
// BOXLAYOUT_DEBUG is set. Cores already installed by Init keep their output
// and level. It reports whether the file core was added.
func InitFromEnv() bool {
	path := os.Getenv(EnvVar)
	if path == "" {
		return false
	}
	cfg := Config{LogFile: path, MaxSize: 10, MaxBackups: 1}
	file := zapcore.NewCore(newEncoder("json"), fileWriter(cfg), zap.DebugLevel)
	core := zapcore.NewTee(Logger().Core(), file)
	SetLogger(zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("boxlayout"))
	return true
}

// Sync flushes buffered records.
func Sync() error {
	return Logger().Sync()
}

func fileWriter(cfg Config) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})
}

func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}
