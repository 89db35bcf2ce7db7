package logger

import (
	"context"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path       string
	LogLevel   string
	ServiceEnv ServiceEnv
}

var global *otelzap.SugaredLogger

// Init builds the process-wide logger: JSON to a rotated file plus console
// output, wrapped by otelzap so records carry the active span context.
func Init(conf *LogConfig) {
	level := zapcore.InfoLevel
	if l, err := zapcore.ParseLevel(conf.LogLevel); err == nil {
		level = l
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     30,
		Compress:   true,
	})

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encConf), fileWriter, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encConf), zapcore.Lock(os.Stdout), level),
	)

	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.Fields(
			zap.String("platform", conf.ServiceEnv.Platform),
			zap.String("service", conf.ServiceEnv.Service),
			zap.String("env", conf.ServiceEnv.Env),
		),
	)

	global = otelzap.New(zl, otelzap.WithMinLevel(level)).Sugar()
}

func Close() {
	if global != nil {
		_ = global.Sync()
	}
}

func l() *otelzap.SugaredLogger {
	if global == nil {
		// not initialized yet (early startup, tests)
		global = otelzap.New(zap.Must(zap.NewProduction())).Sugar()
	}
	return global
}

func Debugf(ctx context.Context, template string, args ...any) {
	l().Ctx(ctx).Debugf(template, args...)
}

func Infof(ctx context.Context, template string, args ...any) {
	l().Ctx(ctx).Infof(template, args...)
}

func Warnf(ctx context.Context, template string, args ...any) {
	l().Ctx(ctx).Warnf(template, args...)
}

func Errorf(ctx context.Context, template string, args ...any) {
	l().Ctx(ctx).Errorf(template, args...)
}

func Fatalf(ctx context.Context, template string, args ...any) {
	l().Ctx(ctx).Fatalf(template, args...)
}
