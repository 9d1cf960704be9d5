package log

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/selebrow/fetcher/pkg/config"
)

const (
	encodingJSON    = "json"
	encodingConsole = "console"

	fileMaxSizeMB  = 100
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

var (
	SetupLogger = NewConsoleLogger

	once   sync.Once
	logger *zap.Logger
)

func GetLogger() *zap.Logger {
	once.Do(func() {
		logger = SetupLogger()
	})
	return logger
}

func NewConsoleLogger() *zap.Logger {
	zc := zap.NewProductionConfig()
	lvl := getLogLevel()
	var opts []zap.Option
	if lvl >= zap.InfoLevel {
		zc.DisableStacktrace = true
		zc.DisableCaller = true
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	output := getenv("LOG_OUTPUT")
	if output != "" {
		zc.OutputPaths = []string{output}
	}

	if strings.ToLower(getenv("LOG_FORMAT")) == encodingJSON {
		zc.Encoding = encodingJSON
		zc.EncoderConfig = jsonEncoderConfig(zc.EncoderConfig)
	} else {
		zc.Encoding = encodingConsole
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		if output == "" {
			// Add color when debugging locally
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			// Workaround for Windows terminal color output
			if runtime.GOOS == "windows" {
				opts = append(opts, zap.WrapCore(func(_ zapcore.Core) zapcore.Core {
					return zapcore.NewCore(
						zapcore.NewConsoleEncoder(zc.EncoderConfig),
						zapcore.AddSync(colorable.NewColorableStdout()),
						lvl,
					)
				}))
			}
		}
	}

	// rotated file copy is always json
	if file := getenv("LOG_FILE"); file != "" {
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(jsonEncoderConfig(zap.NewProductionEncoderConfig())),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   file,
				MaxSize:    fileMaxSizeMB,
				MaxBackups: fileMaxBackups,
				MaxAge:     fileMaxAgeDays,
				Compress:   true,
			}),
			zc.Level,
		)
		opts = append(opts, zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	z, err := zc.Build(opts...)
	if err != nil {
		panic(err)
	}

	return z
}

func jsonEncoderConfig(ec zapcore.EncoderConfig) zapcore.EncoderConfig {
	ec.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	ec.TimeKey = "@timestamp"
	ec.MessageKey = "message"
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}

func getLogLevel() zapcore.Level {
	return config.ZapLogLevel(getenv("LOG_LEVEL"), zap.InfoLevel)
}

func getenv(name string) string {
	return os.Getenv(fmt.Sprintf("%s_%s", config.ConfigPrefix, name))
}
