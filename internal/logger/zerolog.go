package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures the rotating log file sink.
type FileOptions struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type ZerologAdapter struct {
	logger    zerolog.Logger
	component string
}

func NewZerolog(writer io.Writer, level LogLevel) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level.zerolog()).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func NewConsoleLogger(level LogLevel) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
	return NewZerolog(consoleWriter, level)
}

// NewFileLogger writes JSON lines to the console and to a rotating file.
func NewFileLogger(level LogLevel, opts FileOptions) (*ZerologAdapter, io.Closer) {
	file := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}
	writer := zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stdout}, file)
	return NewZerolog(writer, level), file
}

// With returns a logger that tags every entry with component.
func (z *ZerologAdapter) With(component string) *ZerologAdapter {
	return &ZerologAdapter{
		logger:    z.logger.With().Str("component", component).Logger(),
		component: component,
	}
}

func (z *ZerologAdapter) Info(message string, fields map[string]interface{}) {
	z.write(z.logger.Info(), message, fields)
}

func (z *ZerologAdapter) Error(message string, err error, fields map[string]interface{}) {
	z.write(z.logger.Error().Err(err), message, fields)
}

func (z *ZerologAdapter) Warning(message string, fields map[string]interface{}) {
	z.write(z.logger.Warn(), message, fields)
}

func (z *ZerologAdapter) Debug(message string, fields map[string]interface{}) {
	z.write(z.logger.Debug(), message, fields)
}

func (z *ZerologAdapter) write(event *zerolog.Event, message string, fields map[string]interface{}) {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
