package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// 诊断日志统一写 stderr；stdout 只留给给人看的报告。
const timeFormat = "2006-01-02T15:04:05.000Z"

// ParseLevel 接受 error / warn / info / debug，空值为 warn。
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s (expect error|warn|info|debug)", s)
	}
}

// New 创建带 tag 的 logger。w 为 nil 时写 os.Stderr；终端下使用 ConsoleWriter。
func New(w io.Writer, level zerolog.Level, tag string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: timeFormat}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("tag", tag).Logger()
}
