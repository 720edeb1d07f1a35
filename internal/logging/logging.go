package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Setup はプロセス用のzerologロガーを作成する
// format: "json"（CloudWatch向け）または "console"（ローカル実行向け）
func Setup(level, format string) zerolog.Logger {
	return SetupWithWriter(level, format, os.Stdout)
}

// SetupWithWriter は出力先を指定してロガーを作成する
func SetupWithWriter(level, format string, w io.Writer) zerolog.Logger {
	var writer io.Writer = w
	if strings.EqualFold(format, "console") {
		writer = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(writer).With().Timestamp().Logger().Level(ParseLevel(level))
}

// ParseLevel は文字列のログレベルを変換する（不明な値は info）
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
