// Package console handles formatted CLI output with colors and styles.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI color codes (Tokyo Night palette)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[38;2;215;95;107m"  // #d75f6b
	ColorGreen  = "\033[38;2;158;206;106m" // #9ece6a (Tokyo Night green)
	ColorYellow = "\033[38;2;224;175;104m" // #e0af68 (Tokyo Night yellow)
	ColorGray   = "\033[38;2;86;95;137m"   // #565f89 (Tokyo Night comment)
	ColorBold   = "\033[1m"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

type ctxKey struct{}

// Console handles formatted output with colors and styles
type Console struct {
	writer io.Writer
}

// New creates a new Console that writes to the given writer
func New(w io.Writer) *Console {
	return &Console{
		writer: w,
	}
}

// NewContext returns a context with the console attached
func NewContext(ctx context.Context, c *Console) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// Ctx retrieves the console from context, or creates a default one
func Ctx(ctx context.Context) *Console {
	if c, ok := ctx.Value(ctxKey{}).(*Console); ok {
		return c
	}
	return New(os.Stderr)
}

// FatalError prints a formatted error box and does NOT exit
// Caller should handle exit code
func (c *Console) FatalError(err error) {
	if err == nil {
		return
	}

	lines := []string{
		c.colorize(ColorRed, "╭ Error"),
		c.colorize(ColorRed, "│") + " " + c.colorize(ColorGray, err.Error()),
		c.colorize(ColorRed, "╵"),
	}

	output := strings.Join(lines, "\n") + "\n"
	_, _ = c.writer.Write([]byte(output))
}

// Errorf prints an error message in red
func (c *Console) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = c.writer.Write([]byte(c.colorize(ColorRed, Cross+" "+msg) + "\n"))
}

// Successf prints a success message in green
func (c *Console) Successf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = c.writer.Write([]byte(c.colorize(ColorGreen, Check+" "+msg) + "\n"))
}

// Infof prints an info message in gray
func (c *Console) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = c.writer.Write([]byte(c.colorize(ColorGray, Dot+" "+msg) + "\n"))
}

// Warnf prints a warning message in yellow
func (c *Console) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = c.writer.Write([]byte(c.colorize(ColorYellow, Dot+" "+msg) + "\n"))
}

// Printf prints a plain message without colors
func (c *Console) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = c.writer.Write([]byte(msg + "\n"))
}

// colorize applies ANSI color codes to text
func (c *Console) colorize(color, text string) string {
	return color + text + ColorReset
}

// CheckItem prints a success item with green checkmark
func (c *Console) CheckItem(label, detail string) {
	c.printItem(ColorGreen, Check, label, detail)
}

// WarnItem prints a warning item with yellow dot
func (c *Console) WarnItem(label, detail string) {
	c.printItem(ColorYellow, Dot, label, detail)
}

// FailItem prints a failure item with red cross
func (c *Console) FailItem(label, detail string) {
	c.printItem(ColorRed, Cross, label, detail)
}

func (c *Console) printItem(color, symbol, label, detail string) {
	line := "  " + c.colorize(color, symbol) + " " + label
	if detail != "" {
		line += ": " + detail
	}
	_, _ = c.writer.Write([]byte(line + "\n"))
}

// StatusOK returns a green checkmark with "ok" for use in tables.
func StatusOK() string {
	return ColorGreen + Check + ColorReset + " ok"
}

// StatusFailed returns a red cross with the given message for use in tables.
func StatusFailed(msg string) string {
	return ColorRed + Cross + ColorReset + " " + msg
}

// StatusWarn returns a yellow dot with the given message for use in tables.
func StatusWarn(msg string) string {
	return ColorYellow + Dot + ColorReset + " " + msg
}
