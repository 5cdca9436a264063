package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	okTag    = color.New(color.FgGreen)
	infoTag  = color.New(color.FgBlue)
	warnTag  = color.New(color.FgYellow)
	errorTag = color.New(color.FgRed)

	diffAdd  = color.New(color.FgGreen)
	diffDel  = color.New(color.FgRed)
	diffHunk = color.New(color.FgCyan)
)

// Console writes tagged status lines for the CLI. Results and notes go to
// out, warnings and errors to errOut. Only the severity tag is colored; the
// message text stays plain.
type Console struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// New creates a Console writing to the given streams.
func New(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// SetQuiet suppresses OK, Info and Diff output. Warnings and errors are
// always written.
func (c *Console) SetQuiet(quiet bool) {
	c.quiet = quiet
}

// OK reports a completed change.
func (c *Console) OK(format string, args ...any) {
	if c.quiet {
		return
	}
	c.write(c.out, okTag.Sprint("[OK]"), format, args...)
}

// Info reports a result that required no change.
func (c *Console) Info(format string, args ...any) {
	if c.quiet {
		return
	}
	c.write(c.out, infoTag.Sprint("[INFO]"), format, args...)
}

// Warn reports a skipped input.
func (c *Console) Warn(format string, args ...any) {
	c.write(c.errOut, warnTag.Sprint("[WARN]"), format, args...)
}

// Error reports a failure.
func (c *Console) Error(format string, args ...any) {
	c.write(c.errOut, errorTag.Sprint("[ERROR]"), format, args...)
}

// Diff writes one line of a diff preview, colored by its leading marker.
func (c *Console) Diff(line string) {
	if c.quiet {
		return
	}
	switch {
	case strings.HasPrefix(line, "@@"):
		fmt.Fprintln(c.out, diffHunk.Sprint(line))
	case strings.HasPrefix(line, "+"):
		fmt.Fprintln(c.out, diffAdd.Sprint(line))
	case strings.HasPrefix(line, "-"):
		fmt.Fprintln(c.out, diffDel.Sprint(line))
	default:
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) write(w io.Writer, tag, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", tag, fmt.Sprintf(format, args...))
}
