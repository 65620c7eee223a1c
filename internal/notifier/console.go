package notifier

import (
	"fmt"
	"io"
	"strings"
)

const (
	doubleRule = "═══════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────"
)

// ConsoleNotifier draws dialogs as framed text blocks.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{Out: out}
}

func (c *ConsoleNotifier) Show(title, body string) error {
	var b strings.Builder
	b.WriteString(doubleRule + "\n")
	fmt.Fprintf(&b, "  %s\n", title)
	b.WriteString(singleRule + "\n")
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	b.WriteString(doubleRule + "\n")
	_, err := io.WriteString(c.Out, b.String())
	return err
}
