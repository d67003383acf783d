package notify

import (
	"fmt"
	"io"
)

// ConsoleNotifier renders notifications as single lines on the given writer.
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Success(title, message string) {
	fmt.Fprintf(n.w, "[ok] %s: %s\n", title, message)
}

func (n *ConsoleNotifier) Error(title, message string) {
	fmt.Fprintf(n.w, "[error] %s: %s\n", title, message)
}
