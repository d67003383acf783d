package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	n.Success("Welcome!", "Login successful")
	n.Error("Login Failed", "invalid email or password")

	out := buf.String()
	assert.Contains(t, out, "[ok] Welcome!: Login successful")
	assert.Contains(t, out, "[error] Login Failed: invalid email or password")
}
