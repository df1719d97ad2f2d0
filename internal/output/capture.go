package output

import (
	"bytes"
	"strings"
	"sync"

	"kvshell/pkg/kvtypes"
)

// Buffer is an io.Writer that keeps what a Printer wrote.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Lines returns one entry per written line, without the final newline.
func (b *Buffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// RenderPlain returns resp exactly as a Plain printer writes it.
func RenderPlain(resp kvtypes.Response) string {
	var b Buffer
	NewPrinter(WithWriter(&b), Plain()).Response(resp)
	return b.String()
}
