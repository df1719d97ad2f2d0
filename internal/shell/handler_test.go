package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvshell/internal/output"
	"kvshell/internal/session"
)

func newTestHandler() (*Handler, *output.Buffer) {
	buffer := &output.Buffer{}
	printer := output.NewPrinter(output.WithWriter(buffer), output.Plain())
	return NewHandler(session.New(), printer), buffer
}

func TestHandler_Handle(t *testing.T) {
	h, buffer := newTestHandler()

	assert.True(t, h.Handle("set a 1"))
	assert.True(t, h.Handle(""))
	assert.True(t, h.Handle("get a"))
	assert.False(t, h.Handle("exit"))

	assert.Equal(t, []string{
		"Set key 'a' with value 'Integer(1)'",
		"Value for key 'a': 'Integer(1)'",
		"Exiting...",
	}, buffer.Lines())
	assert.True(t, h.Session().Done())
}

func TestHandler_RunBatch(t *testing.T) {
	h, buffer := newTestHandler()

	input := strings.Join([]string{
		`set user {"name": "ada", "tags": <b, a>}`,
		"",
		"get user",
		"list\r",
		"history",
	}, "\n")

	require.NoError(t, h.RunBatch(strings.NewReader(input)))
	assert.Equal(t, []string{
		`Set key 'user' with value '{"name": Text("ada"), "tags": {Text("a"), Text("b")}}'`,
		`Value for key 'user': '{"name": Text("ada"), "tags": {Text("a"), Text("b")}}'`,
		"Keys: user",
		"1: set user {\"name\": \"ada\", \"tags\": <b, a>}",
		"2: get user",
		"3: list",
		"4: history",
	}, buffer.Lines())
}

func TestHandler_RunBatch_StopsAtExit(t *testing.T) {
	h, buffer := newTestHandler()

	require.NoError(t, h.RunBatch(strings.NewReader("set a 1\nexit\nset b 2\n")))
	assert.Equal(t, "Exiting...", buffer.Lines()[1])
	assert.False(t, h.Session().Store().Has("b"))
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestHandler_RunBatch_ReadError(t *testing.T) {
	h, _ := newTestHandler()
	assert.EqualError(t, h.RunBatch(failingReader{}), "read failed")
}
