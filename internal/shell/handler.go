// Package shell connects a session to the console. It runs the interactive
// prompt on top of ishell and feeds non-interactive input line by line.
package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/charmbracelet/log"

	"kvshell/internal/logger"
	"kvshell/internal/output"
	"kvshell/internal/session"
)

// maxLineSize bounds a single input line in batch mode.
const maxLineSize = 1024 * 1024

// Handler routes input lines to a session and prints the responses.
type Handler struct {
	session *session.Session
	printer *output.Printer
	log     *log.Logger
}

// NewHandler creates a handler for sess writing through printer.
func NewHandler(sess *session.Session, printer *output.Printer) *Handler {
	return &Handler{
		session: sess,
		printer: printer,
		log:     logger.NewStyledLogger("Shell"),
	}
}

// Session returns the session the handler feeds.
func (h *Handler) Session() *session.Session {
	return h.session
}

// Handle executes one line and prints its response. It reports whether the
// session should keep reading input.
func (h *Handler) Handle(line string) bool {
	resp := h.session.Execute(line)
	h.printer.Response(resp)
	return !resp.Exit
}

// RunBatch executes every line read from r until input ends or exit runs.
func (h *Handler) RunBatch(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		h.log.Debug("Batch line", "session", h.session.ID, "line", lineNo, "input", line)
		if !h.Handle(line) {
			return nil
		}
	}
	return scanner.Err()
}

// Config holds the interactive shell settings.
type Config struct {
	Prompt string
	Banner []string
}

// RunInteractive reads lines from the terminal until exit or end of input.
// Lines are read raw so that quoting and spacing inside literals survive.
func (h *Handler) RunInteractive(cfg Config) error {
	sh := ishell.New()
	sh.SetPrompt(h.printer.Prompt(cfg.Prompt))

	// The session handles help and exit itself.
	sh.DeleteCmd("exit")
	sh.DeleteCmd("help")

	for _, line := range cfg.Banner {
		sh.Println(line)
	}

	defer sh.Close()

	for {
		line, err := sh.ReadLineErr()
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.log.Debug("End of input", "session", h.session.ID)
				return nil
			}
			h.log.Debug("Input interrupted", "error", err)
			continue
		}
		if !h.Handle(line) {
			return nil
		}
	}
}
