package commands

import (
	"fmt"
	"strings"
	"unicode"

	"kvshell/internal/logger"
	"kvshell/pkg/kvtypes"
)

// Dispatch parses one command line, runs the matching command against env
// and returns its response. Errors returned by commands become error
// responses carrying the error text; nothing reaches the caller as an error.
// A blank line yields an empty response.
func (r *Registry) Dispatch(env *Env, line string) kvtypes.Response {
	verb, rest := SplitVerb(line)
	if verb == "" {
		return kvtypes.Info("")
	}

	cmd, exists := r.Get(verb)
	if !exists {
		logger.Debug("Unknown command", "command", verb)
		return kvtypes.Failure(fmt.Sprintf("Unknown command: '%s'", verb))
	}

	if env.Registry == nil {
		env.Registry = r
	}

	args := ParseArgs(cmd.ParseMode(), rest)
	logger.CommandExecution(verb, args.Fields, args.Literal)

	resp, err := cmd.Execute(env, args)
	if err != nil {
		logger.Debug("Command failed", "command", verb, "error", err)
		return kvtypes.Failure(err.Error())
	}
	return resp
}

// SplitVerb returns the first whitespace-separated field of line and the
// trimmed remainder.
func SplitVerb(line string) (verb, rest string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// ParseArgs splits the text following a verb according to mode. In
// ParseModeKeyLiteral the literal keeps its inner spacing so that quoted
// text and nested literals reach the parser unchanged.
func ParseArgs(mode kvtypes.ParseMode, rest string) kvtypes.CommandArgs {
	switch mode {
	case kvtypes.ParseModeKeyLiteral:
		key, literal := SplitVerb(rest)
		if key == "" {
			return kvtypes.CommandArgs{}
		}
		return kvtypes.CommandArgs{Fields: []string{key}, Literal: literal}
	default:
		return kvtypes.CommandArgs{Fields: strings.Fields(rest)}
	}
}
