package literal

import (
	"strings"
)

// Split breaks the interior of a bracketed literal into its top-level
// comma-separated segments. Commas nested inside {}, [] or <> do not split;
// the bracket kinds are not required to match, and only the final depth is
// checked, so a close that dips below zero is not an error by itself.
// Segments are returned trimmed. A blank interior yields no segments.
func Split(interior string) ([]string, error) {
	if strings.TrimSpace(interior) == "" {
		return nil, nil
	}

	var (
		segments []string
		current  strings.Builder
		depth    int
	)

	for i := 0; i < len(interior); i++ {
		c := interior[i]
		switch c {
		case '{', '[', '<':
			depth++
		case '}', ']', '>':
			depth--
		case ',':
			if depth == 0 {
				segment := strings.TrimSpace(current.String())
				if segment == "" {
					return nil, ErrEmptyElement
				}
				segments = append(segments, segment)
				current.Reset()
				continue
			}
		}
		current.WriteByte(c)
	}

	if depth != 0 {
		return nil, ErrUnbalanced
	}

	segment := strings.TrimSpace(current.String())
	if segment == "" {
		return nil, ErrEmptyElement
	}
	return append(segments, segment), nil
}
