package kvtypes

// ResponseKind classifies a command response so the shell can style it.
type ResponseKind int

const (
	// ResponseInfo is neutral output such as listings and lookups.
	ResponseInfo ResponseKind = iota
	// ResponseSuccess confirms a store mutation.
	ResponseSuccess
	// ResponseError reports usage, lookup, type and command errors.
	ResponseError
	// ResponseMarkdown is help text that may be rendered as markdown.
	ResponseMarkdown
)

// Response is the result of applying one command line.
type Response struct {
	Text string
	Kind ResponseKind
	// Exit is set by the exit command; the session stops reading input.
	Exit bool
}

// Info creates a neutral response.
func Info(text string) Response {
	return Response{Text: text, Kind: ResponseInfo}
}

// Success creates a success response.
func Success(text string) Response {
	return Response{Text: text, Kind: ResponseSuccess}
}

// Failure creates an error response.
func Failure(text string) Response {
	return Response{Text: text, Kind: ResponseError}
}

// Markdown creates a response holding markdown text.
func Markdown(text string) Response {
	return Response{Text: text, Kind: ResponseMarkdown}
}
