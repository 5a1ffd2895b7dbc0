package pattern

import "strings"

// EscapeMarker placed immediately before the sentinel makes the argument
// literal: the marker is removed and the rest passes through untouched.
const EscapeMarker = `\`

// Token is one argument that carries the sentinel prefix. Tokens are built
// once during a single left-to-right scan of the argument vector and never
// modified.
type Token struct {
	Raw     string // Argument exactly as written
	Body    string // Text after the sentinel (or after the escape marker)
	Offset  int    // Byte offset of the sentinel within Raw
	Escaped bool   // Sentinel was escaped; Body is emitted literally
}

// Detect reports whether arg is a marked token for the given sentinel.
// Only a leading sentinel marks an argument; a sentinel elsewhere (such as
// user@host) leaves the argument unmarked.
func Detect(arg, sentinel string) (Token, bool) {
	if strings.HasPrefix(arg, EscapeMarker+sentinel) {
		return Token{
			Raw:     arg,
			Body:    arg[len(EscapeMarker):],
			Offset:  len(EscapeMarker),
			Escaped: true,
		}, true
	}
	if strings.HasPrefix(arg, sentinel) {
		return Token{
			Raw:    arg,
			Body:   arg[len(sentinel):],
			Offset: 0,
		}, true
	}
	return Token{}, false
}
