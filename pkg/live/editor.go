package live

import (
	"unicode/utf8"
)

const (
	keyInterrupt = 0x03 // Ctrl-C
	keyEOF       = 0x04 // Ctrl-D
	keyBackspace = 0x08 // Ctrl-H
	keyNewline   = '\n'
	keyReturn    = '\r'
	keyKillLine  = 0x15 // Ctrl-U
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

type escState int

const (
	escNone escState = iota
	escStart
	escCSI
)

// outcome describes what one input byte did to the line.
type outcome int

const (
	// outcomePartial means the byte was part of an unfinished key.
	outcomePartial outcome = iota
	// outcomeKey means a full keystroke was processed.
	outcomeKey
	outcomeSubmit
	outcomeEOF
	outcomeInterrupt
)

// editor turns raw terminal bytes into edits of a single input line.
// Escape sequences (arrow keys and the like) count as keystrokes but do
// not change the value.
type editor struct {
	value   []rune
	pending []byte
	esc     escState
}

// Value returns the current line.
func (e *editor) Value() string {
	return string(e.value)
}

func (e *editor) feed(b byte) outcome {
	switch e.esc {
	case escStart:
		if b == '[' || b == 'O' {
			e.esc = escCSI
			return outcomePartial
		}
		// A lone Esc; b is an ordinary key.
		e.esc = escNone
	case escCSI:
		// Parameter and intermediate bytes, then a final byte in 0x40-0x7e.
		if b >= 0x40 && b <= 0x7e {
			e.esc = escNone
			return outcomeKey
		}
		return outcomePartial
	}

	if len(e.pending) > 0 || b >= utf8.RuneSelf {
		e.pending = append(e.pending, b)
		if !utf8.FullRune(e.pending) {
			return outcomePartial
		}
		r, _ := utf8.DecodeRune(e.pending)
		e.pending = e.pending[:0]
		e.value = append(e.value, r)
		return outcomeKey
	}

	switch b {
	case keyReturn, keyNewline:
		return outcomeSubmit
	case keyEOF:
		return outcomeEOF
	case keyInterrupt:
		return outcomeInterrupt
	case keyDelete, keyBackspace:
		if len(e.value) > 0 {
			e.value = e.value[:len(e.value)-1]
		}
		return outcomeKey
	case keyKillLine:
		e.value = e.value[:0]
		return outcomeKey
	case keyEscape:
		e.esc = escStart
		return outcomePartial
	}

	if b < 0x20 {
		// Other control keys still fire a keystroke.
		return outcomeKey
	}
	e.value = append(e.value, rune(b))
	return outcomeKey
}
