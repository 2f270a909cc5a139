package token

import (
	"fmt"
	"strings"

	"github.com/bconf-format/bconf/debug"
)

type tkState struct {
	opt tokenOpts

	// pending accumulates a statement that has not yet reached a
	// terminator; pendingLine is where it started.
	pending     string
	pendingLine int

	// raw capture
	raw      bool
	rawLines []string
	rawLine  int
}

// Tokenize turns raw config text into a sequence of logical
// statements.  Physical lines are trimmed, blank and comment lines
// skipped, trailing comments stripped, several statements packed onto
// one physical line split apart, and statements spanning several
// physical lines joined with single spaces.
//
// Comment stripping cuts at the first '#' on the line, so a quoted
// argument containing '#' is truncated.  This mirrors the documented
// limitation of the format; see the tokenizer tests.
func Tokenize(dst []Stmt, src []byte, opts ...Option) ([]Stmt, error) {
	ts := &tkState{opt: tokenOpts{rawSuffix: DefaultRawSuffix}}
	for _, o := range opts {
		o(&ts.opt)
	}
	lines := strings.Split(string(src), "\n")
	var err error
	for i, line := range lines {
		lineNo := i + 1
		if ts.raw {
			dst = ts.rawLine1(dst, line, lineNo)
			continue
		}
		dst, err = ts.normalLine(dst, line, lineNo)
		if err != nil {
			return nil, err
		}
	}
	if ts.raw {
		return nil, fmt.Errorf("%w: raw block opened on line %d not closed", ErrMalformed, ts.rawLine)
	}
	if ts.pending != "" {
		return nil, fmt.Errorf("%w: statement starting on line %d has no terminator", ErrMalformed, ts.pendingLine)
	}
	if debug.Tokenize() {
		debug.Logf("tokenize: %d statements from %d lines", len(dst), len(lines))
	}
	return dst, nil
}

// rawLine1 consumes one physical line in verbatim mode: no comment
// stripping, no splitting.  A line ending in '}' closes the block.
func (ts *tkState) rawLine1(dst []Stmt, line string, lineNo int) []Stmt {
	trimmed := strings.TrimSpace(line)
	if !strings.HasSuffix(trimmed, "}") {
		ts.rawLines = append(ts.rawLines, trimmed)
		return dst
	}
	head := strings.TrimSpace(strings.TrimSuffix(trimmed, "}"))
	if head != "" {
		ts.rawLines = append(ts.rawLines, head)
	}
	dst = append(dst, Stmt{Type: SRaw, Lines: ts.rawLines, Line: ts.rawLine})
	dst = append(dst, Stmt{Type: SClose, Line: lineNo})
	ts.raw = false
	ts.rawLines = nil
	return dst
}

func (ts *tkState) normalLine(dst []Stmt, line string, lineNo int) ([]Stmt, error) {
	line = strings.TrimSpace(line)
	if ts.pending == "" && (line == "" || strings.HasPrefix(line, "#")) {
		return dst, nil
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}

	rest := line
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return dst, nil
		}
		i := strings.IndexAny(rest, "{};")
		if i == -1 {
			// incomplete: buffer and re-evaluate when the next
			// physical line arrives
			ts.buffer(rest, lineNo)
			return dst, nil
		}
		head := strings.TrimSpace(rest[:i])
		switch rest[i] {
		case '{':
			key, joined, start := ts.take(head, lineNo)
			if key == "" {
				return nil, fmt.Errorf("%w: unnamed block on line %d", ErrMalformed, lineNo)
			}
			if joined {
				key = collapse(key)
			}
			dst = append(dst, Stmt{Type: SOpen, Key: key, Line: start})
			rest = rest[i+1:]
			if ts.opt.rawSuffix != "" && strings.HasSuffix(key, ts.opt.rawSuffix) {
				return ts.openRaw(dst, rest, lineNo), nil
			}
		case ';':
			text, joined, start := ts.take(head, lineNo)
			rest = rest[i+1:]
			if text == "" {
				// stray terminator
				continue
			}
			if joined {
				text = collapse(text)
			}
			key, args := splitDirective(text)
			dst = append(dst, Stmt{Type: SDirective, Key: key, Args: args, Line: start})
		case '}':
			if head != "" || ts.pending != "" {
				_, _, start := ts.take(head, lineNo)
				return nil, fmt.Errorf("%w: statement starting on line %d has no terminator before '}'",
					ErrMalformed, start)
			}
			dst = append(dst, Stmt{Type: SClose, Line: lineNo})
			rest = rest[i+1:]
		}
	}
}

// openRaw enters verbatim capture after a raw-suffixed block header.
// tail is whatever followed the opening brace on the same physical
// line.
func (ts *tkState) openRaw(dst []Stmt, tail string, lineNo int) []Stmt {
	ts.raw = true
	ts.rawLines = nil
	ts.rawLine = lineNo
	tail = strings.TrimSpace(tail)
	if tail == "" {
		return dst
	}
	return ts.rawLine1(dst, tail, lineNo)
}

func (ts *tkState) buffer(piece string, lineNo int) {
	if ts.pending == "" {
		ts.pending = piece
		ts.pendingLine = lineNo
		return
	}
	ts.pending += " " + piece
}

// take joins head with any pending continuation, clearing it, and
// reports the statement text, whether it was reassembled from several
// physical lines, and its starting line.
func (ts *tkState) take(head string, lineNo int) (text string, joined bool, start int) {
	if ts.pending == "" {
		return head, false, lineNo
	}
	text = ts.pending
	if head != "" {
		text += " " + head
	}
	joined = true
	start = ts.pendingLine
	ts.pending = ""
	return text, joined, start
}

// collapse squeezes runs of whitespace down to single spaces; applied
// only to statements reassembled from several physical lines.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func splitDirective(s string) (key, args string) {
	i := strings.IndexAny(s, " \t")
	if i == -1 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
