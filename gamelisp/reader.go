package gamelisp

import (
	"io"
	"strconv"
	"strings"
)

// Read consumes one s-expression from src and returns it as a heap value
// together with the remaining text. Leading whitespace and ;-prefixed line
// comments are skipped. io.EOF reports that no form remains.
//
// The grammar is deliberately permissive: a list missing its closing paren
// ends at end of input with whatever was built so far, and a stray closing
// paren reads as nil.
func (e *Engine) Read(src string) (Ref, string, error) {
	src = skipSpace(src)
	if src == "" {
		return Nil, "", io.EOF
	}
	return e.readForm(src)
}

func (e *Engine) readForm(src string) (Ref, string, error) {
	switch src[0] {
	case ')':
		return Nil, src[1:], nil
	case '(':
		return e.readList(src[1:])
	case '"':
		return e.readString(src[1:])
	}
	tok, rest := nextToken(src)
	ref, err := e.readAtom(tok)
	return ref, rest, err
}

func (e *Engine) readList(src string) (Ref, string, error) {
	mark := e.heap.ProtectMark()
	defer e.heap.Unprotect(mark)

	var items []Ref
	for {
		src = skipSpace(src)
		if src == "" {
			break
		}
		if src[0] == ')' {
			src = src[1:]
			break
		}
		item, rest, err := e.readForm(src)
		if err != nil {
			return Nil, rest, err
		}
		e.heap.Protect(item)
		items = append(items, item)
		src = rest
	}

	list := Nil
	for i := len(items) - 1; i >= 0; i-- {
		var err error
		list, err = e.heap.Cons(items[i], list)
		if err != nil {
			return Nil, src, err
		}
	}
	return list, src, nil
}

func (e *Engine) readString(src string) (Ref, string, error) {
	var sb strings.Builder
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			i++
			switch src[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(src[i])
			}
			continue
		}
		if c == '"' {
			ref, err := e.heap.Text(sb.String())
			return ref, src[i+1:], err
		}
		sb.WriteByte(c)
	}
	// unterminated string, same leniency as unterminated lists
	ref, err := e.heap.Text(sb.String())
	return ref, "", err
}

func (e *Engine) readAtom(tok string) (Ref, error) {
	if n, ok := parseNumber(tok); ok {
		return e.heap.Number(n)
	}
	id, err := e.symbols.Intern(tok)
	if err != nil {
		return Nil, err
	}
	return e.heap.Symbol(id)
}

func parseNumber(tok string) (int32, bool) {
	if strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X") {
		n, err := strconv.ParseInt(tok[2:], 16, 32)
		if err != nil {
			return 0, false
		}
		return int32(n), true
	}
	body := tok
	if strings.HasPrefix(body, "-") {
		body = body[1:]
	}
	if body == "" || body[0] < '0' || body[0] > '9' {
		return 0, false
	}
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

func nextToken(src string) (string, string) {
	i := 0
	for i < len(src) && !isDelimiter(src[i]) {
		i++
	}
	return src[:i], src[i:]
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', ';', '"':
		return true
	}
	return false
}

func skipSpace(src string) string {
	for {
		i := 0
		for i < len(src) && isSpaceByte(src[i]) {
			i++
		}
		src = src[i:]
		if !strings.HasPrefix(src, ";") {
			return src
		}
		if nl := strings.IndexByte(src, '\n'); nl >= 0 {
			src = src[nl+1:]
		} else {
			return ""
		}
	}
}
