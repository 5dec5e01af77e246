package corpus

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Lines is a lazy, single-pass stream of corpus lines. Line terminators
// ("\n" or "\r\n") are stripped. Lines may be of any length.
type Lines struct {
	rc      io.ReadCloser
	r       *bufio.Reader
	buf     []byte
	name    string
	skip    int
	lineNum int
	eof     bool
	err     error
}

func newLines(rc io.ReadCloser, name string, skip int) *Lines {
	return &Lines{rc: rc, r: bufio.NewReaderSize(rc, 64*1024), name: name, skip: skip}
}

// Next returns the next body line. It returns io.EOF once the stream is
// exhausted and the same error on every call after a failure.
func (l *Lines) Next() (string, error) {
	if l.err != nil {
		return "", l.err
	}
	for {
		line, err := l.scan()
		if err != nil {
			l.err = err
			return "", err
		}
		if l.lineNum > l.skip {
			return string(line), nil
		}
	}
}

// LineNumber returns the 1-based number of the line last returned by Next.
func (l *Lines) LineNumber() int {
	return l.lineNum
}

// Close releases the underlying resource.
func (l *Lines) Close() error {
	return l.rc.Close()
}

// scan reads one line into l.buf, which is reused by the next call.
func (l *Lines) scan() ([]byte, error) {
	if l.eof {
		return nil, io.EOF
	}

	l.buf = l.buf[:0]
	for {
		chunk, err := l.r.ReadSlice('\n')
		l.buf = append(l.buf, chunk...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			l.eof = true
			if len(l.buf) == 0 {
				return nil, io.EOF
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrResource, l.name, err)
		}
		break
	}
	l.lineNum++

	b := bytes.TrimSuffix(l.buf, []byte("\n"))
	b = bytes.TrimSuffix(b, []byte("\r"))
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: %s: line %d is not valid UTF-8", ErrDecode, l.name, l.lineNum)
	}
	return b, nil
}
