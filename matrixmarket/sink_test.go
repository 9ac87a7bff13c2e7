// SPDX-License-Identifier: MIT

package matrixmarket_test

import (
	"errors"
	"io"
)

var errSink = errors.New("sink: injected failure")

// memSink is an in-memory io.WriteSeeker with failure injection.
type memSink struct {
	buf    []byte
	pos    int64
	writes int

	failWrite int // 1-based write call that fails; 0 never fails
	failSeek  int // 1-based seek call that fails; 0 never fails
	seeks     int
}

func (s *memSink) Write(p []byte) (int, error) {
	s.writes++
	if s.writes == s.failWrite {
		return 0, errSink
	}
	if end := s.pos + int64(len(p)); end > int64(len(s.buf)) {
		s.buf = append(s.buf, make([]byte, end-int64(len(s.buf)))...)
	}
	copy(s.buf[s.pos:], p)
	s.pos += int64(len(p))

	return len(p), nil
}

func (s *memSink) Seek(offset int64, whence int) (int64, error) {
	s.seeks++
	if s.seeks == s.failSeek {
		return 0, errSink
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("memSink: bad whence")
	}
	if abs < 0 {
		return 0, errors.New("memSink: negative position")
	}
	s.pos = abs

	return abs, nil
}

func (s *memSink) String() string { return string(s.buf) }
