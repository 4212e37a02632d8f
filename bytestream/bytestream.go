// Package bytestream wraps a byte slice with a cursor and line/column
// tracking, plus an O(1) checkpoint/reset primitive so callers (chiefly the
// lexer's keyword matcher) can peek ahead without committing to what they
// saw, instead of threading four loose save/restore local variables through
// every lookahead helper.
package bytestream

// Checkpoint is an opaque, O(1)-to-create snapshot of a Stream's position.
type Checkpoint struct {
	offset int
	line   int
	column int
}

// Stream provides positioned, byte-level access to a source file.
type Stream struct {
	FileName string
	src      []byte
	offset   int
	line     int
	column   int
}

// New wraps src for FileName, cursor at the start of input (line 1, column 1).
func New(fileName string, src []byte) *Stream {
	return &Stream{FileName: fileName, src: src, line: 1, column: 1}
}

// Offset returns the current 0-based byte offset.
func (s *Stream) Offset() int { return s.offset }

// Line returns the current 1-based line number.
func (s *Stream) Line() int { return s.line }

// Column returns the current 1-based column number.
func (s *Stream) Column() int { return s.column }

// Len returns the total length of the wrapped input in bytes.
func (s *Stream) Len() int { return len(s.src) }

// IsEmpty reports whether the cursor has reached the end of input.
func (s *Stream) IsEmpty() bool { return s.offset >= len(s.src) }

// Peek returns the byte slice [offset, offset+n) without advancing. It
// never panics: a request that runs past the end of input is silently
// truncated to whatever bytes remain.
func (s *Stream) Peek(n int) []byte {
	if s.offset >= len(s.src) || n <= 0 {
		return nil
	}
	end := s.offset + n
	if end > len(s.src) {
		end = len(s.src)
	}
	return s.src[s.offset:end]
}

// PeekByte returns the byte at offset+n and true, or 0 and false if that
// position is out of range.
func (s *Stream) PeekByte(n int) (byte, bool) {
	i := s.offset + n
	if i < 0 || i >= len(s.src) {
		return 0, false
	}
	return s.src[i], true
}

// AdvanceN moves the cursor forward n bytes (clamped to the input length),
// updating line/column counters for every '\n' byte crossed. Column is
// reset to 1 immediately after each '\n'.
func (s *Stream) AdvanceN(n int) {
	if n <= 0 {
		return
	}
	end := s.offset + n
	if end > len(s.src) {
		end = len(s.src)
	}
	for i := s.offset; i < end; i++ {
		if s.src[i] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
	s.offset = end
}

// Checkpoint captures the current cursor/line/column state.
func (s *Stream) Checkpoint() Checkpoint {
	return Checkpoint{offset: s.offset, line: s.line, column: s.column}
}

// Reset restores a previously captured Checkpoint.
func (s *Stream) Reset(c Checkpoint) {
	s.offset = c.offset
	s.line = c.line
	s.column = c.column
}
