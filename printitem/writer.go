package printitem

import "unicode/utf8"

// writer is an append-only sink tracking the bookkeeping a [Printer] needs to make break
// decisions: the current line and column, the indentation level, and where the current line
// started. Columns are counted in Unicode scalar characters, not bytes, so multi-byte runes don't
// distort width decisions.
type writer struct {
	buf []byte

	lineNumber            uint32
	columnNumber          uint32
	indentLevel           uint16
	lineStartIndentLevel  uint16
	lineStartColumnNumber uint32

	ignoringIndent bool

	indentWidth uint8
	useTabs     bool
	newLineText string
	indentText  string
}

func newWriter(opts Options) *writer {
	indentText := "\t"
	if !opts.UseTabs {
		indentText = spaces(opts.indentWidth())
	}
	return &writer{
		columnNumber: 1,
		lineNumber:   1,
		indentWidth:  opts.indentWidth(),
		useTabs:      opts.UseTabs,
		newLineText:  opts.newLineText(),
		indentText:   indentText,
	}
}

func spaces(n uint8) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// writeText appends s, first emitting the line-start indent if s is the first text on an empty
// line. s must not contain a newline.
func (w *writer) writeText(s string) {
	w.maybeWriteLineStartIndent()
	w.buf = append(w.buf, s...)
	w.columnNumber += uint32(utf8.RuneCountInString(s))
	w.lineStartColumnNumber = w.columnNumber
}

// writeTab writes a single tab character. It counts as one column regardless of how a terminal
// might render it.
func (w *writer) writeTab() {
	w.maybeWriteLineStartIndent()
	w.buf = append(w.buf, '\t')
	w.columnNumber++
	w.lineStartColumnNumber = w.columnNumber
}

// writeIndent writes a single indent unit -- a tab, or indentWidth spaces -- per the configured
// options.
func (w *writer) writeIndent() {
	w.maybeWriteLineStartIndent()
	w.buf = append(w.buf, w.indentText...)
	w.columnNumber += uint32(utf8.RuneCountInString(w.indentText))
	w.lineStartColumnNumber = w.columnNumber
}

// maybeWriteLineStartIndent prepends the line-start indent the first time anything is written on
// an otherwise empty line. It updates columnNumber for the indent it writes since a subsequent
// caller advances the column by its own content's width only.
func (w *writer) maybeWriteLineStartIndent() {
	if w.columnNumber != 1 {
		return
	}
	w.lineStartColumnNumber = 1
	if w.ignoringIndent {
		return
	}
	for range w.lineStartIndentLevel {
		w.buf = append(w.buf, w.indentText...)
		w.columnNumber += uint32(utf8.RuneCountInString(w.indentText))
	}
}

func (w *writer) writeNewline() {
	w.buf = append(w.buf, w.newLineText...)
	w.lineNumber++
	w.columnNumber = 1
	w.lineStartColumnNumber = 1
	w.lineStartIndentLevel = w.indentLevel
}

// lastByteIsNewline reports whether the most recently written byte ends the configured newline
// sequence, used by ExpectNewLine to avoid doubling up a break.
func (w *writer) lastByteIsNewline() bool {
	n := len(w.newLineText)
	if n == 0 || len(w.buf) < n {
		return false
	}
	return string(w.buf[len(w.buf)-n:]) == w.newLineText
}

func (w *writer) pushIndent() {
	w.indentLevel++
}

func (w *writer) popIndent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

func (w *writer) startIgnoringIndent() {
	w.ignoringIndent = true
}

func (w *writer) finishIgnoringIndent() {
	w.ignoringIndent = false
}

// info captures the current bookkeeping fields as a [WriterInfo], the value recorded for an
// [Info] or exposed to a [ConditionResolver].
func (w *writer) info() WriterInfo {
	return WriterInfo{
		LineNumber:            w.lineNumber,
		ColumnNumber:          w.columnNumber,
		IndentLevel:           w.indentLevel,
		LineStartIndentLevel:  w.lineStartIndentLevel,
		LineStartColumnNumber: w.lineStartColumnNumber,
	}
}

// writerSnapshot is an O(1) capture of everything needed to roll the writer back to this point,
// including the length of the output buffer at the time.
type writerSnapshot struct {
	bufLen int

	lineNumber            uint32
	columnNumber          uint32
	indentLevel           uint16
	lineStartIndentLevel  uint16
	lineStartColumnNumber uint32

	ignoringIndent bool
}

func (w *writer) snapshot() writerSnapshot {
	return writerSnapshot{
		bufLen:                len(w.buf),
		lineNumber:            w.lineNumber,
		columnNumber:          w.columnNumber,
		indentLevel:           w.indentLevel,
		lineStartIndentLevel:  w.lineStartIndentLevel,
		lineStartColumnNumber: w.lineStartColumnNumber,
		ignoringIndent:        w.ignoringIndent,
	}
}

func (w *writer) restore(s writerSnapshot) {
	w.buf = w.buf[:s.bufLen]
	w.lineNumber = s.lineNumber
	w.columnNumber = s.columnNumber
	w.indentLevel = s.indentLevel
	w.lineStartIndentLevel = s.lineStartIndentLevel
	w.lineStartColumnNumber = s.lineStartColumnNumber
	w.ignoringIndent = s.ignoringIndent
}

func (w *writer) String() string {
	return string(w.buf)
}
