package printitem

import "sync/atomic"

var infoCounter atomic.Uint64

// Info is a named, identity-bearing probe. Place it in a [Doc] with [Doc.Info] and it records the
// writer's position -- its [WriterInfo] -- the moment the printer reaches it. A [Condition]
// resolver can later look that position up with [ConditionContext.ResolvedInfo], even one placed
// further ahead in the document, because the resolver only runs once the printer actually reaches
// the condition.
type Info struct {
	id   uint64
	Name string
}

// NewInfo returns a new Info carrying a fresh, process-unique identity. name is used only for
// debugging.
func NewInfo(name string) *Info {
	return &Info{id: infoCounter.Add(1), Name: name}
}

// WriterInfo is a snapshot of the writer's bookkeeping fields at a particular point in the
// printed output.
type WriterInfo struct {
	LineNumber            uint32
	ColumnNumber          uint32
	IndentLevel           uint16
	LineStartIndentLevel  uint16
	LineStartColumnNumber uint32
}
