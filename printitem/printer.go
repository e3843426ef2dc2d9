package printitem

import "github.com/dsherret/dprint/internal/assert"

// Print walks item depth-first and returns the formatted output. It is a pure function of
// (item, opts) up to the process-global [Info] and [Condition] identity counters: printing the
// same tree twice with the same options yields the same string.
//
// The walk is single-pass and speculative: a [Doc.PossibleNewLine] or [Doc.SpaceOrNewLine] is
// provisionally taken as "no break" (or "space") and a savepoint is recorded. If a later write
// would push the line past opts.MaxWidth, the printer rolls the writer, the resolver state, and
// its own work stack back to the most recent still-live savepoint, commits that choice as a line
// break, and resumes. If no savepoint is available the printer never fails: it emits the
// over-long line verbatim.
func Print(item Item, opts Options) string {
	p := newPrinter(opts)
	p.run(flatten(item))
	return p.w.String()
}

// Printer holds the state for one print attempt: the writer, the resolver state, the pending
// work stack, and the currently open newline groups. A Printer is used for exactly one [Print]
// call.
type Printer struct {
	opts     Options
	w        *writer
	resolver *resolverState

	stack      []op
	savepoints []*savepoint
	group      *groupFrame
}

func newPrinter(opts Options) *Printer {
	return &Printer{
		opts:     opts,
		w:        newWriter(opts),
		resolver: newResolverState(),
		// the implicit top-level scope behaves like an always-open, never-broken newline group so
		// that PossibleNewLine and SpaceOrNewLine work even outside an explicit NewLineGroup.
		group: &groupFrame{},
	}
}

type opKind uint8

const (
	opItem opKind = iota
	opBeginIndent
	opEndIndent
	opBeginGroup
	opEndGroup
	opBeginIgnoreIndent
	opEndIgnoreIndent
)

type op struct {
	kind  opKind
	item  Item
	group *groupFrame
}

type groupFrame struct {
	broken       bool
	savepointBase int
	parent       *groupFrame
}

type savepointKind uint8

const (
	savepointPossible savepointKind = iota
	savepointSpace
)

type savepoint struct {
	kind        savepointKind
	writerSnap  writerSnapshot
	resolverMark int
	stack       []op
	group       *groupFrame
}

func (p *Printer) push(o op) {
	p.stack = append(p.stack, o)
}

func (p *Printer) pop() (op, bool) {
	if len(p.stack) == 0 {
		return op{}, false
	}
	last := len(p.stack) - 1
	o := p.stack[last]
	p.stack = p.stack[:last]
	return o, true
}

func (p *Printer) run(root Item) {
	p.push(op{kind: opItem, item: root})

	for {
		o, ok := p.pop()
		if !ok {
			return
		}

		switch o.kind {
		case opBeginIndent:
			p.w.pushIndent()
		case opEndIndent:
			p.w.popIndent()
		case opBeginGroup:
			o.group.savepointBase = len(p.savepoints)
			p.group = o.group
		case opEndGroup:
			if len(p.savepoints) > o.group.savepointBase {
				p.savepoints = p.savepoints[:o.group.savepointBase]
			}
			p.group = o.group.parent
		case opBeginIgnoreIndent:
			p.w.startIgnoringIndent()
		case opEndIgnoreIndent:
			p.w.finishIgnoringIndent()
		case opItem:
			p.visit(o.item)
		}
	}
}

func (p *Printer) visit(item Item) {
	switch it := item.(type) {
	case items:
		for i := len(it) - 1; i >= 0; i-- {
			p.push(op{kind: opItem, item: it[i]})
		}
	case stringItem:
		p.writeChecked(len([]rune(it.content)), func() { p.w.writeText(it.content) })
	case tabItem:
		p.writeChecked(1, func() { p.w.writeTab() })
	case singleIndentItem:
		p.writeChecked(1, func() { p.w.writeIndent() })
	case newLineItem:
		p.w.writeNewline()
	case expectNewLineItem:
		if !p.w.lastByteIsNewline() {
			p.w.writeNewline()
		}
	case possibleNewLineItem:
		p.recordSavepoint(savepointPossible)
	case spaceOrNewLineItem:
		if p.group.broken {
			p.w.writeNewline()
		} else {
			p.recordSavepoint(savepointSpace)
			p.w.writeText(" ")
		}
	case softLineItem:
		if p.group.broken {
			p.w.writeNewline()
		} else {
			p.recordSavepoint(savepointSpace)
		}
	case textOrNewLineItem:
		if p.group.broken {
			p.w.writeNewline()
		} else {
			p.recordSavepoint(savepointSpace)
			p.w.writeText(it.flat)
		}
	case *indentItem:
		p.push(op{kind: opEndIndent})
		p.push(op{kind: opItem, item: it.body})
		p.push(op{kind: opBeginIndent})
	case *newLineGroupItem:
		frame := &groupFrame{parent: p.group}
		p.push(op{kind: opEndGroup, group: frame})
		p.push(op{kind: opItem, item: it.body})
		p.push(op{kind: opBeginGroup, group: frame})
	case *measuredGroupItem:
		frame := &groupFrame{parent: p.group, broken: !p.fitsFlat(it.body)}
		p.push(op{kind: opEndGroup, group: frame})
		p.push(op{kind: opItem, item: it.body})
		p.push(op{kind: opBeginGroup, group: frame})
	case *ignoringIndentItem:
		p.push(op{kind: opEndIgnoreIndent})
		p.push(op{kind: opItem, item: it.body})
		p.push(op{kind: opBeginIgnoreIndent})
	case *infoItem:
		p.resolveInfo(it.info)
	case *conditionItem:
		p.resolveCondition(it.cond)
	case *sharedItem:
		p.push(op{kind: opItem, item: it.node.item})
	}
}

func (p *Printer) resolveInfo(info *Info) {
	cur := p.w.info()
	if p.opts.IsTesting {
		if prev, ok := p.resolver.info(info.id); ok {
			assert.That(cur.LineNumber >= prev.LineNumber,
				"info %q committed at line %d after an earlier commit at line %d", info.Name, cur.LineNumber, prev.LineNumber)
		}
	}
	p.resolver.setInfo(info.id, cur)
}

func (p *Printer) resolveCondition(cond *Condition) {
	ctx := &ConditionContext{WriterInfo: p.w.info(), printer: p}
	value, resolved := false, false
	if cond.Resolve != nil {
		value, resolved = cond.Resolve(ctx)
	}
	if resolved {
		p.resolver.setCondition(cond.id, value)
	}

	var branch Item
	switch {
	case resolved && value:
		branch = cond.TruePath
	default:
		branch = cond.FalsePath
	}
	if branch != nil {
		p.push(op{kind: opItem, item: branch})
	}
}

// fitsFlat reports whether item, rendered with every break decision inside it taken flat, would
// stay within the configured width starting from the writer's current column. A forced [Doc.NewLine]
// or [Doc.ExpectNewLine] anywhere inside makes flat rendering impossible, so it always reports false.
func (p *Printer) fitsFlat(item Item) bool {
	width, ok := measureFlatWidth(item, p.w.columnNumber, p)
	return ok && width <= p.opts.maxWidth()+1
}

// measureFlatWidth returns the column reached after item, assuming every break decision inside it
// resolves to its flat form, and whether item can be rendered flat at all.
func measureFlatWidth(item Item, col uint32, p *Printer) (uint32, bool) {
	switch it := item.(type) {
	case items:
		ok := true
		for _, sub := range it {
			col, ok = measureFlatWidth(sub, col, p)
			if !ok {
				return 0, false
			}
		}
		return col, true
	case stringItem:
		return col + uint32(len([]rune(it.content))), true
	case tabItem, singleIndentItem:
		return col + 1, true
	case newLineItem, expectNewLineItem:
		return 0, false
	case possibleNewLineItem, softLineItem:
		return col, true
	case spaceOrNewLineItem:
		return col + 1, true
	case textOrNewLineItem:
		return col + uint32(len([]rune(it.flat))), true
	case *indentItem:
		return measureFlatWidth(it.body, col, p)
	case *newLineGroupItem:
		return measureFlatWidth(it.body, col, p)
	case *measuredGroupItem:
		return measureFlatWidth(it.body, col, p)
	case *ignoringIndentItem:
		return measureFlatWidth(it.body, col, p)
	case *infoItem:
		return col, true
	case *conditionItem:
		ctx := &ConditionContext{WriterInfo: WriterInfo{LineNumber: p.w.lineNumber, ColumnNumber: col}, printer: p}
		value, resolved := false, false
		if it.cond.Resolve != nil {
			value, resolved = it.cond.Resolve(ctx)
		}
		branch := it.cond.FalsePath
		if resolved && value {
			branch = it.cond.TruePath
		}
		if branch == nil {
			return col, true
		}
		return measureFlatWidth(branch, col, p)
	case *sharedItem:
		return measureFlatWidth(it.node.item, col, p)
	}
	return col, true
}

// recordSavepoint captures enough state to resume right after the possible/space break that is
// about to be provisionally skipped (or taken as a space), tagged with the newline group it
// belongs to so the group can discard it early on FinishNewLineGroup.
func (p *Printer) recordSavepoint(kind savepointKind) {
	sp := &savepoint{
		kind:         kind,
		writerSnap:   p.w.snapshot(),
		resolverMark: p.resolver.mark(),
		stack:        append([]op(nil), p.stack...),
		group:        p.group,
	}
	p.savepoints = append(p.savepoints, sp)
}

// writeChecked performs write, then -- if it would push the column past the configured width and
// a savepoint is available to roll back to -- undoes it and commits that savepoint's break
// instead. width is the number of display characters write is about to add.
func (p *Printer) writeChecked(width int, write func()) {
	overflows := p.w.columnNumber+uint32(width)-1 > p.opts.maxWidth()
	if !overflows || len(p.savepoints) == 0 {
		write()
		return
	}
	p.rollback()
}

// rollback pops the most recent savepoint, restores the writer, resolver, and work stack to it,
// and commits its deferred break.
func (p *Printer) rollback() {
	last := len(p.savepoints) - 1
	sp := p.savepoints[last]
	p.savepoints = p.savepoints[:last]

	p.w.restore(sp.writerSnap)
	p.resolver.restore(sp.resolverMark)
	p.stack = append([]op(nil), sp.stack...)
	p.group = sp.group

	if sp.kind == savepointSpace {
		sp.group.broken = true
	}
	p.w.writeNewline()
}
