package printitem

// Doc builds an [Item] tree by chaining method calls. The zero value is ready to use.
//
//	d := new(Doc).
//		String("call(").
//		NewLineGroup(func(d *Doc) {
//			d.String("a").SpaceOrNewLine().String("b")
//		}).
//		String(")")
//	printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})
type Doc struct {
	seq items
}

// Build returns the flattened [Item] tree accumulated so far. The Doc can keep being extended
// after Build is called; each call returns an independent snapshot of the sequence at that point.
func (d *Doc) Build() Item {
	return flatten(append(items(nil), d.seq...))
}

func (d *Doc) add(item Item) *Doc {
	d.seq = append(d.seq, item)
	return d
}

// String adds an atomic, opaque piece of text. s must not contain a newline.
func (d *Doc) String(s string) *Doc {
	return d.add(stringItem{content: s})
}

// Tab adds a single literal tab character.
func (d *Doc) Tab() *Doc {
	return d.add(tabItem{})
}

// SingleIndent adds one indent unit -- a tab, or the configured number of spaces.
func (d *Doc) SingleIndent() *Doc {
	return d.add(singleIndentItem{})
}

// NewLine forces a line break.
func (d *Doc) NewLine() *Doc {
	return d.add(newLineItem{})
}

// PossibleNewLine adds a candidate break, taken only if the line would otherwise overflow the
// configured width.
func (d *Doc) PossibleNewLine() *Doc {
	return d.add(possibleNewLineItem{})
}

// SpaceOrNewLine adds a single space, which becomes a line break if the enclosing [Doc.NewLineGroup]
// has already broken, or if keeping it as a space would overflow the configured width.
func (d *Doc) SpaceOrNewLine() *Doc {
	return d.add(spaceOrNewLineItem{})
}

// ExpectNewLine forces a line break unless the previously printed item already ended with one.
func (d *Doc) ExpectNewLine() *Doc {
	return d.add(expectNewLineItem{})
}

// SoftLine is a [Doc.SpaceOrNewLine] that renders nothing, rather than a space, when the enclosing
// [Doc.NewLineGroup] stays flat. Typical uses are just inside an opening bracket and just before a
// closing one, so a broken list gets its own indented line without a stray leading space when flat.
func (d *Doc) SoftLine() *Doc {
	return d.add(softLineItem{})
}

// TextOrNewLine is a [Doc.SpaceOrNewLine] that renders flat instead of a fixed single space when
// the enclosing group stays flat -- typically a separating comma that gives way to a line break
// once the group is broken.
func (d *Doc) TextOrNewLine(flat string) *Doc {
	return d.add(textOrNewLineItem{flat: flat})
}

// Indent increases the indentation level for body. The change only affects lines started inside
// body.
func (d *Doc) Indent(body func(*Doc)) *Doc {
	return d.add(&indentItem{body: buildBody(body)})
}

// NewLineGroup scopes the [Doc.SpaceOrNewLine] decisions taken inside body so that they are taken
// jointly: the moment one of them breaks, every later one in the same group breaks too.
func (d *Doc) NewLineGroup(body func(*Doc)) *Doc {
	return d.add(&newLineGroupItem{body: buildBody(body)})
}

// MeasuredGroup scopes body like [Doc.NewLineGroup], but decides upfront -- by measuring whether
// body's flat rendering fits in the remaining width -- rather than speculatively, so every
// [Doc.SpaceOrNewLine], [Doc.SoftLine], and [Doc.TextOrNewLine] decision inside body comes out the
// same way: either all flat, or all broken. Prefer [Doc.NewLineGroup] unless the construct truly
// needs that all-or-nothing guarantee, since this costs a full trial walk of body.
func (d *Doc) MeasuredGroup(body func(*Doc)) *Doc {
	return d.add(&measuredGroupItem{body: buildBody(body)})
}

// IgnoringIndent suppresses the line-start indent prefix for lines started inside body.
func (d *Doc) IgnoringIndent(body func(*Doc)) *Doc {
	return d.add(&ignoringIndentItem{body: buildBody(body)})
}

// Info adds a probe recording the writer's position when the printer reaches it, and returns it
// so a later [Doc.Condition] can look the position up, even one placed earlier in the document.
func (d *Doc) Info(name string) *Info {
	info := NewInfo(name)
	d.add(&infoItem{info: info})
	return info
}

// Condition adds cond, splicing in its resolved true or false path when the printer reaches it.
func (d *Doc) Condition(cond *Condition) *Doc {
	return d.add(&conditionItem{cond: cond})
}

// Shared splices node into the tree. The same [Shared] value can be passed to Shared more than
// once; the printer walks it afresh each time rather than caching its rendered output, since the
// same sub-tree can render differently in a different context.
func (d *Doc) Shared(node *Shared) *Doc {
	return d.add(&sharedItem{node: node})
}

func buildBody(body func(*Doc)) Item {
	if body == nil {
		return items(nil)
	}
	var inner Doc
	body(&inner)
	return inner.Build()
}
