package printitem

// Item is the sum type printed by a [Printer]. It has no exported variants; build a tree of items
// with [Doc] and print it with [Print].
type Item interface {
	item()
}

// items is a flattened sequence of items. Doc.Build flattens nested sequences at construction time
// so the printer never has to recurse through empty wrapper nodes.
type items []Item

func (items) item() {}

// stringItem is an atomic, opaque piece of text. It must not contain a newline; producers that
// need a line break inside a literal must emit an explicit [Doc.NewLine] instead.
type stringItem struct {
	content string
}

func (stringItem) item() {}

type tabItem struct{}

func (tabItem) item() {}

type singleIndentItem struct{}

func (singleIndentItem) item() {}

type newLineItem struct{}

func (newLineItem) item() {}

type possibleNewLineItem struct{}

func (possibleNewLineItem) item() {}

type spaceOrNewLineItem struct{}

func (spaceOrNewLineItem) item() {}

// softLineItem behaves like [spaceOrNewLineItem] for the purposes of the enclosing newline group,
// but renders nothing at all -- rather than a space -- when the group stays flat. Useful for the
// break just inside an opening bracket or just before a closing one.
type softLineItem struct{}

func (softLineItem) item() {}

// textOrNewLineItem behaves like [spaceOrNewLineItem] but renders an arbitrary flat-case string
// instead of a fixed single space, e.g. a separating comma that disappears in favor of a line
// break once the enclosing group is broken.
type textOrNewLineItem struct {
	flat string
}

func (textOrNewLineItem) item() {}

// measuredGroupItem pairs a StartNewLineGroup/FinishNewLineGroup signal around body like
// [newLineGroupItem], but decides the group's broken state eagerly, by measuring whether body
// would fit flat from the current position, rather than discovering it reactively through
// overflow and rollback. The items inside body never see a rollback of their own: the decision is
// final once made.
type measuredGroupItem struct {
	body Item
}

func (*measuredGroupItem) item() {}

type expectNewLineItem struct{}

func (expectNewLineItem) item() {}

// indentItem pairs a StartIndent/FinishIndent signal around body. Nesting the body inside the item
// rather than emitting two free-standing start/finish signals makes an unbalanced pair impossible
// to construct through [Doc].
type indentItem struct {
	body Item
}

func (*indentItem) item() {}

// newLineGroupItem pairs a StartNewLineGroup/FinishNewLineGroup signal around body. All
// [spaceOrNewLineItem] decisions reached while walking body are taken jointly: once one breaks,
// every later one in the same group breaks too.
type newLineGroupItem struct {
	body Item
}

func (*newLineGroupItem) item() {}

// ignoringIndentItem pairs a StartIgnoringIndent/FinishIgnoringIndent signal around body. Lines
// started while printing body do not get the line-start indent prefix.
type ignoringIndentItem struct {
	body Item
}

func (*ignoringIndentItem) item() {}

type infoItem struct {
	info *Info
}

func (*infoItem) item() {}

type conditionItem struct {
	cond *Condition
}

func (*conditionItem) item() {}

// sharedItem lets a node be referenced by more than one parent without being cloned. The printer
// walks the referenced node afresh every time it is reached, since the same sub-tree can render
// differently under a different condition or indentation context.
type sharedItem struct {
	node *Shared
}

func (*sharedItem) item() {}

// Shared wraps an [Item] so it can be spliced into a [Doc] more than once. Build it once with
// [NewShared] and pass it to [Doc.Shared] wherever it is needed; it must not be mutated after
// first use.
type Shared struct {
	item Item
}

// NewShared wraps item so it can be referenced from multiple places in a [Doc] tree.
func NewShared(item Item) *Shared {
	return &Shared{item: item}
}

func flatten(item Item) Item {
	if item == nil {
		return items(nil)
	}
	seq, ok := item.(items)
	if !ok {
		return item
	}

	capacity := 0
	for _, it := range seq {
		capacity += flattenedLen(it)
	}
	if capacity == len(seq) {
		return item
	}

	flattened := make(items, 0, capacity)
	for _, it := range seq {
		fillFlattened(it, &flattened)
	}
	return flattened
}

func flattenedLen(item Item) int {
	if seq, ok := item.(items); ok {
		n := 0
		for _, it := range seq {
			n += flattenedLen(it)
		}
		return n
	}
	return 1
}

func fillFlattened(item Item, out *items) {
	if seq, ok := item.(items); ok {
		for _, it := range seq {
			fillFlattened(it, out)
		}
		return
	}
	*out = append(*out, item)
}
