// Package printitem implements a language-agnostic print engine: a declarative toolkit for
// building pretty printers and code formatters.
//
// A front-end parses some source language and builds a [Doc], a tree of print items describing
// layout intent rather than explicit formatting decisions. The engine then prints that tree to a
// string respecting a configured maximum line width, indentation, and a small set of line-break
// primitives:
//
//   - [Doc.String]: a literal piece of text
//   - [Doc.Tab] / [Doc.SingleIndent]: a single tab or indent unit
//   - [Doc.NewLine] / [Doc.ExpectNewLine]: an unconditional break
//   - [Doc.PossibleNewLine]: a break taken only if the line would otherwise overflow
//   - [Doc.SpaceOrNewLine]: a space, or a break if its enclosing group already broke or would
//     overflow
//   - [Doc.NewLineGroup]: scopes [Doc.SpaceOrNewLine] decisions so they are taken jointly
//   - [Doc.SoftLine] / [Doc.TextOrNewLine]: like [Doc.SpaceOrNewLine] but render nothing, or an
//     arbitrary flat-case string, instead of a fixed space
//   - [Doc.MeasuredGroup]: like [Doc.NewLineGroup], but decides its break mode upfront by
//     measuring whether its body fits flat, rather than discovering it through overflow
//   - [Doc.Indent]: increases the indentation level applied after the next newline
//   - [Doc.IgnoringIndent]: suppresses the indent prefix for a region
//   - [Doc.Info] / [Doc.Condition]: probe points and branches that can depend on information
//     produced later in the same print, resolved by the printer as it walks the tree
//   - [Doc.Shared]: lets a node be referenced from multiple parents without cloning it
//
// Unlike a two-phase measure-then-layout engine, this printer makes a single forward pass and
// backtracks: it speculatively emits past a [Doc.SpaceOrNewLine] or [Doc.PossibleNewLine], and
// only commits that choice as a line break once a later write would overflow the configured
// width. This lets conditions depend on positions recorded further ahead in the document, at the
// cost of needing to roll the writer back to a savepoint when a speculative choice turns out
// wrong.
//
// # Acknowledgments
//
// The tag/node tree and fluent builder are a Go-grown descendant of [allman] by mcyoung,
// following the design in ["The Art of Formatting Code"]. The printing algorithm -- print items,
// infos, conditions, and savepoint-based backtracking -- follows [dprint]'s core printer.
//
// [allman]: https://github.com/mcy/strings/tree/main/allman
// ["The Art of Formatting Code"]: https://mcyoung.xyz/2025/03/11/formatters/
// [dprint]: https://github.com/dprint/dprint
package printitem
