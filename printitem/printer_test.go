package printitem_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/dsherret/dprint/printitem"
)

func TestPrintFitsOnOneLine(t *testing.T) {
	d := new(printitem.Doc).
		String("call(").
		NewLineGroup(func(d *printitem.Doc) {
			d.String("a").SpaceOrNewLine().String("b")
		}).
		String(")")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})

	assert.Equalsf(t, got, "call(a b)", "Print()")
}

func TestPrintOverflowsGroupBreaks(t *testing.T) {
	d := new(printitem.Doc).
		String("call(").
		Indent(func(d *printitem.Doc) {
			d.NewLineGroup(func(d *printitem.Doc) {
				d.NewLine().String("a").SpaceOrNewLine().String("b")
			})
		}).
		NewLine().
		String(")")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 4, IndentWidth: 2})

	assert.Equalsf(t, got, "call(\n  a\n  b\n)", "Print()")
}

func TestPrintPossibleNewLineNotNeeded(t *testing.T) {
	d := new(printitem.Doc).String("x").PossibleNewLine().String("y")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})

	assert.Equalsf(t, got, "xy", "Print()")
}

func TestPrintPossibleNewLineNeeded(t *testing.T) {
	d := new(printitem.Doc).String("x").PossibleNewLine().String("y")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 1})

	assert.Equalsf(t, got, "x\ny", "Print()")
}

func TestPrintExpectNewLineAfterNewLineCollapses(t *testing.T) {
	d := new(printitem.Doc).String("a").NewLine().ExpectNewLine().String("b")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})

	assert.Equalsf(t, got, "a\nb", "Print()")
}

func TestPrintConditionReferencingALaterInfoIsIndeterminateUntilReached(t *testing.T) {
	// A condition reached before the info it depends on has nothing to resolve against yet: the
	// resolver reports it unresolved, and the printer treats that the same as a resolved false for
	// which branch to print. Nothing later in the document revisits that choice, since no savepoint
	// was recorded before the condition to roll back to.
	build := func(maxWidth uint32) string {
		d := new(printitem.Doc)
		var after *printitem.Info
		cond := printitem.NewCondition("after-is-later-line", func(ctx *printitem.ConditionContext) (bool, bool) {
			info, ok := ctx.ResolvedInfo(after)
			if !ok {
				return false, false
			}
			return info.LineNumber > ctx.WriterInfo.LineNumber, true
		}, stringOf("[true]"), stringOf("[false]"))

		d.Condition(cond)
		d.NewLineGroup(func(d *printitem.Doc) {
			d.String("aaaa").SpaceOrNewLine().String("bbbb").SpaceOrNewLine().String("cccc")
		})
		after = d.Info("after")

		return printitem.Print(d.Build(), printitem.Options{MaxWidth: maxWidth})
	}

	assert.Equalsf(t, build(80), "[false]aaaa bbbb cccc", "Print() fitting on one line")
	assert.Equalsf(t, build(6), "[false]aaaa\nbbbb\ncccc", "Print() forced to wrap")
}

func TestPrintConditionTracksWhetherAGroupBroke(t *testing.T) {
	// The common use of Info/Condition together: mark the position before a group, and after it
	// compare the line number there to the line number reached by the end, to tell whether the
	// group broke onto multiple lines -- the technique a trailing-comma-after-a-broken-list rule is
	// built on.
	build := func(maxWidth uint32) string {
		d := new(printitem.Doc)
		start := d.Info("start")
		d.NewLineGroup(func(d *printitem.Doc) {
			d.String("a").SpaceOrNewLine().String("b").SpaceOrNewLine().String("c")
		})
		end := d.Info("end")
		cond := printitem.NewCondition("broke", func(ctx *printitem.ConditionContext) (bool, bool) {
			startInfo, ok := ctx.ResolvedInfo(start)
			if !ok {
				return false, false
			}
			endInfo, ok := ctx.ResolvedInfo(end)
			if !ok {
				return false, false
			}
			return endInfo.LineNumber > startInfo.LineNumber, true
		}, stringOf(","), nil)
		d.Condition(cond)

		return printitem.Print(d.Build(), printitem.Options{MaxWidth: maxWidth})
	}

	assert.Equalsf(t, build(80), "a b c", "Print() fitting on one line takes no trailing comma")
	assert.Equalsf(t, build(1), "a\nb\nc,", "Print() forced to wrap takes the trailing comma")
}

func TestPrintConditionChainedOffAnIndeterminateConditionStaysUnresolved(t *testing.T) {
	// first depends on an info recorded after it, so it is indeterminate the only time it is
	// evaluated: nothing rolls back and revisits it. second chains off first via
	// ctx.ResolvedCondition, and must see it as still unresolved rather than as resolved to false --
	// an indeterminate result must never be recorded as if it were a definite one.
	d := new(printitem.Doc)
	var after *printitem.Info
	first := printitem.NewCondition("first", func(ctx *printitem.ConditionContext) (bool, bool) {
		info, ok := ctx.ResolvedInfo(after)
		if !ok {
			return false, false
		}
		return info.LineNumber > ctx.WriterInfo.LineNumber, true
	}, stringOf("[first-true]"), stringOf("[first-false]"))
	second := printitem.NewCondition("second", func(ctx *printitem.ConditionContext) (bool, bool) {
		_, resolved := ctx.ResolvedCondition(first)
		return resolved, true
	}, stringOf("[first-looked-resolved]"), stringOf("[first-correctly-unresolved]"))

	d.Condition(first)
	d.Condition(second)
	after = d.Info("after")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})

	assert.Equalsf(t, got, "[first-false][first-correctly-unresolved]", "Print()")
}

func stringOf(s string) printitem.Item {
	return new(printitem.Doc).String(s).Build()
}

func TestPrintSoftLineRendersNothingWhenFlat(t *testing.T) {
	d := new(printitem.Doc).String("[").SoftLine().String("a").SoftLine().String("]")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})

	assert.Equalsf(t, got, "[a]", "Print()")
}

func TestPrintSoftLineBreaksWithTheGroup(t *testing.T) {
	d := new(printitem.Doc).String("[").
		NewLineGroup(func(d *printitem.Doc) {
			d.SoftLine().
				Indent(func(d *printitem.Doc) {
					d.String("aaaa").SpaceOrNewLine().String("bbbb")
				}).
				SoftLine()
		}).
		String("]")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 6, IndentWidth: 2})

	// Only the innermost SpaceOrNewLine overflowed, so only it rolls back: the leading SoftLine
	// had already committed to staying flat before the overflow was known, and nothing revisits
	// that choice once its savepoint is gone. This is the speculative printer's local, greedy
	// nature -- a break cascades backward only as far as still-live savepoints reach.
	assert.Equalsf(t, got, "[aaaa\n  bbbb\n]", "Print()")
}

func TestPrintMeasuredGroupStaysFlatWhenItFits(t *testing.T) {
	d := new(printitem.Doc).String("[").
		MeasuredGroup(func(d *printitem.Doc) {
			d.SoftLine().
				String("a").TextOrNewLine(",").
				String("b").TextOrNewLine(",").
				String("c")
			d.SoftLine()
		}).
		String("]")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})

	assert.Equalsf(t, got, "[a,b,c]", "Print()")
}

func TestPrintMeasuredGroupBreaksUniformlyWhenItDoesNotFit(t *testing.T) {
	d := new(printitem.Doc).String("[").
		MeasuredGroup(func(d *printitem.Doc) {
			d.SoftLine().
				Indent(func(d *printitem.Doc) {
					d.String("aaaa").TextOrNewLine(",").
						String("bbbb").TextOrNewLine(",").
						String("cccc")
				}).
				SoftLine()
		}).
		String("]")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 6, IndentWidth: 2})

	// Every separator in the group breaks, not just the one that would have overflowed --
	// MeasuredGroup commits to broken for the whole body upfront rather than discovering it
	// reactively at the first overflowing separator.
	assert.Equalsf(t, got, "[\naaaa\n  bbbb\n  cccc\n]", "Print()")
}

func TestPrintNewLineGroupAtomicity(t *testing.T) {
	d := new(printitem.Doc).NewLineGroup(func(d *printitem.Doc) {
		d.String("aaaaaaaaaa").SpaceOrNewLine().String("b").SpaceOrNewLine().String("c")
	})

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 8})

	assert.Equalsf(t, got, "aaaaaaaaaa\nb\nc", "Print()")
}

func TestPrintGracefulDegradationWithoutBreakPoint(t *testing.T) {
	d := new(printitem.Doc).String("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 10})

	assert.Equalsf(t, got, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "Print() with no break point available")
}

func TestPrintIgnoringIndent(t *testing.T) {
	d := new(printitem.Doc).Indent(func(d *printitem.Doc) {
		d.NewLine().String("a").
			IgnoringIndent(func(d *printitem.Doc) {
				d.NewLine().String("b")
			}).
			NewLine().String("c")
	})

	got := printitem.Print(d.Build(), printitem.Options{IndentWidth: 2})

	assert.Equalsf(t, got, "\n  a\nb\n  c", "Print()")
}

func TestPrintUseTabs(t *testing.T) {
	d := new(printitem.Doc).Indent(func(d *printitem.Doc) {
		d.NewLine().String("a")
	})

	got := printitem.Print(d.Build(), printitem.Options{UseTabs: true})

	assert.Equalsf(t, got, "\n\ta", "Print()")
}

func TestPrintCarriageReturnNewLine(t *testing.T) {
	d := new(printitem.Doc).String("a").NewLine().String("b")

	got := printitem.Print(d.Build(), printitem.Options{NewLineText: "\r\n"})

	assert.Equalsf(t, got, "a\r\nb", "Print()")
}

func TestPrintSharedIsWalkedEveryTime(t *testing.T) {
	shared := printitem.NewShared(new(printitem.Doc).String("x").Build())

	d := new(printitem.Doc).Shared(shared).String(",").Shared(shared)

	got := printitem.Print(d.Build(), printitem.Options{MaxWidth: 80})

	assert.Equalsf(t, got, "x,x", "Print()")
}
