package printitem

import "sync/atomic"

var conditionCounter atomic.Uint64

// ConditionResolver decides which branch of a [Condition] to take. It is invoked with a
// [ConditionContext] giving read-only access to everything resolved so far in the current print
// attempt, plus the writer's current position. It must be a pure function of that state: it must
// not mutate anything that outlives the call, and must not block.
//
// Returning (_, false) means the condition is indeterminate -- the resolver does not yet have
// enough information to decide. The printer treats that the same as a resolved false for which
// branch it prints, but records the condition as unresolved so a later, better-informed
// evaluation (after a rollback) can revisit it.
type ConditionResolver func(ctx *ConditionContext) (value bool, resolved bool)

// Condition is a branch computed from resolver state -- other resolved conditions, or infos, even
// ones recorded later in the document -- rather than from a value known when the [Doc] was built.
type Condition struct {
	id        uint64
	Name      string
	Resolve   ConditionResolver
	TruePath  Item
	FalsePath Item
}

// NewCondition returns a new Condition carrying a fresh, process-unique identity. name is used
// only for debugging. Either path may be nil, in which case the printer treats that branch as a
// no-op.
func NewCondition(name string, resolve ConditionResolver, truePath, falsePath Item) *Condition {
	return &Condition{
		id:        conditionCounter.Add(1),
		Name:      name,
		Resolve:   resolve,
		TruePath:  truePath,
		FalsePath: falsePath,
	}
}

// ConditionContext is passed to a [ConditionResolver]. WriterInfo is the writer's position at the
// condition's own location; ResolvedInfo and ResolvedCondition look up positions and booleans
// recorded elsewhere in the current attempt.
type ConditionContext struct {
	WriterInfo WriterInfo

	printer *Printer
}

// ResolvedInfo returns the writer position recorded for info, and whether it has been recorded at
// all in the current attempt.
func (c *ConditionContext) ResolvedInfo(info *Info) (WriterInfo, bool) {
	return c.printer.resolver.info(info.id)
}

// ResolvedCondition returns the previously resolved value of cond, and whether it has been
// resolved at all in the current attempt.
func (c *ConditionContext) ResolvedCondition(cond *Condition) (bool, bool) {
	return c.printer.resolver.condition(cond.id)
}
