package printitem

// resolverState holds everything an attempt has learned about [Info] positions and [Condition]
// outcomes, keyed by identity. It doubles as an undo log: every write appends an entry recording
// the previous value, so a savepoint only needs to remember how many entries existed when it was
// taken, and rollback just replays the log backwards to that mark.
type resolverState struct {
	infos      map[uint64]WriterInfo
	conditions map[uint64]bool

	log []logEntry
}

type logEntry struct {
	isCondition bool

	infoID   uint64
	hadInfo  bool
	prevInfo WriterInfo

	conditionID  uint64
	hadCondition bool
	prevCond     bool
}

func newResolverState() *resolverState {
	return &resolverState{
		infos:      make(map[uint64]WriterInfo),
		conditions: make(map[uint64]bool),
	}
}

// mark returns the current log length, to be passed back to restore later.
func (r *resolverState) mark() int {
	return len(r.log)
}

// setInfo records the writer snapshot for an info, overwriting any snapshot already recorded in
// this attempt -- re-emission during backtracking keeps only the most recent position.
func (r *resolverState) setInfo(id uint64, info WriterInfo) {
	prev, had := r.infos[id]
	r.log = append(r.log, logEntry{infoID: id, hadInfo: had, prevInfo: prev})
	r.infos[id] = info
}

func (r *resolverState) info(id uint64) (WriterInfo, bool) {
	info, ok := r.infos[id]
	return info, ok
}

func (r *resolverState) setCondition(id uint64, value bool) {
	prev, had := r.conditions[id]
	r.log = append(r.log, logEntry{isCondition: true, conditionID: id, hadCondition: had, prevCond: prev})
	r.conditions[id] = value
}

func (r *resolverState) condition(id uint64) (bool, bool) {
	value, ok := r.conditions[id]
	return value, ok
}

// restore undoes every log entry recorded since mark, in reverse order.
func (r *resolverState) restore(mark int) {
	for i := len(r.log) - 1; i >= mark; i-- {
		e := r.log[i]
		if e.isCondition {
			if e.hadCondition {
				r.conditions[e.conditionID] = e.prevCond
			} else {
				delete(r.conditions, e.conditionID)
			}
			continue
		}
		if e.hadInfo {
			r.infos[e.infoID] = e.prevInfo
		} else {
			delete(r.infos, e.infoID)
		}
	}
	r.log = r.log[:mark]
}
