package wins

// Log is an append-only record of contest outcomes, one Flag per contest.
// The zero value is an empty log ready for use. A Log is not safe for
// concurrent use; give each worker its own and merge them with Extend.
type Log struct {
	flags []Flag
}

// NewLog creates a log holding flags in order.
func NewLog(flags ...Flag) *Log {
	l := &Log{flags: make([]Flag, len(flags))}
	copy(l.flags, flags)
	return l
}

// Add records one outcome.
func (l *Log) Add(flag Flag) {
	l.flags = append(l.flags, flag)
}

// AddN records the same outcome n times. It is meant for precomputed
// combinatorial counts; n <= 0 records nothing.
func (l *Log) AddN(flag Flag, n int) {
	if n <= 0 {
		return
	}
	l.flags = append(l.flags, make([]Flag, n)...)
	tail := l.flags[len(l.flags)-n:]
	for i := range tail {
		tail[i] = flag
	}
}

// AddFirst records an outright win for the first participant.
func (l *Log) AddFirst() { l.Add(First) }

// AddSecond records an outright win for the second participant.
func (l *Log) AddSecond() { l.Add(Second) }

// AddThird records an outright win for the third participant.
func (l *Log) AddThird() { l.Add(Third) }

// Extend appends every outcome of other, keeping its order.
func (l *Log) Extend(other *Log) {
	if other == nil {
		return
	}
	l.flags = append(l.flags, other.flags...)
}

// Flags returns a copy of the recorded outcomes.
func (l *Log) Flags() []Flag {
	out := make([]Flag, len(l.flags))
	copy(out, l.flags)
	return out
}

// Len returns the number of recorded contests.
func (l *Log) Len() int {
	return len(l.flags)
}

// IsEmpty reports whether nothing has been recorded.
func (l *Log) IsEmpty() bool {
	return len(l.flags) == 0
}

// WinsFor counts the outcomes containing target. The win count includes
// ties; ties is how many of those wins were shared. Pure wins are
// wins - ties.
func (l *Log) WinsFor(target Flag) (wins, ties int) {
	for _, f := range l.flags {
		if !f.WinsFor(target) {
			continue
		}
		wins++
		if f.IsTie() {
			ties++
		}
	}
	return wins, ties
}

// PercentageForPlayer returns the pure win and tie percentages of the
// participant at the 0-based index.
func (l *Log) PercentageForPlayer(index int) (win, tie float64) {
	total := l.Len()
	wins, ties := l.WinsFor(FromIndex(index))
	return CalculatePercentage(wins-ties, total), CalculatePercentage(ties, total)
}

// HeadsUp summarises the log as a two participant contest. Each outcome is
// masked down to the first two bits, so logs with more participants are
// narrowed rather than rejected; outcomes where neither of the two placed
// first are not counted.
func (l *Log) HeadsUp() HeadsUp {
	var first, second, ties int
	for _, f := range l.flags {
		switch f & (First | Second) {
		case First:
			first++
		case Second:
			second++
		case First | Second:
			ties++
		}
	}
	return NewHeadsUp(first, second, ties)
}
