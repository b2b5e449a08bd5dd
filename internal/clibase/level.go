package clibase

// Level counts occurrences of a repeatable switch. It saturates at Twice:
// a third and later occurrence mean the same as the second.
type Level uint8

const (
	Off Level = iota
	Once
	Twice
)

// Next returns the level after one more occurrence.
func (l Level) Next() Level {
	if l < Twice {
		return l + 1
	}
	return Twice
}

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Once:
		return "once"
	}
	return "twice"
}
