package validated

import (
	"strconv"
	"strings"
)

// Path is the breadcrumb trail of parser calls leading to a value.
// With returns a new Path and never touches the receiver.
type Path struct {
	segs []string
}

// Root starts a new path.
func Root(segs ...string) Path {
	return Path{}.With(segs...)
}

// With returns p extended by segs.
func (p Path) With(segs ...string) Path {
	out := make([]string, 0, len(p.segs)+len(segs))
	out = append(out, p.segs...)
	out = append(out, segs...)
	return Path{segs: out}
}

// Index returns p extended by the decimal form of i.
func (p Path) Index(i int) Path {
	return p.With(strconv.Itoa(i))
}

// Len reports the number of segments.
func (p Path) Len() int { return len(p.segs) }

// String joins the segments with dots, e.g. "parseLegendary.parseSeq.2.parseTrigger".
func (p Path) String() string {
	return strings.Join(p.segs, ".")
}
