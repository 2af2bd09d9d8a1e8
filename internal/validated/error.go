package validated

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a single validation failure.
type Error struct {
	// Target is the exact substring that could not be matched or was invalid.
	Target string `json:"target" yaml:"target"`
	// Msg is the human-readable cause.
	Msg  string `json:"msg" yaml:"msg"`
	Meta Meta   `json:"meta" yaml:"meta"`
}

// Meta carries the provenance of an Error.
type Meta struct {
	// Path is the dotted parser-call trail at the point of failure.
	Path string `json:"path" yaml:"path"`
	// Entity names the record being validated, when known.
	Entity string `json:"entityName,omitempty" yaml:"entityName,omitempty"`
}

// NewError builds an Error located at p.
func NewError(p Path, target, msg string) Error {
	return Error{Target: target, Msg: msg, Meta: Meta{Path: p.String()}}
}

func (e Error) Error() string {
	if e.Meta.Entity != "" {
		return fmt.Sprintf("%s: %s: %s (target %q)", e.Meta.Entity, e.Meta.Path, e.Msg, e.Target)
	}
	return fmt.Sprintf("%s: %s (target %q)", e.Meta.Path, e.Msg, e.Target)
}

// List is a non-empty collection of failures returned as one error.
type List []Error

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Format renders the list as indented JSON for maintainers reading CI logs.
func (l List) Format() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return l.Error()
	}
	return strings.TrimRight(buf.String(), "\n")
}
