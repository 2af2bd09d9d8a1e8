package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"memoria-parser/internal/parser"
)

// Filter selects memoria by their parsed properties. Zero fields match
// everything.
type Filter struct {
	Element parser.Element
	Kind    Kind
	// Effect and Status match if any skill or support effect carries them.
	Effect  parser.EffectType
	Status  parser.StatusKind
	Trigger parser.Trigger // support trigger
	Name    string         // substring of the record name
}

// NewFilter builds a Filter from textual parameters such as a query
// string. Unknown keys and values are errors.
func NewFilter(params map[string]string) (Filter, error) {
	var f Filter
	for _, k := range slices.Sorted(maps.Keys(params)) {
		v := params[k]
		if v == "" {
			continue
		}
		var err error
		switch k {
		case "element":
			err = f.Element.UnmarshalText([]byte(v))
		case "kind":
			err = f.Kind.UnmarshalText([]byte(v))
		case "effect":
			err = f.Effect.UnmarshalText([]byte(v))
		case "status":
			err = f.Status.UnmarshalText([]byte(v))
		case "trigger":
			err = f.Trigger.UnmarshalText([]byte(v))
		case "name":
			f.Name = v
		default:
			err = fmt.Errorf("unknown filter %q", k)
		}
		if err != nil {
			return Filter{}, fmt.Errorf("filter %s: %w", k, err)
		}
	}
	return f, nil
}

func (f Filter) Match(m Memoria) bool {
	if f.Element != "" && m.Element != f.Element {
		return false
	}
	if f.Kind != "" && m.Kind != f.Kind {
		return false
	}
	if f.Trigger != "" && m.Skills.Support.Trigger != f.Trigger {
		return false
	}
	if f.Name != "" && !strings.Contains(m.Name, f.Name) {
		return false
	}
	if f.Effect == "" && f.Status == "" {
		return true
	}
	effects := slices.Concat(m.Skills.Skill.Effects, m.Skills.Support.Effects)
	return slices.ContainsFunc(effects, func(e parser.Effect) bool {
		return (f.Effect == "" || e.Type == f.Effect) && (f.Status == "" || e.Status == f.Status)
	})
}

// Filter returns the records matching f in catalog order. The effects of
// the returned records are shared with the catalog.
func (c *Catalog) Filter(f Filter) []Memoria {
	out := []Memoria{}
	for _, m := range c.memoria {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}
