package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"memoria-parser/internal/catalog"
	"memoria-parser/internal/parser"
)

// dumpDoc is the serialized form of a whole catalog.
type dumpDoc struct {
	Memoria []catalog.Memoria `json:"memoria" yaml:"memoria"`
	Orders  []catalog.Order   `json:"orders" yaml:"orders"`
}

func newDumpDoc(c *catalog.Catalog) dumpDoc {
	return dumpDoc{Memoria: c.Memoria(), Orders: c.Orders()}
}

// summarizeEffects renders effects as "ATK medium up, DamageUp small".
func summarizeEffects(effects []parser.Effect) string {
	if len(effects) == 0 {
		return "-"
	}
	parts := make([]string, len(effects))
	for i, e := range effects {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeFormat(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		return writeJSON(w, v)
	case "yaml":
		return writeYAML(w, v)
	}
	return fmt.Errorf("unknown format %q (want json or yaml)", format)
}

func writeTable(w io.Writer, ms []catalog.Memoria) {
	fmt.Fprintf(w, "%-4s %-8s %-6s %s\n", "ID", "Element", "Kind", "Name")
	fmt.Fprintf(w, "%-4s %-8s %-6s %s\n", "----", "--------", "------", "----")
	for _, m := range ms {
		fmt.Fprintf(w, "%-4d %-8s %-6s %s\n", m.ID, m.Element, m.Kind, m.Name)
		fmt.Fprintf(w, "     skill:   %s\n", summarizeEffects(m.Skills.Skill.Effects))
		sup := m.Skills.Support
		fmt.Fprintf(w, "     support: [%s/%s] %s\n", sup.Trigger, sup.Probability, summarizeEffects(sup.Effects))
		if l := m.Skills.Legendary; l != nil {
			fmt.Fprintf(w, "     legendary: %s %s %v%%\n", l.Attribute, l.Trigger, l.Rates)
		}
	}
	fmt.Fprintf(w, "%d memoria\n", len(ms))
}
