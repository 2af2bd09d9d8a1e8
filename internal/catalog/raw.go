package catalog

import (
	"fmt"

	"github.com/tidwall/gjson"

	"memoria-parser/internal/parser"
)

// Kind is the card type of a memoria as written in the source catalog.
type Kind string

const (
	KindPhysicalSingle Kind = "通常単体"
	KindPhysicalRange  Kind = "通常範囲"
	KindMagicalSingle  Kind = "特殊単体"
	KindMagicalRange   Kind = "特殊範囲"
	KindSupport        Kind = "支援"
	KindInterference   Kind = "妨害"
	KindRecovery       Kind = "回復"
)

var kinds = []Kind{
	KindPhysicalSingle, KindPhysicalRange, KindMagicalSingle, KindMagicalRange,
	KindSupport, KindInterference, KindRecovery,
}

func parseKind(s string) (Kind, bool) {
	for _, k := range kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

func (k *Kind) UnmarshalText(b []byte) error {
	kind, ok := parseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown kind %q", b)
	}
	*k = kind
	return nil
}

// RawMemoria is a shape-checked catalog record whose skill texts have not
// been parsed yet.
type RawMemoria struct {
	ID        int
	Name      string
	Link      string
	Kind      Kind
	Element   parser.Element
	Status    [5][4]int
	Skill     parser.RawText
	Support   parser.RawText
	Legendary *parser.RawLegendary
}

type RawOrder struct {
	ID          int
	Name        string
	Description string
	PrepareTime int
	ActiveTime  int
}

// ShapeError reports the first record whose structure does not fit the
// catalog schema. Shape errors are fatal: no record is parsed.
type ShapeError struct {
	Family string // "memoria" or "order"
	Index  int    // -1 for document-level problems
	Reason string
	Raw    string
}

func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s catalog: %s", e.Family, e.Reason)
	}
	return fmt.Sprintf("%s catalog: record %d: %s\n%s", e.Family, e.Index, e.Reason, e.Raw)
}

type shapeReader struct {
	family string
	index  int
	rec    gjson.Result
}

func (r *shapeReader) fail(format string, args ...any) error {
	return &ShapeError{Family: r.family, Index: r.index, Reason: fmt.Sprintf(format, args...), Raw: r.rec.Raw}
}

func (r *shapeReader) number(v gjson.Result, field string) (int, error) {
	if v.Type != gjson.Number {
		return 0, r.fail("%s: want number, got %s", field, describe(v))
	}
	return int(v.Int()), nil
}

func (r *shapeReader) str(v gjson.Result, field string) (string, error) {
	if v.Type != gjson.String {
		return "", r.fail("%s: want string, got %s", field, describe(v))
	}
	return v.Str, nil
}

func (r *shapeReader) text(field string) (parser.RawText, error) {
	v := r.rec.Get(field)
	if !v.IsObject() {
		return parser.RawText{}, r.fail("%s: want object, got %s", field, describe(v))
	}
	name, err := r.str(v.Get("name"), field+".name")
	if err != nil {
		return parser.RawText{}, err
	}
	desc, err := r.str(v.Get("description"), field+".description")
	if err != nil {
		return parser.RawText{}, err
	}
	return parser.RawText{Name: name, Description: desc}, nil
}

func describe(v gjson.Result) string {
	if !v.Exists() {
		return "nothing"
	}
	switch {
	case v.IsArray():
		return "array"
	case v.IsObject():
		return "object"
	}
	return v.Type.String()
}

func documentArray(family string, data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &ShapeError{Family: family, Index: -1, Reason: "invalid JSON"}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return gjson.Result{}, &ShapeError{Family: family, Index: -1, Reason: "top level is not an array"}
	}
	return doc, nil
}

// decodeMemoria checks the shape of every memoria record and stops at the
// first mismatch.
func decodeMemoria(data []byte) ([]RawMemoria, error) {
	doc, err := documentArray("memoria", data)
	if err != nil {
		return nil, err
	}

	var out []RawMemoria
	seen := make(map[int]bool)
	i := 0
	doc.ForEach(func(_, v gjson.Result) bool {
		r := &shapeReader{family: "memoria", index: i, rec: v}
		i++
		var m RawMemoria
		if m, err = r.memoria(); err != nil {
			return false
		}
		if seen[m.ID] {
			err = r.fail("duplicate id %d", m.ID)
			return false
		}
		seen[m.ID] = true
		out = append(out, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *shapeReader) memoria() (RawMemoria, error) {
	var m RawMemoria
	var err error
	if !r.rec.IsObject() {
		return m, r.fail("want object, got %s", describe(r.rec))
	}
	if m.ID, err = r.number(r.rec.Get("id"), "id"); err != nil {
		return m, err
	}
	if m.Name, err = r.str(r.rec.Get("name"), "name"); err != nil {
		return m, err
	}
	if m.Link, err = r.str(r.rec.Get("link"), "link"); err != nil {
		return m, err
	}

	kind, err := r.str(r.rec.Get("kind"), "kind")
	if err != nil {
		return m, err
	}
	var ok bool
	if m.Kind, ok = parseKind(kind); !ok {
		return m, r.fail("kind: unknown value %q", kind)
	}

	element, err := r.str(r.rec.Get("element"), "element")
	if err != nil {
		return m, err
	}
	if m.Element, ok = parser.LookupElement(element); !ok {
		return m, r.fail("element: unknown value %q", element)
	}

	if err = r.status(&m.Status); err != nil {
		return m, err
	}
	if m.Skill, err = r.text("skill"); err != nil {
		return m, err
	}
	if m.Support, err = r.text("support"); err != nil {
		return m, err
	}
	if l := r.rec.Get("legendarySkill"); l.Exists() && l.Type != gjson.Null {
		if m.Legendary, err = r.legendary(l); err != nil {
			return m, err
		}
	}
	return m, nil
}

// status reads the 5 growth stages of [ATK, Sp.ATK, DEF, Sp.DEF].
func (r *shapeReader) status(dst *[5][4]int) error {
	rows := r.rec.Get("status")
	if !rows.IsArray() || len(rows.Array()) != len(dst) {
		return r.fail("status: want array of %d rows", len(dst))
	}
	for i, row := range rows.Array() {
		cols := row.Array()
		if !row.IsArray() || len(cols) != len(dst[i]) {
			return r.fail("status[%d]: want array of %d numbers", i, len(dst[i]))
		}
		for j, c := range cols {
			n, err := r.number(c, fmt.Sprintf("status[%d][%d]", i, j))
			if err != nil {
				return err
			}
			dst[i][j] = n
		}
	}
	return nil
}

func (r *shapeReader) legendary(v gjson.Result) (*parser.RawLegendary, error) {
	if !v.IsObject() {
		return nil, r.fail("legendarySkill: want object, got %s", describe(v))
	}
	name, err := r.str(v.Get("name"), "legendarySkill.name")
	if err != nil {
		return nil, err
	}
	l := &parser.RawLegendary{Name: name}
	descs := v.Get("description")
	if !descs.IsArray() || len(descs.Array()) != len(l.Description) {
		return nil, r.fail("legendarySkill.description: want array of %d strings", len(l.Description))
	}
	for i, d := range descs.Array() {
		if l.Description[i], err = r.str(d, fmt.Sprintf("legendarySkill.description[%d]", i)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func decodeOrders(data []byte) ([]RawOrder, error) {
	doc, err := documentArray("order", data)
	if err != nil {
		return nil, err
	}

	var out []RawOrder
	i := 0
	doc.ForEach(func(_, v gjson.Result) bool {
		r := &shapeReader{family: "order", index: i, rec: v}
		i++
		var o RawOrder
		if o, err = r.order(); err != nil {
			return false
		}
		out = append(out, o)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *shapeReader) order() (RawOrder, error) {
	var o RawOrder
	var err error
	if !r.rec.IsObject() {
		return o, r.fail("want object, got %s", describe(r.rec))
	}
	if o.ID, err = r.number(r.rec.Get("id"), "id"); err != nil {
		return o, err
	}
	if o.Name, err = r.str(r.rec.Get("name"), "name"); err != nil {
		return o, err
	}
	if o.Description, err = r.str(r.rec.Get("description"), "description"); err != nil {
		return o, err
	}
	if o.PrepareTime, err = r.number(r.rec.Get("prepareTime"), "prepareTime"); err != nil {
		return o, err
	}
	if o.ActiveTime, err = r.number(r.rec.Get("activeTime"), "activeTime"); err != nil {
		return o, err
	}
	return o, nil
}
