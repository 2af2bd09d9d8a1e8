// Package catalog loads the memoria catalog, parses every skill text and
// exposes the result as a read-only table. Loading is all or nothing: a
// single unparseable record fails the whole catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"memoria-parser/internal/parser"
	"memoria-parser/internal/validated"
)

//go:embed data/memoria.json
var embeddedMemoria []byte

//go:embed data/order.json
var embeddedOrders []byte

type Skills struct {
	Skill     parser.Skill      `json:"skill" yaml:"skill"`
	Support   parser.Support    `json:"support" yaml:"support"`
	Legendary *parser.Legendary `json:"legendary,omitempty" yaml:"legendary,omitempty"`
}

// Memoria is a catalog record with every skill text parsed.
type Memoria struct {
	ID      int            `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Link    string         `json:"link" yaml:"link"`
	Kind    Kind           `json:"kind" yaml:"kind"`
	Element parser.Element `json:"element" yaml:"element"`
	// Status holds [ATK, Sp.ATK, DEF, Sp.DEF] per growth stage.
	Status [5][4]int `json:"status" yaml:"status"`
	Skills Skills    `json:"skills" yaml:"skills"`
}

// Order is a catalog order. Its description is not parsed.
type Order struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	PrepareTime int    `json:"prepareTime" yaml:"prepareTime"`
	ActiveTime  int    `json:"activeTime" yaml:"activeTime"`
}

// Catalog is the immutable parsed catalog.
type Catalog struct {
	memoria []Memoria
	orders  []Order
	byID    map[int]int
}

// Memoria returns every record in source order. The slice and the effects
// it holds are shared with the catalog and must not be modified; appending
// to it does not affect the catalog.
func (c *Catalog) Memoria() []Memoria { return slices.Clip(c.memoria) }

// Orders returns every order in source order, shared like Memoria.
func (c *Catalog) Orders() []Order { return slices.Clip(c.orders) }

// Find returns the record with the given id.
func (c *Catalog) Find(id int) (Memoria, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Memoria{}, false
	}
	return c.memoria[i], true
}

// RecordFailure lists every parse error of one catalog record.
type RecordFailure struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	Errors validated.List `json:"errors"`
}

// ParseError is returned when one or more records fail to parse.
type ParseError struct {
	Failures []RecordFailure
}

func (e *ParseError) Error() string {
	var b strings.Builder
	n := 0
	for _, f := range e.Failures {
		n += len(f.Errors)
	}
	fmt.Fprintf(&b, "%d memoria failed to parse (%d errors)", len(e.Failures), n)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n%s (id %d):\n%s", f.Name, f.ID, f.Errors.Format())
	}
	return b.String()
}

type options struct {
	logger *zap.Logger
}

type Option func(*options)

// WithLogger sets the logger used to report load progress and failures.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func parseMemoria(raw RawMemoria) validated.Result[Memoria] {
	legendary := validated.Ok[*parser.Legendary](nil)
	if raw.Legendary != nil {
		legendary = validated.Map(
			parser.ParseLegendary(raw.Legendary.Name, raw.Legendary.Description),
			func(l parser.Legendary) *parser.Legendary { return &l },
		)
	}
	r := validated.Zip3(
		parser.ParseSkill(raw.Skill.Name, raw.Skill.Description),
		parser.ParseSupport(raw.Support.Name, raw.Support.Description),
		legendary,
		func(s parser.Skill, sup parser.Support, l *parser.Legendary) Memoria {
			return Memoria{
				ID:      raw.ID,
				Name:    raw.Name,
				Link:    raw.Link,
				Kind:    raw.Kind,
				Element: raw.Element,
				Status:  raw.Status,
				Skills:  Skills{Skill: s, Support: sup, Legendary: l},
			}
		},
	)
	return validated.WithEntity(r, raw.Name)
}

// Load shape-checks both documents, then parses every memoria record. A
// shape problem is returned as *ShapeError; parse failures of any number of
// records are collected into one *ParseError.
func Load(memoria, orders []byte, opts ...Option) (*Catalog, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	raws, err := decodeMemoria(memoria)
	if err != nil {
		log.Error("memoria catalog has invalid shape", zap.Error(err))
		return nil, err
	}
	rawOrders, err := decodeOrders(orders)
	if err != nil {
		log.Error("order catalog has invalid shape", zap.Error(err))
		return nil, err
	}

	c := &Catalog{
		memoria: make([]Memoria, 0, len(raws)),
		orders:  make([]Order, 0, len(rawOrders)),
		byID:    make(map[int]int, len(raws)),
	}
	var failures []RecordFailure
	for _, raw := range raws {
		m, err := parseMemoria(raw).Get()
		if err != nil {
			errs := err.(validated.List)
			log.Debug("memoria failed to parse", zap.String("name", raw.Name), zap.Int("errors", len(errs)))
			failures = append(failures, RecordFailure{ID: raw.ID, Name: raw.Name, Errors: errs})
			continue
		}
		c.byID[m.ID] = len(c.memoria)
		c.memoria = append(c.memoria, m)
	}
	if len(failures) > 0 {
		log.Error("catalog failed to parse", zap.Int("records", len(failures)))
		return nil, &ParseError{Failures: failures}
	}

	for _, ro := range rawOrders {
		c.orders = append(c.orders, Order(ro))
	}
	log.Info("loaded catalog", zap.Int("memoria", len(c.memoria)), zap.Int("orders", len(c.orders)))
	return c, nil
}

// MustLoad is Load that panics on failure.
func MustLoad(memoria, orders []byte, opts ...Option) *Catalog {
	c, err := Load(memoria, orders, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFiles loads the catalog from disk. An empty path selects the
// embedded document for that family.
func LoadFiles(memoriaPath, orderPath string, opts ...Option) (*Catalog, error) {
	mem, err := readOr(memoriaPath, embeddedMemoria)
	if err != nil {
		return nil, err
	}
	ord, err := readOr(orderPath, embeddedOrders)
	if err != nil {
		return nil, err
	}
	return Load(mem, ord, opts...)
}

func readOr(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustLoad(embeddedMemoria, embeddedOrders)
})

// Default returns the embedded catalog, parsed on first use. It panics if
// the embedded data does not parse.
func Default() *Catalog { return defaultCatalog() }
