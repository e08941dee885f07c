package xmladiscover

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type populateFunc func(ctx context.Context, p *Populator) error

// kindDefinition is the declarative form of a RowsetKind before validation.
type kindDefinition struct {
	name            string
	guid            string
	description     string
	columns         []*Column
	sortBy          []string
	needsConnection bool
	populate        populateFunc
}

// RowsetKind is an immutable description of one discovery result shape.
type RowsetKind struct {
	name            string
	guid            uuid.UUID
	description     string
	columns         []*Column
	sortColumns     []*Column
	needsConnection bool
	populate        populateFunc
	registry        *Registry
}

func (k *RowsetKind) Name() string {
	return k.name
}

// SchemaGUID identifies the kind on the wire.
func (k *RowsetKind) SchemaGUID() uuid.UUID {
	return k.guid
}

func (k *RowsetKind) Description() string {
	return k.description
}

func (k *RowsetKind) NeedsConnection() bool {
	return k.needsConnection
}

// Columns returns the declared columns in wire order.
func (k *RowsetKind) Columns() []*Column {
	return append([]*Column(nil), k.columns...)
}

// SortColumns returns the columns rows are ordered by, most significant first.
func (k *RowsetKind) SortColumns() []*Column {
	return append([]*Column(nil), k.sortColumns...)
}

// Column finds a column by exact name, or nil.
func (k *RowsetKind) Column(name string) *Column {
	if i := k.columnIndex(name); i >= 0 {
		return k.columns[i]
	}
	return nil
}

func (k *RowsetKind) columnIndex(name string) int {
	for i, c := range k.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// RestrictionColumns returns the restrictable columns ordered by RestrictionOrder.
func (k *RowsetKind) RestrictionColumns() []*Column {
	var cols []*Column
	for _, c := range k.columns {
		if c.Restrictable {
			cols = append(cols, c)
		}
	}
	sort.SliceStable(cols, func(i, j int) bool {
		return cols[i].RestrictionOrder < cols[j].RestrictionOrder
	})
	return cols
}

// Registry holds every rowset kind and the enumerations their columns use.
type Registry struct {
	kinds  []*RowsetKind
	byName map[string]*RowsetKind
	enums  []*Enumeration
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultRegistry returns the process-wide registry of built-in kinds.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// NewRegistry builds and validates a fresh registry of the built-in kinds.
func NewRegistry() (*Registry, error) {
	var defs []kindDefinition
	defs = append(defs, discoverKinds()...)
	defs = append(defs, dbschemaKinds()...)
	defs = append(defs, mdschemaKinds()...)

	r := &Registry{byName: make(map[string]*RowsetKind, len(defs))}
	enumsByName := make(map[string]*Enumeration)
	for _, def := range defs {
		kind, err := newRowsetKind(def)
		if err != nil {
			return nil, err
		}
		if _, ok := r.byName[kind.name]; ok {
			return nil, errors.Errorf("duplicate rowset kind found: %s", kind.name)
		}
		kind.registry = r
		r.byName[kind.name] = kind
		r.kinds = append(r.kinds, kind)

		for _, c := range kind.columns {
			if c.Enumeration == nil {
				continue
			}
			if seen, ok := enumsByName[c.Enumeration.Name]; ok {
				if seen != c.Enumeration {
					return nil, errors.Errorf("enumeration name %s bound to two different enumerations", seen.Name)
				}
				continue
			}
			enumsByName[c.Enumeration.Name] = c.Enumeration
			r.enums = append(r.enums, c.Enumeration)
		}
	}
	sort.Slice(r.kinds, func(i, j int) bool { return r.kinds[i].name < r.kinds[j].name })
	sort.Slice(r.enums, func(i, j int) bool { return r.enums[i].Name < r.enums[j].Name })
	LogDebugf("registry built with %d rowset kinds and %d enumerations", len(r.kinds), len(r.enums))
	return r, nil
}

// Lookup finds a kind by exact name.
func (r *Registry) Lookup(name string) (*RowsetKind, error) {
	kind, ok := r.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRowsetKind, "request type %q", name)
	}
	return kind, nil
}

// Kinds returns every kind sorted by name.
func (r *Registry) Kinds() []*RowsetKind {
	return append([]*RowsetKind(nil), r.kinds...)
}

// Enumerations returns every enumeration bound to a column, sorted by name.
func (r *Registry) Enumerations() []*Enumeration {
	return append([]*Enumeration(nil), r.enums...)
}

var rowsetNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

func newRowsetKind(def kindDefinition) (*RowsetKind, error) {
	if def.name == "" {
		return nil, errors.New("rowset kind must have a name")
	}
	if len(def.columns) == 0 {
		return nil, errors.Errorf("at least one column should be defined for rowset kind: %s", def.name)
	}
	if def.populate == nil {
		return nil, errors.Errorf("missing population strategy for rowset kind: %s", def.name)
	}

	kind := &RowsetKind{
		name:            def.name,
		description:     def.description,
		columns:         def.columns,
		needsConnection: def.needsConnection,
		populate:        def.populate,
	}
	if def.guid != "" {
		guid, err := uuid.Parse(def.guid)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid schema guid for rowset kind: %s", def.name)
		}
		kind.guid = guid
	} else {
		kind.guid = uuid.NewSHA1(rowsetNamespace, []byte(def.name))
	}

	seen := make(map[string]bool, len(def.columns))
	for i, c := range def.columns {
		if seen[c.Name] {
			return nil, errors.Errorf("duplicate column %s found in rowset kind: %s", c.Name, def.name)
		}
		seen[c.Name] = true

		if c.Type.IsEnum() != (c.Enumeration != nil) {
			return nil, errors.Errorf("column %s.%s of type %s must be bound to an enumeration iff its type is enumerated", def.name, c.Name, c.Type)
		}
		if c.match != matchEquals && !c.Restrictable {
			return nil, errors.Errorf("column %s.%s has a match mode but is not restrictable", def.name, c.Name)
		}
		if !c.orderSet {
			c.RestrictionOrder = i
		}
	}

	for _, name := range def.sortBy {
		idx := kind.columnIndex(name)
		if idx < 0 {
			return nil, errors.Errorf("sort column %s not declared in rowset kind: %s", name, def.name)
		}
		kind.sortColumns = append(kind.sortColumns, kind.columns[idx])
	}
	return kind, nil
}
