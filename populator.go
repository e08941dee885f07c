package xmladiscover

import (
	"context"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
)

// Environment carries the static lists served by kinds that need no connection.
type Environment struct {
	Server     ServerInfo
	Functions  []FunctionInfo
	Keywords   []string
	Properties []PropertyDefinition
}

// DefaultEnvironment returns the built-in server description, function
// table, keywords and property definitions.
func DefaultEnvironment() Environment {
	return Environment{
		Server:     DefaultServerInfo(),
		Functions:  DefaultFunctions(),
		Keywords:   DefaultKeywords(),
		Properties: DefaultPropertyDefinitions(),
	}
}

// Populator produces the rows of one kind for one request.
type Populator struct {
	kind          *RowsetKind
	req           *Request
	env           Environment
	deep          bool
	emitInvisible bool
	restrictions  *restrictionSet

	conn olap.Connection
	rows []*Row
}

// NewPopulator binds the kind to a request. The Deep request property decides
// whether child rowsets are embedded.
func (k *RowsetKind) NewPopulator(req *Request, env Environment) *Populator {
	return k.newPopulator(req, env, req.Properties.Bool(PropertyDeep))
}

func (k *RowsetKind) newPopulator(req *Request, env Environment, deep bool) *Populator {
	return &Populator{
		kind:          k,
		req:           req,
		env:           env,
		deep:          deep,
		emitInvisible: req.Properties.Bool(PropertyEmitInvisibleMembers),
		restrictions:  compileRestrictions(k, req.Restrictions),
	}
}

// Populate runs the kind's strategy and returns its rows sorted by the kind's
// sort columns. On failure no rows are returned.
func (p *Populator) Populate(ctx context.Context, conn olap.Connection) ([]*Row, error) {
	if p.kind.needsConnection && conn == nil {
		return nil, newMetadataAccessError(p.kind.name, ErrNoConnection)
	}
	p.conn = conn
	p.rows = nil

	if err := p.kind.populate(ctx, p); err != nil {
		p.rows = nil
		LogErrorf("populating %s failed: %v", p.kind.name, err)
		return nil, newMetadataAccessError(p.kind.name, err)
	}

	rows := p.rows
	p.rows = nil
	sortRows(p.kind, rows)
	LogDebugf("populated %s with %d rows", p.kind.name, len(rows))
	return rows, nil
}

func (p *Populator) newRow() *Row {
	return newRow(p.kind)
}

// emit keeps the row if it satisfies every restriction.
func (p *Populator) emit(row *Row) {
	if p.restrictions.accept(row) {
		p.rows = append(p.rows, row)
	}
}

// emitGlobal keeps a row that does not belong to any catalog or cube; its
// null identity columns are not held against it.
func (p *Populator) emitGlobal(row *Row) {
	if p.restrictions.acceptPresent(row) {
		p.rows = append(p.rows, row)
	}
}

// match is the early-pruning test for a candidate value of a column.
func (p *Populator) match(column string, v interface{}) bool {
	return p.restrictions.test(column, v)
}

func (p *Populator) restricted(column string) bool {
	return p.restrictions.values.Has(column)
}

func (p *Populator) restrictionValues(column string) []string {
	return p.restrictions.values[column]
}

// visible applies the EmitInvisibleMembers request property.
func (p *Populator) visible(v bool) bool {
	return v || p.emitInvisible
}

func (p *Populator) accessible(e olap.Element) bool {
	return p.conn.CanAccess(e)
}

// nested populates a child kind scoped to the parent row's identity, or
// returns nil when embedding is off.
func (p *Populator) nested(ctx context.Context, kindName string, pinned map[string]string) (*Rowset, error) {
	if !p.deep {
		return nil, nil
	}
	kind, err := p.kind.registry.Lookup(kindName)
	if err != nil {
		return nil, err
	}
	child := kind.newPopulator(p.req.derive(kindName, pinned), p.env, p.deep)
	rows, err := child.Populate(ctx, p.conn)
	if err != nil {
		return nil, err
	}
	return &Rowset{Kind: kind, Rows: rows}, nil
}

// forEachCatalog visits the catalogs passing the restriction on column,
// making each one current before fn runs.
func (p *Populator) forEachCatalog(column string, fn func(olap.Catalog) error) error {
	catalogs, err := p.conn.Catalogs()
	if err != nil {
		return errors.Wrap(err, "listing catalogs")
	}
	scope, scoped := p.req.Properties.Get(PropertyCatalog)
	for _, catalog := range catalogs {
		if !p.match(column, catalog.Name()) {
			continue
		}
		if scoped && scope != "" && scope != catalog.Name() {
			continue
		}
		if err := p.conn.SetCatalog(catalog.Name()); err != nil {
			return errors.Wrapf(err, "switching to catalog %s", catalog.Name())
		}
		if err := fn(catalog); err != nil {
			return err
		}
	}
	return nil
}

func (p *Populator) forEachSchema(catalog olap.Catalog, column string, fn func(olap.Schema) error) error {
	schemas, err := catalog.Schemas()
	if err != nil {
		return errors.Wrapf(err, "listing schemas of catalog %s", catalog.Name())
	}
	for _, schema := range schemas {
		if !p.match(column, schema.Name()) {
			continue
		}
		if err := fn(schema); err != nil {
			return err
		}
	}
	return nil
}

// cubeScope names the catalog, schema and cube columns of a kind.
type cubeScope struct {
	catalog, schema, cube string
}

var standardCubeScope = cubeScope{catalog: colCatalogName, schema: colSchemaName, cube: colCubeName}

// forEachCube visits every accessible, visible cube passing the catalog,
// schema and cube restrictions.
func (p *Populator) forEachCube(scope cubeScope, fn func(olap.Catalog, olap.Schema, olap.Cube) error) error {
	return p.forEachCatalog(scope.catalog, func(catalog olap.Catalog) error {
		return p.forEachSchema(catalog, scope.schema, func(schema olap.Schema) error {
			cubes, err := schema.Cubes()
			if err != nil {
				return errors.Wrapf(err, "listing cubes of schema %s", schema.Name())
			}
			for _, cube := range cubes {
				if !p.match(scope.cube, cube.Name()) || !p.accessible(cube) || !p.visible(cube.Visible()) {
					continue
				}
				if err := fn(catalog, schema, cube); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// forEachDimension visits the accessible dimensions of cube that pass the
// unique-name restriction.
func (p *Populator) forEachDimension(cube olap.Cube, fn func(int, olap.Dimension) error) error {
	dimensions, err := cube.Dimensions()
	if err != nil {
		return errors.Wrapf(err, "listing dimensions of cube %s", cube.Name())
	}
	for i, dimension := range dimensions {
		if !p.match(colDimensionUniqueName, dimension.UniqueName()) || !p.accessible(dimension) {
			continue
		}
		if err := fn(i, dimension); err != nil {
			return err
		}
	}
	return nil
}
