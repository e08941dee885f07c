package xmladiscover

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
)

const noCatalogDescription = "No description available"

// nullableTime maps the zero time to a null cell.
func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

func descriptionOr(description, fallback string) string {
	if description != "" {
		return description
	}
	return fallback
}

func populateCatalogs(ctx context.Context, p *Populator) error {
	catalogs, err := p.conn.Catalogs()
	if err != nil {
		return errors.Wrap(err, "listing catalogs")
	}
	for _, catalog := range catalogs {
		if !p.match(colCatalogName, catalog.Name()) {
			continue
		}
		if err := p.conn.SetCatalog(catalog.Name()); err != nil {
			return errors.Wrapf(err, "switching to catalog %s", catalog.Name())
		}
		schemas, err := catalog.Schemas()
		if err != nil {
			return errors.Wrapf(err, "listing schemas of catalog %s", catalog.Name())
		}
		var modified time.Time
		for _, schema := range schemas {
			if schema.LoadTime().After(modified) {
				modified = schema.LoadTime()
			}
		}

		row := p.newRow()
		row.Set(colCatalogName, catalog.Name())
		row.Set(colDescription, descriptionOr(catalog.Description(), noCatalogDescription))
		row.Set("ROLES", strings.Join(catalog.RoleNames(), ","))
		row.Set(colDateModified, nullableTime(modified))
		p.emit(row)
	}
	return nil
}

// columnsBuilder threads the ordinal counter of DBSCHEMA_COLUMNS rows. One
// builder serves the whole traversal, so ordinals keep increasing from one
// cube to the next.
type columnsBuilder struct {
	p       *Populator
	catalog olap.Catalog
	schema  olap.Schema
	cube    olap.Cube
	ordinal int
}

// add numbers the column and emits it if it passes the restrictions. The
// counter advances whether or not the row is kept.
func (b *columnsBuilder) add(name, olapType string, dataType int, fill func(*Row)) {
	row := b.p.newRow()
	row.Set(colTableCatalog, b.catalog.Name())
	row.Set(colTableSchema, b.schema.Name())
	row.Set(colTableName, b.cube.Name())
	row.Set("COLUMN_NAME", name)
	row.Set("ORDINAL_POSITION", b.ordinal)
	row.Set("COLUMN_FLAGS", 0)
	row.Set("IS_NULLABLE", false)
	row.Set(colDataType, dataType)
	row.Set("COLUMN_OLAP_TYPE", olapType)
	if fill != nil {
		fill(row)
	}
	b.ordinal++
	b.p.emit(row)
}

func stringColumnSizes(row *Row) {
	row.Set(colCharMaxLength, 0)
	row.Set(colCharOctetLength, 0)
}

func populateColumns(ctx context.Context, p *Populator) error {
	scope := cubeScope{catalog: colTableCatalog, schema: colTableSchema, cube: colTableName}
	b := &columnsBuilder{p: p, ordinal: 1}
	return p.forEachCube(scope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		b.catalog, b.schema, b.cube = catalog, schema, cube

		dimensions, err := cube.Dimensions()
		if err != nil {
			return errors.Wrapf(err, "listing dimensions of cube %s", cube.Name())
		}
		for _, dimension := range dimensions {
			if dimension.Type() == olap.DimensionMeasure || !p.accessible(dimension) ||
				!p.visible(dimension.Visible()) {
				continue
			}
			hierarchies, err := dimension.Hierarchies()
			if err != nil {
				return errors.Wrapf(err, "listing hierarchies of dimension %s", dimension.UniqueName())
			}
			for _, hierarchy := range hierarchies {
				if !p.accessible(hierarchy) || !p.visible(hierarchy.Visible()) {
					continue
				}
				if err := addHierarchyColumns(b, hierarchy); err != nil {
					return err
				}
			}
		}

		measures, err := cube.Measures()
		if err != nil {
			return errors.Wrapf(err, "listing measures of cube %s", cube.Name())
		}
		for _, measure := range measures {
			if !p.accessible(measure) || !p.visible(measure.Visible()) {
				continue
			}
			b.add("Measures:"+measure.Name(), "MEASURE", dbTypeR8, func(row *Row) {
				row.Set(colNumericPrecision, 16)
				row.Set(colNumericScale, 255)
			})
		}
		return nil
	})
}

func addHierarchyColumns(b *columnsBuilder, hierarchy olap.Hierarchy) error {
	name := hierarchy.Name()
	if hierarchy.HasAll() {
		b.add(name+":(All)!NAME", "ATTRIBUTE", dbTypeWStr, stringColumnSizes)
		b.add(name+":(All)!UNIQUE_NAME", "ATTRIBUTE", dbTypeWStr, stringColumnSizes)
	}

	levels, err := hierarchy.Levels()
	if err != nil {
		return errors.Wrapf(err, "listing levels of hierarchy %s", hierarchy.UniqueName())
	}
	for _, level := range levels {
		if level.Type().IsAll() || !b.p.accessible(level) || !b.p.visible(level.Visible()) {
			continue
		}
		prefix := name + ":" + level.Name() + "!"
		b.add(prefix+"NAME", "ATTRIBUTE", dbTypeWStr, stringColumnSizes)
		b.add(prefix+"UNIQUE_NAME", "ATTRIBUTE", dbTypeWStr, stringColumnSizes)
		for _, property := range level.Properties() {
			if !b.p.visible(property.Visible()) {
				continue
			}
			dataType := dbTypeOfProperty(property.DataType())
			b.add(prefix+property.Name(), "ATTRIBUTE", dataType, func(row *Row) {
				switch dataType {
				case dbTypeWStr:
					stringColumnSizes(row)
				case dbTypeBool:
					row.Set(colNumericPrecision, 255)
					row.Set(colNumericScale, 255)
				case dbTypeR8:
					row.Set(colNumericPrecision, 16)
					row.Set(colNumericScale, 255)
				}
			})
		}
	}
	return nil
}

func populateProviderTypes(ctx context.Context, p *Populator) error {
	for _, t := range providerTypes {
		if !p.match(colDataType, t.dataType) {
			continue
		}
		row := p.newRow()
		row.Set("TYPE_NAME", t.name)
		row.Set(colDataType, t.dataType)
		row.Set("COLUMN_SIZE", t.columnSize)
		row.Set("LITERAL_PREFIX", nullable(t.literalPrefix))
		row.Set("LITERAL_SUFFIX", nullable(t.literalSuffix))
		row.Set("IS_NULLABLE", true)
		row.Set("CASE_SENSITIVE", t.dataType == dbTypeWStr)
		row.Set("UNSIGNED_ATTRIBUTE", false)
		row.Set("FIXED_PREC_SCALE", false)
		row.Set("AUTO_UNIQUE_VALUE", false)
		row.Set("IS_LONG", false)
		row.Set("BEST_MATCH", true)
		row.Set("IS_FIXEDLENGTH", t.dataType != dbTypeWStr)
		p.emit(row)
	}
	return nil
}

func populateSchemata(ctx context.Context, p *Populator) error {
	return p.forEachCatalog(colCatalogName, func(catalog olap.Catalog) error {
		return p.forEachSchema(catalog, colSchemaName, func(schema olap.Schema) error {
			row := p.newRow()
			row.Set(colCatalogName, catalog.Name())
			row.Set(colSchemaName, schema.Name())
			p.emit(row)
			return nil
		})
	})
}

func populateTables(ctx context.Context, p *Populator) error {
	// Level tables are named "cube:hierarchy:level", so TABLE_NAME cannot prune cubes.
	scope := cubeScope{catalog: colTableCatalog, schema: colTableSchema}
	return p.forEachCube(scope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		if p.match(colTableType, "TABLE") {
			row := p.newRow()
			row.Set(colTableCatalog, catalog.Name())
			row.Set(colTableSchema, schema.Name())
			row.Set(colTableName, cube.Name())
			row.Set(colTableType, "TABLE")
			row.Set(colDescription, descriptionOr(cube.Description(), catalog.Name()+" - "+cube.Name()+" Cube"))
			row.Set(colDateModified, nullableTime(schema.LoadTime()))
			p.emit(row)
		}
		if !p.match(colTableType, "SYSTEM TABLE") {
			return nil
		}

		return p.forEachDimension(cube, func(_ int, dimension olap.Dimension) error {
			if dimension.Type() == olap.DimensionMeasure {
				return nil
			}
			hierarchies, err := dimension.Hierarchies()
			if err != nil {
				return errors.Wrapf(err, "listing hierarchies of dimension %s", dimension.UniqueName())
			}
			for _, hierarchy := range hierarchies {
				if strings.HasSuffix(hierarchy.Name(), "$Parent") || !p.accessible(hierarchy) ||
					!p.visible(hierarchy.Visible()) {
					continue
				}
				levels, err := hierarchy.Levels()
				if err != nil {
					return errors.Wrapf(err, "listing levels of hierarchy %s", hierarchy.UniqueName())
				}
				for _, level := range levels {
					if !p.accessible(level) || !p.visible(level.Visible()) {
						continue
					}
					fallback := fmt.Sprintf("%s - %s Cube - %s Hierarchy - %s Level",
						catalog.Name(), cube.Name(), hierarchy.Name(), level.Name())
					row := p.newRow()
					row.Set(colTableCatalog, catalog.Name())
					row.Set(colTableSchema, schema.Name())
					row.Set(colTableName, cube.Name()+":"+hierarchy.Name()+":"+level.Name())
					row.Set(colTableType, "SYSTEM TABLE")
					row.Set(colDescription, descriptionOr(level.Description(), fallback))
					row.Set(colDateModified, nullableTime(schema.LoadTime()))
					p.emit(row)
				}
			}
			return nil
		})
	})
}

func populateSourceTables(ctx context.Context, p *Populator) error {
	provider, ok := p.conn.(olap.SourceProvider)
	if !ok || provider.Source() == nil {
		LogDebugf("connection has no relational source, %s is empty", p.kind.name)
		return nil
	}
	src, err := provider.Source().AcquireSource(ctx)
	if err != nil {
		return errors.Wrap(err, "acquiring relational source")
	}
	defer src.Release()

	tables, err := src.Tables(ctx)
	if err != nil {
		return errors.Wrap(err, "listing relational tables")
	}
	for _, t := range tables {
		if !p.match(colTableName, t.Name) {
			continue
		}
		row := p.newRow()
		row.Set(colTableCatalog, nullable(t.Catalog))
		row.Set(colTableSchema, nullable(t.Schema))
		row.Set(colTableName, t.Name)
		row.Set(colTableType, t.Type)
		p.emit(row)
	}
	return nil
}

func populateTablesInfo(ctx context.Context, p *Populator) error {
	scope := cubeScope{catalog: colTableCatalog, schema: colTableSchema, cube: colTableName}
	return p.forEachCube(scope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		row := p.newRow()
		row.Set(colTableCatalog, catalog.Name())
		row.Set(colTableSchema, schema.Name())
		row.Set(colTableName, cube.Name())
		row.Set(colTableType, "TABLE")
		row.Set("BOOKMARKS", false)
		row.Set("CARDINALITY", uint64(0))
		row.Set(colDescription, descriptionOr(cube.Description(), catalog.Name()+" - "+cube.Name()+" Cube"))
		p.emit(row)
		return nil
	})
}
