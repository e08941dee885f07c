package xmladiscover

import (
	"context"
	"fmt"
	"strings"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
)

func populateNothing(ctx context.Context, p *Populator) error {
	return nil
}

func visibilityCode(visible bool) int {
	if visible {
		return visibilityVisible
	}
	return visibilityNotVisible
}

func cubePins(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) map[string]string {
	return map[string]string{
		colCatalogName: catalog.Name(),
		colSchemaName:  schema.Name(),
		colCubeName:    cube.Name(),
	}
}

// child names a ROW_SET column and the kind that fills it.
type child struct {
	column, kind string
}

// emitWithChildren keeps the row if it passes the restrictions, embedding the
// child rowsets first. Children of rejected rows are never populated.
func (p *Populator) emitWithChildren(ctx context.Context, row *Row, pinned map[string]string, children ...child) error {
	if !p.restrictions.accept(row) {
		return nil
	}
	for _, c := range children {
		rs, err := p.nested(ctx, c.kind, pinned)
		if err != nil {
			return errors.Wrapf(err, "embedding %s", c.kind)
		}
		row.Set(c.column, rs)
	}
	p.rows = append(p.rows, row)
	return nil
}

func setCubeKeys(row *Row, catalog olap.Catalog, schema olap.Schema, cube olap.Cube) {
	row.Set(colCatalogName, catalog.Name())
	row.Set(colSchemaName, schema.Name())
	row.Set(colCubeName, cube.Name())
}

func populateCubes(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		cubeType := "CUBE"
		if cube.Virtual() {
			cubeType = "VIRTUAL CUBE"
		}
		row := p.newRow()
		setCubeKeys(row, catalog, schema, cube)
		row.Set("CUBE_TYPE", cubeType)
		row.Set("LAST_SCHEMA_UPDATE", nullableTime(schema.LoadTime()))
		row.Set("LAST_DATA_UPDATE", nullableTime(schema.LoadTime()))
		row.Set("IS_DRILLTHROUGH_ENABLED", true)
		row.Set(colIsWriteEnabled, false)
		row.Set("IS_LINKABLE", false)
		row.Set("IS_SQL_ENABLED", false)
		row.Set("CUBE_CAPTION", cube.Caption())
		row.Set(colDescription, descriptionOr(cube.Description(),
			fmt.Sprintf("%s Schema - %s Cube", catalog.Name(), cube.Name())))
		row.Set(colCubeSource, cubeSourceCube)
		return p.emitWithChildren(ctx, row, cubePins(catalog, schema, cube),
			child{colDimensions, KindMDSchemaDimensions},
			child{colSets, KindMDSchemaSets},
			child{colMeasures, KindMDSchemaMeasures})
	})
}

// dimensionCardinality is one more than the sum of the leaf level
// cardinalities of the dimension's hierarchies.
func dimensionCardinality(dimension olap.Dimension) (int, error) {
	hierarchies, err := dimension.Hierarchies()
	if err != nil {
		return 0, errors.Wrapf(err, "listing hierarchies of dimension %s", dimension.UniqueName())
	}
	n := 0
	for _, hierarchy := range hierarchies {
		levels, err := hierarchy.Levels()
		if err != nil {
			return 0, errors.Wrapf(err, "listing levels of hierarchy %s", hierarchy.UniqueName())
		}
		if len(levels) > 0 {
			n += levels[len(levels)-1].Cardinality()
		}
	}
	return n + 1, nil
}

func populateDimensions(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		return p.forEachDimension(cube, func(ordinal int, dimension olap.Dimension) error {
			if !p.match(colDimensionName, dimension.Name()) || !p.visible(dimension.Visible()) {
				return nil
			}
			cardinality, err := dimensionCardinality(dimension)
			if err != nil {
				return err
			}
			row := p.newRow()
			setCubeKeys(row, catalog, schema, cube)
			row.Set(colDimensionName, dimension.Name())
			row.Set(colDimensionUniqueName, dimension.UniqueName())
			row.Set("DIMENSION_CAPTION", dimension.Caption())
			row.Set("DIMENSION_ORDINAL", ordinal)
			row.Set(colDimensionType, dimension.Type().Code())
			row.Set("DIMENSION_CARDINALITY", cardinality)
			row.Set("DEFAULT_HIERARCHY", dimension.UniqueName())
			row.Set(colDescription, descriptionOr(dimension.Description(),
				fmt.Sprintf("%s Cube - %s Dimension", cube.Name(), dimension.Name())))
			row.Set("IS_VIRTUAL", false)
			row.Set("IS_READWRITE", false)
			row.Set("DIMENSION_UNIQUE_SETTINGS", 0)
			row.Set(colDimensionIsVisible, dimension.Visible())
			row.Set(colCubeSource, cubeSourceCube)
			row.Set(colDimensionVisibility, visibilityCode(dimension.Visible()))

			pinned := cubePins(catalog, schema, cube)
			pinned[colDimensionUniqueName] = dimension.UniqueName()
			return p.emitWithChildren(ctx, row, pinned, child{colHierarchies, KindMDSchemaHierarchies})
		})
	})
}

func populateHierarchies(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		dimensions, err := cube.Dimensions()
		if err != nil {
			return errors.Wrapf(err, "listing dimensions of cube %s", cube.Name())
		}
		// Ordinals count every hierarchy of the cube, restricted out or not.
		ordinal := 0
		for _, dimension := range dimensions {
			hierarchies, err := dimension.Hierarchies()
			if err != nil {
				return errors.Wrapf(err, "listing hierarchies of dimension %s", dimension.UniqueName())
			}
			if !p.match(colDimensionUniqueName, dimension.UniqueName()) || !p.accessible(dimension) {
				ordinal += len(hierarchies)
				continue
			}
			for _, hierarchy := range hierarchies {
				current := ordinal
				ordinal++
				if !p.match(colHierarchyUniqueName, hierarchy.UniqueName()) || !p.accessible(hierarchy) ||
					!p.visible(hierarchy.Visible()) {
					continue
				}
				if err := emitHierarchy(ctx, p, catalog, schema, cube, hierarchy, current); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func emitHierarchy(ctx context.Context, p *Populator, catalog olap.Catalog, schema olap.Schema, cube olap.Cube,
	hierarchy olap.Hierarchy, ordinal int) error {
	dimension := hierarchy.Dimension()

	var defaultMember, allMember interface{}
	if m, err := hierarchy.DefaultMember(); err != nil {
		return errors.Wrapf(err, "resolving default member of %s", hierarchy.UniqueName())
	} else if m != nil {
		defaultMember = m.UniqueName()
	}
	if hierarchy.HasAll() {
		roots, err := hierarchy.RootMembers()
		if err != nil {
			return errors.Wrapf(err, "listing root members of %s", hierarchy.UniqueName())
		}
		if len(roots) > 0 {
			allMember = roots[0].UniqueName()
		}
	}

	row := p.newRow()
	setCubeKeys(row, catalog, schema, cube)
	row.Set(colDimensionUniqueName, dimension.UniqueName())
	row.Set(colHierarchyName, hierarchy.Name())
	row.Set(colHierarchyUniqueName, hierarchy.UniqueName())
	row.Set("HIERARCHY_CAPTION", hierarchy.Caption())
	row.Set(colDimensionType, dimension.Type().Code())
	row.Set("HIERARCHY_CARDINALITY", hierarchy.Cardinality())
	row.Set("DEFAULT_MEMBER", defaultMember)
	row.Set("ALL_MEMBER", allMember)
	row.Set(colDescription, descriptionOr(hierarchy.Description(),
		fmt.Sprintf("%s Cube - %s Hierarchy", cube.Name(), hierarchy.Name())))
	row.Set("STRUCTURE", int(hierarchy.Structure()))
	row.Set("IS_VIRTUAL", false)
	row.Set("IS_READWRITE", false)
	row.Set("DIMENSION_UNIQUE_SETTINGS", 1)
	row.Set(colDimensionIsVisible, dimension.Visible())
	row.Set("HIERARCHY_IS_VISIBLE", hierarchy.Visible())
	row.Set("HIERARCHY_ORDINAL", ordinal)
	row.Set("DIMENSION_IS_SHARED", true)
	row.Set("PARENT_CHILD", hierarchy.ParentChild())
	row.Set("HIERARCHY_DISPLAY_FOLDER", nullable(hierarchy.DisplayFolder()))
	row.Set(colCubeSource, cubeSourceCube)
	row.Set("HIERARCHY_VISIBILITY", visibilityCode(hierarchy.Visible()))

	pinned := cubePins(catalog, schema, cube)
	pinned[colDimensionUniqueName] = dimension.UniqueName()
	pinned[colHierarchyUniqueName] = hierarchy.UniqueName()
	return p.emitWithChildren(ctx, row, pinned, child{colLevels, KindMDSchemaLevels})
}

// forEachHierarchy visits the accessible, visible hierarchies of the cube's
// matching dimensions that pass the hierarchy unique-name restriction.
func (p *Populator) forEachHierarchy(cube olap.Cube, fn func(olap.Dimension, olap.Hierarchy) error) error {
	return p.forEachDimension(cube, func(_ int, dimension olap.Dimension) error {
		hierarchies, err := dimension.Hierarchies()
		if err != nil {
			return errors.Wrapf(err, "listing hierarchies of dimension %s", dimension.UniqueName())
		}
		for _, hierarchy := range hierarchies {
			if !p.match(colHierarchyUniqueName, hierarchy.UniqueName()) || !p.accessible(hierarchy) ||
				!p.visible(hierarchy.Visible()) {
				continue
			}
			if err := fn(dimension, hierarchy); err != nil {
				return err
			}
		}
		return nil
	})
}

func levelUniqueSettings(level olap.Level) int {
	settings := 0
	if level.Type().IsAll() {
		settings |= 2
	}
	if level.UniqueMembers() {
		settings |= 1
	}
	return settings
}

func populateLevels(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		return p.forEachHierarchy(cube, func(dimension olap.Dimension, hierarchy olap.Hierarchy) error {
			levels, err := hierarchy.Levels()
			if err != nil {
				return errors.Wrapf(err, "listing levels of hierarchy %s", hierarchy.UniqueName())
			}
			for _, level := range levels {
				if !p.match(colLevelUniqueName, level.UniqueName()) || !p.accessible(level) ||
					!p.visible(level.Visible()) {
					continue
				}
				row := p.newRow()
				setCubeKeys(row, catalog, schema, cube)
				row.Set(colDimensionUniqueName, dimension.UniqueName())
				row.Set(colHierarchyUniqueName, hierarchy.UniqueName())
				row.Set(colLevelName, level.Name())
				row.Set(colLevelUniqueName, level.UniqueName())
				row.Set("LEVEL_CAPTION", level.Caption())
				row.Set(colLevelNumber, level.Depth())
				row.Set("LEVEL_CARDINALITY", level.Cardinality())
				row.Set("LEVEL_TYPE", int(level.Type()))
				row.Set(colDescription, descriptionOr(level.Description(),
					fmt.Sprintf("%s Cube - %s Hierarchy - %s Level", cube.Name(), hierarchy.Name(), level.Name())))
				row.Set("CUSTOM_ROLLUP_SETTINGS", 0)
				row.Set("LEVEL_UNIQUE_SETTINGS", levelUniqueSettings(level))
				row.Set("LEVEL_IS_VISIBLE", level.Visible())
				row.Set("LEVEL_DBTYPE", dbTypeWStr)
				row.Set("LEVEL_KEY_CARDINALITY", 1)
				row.Set(colCubeSource, cubeSourceCube)
				row.Set("LEVEL_VISIBILITY", visibilityCode(level.Visible()))
				p.emit(row)
			}
			return nil
		})
	})
}

// leafLevels lists the unique names of the bottom level of every non-measure
// hierarchy of the cube.
func leafLevels(cube olap.Cube) ([]string, error) {
	dimensions, err := cube.Dimensions()
	if err != nil {
		return nil, errors.Wrapf(err, "listing dimensions of cube %s", cube.Name())
	}
	var names []string
	for _, dimension := range dimensions {
		if dimension.Type() == olap.DimensionMeasure {
			continue
		}
		hierarchies, err := dimension.Hierarchies()
		if err != nil {
			return nil, errors.Wrapf(err, "listing hierarchies of dimension %s", dimension.UniqueName())
		}
		for _, hierarchy := range hierarchies {
			levels, err := hierarchy.Levels()
			if err != nil {
				return nil, errors.Wrapf(err, "listing levels of hierarchy %s", hierarchy.UniqueName())
			}
			if len(levels) > 0 {
				names = append(names, levels[len(levels)-1].UniqueName())
			}
		}
	}
	return names, nil
}

func populateMeasures(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		measures, err := cube.Measures()
		if err != nil {
			return errors.Wrapf(err, "listing measures of cube %s", cube.Name())
		}
		levelsList, err := leafLevels(cube)
		if err != nil {
			return err
		}

		var stored, calculated []olap.Measure
		for _, m := range measures {
			if m.Calculated() {
				calculated = append(calculated, m)
			} else {
				stored = append(stored, m)
			}
		}
		for _, m := range append(stored, calculated...) {
			if !p.match("MEASURE_NAME", m.Name()) || !p.match("MEASURE_UNIQUE_NAME", m.UniqueName()) ||
				!p.accessible(m) || !p.visible(m.Visible()) {
				continue
			}
			aggregator := m.Aggregator()
			var levels interface{}
			if m.Calculated() {
				aggregator = olap.AggregatorCalculated
			} else {
				levels = strings.Join(levelsList, ",")
			}

			row := p.newRow()
			setCubeKeys(row, catalog, schema, cube)
			row.Set("MEASURE_NAME", m.Name())
			row.Set("MEASURE_UNIQUE_NAME", m.UniqueName())
			row.Set("MEASURE_CAPTION", m.Caption())
			row.Set("MEASURE_AGGREGATOR", int(aggregator))
			row.Set(colDataType, dbTypeOfMeasure(m.DataType()))
			row.Set(colDescription, descriptionOr(m.Description(),
				fmt.Sprintf("%s Cube - %s Member", cube.Name(), m.Name())))
			row.Set(colExpression, nullable(m.Expression()))
			row.Set("MEASURE_IS_VISIBLE", m.Visible())
			row.Set("LEVELS_LIST", levels)
			row.Set(colMeasuregroupName, cube.Name())
			row.Set("MEASURE_DISPLAY_FOLDER", nullable(m.DisplayFolder()))
			row.Set("DEFAULT_FORMAT_STRING", nullable(m.FormatString()))
			row.Set(colCubeSource, cubeSourceCube)
			row.Set("MEASURE_VISIBILITY", visibilityCode(m.Visible()))
			p.emit(row)
		}
		return nil
	})
}

// Each cube carries a single measure group named after it.
func populateMeasuregroups(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		row := p.newRow()
		setCubeKeys(row, catalog, schema, cube)
		row.Set(colMeasuregroupName, cube.Name())
		row.Set(colDescription, descriptionOr(cube.Description(), catalog.Name()+" - "+cube.Name()+" Cube"))
		row.Set(colIsWriteEnabled, false)
		row.Set("MEASUREGROUP_CAPTION", cube.Caption())
		p.emit(row)
		return nil
	})
}

func populateMeasuregroupDimensions(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		if !p.match(colMeasuregroupName, cube.Name()) {
			return nil
		}
		return p.forEachDimension(cube, func(_ int, dimension olap.Dimension) error {
			if dimension.Type() == olap.DimensionMeasure || !p.visible(dimension.Visible()) {
				return nil
			}
			hierarchies, err := dimension.Hierarchies()
			if err != nil {
				return errors.Wrapf(err, "listing hierarchies of dimension %s", dimension.UniqueName())
			}
			var granularity interface{}
			if len(hierarchies) > 0 {
				granularity = hierarchies[0].UniqueName()
			}
			row := p.newRow()
			setCubeKeys(row, catalog, schema, cube)
			row.Set(colMeasuregroupName, cube.Name())
			row.Set("MEASUREGROUP_CARDINALITY", "ONE")
			row.Set(colDimensionUniqueName, dimension.UniqueName())
			row.Set("DIMENSION_CARDINALITY", "MANY")
			row.Set(colDimensionIsVisible, dimension.Visible())
			row.Set("DIMENSION_IS_FACT_DIMENSION", false)
			row.Set("DIMENSION_GRANULARITY", granularity)
			row.Set(colDimensionVisibility, visibilityCode(dimension.Visible()))
			p.emit(row)
			return nil
		})
	})
}

func populateSets(ctx context.Context, p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		sets, err := cube.Sets()
		if err != nil {
			return errors.Wrapf(err, "listing sets of cube %s", cube.Name())
		}
		for _, set := range sets {
			if !p.match("SET_NAME", set.Name()) || !p.accessible(set) {
				continue
			}
			row := p.newRow()
			setCubeKeys(row, catalog, schema, cube)
			row.Set("SET_NAME", set.Name())
			row.Set("SCOPE", 1)
			row.Set(colDescription, nullable(set.Description()))
			row.Set(colExpression, nullable(set.Expression()))
			row.Set(colDimensions, strings.Join(set.Hierarchies(), ","))
			row.Set("SET_CAPTION", set.Caption())
			row.Set("SET_DISPLAY_FOLDER", nullable(set.DisplayFolder()))
			row.Set("SET_EVALUATION_CONTEXT", 1)
			row.Set(colCubeSource, cubeSourceCube)
			p.emit(row)
		}
		return nil
	})
}

func populateFunctions(ctx context.Context, p *Populator) error {
	for _, fn := range p.env.Functions {
		if !fn.Syntax.listed() || !p.match("FUNCTION_NAME", fn.Name) {
			continue
		}
		for _, signature := range fn.Signatures {
			params := "(none)"
			if len(signature.Params) > 0 {
				names := make([]string, len(signature.Params))
				for i, c := range signature.Params {
					names[i] = c.String()
				}
				params = strings.Join(names, ", ")
			}
			row := p.newRow()
			row.Set("FUNCTION_NAME", fn.Name)
			row.Set(colDescription, nullable(fn.Description))
			row.Set("PARAMETER_LIST", params)
			row.Set("RETURN_TYPE", int(signature.Return))
			row.Set("ORIGIN", 1)
			row.Set("INTERFACE_NAME", fn.Interface)
			row.Set("LIBRARY_NAME", nil)
			row.Set("CAPTION", fn.Name)
			p.emit(row)
		}
	}
	return nil
}
