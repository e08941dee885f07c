package xmladiscover

import (
	"context"
	"fmt"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
)

// memberEmitter writes the MDSCHEMA_MEMBERS rows of one cube, skipping members
// it has already written.
type memberEmitter struct {
	p       *Populator
	catalog olap.Catalog
	schema  olap.Schema
	cube    olap.Cube
	seen    map[string]bool
}

func (e *memberEmitter) emit(m olap.Member) {
	if e.seen[m.UniqueName()] {
		return
	}
	e.seen[m.UniqueName()] = true

	p := e.p
	if !p.accessible(m) || !p.visible(m.Visible()) {
		return
	}
	level := m.Level()
	hierarchy := level.Hierarchy()
	if !p.accessible(level) || !p.accessible(hierarchy) || !p.accessible(hierarchy.Dimension()) {
		return
	}

	parentLevel, parentCount := 0, 0
	var parentName interface{}
	if parent := m.Parent(); parent != nil {
		parentLevel = parent.Depth()
		parentName = parent.UniqueName()
		parentCount = 1
	}
	var expression interface{}
	if measure, ok := m.(olap.Measure); ok {
		expression = nullable(measure.Expression())
	}

	row := p.newRow()
	setCubeKeys(row, e.catalog, e.schema, e.cube)
	row.Set(colDimensionUniqueName, hierarchy.Dimension().UniqueName())
	row.Set(colHierarchyUniqueName, hierarchy.UniqueName())
	row.Set(colLevelUniqueName, level.UniqueName())
	row.Set(colLevelNumber, level.Depth())
	row.Set(colMemberOrdinal, m.Ordinal())
	row.Set(colMemberName, m.Name())
	row.Set(colMemberUniqueName, m.UniqueName())
	row.Set("MEMBER_TYPE", int(m.Type()))
	row.Set("MEMBER_CAPTION", m.Caption())
	row.Set("CHILDREN_CARDINALITY", m.ChildCount())
	row.Set("PARENT_LEVEL", parentLevel)
	row.Set("PARENT_UNIQUE_NAME", parentName)
	row.Set("PARENT_COUNT", parentCount)
	row.Set("DEPTH", m.Depth())
	row.Set(colDescription, nullable(m.Description()))
	row.Set(colExpression, expression)
	row.Set(colCubeSource, cubeSourceCube)
	p.emit(row)
}

func (e *memberEmitter) emitAll(members []olap.Member) {
	for _, m := range members {
		e.emit(m)
	}
}

func populateMembers(ctx context.Context, p *Populator) error {
	if p.restricted(colTreeOp) && !p.restricted(colMemberUniqueName) {
		LogDebugf("%s without %s is ignored", colTreeOp, colMemberUniqueName)
	}
	if p.restricted(colMemberUniqueName) && p.restricted(colTreeOp) &&
		(p.restricted(colLevelUniqueName) || p.restricted(colLevelNumber)) {
		// A tree operation relative to a member cannot be combined with a level.
		LogDebugf("%s combined with a level restriction matches nothing", colTreeOp)
		return nil
	}

	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		e := &memberEmitter{p: p, catalog: catalog, schema: schema, cube: cube, seen: map[string]bool{}}
		switch {
		case p.restricted(colMemberUniqueName):
			return populateMembersByName(e)
		case p.restricted(colLevelUniqueName):
			return populateMembersByLevel(e)
		}
		return p.forEachHierarchy(cube, func(_ olap.Dimension, hierarchy olap.Hierarchy) error {
			levels, err := hierarchy.Levels()
			if err != nil {
				return errors.Wrapf(err, "listing levels of hierarchy %s", hierarchy.UniqueName())
			}
			for _, level := range levels {
				if !p.match(colLevelNumber, level.Depth()) || !p.accessible(level) {
					continue
				}
				members, err := level.Members()
				if err != nil {
					return errors.Wrapf(err, "listing members of level %s", level.UniqueName())
				}
				e.emitAll(members)
			}
			return nil
		})
	})
}

func populateMembersByLevel(e *memberEmitter) error {
	for _, name := range e.p.restrictionValues(colLevelUniqueName) {
		level, err := e.cube.LookupLevel(name)
		if err != nil {
			return errors.Wrapf(err, "looking up level %s", name)
		}
		if level == nil || !e.p.accessible(level) {
			continue
		}
		members, err := level.Members()
		if err != nil {
			return errors.Wrapf(err, "listing members of level %s", level.UniqueName())
		}
		e.emitAll(members)
	}
	return nil
}

func populateMembersByName(e *memberEmitter) error {
	p := e.p
	treeOp := treeOpSelf
	if p.restricted(colTreeOp) {
		mask, ok := enumTreeOp.Mask(p.restrictionValues(colTreeOp))
		if !ok {
			LogDebugf("invalid %s restriction %v", colTreeOp, p.restrictionValues(colTreeOp))
			return nil
		}
		treeOp = mask
	}
	for _, name := range p.restrictionValues(colMemberUniqueName) {
		member, err := e.cube.LookupMember(name)
		if err != nil {
			return errors.Wrapf(err, "looking up member %s", name)
		}
		if member == nil {
			LogDebugf("member %s not found in cube %s", name, e.cube.Name())
			continue
		}
		if err := expandTreeOp(e, member, treeOp); err != nil {
			return err
		}
	}
	return nil
}

// expandTreeOp emits the members related to m by the operations in treeOp.
// DESCENDANTS subsumes CHILDREN and ANCESTORS subsumes PARENT.
func expandTreeOp(e *memberEmitter, m olap.Member, treeOp int) error {
	if treeOp&treeOpAncestors != 0 {
		for a := m.Parent(); a != nil; a = a.Parent() {
			e.emit(a)
		}
	} else if treeOp&treeOpParent != 0 {
		if parent := m.Parent(); parent != nil {
			e.emit(parent)
		}
	}

	if treeOp&treeOpSiblings != 0 {
		siblings, err := siblingsOf(m)
		if err != nil {
			return err
		}
		for _, s := range siblings {
			if s.UniqueName() != m.UniqueName() {
				e.emit(s)
			}
		}
	}

	if treeOp&treeOpSelf != 0 {
		e.emit(m)
	}

	if treeOp&treeOpDescendants != 0 {
		return emitDescendants(e, m)
	}
	if treeOp&treeOpChildren != 0 {
		children, err := m.Children()
		if err != nil {
			return errors.Wrapf(err, "listing children of %s", m.UniqueName())
		}
		e.emitAll(children)
	}
	return nil
}

func siblingsOf(m olap.Member) ([]olap.Member, error) {
	if parent := m.Parent(); parent != nil {
		children, err := parent.Children()
		return children, errors.Wrapf(err, "listing children of %s", parent.UniqueName())
	}
	members, err := m.Level().Members()
	return members, errors.Wrapf(err, "listing members of level %s", m.Level().UniqueName())
}

func emitDescendants(e *memberEmitter, m olap.Member) error {
	children, err := m.Children()
	if err != nil {
		return errors.Wrapf(err, "listing children of %s", m.UniqueName())
	}
	for _, c := range children {
		e.emit(c)
		if err := emitDescendants(e, c); err != nil {
			return err
		}
	}
	return nil
}

type cellProperty struct {
	name     string
	dataType int
}

var cellProperties = []cellProperty{
	{"ACTION_TYPE", dbTypeI4},
	{"BACK_COLOR", dbTypeUI4},
	{"CELL_EVALUATION_LIST", dbTypeWStr},
	{"CELL_ORDINAL", dbTypeUI4},
	{"DATATYPE", dbTypeUI2},
	{"FONT_FLAGS", dbTypeI4},
	{"FONT_NAME", dbTypeWStr},
	{"FONT_SIZE", dbTypeUI2},
	{"FORE_COLOR", dbTypeUI4},
	{"FORMAT_STRING", dbTypeWStr},
	{"FORMATTED_VALUE", dbTypeWStr},
	{"LANGUAGE", dbTypeUI4},
	{"NON_EMPTY_BEHAVIOR", dbTypeWStr},
	{"SOLVE_ORDER", dbTypeI4},
	{"UPDATEABLE", dbTypeUI4},
	{"VALUE", dbTypeVar},
}

func populateMDProperties(ctx context.Context, p *Populator) error {
	if p.match(colPropertyType, propertyTypeMember) {
		if err := populateMemberProperties(p); err != nil {
			return err
		}
	}
	// Cell properties belong to no member.
	if p.match(colPropertyType, propertyTypeCell) && !p.restricted(colMemberUniqueName) {
		for _, cp := range cellProperties {
			if !p.match("PROPERTY_NAME", cp.name) {
				continue
			}
			row := p.newRow()
			row.Set(colPropertyType, propertyTypeCell)
			row.Set("PROPERTY_NAME", cp.name)
			row.Set("PROPERTY_CAPTION", cp.name)
			row.Set(colDataType, cp.dataType)
			row.Set("PROPERTY_IS_VISIBLE", true)
			row.Set("PROPERTY_VISIBILITY", visibilityVisible)
			p.emitGlobal(row)
		}
	}
	return nil
}

func populateMemberProperties(p *Populator) error {
	return p.forEachCube(standardCubeScope, func(catalog olap.Catalog, schema olap.Schema, cube olap.Cube) error {
		if p.restricted(colMemberUniqueName) {
			seen := map[string]bool{}
			for _, name := range p.restrictionValues(colMemberUniqueName) {
				member, err := cube.LookupMember(name)
				if err != nil {
					return errors.Wrapf(err, "looking up member %s", name)
				}
				if member == nil || !p.accessible(member) {
					continue
				}
				level := member.Level()
				if seen[level.UniqueName()] {
					continue
				}
				seen[level.UniqueName()] = true
				emitLevelProperties(p, catalog, schema, cube, level)
			}
			return nil
		}
		return p.forEachHierarchy(cube, func(_ olap.Dimension, hierarchy olap.Hierarchy) error {
			levels, err := hierarchy.Levels()
			if err != nil {
				return errors.Wrapf(err, "listing levels of hierarchy %s", hierarchy.UniqueName())
			}
			for _, level := range levels {
				if !p.match(colLevelUniqueName, level.UniqueName()) || !p.accessible(level) {
					continue
				}
				emitLevelProperties(p, catalog, schema, cube, level)
			}
			return nil
		})
	})
}

func emitLevelProperties(p *Populator, catalog olap.Catalog, schema olap.Schema, cube olap.Cube, level olap.Level) {
	hierarchy := level.Hierarchy()
	for _, property := range level.Properties() {
		if !p.match("PROPERTY_NAME", property.Name()) || !p.visible(property.Visible()) {
			continue
		}
		row := p.newRow()
		setCubeKeys(row, catalog, schema, cube)
		row.Set(colDimensionUniqueName, hierarchy.Dimension().UniqueName())
		row.Set(colHierarchyUniqueName, hierarchy.UniqueName())
		row.Set(colLevelUniqueName, level.UniqueName())
		row.Set(colPropertyType, propertyTypeMember)
		row.Set("PROPERTY_NAME", property.Name())
		row.Set("PROPERTY_CAPTION", property.Caption())
		row.Set(colDataType, dbTypeOfProperty(property.DataType()))
		row.Set(colDescription, descriptionOr(property.Description(),
			fmt.Sprintf("%s Cube - %s Hierarchy - %s Level - %s Property",
				cube.Name(), hierarchy.Name(), level.Name(), property.Name())))
		row.Set("PROPERTY_CONTENT_TYPE", 0)
		row.Set("PROPERTY_ORIGIN", 1)
		row.Set("PROPERTY_IS_VISIBLE", property.Visible())
		row.Set(colCubeSource, cubeSourceCube)
		row.Set("PROPERTY_VISIBILITY", visibilityCode(property.Visible()))
		p.emit(row)
	}
}
