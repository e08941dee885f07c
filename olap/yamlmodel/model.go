// Package yamlmodel is an in-memory OLAP model read from a yaml document.
package yamlmodel

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	measuresName      = "Measures"
	measuresLevelName = "MeasuresLevel"
	allLevelName      = "(All)"
)

// Model is a loaded yaml model. It is immutable and safe for concurrent use;
// each Connect returns an independent Connection.
type Model struct {
	catalogs []*catalog
	roles    map[string]roleDoc
	source   olap.SourceConnector
}

type Option func(*Model)

// WithSource attaches the relational store backing the model's catalogs.
func WithSource(src olap.SourceConnector) Option {
	return func(m *Model) {
		m.source = src
	}
}

// LoadFile reads a model from a yaml file.
func LoadFile(path string, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening model %s", path)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Load reads a model from r.
func Load(r io.Reader, opts ...Option) (*Model, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading model")
	}
	var doc modelDoc
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding model")
	}

	m := &Model{roles: make(map[string]roleDoc, len(doc.Roles))}
	for _, r := range doc.Roles {
		if r.Name == "" {
			return nil, errors.New("role without a name")
		}
		m.roles[r.Name] = r
	}
	for _, cd := range doc.Catalogs {
		c, err := buildCatalog(cd, doc.Roles)
		if err != nil {
			return nil, err
		}
		c.document = string(raw)
		m.catalogs = append(m.catalogs, c)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func bracket(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func buildCatalog(cd catalogDoc, roles []roleDoc) (*catalog, error) {
	if cd.Name == "" {
		return nil, errors.New("catalog without a name")
	}
	c := &catalog{name: cd.Name, description: cd.Description}
	for _, r := range roles {
		if len(r.Catalogs) == 0 || contains(r.Catalogs, cd.Name) {
			c.roles = append(c.roles, r.Name)
		}
	}
	for _, sd := range cd.Schemas {
		s := &schema{name: sd.Name, loadTime: sd.LoadTime}
		for _, kd := range sd.Cubes {
			k, err := buildCube(kd)
			if err != nil {
				return nil, errors.Wrapf(err, "catalog %s", cd.Name)
			}
			s.cubes = append(s.cubes, k)
		}
		c.schemas = append(c.schemas, s)
	}
	return c, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func buildCube(kd cubeDoc) (*cube, error) {
	if kd.Name == "" {
		return nil, errors.New("cube without a name")
	}
	k := &cube{
		element: newElement(kd.Name, bracket(kd.Name), kd.Caption, kd.Description),
		virtual: kd.Virtual,
		visible: boolOr(kd.Visible, true),
		members: map[string]olap.Member{},
		levels:  map[string]*level{},
	}

	k.dimensions = append(k.dimensions, buildMeasures(k, kd.Measures))
	for _, dd := range kd.Dimensions {
		d, err := buildDimension(k, dd)
		if err != nil {
			return nil, errors.Wrapf(err, "cube %s", kd.Name)
		}
		k.dimensions = append(k.dimensions, d)
	}

	for _, sd := range kd.Sets {
		k.sets = append(k.sets, &namedSet{
			element:       newElement(sd.Name, bracket(sd.Name), sd.Caption, sd.Description),
			expression:    sd.Expression,
			displayFolder: sd.DisplayFolder,
			hierarchies:   sd.Hierarchies,
		})
	}
	return k, nil
}

func buildMeasures(k *cube, docs []measureDoc) *dimension {
	d := &dimension{
		element: newElement(measuresName, bracket(measuresName), "", ""),
		dimType: olap.DimensionMeasure,
		visible: true,
	}
	h := &hierarchy{
		element:   newElement(measuresName, bracket(measuresName), "", ""),
		dimension: d,
		visible:   true,
	}
	l := &level{
		element:       newElement(measuresLevelName, h.uniqueName+"."+bracket(measuresLevelName), "", ""),
		hierarchy:     h,
		uniqueMembers: true,
		visible:       true,
	}
	for i, md := range docs {
		memberType := olap.MemberMeasure
		aggregator := olap.ParseAggregator(strings.ToLower(md.Aggregator))
		if md.Formula != "" {
			memberType = olap.MemberFormula
			aggregator = olap.AggregatorCalculated
		}
		dataType := md.DataType
		if dataType == "" {
			dataType = "Numeric"
		}
		m := &measure{
			member: member{
				element:    newElement(md.Name, h.uniqueName+"."+bracket(md.Name), md.Caption, md.Description),
				level:      l,
				memberType: memberType,
				ordinal:    i,
				visible:    boolOr(md.Visible, true),
			},
			aggregator:    aggregator,
			dataType:      dataType,
			formatString:  md.FormatString,
			expression:    md.Formula,
			displayFolder: md.DisplayFolder,
		}
		k.measures = append(k.measures, m)
		l.members = append(l.members, m)
		h.roots = append(h.roots, m)
		k.members[m.uniqueName] = m
	}
	if len(h.roots) > 0 {
		h.defaultMember = h.roots[0]
	}
	h.levels = []*level{l}
	d.hierarchies = []*hierarchy{h}
	k.levels[l.uniqueName] = l
	return d
}

var dimensionTypes = map[string]olap.DimensionType{
	"":        olap.DimensionOther,
	"other":   olap.DimensionOther,
	"time":    olap.DimensionTime,
	"measure": olap.DimensionMeasure,
	"unknown": olap.DimensionUnknown,
}

func buildDimension(k *cube, dd dimensionDoc) (*dimension, error) {
	if dd.Name == "" {
		return nil, errors.New("dimension without a name")
	}
	dimType, ok := dimensionTypes[strings.ToLower(dd.Type)]
	if !ok {
		return nil, errors.Errorf("dimension %s: unknown type %q", dd.Name, dd.Type)
	}
	d := &dimension{
		element: newElement(dd.Name, bracket(dd.Name), dd.Caption, dd.Description),
		dimType: dimType,
		visible: boolOr(dd.Visible, true),
	}
	hierarchies := dd.Hierarchies
	if len(hierarchies) == 0 {
		hierarchies = []hierarchyDoc{{}}
	}
	for _, hd := range hierarchies {
		h, err := buildHierarchy(k, d, hd)
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %s", dd.Name)
		}
		d.hierarchies = append(d.hierarchies, h)
	}
	return d, nil
}

// hierarchyBuilder numbers members in pre-order across one hierarchy.
type hierarchyBuilder struct {
	cube    *cube
	h       *hierarchy
	levels  []*level
	ordinal int
}

func buildHierarchy(k *cube, d *dimension, hd hierarchyDoc) (*hierarchy, error) {
	name := hd.Name
	if name == "" {
		name = d.name
	}
	uniqueName := d.uniqueName
	if name != d.name {
		uniqueName = d.uniqueName + "." + bracket(name)
	}
	h := &hierarchy{
		element:       newElement(name, uniqueName, hd.Caption, hd.Description),
		dimension:     d,
		visible:       boolOr(hd.Visible, true),
		hasAll:        boolOr(hd.HasAll, true),
		parentChild:   hd.ParentChild,
		displayFolder: hd.DisplayFolder,
	}
	b := &hierarchyBuilder{cube: k, h: h}

	if h.hasAll {
		b.addLevel(&level{
			element:       newElement(allLevelName, uniqueName+"."+bracket(allLevelName), "", ""),
			levelType:     olap.LevelAll,
			uniqueMembers: true,
		}, true)
	}
	for _, ld := range hd.Levels {
		lt := olap.LevelRegular
		if ld.Type != "" {
			t, ok := olap.ParseLevelType(strings.ToLower(ld.Type))
			if !ok {
				return nil, errors.Errorf("level %s: unknown type %q", ld.Name, ld.Type)
			}
			lt = t
		}
		l := &level{
			element:       newElement(ld.Name, uniqueName+"."+bracket(ld.Name), ld.Caption, ld.Description),
			levelType:     lt,
			uniqueMembers: ld.UniqueMembers,
		}
		for _, pd := range ld.Properties {
			p, err := buildProperty(pd)
			if err != nil {
				return nil, errors.Wrapf(err, "level %s", ld.Name)
			}
			l.properties = append(l.properties, p)
		}
		b.addLevel(l, boolOr(ld.Visible, true))
	}
	if len(b.levels) == 0 {
		return nil, errors.Errorf("hierarchy %s has no levels", name)
	}

	var parent *member
	first := 0
	if h.hasAll {
		allName := hd.AllMemberName
		if allName == "" {
			allName = "All " + d.name + "s"
		}
		parent = b.addMember(b.levels[0], nil, allName, uniqueName+"."+bracket(allName), "", "", true)
		parent.memberType = olap.MemberAll
		h.roots = []olap.Member{parent}
		first = 1
	}
	for _, md := range hd.Members {
		m, err := b.addMemberTree(first, parent, md)
		if err != nil {
			return nil, errors.Wrapf(err, "hierarchy %s", name)
		}
		if !h.hasAll {
			h.roots = append(h.roots, m)
		}
	}

	switch {
	case hd.DefaultMember != "":
		m, ok := k.members[hd.DefaultMember]
		if !ok {
			return nil, errors.Errorf("hierarchy %s: default member %s not found", name, hd.DefaultMember)
		}
		h.defaultMember = m
	case len(h.roots) > 0:
		h.defaultMember = h.roots[0]
	}
	h.levels = b.levels
	return h, nil
}

func (b *hierarchyBuilder) addLevel(l *level, visible bool) {
	l.hierarchy = b.h
	l.depth = len(b.levels)
	l.visible = visible
	b.levels = append(b.levels, l)
	b.cube.levels[l.uniqueName] = l
}

func (b *hierarchyBuilder) addMember(l *level, parent *member, name, uniqueName, caption, description string, visible bool) *member {
	m := &member{
		element:    newElement(name, uniqueName, caption, description),
		level:      l,
		memberType: olap.MemberRegular,
		ordinal:    b.ordinal,
		visible:    visible,
		parent:     parent,
	}
	b.ordinal++
	l.members = append(l.members, m)
	if parent != nil {
		parent.children = append(parent.children, m)
	}
	b.cube.members[uniqueName] = m
	return m
}

func (b *hierarchyBuilder) addMemberTree(depth int, parent *member, md memberDoc) (*member, error) {
	if depth >= len(b.levels) {
		return nil, errors.Errorf("member %s is deeper than the hierarchy's levels", md.Name)
	}
	prefix := b.h.uniqueName
	if parent != nil && parent.memberType != olap.MemberAll {
		prefix = parent.uniqueName
	}
	uniqueName := prefix + "." + bracket(md.Name)
	if _, dup := b.cube.members[uniqueName]; dup {
		return nil, errors.Errorf("duplicate member %s", uniqueName)
	}
	m := b.addMember(b.levels[depth], parent, md.Name, uniqueName, md.Caption, md.Description, boolOr(md.Visible, true))
	for _, cd := range md.Children {
		if _, err := b.addMemberTree(depth+1, m, cd); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func buildProperty(pd propertyDoc) (*property, error) {
	dataType := olap.PropertyString
	if pd.Type != "" {
		t, ok := olap.ParsePropertyDataType(strings.ToLower(pd.Type))
		if !ok {
			return nil, errors.Errorf("property %s: unknown type %q", pd.Name, pd.Type)
		}
		dataType = t
	}
	caption := pd.Caption
	if caption == "" {
		caption = pd.Name
	}
	return &property{
		name:        pd.Name,
		caption:     caption,
		description: pd.Description,
		dataType:    dataType,
		visible:     boolOr(pd.Visible, true),
	}, nil
}

func (m *Model) String() string {
	return fmt.Sprintf("yamlmodel(%d catalogs, %d roles)", len(m.catalogs), len(m.roles))
}
