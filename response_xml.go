package xmladiscover

import (
	"io"
	"strings"

	"github.com/kent-id/xmladiscover/types"
	"github.com/pkg/errors"
)

// Content selects the sections of a discover response.
type Content int

const (
	ContentSchemaData Content = iota
	ContentSchema
	ContentData
	ContentNone
)

var contentNames = map[string]Content{
	"schemadata": ContentSchemaData,
	"schema":     ContentSchema,
	"data":       ContentData,
	"none":       ContentNone,
}

// ParseContent reads the Content request property. The empty string means
// schema and data.
func ParseContent(s string) (Content, error) {
	if s == "" {
		return ContentSchemaData, nil
	}
	c, ok := contentNames[strings.ToLower(s)]
	if !ok {
		return ContentSchemaData, errors.Errorf("unknown content %q", s)
	}
	return c, nil
}

func (c Content) schema() bool {
	return c == ContentSchemaData || c == ContentSchema
}

func (c Content) data() bool {
	return c == ContentSchemaData || c == ContentData
}

// WriteXML writes rs as a rowset document: the schema section followed by one
// row element per row, as selected by content.
func WriteXML(w io.Writer, rs *Rowset, content Content) error {
	x := newXMLWriter(w)
	x.start("root",
		"xmlns", xmlnsRowset,
		"xmlns:xsi", xmlnsXSI,
		"xmlns:xsd", xmlnsXSD)
	if content.schema() {
		x.schema(rs.Kind)
	}
	if content.data() {
		x.rows(rs)
	}
	x.end("root")
	return errors.Wrapf(x.flush(), "writing %s rows", rs.Kind.name)
}

func (x *xmlWriter) rows(rs *Rowset) {
	for _, row := range rs.Rows {
		x.start("row")
		for i, c := range rs.Kind.columns {
			x.cell(c, row.values[i])
		}
		x.end("row")
	}
}

func (x *xmlWriter) cell(c *Column, v Value) {
	name := EncodeElementName(c.Name)
	switch v.Kind() {
	case ScalarValue:
		x.text(name, types.FormatScalar(v.Scalar()))
	case ListValue:
		if restrictions, ok := restrictionInfos(v.List()); ok {
			for _, r := range restrictions {
				x.start(name)
				x.text("Name", r.Name)
				x.text("Type", r.Type)
				x.end(name)
			}
			return
		}
		x.text(name, v.Text(","))
	case NestedValue:
		x.start(name)
		x.rows(v.Nested())
		x.end(name)
	}
}

func restrictionInfos(list []interface{}) ([]RestrictionInfo, bool) {
	if len(list) == 0 {
		return nil, false
	}
	out := make([]RestrictionInfo, 0, len(list))
	for _, item := range list {
		r, ok := item.(RestrictionInfo)
		if !ok {
			return nil, false
		}
		out = append(out, r)
	}
	return out, true
}
