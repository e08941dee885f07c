package xmladiscover

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

const (
	xmlnsRowset = "urn:schemas-microsoft-com:xml-analysis:rowset"
	xmlnsXSD    = "http://www.w3.org/2001/XMLSchema"
	xmlnsXSI    = "http://www.w3.org/2001/XMLSchema-instance"
	xmlnsSQL    = "urn:schemas-microsoft-com:xml-sql"

	uuidPattern = "[0-9a-zA-Z]{8}-[0-9a-zA-Z]{4}-[0-9a-zA-Z]{4}-[0-9a-zA-Z]{4}-[0-9a-zA-Z]{12}"
)

// xmlWriter emits tokens and keeps the first error.
type xmlWriter struct {
	enc *xml.Encoder
	err error
}

func newXMLWriter(w io.Writer) *xmlWriter {
	return &xmlWriter{enc: xml.NewEncoder(w)}
}

func attrs(pairs ...string) []xml.Attr {
	out := make([]xml.Attr, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, xml.Attr{Name: xml.Name{Local: pairs[i]}, Value: pairs[i+1]})
	}
	return out
}

func (x *xmlWriter) token(t xml.Token) {
	if x.err == nil {
		x.err = x.enc.EncodeToken(t)
	}
}

func (x *xmlWriter) start(name string, pairs ...string) {
	x.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs(pairs...)})
}

func (x *xmlWriter) end(name string) {
	x.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (x *xmlWriter) leaf(name string, pairs ...string) {
	x.start(name, pairs...)
	x.end(name)
}

func (x *xmlWriter) text(name, value string) {
	x.start(name)
	x.token(xml.CharData(value))
	x.end(name)
}

func (x *xmlWriter) flush() error {
	if x.err == nil {
		x.err = x.enc.Flush()
	}
	return x.err
}

// WriteSchema writes the XSD describing the rows of kind.
func WriteSchema(w io.Writer, kind *RowsetKind) error {
	x := newXMLWriter(w)
	x.schema(kind)
	return errors.Wrapf(x.flush(), "writing schema of %s", kind.name)
}

func (x *xmlWriter) schema(kind *RowsetKind) {
	x.start("xsd:schema",
		"xmlns:xsd", xmlnsXSD,
		"xmlns", xmlnsRowset,
		"xmlns:xsi", xmlnsXSI,
		"xmlns:sql", xmlnsSQL,
		"targetNamespace", xmlnsRowset,
		"elementFormDefault", "qualified")

	x.start("xsd:element", "name", "root")
	x.start("xsd:complexType")
	x.start("xsd:sequence")
	x.leaf("xsd:element", "name", "row", "type", "row", "minOccurs", "0", "maxOccurs", "unbounded")
	x.end("xsd:sequence")
	x.end("xsd:complexType")
	x.end("xsd:element")

	x.start("xsd:simpleType", "name", "uuid")
	x.start("xsd:restriction", "base", "xsd:string")
	x.leaf("xsd:pattern", "value", uuidPattern)
	x.end("xsd:restriction")
	x.end("xsd:simpleType")

	x.start("xsd:complexType", "name", "xmlDocument")
	x.start("xsd:sequence")
	x.leaf("xsd:any")
	x.end("xsd:sequence")
	x.end("xsd:complexType")

	x.start("xsd:complexType", "name", "row")
	x.start("xsd:sequence")
	for _, c := range kind.columns {
		if c.ContentOnly() {
			continue
		}
		if kind.name == KindDiscoverSchemaRowsets && c.Name == "Restrictions" {
			x.restrictionsElement(c)
			continue
		}
		pairs := []string{"sql:field", c.Name, "name", EncodeElementName(c.Name), "type", c.Type.XSDType()}
		if c.Nullable {
			pairs = append(pairs, "minOccurs", "0")
		}
		if c.Unbounded {
			pairs = append(pairs, "maxOccurs", "unbounded")
		}
		x.leaf("xsd:element", pairs...)
	}
	x.end("xsd:sequence")
	x.end("xsd:complexType")

	x.end("xsd:schema")
}

// restrictionsElement declares the (Name, Type) pairs of DISCOVER_SCHEMA_ROWSETS.
func (x *xmlWriter) restrictionsElement(c *Column) {
	x.start("xsd:element", "sql:field", c.Name, "name", c.Name, "minOccurs", "0", "maxOccurs", "unbounded")
	x.start("xsd:complexType")
	x.start("xsd:sequence")
	x.leaf("xsd:element", "name", "Name", "type", "xsd:string", "sql:field", "Name")
	x.leaf("xsd:element", "name", "Type", "type", "xsd:string", "sql:field", "Type")
	x.end("xsd:sequence")
	x.end("xsd:complexType")
	x.end("xsd:element")
}
