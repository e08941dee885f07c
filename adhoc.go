package xmladiscover

import (
	"context"
	"strings"
	"unicode"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/kent-id/xmladiscover/types"
)

// MetadataRowset is the flat projection of a rowset handed to drivers:
// upper-snake-case headers, no nested rowsets, lists joined into text.
type MetadataRowset struct {
	Headers []string
	Types   []types.WireType
	Rows    [][]interface{}
}

// GetMetadataRowset populates kindName over conn with the default registry
// and environment, and projects the result.
func GetMetadataRowset(ctx context.Context, conn olap.Connection, kindName string, restrictions Restrictions) (*MetadataRowset, error) {
	return metadataRowset(ctx, DefaultRegistry(), DefaultEnvironment(), conn, kindName, restrictions)
}

func metadataRowset(ctx context.Context, registry *Registry, env Environment, conn olap.Connection,
	kindName string, restrictions Restrictions) (*MetadataRowset, error) {
	kind, err := registry.Lookup(kindName)
	if err != nil {
		return nil, err
	}
	rows, err := kind.NewPopulator(NewRequest(kindName, restrictions), env).Populate(ctx, conn)
	if err != nil {
		return nil, err
	}
	return project(&Rowset{Kind: kind, Rows: rows}), nil
}

// Flatten projects rs the way GetMetadataRowset does.
func (rs *Rowset) Flatten() *MetadataRowset {
	return project(rs)
}

func project(rs *Rowset) *MetadataRowset {
	var keep []int
	m := &MetadataRowset{}
	for i, c := range rs.Kind.columns {
		if c.Type == types.RowSet {
			continue
		}
		keep = append(keep, i)
		m.Headers = append(m.Headers, headerName(c.Name))
		m.Types = append(m.Types, c.Type)
	}
	m.Rows = make([][]interface{}, len(rs.Rows))
	for r, row := range rs.Rows {
		tuple := make([]interface{}, len(keep))
		for j, i := range keep {
			v := row.values[i]
			switch v.Kind() {
			case ScalarValue:
				tuple[j] = v.Scalar()
			case ListValue:
				tuple[j] = v.Text(", ")
			}
		}
		m.Rows[r] = tuple
	}
	return m
}

func headerName(name string) string {
	header := name
	if strings.IndexFunc(name, unicode.IsLower) >= 0 {
		header = camelToUpper(name)
	}
	if header == "VALUE" {
		return "PROPERTY_VALUE"
	}
	return header
}

// camelToUpper turns "SchemaName" into "SCHEMA_NAME" and "DataSourceURL"
// into "DATA_SOURCE_URL".
func camelToUpper(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
