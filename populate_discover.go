package xmladiscover

import (
	"context"
	"strconv"
	"strings"

	"github.com/kent-id/xmladiscover/olap"
)

// RestrictionInfo names one restriction a kind accepts and its XML type.
type RestrictionInfo struct {
	Name string
	Type string
}

func (r RestrictionInfo) String() string {
	return r.Name
}

// nullable maps the empty string to a null cell.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func populateDatasources(ctx context.Context, p *Populator) error {
	server := p.env.Server
	row := p.newRow()
	row.Set("DataSourceName", server.DataSourceName)
	row.Set("DataSourceDescription", nullable(server.DataSourceDescription))
	row.Set("URL", nullable(server.URL))
	row.Set("DataSourceInfo", nullable(server.DataSourceInfo))
	row.Set("ProviderName", nullable(server.ProviderName))
	row.Set("ProviderType", server.ProviderTypes)
	row.Set("AuthenticationMode", server.AuthenticationMode)
	p.emit(row)
	return nil
}

func populateSchemaRowsets(ctx context.Context, p *Populator) error {
	for _, kind := range p.kind.registry.kinds {
		if !p.match("SchemaName", kind.name) {
			continue
		}
		restrictions := kind.RestrictionColumns()
		infos := make([]interface{}, len(restrictions))
		var mask uint64
		for i, c := range restrictions {
			infos[i] = RestrictionInfo{Name: c.Name, Type: c.RestrictionType().XSDType()}
			if i < 64 {
				mask |= 1 << uint(i)
			}
		}

		row := p.newRow()
		row.Set("SchemaName", kind.name)
		row.Set("SchemaGuid", kind.guid)
		row.Set("Restrictions", infos)
		row.Set("Description", kind.description)
		row.Set("RestrictionsMask", mask)
		p.emit(row)
	}
	return nil
}

func populateEnumerators(ctx context.Context, p *Populator) error {
	for _, enum := range p.kind.registry.enums {
		if !p.match("EnumName", enum.Name) {
			continue
		}
		for _, constant := range enum.Constants {
			row := p.newRow()
			row.Set("EnumName", enum.Name)
			row.Set("EnumDescription", nullable(enum.Description))
			row.Set("EnumType", strings.TrimPrefix(enum.Type.XSDType(), "xsd:"))
			row.Set("ElementName", constant.Name)
			row.Set("ElementDescription", nullable(constant.Description))
			if enum.numeric() {
				row.Set("ElementValue", strconv.Itoa(constant.Ordinal))
			}
			p.emit(row)
		}
	}
	return nil
}

func populateProperties(ctx context.Context, p *Populator) error {
	for _, def := range p.env.Properties {
		if !p.match("PropertyName", def.Name) {
			continue
		}
		value := def.Default
		if v, ok := p.req.Properties.Get(def.Name); ok {
			value = v
		}

		row := p.newRow()
		row.Set("PropertyName", def.Name)
		row.Set("PropertyDescription", nullable(def.Description))
		row.Set("PropertyType", nullable(def.Type))
		row.Set("PropertyAccessType", def.Access)
		row.Set("IsRequired", false)
		row.Set("Value", nullable(value))
		p.emit(row)
	}
	return nil
}

func populateKeywords(ctx context.Context, p *Populator) error {
	for _, keyword := range p.env.Keywords {
		if !p.match("Keyword", keyword) {
			continue
		}
		row := p.newRow()
		row.Set("Keyword", keyword)
		p.emit(row)
	}
	return nil
}

func populateLiterals(ctx context.Context, p *Populator) error {
	for _, l := range literals {
		name := literalPrefix + l.name
		if !p.match("LiteralName", name) {
			continue
		}
		row := p.newRow()
		row.Set("LiteralName", name)
		row.Set("LiteralValue", nullable(l.value))
		row.Set("LiteralInvalidChars", nullable(l.invalidChars))
		row.Set("LiteralInvalidStartingChars", nullable(l.invalidStartingChars))
		row.Set("LiteralMaxLength", l.maxLength)
		row.Set("LiteralNameEnumValue", l.enumValue)
		p.emit(row)
	}
	return nil
}

// populateXMLMetadata emits the document of the first matching catalog only.
func populateXMLMetadata(ctx context.Context, p *Populator) error {
	found := false
	return p.forEachCatalog("DatabaseID", func(catalog olap.Catalog) error {
		if found {
			return nil
		}
		found = true
		row := p.newRow()
		row.Set("METADATA", catalog.SchemaDocument())
		row.Set("DatabaseID", catalog.Name())
		p.emit(row)
		return nil
	})
}
