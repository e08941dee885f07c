package yamlmodel

import (
	"context"
	"strings"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
)

// Connection is one session over a Model. It tracks the current catalog and
// is not safe for concurrent use.
type Connection struct {
	model   *Model
	role    *roleDoc
	current string
	closed  bool
}

var (
	_ olap.Connector      = (*Model)(nil)
	_ olap.Connection     = (*Connection)(nil)
	_ olap.SourceProvider = (*Connection)(nil)
)

// Connect opens a session. An unknown role or catalog is an error.
func (m *Model) Connect(ctx context.Context, spec olap.ConnectionSpec) (olap.Connection, error) {
	conn := &Connection{model: m}
	if spec.Role != "" {
		r, ok := m.roles[spec.Role]
		if !ok {
			return nil, errors.Errorf("unknown role %q", spec.Role)
		}
		conn.role = &r
	}
	if spec.Catalog != "" {
		if err := conn.SetCatalog(spec.Catalog); err != nil {
			return nil, err
		}
	}
	return conn, nil
}

func (c *Connection) catalogAllowed(name string) bool {
	return c.role == nil || len(c.role.Catalogs) == 0 || contains(c.role.Catalogs, name)
}

func (c *Connection) Catalogs() ([]olap.Catalog, error) {
	if c.closed {
		return nil, errors.New("connection closed")
	}
	var out []olap.Catalog
	for _, cat := range c.model.catalogs {
		if c.catalogAllowed(cat.name) {
			out = append(out, &catalogHandle{conn: c, catalog: cat})
		}
	}
	return out, nil
}

func (c *Connection) SetCatalog(name string) error {
	if c.closed {
		return errors.New("connection closed")
	}
	for _, cat := range c.model.catalogs {
		if cat.name == name && c.catalogAllowed(name) {
			c.current = name
			return nil
		}
	}
	return errors.Errorf("unknown catalog %q", name)
}

// CanAccess hides every element whose unique name starts with one of the
// role's deny prefixes.
func (c *Connection) CanAccess(e olap.Element) bool {
	if c.role == nil {
		return true
	}
	for _, prefix := range c.role.Deny {
		if strings.HasPrefix(e.UniqueName(), prefix) {
			return false
		}
	}
	return true
}

func (c *Connection) Source() olap.SourceConnector {
	return c.model.source
}

func (c *Connection) Close() error {
	c.closed = true
	return nil
}

// catalogHandle binds a catalog to the connection whose current catalog
// gates access to its schemas.
type catalogHandle struct {
	conn    *Connection
	catalog *catalog
}

func (h *catalogHandle) Name() string           { return h.catalog.name }
func (h *catalogHandle) Description() string    { return h.catalog.description }
func (h *catalogHandle) RoleNames() []string    { return append([]string(nil), h.catalog.roles...) }
func (h *catalogHandle) SchemaDocument() string { return h.catalog.document }

func (h *catalogHandle) Schemas() ([]olap.Schema, error) {
	if h.conn.current != h.catalog.name {
		return nil, errors.Errorf("catalog %s is not the current catalog", h.catalog.name)
	}
	out := make([]olap.Schema, len(h.catalog.schemas))
	for i, s := range h.catalog.schemas {
		out[i] = s
	}
	return out, nil
}
