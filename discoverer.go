package xmladiscover

import (
	"context"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
)

// Discoverer answers discover requests against a model.
type Discoverer struct {
	connector olap.Connector
	registry  *Registry
	env       Environment
}

type Option func(*Discoverer)

// WithConnector sets the model that kinds needing a connection read from.
func WithConnector(c olap.Connector) Option {
	return func(d *Discoverer) {
		d.connector = c
	}
}

func WithRegistry(r *Registry) Option {
	return func(d *Discoverer) {
		d.registry = r
	}
}

func WithServerInfo(info ServerInfo) Option {
	return func(d *Discoverer) {
		d.env.Server = info
	}
}

func WithFunctions(functions []FunctionInfo) Option {
	return func(d *Discoverer) {
		d.env.Functions = functions
	}
}

func WithKeywords(keywords []string) Option {
	return func(d *Discoverer) {
		d.env.Keywords = keywords
	}
}

func WithPropertyDefinitions(properties []PropertyDefinition) Option {
	return func(d *Discoverer) {
		d.env.Properties = properties
	}
}

func NewDiscoverer(opts ...Option) *Discoverer {
	d := &Discoverer{
		registry: DefaultRegistry(),
		env:      DefaultEnvironment(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Discoverer) Registry() *Registry {
	return d.registry
}

// Discover populates the kind named by req.RequestType. Unknown kinds fail
// before the model is touched; any model failure returns a
// MetadataAccessError and no rows.
func (d *Discoverer) Discover(ctx context.Context, req *Request) (*Rowset, error) {
	kind, err := d.registry.Lookup(req.RequestType)
	if err != nil {
		return nil, err
	}
	LogDebugf("discover %s restrictions=%v", kind.name, req.Restrictions)

	var conn olap.Connection
	if kind.needsConnection {
		conn, err = d.connect(ctx, req)
		if err != nil {
			return nil, newMetadataAccessError(kind.name, err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				LogWarnf("closing connection: %v", err)
			}
		}()
	}

	rows, err := kind.NewPopulator(req, d.env).Populate(ctx, conn)
	if err != nil {
		return nil, err
	}
	return &Rowset{Kind: kind, Rows: rows}, nil
}

// MetadataRowset runs the ad hoc accessor over an open connection.
func (d *Discoverer) MetadataRowset(ctx context.Context, conn olap.Connection, kindName string, restrictions Restrictions) (*MetadataRowset, error) {
	return metadataRowset(ctx, d.registry, d.env, conn, kindName, restrictions)
}

func (d *Discoverer) connect(ctx context.Context, req *Request) (olap.Connection, error) {
	if d.connector == nil {
		return nil, ErrNoConnection
	}
	catalog, _ := req.Properties.Get(PropertyCatalog)
	conn, err := d.connector.Connect(ctx, olap.ConnectionSpec{
		Catalog:   catalog,
		Role:      req.RoleName,
		Username:  req.Username,
		Password:  req.Password,
		SessionID: req.SessionID,
	})
	return conn, errors.Wrap(err, "connecting to model")
}
