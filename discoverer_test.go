package xmladiscover

import (
	"context"

	"github.com/kent-id/xmladiscover/olap"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

// trackingConnector records the specs it is asked for and the sessions closed.
type trackingConnector struct {
	olap.Connector
	specs  []olap.ConnectionSpec
	closed int
}

func (c *trackingConnector) Connect(ctx context.Context, spec olap.ConnectionSpec) (olap.Connection, error) {
	c.specs = append(c.specs, spec)
	conn, err := c.Connector.Connect(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &trackedConnection{Connection: conn, connector: c}, nil
}

type trackedConnection struct {
	olap.Connection
	connector *trackingConnector
}

func (c *trackedConnection) Close() error {
	c.connector.closed++
	return c.Connection.Close()
}

var _ = Describe("Discoverer", func() {
	var (
		ctx       context.Context
		connector *trackingConnector
	)

	BeforeEach(func() {
		ctx = context.Background()
		connector = &trackingConnector{Connector: loadFoodMart()}
	})

	It("should reject unknown request types before connecting", func() {
		d := NewDiscoverer(WithConnector(connector))
		_, err := d.Discover(ctx, NewRequest("MDSCHEMA_WIDGETS", nil))
		Expect(err).To(MatchError(ErrUnknownRowsetKind))
		Expect(connector.specs).To(BeEmpty())
	})

	It("should answer server-level requests without a model", func() {
		rs, err := NewDiscoverer().Discover(ctx, NewRequest(KindDiscoverLiterals, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(rs.Kind.Name()).To(Equal(KindDiscoverLiterals))
		Expect(rs.Rows).To(HaveLen(17))
	})

	It("should fail model requests without a model", func() {
		_, err := NewDiscoverer().Discover(ctx, NewRequest(KindMDSchemaCubes, nil))
		Expect(err).To(MatchError(ErrNoConnection))
		Expect(errors.Is(err, ErrMetadataAccess)).To(BeTrue())
	})

	It("should connect per request and close the session", func() {
		d := NewDiscoverer(WithConnector(connector))
		req := NewRequest(KindMDSchemaCubes, nil)
		req.RoleName = "California manager"
		req.Username = "alice"
		req.SessionID = "session-1"
		req.Properties[PropertyCatalog] = "FoodMart"

		rs, err := d.Discover(ctx, req)
		Expect(err).ToNot(HaveOccurred())
		Expect(rs.Rows).To(HaveLen(2))
		Expect(connector.specs).To(Equal([]olap.ConnectionSpec{{
			Catalog:   "FoodMart",
			Role:      "California manager",
			Username:  "alice",
			SessionID: "session-1",
		}}))
		Expect(connector.closed).To(Equal(1))
	})

	It("should not connect for server-level requests", func() {
		d := NewDiscoverer(WithConnector(connector))
		_, err := d.Discover(ctx, NewRequest(KindDiscoverKeywords, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(connector.specs).To(BeEmpty())
	})

	It("should report connection failures as metadata faults", func() {
		d := NewDiscoverer(WithConnector(connector))
		req := NewRequest(KindMDSchemaCubes, nil)
		req.RoleName = "Auditor"
		_, err := d.Discover(ctx, req)
		Expect(err).To(MatchError(ErrMetadataAccess))
		Expect(err.Error()).To(ContainSubstring(`unknown role "Auditor"`))

		req = NewRequest(KindMDSchemaCubes, nil)
		req.Properties[PropertyCatalog] = "Elsewhere"
		_, err = d.Discover(ctx, req)
		Expect(err).To(MatchError(ErrMetadataAccess))
		Expect(connector.closed).To(Equal(0))
	})

	It("should close the session when population fails", func() {
		failing := &faultConnector{Connector: connector, err: errors.New("disk gone")}
		d := NewDiscoverer(WithConnector(failing))
		rs, err := d.Discover(ctx, NewRequest(KindMDSchemaDimensions, nil))
		Expect(rs).To(BeNil())
		Expect(err).To(MatchError(ContainSubstring("disk gone")))
		Expect(connector.closed).To(Equal(1))
	})

	It("should serve the configured environment", func() {
		d := NewDiscoverer(
			WithKeywords([]string{"SELECT", "FROM"}),
			WithFunctions(nil),
			WithPropertyDefinitions([]PropertyDefinition{{Name: "Timeout", Type: "unsignedInt", Access: "ReadWrite", Default: "30"}}),
		)
		rs, err := d.Discover(ctx, NewRequest(KindDiscoverKeywords, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(texts(rs.Rows, "Keyword")).To(Equal([]string{"SELECT", "FROM"}))

		rs, err = d.Discover(ctx, NewRequest(KindMDSchemaFunctions, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(rs.Rows).To(BeEmpty())

		rs, err = d.Discover(ctx, NewRequest(KindDiscoverProperties, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(rs.Rows).To(HaveLen(1))
		Expect(rs.Rows[0].Get("Value").Scalar()).To(Equal("30"))
	})

	It("should use the given registry", func() {
		registry, err := NewRegistry()
		Expect(err).ToNot(HaveOccurred())
		d := NewDiscoverer(WithRegistry(registry))
		Expect(d.Registry()).To(BeIdenticalTo(registry))

		rs, err := d.Discover(ctx, NewRequest(KindDiscoverSchemaRowsets, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(rs.Rows[0].Get("SchemaName").Kind()).To(Equal(ScalarValue))
	})
})

// faultConnector hands out connections that fail while listing catalogs.
type faultConnector struct {
	olap.Connector
	err error
}

func (c *faultConnector) Connect(ctx context.Context, spec olap.ConnectionSpec) (olap.Connection, error) {
	conn, err := c.Connector.Connect(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &faultyConnection{Connection: conn, err: c.err}, nil
}
