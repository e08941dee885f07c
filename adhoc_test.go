package xmladiscover

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func headerIndex(m *MetadataRowset, header string) int {
	for i, h := range m.Headers {
		if h == header {
			return i
		}
	}
	Fail("no header " + header)
	return -1
}

var _ = Describe("ad hoc metadata rowsets", func() {
	table.DescribeTable("header names",
		func(column, header string) {
			Expect(headerName(column)).To(Equal(header))
		},
		table.Entry("already upper", "CATALOG_NAME", "CATALOG_NAME"),
		table.Entry("camel case", "SchemaName", "SCHEMA_NAME"),
		table.Entry("trailing acronym", "DataSourceURL", "DATA_SOURCE_URL"),
		table.Entry("long", "LiteralNameEnumValue", "LITERAL_NAME_ENUM_VALUE"),
		table.Entry("value", "VALUE", "PROPERTY_VALUE"),
		table.Entry("camel value", "Value", "PROPERTY_VALUE"),
		table.Entry("acronym word", "URL", "URL"),
	)

	It("should drop nested columns and keep row order", func() {
		conn := connectAs(loadFoodMart(), "")
		m, err := GetMetadataRowset(context.Background(), conn, KindMDSchemaCubes, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Headers).ToNot(ContainElement(colDimensions))
		Expect(m.Headers).To(HaveLen(len(m.Types)))
		Expect(m.Rows).To(HaveLen(2))
		Expect(m.Rows[0][headerIndex(m, colCubeName)]).To(Equal("Sales"))
	})

	It("should fail for unknown kinds and model faults", func() {
		_, err := GetMetadataRowset(context.Background(), nil, "MDSCHEMA_UNKNOWN", nil)
		Expect(err).To(MatchError(ErrUnknownRowsetKind))

		_, err = GetMetadataRowset(context.Background(), nil, KindMDSchemaCubes, nil)
		Expect(err).To(MatchError(ErrNoConnection))
	})

	It("should join lists and rename headers", func() {
		info := DefaultServerInfo()
		info.ProviderTypes = []string{"TDP", "MDP"}
		d := NewDiscoverer(WithServerInfo(info))
		m, err := d.MetadataRowset(context.Background(), nil, KindDiscoverDatasources, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Headers).To(ContainElements("DATA_SOURCE_NAME", "PROVIDER_TYPE", "AUTHENTICATION_MODE"))
		Expect(m.Rows[0][headerIndex(m, "PROVIDER_TYPE")]).To(Equal("TDP, MDP"))
	})

	It("should flatten a discovered rowset the same way", func() {
		rs, err := NewDiscoverer().Discover(context.Background(), NewRequest(KindDiscoverProperties, nil))
		Expect(err).ToNot(HaveOccurred())
		m := rs.Flatten()
		Expect(m.Headers).To(ContainElement("PROPERTY_VALUE"))
		Expect(m.Rows).To(HaveLen(len(rs.Rows)))
	})

	Describe("ArrowTable", func() {
		var mem *memory.CheckedAllocator

		BeforeEach(func() {
			mem = memory.NewCheckedAllocator(memory.NewGoAllocator())
		})

		AfterEach(func() {
			Expect(mem.CurrentAlloc()).To(Equal(0))
		})

		It("should type columns after their wire types", func() {
			conn := connectAs(loadFoodMart(), "")
			m, err := GetMetadataRowset(context.Background(), conn, KindMDSchemaCubes, nil)
			Expect(err).ToNot(HaveOccurred())

			tbl := m.ArrowTable(mem)
			defer tbl.Release()
			Expect(tbl.NumRows()).To(Equal(int64(2)))
			Expect(tbl.NumCols()).To(Equal(int64(len(m.Headers))))

			schema := tbl.Schema()
			field := func(name string) arrow.Field {
				idx := schema.FieldIndices(name)
				Expect(idx).To(HaveLen(1))
				return schema.Field(idx[0])
			}
			Expect(field(colCubeName).Type.ID()).To(Equal(arrow.STRING))
			Expect(field("LAST_SCHEMA_UPDATE").Type.ID()).To(Equal(arrow.TIMESTAMP))
			Expect(field("IS_DRILLTHROUGH_ENABLED").Type.ID()).To(Equal(arrow.BOOL))

			names := tbl.Column(headerIndex(m, colCubeName)).Data().Chunk(0).(*array.String)
			Expect(names.Value(0)).To(Equal("Sales"))
			Expect(names.Value(1)).To(Equal("Warehouse"))

			updated := tbl.Column(headerIndex(m, "LAST_SCHEMA_UPDATE")).Data().Chunk(0).(*array.Timestamp)
			Expect(updated.Value(0)).To(Equal(arrow.Timestamp(1614834367)))
		})

		It("should store nulls", func() {
			m, err := GetMetadataRowset(context.Background(), nil, KindDiscoverLiterals, Restrictions{
				"LiteralName": {"DBLITERAL_CATALOG_NAME"},
			})
			Expect(err).ToNot(HaveOccurred())

			tbl := m.ArrowTable(mem)
			defer tbl.Release()
			values := tbl.Column(headerIndex(m, "LITERAL_VALUE")).Data().Chunk(0)
			Expect(values.IsNull(0)).To(BeTrue())
			Expect(tbl.Schema().Field(headerIndex(m, "LITERAL_MAX_LENGTH")).Type.ID()).To(Equal(arrow.INT64))
			lengths := tbl.Column(headerIndex(m, "LITERAL_MAX_LENGTH")).Data().Chunk(0).(*array.Int64)
			Expect(lengths.Value(0)).To(Equal(int64(24)))
		})
	})
})
