package xmladiscover

import (
	"time"

	"github.com/kent-id/xmladiscover/olap"
	"github.com/kent-id/xmladiscover/olap/yamlmodel"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("DBSCHEMA rowsets", func() {
	var conn olap.Connection

	BeforeEach(func() {
		conn = connectAs(loadFoodMart(), "")
	})

	It("should describe catalogs with their roles and latest load time", func() {
		rows := mustPopulate(conn, KindDBSchemaCatalogs, nil)
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Get(colCatalogName).Scalar()).To(Equal("FoodMart"))
		Expect(rows[0].Get(colDescription).Scalar()).To(Equal("FoodMart sample database"))
		Expect(rows[0].Get("ROLES").Scalar()).To(Equal("California manager"))
		Expect(rows[0].Get(colDateModified).Scalar()).To(Equal(time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)))

		Expect(mustPopulate(conn, KindDBSchemaCatalogs, Restrictions{colCatalogName: {"Other"}})).To(BeEmpty())
	})

	It("should list schemata", func() {
		rows := mustPopulate(conn, KindDBSchemaSchemata, nil)
		Expect(texts(rows, colSchemaName)).To(Equal([]string{"FoodMart"}))
	})

	It("should honour the Catalog property scope", func() {
		Expect(mustPopulate(conn, KindDBSchemaSchemata, nil, PropertyCatalog, "Elsewhere")).To(BeEmpty())
		Expect(mustPopulate(conn, KindDBSchemaSchemata, nil, PropertyCatalog, "FoodMart")).To(HaveLen(1))
	})

	Describe("DBSCHEMA_COLUMNS", func() {
		It("should number columns across every cube of the traversal", func() {
			rows := mustPopulate(conn, KindDBSchemaColumns, nil)
			Expect(rows).To(HaveLen(27))
			for i, row := range rows {
				Expect(row.Get("ORDINAL_POSITION").Scalar()).To(Equal(i + 1))
			}
			tables := texts(rows, colTableName)
			Expect(tables[21]).To(Equal("Sales"))
			Expect(tables[22]).To(Equal("Warehouse"))
			Expect(rows[22].Get("COLUMN_NAME").Scalar()).To(Equal("Store:(All)!NAME"))
			Expect(texts(rows, "COLUMN_NAME")).To(ContainElement("Store:Store City!Population"))

			measure := rowBy(rows, "COLUMN_NAME", "Measures:Unit Sales")
			Expect(measure).ToNot(BeNil())
			Expect(measure.Get("COLUMN_OLAP_TYPE").Scalar()).To(Equal("MEASURE"))
			Expect(measure.Get(colDataType).Scalar()).To(Equal(5))
		})

		It("should keep ordinals when a restriction drops rows", func() {
			rows := mustPopulate(conn, KindDBSchemaColumns, Restrictions{
				colTableName:       {"Sales"},
				"COLUMN_OLAP_TYPE": {"MEASURE"},
			})
			Expect(rows).To(HaveLen(4))
			Expect(rows[0].Get("ORDINAL_POSITION").Scalar()).To(Equal(19))
		})

		It("should leave out hidden hierarchies, measures and properties", func() {
			rows := mustPopulate(conn, KindDBSchemaColumns, Restrictions{colTableName: {"Sales"}})
			Expect(rows).To(HaveLen(22))
			names := texts(rows, "COLUMN_NAME")
			Expect(names).ToNot(ContainElement("Measures:Store Cost"))
			Expect(names).ToNot(ContainElement("Store:Store City!Mayor"))
			Expect(names).ToNot(ContainElement(HavePrefix("Product Category:")))

			rows = mustPopulate(conn, KindDBSchemaColumns, Restrictions{colTableName: {"Sales"}},
				PropertyEmitInvisibleMembers, "true")
			Expect(rows).To(HaveLen(28))
			Expect(texts(rows, "COLUMN_NAME")).To(ContainElements(
				"Measures:Store Cost", "Store:Store City!Mayor", "Product Category:Category!NAME"))
		})

		It("should leave out measures the role cannot access", func() {
			conn := &deniedConnection{Connection: conn, deny: "[Measures].[Unit Sales]"}
			rows := mustPopulate(conn, KindDBSchemaColumns, Restrictions{colTableName: {"Sales"}})
			Expect(texts(rows, "COLUMN_NAME")).ToNot(ContainElement("Measures:Unit Sales"))
			Expect(rows).To(HaveLen(21))
		})

		It("should skip hidden cubes", func() {
			Expect(mustPopulate(conn, KindDBSchemaColumns, Restrictions{colTableName: {"Budget"}})).To(BeEmpty())
		})
	})

	It("should list the provider types ordered by type indicator", func() {
		rows := mustPopulate(nil, KindDBSchemaProviderTypes, nil)
		Expect(scalars(rows, colDataType)).To(Equal([]interface{}{3, 5, 6, 11, 20, 130}))
		Expect(texts(rows, "TYPE_NAME")).To(Equal([]string{"INTEGER", "DOUBLE", "CURRENCY", "BOOLEAN", "LARGE_INTEGER", "STRING"}))

		rows = mustPopulate(nil, KindDBSchemaProviderTypes, Restrictions{colDataType: {"130"}})
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Get("LITERAL_PREFIX").Scalar()).To(Equal("\""))
	})

	Describe("DBSCHEMA_TABLES", func() {
		It("should list visible cubes as tables", func() {
			rows := mustPopulate(conn, KindDBSchemaTables, Restrictions{colTableType: {"TABLE"}})
			Expect(texts(rows, colTableName)).To(Equal([]string{"Sales", "Warehouse"}))
			Expect(rows[0].Get(colDescription).Scalar()).To(Equal("Retail sales"))
			Expect(rows[1].Get(colDescription).Scalar()).To(Equal("FoodMart - Warehouse Cube"))
		})

		It("should list levels as system tables", func() {
			rows := mustPopulate(conn, KindDBSchemaTables, Restrictions{colTableType: {"SYSTEM TABLE"}})
			Expect(rows).ToNot(BeEmpty())
			Expect(texts(rows, colTableName)).To(ContainElement("Sales:Store:Store State"))
			Expect(texts(rows, colTableName)).ToNot(ContainElement("Sales:Measures:MeasuresLevel"))

			state := rowBy(rows, colTableName, "Sales:Store:Store State")
			Expect(state.Get(colDescription).Scalar()).To(Equal("FoodMart - Sales Cube - Store Hierarchy - Store State Level"))
		})

		It("should leave out the levels of hidden hierarchies", func() {
			systemTables := Restrictions{colTableType: {"SYSTEM TABLE"}}
			rows := mustPopulate(conn, KindDBSchemaTables, systemTables)
			Expect(texts(rows, colTableName)).ToNot(ContainElement("Sales:Product Category:Category"))

			rows = mustPopulate(conn, KindDBSchemaTables, systemTables, PropertyEmitInvisibleMembers, "true")
			Expect(texts(rows, colTableName)).To(ContainElement("Sales:Product Category:Category"))
		})

		It("should restrict system tables by their full name", func() {
			rows := mustPopulate(conn, KindDBSchemaTables, Restrictions{colTableName: {"Sales:Time:Quarter"}})
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Get(colTableType).Scalar()).To(Equal("SYSTEM TABLE"))
		})
	})

	It("should describe tables info for each visible cube", func() {
		rows := mustPopulate(conn, KindDBSchemaTablesInfo, nil)
		Expect(texts(rows, colTableName)).To(Equal([]string{"Sales", "Warehouse"}))
		Expect(rows[0].Get("BOOKMARKS").Scalar()).To(BeFalse())
		Expect(rows[0].Get("CARDINALITY").Scalar()).To(Equal(uint64(0)))
	})

	Describe("DBSCHEMA_SOURCE_TABLES", func() {
		var src *fakeSource

		BeforeEach(func() {
			src = &fakeSource{tables: []olap.SourceTable{
				{Catalog: "AwsDataCatalog", Schema: "foodmart", Name: "sales_fact", Type: "TABLE"},
				{Catalog: "AwsDataCatalog", Schema: "foodmart", Name: "store", Type: "TABLE"},
				{Name: "store_v", Type: "VIEW"},
			}}
			conn = connectAs(loadFoodMart(), "")
		})

		It("should be empty without a relational source", func() {
			Expect(mustPopulate(conn, KindDBSchemaSourceTables, nil)).To(BeEmpty())
		})

		It("should list the source tables and release the connection", func() {
			conn = connectAs(loadFoodMart(yamlmodel.WithSource(src)), "")
			rows := mustPopulate(conn, KindDBSchemaSourceTables, nil)
			Expect(texts(rows, colTableName)).To(Equal([]string{"sales_fact", "store", "store_v"}))
			Expect(rows[2].Get(colTableCatalog).IsNull()).To(BeTrue())
			Expect(src.acquired).To(Equal(1))
			Expect(src.released).To(Equal(1))

			rows = mustPopulate(conn, KindDBSchemaSourceTables, Restrictions{colTableName: {"store"}})
			Expect(rows).To(HaveLen(1))
			Expect(src.released).To(Equal(2))
		})

		It("should fail when the source cannot be acquired", func() {
			src.acquireErr = errors.New("connection refused")
			conn = connectAs(loadFoodMart(yamlmodel.WithSource(src)), "")
			rows, err := populate(conn, KindDBSchemaSourceTables, nil)
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
			Expect(errors.Is(err, ErrMetadataAccess)).To(BeTrue())
			Expect(rows).To(BeNil())
		})

		It("should release the connection when listing fails", func() {
			src.tablesErr = errors.New("access denied")
			conn = connectAs(loadFoodMart(yamlmodel.WithSource(src)), "")
			_, err := populate(conn, KindDBSchemaSourceTables, nil)
			Expect(err).To(HaveOccurred())
			Expect(src.acquired).To(Equal(1))
			Expect(src.released).To(Equal(1))
		})
	})
})
