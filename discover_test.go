package xmladiscover

import (
	"strings"

	"github.com/kent-id/xmladiscover/olap/yamlmodel"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("DISCOVER rowsets", func() {
	Describe("DISCOVER_DATASOURCES", func() {
		It("should describe the server without a connection", func() {
			rows := mustPopulate(nil, KindDiscoverDatasources, nil)
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Get("DataSourceName").Scalar()).To(Equal("xmladiscover"))
			Expect(rows[0].Get("ProviderType").Text(",")).To(Equal("MDP"))
			Expect(rows[0].Get("AuthenticationMode").Scalar()).To(Equal("Unauthenticated"))
		})

		It("should filter on the provider type", func() {
			Expect(mustPopulate(nil, KindDiscoverDatasources, Restrictions{"ProviderType": {"TDP"}})).To(BeEmpty())
			Expect(mustPopulate(nil, KindDiscoverDatasources, Restrictions{"ProviderType": {"TDP", "MDP"}})).To(HaveLen(1))
		})
	})

	Describe("DISCOVER_SCHEMA_ROWSETS", func() {
		It("should list every registered kind in case-insensitive name order", func() {
			rows := mustPopulate(nil, KindDiscoverSchemaRowsets, nil)
			Expect(rows).To(HaveLen(len(DefaultRegistry().Kinds())))
			names := texts(rows, "SchemaName")
			for i := 1; i < len(names); i++ {
				Expect(strings.ToLower(names[i-1]) < strings.ToLower(names[i])).To(BeTrue())
			}
		})

		It("should report restrictions in restriction order with a matching mask", func() {
			rows := mustPopulate(nil, KindDiscoverSchemaRowsets, Restrictions{"SchemaName": {KindMDSchemaMembers}})
			Expect(rows).To(HaveLen(1))
			kind, _ := DefaultRegistry().Lookup(KindMDSchemaMembers)

			restrictions := rows[0].Get("Restrictions").List()
			Expect(restrictions).To(HaveLen(len(kind.RestrictionColumns())))
			Expect(rows[0].Get("Restrictions").Text(",")).To(ContainSubstring(colTreeOp))
			first := restrictions[0].(RestrictionInfo)
			Expect(first).To(Equal(RestrictionInfo{Name: colCatalogName, Type: "xsd:string"}))
			Expect(rows[0].Get("RestrictionsMask").Scalar()).To(Equal(uint64(1)<<uint(len(restrictions)) - 1))
			Expect(rows[0].Get("SchemaGuid").Scalar()).To(Equal(kind.SchemaGUID()))
		})
	})

	Describe("DISCOVER_ENUMERATORS", func() {
		It("should list numeric constants with their values", func() {
			rows := mustPopulate(nil, KindDiscoverEnumerators, Restrictions{"EnumName": {"TreeOp"}})
			Expect(texts(rows, "ElementValue")).To(Equal([]string{"1", "2", "4", "8", "16", "32"}))
			Expect(texts(rows, "EnumType")).To(ConsistOf("int", "int", "int", "int", "int", "int"))
		})

		It("should leave the value of named constants null", func() {
			rows := mustPopulate(nil, KindDiscoverEnumerators, Restrictions{"EnumName": {"ProviderType"}})
			Expect(texts(rows, "ElementName")).To(Equal([]string{"TDP", "MDP", "DMP"}))
			for _, row := range rows {
				Expect(row.Get("ElementValue").IsNull()).To(BeTrue())
			}
		})
	})

	Describe("DISCOVER_PROPERTIES", func() {
		It("should report defaults and echo request values", func() {
			rows := mustPopulate(nil, KindDiscoverProperties, nil, PropertyCatalog, "FoodMart")
			Expect(rows).To(HaveLen(len(DefaultPropertyDefinitions())))
			for _, row := range rows {
				Expect(row.Get("IsRequired").Scalar()).To(BeFalse())
			}
			Expect(rowBy(rows, "PropertyName", PropertyCatalog).Get("Value").Scalar()).To(Equal("FoodMart"))
			Expect(rowBy(rows, "PropertyName", PropertyDeep).Get("Value").Scalar()).To(Equal("false"))
			Expect(rowBy(rows, "PropertyName", "Cube").Get("Value").IsNull()).To(BeTrue())
		})

		It("should restrict by property name", func() {
			rows := mustPopulate(nil, KindDiscoverProperties, Restrictions{"PropertyName": {PropertyContent, PropertyFormat}})
			Expect(texts(rows, "PropertyName")).To(ConsistOf(PropertyContent, PropertyFormat))
		})
	})

	Describe("DISCOVER_KEYWORDS", func() {
		It("should list the reserved words", func() {
			rows := mustPopulate(nil, KindDiscoverKeywords, nil)
			Expect(rows).To(HaveLen(len(DefaultKeywords())))
			Expect(mustPopulate(nil, KindDiscoverKeywords, Restrictions{"Keyword": {"CrossJoin"}})).To(HaveLen(1))
		})
	})

	Describe("DISCOVER_LITERALS", func() {
		It("should list the literals with their prefix", func() {
			rows := mustPopulate(nil, KindDiscoverLiterals, nil)
			Expect(rows).To(HaveLen(17))
			for _, name := range texts(rows, "LiteralName") {
				Expect(strings.HasPrefix(name, "DBLITERAL_")).To(BeTrue())
			}
			quote := rowBy(rows, "LiteralName", "DBLITERAL_QUOTE")
			Expect(quote.Get("LiteralValue").Scalar()).To(Equal("["))
			Expect(quote.Get("LiteralNameEnumValue").Scalar()).To(Equal(15))
			Expect(rowBy(rows, "LiteralName", "DBLITERAL_CUBE_NAME").Get("LiteralValue").IsNull()).To(BeTrue())
		})
	})

	Describe("DISCOVER_XML_METADATA", func() {
		It("should return the model document per catalog", func() {
			conn := connectAs(loadFoodMart(), "")
			rows := mustPopulate(conn, KindDiscoverXMLMetadata, nil)
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Get("DatabaseID").Scalar()).To(Equal("FoodMart"))
			Expect(rows[0].Get("METADATA").Text("")).To(ContainSubstring("name: FoodMart"))

			Expect(mustPopulate(conn, KindDiscoverXMLMetadata, Restrictions{"DatabaseID": {"Other"}})).To(BeEmpty())
		})

		It("should return a single catalog when several match", func() {
			model, err := yamlmodel.Load(strings.NewReader("catalogs:\n  - name: A\n  - name: B\n"))
			Expect(err).ToNot(HaveOccurred())
			conn := connectAs(model, "")

			rows := mustPopulate(conn, KindDiscoverXMLMetadata, nil)
			Expect(texts(rows, "DatabaseID")).To(Equal([]string{"A"}))

			rows = mustPopulate(conn, KindDiscoverXMLMetadata, Restrictions{"DatabaseID": {"B"}})
			Expect(texts(rows, "DatabaseID")).To(Equal([]string{"B"}))
		})
	})
})
