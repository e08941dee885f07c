package yamlmodel

import (
	"context"
	"strings"

	"github.com/kent-id/xmladiscover/olap"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func salesCube(conn olap.Connection) olap.Cube {
	Expect(conn.SetCatalog("FoodMart")).To(Succeed())
	catalogs, err := conn.Catalogs()
	Expect(err).ToNot(HaveOccurred())
	schemas, err := catalogs[0].Schemas()
	Expect(err).ToNot(HaveOccurred())
	cubes, err := schemas[0].Cubes()
	Expect(err).ToNot(HaveOccurred())
	Expect(cubes[0].Name()).To(Equal("Sales"))
	return cubes[0]
}

var _ = Describe("Model", func() {
	var (
		ctx   context.Context
		model *Model
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		model, err = LoadFile("../../testdata/foodmart.yaml")
		Expect(err).ToNot(HaveOccurred())
	})

	When("loading", func() {
		It("should reject unknown fields", func() {
			_, err := Load(strings.NewReader("catalogs:\n  - name: A\n    colour: red\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should reject unknown level types", func() {
			doc := `
catalogs:
  - name: A
    schemas:
      - name: A
        cubes:
          - name: C
            dimensions:
              - name: D
                hierarchies:
                  - levels:
                      - name: L
                        type: lunar
`
			_, err := Load(strings.NewReader(doc))
			Expect(err).To(MatchError(ContainSubstring("unknown type")))
		})

		It("should reject members deeper than the levels", func() {
			doc := `
catalogs:
  - name: A
    schemas:
      - name: A
        cubes:
          - name: C
            dimensions:
              - name: D
                hierarchies:
                  - levels:
                      - name: L
                    members:
                      - name: x
                        children:
                          - name: y
`
			_, err := Load(strings.NewReader(doc))
			Expect(err).To(MatchError(ContainSubstring("deeper")))
		})

		It("should fail on a missing file", func() {
			_, err := LoadFile("does-not-exist.yaml")
			Expect(err).To(HaveOccurred())
		})
	})

	When("connecting", func() {
		It("should reject unknown roles and catalogs", func() {
			_, err := model.Connect(ctx, olap.ConnectionSpec{Role: "nobody"})
			Expect(err).To(HaveOccurred())
			_, err = model.Connect(ctx, olap.ConnectionSpec{Catalog: "Nowhere"})
			Expect(err).To(HaveOccurred())
		})

		It("should gate schemas on the current catalog", func() {
			conn, err := model.Connect(ctx, olap.ConnectionSpec{})
			Expect(err).ToNot(HaveOccurred())
			catalogs, err := conn.Catalogs()
			Expect(err).ToNot(HaveOccurred())
			Expect(catalogs).To(HaveLen(1))
			_, err = catalogs[0].Schemas()
			Expect(err).To(HaveOccurred())

			Expect(conn.SetCatalog("FoodMart")).To(Succeed())
			schemas, err := catalogs[0].Schemas()
			Expect(err).ToNot(HaveOccurred())
			Expect(schemas).To(HaveLen(1))
			Expect(schemas[0].LoadTime().Year()).To(Equal(2021))
		})

		It("should list roles on catalogs", func() {
			conn, _ := model.Connect(ctx, olap.ConnectionSpec{})
			catalogs, _ := conn.Catalogs()
			Expect(catalogs[0].RoleNames()).To(Equal([]string{"California manager"}))
			Expect(catalogs[0].SchemaDocument()).To(ContainSubstring("FoodMart"))
		})

		It("should hide catalogs a role may not see", func() {
			conn, err := model.Connect(ctx, olap.ConnectionSpec{Role: "Outsider"})
			Expect(err).ToNot(HaveOccurred())
			catalogs, err := conn.Catalogs()
			Expect(err).ToNot(HaveOccurred())
			Expect(catalogs).To(BeEmpty())
		})

		It("should deny elements by unique name prefix", func() {
			conn, _ := model.Connect(ctx, olap.ConnectionSpec{Role: "California manager"})
			cube := salesCube(conn)
			or, _ := cube.LookupMember("[Store].[USA].[OR].[Salem]")
			ca, _ := cube.LookupMember("[Store].[USA].[CA]")
			Expect(conn.CanAccess(or)).To(BeFalse())
			Expect(conn.CanAccess(ca)).To(BeTrue())
		})

		It("should fail after close", func() {
			conn, _ := model.Connect(ctx, olap.ConnectionSpec{})
			Expect(conn.Close()).To(Succeed())
			_, err := conn.Catalogs()
			Expect(err).To(HaveOccurred())
		})
	})

	When("navigating the Sales cube", func() {
		var cube olap.Cube

		BeforeEach(func() {
			conn, err := model.Connect(ctx, olap.ConnectionSpec{})
			Expect(err).ToNot(HaveOccurred())
			cube = salesCube(conn)
		})

		It("should put the measures dimension first", func() {
			dimensions, _ := cube.Dimensions()
			names := []string{}
			for _, d := range dimensions {
				names = append(names, d.UniqueName())
			}
			Expect(names).To(Equal([]string{"[Measures]", "[Store]", "[Time]", "[Product]"}))
			Expect(dimensions[0].Type()).To(Equal(olap.DimensionMeasure))
			Expect(dimensions[2].Type()).To(Equal(olap.DimensionTime))
		})

		It("should name hierarchies and levels", func() {
			dimensions, _ := cube.Dimensions()
			hierarchies, _ := dimensions[3].Hierarchies()
			Expect(hierarchies[0].UniqueName()).To(Equal("[Product]"))
			Expect(hierarchies[1].UniqueName()).To(Equal("[Product].[Product Category]"))
			Expect(hierarchies[1].Visible()).To(BeFalse())

			levels, _ := hierarchies[0].Levels()
			Expect(levels[0].UniqueName()).To(Equal("[Product].[(All)]"))
			Expect(levels[0].Type().IsAll()).To(BeTrue())
			Expect(levels[1].UniqueName()).To(Equal("[Product].[Product Family]"))
			Expect(levels[1].Depth()).To(Equal(1))
		})

		It("should link members to their parents and children", func() {
			ca, err := cube.LookupMember("[Store].[USA].[CA]")
			Expect(err).ToNot(HaveOccurred())
			Expect(ca).ToNot(BeNil())
			Expect(ca.Depth()).To(Equal(2))
			Expect(ca.Level().Name()).To(Equal("Store State"))
			Expect(ca.Parent().UniqueName()).To(Equal("[Store].[USA]"))
			Expect(ca.Parent().Parent().UniqueName()).To(Equal("[Store].[All Stores]"))
			Expect(ca.Parent().Parent().Type()).To(Equal(olap.MemberAll))
			Expect(ca.Parent().Parent().Parent()).To(BeNil())
			Expect(ca.ChildCount()).To(Equal(2))
			Expect(ca.Ordinal()).To(Equal(2))
		})

		It("should return nil for unknown names", func() {
			m, err := cube.LookupMember("[Store].[Atlantis]")
			Expect(err).ToNot(HaveOccurred())
			Expect(m).To(BeNil())
			l, err := cube.LookupLevel("[Store].[Planet]")
			Expect(err).ToNot(HaveOccurred())
			Expect(l).To(BeNil())
		})

		It("should default the hierarchy without all member to its first root", func() {
			dimensions, _ := cube.Dimensions()
			hierarchies, _ := dimensions[2].Hierarchies()
			Expect(hierarchies[0].HasAll()).To(BeFalse())
			m, _ := hierarchies[0].DefaultMember()
			Expect(m.UniqueName()).To(Equal("[Time].[1997]"))
			Expect(hierarchies[0].Cardinality()).To(Equal(5))
		})

		It("should expose measures as members", func() {
			measures, _ := cube.Measures()
			Expect(measures).To(HaveLen(5))
			profit := measures[4]
			Expect(profit.Calculated()).To(BeTrue())
			Expect(profit.Type()).To(Equal(olap.MemberFormula))
			Expect(profit.Aggregator()).To(Equal(olap.AggregatorCalculated))
			Expect(measures[0].Aggregator()).To(Equal(olap.AggregatorSum))
			Expect(measures[0].Level().UniqueName()).To(Equal("[Measures].[MeasuresLevel]"))

			m, _ := cube.LookupMember("[Measures].[Unit Sales]")
			Expect(m).To(BeAssignableToTypeOf(measures[0]))
		})

		It("should parse level properties", func() {
			l, _ := cube.LookupLevel("[Store].[Store City]")
			props := l.Properties()
			Expect(props).To(HaveLen(2))
			Expect(props[0].DataType()).To(Equal(olap.PropertyInteger))
			Expect(props[1].Visible()).To(BeFalse())
		})
	})
})
