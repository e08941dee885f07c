package xmladiscover

import (
	"fmt"
	"strconv"

	"github.com/kent-id/xmladiscover/olap"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

const (
	california   = "[Store].[USA].[CA]"
	usa          = "[Store].[USA]"
	allStores    = "[Store].[All Stores]"
	losAngeles   = "[Store].[USA].[CA].[Los Angeles]"
	sanFrancisco = "[Store].[USA].[CA].[San Francisco]"
	oregon       = "[Store].[USA].[OR]"
	washington   = "[Store].[USA].[WA]"
)

// treeOpEntries builds one entry per combination of the six tree operations
// applied to California.
func treeOpEntries() []table.TableEntry {
	entries := make([]table.TableEntry, 0, 64)
	for mask := 0; mask < 64; mask++ {
		var expected []string
		switch {
		case mask&treeOpAncestors != 0:
			expected = append(expected, usa, allStores)
		case mask&treeOpParent != 0:
			expected = append(expected, usa)
		}
		if mask&treeOpSiblings != 0 {
			expected = append(expected, oregon, washington)
		}
		if mask&treeOpSelf != 0 {
			expected = append(expected, california)
		}
		if mask&(treeOpChildren|treeOpDescendants) != 0 {
			expected = append(expected, losAngeles, sanFrancisco)
		}
		entries = append(entries, table.Entry(fmt.Sprintf("mask %d", mask), mask, expected))
	}
	return entries
}

var _ = Describe("MDSCHEMA_MEMBERS", func() {
	var conn olap.Connection
	sales := Restrictions{colCubeName: {"Sales"}}

	BeforeEach(func() {
		conn = connectAs(loadFoodMart(), "")
	})

	It("should list the visible members of a hierarchy", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, sales.With(map[string]string{colHierarchyUniqueName: "[Store]"}))
		Expect(rows).To(HaveLen(13))
		Expect(texts(rows, colMemberUniqueName)).ToNot(ContainElement("[Store].[Mexico]"))
		Expect(rows[0].Get(colMemberUniqueName).Scalar()).To(Equal(allStores))

		rows = mustPopulate(conn, KindMDSchemaMembers, sales.With(map[string]string{colHierarchyUniqueName: "[Store]"}),
			PropertyEmitInvisibleMembers, "true")
		Expect(rows).To(HaveLen(14))
	})

	It("should list the members of a level", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, sales.With(map[string]string{colLevelUniqueName: "[Store].[Store State]"}))
		Expect(texts(rows, colMemberName)).To(ConsistOf("CA", "OR", "WA", "DF"))
	})

	It("should filter by level number", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{
			colCubeName:            {"Sales"},
			colHierarchyUniqueName: {"[Store]"},
			colLevelNumber:         {"1"},
		})
		Expect(texts(rows, colMemberUniqueName)).To(Equal([]string{usa}))
	})

	It("should describe parents", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, sales.With(map[string]string{colMemberUniqueName: california}))
		Expect(rows).To(HaveLen(1))
		ca := rows[0]
		Expect(ca.Get("PARENT_UNIQUE_NAME").Scalar()).To(Equal(usa))
		Expect(ca.Get("PARENT_LEVEL").Scalar()).To(Equal(1))
		Expect(ca.Get("PARENT_COUNT").Scalar()).To(Equal(1))
		Expect(ca.Get("CHILDREN_CARDINALITY").Scalar()).To(Equal(2))
		Expect(ca.Get(colLevelNumber).Scalar()).To(Equal(2))
		Expect(ca.Get(colTreeOp).IsNull()).To(BeTrue())
	})

	It("should find a member in every cube that has it", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{colMemberUniqueName: {usa}})
		Expect(texts(rows, colCubeName)).To(Equal([]string{"Sales", "Warehouse"}))
	})

	It("should skip members that do not exist", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{colMemberUniqueName: {"[Store].[Atlantis]", california}})
		Expect(texts(rows, colMemberUniqueName)).To(Equal([]string{california}))
	})

	It("should hide members denied to the role", func() {
		manager := connectAs(loadFoodMart(), "California manager")
		rows := mustPopulate(manager, KindMDSchemaMembers, sales.With(map[string]string{colHierarchyUniqueName: "[Store]"}))
		Expect(rows).To(HaveLen(7))

		rows = mustPopulate(manager, KindMDSchemaMembers, Restrictions{
			colMemberUniqueName: {california},
			colTreeOp:           {"MDTREEOP_SIBLINGS"},
		})
		Expect(rows).To(BeEmpty())
	})

	It("should list measures as members", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, sales.With(map[string]string{colMemberUniqueName: "[Measures].[Profit]"}))
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Get(colExpression).Scalar()).To(Equal("[Measures].[Store Sales] - [Measures].[Store Cost]"))
	})

	table.DescribeTable("tree operations relative to a member",
		func(mask int, expected []string) {
			rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{
				colCubeName:         {"Sales"},
				colMemberUniqueName: {california},
				colTreeOp:           {strconv.Itoa(mask)},
			})
			if len(expected) == 0 {
				Expect(rows).To(BeEmpty())
				return
			}
			Expect(texts(rows, colMemberUniqueName)).To(ConsistOf(expected))
		},
		treeOpEntries()...,
	)

	It("should accept tree operations by name", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{
			colCubeName:         {"Sales"},
			colMemberUniqueName: {california},
			colTreeOp:           {"MDTREEOP_PARENT", "MDTREEOP_CHILDREN"},
		})
		Expect(texts(rows, colMemberUniqueName)).To(ConsistOf(usa, losAngeles, sanFrancisco))
	})

	It("should return nothing for an unknown tree operation", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{
			colMemberUniqueName: {california},
			colTreeOp:           {"MDTREEOP_COUSINS"},
		})
		Expect(rows).To(BeEmpty())
	})

	It("should return nothing when a tree operation is combined with a level", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{
			colMemberUniqueName: {california},
			colTreeOp:           {"MDTREEOP_CHILDREN"},
			colLevelUniqueName:  {"[Store].[Store City]"},
		})
		Expect(rows).To(BeEmpty())
	})

	It("should ignore a tree operation without a member", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{
			colCubeName:        {"Sales"},
			colLevelUniqueName: {"[Store].[Store State]"},
			colTreeOp:          {"MDTREEOP_CHILDREN"},
		})
		Expect(rows).To(HaveLen(4))
	})

	It("should walk descendants across levels", func() {
		rows := mustPopulate(conn, KindMDSchemaMembers, Restrictions{
			colCubeName:         {"Sales"},
			colMemberUniqueName: {usa},
			colTreeOp:           {"MDTREEOP_DESCENDANTS"},
		})
		Expect(texts(rows, colMemberName)).To(ConsistOf("CA", "OR", "WA", "Los Angeles", "San Francisco",
			"Portland", "Salem", "Seattle", "Tacoma"))
	})
})
