package xmladiscover

import (
	"context"

	"github.com/kent-id/xmladiscover/types"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Registry", func() {
	registry := DefaultRegistry()

	It("should register every request type once, sorted by name", func() {
		kinds := registry.Kinds()
		Expect(kinds).To(HaveLen(27))
		for i := 1; i < len(kinds); i++ {
			Expect(kinds[i-1].Name() < kinds[i].Name()).To(BeTrue())
		}
	})

	It("should fail on unknown kinds", func() {
		_, err := registry.Lookup("MDSCHEMA_NOTHING")
		Expect(errors.Is(err, ErrUnknownRowsetKind)).To(BeTrue())

		_, err = registry.Lookup("mdschema_cubes")
		Expect(err).To(HaveOccurred())
	})

	It("should keep well-known schema guids", func() {
		kind, err := registry.Lookup(KindDBSchemaTablesInfo)
		Expect(err).ToNot(HaveOccurred())
		Expect(kind.SchemaGUID().String()).To(Equal("c8b522e0-5cf3-11ce-ade5-00aa0044773d"))
	})

	It("should derive stable guids for the other kinds", func() {
		other, err := NewRegistry()
		Expect(err).ToNot(HaveOccurred())
		seen := map[string]string{}
		for _, kind := range registry.Kinds() {
			again, err := other.Lookup(kind.Name())
			Expect(err).ToNot(HaveOccurred())
			Expect(again.SchemaGUID()).To(Equal(kind.SchemaGUID()))
			Expect(seen).ToNot(HaveKey(kind.SchemaGUID().String()))
			seen[kind.SchemaGUID().String()] = kind.Name()
		}
	})

	It("should collect the enumerations bound to columns", func() {
		var names []string
		for _, e := range registry.Enumerations() {
			names = append(names, e.Name)
		}
		Expect(names).To(ContainElements("AuthenticationMode", "ProviderType", "TreeOp", "PropertyType", "Visibility"))
	})

	Describe("column declarations", func() {
		for _, kind := range DefaultRegistry().Kinds() {
			kind := kind
			It("should be consistent for "+kind.Name(), func() {
				Expect(kind.Columns()).ToNot(BeEmpty())
				names := map[string]bool{}
				for _, c := range kind.Columns() {
					Expect(names).ToNot(HaveKey(c.Name))
					names[c.Name] = true
					Expect(c.Type.IsEnum()).To(Equal(c.Enumeration != nil), c.Name)
					Expect(c.ContentOnly()).To(Equal(c.Type == types.RowSet))
					if c.ContentOnly() {
						Expect(c.Restrictable).To(BeFalse())
					}
				}
				for _, c := range kind.SortColumns() {
					Expect(names).To(HaveKey(c.Name))
				}
				restrictions := kind.RestrictionColumns()
				for i := 1; i < len(restrictions); i++ {
					Expect(restrictions[i-1].RestrictionOrder <= restrictions[i].RestrictionOrder).To(BeTrue())
				}
			})
		}
	})

	It("should refuse to populate connection kinds without a connection", func() {
		kind, err := registry.Lookup(KindMDSchemaCubes)
		Expect(err).ToNot(HaveOccurred())
		Expect(kind.NeedsConnection()).To(BeTrue())
		rows, err := kind.NewPopulator(NewRequest(KindMDSchemaCubes, nil), DefaultEnvironment()).Populate(context.Background(), nil)
		Expect(rows).To(BeNil())
		Expect(errors.Is(err, ErrMetadataAccess)).To(BeTrue())
		Expect(errors.Is(err, ErrNoConnection)).To(BeTrue())
	})
})

var _ = Describe("newRowsetKind", func() {
	populate := func(context.Context, *Populator) error { return nil }

	It("should reject duplicate columns", func() {
		_, err := newRowsetKind(kindDefinition{
			name: "X",
			columns: []*Column{
				newColumn("A", types.String, ""),
				newColumn("A", types.String, ""),
			},
			populate: populate,
		})
		Expect(err).To(HaveOccurred())
	})

	It("should reject enumerated types without an enumeration", func() {
		_, err := newRowsetKind(kindDefinition{
			name:     "X",
			columns:  []*Column{newColumn("A", types.Enumeration, "", restriction)},
			populate: populate,
		})
		Expect(err).To(HaveOccurred())
	})

	It("should reject match modes on plain columns", func() {
		_, err := newRowsetKind(kindDefinition{
			name:     "X",
			columns:  []*Column{newColumn("A", types.Integer, "", bitmask)},
			populate: populate,
		})
		Expect(err).To(HaveOccurred())
	})

	It("should reject sort columns that are not declared", func() {
		_, err := newRowsetKind(kindDefinition{
			name:     "X",
			columns:  []*Column{newColumn("A", types.String, "")},
			sortBy:   []string{"B"},
			populate: populate,
		})
		Expect(err).To(HaveOccurred())
	})

	It("should reject kinds without a strategy or columns", func() {
		_, err := newRowsetKind(kindDefinition{name: "X", columns: []*Column{newColumn("A", types.String, "")}})
		Expect(err).To(HaveOccurred())
		_, err = newRowsetKind(kindDefinition{name: "X", populate: populate})
		Expect(err).To(HaveOccurred())
	})

	It("should default the restriction order to the column position", func() {
		kind, err := newRowsetKind(kindDefinition{
			name: "X",
			columns: []*Column{
				newColumn("A", types.String, "", restriction),
				newColumn("B", types.String, "", restriction, restrictionOrder(-1)),
			},
			populate: populate,
		})
		Expect(err).ToNot(HaveOccurred())
		restrictions := kind.RestrictionColumns()
		Expect(restrictions[0].Name).To(Equal("B"))
		Expect(restrictions[1].Name).To(Equal("A"))
	})
})
