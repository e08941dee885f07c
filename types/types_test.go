package types

import (
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("WireType", func() {
	table.DescribeTable("XSD type mapping",
		func(t WireType, expected string) {
			Expect(t.XSDType()).To(Equal(expected))
		},
		table.Entry("STRING", String, "xsd:string"),
		table.Entry("STRING_ARRAY", StringArray, "xsd:string"),
		table.Entry("ARRAY", Array, "xsd:string"),
		table.Entry("ENUMERATION", Enumeration, "xsd:string"),
		table.Entry("ENUMERATION_ARRAY", EnumerationArray, "xsd:string"),
		table.Entry("ENUM_STRING", EnumString, "xsd:string"),
		table.Entry("STRING_SOMETIMES_ARRAY", StringSometimesArray, "xsd:string"),
		table.Entry("BOOLEAN", Boolean, "xsd:boolean"),
		table.Entry("INTEGER", Integer, "xsd:int"),
		table.Entry("UNSIGNED_INTEGER", UnsignedInteger, "xsd:unsignedInt"),
		table.Entry("DOUBLE", Double, "xsd:double"),
		table.Entry("DATE_TIME", DateTime, "xsd:dateTime"),
		table.Entry("SHORT", Short, "xsd:short"),
		table.Entry("UUID", UUID, "uuid"),
		table.Entry("UNSIGNED_SHORT", UnsignedShort, "xsd:unsignedShort"),
		table.Entry("LONG", Long, "xsd:long"),
		table.Entry("UNSIGNED_LONG", UnsignedLong, "xsd:unsignedLong"),
		table.Entry("ROW_SET", RowSet, ""),
	)

	It("should name every wire type", func() {
		seen := map[string]bool{}
		for _, t := range AllWireTypes() {
			Expect(t.String()).ToNot(HavePrefix("WireType("))
			Expect(seen).ToNot(HaveKey(t.String()))
			seen[t.String()] = true
		}
		Expect(seen).To(HaveLen(18))
	})

	It("should report out of range types", func() {
		Expect(WireType(99).String()).To(Equal("WireType(99)"))
		Expect(WireType(99).XSDType()).To(Equal(""))
	})

	When("classifying", func() {
		It("should flag enum types", func() {
			Expect(Enumeration.IsEnum()).To(BeTrue())
			Expect(EnumString.IsEnum()).To(BeTrue())
			Expect(String.IsEnum()).To(BeFalse())
		})
		It("should flag list types", func() {
			Expect(StringArray.IsList()).To(BeTrue())
			Expect(EnumerationArray.IsList()).To(BeTrue())
			Expect(Integer.IsList()).To(BeFalse())
		})
		It("should flag integer types", func() {
			Expect(UnsignedShort.IsInteger()).To(BeTrue())
			Expect(Double.IsInteger()).To(BeFalse())
		})
	})
})

var _ = Describe("FormatScalar", func() {
	It("should format dates without zone", func() {
		ts := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
		Expect(FormatScalar(ts)).To(Equal("2021-03-04T05:06:07"))
	})
	It("should format numbers and booleans", func() {
		Expect(FormatScalar(42)).To(Equal("42"))
		Expect(FormatScalar(int64(-7))).To(Equal("-7"))
		Expect(FormatScalar(uint32(7))).To(Equal("7"))
		Expect(FormatScalar(1.5)).To(Equal("1.5"))
		Expect(FormatScalar(true)).To(Equal("true"))
	})
	It("should format uuids through Stringer", func() {
		id := uuid.MustParse("c8b52211-5cf3-11ce-ade5-00aa0044773d")
		Expect(FormatScalar(id)).To(Equal("c8b52211-5cf3-11ce-ade5-00aa0044773d"))
	})
	It("should return empty string for nil", func() {
		Expect(FormatScalar(nil)).To(Equal(""))
	})
})
