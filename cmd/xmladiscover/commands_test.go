package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/kent-id/xmladiscover"
	"github.com/kent-id/xmladiscover/config"
	"github.com/kent-id/xmladiscover/types"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("buildRequest", func() {
	It("should collect repeated restrictions as alternatives", func() {
		req, err := buildRequest("MDSCHEMA_CUBES",
			[]string{"CUBE_NAME=Sales", "CUBE_NAME=Warehouse", "CATALOG_NAME=FoodMart"},
			[]string{"Deep=true", "Content=Data"})
		Expect(err).ToNot(HaveOccurred())
		Expect(req.RequestType).To(Equal("MDSCHEMA_CUBES"))
		Expect(req.Restrictions["CUBE_NAME"]).To(Equal([]string{"Sales", "Warehouse"}))
		Expect(req.Restrictions.Get("CATALOG_NAME")).To(Equal("FoodMart"))
		Expect(req.Properties.Bool(xmladiscover.PropertyDeep)).To(BeTrue())
	})

	It("should keep '=' inside values", func() {
		req, err := buildRequest("MDSCHEMA_MEMBERS", []string{"MEMBER_UNIQUE_NAME=[a]=[b]"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(req.Restrictions.Get("MEMBER_UNIQUE_NAME")).To(Equal("[a]=[b]"))
	})

	table.DescribeTable("malformed pairs",
		func(arg string) {
			_, err := buildRequest("DISCOVER_KEYWORDS", []string{arg}, nil)
			Expect(err).To(HaveOccurred())
		},
		table.Entry("no separator", "CUBE_NAME"),
		table.Entry("empty name", "=Sales"),
	)
})

var _ = Describe("output", func() {
	It("should print one line per kind", func() {
		var buf bytes.Buffer
		registry := xmladiscover.DefaultRegistry()
		Expect(writeKinds(&buf, registry)).To(Succeed())
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(len(registry.Kinds()) + 2))
		Expect(buf.String()).To(ContainSubstring("MDSCHEMA_MEMBERS"))
	})

	It("should print flattened rows as a table", func() {
		var buf bytes.Buffer
		m := &xmladiscover.MetadataRowset{
			Headers: []string{"KEYWORD", "RANK"},
			Types:   []types.WireType{types.String, types.Integer},
			Rows:    [][]interface{}{{"SELECT", 1}, {"FROM", nil}},
		}
		Expect(writeTable(&buf, m)).To(Succeed())
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(HavePrefix("KEYWORD"))
		Expect(lines[2]).To(ContainSubstring("SELECT"))
		Expect(lines[2]).To(ContainSubstring("1"))
	})

	It("should stream arrow records", func() {
		var buf bytes.Buffer
		m := &xmladiscover.MetadataRowset{
			Headers: []string{"KEYWORD"},
			Types:   []types.WireType{types.String},
			Rows:    [][]interface{}{{"SELECT"}},
		}
		Expect(writeArrow(&buf, m)).To(Succeed())
		Expect(buf.Len()).To(BeNumerically(">", 0))
	})
})

var _ = Describe("newDiscoverer", func() {
	It("should serve server-level kinds without a model", func() {
		d, closeSource, err := newDiscoverer(context.Background(), config.Default())
		Expect(err).ToNot(HaveOccurred())
		defer closeSource()

		rs, err := d.Discover(context.Background(), xmladiscover.NewRequest("DISCOVER_DATASOURCES", nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(rs.Rows).To(HaveLen(1))

		_, err = d.Discover(context.Background(), xmladiscover.NewRequest("MDSCHEMA_CUBES", nil))
		Expect(err).To(HaveOccurred())
	})

	It("should load the configured model", func() {
		cfg := config.Default()
		cfg.Model = "../../testdata/foodmart.yaml"
		d, closeSource, err := newDiscoverer(context.Background(), cfg)
		Expect(err).ToNot(HaveOccurred())
		defer closeSource()

		req := xmladiscover.NewRequest("MDSCHEMA_CUBES", xmladiscover.Restrictions{"CUBE_NAME": {"Sales"}})
		rs, err := d.Discover(context.Background(), req)
		Expect(err).ToNot(HaveOccurred())
		Expect(rs.Rows).To(HaveLen(1))
	})

	It("should fail on a missing model file", func() {
		cfg := config.Default()
		cfg.Model = "does-not-exist.yaml"
		_, _, err := newDiscoverer(context.Background(), cfg)
		Expect(err).To(HaveOccurred())
	})
})
