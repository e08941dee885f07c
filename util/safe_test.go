package util

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Safe", func() {
	When("SafeString is called", func() {
		It("returns empty string if nil", func() {
			out := SafeString(nil)
			Expect(out).To(Equal(""))
		})

		It("returns original string if not nil", func() {
			in := "hello"
			out := SafeString(&in)
			Expect(out).To(Equal("hello"))
		})
	})

	When("RefString is called", func() {
		It("returns a reference to a copy", func() {
			in := "catalog"
			out := RefString(in)
			in = "changed"
			Expect(*out).To(Equal("catalog"))
		})
	})

	When("RefInt32 is called", func() {
		It("returns a reference to the value", func() {
			out := RefInt32(50)
			Expect(*out).To(Equal(int32(50)))
		})
	})
})
