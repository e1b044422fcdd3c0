package format_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tikodea/dashboard-go/pkg/format"
)

func int64p(v int64) *int64 { return &v }

var _ = Describe("Count", func() {
	It("groups digits with commas", func() {
		Expect(format.Count(int64p(1234567))).To(Equal("1,234,567"))
		Expect(format.Count(int64p(1000))).To(Equal("1,000"))
		Expect(format.Count(int64p(999))).To(Equal("999"))
		Expect(format.Count(int64p(0))).To(Equal("0"))
	})

	It("returns N/A for an absent count", func() {
		Expect(format.Count(nil)).To(Equal("N/A"))
	})
})

var _ = Describe("CompactCount", func() {
	It("formats millions", func() {
		Expect(format.CompactCount(int64p(1500000))).To(Equal("1.5M"))
	})

	It("formats thousands", func() {
		Expect(format.CompactCount(int64p(1500))).To(Equal("1.5K"))
	})

	It("returns small numbers as-is", func() {
		Expect(format.CompactCount(int64p(999))).To(Equal("999"))
	})

	It("returns a dash for an absent count", func() {
		Expect(format.CompactCount(nil)).To(Equal("-"))
	})
})

var _ = Describe("Date", func() {
	It("formats an ISO timestamp", func() {
		Expect(format.Date("2024-03-15T12:00:00Z")).To(Equal("Mar 15, 2024"))
	})

	It("accepts timestamps without a timezone", func() {
		Expect(format.Date("2024-03-15T12:00:00.123456")).To(Equal("Mar 15, 2024"))
	})

	It("returns unparseable strings unchanged", func() {
		Expect(format.Date("soon")).To(Equal("soon"))
	})
})

var _ = Describe("DateStamp", func() {
	It("renders YYYY-MM-DD", func() {
		t := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)
		Expect(format.DateStamp(t)).To(Equal("2024-03-05"))
	})
})
