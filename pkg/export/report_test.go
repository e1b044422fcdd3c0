package export_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tikodea/dashboard-go/pkg/analysis"
	"github.com/tikodea/dashboard-go/pkg/export"
	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
)

func mustPayload(raw string) *analysis.Payload {
	var payload analysis.Payload
	Expect(json.Unmarshal([]byte(raw), &payload)).To(Succeed())
	return &payload
}

func baseVideo() *backend.Video {
	return &backend.Video{
		ID:         42,
		TikTokURL:  "https://tiktok.com/v/42",
		Title:      backend.String("My Startup Idea"),
		Creator:    backend.String("founderguy"),
		Hashtags:   []string{"startup", "ai"},
		ManualTags: []string{"research"},
		ViewCount:  backend.Int64(1234567),
		Status:     backend.StatusCompleted,
		CreatedAt:  "2024-03-14T10:00:00Z",
		UpdatedAt:  "2024-03-15T12:00:00Z",
	}
}

var _ = Describe("GenerateReport", func() {
	It("renders the fixed header, metadata and transcript blocks", func() {
		video := baseVideo()
		video.ProcessedAt = backend.String("2024-03-15T12:00:00Z")
		video.Context = backend.String("competitor research")
		video.Transcript = backend.String("hello world transcript")

		report := export.GenerateReport(video)

		Expect(report).To(HavePrefix("# My Startup Idea\n"))
		Expect(report).To(ContainSubstring("**Source:** https://tiktok.com/v/42"))
		Expect(report).To(ContainSubstring("**Creator:** @founderguy"))
		Expect(report).To(ContainSubstring("**Processed:** 2024-03-15T12:00:00Z"))
		Expect(report).To(ContainSubstring("**Context:** competitor research"))
		Expect(report).To(ContainSubstring("- Views: 1,234,567"))
		Expect(report).To(ContainSubstring("- Likes: N/A"))
		Expect(report).To(ContainSubstring("- Hashtags: #startup #ai"))
		Expect(report).To(ContainSubstring("hello world transcript"))
	})

	It("falls back for missing title, creator, transcript and hashtags", func() {
		video := baseVideo()
		video.Title = nil
		video.Creator = nil
		video.Hashtags = nil

		report := export.GenerateReport(video)

		Expect(report).To(HavePrefix("# Untitled Video\n"))
		Expect(report).To(ContainSubstring("**Creator:** @Unknown"))
		Expect(report).To(ContainSubstring("- Hashtags: None"))
		Expect(report).To(ContainSubstring("_No transcript available_"))
	})

	It("omits the context line entirely when absent", func() {
		report := export.GenerateReport(baseVideo())
		Expect(report).NotTo(ContainSubstring("**Context:**"))
	})

	It("uses created_at when processed_at is absent", func() {
		report := export.GenerateReport(baseVideo())
		Expect(report).To(ContainSubstring("**Processed:** 2024-03-14T10:00:00Z"))
	})

	It("includes a section only for present, non-errored analyses", func() {
		video := baseVideo()
		video.InvestmentAnalysis = mustPayload(`{"summary": "worth a look", "score": 8}`)
		video.KnowledgeAnalysis = mustPayload(`{"error": "model timeout"}`)

		report := export.GenerateReport(video)

		Expect(report).To(ContainSubstring("## Investment Analysis"))
		Expect(report).To(ContainSubstring("**Summary:** worth a look"))
		Expect(report).NotTo(ContainSubstring("## Knowledge Analysis"))
		Expect(report).NotTo(ContainSubstring("## Product Analysis"))
		Expect(report).NotTo(ContainSubstring("## Content Analysis"))
	})

	It("keeps analysis sections in fixed order regardless of which exist", func() {
		video := baseVideo()
		video.KnowledgeAnalysis = mustPayload(`{"summary": "k"}`)
		video.ProductAnalysis = mustPayload(`{"summary": "p"}`)

		report := export.GenerateReport(video)

		product := strings.Index(report, "## Product Analysis")
		knowledge := strings.Index(report, "## Knowledge Analysis")
		Expect(product).To(BeNumerically(">", 0))
		Expect(knowledge).To(BeNumerically(">", product))
	})

	It("dumps the payload as ordered pretty JSON", func() {
		video := baseVideo()
		video.ContentAnalysis = mustPayload(`{"summary": "s", "hook": "strong", "score": 9}`)

		report := export.GenerateReport(video)

		Expect(report).To(ContainSubstring("```json\n{\n  \"summary\": \"s\",\n  \"hook\": \"strong\",\n  \"score\": 9\n}\n```"))
	})

	It("substitutes N/A for a missing summary", func() {
		video := baseVideo()
		video.ProductAnalysis = mustPayload(`{"target_market": "developers"}`)

		report := export.GenerateReport(video)
		Expect(report).To(ContainSubstring("**Summary:** N/A"))
	})

	It("is deterministic", func() {
		video := baseVideo()
		video.InvestmentAnalysis = mustPayload(`{"summary": "s", "points": ["a", "b"]}`)

		Expect(export.GenerateReport(video)).To(Equal(export.GenerateReport(video)))
	})
})

var _ = Describe("ReportFilename", func() {
	It("slugs the title into the filename", func() {
		Expect(export.ReportFilename(baseVideo())).To(Equal("tikodea-42-My-Startup-Idea.md"))
	})

	It("truncates long titles to 30 characters", func() {
		video := baseVideo()
		video.Title = backend.String(strings.Repeat("a", 40))

		Expect(export.ReportFilename(video)).To(Equal("tikodea-42-" + strings.Repeat("a", 30) + ".md"))
	})

	It("falls back to export when there is no title", func() {
		video := baseVideo()
		video.Title = nil

		Expect(export.ReportFilename(video)).To(Equal("tikodea-42-export.md"))
	})
})
