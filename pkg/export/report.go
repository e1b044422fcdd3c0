// Package export produces the two deterministic text documents derived
// from a video record: the full Markdown research report and the condensed
// action plan. Both generators are pure; delivery (clipboard, file) is the
// caller's concern via the Sink interface.
package export

import (
	"fmt"
	"strings"

	"github.com/tikodea/dashboard-go/pkg/format"
	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
)

const noTranscript = "_No transcript available_"

// GenerateReport renders the full Markdown report for a video.
//
// Sections appear in fixed order: heading, source/creator/processed header
// (context line only when present), metadata, transcript, then one section
// per analysis kind (investment, product, content, knowledge) for each
// analysis that is present and not error-marked. Absent or errored analyses
// contribute no section at all.
func GenerateReport(video *backend.Video) string {
	sections := []string{
		"# " + stringOr(video.Title, "Untitled Video"),
		"",
		"**Source:** " + video.TikTokURL,
		"**Creator:** @" + stringOr(video.Creator, "Unknown"),
		"**Processed:** " + processedAt(video),
	}
	if video.Context != nil && *video.Context != "" {
		sections = append(sections, "**Context:** "+*video.Context)
	}

	sections = append(sections,
		"",
		"## Metadata",
		"",
		"- Views: "+format.Count(video.ViewCount),
		"- Likes: "+format.Count(video.LikeCount),
		"- Hashtags: "+hashtagLine(video.Hashtags),
		"",
		"## Transcript",
		"",
		stringOr(video.Transcript, noTranscript),
		"",
	)

	for _, kind := range backend.AnalysisKinds {
		payload := video.Analysis(kind)
		if payload == nil || payload.HasError() {
			continue
		}
		summary, ok := payload.Summary()
		if !ok {
			summary = "N/A"
		}
		sections = append(sections,
			"## "+kind.Title(),
			"",
			"**Summary:** "+summary,
			"",
			"```json",
			payload.MarshalIndent(),
			"```",
			"",
		)
	}

	return strings.Join(sections, "\n")
}

// ReportFilename builds the download filename for the report, slugging the
// first 30 characters of the title.
func ReportFilename(video *backend.Video) string {
	slug := "export"
	if video.Title != nil && *video.Title != "" {
		title := *video.Title
		if len(title) > 30 {
			title = title[:30]
		}
		slug = slugify(title)
	}
	return fmt.Sprintf("tikodea-%d-%s.md", video.ID, slug)
}

func slugify(s string) string {
	out := []byte(s)
	for i := 0; i < len(out); i++ {
		c := out[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum {
			out[i] = '-'
		}
	}
	return string(out)
}

func processedAt(video *backend.Video) string {
	if video.ProcessedAt != nil && *video.ProcessedAt != "" {
		return *video.ProcessedAt
	}
	return video.CreatedAt
}

func hashtagLine(hashtags []string) string {
	if len(hashtags) == 0 {
		return "None"
	}
	tags := make([]string, len(hashtags))
	for i, h := range hashtags {
		tags[i] = "#" + h
	}
	return strings.Join(tags, " ")
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
