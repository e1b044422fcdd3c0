package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/tikodea/dashboard-go/pkg/analysis"
	"github.com/tikodea/dashboard-go/pkg/format"
	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
)

const noInsights = "- No specific insights extracted"

// GeneratePlan renders the condensed action-plan document stamped with the
// current date. The date is the function's only non-determinism; use
// GeneratePlanAt for reproducible output.
func GeneratePlan(video *backend.Video) string {
	return GeneratePlanAt(video, time.Now())
}

// GeneratePlanAt renders the action plan stamped with the given time.
//
// The insight list draws, in order, on the product analysis's
// problem_solved and solution_approach fields and the knowledge analysis's
// actionable_insights field (one bullet per element when it is a sequence).
func GeneratePlanAt(video *backend.Video, now time.Time) string {
	insights := collectInsights(video)
	insightBlock := noInsights
	if len(insights) > 0 {
		insightBlock = strings.Join(insights, "\n")
	}

	productSummary := payloadSummary(video.ProductAnalysis, "No product analysis available")
	knowledgeSummary := payloadSummary(video.KnowledgeAnalysis, "See full analysis in dashboard")

	return fmt.Sprintf(`# Implementation Plan

## Source
- TikTok: %s
- Context: %s

## Key Insights

%s

## Product Summary

%s

## Suggested Next Steps

1. Research market and competition
2. Define MVP scope
3. Create technical specification
4. Build prototype

## Notes

%s

---
*Generated from Tikodea on %s*
`,
		video.TikTokURL,
		stringOr(video.Context, "General research"),
		insightBlock,
		productSummary,
		knowledgeSummary,
		format.DateStamp(now),
	)
}

// PlanFilename builds the download filename for the action plan.
func PlanFilename(video *backend.Video) string {
	return fmt.Sprintf("plan-%d.md", video.ID)
}

func collectInsights(video *backend.Video) []string {
	var insights []string

	if v, ok := video.ProductAnalysis.Get("problem_solved"); ok && v.Text() != "" {
		insights = append(insights, "- Problem: "+v.Text())
	}
	if v, ok := video.ProductAnalysis.Get("solution_approach"); ok && v.Text() != "" {
		insights = append(insights, "- Solution: "+v.Text())
	}
	if v, ok := video.KnowledgeAnalysis.Get("actionable_insights"); ok {
		if v.Kind == analysis.KindSequence {
			for _, elem := range v.Seq {
				insights = append(insights, "- "+elem.Text())
			}
		} else if v.Text() != "" {
			insights = append(insights, "- "+v.Text())
		}
	}

	return insights
}

func payloadSummary(payload *analysis.Payload, fallback string) string {
	if summary, ok := payload.Summary(); ok {
		return summary
	}
	return fallback
}
