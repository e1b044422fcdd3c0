package backend

import (
	"github.com/tikodea/dashboard-go/pkg/analysis"
)

// VideoStatus is the backend-owned processing state of a video.
type VideoStatus string

const (
	StatusPending    VideoStatus = "pending"
	StatusProcessing VideoStatus = "processing"
	StatusCompleted  VideoStatus = "completed"
	StatusFailed     VideoStatus = "failed"
)

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AnalysisKind identifies one of the four independent analysis passes the
// backend runs over a video.
type AnalysisKind string

const (
	AnalysisInvestment AnalysisKind = "investment"
	AnalysisProduct    AnalysisKind = "product"
	AnalysisContent    AnalysisKind = "content"
	AnalysisKnowledge  AnalysisKind = "knowledge"
)

// AnalysisKinds lists every analysis kind in the fixed display and export
// order: investment, product, content, knowledge.
var AnalysisKinds = []AnalysisKind{
	AnalysisInvestment,
	AnalysisProduct,
	AnalysisContent,
	AnalysisKnowledge,
}

// Title returns the section heading for the analysis kind, e.g.
// "Investment Analysis".
func (k AnalysisKind) Title() string {
	switch k {
	case AnalysisInvestment:
		return "Investment Analysis"
	case AnalysisProduct:
		return "Product Analysis"
	case AnalysisContent:
		return "Content Analysis"
	case AnalysisKnowledge:
		return "Knowledge Analysis"
	}
	return string(k)
}

// Video represents one analyzed TikTok video as served by the backend.
//
// Only IsFavorite and ManualTags are client-mutable (via SetFavorite and
// SetTags); everything else is owned by the backend pipeline. Optional
// fields use pointers so "absent" is distinguishable from the zero value.
// Timestamps are kept as the backend's ISO 8601 strings.
type Video struct {
	ID        int64   `json:"id"`
	TikTokURL string  `json:"tiktok_url"`
	Context   *string `json:"context"`

	Title       *string `json:"title"`
	Description *string `json:"description"`
	Creator     *string `json:"creator"`

	Hashtags   []string `json:"hashtags"`
	ManualTags []string `json:"manual_tags"`

	ViewCount *int64 `json:"view_count"`
	LikeCount *int64 `json:"like_count"`

	ThumbnailURL *string `json:"thumbnail_url"`
	Transcript   *string `json:"transcript"`

	InvestmentAnalysis *analysis.Payload `json:"investment_analysis"`
	ProductAnalysis    *analysis.Payload `json:"product_analysis"`
	ContentAnalysis    *analysis.Payload `json:"content_analysis"`
	KnowledgeAnalysis  *analysis.Payload `json:"knowledge_analysis"`

	Status       VideoStatus `json:"status"`
	ErrorMessage *string     `json:"error_message"`
	IsFavorite   bool        `json:"is_favorite"`

	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	ProcessedAt *string `json:"processed_at"`
}

// Analysis returns the payload for the given kind, or nil when that
// analysis has not been produced.
func (v *Video) Analysis(kind AnalysisKind) *analysis.Payload {
	switch kind {
	case AnalysisInvestment:
		return v.InvestmentAnalysis
	case AnalysisProduct:
		return v.ProductAnalysis
	case AnalysisContent:
		return v.ContentAnalysis
	case AnalysisKnowledge:
		return v.KnowledgeAnalysis
	}
	return nil
}

// ChatMessage is one turn in a video's research conversation.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Int returns a pointer to v, for optional request parameters.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v, for optional numeric fields.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v, for optional string fields.
func String(v string) *string { return &v }
