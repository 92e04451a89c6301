package dto

import "github.com/google/uuid"

// SentimentReportResponse aggregates the sentiment of a falla's
// comments. totalComentarios counts the classified ones, while
// totalComentariosFalla counts every comment of the falla including
// those still pending.
type SentimentReportResponse struct {
	Positive              int64 `json:"positive"`
	Neutral               int64 `json:"neutral"`
	Negative              int64 `json:"negative"`
	TotalComentarios      int64 `json:"totalComentarios"`
	TotalComentariosFalla int64 `json:"totalComentariosFalla"`
	TotalPendientes       int64 `json:"totalPendientes"`
}

// GeneralSummaryResponse represents the platform-wide counters
type GeneralSummaryResponse struct {
	TotalUsers       int64            `json:"totalUsers"`
	ActiveUsers      int64            `json:"activeUsers"`
	TotalFallas      int64            `json:"totalFallas"`
	TotalNinots      int64            `json:"totalNinots"`
	TotalEvents      int64            `json:"totalEvents"`
	TotalComments    int64            `json:"totalComments"`
	TotalVotes       int64            `json:"totalVotes"`
	FallasByCategory map[string]int64 `json:"fallasByCategory"`
}

// FallaBreakdownResponse represents the public falla analytics:
// distribution over categories and sections.
type FallaBreakdownResponse struct {
	TotalFallas  int64            `json:"totalFallas"`
	PorCategoria map[string]int64 `json:"porCategoria"`
	PorSeccion   map[string]int64 `json:"porSeccion"`
}

// FallaStatsResponse represents the activity counters of one falla
type FallaStatsResponse struct {
	FallaID      uuid.UUID        `json:"fallaId"`
	FallaName    string           `json:"fallaName"`
	CommentCount int64            `json:"commentCount"`
	VoteCount    int64            `json:"voteCount"`
	VotesByKind  map[string]int64 `json:"votesByKind"`
}
