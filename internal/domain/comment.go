package domain

import "github.com/google/uuid"

// Canonical sentiment labels persisted by the enrichment pipeline.
// A nil Sentiment means classification is still pending.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Comment represents a user comment on a falla or a ninot.
// Exactly one of FallaID and NinotID is set.
type Comment struct {
	BaseModel
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_user_id" json:"userId"`
	FallaID   *uuid.UUID `gorm:"type:uuid;index:idx_comments_falla_id" json:"fallaId,omitempty"`
	NinotID   *uuid.UUID `gorm:"type:uuid;index:idx_comments_ninot_id" json:"ninotId,omitempty"`
	Content   string     `gorm:"type:varchar(500);not null" json:"content"`
	Sentiment *string    `gorm:"type:varchar(50);index:idx_comments_sentiment" json:"sentiment,omitempty"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
