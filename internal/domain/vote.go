package domain

import "github.com/google/uuid"

// VoteKind represents the category of a vote.
// The (user, falla, kind) triple is unique.
type VoteKind string

const (
	VoteKindFavorito  VoteKind = "favorito"
	VoteKindIngenioso VoteKind = "ingenioso"
	VoteKindCritico   VoteKind = "critico"
	VoteKindArtistico VoteKind = "artistico"
	VoteKindRating    VoteKind = "rating"
)

// ValidVoteKinds lists all accepted vote kinds
var ValidVoteKinds = []VoteKind{
	VoteKindFavorito,
	VoteKindIngenioso,
	VoteKindCritico,
	VoteKindArtistico,
	VoteKindRating,
}

// IsValidVoteKind checks whether the given value is an accepted vote kind
func IsValidVoteKind(kind string) bool {
	for _, k := range ValidVoteKinds {
		if string(k) == kind {
			return true
		}
	}
	return false
}

// Vote represents a user vote on a falla. Uniqueness of the
// (user_id, falla_id, kind) triple is enforced by the composite
// unique index, not only by the application-level check.
type Vote struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_votes_user_id;uniqueIndex:uq_votes_user_falla_kind" json:"userId"`
	FallaID uuid.UUID `gorm:"type:uuid;not null;index:idx_votes_falla_id;uniqueIndex:uq_votes_user_falla_kind" json:"fallaId"`
	Kind    VoteKind  `gorm:"type:varchar(20);not null;uniqueIndex:uq_votes_user_falla_kind" json:"kind"`
	User    User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Falla   Falla     `gorm:"foreignKey:FallaID;constraint:OnDelete:CASCADE" json:"falla,omitempty"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
