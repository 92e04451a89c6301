package domain

import "github.com/google/uuid"

// Ninot represents a single figure of a falla monument
type Ninot struct {
	BaseModel
	FallaID  uuid.UUID `gorm:"type:uuid;not null;index:idx_ninots_falla_id" json:"fallaId"`
	Name     string    `gorm:"type:varchar(255)" json:"name"`
	ImageURL string    `gorm:"type:varchar(512)" json:"imageUrl"`
	Awarded  bool      `gorm:"default:false" json:"awarded"`
	Falla    Falla     `gorm:"foreignKey:FallaID;constraint:OnDelete:CASCADE" json:"falla,omitempty"`
}

// TableName specifies the table name for Ninot
func (Ninot) TableName() string {
	return "ninots"
}
