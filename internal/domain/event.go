package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind represents the type of a festival event
type EventKind string

const (
	EventKindMascleta   EventKind = "mascleta"
	EventKindOfrenda    EventKind = "ofrenda"
	EventKindCrema      EventKind = "crema"
	EventKindVerbena    EventKind = "verbena"
	EventKindPasacalle  EventKind = "pasacalle"
	EventKindOtro       EventKind = "otro"
)

// Event represents a scheduled activity organized by a falla
type Event struct {
	BaseModel
	FallaID            uuid.UUID `gorm:"type:uuid;not null;index:idx_events_falla_id" json:"fallaId"`
	Kind               EventKind `gorm:"type:varchar(20);not null;default:'otro'" json:"kind"`
	Name               string    `gorm:"type:varchar(255);not null" json:"name"`
	Description        string    `gorm:"type:text" json:"description"`
	StartsAt           time.Time `gorm:"type:timestamp;not null;index:idx_events_starts_at" json:"startsAt"`
	Location           string    `gorm:"type:varchar(255)" json:"location"`
	EstimatedAttendees *int      `gorm:"type:int" json:"estimatedAttendees,omitempty"`
	CreatedBy          uuid.UUID `gorm:"type:uuid;not null" json:"createdBy"`
	Falla              Falla     `gorm:"foreignKey:FallaID;constraint:OnDelete:CASCADE" json:"falla,omitempty"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}
