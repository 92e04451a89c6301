package domain

import (
	"gorm.io/datatypes"
)

// FallaCategory represents the official competition category of a falla
type FallaCategory string

const (
	FallaCategoryEspecial     FallaCategory = "especial"
	FallaCategoryPrimera      FallaCategory = "primera"
	FallaCategorySegunda      FallaCategory = "segunda"
	FallaCategoryTercera      FallaCategory = "tercera"
	FallaCategoryCuarta       FallaCategory = "cuarta"
	FallaCategoryQuinta       FallaCategory = "quinta"
	FallaCategorySinCategoria FallaCategory = "sin_categoria"
)

// ValidFallaCategories lists all accepted falla categories
var ValidFallaCategories = []FallaCategory{
	FallaCategoryEspecial,
	FallaCategoryPrimera,
	FallaCategorySegunda,
	FallaCategoryTercera,
	FallaCategoryCuarta,
	FallaCategoryQuinta,
	FallaCategorySinCategoria,
}

// IsValidFallaCategory checks whether the given value is an accepted category
func IsValidFallaCategory(category string) bool {
	for _, c := range ValidFallaCategories {
		if string(c) == category {
			return true
		}
	}
	return false
}

// Falla represents a fallas commission and its monument
type Falla struct {
	BaseModel
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Section      string         `gorm:"type:varchar(100)" json:"section"`
	Fallera      string         `gorm:"type:varchar(255)" json:"fallera"`
	President    string         `gorm:"type:varchar(255)" json:"president"`
	Artist       string         `gorm:"type:varchar(255)" json:"artist"`
	Motto        string         `gorm:"type:varchar(255)" json:"motto"`
	FoundedYear  *int           `gorm:"type:int" json:"foundedYear,omitempty"`
	Category     FallaCategory  `gorm:"type:varchar(20);not null;default:'sin_categoria';index:idx_fallas_category" json:"category"`
	Description  string         `gorm:"type:text" json:"description"`
	Website      string         `gorm:"type:varchar(512)" json:"website"`
	ContactEmail string         `gorm:"type:varchar(255)" json:"contactEmail"`
	Lat          *float64       `gorm:"type:decimal(10,7)" json:"lat,omitempty"`
	Lon          *float64       `gorm:"type:decimal(10,7)" json:"lon,omitempty"`
	Extra        datatypes.JSON `gorm:"type:jsonb" json:"extra,omitempty"`
	Ninots       []Ninot        `gorm:"foreignKey:FallaID;constraint:OnDelete:CASCADE" json:"ninots,omitempty"`
	Events       []Event        `gorm:"foreignKey:FallaID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Comments     []Comment      `gorm:"foreignKey:FallaID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Falla
func (Falla) TableName() string {
	return "fallas"
}
