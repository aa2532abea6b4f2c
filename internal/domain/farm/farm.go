package farm

import (
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Farm represents a farm owned by a user. It is the aggregate root for
// plots and crops.
type Farm struct {
	shared.OwnedEntity
	Name     string `gorm:"type:varchar(200);not null" json:"name"`
	Location string `gorm:"type:varchar(300)" json:"location"`
	Size     string `gorm:"type:varchar(50)" json:"size"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Farm) TableName() string {
	return "farms"
}

// Plot is a subdivision of a farm where crops are planted
type Plot struct {
	shared.BaseEntity
	FarmID      uuid.UUID `gorm:"type:uuid;not null;index" json:"farmId"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Plot) TableName() string {
	return "plots"
}

// Crop represents a planting on a plot. The measure unit is the unit
// the user reports quantities in for this crop.
type Crop struct {
	shared.BaseEntity
	PlotID      uuid.UUID `gorm:"type:uuid;not null;index" json:"plotId"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	MeasureUnit string    `gorm:"type:varchar(50)" json:"measureUnit"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Crop) TableName() string {
	return "crops"
}
