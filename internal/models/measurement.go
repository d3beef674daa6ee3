package models

import (
	"time"

	"github.com/google/uuid"
)

// Measurement is one water-chemistry sample. Rows are immutable once written:
// bound chlorine and the day label are derived at write time and never
// recomputed. UserID may dangle to NULL if the recording account is removed.
type Measurement struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Date          time.Time  `gorm:"type:date;not null;index" json:"date"`
	Day           string     `gorm:"size:20;not null" json:"day"`
	Time          string     `gorm:"size:5;not null" json:"time"`
	FreeChlorine  float64    `gorm:"type:decimal(4,2);not null" json:"free_chlorine"`
	TotalChlorine float64    `gorm:"type:decimal(4,2);not null" json:"total_chlorine"`
	BoundChlorine float64    `gorm:"type:decimal(4,2);not null" json:"bound_chlorine"`
	PH            float64    `gorm:"type:decimal(3,1);not null" json:"ph"`
	Temperature   *float64   `gorm:"type:decimal(4,1)" json:"temperature"`
	Note          string     `gorm:"type:text" json:"note,omitempty"`
	UserID        *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	CreatedAt     time.Time  `json:"created_at"`
}
