package models

import (
	"time"

	"github.com/google/uuid"
)

// SupplyList is the published set of required items for one grade
// level in one academic year.
type SupplyList struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GradeLevelID uuid.UUID        `gorm:"column:grade_level_id;type:uuid;not null;index"`
	AcademicYear string           `gorm:"column:academic_year;not null"`
	Items        []SupplyListItem `gorm:"foreignKey:SupplyListID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
