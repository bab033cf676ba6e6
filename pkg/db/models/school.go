package models

import (
	"time"

	"github.com/google/uuid"
)

// School is a participating institution whose grade levels publish
// supply lists.
type School struct {
	ID          uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string       `gorm:"column:name;not null"`
	Address     *string      `gorm:"column:address"`
	Description *string      `gorm:"column:description"`
	LogoURL     *string      `gorm:"column:logo_url"`
	Grades      []GradeLevel `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}
