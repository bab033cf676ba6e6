package models

import (
	"time"

	"github.com/google/uuid"
)

// GradeLevel is a class year within a school, e.g. "Grade 3".
type GradeLevel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SchoolID  uuid.UUID `gorm:"column:school_id;type:uuid;not null;index"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
