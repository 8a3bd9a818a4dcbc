package roster

import (
	"time"

	"github.com/google/uuid"
)

// Student is the fee engine's read-only view of the roster's students table.
type Student struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID     uuid.UUID  `gorm:"type:uuid;index"`
	FullName     string     `gorm:"column:full_name"`
	GradeLevelID uuid.UUID  `gorm:"type:uuid;index"`
	SectionID    *uuid.UUID `gorm:"type:uuid"`
	FamilyKey    string     `gorm:"column:family_key;index"`
	AcademicYear string     `gorm:"column:academic_year"`
	EnrolledAt   time.Time  `gorm:"column:enrolled_at"`
	IsActive     bool       `gorm:"column:is_active"`
}

func (Student) TableName() string {
	return "students"
}

type School struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	IsActive bool
}

func (School) TableName() string {
	return "schools"
}

type StudentFilter struct {
	GradeLevelID *string
	SectionID    *string
	StudentIDs   []string
}
