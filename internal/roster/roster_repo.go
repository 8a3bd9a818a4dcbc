package roster

import (
	"context"
	"errors"

	rostererrors "go-schoolfee/internal/roster/errors"
	"go-schoolfee/internal/tenant"

	"gorm.io/gorm"
)

// Directory is the narrow interface to the student/roster collaborator.
//
//go:generate mockgen -source=roster_repo.go -destination=mock/roster_repo_mock.go -package=mock
type Directory interface {
	ListActiveSchoolIDs(ctx context.Context) ([]string, error)
	GetStudent(ctx context.Context, schoolID, studentID string) (*Student, error)
	ListActiveStudents(ctx context.Context, schoolID string, filter StudentFilter) ([]Student, error)
	ListSiblings(ctx context.Context, schoolID, familyKey, academicYear string) ([]Student, error)
}

type directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

func (d *directory) ListActiveSchoolIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := d.db.WithContext(ctx).
		Model(&School{}).
		Where("is_active = ?", true).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (d *directory) GetStudent(ctx context.Context, schoolID, studentID string) (*Student, error) {
	var s Student
	err := d.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&s, "id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, rostererrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (d *directory) ListActiveStudents(ctx context.Context, schoolID string, filter StudentFilter) ([]Student, error) {
	q := d.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("is_active = ?", true)

	if filter.GradeLevelID != nil && *filter.GradeLevelID != "" {
		q = q.Where("grade_level_id = ?", *filter.GradeLevelID)
	}
	if filter.SectionID != nil && *filter.SectionID != "" {
		q = q.Where("section_id = ?", *filter.SectionID)
	}
	if len(filter.StudentIDs) > 0 {
		q = q.Where("id IN ?", filter.StudentIDs)
	}

	var students []Student
	err := q.Order("enrolled_at ASC, id ASC").Find(&students).Error
	return students, err
}

func (d *directory) ListSiblings(ctx context.Context, schoolID, familyKey, academicYear string) ([]Student, error) {
	if familyKey == "" {
		return nil, nil
	}

	var students []Student
	err := d.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("family_key = ?", familyKey).
		Where("academic_year = ?", academicYear).
		Where("is_active = ?", true).
		Order("enrolled_at ASC, id ASC").
		Find(&students).Error
	return students, err
}
