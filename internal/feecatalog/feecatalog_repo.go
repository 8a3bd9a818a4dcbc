package feecatalog

import (
	"context"
	"database/sql"

	"go-schoolfee/internal/shared/connection"
	"go-schoolfee/internal/tenant"

	"gorm.io/gorm"
)

// StructureKey identifies the slot an active structure occupies.
type StructureKey struct {
	SchoolID      string
	AcademicYear  string
	GradeLevelID  string
	FeeCategoryID string
	PeriodType    string
}

//go:generate mockgen -source=feecatalog_repo.go -destination=mock/feecatalog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateCategory(ctx context.Context, category *FeeCategory) error
	FindCategories(ctx context.Context, schoolID string, includeInactive bool) ([]FeeCategory, error)
	FindCategoryByID(ctx context.Context, schoolID, id string) (*FeeCategory, error)
	UpdateCategory(ctx context.Context, category *FeeCategory) error
	DeleteCategory(ctx context.Context, schoolID, id string) error
	IsCategoryReferenced(ctx context.Context, schoolID, id string) (bool, error)

	CreateStructure(ctx context.Context, structure *FeeStructure) error
	FindStructures(ctx context.Context, schoolID string, filter StructureFilter) ([]FeeStructure, error)
	FindStructureByID(ctx context.Context, schoolID, id string) (*FeeStructure, error)
	UpdateStructure(ctx context.Context, structure *FeeStructure) error
	DeleteStructure(ctx context.Context, schoolID, id string) error
	IsStructureReferenced(ctx context.Context, schoolID, id string) (bool, error)
	HasActiveDuplicate(ctx context.Context, key StructureKey, excludeID *string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.GormTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) CreateCategory(ctx context.Context, category *FeeCategory) error {
	return r.conn(ctx).Create(category).Error
}

func (r *repository) FindCategories(ctx context.Context, schoolID string, includeInactive bool) ([]FeeCategory, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(schoolID))
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var categories []FeeCategory
	err := q.Order("display_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (r *repository) FindCategoryByID(ctx context.Context, schoolID, id string) (*FeeCategory, error) {
	var category FeeCategory
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) UpdateCategory(ctx context.Context, category *FeeCategory) error {
	return r.conn(ctx).Save(category).Error
}

func (r *repository) DeleteCategory(ctx context.Context, schoolID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&FeeCategory{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) IsCategoryReferenced(ctx context.Context, schoolID, id string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("student_fees").
		Scopes(tenant.Scope(schoolID)).
		Where("fee_category_id = ?", id).
		Count(&count).Error
	if err != nil || count > 0 {
		return count > 0, err
	}

	err = r.conn(ctx).
		Model(&FeeStructure{}).
		Scopes(tenant.Scope(schoolID)).
		Where("fee_category_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateStructure(ctx context.Context, structure *FeeStructure) error {
	return r.conn(ctx).Create(structure).Error
}

func (r *repository) FindStructures(ctx context.Context, schoolID string, filter StructureFilter) ([]FeeStructure, error) {
	q := r.conn(ctx).
		Preload("Category").
		Scopes(tenant.ScopeTable("fee_structures", schoolID))

	if filter.AcademicYear != "" {
		q = q.Where("fee_structures.academic_year = ?", filter.AcademicYear)
	}
	if filter.GradeLevelID != "" {
		q = q.Where("fee_structures.grade_level_id = ?", filter.GradeLevelID)
	}
	if filter.PeriodType != "" {
		q = q.Where("fee_structures.period_type = ?", filter.PeriodType)
	}
	if len(filter.FeeCategoryIDs) > 0 {
		q = q.Where("fee_structures.fee_category_id IN ?", filter.FeeCategoryIDs)
	}
	if filter.IsActive != nil {
		q = q.Where("fee_structures.is_active = ?", *filter.IsActive)
	}
	if filter.Billable {
		q = q.Joins("JOIN fee_categories ON fee_categories.id = fee_structures.fee_category_id").
			Where("fee_structures.is_active = ?", true).
			Where("fee_categories.is_active = ?", true)
	}

	var structures []FeeStructure
	err := q.Order("fee_structures.academic_year DESC, fee_structures.created_at ASC").Find(&structures).Error
	return structures, err
}

func (r *repository) FindStructureByID(ctx context.Context, schoolID, id string) (*FeeStructure, error) {
	var structure FeeStructure
	err := r.conn(ctx).
		Preload("Category").
		Scopes(tenant.Scope(schoolID)).
		First(&structure, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *repository) UpdateStructure(ctx context.Context, structure *FeeStructure) error {
	return r.conn(ctx).Omit("Category").Save(structure).Error
}

func (r *repository) DeleteStructure(ctx context.Context, schoolID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&FeeStructure{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) IsStructureReferenced(ctx context.Context, schoolID, id string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("student_fees").
		Scopes(tenant.Scope(schoolID)).
		Where("fee_structure_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasActiveDuplicate(ctx context.Context, key StructureKey, excludeID *string) (bool, error) {
	q := r.conn(ctx).
		Model(&FeeStructure{}).
		Scopes(tenant.Scope(key.SchoolID)).
		Where("academic_year = ?", key.AcademicYear).
		Where("grade_level_id = ?", key.GradeLevelID).
		Where("fee_category_id = ?", key.FeeCategoryID).
		Where("period_type = ?", key.PeriodType).
		Where("is_active = ?", true)

	if excludeID != nil && *excludeID != "" {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
