package feecatalog

import (
	"context"
	"database/sql"
	"strings"
	"time"

	feecatalogerrors "go-schoolfee/internal/feecatalog/errors"
	"go-schoolfee/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=feecatalog_service.go -destination=mock/feecatalog_service_mock.go -package=mock
type Service interface {
	CreateCategory(ctx context.Context, schoolID string, req CategoryRequest) (CategoryResponse, error)
	GetCategories(ctx context.Context, schoolID string, includeInactive bool) ([]CategoryResponse, error)
	GetCategoryByID(ctx context.Context, schoolID, id string) (CategoryResponse, error)
	UpdateCategory(ctx context.Context, schoolID, id string, req CategoryRequest) (CategoryResponse, error)
	DeleteCategory(ctx context.Context, schoolID, id string) error

	CreateStructure(ctx context.Context, schoolID string, req StructureRequest) (StructureResponse, error)
	GetStructures(ctx context.Context, schoolID string, filter StructureFilter) ([]StructureResponse, error)
	GetStructureByID(ctx context.Context, schoolID, id string) (StructureResponse, error)
	UpdateStructure(ctx context.Context, schoolID, id string, req StructureRequest) (StructureResponse, error)
	DeleteStructure(ctx context.Context, schoolID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("feecatalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feecatalog.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateCategory(ctx context.Context, schoolID string, req CategoryRequest) (CategoryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create fee category requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("code", req.Code),
	)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return CategoryResponse{}, feecatalogerrors.ErrInvalidSchoolID
	}

	category := &FeeCategory{
		ID:       uuid.New(),
		SchoolID: schoolUUID,
	}
	applyCategoryRequest(category, req)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create fee category begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CategoryResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateCategory(ctx, category); err != nil {
		s.logger.Error("create fee category persist failed", zap.String("request_id", rid), zap.Error(err))
		return CategoryResponse{}, mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create fee category commit failed", zap.String("request_id", rid), zap.Error(err))
		return CategoryResponse{}, err
	}

	s.logger.Info("create fee category success",
		zap.String("request_id", rid),
		zap.String("category_id", category.ID.String()),
	)
	return mapCategoryResponse(*category), nil
}

func (s *service) GetCategories(ctx context.Context, schoolID string, includeInactive bool) ([]CategoryResponse, error) {
	categories, err := s.repo.FindCategories(ctx, schoolID, includeInactive)
	if err != nil {
		s.logger.Error("get fee categories failed", zap.String("school_id", schoolID), zap.Error(err))
		return nil, mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}

	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = mapCategoryResponse(c)
	}
	return resp, nil
}

func (s *service) GetCategoryByID(ctx context.Context, schoolID, id string) (CategoryResponse, error) {
	category, err := s.repo.FindCategoryByID(ctx, schoolID, id)
	if err != nil {
		return CategoryResponse{}, mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}
	return mapCategoryResponse(*category), nil
}

func (s *service) UpdateCategory(ctx context.Context, schoolID, id string, req CategoryRequest) (CategoryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update fee category requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("category_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update fee category begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CategoryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	category, err := qtx.FindCategoryByID(ctx, schoolID, id)
	if err != nil {
		return CategoryResponse{}, mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}

	applyCategoryRequest(category, req)

	if err := qtx.UpdateCategory(ctx, category); err != nil {
		s.logger.Error("update fee category persist failed", zap.String("request_id", rid), zap.Error(err))
		return CategoryResponse{}, mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update fee category commit failed", zap.String("request_id", rid), zap.Error(err))
		return CategoryResponse{}, err
	}

	s.logger.Info("update fee category success",
		zap.String("request_id", rid),
		zap.String("category_id", id),
		zap.Bool("is_active", category.IsActive),
	)
	return mapCategoryResponse(*category), nil
}

func (s *service) DeleteCategory(ctx context.Context, schoolID, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete fee category requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("category_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete fee category begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindCategoryByID(ctx, schoolID, id); err != nil {
		return mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}

	referenced, err := qtx.IsCategoryReferenced(ctx, schoolID, id)
	if err != nil {
		s.logger.Error("delete fee category reference check failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if referenced {
		s.logger.Warn("delete fee category rejected, category in use",
			zap.String("request_id", rid),
			zap.String("category_id", id),
		)
		return feecatalogerrors.ErrCategoryInUse
	}

	if err := qtx.DeleteCategory(ctx, schoolID, id); err != nil {
		s.logger.Error("delete fee category failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete fee category commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete fee category success", zap.String("request_id", rid), zap.String("category_id", id))
	return nil
}

func (s *service) CreateStructure(ctx context.Context, schoolID string, req StructureRequest) (StructureResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create fee structure requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("academic_year", req.AcademicYear),
		zap.String("grade_level_id", req.GradeLevelID),
		zap.String("fee_category_id", req.FeeCategoryID),
		zap.String("period_type", req.PeriodType),
	)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return StructureResponse{}, feecatalogerrors.ErrInvalidSchoolID
	}

	structure := &FeeStructure{
		ID:       uuid.New(),
		SchoolID: schoolUUID,
		IsActive: true,
	}
	if err := applyStructureRequest(structure, req); err != nil {
		s.logger.Warn("create fee structure validation failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create fee structure begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	category, err := s.checkStructureSlot(ctx, qtx, structure, nil)
	if err != nil {
		return StructureResponse{}, err
	}

	if err := qtx.CreateStructure(ctx, structure); err != nil {
		s.logger.Error("create fee structure persist failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, mapRepositoryError(err, feecatalogerrors.ErrStructureNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create fee structure commit failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, err
	}

	structure.Category = category
	s.logger.Info("create fee structure success",
		zap.String("request_id", rid),
		zap.String("structure_id", structure.ID.String()),
	)
	return mapStructureResponse(*structure), nil
}

func (s *service) GetStructures(ctx context.Context, schoolID string, filter StructureFilter) ([]StructureResponse, error) {
	if filter.PeriodType != "" && !ValidPeriodType(filter.PeriodType) {
		return nil, feecatalogerrors.ErrInvalidPeriodType
	}

	structures, err := s.repo.FindStructures(ctx, schoolID, filter)
	if err != nil {
		s.logger.Error("get fee structures failed", zap.String("school_id", schoolID), zap.Error(err))
		return nil, mapRepositoryError(err, feecatalogerrors.ErrStructureNotFound)
	}

	resp := make([]StructureResponse, len(structures))
	for i, st := range structures {
		resp[i] = mapStructureResponse(st)
	}
	return resp, nil
}

func (s *service) GetStructureByID(ctx context.Context, schoolID, id string) (StructureResponse, error) {
	structure, err := s.repo.FindStructureByID(ctx, schoolID, id)
	if err != nil {
		return StructureResponse{}, mapRepositoryError(err, feecatalogerrors.ErrStructureNotFound)
	}
	return mapStructureResponse(*structure), nil
}

func (s *service) UpdateStructure(ctx context.Context, schoolID, id string, req StructureRequest) (StructureResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update fee structure requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("structure_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update fee structure begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure, err := qtx.FindStructureByID(ctx, schoolID, id)
	if err != nil {
		return StructureResponse{}, mapRepositoryError(err, feecatalogerrors.ErrStructureNotFound)
	}

	if err := applyStructureRequest(structure, req); err != nil {
		s.logger.Warn("update fee structure validation failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, err
	}

	category, err := s.checkStructureSlot(ctx, qtx, structure, &id)
	if err != nil {
		return StructureResponse{}, err
	}

	structure.Category = nil
	if err := qtx.UpdateStructure(ctx, structure); err != nil {
		s.logger.Error("update fee structure persist failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, mapRepositoryError(err, feecatalogerrors.ErrStructureNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update fee structure commit failed", zap.String("request_id", rid), zap.Error(err))
		return StructureResponse{}, err
	}

	structure.Category = category
	s.logger.Info("update fee structure success",
		zap.String("request_id", rid),
		zap.String("structure_id", id),
		zap.Bool("is_active", structure.IsActive),
	)
	return mapStructureResponse(*structure), nil
}

func (s *service) DeleteStructure(ctx context.Context, schoolID, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete fee structure requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("structure_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete fee structure begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	referenced, err := qtx.IsStructureReferenced(ctx, schoolID, id)
	if err != nil {
		s.logger.Error("delete fee structure reference check failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if referenced {
		s.logger.Warn("delete fee structure rejected, structure in use",
			zap.String("request_id", rid),
			zap.String("structure_id", id),
		)
		return feecatalogerrors.ErrStructureInUse
	}

	if err := qtx.DeleteStructure(ctx, schoolID, id); err != nil {
		s.logger.Error("delete fee structure failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err, feecatalogerrors.ErrStructureNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete fee structure commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete fee structure success", zap.String("request_id", rid), zap.String("structure_id", id))
	return nil
}

// checkStructureSlot verifies the category belongs to the school and that an
// active structure does not collide with another active one.
func (s *service) checkStructureSlot(
	ctx context.Context,
	qtx Repository,
	structure *FeeStructure,
	excludeID *string,
) (*FeeCategory, error) {
	schoolID := structure.SchoolID.String()

	category, err := qtx.FindCategoryByID(ctx, schoolID, structure.FeeCategoryID.String())
	if err != nil {
		return nil, mapRepositoryError(err, feecatalogerrors.ErrCategoryNotFound)
	}

	if !structure.IsActive {
		return category, nil
	}
	if !category.IsActive {
		return nil, feecatalogerrors.ErrCategoryInactive
	}

	dup, err := qtx.HasActiveDuplicate(ctx, StructureKey{
		SchoolID:      schoolID,
		AcademicYear:  structure.AcademicYear,
		GradeLevelID:  structure.GradeLevelID.String(),
		FeeCategoryID: structure.FeeCategoryID.String(),
		PeriodType:    structure.PeriodType,
	}, excludeID)
	if err != nil {
		s.logger.Error("fee structure duplicate check failed", zap.Error(err))
		return nil, err
	}
	if dup {
		s.logger.Warn("fee structure duplicate rejected",
			zap.String("school_id", schoolID),
			zap.String("academic_year", structure.AcademicYear),
			zap.String("period_type", structure.PeriodType),
		)
		return nil, feecatalogerrors.ErrStructureDuplicate
	}

	return category, nil
}

func applyCategoryRequest(category *FeeCategory, req CategoryRequest) {
	category.Name = strings.TrimSpace(req.Name)
	category.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	category.Description = req.Description
	category.IsMandatory = req.IsMandatory
	category.DisplayOrder = req.DisplayOrder

	category.IsDiscountable = true
	if req.IsDiscountable != nil {
		category.IsDiscountable = *req.IsDiscountable
	}
	category.IsActive = true
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
}

func applyStructureRequest(structure *FeeStructure, req StructureRequest) error {
	if !ValidPeriodType(req.PeriodType) {
		return feecatalogerrors.ErrInvalidPeriodType
	}
	gradeLevelID, err := uuid.Parse(req.GradeLevelID)
	if err != nil {
		return feecatalogerrors.ErrInvalidGradeLevel
	}
	categoryID, err := uuid.Parse(req.FeeCategoryID)
	if err != nil {
		return feecatalogerrors.ErrInvalidCategoryRef
	}
	if req.Amount == nil || req.Amount.IsNegative() {
		return feecatalogerrors.ErrInvalidAmount
	}
	if req.LateFeeAmount != nil && req.LateFeeAmount.IsNegative() {
		return feecatalogerrors.ErrInvalidLateFee
	}

	structure.DueDay = nil
	structure.DueDate = nil
	switch req.PeriodType {
	case PeriodMonthly:
		if req.DueDate != nil && *req.DueDate != "" {
			return feecatalogerrors.ErrInvalidDueDate
		}
		if req.DueDay != nil {
			if *req.DueDay < 1 || *req.DueDay > 28 {
				return feecatalogerrors.ErrInvalidDueDay
			}
			day := *req.DueDay
			structure.DueDay = &day
		}
	default:
		if req.DueDay != nil {
			return feecatalogerrors.ErrInvalidDueDay
		}
		if req.DueDate != nil && *req.DueDate != "" {
			due, err := time.Parse("2006-01-02", *req.DueDate)
			if err != nil {
				return feecatalogerrors.ErrInvalidDueDate
			}
			structure.DueDate = &due
		}
	}

	structure.AcademicYear = strings.TrimSpace(req.AcademicYear)
	structure.GradeLevelID = gradeLevelID
	structure.FeeCategoryID = categoryID
	structure.PeriodType = req.PeriodType
	structure.Name = strings.TrimSpace(req.Name)
	structure.Amount = req.Amount.Round(2)
	structure.LateFeeAmount = nil
	if req.LateFeeAmount != nil {
		v := req.LateFeeAmount.Round(2)
		structure.LateFeeAmount = &v
	}
	if req.IsActive != nil {
		structure.IsActive = *req.IsActive
	}
	return nil
}

func mapCategoryResponse(c FeeCategory) CategoryResponse {
	return CategoryResponse{
		ID:             c.ID.String(),
		SchoolID:       c.SchoolID.String(),
		Name:           c.Name,
		Code:           c.Code,
		Description:    c.Description,
		IsMandatory:    c.IsMandatory,
		IsDiscountable: c.IsDiscountable,
		DisplayOrder:   c.DisplayOrder,
		IsActive:       c.IsActive,
	}
}

func mapStructureResponse(st FeeStructure) StructureResponse {
	resp := StructureResponse{
		ID:            st.ID.String(),
		SchoolID:      st.SchoolID.String(),
		AcademicYear:  st.AcademicYear,
		GradeLevelID:  st.GradeLevelID.String(),
		FeeCategoryID: st.FeeCategoryID.String(),
		PeriodType:    st.PeriodType,
		Name:          st.Name,
		Amount:        st.Amount,
		DueDay:        st.DueDay,
		LateFeeAmount: st.LateFeeAmount,
		IsActive:      st.IsActive,
	}
	if st.Category != nil {
		resp.CategoryName = st.Category.Name
	}
	if st.DueDate != nil {
		v := st.DueDate.Format("2006-01-02")
		resp.DueDate = &v
	}
	return resp
}
