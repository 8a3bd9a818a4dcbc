package feecatalog_test

import (
	"context"
	"database/sql"
	"testing"

	"go-schoolfee/internal/feecatalog"
	feecatalogerrors "go-schoolfee/internal/feecatalog/errors"
	feecatalogMock "go-schoolfee/internal/feecatalog/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *feecatalogMock.MockRepository
	service feecatalog.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := feecatalogMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		service: feecatalog.NewService(db, repo),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func amount(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestFeeCatalogService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	t.Run("success - normalizes code and defaults to discountable", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateCategory(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *feecatalog.FeeCategory) error {
				assert.Equal(t, "TUITION", c.Code)
				assert.Equal(t, schoolID, c.SchoolID.String())
				assert.True(t, c.IsDiscountable)
				assert.True(t, c.IsActive)
				return nil
			})

		resp, err := deps.service.CreateCategory(ctx, schoolID, feecatalog.CategoryRequest{
			Name: "Tuition",
			Code: " tuition ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "TUITION", resp.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateCategory(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_fee_category_code"})

		_, err := deps.service.CreateCategory(ctx, schoolID, feecatalog.CategoryRequest{Name: "Bus", Code: "BUS"})

		assert.ErrorIs(t, err, feecatalogerrors.ErrCategoryCodeExists)
	})

	t.Run("invalid school id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateCategory(ctx, "not-a-uuid", feecatalog.CategoryRequest{Name: "Bus", Code: "BUS"})

		assert.ErrorIs(t, err, feecatalogerrors.ErrInvalidSchoolID)
	})
}

func TestFeeCatalogService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	categoryID := uuid.New().String()

	t.Run("referenced category is a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindCategoryByID(ctx, schoolID, categoryID).Return(&feecatalog.FeeCategory{}, nil)
		deps.repo.EXPECT().IsCategoryReferenced(ctx, schoolID, categoryID).Return(true, nil)

		err := deps.service.DeleteCategory(ctx, schoolID, categoryID)

		assert.ErrorIs(t, err, feecatalogerrors.ErrCategoryInUse)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindCategoryByID(ctx, schoolID, categoryID).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.DeleteCategory(ctx, schoolID, categoryID)

		assert.ErrorIs(t, err, feecatalogerrors.ErrCategoryNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindCategoryByID(ctx, schoolID, categoryID).Return(&feecatalog.FeeCategory{}, nil)
		deps.repo.EXPECT().IsCategoryReferenced(ctx, schoolID, categoryID).Return(false, nil)
		deps.repo.EXPECT().DeleteCategory(ctx, schoolID, categoryID).Return(nil)

		assert.NoError(t, deps.service.DeleteCategory(ctx, schoolID, categoryID))
	})
}

func TestFeeCatalogService_CreateStructure(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	categoryID := uuid.New()
	gradeID := uuid.New().String()

	baseReq := func() feecatalog.StructureRequest {
		return feecatalog.StructureRequest{
			AcademicYear:  "2025-2026",
			GradeLevelID:  gradeID,
			FeeCategoryID: categoryID.String(),
			PeriodType:    feecatalog.PeriodMonthly,
			Amount:        amount("100"),
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		day := 5
		req := baseReq()
		req.DueDay = &day

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindCategoryByID(ctx, schoolID, categoryID.String()).
			Return(&feecatalog.FeeCategory{ID: categoryID, Name: "Tuition", IsActive: true}, nil)
		deps.repo.EXPECT().
			HasActiveDuplicate(ctx, feecatalog.StructureKey{
				SchoolID:      schoolID,
				AcademicYear:  "2025-2026",
				GradeLevelID:  gradeID,
				FeeCategoryID: categoryID.String(),
				PeriodType:    feecatalog.PeriodMonthly,
			}, nil).
			Return(false, nil)
		deps.repo.EXPECT().CreateStructure(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.CreateStructure(ctx, schoolID, req)

		assert.NoError(t, err)
		assert.Equal(t, "Tuition", resp.CategoryName)
		assert.Equal(t, 5, *resp.DueDay)
		assert.True(t, decimal.NewFromInt(100).Equal(resp.Amount))
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate active structure is a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindCategoryByID(ctx, schoolID, categoryID.String()).
			Return(&feecatalog.FeeCategory{ID: categoryID, IsActive: true}, nil)
		deps.repo.EXPECT().HasActiveDuplicate(ctx, gomock.Any(), nil).Return(true, nil)

		_, err := deps.service.CreateStructure(ctx, schoolID, baseReq())

		assert.ErrorIs(t, err, feecatalogerrors.ErrStructureDuplicate)
	})

	t.Run("inactive category cannot receive active structures", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindCategoryByID(ctx, schoolID, categoryID.String()).
			Return(&feecatalog.FeeCategory{ID: categoryID, IsActive: false}, nil)

		_, err := deps.service.CreateStructure(ctx, schoolID, baseReq())

		assert.ErrorIs(t, err, feecatalogerrors.ErrCategoryInactive)
	})

	t.Run("negative amount is rejected before any store access", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := baseReq()
		req.Amount = amount("-1")

		_, err := deps.service.CreateStructure(ctx, schoolID, req)

		assert.ErrorIs(t, err, feecatalogerrors.ErrInvalidAmount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("monthly structure rejects fixed due date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		due := "2025-09-10"
		req := baseReq()
		req.DueDate = &due

		_, err := deps.service.CreateStructure(ctx, schoolID, req)

		assert.ErrorIs(t, err, feecatalogerrors.ErrInvalidDueDate)
	})
}

func TestFeeCatalogService_UpdateStructure(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	structureID := uuid.New()
	categoryID := uuid.New()

	t.Run("deactivating skips the duplicate check", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		inactive := false
		req := feecatalog.StructureRequest{
			AcademicYear:  "2025-2026",
			GradeLevelID:  uuid.NewString(),
			FeeCategoryID: categoryID.String(),
			PeriodType:    feecatalog.PeriodOneTime,
			Amount:        amount("250"),
			IsActive:      &inactive,
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindStructureByID(ctx, schoolID.String(), structureID.String()).
			Return(&feecatalog.FeeStructure{ID: structureID, SchoolID: schoolID, IsActive: true}, nil)
		deps.repo.EXPECT().
			FindCategoryByID(ctx, schoolID.String(), categoryID.String()).
			Return(&feecatalog.FeeCategory{ID: categoryID, IsActive: true}, nil)
		deps.repo.EXPECT().
			UpdateStructure(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, st *feecatalog.FeeStructure) error {
				assert.False(t, st.IsActive)
				assert.Nil(t, st.Category)
				return nil
			})

		resp, err := deps.service.UpdateStructure(ctx, schoolID.String(), structureID.String(), req)

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
	})
}

func TestFeeCatalogService_DeleteStructure(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	schoolID := uuid.NewString()
	structureID := uuid.NewString()

	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().IsStructureReferenced(ctx, schoolID, structureID).Return(true, nil)

	err := deps.service.DeleteStructure(ctx, schoolID, structureID)

	assert.ErrorIs(t, err, feecatalogerrors.ErrStructureInUse)
}
