package siblingdiscount

import (
	"context"
	"database/sql"

	"go-schoolfee/internal/shared/contextutil"
	"go-schoolfee/internal/shared/money"
	siblingdiscounterrors "go-schoolfee/internal/siblingdiscount/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=siblingdiscount_service.go -destination=mock/siblingdiscount_service_mock.go -package=mock
type Service interface {
	GetTiers(ctx context.Context, schoolID string) ([]TierResponse, error)
	ReplaceTiers(ctx context.Context, schoolID string, req ReplaceTiersRequest) ([]TierResponse, error)
	Preview(ctx context.Context, schoolID string, req PreviewRequest) (PreviewResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver Resolver
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, resolver Resolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("siblingdiscount.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("siblingdiscount.service")
	}
	return &service{db: db, repo: repo, resolver: resolver, logger: l}
}

func (s *service) GetTiers(ctx context.Context, schoolID string) ([]TierResponse, error) {
	tiers, err := s.repo.FindBySchool(ctx, schoolID)
	if err != nil {
		s.logger.Error("get sibling discount tiers failed", zap.String("school_id", schoolID), zap.Error(err))
		return nil, err
	}
	return mapTiers(tiers), nil
}

// ReplaceTiers swaps the school's whole tier table in one transaction.
func (s *service) ReplaceTiers(ctx context.Context, schoolID string, req ReplaceTiersRequest) ([]TierResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("replace sibling discount tiers requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.Int("tiers", len(req.Tiers)),
	)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return nil, siblingdiscounterrors.ErrInvalidSchoolID
	}

	tiers, err := buildTiers(schoolUUID, req)
	if err != nil {
		s.logger.Warn("replace sibling discount tiers validation failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("replace sibling discount tiers begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteBySchool(ctx, schoolID); err != nil {
		s.logger.Error("clear sibling discount tiers failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	if err := qtx.CreateMany(ctx, tiers); err != nil {
		s.logger.Error("persist sibling discount tiers failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("replace sibling discount tiers commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	s.logger.Info("replace sibling discount tiers success",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.Int("tiers", len(tiers)),
	)
	return mapTiers(tiers), nil
}

func (s *service) Preview(ctx context.Context, schoolID string, req PreviewRequest) (PreviewResponse, error) {
	percent, err := s.resolver.Resolve(ctx, schoolID, req.StudentID, req.AcademicYear)
	if err != nil {
		return PreviewResponse{}, err
	}
	return PreviewResponse{
		StudentID:       req.StudentID,
		AcademicYear:    req.AcademicYear,
		DiscountPercent: percent,
	}, nil
}

func buildTiers(schoolID uuid.UUID, req ReplaceTiersRequest) ([]SiblingDiscountTier, error) {
	seen := make(map[int]struct{}, len(req.Tiers))
	tiers := make([]SiblingDiscountTier, 0, len(req.Tiers))

	for _, t := range req.Tiers {
		if t.SiblingOrdinal < 1 {
			return nil, siblingdiscounterrors.ErrInvalidOrdinal
		}
		if _, dup := seen[t.SiblingOrdinal]; dup {
			return nil, siblingdiscounterrors.ErrDuplicateOrdinal
		}
		seen[t.SiblingOrdinal] = struct{}{}

		if t.DiscountPercent == nil || !money.ValidPercent(*t.DiscountPercent) {
			return nil, siblingdiscounterrors.ErrInvalidPercent
		}

		tiers = append(tiers, SiblingDiscountTier{
			ID:              uuid.New(),
			SchoolID:        schoolID,
			SiblingOrdinal:  t.SiblingOrdinal,
			DiscountPercent: t.DiscountPercent.Round(2),
		})
	}
	return tiers, nil
}

func mapTiers(tiers []SiblingDiscountTier) []TierResponse {
	resp := make([]TierResponse, len(tiers))
	for i, t := range tiers {
		resp[i] = TierResponse{
			SiblingOrdinal:  t.SiblingOrdinal,
			DiscountPercent: t.DiscountPercent,
		}
	}
	return resp
}
