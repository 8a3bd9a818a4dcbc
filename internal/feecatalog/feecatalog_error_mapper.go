package feecatalog

import (
	"errors"
	"strings"

	feecatalogerrors "go-schoolfee/internal/feecatalog/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_fee_category_code":
				return feecatalogerrors.ErrCategoryCodeExists
			case "uq_fee_structure_active":
				return feecatalogerrors.ErrStructureDuplicate
			}
		case "23503":
			if strings.Contains(pgErr.TableName, "student_fees") || strings.Contains(pgErr.ConstraintName, "student_fees") {
				if errors.Is(notFound, feecatalogerrors.ErrCategoryNotFound) {
					return feecatalogerrors.ErrCategoryInUse
				}
				return feecatalogerrors.ErrStructureInUse
			}
			if strings.Contains(pgErr.ConstraintName, "fee_structures") {
				return feecatalogerrors.ErrCategoryInUse
			}
		}
	}

	return err
}
