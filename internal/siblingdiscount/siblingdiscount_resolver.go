package siblingdiscount

import (
	"context"
	"sort"

	"go-schoolfee/internal/roster"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResolvePercent ranks family by enrollment date (ties broken by student id),
// takes the ordinal of studentID and returns the percent of the highest tier
// not above that ordinal. It returns zero when there are no tiers, when the
// student has no siblings or when the student is not part of family.
func ResolvePercent(tiers []SiblingDiscountTier, family []Sibling, studentID uuid.UUID) decimal.Decimal {
	if len(tiers) == 0 || len(family) < 2 {
		return decimal.Zero
	}

	ranked := make([]Sibling, len(family))
	copy(ranked, family)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].EnrolledAt.Equal(ranked[j].EnrolledAt) {
			return ranked[i].EnrolledAt.Before(ranked[j].EnrolledAt)
		}
		return ranked[i].StudentID.String() < ranked[j].StudentID.String()
	})

	ordinal := 0
	for i, s := range ranked {
		if s.StudentID == studentID {
			ordinal = i + 1
			break
		}
	}
	if ordinal == 0 {
		return decimal.Zero
	}

	best := -1
	percent := decimal.Zero
	for _, t := range tiers {
		if t.SiblingOrdinal <= ordinal && t.SiblingOrdinal > best {
			best = t.SiblingOrdinal
			percent = t.DiscountPercent
		}
	}
	return percent
}

//go:generate mockgen -source=siblingdiscount_resolver.go -destination=mock/siblingdiscount_resolver_mock.go -package=mock
type Resolver interface {
	Resolve(ctx context.Context, schoolID, studentID, academicYear string) (decimal.Decimal, error)
	ResolveStudent(ctx context.Context, student roster.Student, academicYear string) (decimal.Decimal, error)
}

type resolver struct {
	repo      Repository
	directory roster.Directory
}

func NewResolver(repo Repository, directory roster.Directory) Resolver {
	return &resolver{repo: repo, directory: directory}
}

func (r *resolver) Resolve(ctx context.Context, schoolID, studentID, academicYear string) (decimal.Decimal, error) {
	student, err := r.directory.GetStudent(ctx, schoolID, studentID)
	if err != nil {
		return decimal.Zero, err
	}
	return r.ResolveStudent(ctx, *student, academicYear)
}

func (r *resolver) ResolveStudent(ctx context.Context, student roster.Student, academicYear string) (decimal.Decimal, error) {
	schoolID := student.SchoolID.String()

	tiers, err := r.repo.FindBySchool(ctx, schoolID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(tiers) == 0 || student.FamilyKey == "" {
		return decimal.Zero, nil
	}

	members, err := r.directory.ListSiblings(ctx, schoolID, student.FamilyKey, academicYear)
	if err != nil {
		return decimal.Zero, err
	}

	family := make([]Sibling, len(members))
	for i, m := range members {
		family[i] = Sibling{StudentID: m.ID, EnrolledAt: m.EnrolledAt}
	}
	return ResolvePercent(tiers, family, student.ID), nil
}
