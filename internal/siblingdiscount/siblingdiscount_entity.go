package siblingdiscount

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SiblingDiscountTier maps a sibling ordinal to a discount. The highest tier
// is open ended: a tier with ordinal 3 also covers the 4th and later siblings.
type SiblingDiscountTier struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_sibling_tier_ordinal"`
	SiblingOrdinal  int             `gorm:"not null;uniqueIndex:uq_sibling_tier_ordinal"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SiblingDiscountTier) TableName() string {
	return "sibling_discount_tiers"
}

// Sibling is one member of a family as seen at resolution time.
type Sibling struct {
	StudentID  uuid.UUID
	EnrolledAt time.Time
}
