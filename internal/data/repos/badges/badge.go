package badges

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type BadgeRepo interface {
	UpsertCatalog(ctx context.Context, tx *gorm.DB, catalog []types.Badge) error
	GetByTypes(ctx context.Context, tx *gorm.DB, badgeTypes []types.BadgeType) ([]*types.Badge, error)
	ListHeldTypes(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.BadgeType, error)
	ListAwardsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserBadge, error)
	Award(ctx context.Context, tx *gorm.DB, userID, badgeID uuid.UUID, at time.Time) (bool, error)
}

type badgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBadgeRepo(db *gorm.DB, baseLog *logger.Logger) BadgeRepo {
	repoLog := baseLog.With("repo", "BadgeRepo")
	return &badgeRepo{db: db, log: repoLog}
}

// UpsertCatalog inserts missing badge types and refreshes the display fields
// of existing ones. Badge ids never change.
func (br *badgeRepo) UpsertCatalog(ctx context.Context, tx *gorm.DB, catalog []types.Badge) error {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	if len(catalog) == 0 {
		return nil
	}
	rows := make([]*types.Badge, 0, len(catalog))
	for i := range catalog {
		b := catalog[i]
		rows = append(rows, &b)
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "category"}),
		}).
		Create(&rows).Error
}

func (br *badgeRepo) GetByTypes(ctx context.Context, tx *gorm.DB, badgeTypes []types.BadgeType) ([]*types.Badge, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var results []*types.Badge
	if len(badgeTypes) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("type IN ?", badgeTypes).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *badgeRepo) ListHeldTypes(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.BadgeType, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var held []types.BadgeType
	if err := transaction.WithContext(ctx).
		Table("user_badge").
		Joins("JOIN badge ON badge.id = user_badge.badge_id").
		Where("user_badge.user_id = ?", userID).
		Pluck("badge.type", &held).Error; err != nil {
		return nil, err
	}
	return held, nil
}

func (br *badgeRepo) ListAwardsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserBadge, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var results []*types.UserBadge
	if err := transaction.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Award inserts the (user, badge) pair unless it already exists and reports
// whether a new row was written.
func (br *badgeRepo) Award(ctx context.Context, tx *gorm.DB, userID, badgeID uuid.UUID, at time.Time) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Badge").
		Create(&types.UserBadge{UserID: userID, BadgeID: badgeID, EarnedAt: at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
