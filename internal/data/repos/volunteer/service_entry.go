package volunteer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type VolunteerEntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.VolunteerServiceEntry) ([]*types.VolunteerServiceEntry, error)
	GetByID(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) (*types.VolunteerServiceEntry, error)
	Update(ctx context.Context, tx *gorm.DB, entry *types.VolunteerServiceEntry) error
	ListByProfileIDs(ctx context.Context, tx *gorm.DB, profileIDs []uuid.UUID, statuses []string) ([]*types.VolunteerServiceEntry, error)
}

type volunteerEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVolunteerEntryRepo(db *gorm.DB, baseLog *logger.Logger) VolunteerEntryRepo {
	repoLog := baseLog.With("repo", "VolunteerEntryRepo")
	return &volunteerEntryRepo{db: db, log: repoLog}
}

func (vr *volunteerEntryRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.VolunteerServiceEntry) ([]*types.VolunteerServiceEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if len(entries) == 0 {
		return []*types.VolunteerServiceEntry{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID returns nil, nil when the entry does not exist.
func (vr *volunteerEntryRepo) GetByID(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) (*types.VolunteerServiceEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []*types.VolunteerServiceEntry
	if err := transaction.WithContext(ctx).
		Where("id = ?", entryID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (vr *volunteerEntryRepo) Update(ctx context.Context, tx *gorm.DB, entry *types.VolunteerServiceEntry) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	return transaction.WithContext(ctx).
		Model(entry).
		Select("status", "rating", "verified_by", "completed_at", "updated_at").
		Updates(entry).Error
}

// ListByProfileIDs does not apply the scoring window; callers filter by date.
func (vr *volunteerEntryRepo) ListByProfileIDs(ctx context.Context, tx *gorm.DB, profileIDs []uuid.UUID, statuses []string) ([]*types.VolunteerServiceEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []*types.VolunteerServiceEntry
	if len(profileIDs) == 0 {
		return results, nil
	}
	q := transaction.WithContext(ctx).Where("profile_id IN ?", profileIDs)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
