package provider

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

// ClientStats are lifetime job counts for one profile.
type ClientStats struct {
	Total           int64
	DistinctClients int64
	RepeatClients   int64
}

type JobRepo interface {
	Create(ctx context.Context, tx *gorm.DB, jobs []*types.Job) ([]*types.Job, error)
	ClientStatsByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (ClientStats, error)
}

type jobRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJobRepo(db *gorm.DB, baseLog *logger.Logger) JobRepo {
	repoLog := baseLog.With("repo", "JobRepo")
	return &jobRepo{db: db, log: repoLog}
}

func (jr *jobRepo) Create(ctx context.Context, tx *gorm.DB, jobs []*types.Job) ([]*types.Job, error) {
	transaction := tx
	if transaction == nil {
		transaction = jr.db
	}
	if len(jobs) == 0 {
		return []*types.Job{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ClientStatsByProfile counts every job record for the profile. A repeat
// client appears in at least two of them.
func (jr *jobRepo) ClientStatsByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (ClientStats, error) {
	transaction := tx
	if transaction == nil {
		transaction = jr.db
	}
	var row struct {
		Total           int64
		DistinctClients int64
		RepeatClients   int64
	}
	perClient := transaction.
		Model(&types.Job{}).
		Select("client_id, COUNT(*) AS n").
		Where("profile_id = ?", profileID).
		Group("client_id")

	if err := transaction.WithContext(ctx).
		Table("(?) AS per_client", perClient).
		Select(
			"COALESCE(SUM(n), 0) AS total, " +
				"COUNT(*) AS distinct_clients, " +
				"COALESCE(SUM(CASE WHEN n >= 2 THEN 1 ELSE 0 END), 0) AS repeat_clients",
		).
		Scan(&row).Error; err != nil {
		return ClientStats{}, err
	}
	return ClientStats{Total: row.Total, DistinctClients: row.DistinctClients, RepeatClients: row.RepeatClients}, nil
}
