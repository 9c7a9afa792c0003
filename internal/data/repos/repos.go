package repos

import (
	"github.com/yungbote/gigifypro-backend/internal/data/repos/badges"
	"github.com/yungbote/gigifypro-backend/internal/data/repos/community"
	"github.com/yungbote/gigifypro-backend/internal/data/repos/provider"
	"github.com/yungbote/gigifypro-backend/internal/data/repos/reputation"
	"github.com/yungbote/gigifypro-backend/internal/data/repos/user"
	"github.com/yungbote/gigifypro-backend/internal/data/repos/volunteer"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo

type ProfileRepo = provider.ProfileRepo
type ReviewRepo = provider.ReviewRepo
type JobRepo = provider.JobRepo
type ReviewStats = provider.ReviewStats
type ClientStats = provider.ClientStats

type CommunityStatsRepo = community.CommunityStatsRepo

type VolunteerEntryRepo = volunteer.VolunteerEntryRepo

type BadgeRepo = badges.BadgeRepo
type TrainingProgressRepo = badges.TrainingProgressRepo

type ScoreSnapshotRepo = reputation.ScoreSnapshotRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return provider.NewProfileRepo(db, baseLog)
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return provider.NewReviewRepo(db, baseLog)
}

func NewJobRepo(db *gorm.DB, baseLog *logger.Logger) JobRepo {
	return provider.NewJobRepo(db, baseLog)
}

func NewCommunityStatsRepo(db *gorm.DB, baseLog *logger.Logger) CommunityStatsRepo {
	return community.NewCommunityStatsRepo(db, baseLog)
}

func NewVolunteerEntryRepo(db *gorm.DB, baseLog *logger.Logger) VolunteerEntryRepo {
	return volunteer.NewVolunteerEntryRepo(db, baseLog)
}

func NewBadgeRepo(db *gorm.DB, baseLog *logger.Logger) BadgeRepo {
	return badges.NewBadgeRepo(db, baseLog)
}

func NewTrainingProgressRepo(db *gorm.DB, baseLog *logger.Logger) TrainingProgressRepo {
	return badges.NewTrainingProgressRepo(db, baseLog)
}

func NewScoreSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) ScoreSnapshotRepo {
	return reputation.NewScoreSnapshotRepo(db, baseLog)
}
