package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/repos"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type Repos struct {
	User             repos.UserRepo
	Profile          repos.ProfileRepo
	Review           repos.ReviewRepo
	Job              repos.JobRepo
	CommunityStats   repos.CommunityStatsRepo
	VolunteerEntry   repos.VolunteerEntryRepo
	Badge            repos.BadgeRepo
	TrainingProgress repos.TrainingProgressRepo
	ScoreSnapshot    repos.ScoreSnapshotRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:             repos.NewUserRepo(db, log),
		Profile:          repos.NewProfileRepo(db, log),
		Review:           repos.NewReviewRepo(db, log),
		Job:              repos.NewJobRepo(db, log),
		CommunityStats:   repos.NewCommunityStatsRepo(db, log),
		VolunteerEntry:   repos.NewVolunteerEntryRepo(db, log),
		Badge:            repos.NewBadgeRepo(db, log),
		TrainingProgress: repos.NewTrainingProgressRepo(db, log),
		ScoreSnapshot:    repos.NewScoreSnapshotRepo(db, log),
	}
}
