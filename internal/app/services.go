package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/observability"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Community services.CommunityService
	Volunteer services.VolunteerService
	GigScore  services.GigScoreService
	Badge     services.BadgeService
	Training  services.TrainingService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, metrics *observability.Metrics, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")

	// A nil bus must stay an untyped nil so services skip publishing.
	var publisher services.ScoreEventPublisher
	if clients.ScoreBus != nil {
		publisher = clients.ScoreBus
	}

	auth := services.NewAuthService(log, cfg.JWTSecretKey, cfg.AccessTokenTTL())
	community := services.NewCommunityService(db, log, metrics, repos.CommunityStats)
	volunteer := services.NewVolunteerService(db, log, metrics, repos.Profile, repos.VolunteerEntry)
	gigscore := services.NewGigScoreService(
		db, log, metrics, publisher,
		repos.Profile, repos.Review, repos.Job, repos.ScoreSnapshot,
		community, volunteer,
	)
	badge := services.NewBadgeService(db, log, metrics, publisher, repos.User, repos.Badge, repos.TrainingProgress)
	training := services.NewTrainingService(db, log, repos.TrainingProgress, badge)

	return Services{
		Auth:      auth,
		Community: community,
		Volunteer: volunteer,
		GigScore:  gigscore,
		Badge:     badge,
		Training:  training,
	}
}
