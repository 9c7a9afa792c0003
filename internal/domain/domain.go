package domain

import (
	"github.com/yungbote/gigifypro-backend/internal/domain/badges"
	"github.com/yungbote/gigifypro-backend/internal/domain/community"
	"github.com/yungbote/gigifypro-backend/internal/domain/provider"
	"github.com/yungbote/gigifypro-backend/internal/domain/reputation"
	"github.com/yungbote/gigifypro-backend/internal/domain/user"
	"github.com/yungbote/gigifypro-backend/internal/domain/volunteer"
)

const (
	RoleWorker = user.RoleWorker
	RoleClient = user.RoleClient
	RoleAdmin  = user.RoleAdmin

	DefaultRating          = provider.DefaultRating
	DefaultResponseMinutes = provider.DefaultResponseMinutes

	JobStatusRequested = provider.JobStatusRequested
	JobStatusCompleted = provider.JobStatusCompleted

	VolunteerStatusPending   = volunteer.StatusPending
	VolunteerStatusApproved  = volunteer.StatusApproved
	VolunteerStatusCompleted = volunteer.StatusCompleted
	VolunteerStatusRejected  = volunteer.StatusRejected

	BadgeSafetyVerified   = badges.TypeSafetyVerified
	BadgeBusinessReady    = badges.TypeBusinessReady
	BadgeVerifiedIdentity = badges.TypeVerifiedIdentity

	EventGigScoreUpdated = reputation.EventGigScoreUpdated
	EventBadgesAwarded   = reputation.EventBadgesAwarded
)

type (
	User = user.User

	Profile = provider.Profile
	Review  = provider.Review
	Job     = provider.Job

	CommunityActivityStats = community.ActivityStats
	CommunityDelta         = community.Delta

	VolunteerServiceEntry = volunteer.ServiceEntry

	Badge            = badges.Badge
	BadgeType        = badges.Type
	UserBadge        = badges.UserBadge
	TrainingProgress = badges.TrainingProgress

	ScoreSnapshot = reputation.ScoreSnapshot
	ScoreEvent    = reputation.Event
)

// Models lists every table owned by this service, in migration order.
func Models() []any {
	return []any{
		&user.User{},
		&provider.Profile{},
		&provider.Review{},
		&provider.Job{},
		&community.ActivityStats{},
		&volunteer.ServiceEntry{},
		&badges.Badge{},
		&badges.UserBadge{},
		&badges.TrainingProgress{},
		&reputation.ScoreSnapshot{},
	}
}
