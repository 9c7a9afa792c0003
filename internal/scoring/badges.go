package scoring

import (
	"github.com/yungbote/gigifypro-backend/internal/domain/badges"
	"github.com/yungbote/gigifypro-backend/internal/domain/user"
)

const (
	safetyVerifiedModules = 2
	businessReadyModules  = 3
)

// BadgeState is what the evaluator knows about a user at one point in time.
type BadgeState struct {
	Role               string
	CompletedTrainings int64
	Held               map[badges.Type]bool
}

type badgeRule struct {
	badge    badges.Type
	eligible func(BadgeState) bool
}

var badgeRules = []badgeRule{
	{badge: badges.TypeSafetyVerified, eligible: func(s BadgeState) bool {
		return s.CompletedTrainings >= safetyVerifiedModules
	}},
	{badge: badges.TypeBusinessReady, eligible: func(s BadgeState) bool {
		return s.CompletedTrainings >= businessReadyModules
	}},
	{badge: badges.TypeVerifiedIdentity, eligible: identityVerified},
}

// identityVerified grants the identity badge to every worker until a real
// background check provider is integrated.
func identityVerified(s BadgeState) bool {
	return s.Role == user.RoleWorker
}

// EligibleBadges returns, in rule order, the badges the user qualifies for
// and does not hold yet. Each rule is evaluated independently.
func EligibleBadges(s BadgeState) []badges.Type {
	out := make([]badges.Type, 0, len(badgeRules))
	for _, r := range badgeRules {
		if s.Held[r.badge] {
			continue
		}
		if r.eligible(s) {
			out = append(out, r.badge)
		}
	}
	return out
}
