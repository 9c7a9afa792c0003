package reputation

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventGigScoreUpdated = "gigscore.updated"
	EventBadgesAwarded   = "badges.awarded"
)

// Event is broadcast after a score or badge change has been committed.
type Event struct {
	Type       string     `json:"type"`
	ProfileID  *uuid.UUID `json:"profileId,omitempty"`
	UserID     *uuid.UUID `json:"userId,omitempty"`
	TotalScore *int       `json:"totalScore,omitempty"`
	Badges     []string   `json:"badges,omitempty"`
	At         time.Time  `json:"at"`
}
