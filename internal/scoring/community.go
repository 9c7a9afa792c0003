package scoring

import (
	"math"

	"github.com/yungbote/gigifypro-backend/internal/domain/community"
)

const (
	helpfulReactPoints   = 3
	postPoints           = 2
	commentPoints        = 1
	acceptedAnswerPoints = 4

	// communitySaturationPoints maps to a full 100 sub-score.
	communitySaturationPoints = 60
)

// CommunityPoints is the weighted raw engagement total.
func CommunityPoints(stats *community.ActivityStats) int64 {
	if stats == nil {
		return 0
	}
	return helpfulReactPoints*stats.HelpfulReacts +
		postPoints*stats.Posts +
		commentPoints*stats.Comments +
		acceptedAnswerPoints*stats.AcceptedAnswers
}

// CommunityScore normalizes engagement into [0, 100]. A missing row scores 0.
func CommunityScore(stats *community.ActivityStats) int {
	points := CommunityPoints(stats)
	if points <= 0 {
		return 0
	}
	score := math.Round(float64(points) / communitySaturationPoints * 100)
	return int(math.Min(100, score))
}
