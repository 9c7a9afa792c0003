package scoring

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yungbote/gigifypro-backend/internal/domain/volunteer"
)

const (
	volunteerPointsPerHour = 5
	volunteerBaseCap       = 60
	volunteerBonusPivot    = 3
	volunteerBonusPerStar  = 10
	volunteerDefaultRating = 5
)

// VolunteerResult explains how a volunteer sub-score was reached.
type VolunteerResult struct {
	QualifyingEntries int             `json:"qualifyingEntries"`
	TotalHours        decimal.Decimal `json:"totalHours"`
	AverageRating     float64         `json:"averageRating"`
	BaseScore         float64         `json:"baseScore"`
	RatingBonus       float64         `json:"ratingBonus"`
	Score             int             `json:"score"`
}

// VolunteerWindowStart is the oldest effective date that still counts:
// the same calendar day one year before now.
func VolunteerWindowStart(now time.Time) time.Time {
	return now.AddDate(-1, 0, 0)
}

// Qualifies reports whether an entry earns credit at now.
func Qualifies(e *volunteer.ServiceEntry, now time.Time) bool {
	if e == nil {
		return false
	}
	if e.Status != volunteer.StatusApproved && e.Status != volunteer.StatusCompleted {
		return false
	}
	return !e.EffectiveAt().Before(VolunteerWindowStart(now))
}

// EvaluateVolunteer filters entries to the approved/completed ones inside the
// trailing year and scores them. Hours cap at 60 base points; the rating
// bonus adds up to 20 on top.
func EvaluateVolunteer(entries []*volunteer.ServiceEntry, now time.Time) VolunteerResult {
	res := VolunteerResult{TotalHours: decimal.Zero}

	ratingSum, rated := 0, 0
	for _, e := range entries {
		if !Qualifies(e, now) {
			continue
		}
		res.QualifyingEntries++
		res.TotalHours = res.TotalHours.Add(e.Hours)
		if e.Rating != nil {
			ratingSum += *e.Rating
			rated++
		}
	}
	if res.QualifyingEntries == 0 {
		return res
	}

	res.AverageRating = volunteerDefaultRating
	if rated > 0 {
		res.AverageRating = float64(ratingSum) / float64(rated)
	}

	hours := res.TotalHours.InexactFloat64()
	res.BaseScore = math.Min(volunteerBaseCap, hours*volunteerPointsPerHour)
	res.RatingBonus = math.Max(0, (res.AverageRating-volunteerBonusPivot)*volunteerBonusPerStar)
	res.Score = int(math.Min(100, math.Round(res.BaseScore+res.RatingBonus)))
	return res
}

// VolunteerScore is the [0, 100] volunteer sub-score.
func VolunteerScore(entries []*volunteer.ServiceEntry, now time.Time) int {
	return EvaluateVolunteer(entries, now).Score
}
