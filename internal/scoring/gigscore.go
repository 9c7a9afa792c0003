package scoring

import (
	"math"
)

// Point budgets per component. They sum to 100, so the rounded total of the
// individually capped components never leaves [0, 100].
const (
	WeightReviewQuality        = 35
	WeightCompletedJobs        = 22
	WeightResponseTime         = 12
	WeightCancellations        = 10
	WeightRepeatClients        = 10
	WeightCommunityInvolvement = 6
	WeightVolunteerism         = 5

	maxRating = 5

	// completedJobsSaturation is where the log curve reaches the full budget.
	completedJobsSaturation = 100
)

// Signals are the raw inputs for one profile, already parsed into numbers.
type Signals struct {
	ReviewCount     int64   `json:"reviewCount"`
	ReviewLikes     int64   `json:"reviewLikes"`
	AverageRating   float64 `json:"averageRating"`
	CompletedJobs   int64   `json:"completedJobs"`
	ResponseMinutes int     `json:"responseMinutes"`
	DistinctClients int64   `json:"distinctClients"`
	RepeatClients   int64   `json:"repeatClients"`
	CommunityScore  int     `json:"communityScore"`
	VolunteerScore  int     `json:"volunteerScore"`
}

// Breakdown is the weighted result for one profile.
type Breakdown struct {
	ReviewQuality        float64 `json:"reviewQuality"`
	CompletedJobs        float64 `json:"completedJobs"`
	ResponseTime         float64 `json:"responseTime"`
	Cancellations        float64 `json:"cancellations"`
	RepeatClients        float64 `json:"repeatClients"`
	CommunityInvolvement float64 `json:"communityInvolvement"`
	Volunteerism         float64 `json:"volunteerism"`
	TotalScore           int     `json:"totalScore"`
}

// Sum is the unrounded total of the seven components.
func (b Breakdown) Sum() float64 {
	return b.ReviewQuality + b.CompletedJobs + b.ResponseTime + b.Cancellations +
		b.RepeatClients + b.CommunityInvolvement + b.Volunteerism
}

// Aggregate weighs the signals into a GigScore.
func Aggregate(s Signals) Breakdown {
	b := Breakdown{
		ReviewQuality:        ReviewQualityPoints(s.ReviewCount, s.AverageRating),
		CompletedJobs:        CompletedJobsPoints(s.CompletedJobs),
		ResponseTime:         ResponseTimePoints(s.ResponseMinutes),
		Cancellations:        cancellationPoints(s),
		RepeatClients:        RepeatClientPoints(s.DistinctClients, s.RepeatClients),
		CommunityInvolvement: float64(clampScore(s.CommunityScore)) / 100 * WeightCommunityInvolvement,
		Volunteerism:         float64(clampScore(s.VolunteerScore)) / 100 * WeightVolunteerism,
	}
	b.TotalScore = int(math.Round(b.Sum()))
	return b
}

func ReviewQualityPoints(count int64, avgRating float64) float64 {
	if count <= 0 {
		return 0
	}
	return clamp(avgRating/maxRating*WeightReviewQuality, 0, WeightReviewQuality)
}

// CompletedJobsPoints scales the job count logarithmically: early jobs count
// far more than later ones and the budget is reached around 100 jobs.
func CompletedJobsPoints(jobs int64) float64 {
	if jobs <= 0 {
		return 0
	}
	pts := math.Log10(float64(jobs)+1) / math.Log10(completedJobsSaturation) * WeightCompletedJobs
	return math.Min(WeightCompletedJobs, pts)
}

func ResponseTimePoints(minutes int) float64 {
	switch {
	case minutes <= 15:
		return 12
	case minutes <= 30:
		return 9
	case minutes <= 60:
		return 6
	case minutes <= 120:
		return 4
	default:
		return 2
	}
}

// cancellationPoints always grants full credit. Cancellation data is not
// tracked yet; replace this once bookings record cancellations.
func cancellationPoints(Signals) float64 {
	return WeightCancellations
}

// RepeatClientPoints is the lifetime share of clients who booked at least twice.
func RepeatClientPoints(distinct, repeat int64) float64 {
	if distinct <= 0 {
		return 0
	}
	return clamp(float64(repeat)/float64(distinct), 0, 1) * WeightRepeatClients
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
