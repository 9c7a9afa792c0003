package scoring_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/yungbote/gigifypro-backend/internal/domain/volunteer"
	"github.com/yungbote/gigifypro-backend/internal/scoring"
)

func entry(hours string, rating *int, status string, createdAt time.Time, completedAt *time.Time) *volunteer.ServiceEntry {
	return &volunteer.ServiceEntry{
		Hours:       decimal.RequireFromString(hours),
		Rating:      rating,
		Status:      status,
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}
}

func intPtr(v int) *int { return &v }

func TestVolunteerScore(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, -2, 0)

	Convey("Given volunteer service entries", t, func() {
		Convey("When there are no entries", func() {
			Convey("Then the score is zero", func() {
				So(scoring.VolunteerScore(nil, now), ShouldEqual, 0)
			})
		})

		Convey("When 12 approved hours carry a perfect rating", func() {
			entries := []*volunteer.ServiceEntry{
				entry("7.5", intPtr(5), volunteer.StatusApproved, recent, nil),
				entry("4.5", intPtr(5), volunteer.StatusCompleted, recent, nil),
			}
			res := scoring.EvaluateVolunteer(entries, now)

			Convey("Then the capped base and bonus sum to 80", func() {
				So(res.TotalHours.Equal(decimal.NewFromInt(12)), ShouldBeTrue)
				So(res.BaseScore, ShouldEqual, 60)
				So(res.RatingBonus, ShouldEqual, 20)
				So(res.Score, ShouldEqual, 80)
			})
		})

		Convey("When no qualifying entry has a rating", func() {
			entries := []*volunteer.ServiceEntry{
				entry("2", nil, volunteer.StatusApproved, recent, nil),
			}
			res := scoring.EvaluateVolunteer(entries, now)

			Convey("Then the average defaults to five stars", func() {
				So(res.AverageRating, ShouldEqual, 5)
				So(res.Score, ShouldEqual, 30)
			})
		})

		Convey("When ratings average below three stars", func() {
			entries := []*volunteer.ServiceEntry{
				entry("1", intPtr(2), volunteer.StatusCompleted, recent, nil),
				entry("1", intPtr(1), volunteer.StatusCompleted, recent, nil),
			}

			Convey("Then no bonus is granted", func() {
				res := scoring.EvaluateVolunteer(entries, now)
				So(res.RatingBonus, ShouldEqual, 0)
				So(res.Score, ShouldEqual, 10)
			})
		})

		Convey("When only unrated entries sit beside rated ones", func() {
			entries := []*volunteer.ServiceEntry{
				entry("1", intPtr(4), volunteer.StatusApproved, recent, nil),
				entry("1", nil, volunteer.StatusApproved, recent, nil),
			}

			Convey("Then the average uses the rated entries only", func() {
				So(scoring.EvaluateVolunteer(entries, now).AverageRating, ShouldEqual, 4)
			})
		})

		Convey("When every entry is filtered out by status or window", func() {
			old := now.AddDate(-2, 0, 0)
			entries := []*volunteer.ServiceEntry{
				entry("50", intPtr(5), volunteer.StatusPending, recent, nil),
				entry("50", intPtr(5), volunteer.StatusRejected, recent, nil),
				entry("50", intPtr(5), volunteer.StatusApproved, old, nil),
				entry("50", intPtr(5), volunteer.StatusCompleted, old, &old),
			}

			Convey("Then the stale entries contribute nothing", func() {
				res := scoring.EvaluateVolunteer(entries, now)
				So(res.QualifyingEntries, ShouldEqual, 0)
				So(res.Score, ShouldEqual, 0)
			})
		})

		Convey("When the completion date differs from the creation date", func() {
			old := now.AddDate(-3, 0, 0)
			done := now.AddDate(0, -1, 0)
			staleDone := now.AddDate(-1, 0, -1)

			Convey("Then the completion date decides the window", func() {
				So(scoring.Qualifies(entry("1", nil, volunteer.StatusCompleted, old, &done), now), ShouldBeTrue)
				So(scoring.Qualifies(entry("1", nil, volunteer.StatusCompleted, recent, &staleDone), now), ShouldBeFalse)
			})
		})

		Convey("When an entry sits exactly on the calendar-year boundary", func() {
			boundary := scoring.VolunteerWindowStart(now)

			Convey("Then it still counts", func() {
				So(boundary.Equal(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)), ShouldBeTrue)
				So(scoring.Qualifies(entry("1", nil, volunteer.StatusApproved, boundary, nil), now), ShouldBeTrue)
				So(scoring.Qualifies(entry("1", nil, volunteer.StatusApproved, boundary.Add(-time.Second), nil), now), ShouldBeFalse)
			})
		})
	})
}
