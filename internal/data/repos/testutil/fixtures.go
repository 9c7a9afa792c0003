package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
)

// Fixture helpers. Each inserts one row through db and fails the test on error.

func User(tb testing.TB, db *gorm.DB, role string) *types.User {
	tb.Helper()
	u := &types.User{Email: uuid.NewString() + "@example.com", Role: role}
	mustCreate(tb, db, u)
	return u
}

func Profile(tb testing.TB, db *gorm.DB, userID uuid.UUID, createdAt time.Time) *types.Profile {
	tb.Helper()
	p := &types.Profile{UserID: userID, DisplayName: "profile", TotalScore: "0", CreatedAt: createdAt}
	mustCreate(tb, db, p)
	return p
}

func Review(tb testing.TB, db *gorm.DB, workerID, clientID uuid.UUID, rating *int) *types.Review {
	tb.Helper()
	r := &types.Review{WorkerID: workerID, ClientID: clientID, Rating: rating}
	mustCreate(tb, db, r)
	return r
}

func Job(tb testing.TB, db *gorm.DB, profileID, clientID uuid.UUID) *types.Job {
	tb.Helper()
	j := &types.Job{ProfileID: profileID, ClientID: clientID, Status: "completed"}
	mustCreate(tb, db, j)
	return j
}

func VolunteerEntry(tb testing.TB, db *gorm.DB, profileID uuid.UUID, hours string, rating *int, status string, createdAt time.Time) *types.VolunteerServiceEntry {
	tb.Helper()
	e := &types.VolunteerServiceEntry{
		ProfileID: profileID,
		Title:     "volunteer",
		Hours:     decimal.RequireFromString(hours),
		Rating:    rating,
		Status:    status,
		CreatedAt: createdAt,
	}
	mustCreate(tb, db, e)
	return e
}

func IntPtr(v int) *int { return &v }

func mustCreate(tb testing.TB, db *gorm.DB, v any) {
	tb.Helper()
	if err := db.Create(v).Error; err != nil {
		tb.Fatalf("create %T: %v", v, err)
	}
}
