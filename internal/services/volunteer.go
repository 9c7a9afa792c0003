package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/dberr"
	"github.com/yungbote/gigifypro-backend/internal/data/repos"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/domain/volunteer"
	"github.com/yungbote/gigifypro-backend/internal/observability"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/scoring"
)

type CreateVolunteerEntryInput struct {
	ProfileID   uuid.UUID        `json:"profileId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Hours       *decimal.Decimal `json:"hours"`
	ValueCents  *int64           `json:"valueCents"`
}

type ModerateVolunteerEntryInput struct {
	Status     *string    `json:"status"`
	Rating     *int       `json:"rating"`
	VerifiedBy *uuid.UUID `json:"verifiedBy"`
}

type VolunteerService interface {
	Score(ctx context.Context, userID uuid.UUID) (int, error)
	Evaluate(ctx context.Context, userID uuid.UUID) (scoring.VolunteerResult, error)
	CreateEntry(ctx context.Context, callerID uuid.UUID, in CreateVolunteerEntryInput) (*types.VolunteerServiceEntry, error)
	Moderate(ctx context.Context, moderatorID, entryID uuid.UUID, in ModerateVolunteerEntryInput) (*types.VolunteerServiceEntry, error)
}

type volunteerService struct {
	db          *gorm.DB
	log         *logger.Logger
	metrics     *observability.Metrics
	profileRepo repos.ProfileRepo
	entryRepo   repos.VolunteerEntryRepo
	now         func() time.Time
}

func NewVolunteerService(
	db *gorm.DB,
	log *logger.Logger,
	metrics *observability.Metrics,
	profileRepo repos.ProfileRepo,
	entryRepo repos.VolunteerEntryRepo,
) VolunteerService {
	serviceLog := log.With("service", "VolunteerService")
	return &volunteerService{
		db:          db,
		log:         serviceLog,
		metrics:     metrics,
		profileRepo: profileRepo,
		entryRepo:   entryRepo,
		now:         time.Now,
	}
}

func (vs *volunteerService) Score(ctx context.Context, userID uuid.UUID) (int, error) {
	res, err := vs.Evaluate(ctx, userID)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// Evaluate scores every counted entry across all of the user's profiles.
// A user without profiles scores 0.
func (vs *volunteerService) Evaluate(ctx context.Context, userID uuid.UUID) (res scoring.VolunteerResult, err error) {
	start := time.Now()
	defer func() { vs.metrics.ObserveScore("volunteer", time.Since(start), err) }()

	profileIDs, err := vs.profileRepo.ListIDsByUserID(ctx, nil, userID)
	if err != nil {
		return scoring.VolunteerResult{}, dberr.Map("volunteer.profiles", err)
	}
	if len(profileIDs) == 0 {
		return scoring.EvaluateVolunteer(nil, vs.now()), nil
	}
	entries, err := vs.entryRepo.ListByProfileIDs(ctx, nil, profileIDs, volunteer.CountedStatuses)
	if err != nil {
		return scoring.VolunteerResult{}, dberr.Map("volunteer.entries", err)
	}
	return scoring.EvaluateVolunteer(entries, vs.now()), nil
}

func (vs *volunteerService) CreateEntry(ctx context.Context, callerID uuid.UUID, in CreateVolunteerEntryInput) (*types.VolunteerServiceEntry, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if in.ProfileID == uuid.Nil {
		return nil, invalid("profileId is required")
	}
	hours := decimal.Zero
	if in.Hours != nil {
		if in.Hours.IsNegative() {
			return nil, invalid("hours must be non-negative")
		}
		hours = in.Hours.Round(2)
	}
	var valueCents int64
	if in.ValueCents != nil {
		if *in.ValueCents < 0 {
			return nil, invalid("valueCents must be non-negative")
		}
		valueCents = *in.ValueCents
	}

	var created *types.VolunteerServiceEntry
	err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := vs.profileRepo.GetByID(ctx, tx, in.ProfileID)
		if err != nil {
			return dberr.Map("volunteer.create.profile", err)
		}
		if profile == nil {
			return ErrProfileNotFound
		}
		if profile.UserID != callerID {
			return ErrForbidden
		}
		rows, err := vs.entryRepo.Create(ctx, tx, []*types.VolunteerServiceEntry{{
			ProfileID:   profile.ID,
			Title:       strings.TrimSpace(in.Title),
			Description: strings.TrimSpace(in.Description),
			Hours:       hours,
			ValueCents:  valueCents,
			Status:      types.VolunteerStatusPending,
		}})
		if err != nil {
			return dberr.Map("volunteer.create", err)
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	vs.log.Info("volunteer entry created", "entry_id", created.ID, "profile_id", created.ProfileID)
	return created, nil
}

// Moderate applies the provided fields. Moving to completed stamps completed_at;
// approving or completing without an explicit verifier records the moderator.
func (vs *volunteerService) Moderate(ctx context.Context, moderatorID, entryID uuid.UUID, in ModerateVolunteerEntryInput) (*types.VolunteerServiceEntry, error) {
	if in.Status != nil && !volunteer.ValidStatus(*in.Status) {
		return nil, invalid("status must be one of pending, approved, completed, rejected")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, invalid("rating must be between 1 and 5")
	}

	var updated *types.VolunteerServiceEntry
	err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := vs.entryRepo.GetByID(ctx, tx, entryID)
		if err != nil {
			return dberr.Map("volunteer.moderate.get", err)
		}
		if entry == nil {
			return ErrVolunteerEntryNotFound
		}

		now := vs.now().UTC()
		if in.Status != nil {
			entry.Status = *in.Status
			if entry.Status == types.VolunteerStatusCompleted {
				entry.CompletedAt = &now
			}
		}
		if in.Rating != nil {
			entry.Rating = in.Rating
		}
		switch {
		case in.VerifiedBy != nil:
			entry.VerifiedBy = in.VerifiedBy
		case in.Status != nil && entry.VerifiedBy == nil && moderatorID != uuid.Nil &&
			(entry.Status == types.VolunteerStatusApproved || entry.Status == types.VolunteerStatusCompleted):
			mod := moderatorID
			entry.VerifiedBy = &mod
		}
		entry.UpdatedAt = now

		if err := vs.entryRepo.Update(ctx, tx, entry); err != nil {
			return dberr.Map("volunteer.moderate.update", err)
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	vs.log.Info("volunteer entry moderated", "entry_id", updated.ID, "status", updated.Status)
	return updated, nil
}
