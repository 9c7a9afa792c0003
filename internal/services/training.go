package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/dberr"
	"github.com/yungbote/gigifypro-backend/internal/data/repos"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

const maxArticleIDLength = 128

type TrainingService interface {
	Complete(ctx context.Context, userID uuid.UUID, articleID string) ([]types.BadgeType, error)
}

type trainingService struct {
	db           *gorm.DB
	log          *logger.Logger
	trainingRepo repos.TrainingProgressRepo
	badges       BadgeService
	now          func() time.Time
}

func NewTrainingService(db *gorm.DB, log *logger.Logger, trainingRepo repos.TrainingProgressRepo, badges BadgeService) TrainingService {
	serviceLog := log.With("service", "TrainingService")
	return &trainingService{
		db:           db,
		log:          serviceLog,
		trainingRepo: trainingRepo,
		badges:       badges,
		now:          time.Now,
	}
}

// Complete records the article as finished and re-runs the badge evaluator.
func (ts *trainingService) Complete(ctx context.Context, userID uuid.UUID, articleID string) ([]types.BadgeType, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	articleID = strings.TrimSpace(articleID)
	if articleID == "" || len(articleID) > maxArticleIDLength {
		return nil, invalid("articleId is required and at most 128 characters")
	}
	if err := ts.trainingRepo.MarkCompleted(ctx, nil, userID, articleID, ts.now().UTC()); err != nil {
		return nil, dberr.Map("training.complete", err)
	}
	ts.log.Debug("training completed", "user_id", userID, "article_id", articleID)
	return ts.badges.CheckAndAward(ctx, userID)
}
