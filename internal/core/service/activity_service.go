package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campuslife/activity-system/internal/core/domain"
	"github.com/campuslife/activity-system/internal/core/ports"
)

// ActivityService implements the activity catalog and participant
// registration use cases.
type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

// Create stores a new activity with an empty participant set. Title,
// description, and date are all required.
func (s *ActivityService) Create(ctx context.Context, input ports.CreateActivityInput) (*domain.Activity, error) {
	if input.Title == "" || input.Description == "" || input.Date == "" {
		return nil, domain.ErrValidation
	}

	activity := &domain.Activity{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create activity")
		return nil, err
	}

	s.logger.Info().Int64("activity_id", created.ID).Str("title", created.Title).Msg("activity created")
	return created, nil
}

// Update applies a partial patch: empty fields leave the stored value
// untouched.
func (s *ActivityService) Update(ctx context.Context, id int64, input ports.UpdateActivityInput) (*domain.Activity, error) {
	patch := domain.ActivityPatch{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("activity_id", id).Msg("activity updated")
	return updated, nil
}

// List returns every activity in creation order.
func (s *ActivityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.repo.List(ctx)
}

// Join registers username as a participant, exactly once. A repeat join is
// surfaced as domain.ErrAlreadyJoined rather than silently ignored.
func (s *ActivityService) Join(ctx context.Context, activityID int64, username string) (*ports.JoinResult, error) {
	activity, err := s.repo.AddParticipant(ctx, activityID, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("activity_id", activityID).Str("username", username).Msg("participant joined")
	return &ports.JoinResult{
		ActivityID:    activity.ID,
		ActivityTitle: activity.Title,
	}, nil
}
