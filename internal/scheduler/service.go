package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postsched/internal/common"
	"postsched/internal/config"
	"postsched/internal/dbmysql"
	"postsched/internal/monitoring"
	"postsched/internal/sentiment"

	log "github.com/sirupsen/logrus"
)

// ScheduleService owns the lifecycle of a scheduled post: create,
// reschedule, and execute-on-fire.
type ScheduleService interface {
	Schedule(ctx context.Context, ownerID uint64, text string, fireAt time.Time) (*dbmysql.ScheduleEntry, error)
	Reschedule(ctx context.Context, entryID, ownerID uint64, text string, fireAt time.Time) (*dbmysql.ScheduleEntry, error)
	Execute(ctx context.Context, payload common.JobPayload) error
	ListPosts(ctx context.Context, ownerID uint64) ([]dbmysql.Post, error)
	GetPost(ctx context.Context, postID, ownerID uint64) (*dbmysql.Post, error)
}

type scheduleService struct {
	entryRepo  dbmysql.ScheduleEntryRepository
	postRepo   dbmysql.PostRepository
	credRepo   dbmysql.CredentialRepository
	dispatcher common.Dispatcher
	remote     common.RemoteClient
	clock      common.Clock

	maxTextLength int
	pastTolerance time.Duration
}

func NewScheduleService(
	cfg *config.Config,
	entryRepo dbmysql.ScheduleEntryRepository,
	postRepo dbmysql.PostRepository,
	credRepo dbmysql.CredentialRepository,
	dispatcher common.Dispatcher,
	remote common.RemoteClient,
	clock common.Clock,
) ScheduleService {
	return &scheduleService{
		entryRepo:     entryRepo,
		postRepo:      postRepo,
		credRepo:      credRepo,
		dispatcher:    dispatcher,
		remote:        remote,
		clock:         clock,
		maxTextLength: cfg.Scheduler.MaxTextLength,
		pastTolerance: cfg.PastTolerance(),
	}
}

// Schedule validates the request, writes the post and entry atomically and
// submits the dispatcher job. Exactly one pending job exists after return.
func (s *scheduleService) Schedule(ctx context.Context, ownerID uint64, text string, fireAt time.Time) (*dbmysql.ScheduleEntry, error) {
	if err := s.validate(text, fireAt); err != nil {
		return nil, err
	}

	post := &dbmysql.Post{
		OwnerID:   ownerID,
		Text:      text,
		Sentiment: string(sentiment.Classify(text)),
	}

	entry, err := s.entryRepo.CreateWithPost(ctx, post, fireAt)
	if err != nil {
		return nil, err
	}

	token, err := s.dispatcher.Submit(ctx, fireAt, common.JobPayload{OwnerID: ownerID, EntryID: entry.EntryID})
	if err != nil {
		// No job means no schedule: unwind the records instead of leaving an
		// entry that will never fire.
		if delErr := s.entryRepo.DeleteWithPost(ctx, entry); delErr != nil {
			log.WithField("entry_id", entry.EntryID).WithError(delErr).Error("failed to unwind unsubmitted schedule entry")
		}
		return nil, fmt.Errorf("failed to submit job: %w", err)
	}

	if err := s.entryRepo.SetJobToken(ctx, entry.EntryID, token); err != nil {
		return nil, err
	}
	entry.JobToken = &token

	log.WithFields(log.Fields{
		"owner_id": ownerID,
		"entry_id": entry.EntryID,
		"fire_at":  fireAt,
	}).Info("post scheduled")

	return entry, nil
}

// Reschedule cancels the current job before submitting the new one so two
// jobs for the same entry are never simultaneously live. Cancellation is
// best-effort; a stale job that survives it is fenced off in Execute.
func (s *scheduleService) Reschedule(ctx context.Context, entryID, ownerID uint64, text string, fireAt time.Time) (*dbmysql.ScheduleEntry, error) {
	entry, err := s.entryRepo.GetForOwner(ctx, entryID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(text, fireAt); err != nil {
		return nil, err
	}

	if entry.JobToken != nil {
		if err := s.dispatcher.Cancel(ctx, *entry.JobToken); err != nil {
			log.WithField("entry_id", entryID).WithError(err).Warn("could not confirm job cancellation")
		}
	}

	if err := s.entryRepo.UpdateSchedule(ctx, entry, text, string(sentiment.Classify(text)), fireAt); err != nil {
		return nil, err
	}

	token, err := s.dispatcher.Submit(ctx, fireAt, common.JobPayload{OwnerID: ownerID, EntryID: entry.EntryID})
	if err != nil {
		return nil, fmt.Errorf("failed to submit job: %w", err)
	}

	if err := s.entryRepo.SetJobToken(ctx, entry.EntryID, token); err != nil {
		return nil, err
	}
	entry.JobToken = &token

	log.WithFields(log.Fields{
		"owner_id": ownerID,
		"entry_id": entryID,
		"fire_at":  fireAt,
	}).Info("post rescheduled")

	return entry, nil
}

// Execute is invoked by the dispatcher when a job fires. It is idempotent:
// a missing entry means the job already ran or was cancelled, and the remote
// publish is attempted at most once per live entry.
func (s *scheduleService) Execute(ctx context.Context, payload common.JobPayload) error {
	entry, err := s.entryRepo.GetForOwner(ctx, payload.EntryID, payload.OwnerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Stale job that survived a cancellation race, or a duplicate
			// delivery after the entry completed. Already handled.
			monitoring.PublishesTotal.WithLabelValues("fenced").Inc()
			log.WithFields(log.Fields{
				"owner_id": payload.OwnerID,
				"entry_id": payload.EntryID,
			}).Debug("fired job has no live entry, skipping")
			return nil
		}
		return err
	}

	token, err := s.credRepo.TokenForOwner(ctx, payload.OwnerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			monitoring.PublishesTotal.WithLabelValues("auth_error").Inc()
			return &common.AuthError{OwnerID: payload.OwnerID, Reason: "not connected"}
		}
		return err
	}

	remoteID, _, err := s.remote.Publish(ctx, token, entry.Post.Text)
	if err != nil {
		// Entry stays intact so the dispatcher layer can reattempt.
		monitoring.PublishesTotal.WithLabelValues("remote_error").Inc()
		return err
	}

	// Record the intended schedule time, not wall clock, and retire the
	// entry in the same transaction as the post update.
	if err := s.entryRepo.CompletePublish(ctx, entry, remoteID, entry.FireAt); err != nil {
		return err
	}

	monitoring.PublishesTotal.WithLabelValues("published").Inc()
	log.WithFields(log.Fields{
		"owner_id":  payload.OwnerID,
		"entry_id":  payload.EntryID,
		"remote_id": remoteID,
	}).Info("scheduled post published")

	return nil
}

func (s *scheduleService) ListPosts(ctx context.Context, ownerID uint64) ([]dbmysql.Post, error) {
	return s.postRepo.ListPostsByOwner(ctx, ownerID)
}

func (s *scheduleService) GetPost(ctx context.Context, postID, ownerID uint64) (*dbmysql.Post, error) {
	return s.postRepo.GetPostForOwner(ctx, postID, ownerID)
}

func (s *scheduleService) validate(text string, fireAt time.Time) error {
	if err := common.ValidatePostText(text, s.maxTextLength); err != nil {
		return err
	}
	return common.ValidateFireAt(fireAt, s.clock.Now(), s.pastTolerance)
}
