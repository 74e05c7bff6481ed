package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"postsched/internal/common"
	"postsched/internal/config"
	"postsched/internal/dbmysql"
	"postsched/internal/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func testConfig() *config.Config {
	return &config.Config{
		Scheduler: config.SchedulerConfig{
			MaxTextLength:    140,
			PastToleranceSec: 60,
		},
	}
}

type serviceMocks struct {
	entries    *mocks.MockScheduleEntryRepository
	posts      *mocks.MockPostRepository
	creds      *mocks.MockCredentialRepository
	dispatcher *mocks.MockDispatcher
	remote     *mocks.MockRemoteClient
}

func newTestService(t *testing.T, now time.Time) (ScheduleService, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		entries:    mocks.NewMockScheduleEntryRepository(ctrl),
		posts:      mocks.NewMockPostRepository(ctrl),
		creds:      mocks.NewMockCredentialRepository(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
		remote:     mocks.NewMockRemoteClient(ctrl),
	}

	svc := NewScheduleService(testConfig(), m.entries, m.posts, m.creds, m.dispatcher, m.remote, fixedClock{now: now})
	return svc, m
}

func TestScheduleService_Schedule(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fireAt := now.Add(5 * time.Minute)
	ctx := context.Background()

	tests := []struct {
		name        string
		text        string
		fireAt      time.Time
		setup       func(m serviceMocks)
		wantErr     bool
		errContains string
		validation  bool
	}{
		{
			name:   "success",
			text:   "hello world",
			fireAt: fireAt,
			setup: func(m serviceMocks) {
				m.entries.EXPECT().CreateWithPost(ctx, gomock.Any(), fireAt).DoAndReturn(
					func(_ context.Context, post *dbmysql.Post, at time.Time) (*dbmysql.ScheduleEntry, error) {
						post.PostID = 7
						return &dbmysql.ScheduleEntry{EntryID: 3, PostID: 7, OwnerID: post.OwnerID, FireAt: at, Post: *post}, nil
					})
				m.dispatcher.EXPECT().Submit(ctx, fireAt, common.JobPayload{OwnerID: 1, EntryID: 3}).Return("job-abc", nil)
				m.entries.EXPECT().SetJobToken(ctx, uint64(3), "job-abc").Return(nil)
			},
		},
		{
			name:        "text over limit",
			text:        strings.Repeat("a", 141),
			fireAt:      fireAt,
			setup:       func(m serviceMocks) {},
			wantErr:     true,
			validation:  true,
			errContains: "text",
		},
		{
			name:        "empty text",
			text:        "   ",
			fireAt:      fireAt,
			setup:       func(m serviceMocks) {},
			wantErr:     true,
			validation:  true,
			errContains: "text",
		},
		{
			name:        "fire time in the past",
			text:        "hello",
			fireAt:      now.Add(-10 * time.Minute),
			setup:       func(m serviceMocks) {},
			wantErr:     true,
			validation:  true,
			errContains: "fire_at",
		},
		{
			name:   "slightly past fire time within tolerance",
			text:   "hello",
			fireAt: now.Add(-30 * time.Second),
			setup: func(m serviceMocks) {
				m.entries.EXPECT().CreateWithPost(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, post *dbmysql.Post, at time.Time) (*dbmysql.ScheduleEntry, error) {
						return &dbmysql.ScheduleEntry{EntryID: 4, OwnerID: post.OwnerID, FireAt: at, Post: *post}, nil
					})
				m.dispatcher.EXPECT().Submit(ctx, gomock.Any(), gomock.Any()).Return("job-def", nil)
				m.entries.EXPECT().SetJobToken(ctx, uint64(4), "job-def").Return(nil)
			},
		},
		{
			name:   "submit failure unwinds records",
			text:   "hello",
			fireAt: fireAt,
			setup: func(m serviceMocks) {
				entry := &dbmysql.ScheduleEntry{EntryID: 5, PostID: 9, OwnerID: 1, FireAt: fireAt}
				m.entries.EXPECT().CreateWithPost(ctx, gomock.Any(), fireAt).Return(entry, nil)
				m.dispatcher.EXPECT().Submit(ctx, fireAt, gomock.Any()).Return("", errors.New("broker down"))
				m.entries.EXPECT().DeleteWithPost(ctx, entry).Return(nil)
			},
			wantErr:     true,
			errContains: "broker down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, now)
			tt.setup(m)

			entry, err := svc.Schedule(ctx, 1, tt.text, tt.fireAt)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
				require.Equal(t, tt.validation, common.IsValidation(err))
				require.Nil(t, entry)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, entry)
			require.NotNil(t, entry.JobToken)
		})
	}
}

func TestScheduleService_Schedule_AssignsSentiment(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	svc, m := newTestService(t, now)

	var created *dbmysql.Post
	m.entries.EXPECT().CreateWithPost(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, post *dbmysql.Post, at time.Time) (*dbmysql.ScheduleEntry, error) {
			created = post
			return &dbmysql.ScheduleEntry{EntryID: 1, OwnerID: post.OwnerID, FireAt: at, Post: *post}, nil
		})
	m.dispatcher.EXPECT().Submit(ctx, gomock.Any(), gomock.Any()).Return("tok", nil)
	m.entries.EXPECT().SetJobToken(ctx, uint64(1), "tok").Return(nil)

	_, err := svc.Schedule(ctx, 1, "what a great awesome day", now.Add(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, string(common.SentimentPositive), created.Sentiment)
	require.False(t, created.IsPublished)
	require.Nil(t, created.RemoteID)
}

func TestScheduleService_Reschedule(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	newFireAt := now.Add(30 * time.Minute)
	ctx := context.Background()

	oldToken := "job-old"

	t.Run("cancels old job before submitting new one", func(t *testing.T) {
		svc, m := newTestService(t, now)

		entry := &dbmysql.ScheduleEntry{
			EntryID:  3,
			PostID:   7,
			OwnerID:  1,
			FireAt:   now.Add(10 * time.Minute),
			JobToken: &oldToken,
			Post:     dbmysql.Post{PostID: 7, OwnerID: 1, Text: "old text"},
		}

		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(entry, nil)
		gomock.InOrder(
			m.dispatcher.EXPECT().Cancel(ctx, oldToken).Return(nil),
			m.dispatcher.EXPECT().Submit(ctx, newFireAt, common.JobPayload{OwnerID: 1, EntryID: 3}).Return("job-new", nil),
		)
		m.entries.EXPECT().UpdateSchedule(ctx, entry, "new text", gomock.Any(), newFireAt).Return(nil)
		m.entries.EXPECT().SetJobToken(ctx, uint64(3), "job-new").Return(nil)

		updated, err := svc.Reschedule(ctx, 3, 1, "new text", newFireAt)
		require.NoError(t, err)
		require.Equal(t, "job-new", *updated.JobToken)
	})

	t.Run("not found for wrong owner", func(t *testing.T) {
		svc, m := newTestService(t, now)

		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(2)).Return(nil, common.ErrNotFound)

		_, err := svc.Reschedule(ctx, 3, 2, "new text", newFireAt)
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("proceeds when cancellation cannot be confirmed", func(t *testing.T) {
		svc, m := newTestService(t, now)

		entry := &dbmysql.ScheduleEntry{
			EntryID:  3,
			PostID:   7,
			OwnerID:  1,
			FireAt:   now.Add(10 * time.Minute),
			JobToken: &oldToken,
			Post:     dbmysql.Post{PostID: 7, OwnerID: 1, Text: "old text"},
		}

		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(entry, nil)
		m.dispatcher.EXPECT().Cancel(ctx, oldToken).Return(errors.New("broker unreachable"))
		m.entries.EXPECT().UpdateSchedule(ctx, entry, "new text", gomock.Any(), newFireAt).Return(nil)
		m.dispatcher.EXPECT().Submit(ctx, newFireAt, gomock.Any()).Return("job-new", nil)
		m.entries.EXPECT().SetJobToken(ctx, uint64(3), "job-new").Return(nil)

		_, err := svc.Reschedule(ctx, 3, 1, "new text", newFireAt)
		require.NoError(t, err)
	})

	t.Run("rejects invalid new text", func(t *testing.T) {
		svc, m := newTestService(t, now)

		entry := &dbmysql.ScheduleEntry{EntryID: 3, OwnerID: 1, JobToken: &oldToken}
		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(entry, nil)

		_, err := svc.Reschedule(ctx, 3, 1, strings.Repeat("a", 141), newFireAt)
		require.True(t, common.IsValidation(err))
	})
}

func TestScheduleService_Execute(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fireAt := now.Add(-time.Second)
	ctx := context.Background()
	payload := common.JobPayload{OwnerID: 1, EntryID: 3}
	token := &oauth2.Token{AccessToken: "secret"}

	entryFixture := func() *dbmysql.ScheduleEntry {
		return &dbmysql.ScheduleEntry{
			EntryID: 3,
			PostID:  7,
			OwnerID: 1,
			FireAt:  fireAt,
			Post:    dbmysql.Post{PostID: 7, OwnerID: 1, Text: "hello world"},
		}
	}

	t.Run("publishes and retires the entry", func(t *testing.T) {
		svc, m := newTestService(t, now)
		entry := entryFixture()

		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(entry, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().Publish(ctx, token, "hello world").Return("remote-42", now, nil)
		// published_at records the intended fire time, not wall clock
		m.entries.EXPECT().CompletePublish(ctx, entry, "remote-42", fireAt).Return(nil)

		require.NoError(t, svc.Execute(ctx, payload))
	})

	t.Run("missing entry is a fenced no-op", func(t *testing.T) {
		svc, m := newTestService(t, now)

		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(nil, common.ErrNotFound)

		require.NoError(t, svc.Execute(ctx, payload))
	})

	t.Run("duplicate delivery publishes exactly once", func(t *testing.T) {
		svc, m := newTestService(t, now)
		entry := entryFixture()

		gomock.InOrder(
			m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(entry, nil),
			m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(nil, common.ErrNotFound),
		)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().Publish(ctx, token, "hello world").Return("remote-42", now, nil).Times(1)
		m.entries.EXPECT().CompletePublish(ctx, entry, "remote-42", fireAt).Return(nil)

		require.NoError(t, svc.Execute(ctx, payload))
		require.NoError(t, svc.Execute(ctx, payload))
	})

	t.Run("missing credential is terminal", func(t *testing.T) {
		svc, m := newTestService(t, now)
		entry := entryFixture()

		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(entry, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(nil, common.ErrNotFound)

		err := svc.Execute(ctx, payload)
		require.True(t, common.IsAuth(err))
	})

	t.Run("remote failure leaves the entry intact", func(t *testing.T) {
		svc, m := newTestService(t, now)
		entry := entryFixture()

		m.entries.EXPECT().GetForOwner(ctx, uint64(3), uint64(1)).Return(entry, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().Publish(ctx, token, "hello world").
			Return("", time.Time{}, &common.RemoteError{Op: "publish", Err: errors.New("rate limited")})

		err := svc.Execute(ctx, payload)
		require.True(t, common.IsRemote(err))
	})
}
