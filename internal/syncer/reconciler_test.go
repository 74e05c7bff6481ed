package syncer

import (
	"context"
	"errors"
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
		Sync: config.SyncConfig{
			MinIntervalMin:   15,
			QuarantineMin:    5,
			RemoteFetchLimit: 50,
		},
	}
}

type reconcilerMocks struct {
	posts    *mocks.MockPostRepository
	cursors  *mocks.MockSyncCursorRepository
	creds    *mocks.MockCredentialRepository
	accounts *mocks.MockAccountRepository
	remote   *mocks.MockRemoteClient
}

func newTestReconciler(t *testing.T, now time.Time) (*Reconciler, reconcilerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := reconcilerMocks{
		posts:    mocks.NewMockPostRepository(ctrl),
		cursors:  mocks.NewMockSyncCursorRepository(ctrl),
		creds:    mocks.NewMockCredentialRepository(ctrl),
		accounts: mocks.NewMockAccountRepository(ctrl),
		remote:   mocks.NewMockRemoteClient(ctrl),
	}

	r := NewReconciler(testConfig(), m.posts, m.cursors, m.creds, m.accounts, m.remote, fixedClock{now: now})
	return r, m
}

func TestReconciler_StalenessGate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("skips when synced recently", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).
			Return(&dbmysql.SyncCursor{OwnerID: 1, LastSyncedAt: now.Add(-10 * time.Minute)}, nil)

		require.NoError(t, r.Reconcile(ctx, 1))
	})

	t.Run("first pass with zero cursor always runs", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(&oauth2.Token{AccessToken: "tok"}, nil)
		m.remote.EXPECT().ListRecent(ctx, gomock.Any(), 50).Return(nil, nil)
		m.posts.EXPECT().RemoteIDSet(ctx, uint64(1)).Return(map[string]struct{}{}, nil)
		m.cursors.EXPECT().Advance(ctx, uint64(1), now).Return(nil)

		require.NoError(t, r.Reconcile(ctx, 1))
	})

	t.Run("runs again once the interval has elapsed", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).
			Return(&dbmysql.SyncCursor{OwnerID: 1, LastSyncedAt: now.Add(-16 * time.Minute)}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(&oauth2.Token{AccessToken: "tok"}, nil)
		m.remote.EXPECT().ListRecent(ctx, gomock.Any(), 50).Return(nil, nil)
		m.posts.EXPECT().RemoteIDSet(ctx, uint64(1)).Return(map[string]struct{}{}, nil)
		m.cursors.EXPECT().Advance(ctx, uint64(1), now).Return(nil)

		require.NoError(t, r.Reconcile(ctx, 1))
	})
}

func TestReconciler_DedupAndQuarantine(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	token := &oauth2.Token{AccessToken: "tok"}

	t.Run("inserts only eligible items", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		remote := []common.RemotePost{
			{RemoteID: "already-local", Text: "old", CreatedAt: now.Add(-2 * time.Hour)},
			{RemoteID: "too-fresh", Text: "just published", CreatedAt: now.Add(-1 * time.Minute)},
			{RemoteID: "eligible", Text: "synced in", CreatedAt: now.Add(-30 * time.Minute)},
		}

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().ListRecent(ctx, token, 50).Return(remote, nil)
		m.posts.EXPECT().RemoteIDSet(ctx, uint64(1)).Return(map[string]struct{}{"already-local": {}}, nil)

		m.posts.EXPECT().CreatePost(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, post *dbmysql.Post) error {
				require.Equal(t, "eligible", *post.RemoteID)
				require.Equal(t, "synced in", post.Text)
				require.True(t, post.IsPublished)
				require.Equal(t, now.Add(-30*time.Minute), *post.PublishedAt)
				return nil
			}).Times(1)
		m.cursors.EXPECT().Advance(ctx, uint64(1), now).Return(nil)

		require.NoError(t, r.Reconcile(ctx, 1))
	})

	t.Run("item just inside the quarantine window is skipped", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		remote := []common.RemotePost{
			{RemoteID: "x", Text: "almost old enough", CreatedAt: now.Add(-4*time.Minute - 59*time.Second)},
		}

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().ListRecent(ctx, token, 50).Return(remote, nil)
		m.posts.EXPECT().RemoteIDSet(ctx, uint64(1)).Return(map[string]struct{}{}, nil)
		m.cursors.EXPECT().Advance(ctx, uint64(1), now).Return(nil)

		require.NoError(t, r.Reconcile(ctx, 1))
	})

	t.Run("item exactly at the window boundary is inserted", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		remote := []common.RemotePost{
			{RemoteID: "y", Text: "boundary", CreatedAt: now.Add(-5 * time.Minute)},
		}

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().ListRecent(ctx, token, 50).Return(remote, nil)
		m.posts.EXPECT().RemoteIDSet(ctx, uint64(1)).Return(map[string]struct{}{}, nil)
		m.posts.EXPECT().CreatePost(ctx, gomock.Any()).Return(nil)
		m.cursors.EXPECT().Advance(ctx, uint64(1), now).Return(nil)

		require.NoError(t, r.Reconcile(ctx, 1))
	})

	t.Run("duplicate remote ids within one fetch insert once", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		remote := []common.RemotePost{
			{RemoteID: "dup", Text: "first", CreatedAt: now.Add(-30 * time.Minute)},
			{RemoteID: "dup", Text: "second", CreatedAt: now.Add(-31 * time.Minute)},
		}

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().ListRecent(ctx, token, 50).Return(remote, nil)
		m.posts.EXPECT().RemoteIDSet(ctx, uint64(1)).Return(map[string]struct{}{}, nil)
		m.posts.EXPECT().CreatePost(ctx, gomock.Any()).Return(nil).Times(1)
		m.cursors.EXPECT().Advance(ctx, uint64(1), now).Return(nil)

		require.NoError(t, r.Reconcile(ctx, 1))
	})
}

func TestReconciler_Failures(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	token := &oauth2.Token{AccessToken: "tok"}

	t.Run("missing credential is an auth error", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(nil, common.ErrNotFound)

		err := r.Reconcile(ctx, 1)
		require.True(t, common.IsAuth(err))
	})

	t.Run("fetch failure does not advance the cursor", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().ListRecent(ctx, token, 50).
			Return(nil, &common.RemoteError{Op: "list_recent", Err: errors.New("timeout")})

		err := r.Reconcile(ctx, 1)
		require.True(t, common.IsRemote(err))
	})

	t.Run("insert failure fails the pass loudly", func(t *testing.T) {
		r, m := newTestReconciler(t, now)

		remote := []common.RemotePost{
			{RemoteID: "z", Text: "boom", CreatedAt: now.Add(-time.Hour)},
		}

		m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(&dbmysql.SyncCursor{OwnerID: 1}, nil)
		m.creds.EXPECT().TokenForOwner(ctx, uint64(1)).Return(token, nil)
		m.remote.EXPECT().ListRecent(ctx, token, 50).Return(remote, nil)
		m.posts.EXPECT().RemoteIDSet(ctx, uint64(1)).Return(map[string]struct{}{}, nil)
		m.posts.EXPECT().CreatePost(ctx, gomock.Any()).Return(errors.New("constraint violation"))

		err := r.Reconcile(ctx, 1)
		require.Error(t, err)
		require.Contains(t, err.Error(), "constraint violation")
	})
}

func TestReconciler_ReconcileAll(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	r, m := newTestReconciler(t, now)

	m.accounts.EXPECT().ListAccounts(ctx).Return([]dbmysql.Account{
		{AccountID: 1}, {AccountID: 2},
	}, nil)

	// Owner 1 fails, owner 2 still runs.
	m.cursors.EXPECT().GetCursor(ctx, uint64(1)).Return(nil, errors.New("db down"))
	m.cursors.EXPECT().GetCursor(ctx, uint64(2)).
		Return(&dbmysql.SyncCursor{OwnerID: 2, LastSyncedAt: now.Add(-time.Minute)}, nil)

	r.ReconcileAll(ctx)
}

func TestOwnerLocks_SerializesSameOwner(t *testing.T) {
	var locks ownerLocks

	unlock := locks.lock(1)
	acquired := make(chan struct{})
	go func() {
		u := locks.lock(1)
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first still held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after release")
	}
}
