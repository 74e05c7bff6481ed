package syncer

import (
	"context"
	"errors"
	"time"

	"postsched/internal/common"
	"postsched/internal/config"
	"postsched/internal/dbmysql"
	"postsched/internal/monitoring"

	log "github.com/sirupsen/logrus"
)

// Reconciler pulls an owner's recently published remote posts into the
// local store. It deduplicates on remote id, skips items still inside the
// quarantine window, and never touches rows it already wrote.
type Reconciler struct {
	postRepo    dbmysql.PostRepository
	cursorRepo  dbmysql.SyncCursorRepository
	credRepo    dbmysql.CredentialRepository
	accountRepo dbmysql.AccountRepository
	remote      common.RemoteClient
	clock       common.Clock

	minInterval time.Duration
	quarantine  time.Duration
	fetchLimit  int
	locks       ownerLocks
}

func NewReconciler(
	cfg *config.Config,
	postRepo dbmysql.PostRepository,
	cursorRepo dbmysql.SyncCursorRepository,
	credRepo dbmysql.CredentialRepository,
	accountRepo dbmysql.AccountRepository,
	remote common.RemoteClient,
	clock common.Clock,
) *Reconciler {
	return &Reconciler{
		postRepo:    postRepo,
		cursorRepo:  cursorRepo,
		credRepo:    credRepo,
		accountRepo: accountRepo,
		remote:      remote,
		clock:       clock,
		minInterval: cfg.SyncMinInterval(),
		quarantine:  cfg.QuarantineWindow(),
		fetchLimit:  cfg.Sync.RemoteFetchLimit,
	}
}

// Reconcile runs one pass for the owner. Passes for the same owner are
// serialized; the staleness gate alone is not a mutual-exclusion mechanism.
func (r *Reconciler) Reconcile(ctx context.Context, ownerID uint64) error {
	unlock := r.locks.lock(ownerID)
	defer unlock()

	now := r.clock.Now()

	cursor, err := r.cursorRepo.GetCursor(ctx, ownerID)
	if err != nil {
		return err
	}

	// Rate limit against the remote platform, not a correctness gate.
	if now.Sub(cursor.LastSyncedAt) < r.minInterval {
		monitoring.SyncPassesTotal.WithLabelValues("skipped").Inc()
		log.WithField("owner_id", ownerID).Debug("synced recently, skipping pass")
		return nil
	}

	token, err := r.credRepo.TokenForOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			monitoring.SyncPassesTotal.WithLabelValues("failed").Inc()
			return &common.AuthError{OwnerID: ownerID, Reason: "not connected"}
		}
		return err
	}

	remotePosts, err := r.remote.ListRecent(ctx, token, r.fetchLimit)
	if err != nil {
		// Cursor stays put so the next attempt is not artificially delayed.
		monitoring.SyncPassesTotal.WithLabelValues("failed").Inc()
		return err
	}

	existing, err := r.postRepo.RemoteIDSet(ctx, ownerID)
	if err != nil {
		return err
	}

	inserted := 0
	for _, item := range remotePosts {
		if _, ok := existing[item.RemoteID]; ok {
			monitoring.SyncItemsTotal.WithLabelValues("duplicate").Inc()
			continue
		}

		// An item this young may be one we published ourselves moments ago;
		// by the next eligible pass Execute will have committed it under its
		// remote id and the dedup set will catch it.
		if now.Sub(item.CreatedAt) < r.quarantine {
			monitoring.SyncItemsTotal.WithLabelValues("quarantined").Inc()
			continue
		}

		remoteID := item.RemoteID
		publishedAt := item.CreatedAt
		post := &dbmysql.Post{
			OwnerID:     ownerID,
			RemoteID:    &remoteID,
			Text:        item.Text,
			PublishedAt: &publishedAt,
			IsPublished: true,
			Sentiment:   string(common.SentimentUnknown),
		}
		if err := r.postRepo.CreatePost(ctx, post); err != nil {
			// A constraint violation here is a data race or programmer
			// error; fail loudly rather than advancing the cursor past it.
			monitoring.SyncPassesTotal.WithLabelValues("failed").Inc()
			return err
		}

		existing[remoteID] = struct{}{}
		inserted++
		monitoring.SyncItemsTotal.WithLabelValues("inserted").Inc()
	}

	if err := r.cursorRepo.Advance(ctx, ownerID, now); err != nil {
		return err
	}

	monitoring.SyncPassesTotal.WithLabelValues("completed").Inc()
	log.WithFields(log.Fields{
		"owner_id": ownerID,
		"fetched":  len(remotePosts),
		"inserted": inserted,
	}).Info("sync pass completed")

	return nil
}

// ReconcileAll runs one pass for every account, continuing past per-owner
// failures. Used by the periodic sync worker.
func (r *Reconciler) ReconcileAll(ctx context.Context) {
	accounts, err := r.accountRepo.ListAccounts(ctx)
	if err != nil {
		log.WithError(err).Error("failed to list accounts for sync")
		return
	}

	for _, account := range accounts {
		if err := r.Reconcile(ctx, account.AccountID); err != nil {
			log.WithField("owner_id", account.AccountID).WithError(err).Warn("sync pass failed")
		}
	}
}
