package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"francoggm/emipay-gateway-go/internal/logger"
	"francoggm/emipay-gateway-go/internal/models"
)

type LoanLister interface {
	ListLoans(ctx context.Context) ([]models.LoanAccount, error)
}

type SnapshotLoader interface {
	LoadListing(ctx context.Context) (*models.LoanListing, error)
}

// ViewModel holds the most recently fetched loan listing. A failed refresh
// keeps whatever was shown before; data is only cleared by Invalidate.
type ViewModel struct {
	ledger LoanLister
	events chan<- any
	log    *logger.Logger

	mu      sync.RWMutex
	listing *models.LoanListing
}

// NewViewModel creates the directory. events may be nil when snapshot
// persistence is disabled.
func NewViewModel(ledger LoanLister, events chan<- any, log *logger.Logger) *ViewModel {
	return &ViewModel{
		ledger: ledger,
		events: events,
		log:    log,
	}
}

// WarmStart seeds the directory with the last persisted listing so a
// restarted gateway has stale-but-available data before the first refresh.
// Best effort, never overwrites a listing fetched in the meantime.
func (v *ViewModel) WarmStart(ctx context.Context, store SnapshotLoader) {
	listing, err := store.LoadListing(ctx)
	if err != nil {
		v.log.Warn("could not load listing snapshot", "err", err)
		return
	}
	if listing == nil {
		return
	}

	v.mu.Lock()
	if v.listing == nil {
		v.listing = listing
	}
	v.mu.Unlock()

	v.log.Info("listing snapshot restored", "loans", len(listing.Loans), "fetched_at", listing.FetchedAt)
}

// Refresh fetches the listing from the ledger. On failure it returns the
// previously held listing (possibly nil) alongside the error.
func (v *ViewModel) Refresh(ctx context.Context) (*models.LoanListing, error) {
	loans, err := v.ledger.ListLoans(ctx)
	if err != nil {
		v.log.Warn("loan listing refresh failed, keeping stale data", "err", err)
		return v.Listing(), fmt.Errorf("refresh loans: %w", err)
	}

	listing := &models.LoanListing{
		Loans:     loans,
		FetchedAt: time.Now().UTC(),
	}

	v.mu.Lock()
	v.listing = listing
	v.mu.Unlock()

	if v.events != nil {
		select {
		case v.events <- listing:
		default:
			v.log.Warn("snapshot queue full, listing not persisted")
		}
	}

	return listing, nil
}

// Listing returns the currently held listing, nil when nothing has been
// fetched yet. Callers must treat it as read-only.
func (v *ViewModel) Listing() *models.LoanListing {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.listing
}

// Invalidate drops the held listing. Called after a successful payment so
// the next view shows the new due amount instead of a stale one.
func (v *ViewModel) Invalidate() {
	v.mu.Lock()
	v.listing = nil
	v.mu.Unlock()
}
