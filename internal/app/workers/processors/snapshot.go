package processors

import (
	"context"
	"fmt"

	"francoggm/emipay-gateway-go/internal/models"
)

type ListingSaver interface {
	SaveListing(ctx context.Context, listing *models.LoanListing) error
}

// SnapshotProcessor persists refreshed loan listings in the background so a
// slow cache never delays a directory refresh.
type SnapshotProcessor struct {
	saver ListingSaver
}

func NewSnapshotProcessor(saver ListingSaver) *SnapshotProcessor {
	return &SnapshotProcessor{
		saver: saver,
	}
}

func (p *SnapshotProcessor) ProcessEvent(ctx context.Context, event any) error {
	listing, ok := event.(*models.LoanListing)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	return p.saver.SaveListing(ctx, listing)
}
