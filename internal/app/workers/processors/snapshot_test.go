package processors

import (
	"context"
	"errors"
	"testing"

	"francoggm/emipay-gateway-go/internal/models"
)

type fakeSaver struct {
	saved *models.LoanListing
	err   error
}

func (f *fakeSaver) SaveListing(ctx context.Context, listing *models.LoanListing) error {
	f.saved = listing
	return f.err
}

func TestSnapshotProcessor_PersistsListing(t *testing.T) {
	saver := &fakeSaver{}
	processor := NewSnapshotProcessor(saver)

	listing := &models.LoanListing{}
	if err := processor.ProcessEvent(context.Background(), listing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saver.saved != listing {
		t.Errorf("expected listing to be persisted")
	}
}

func TestSnapshotProcessor_RejectsUnknownEvent(t *testing.T) {
	processor := NewSnapshotProcessor(&fakeSaver{})

	if err := processor.ProcessEvent(context.Background(), "not a listing"); err == nil {
		t.Fatalf("expected an error for an unknown event type")
	}
}

func TestSnapshotProcessor_PropagatesSaveError(t *testing.T) {
	saver := &fakeSaver{err: errors.New("cache down")}
	processor := NewSnapshotProcessor(saver)

	if err := processor.ProcessEvent(context.Background(), &models.LoanListing{}); err == nil {
		t.Fatalf("expected save error to propagate")
	}
}
