package snapshot

import (
	"context"
	"fmt"

	"francoggm/emipay-gateway-go/internal/models"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const listingKey = "loan_listing_snapshot"

// Service persists the last refreshed loan listing so a restarted gateway
// still has stale-but-available data before its first refresh. It is a
// convenience cache only; the payment workflow never reads from it.
type Service struct {
	cache *redis.Client
}

func NewService(cache *redis.Client) *Service {
	return &Service{
		cache: cache,
	}
}

func (s *Service) SaveListing(ctx context.Context, listing *models.LoanListing) error {
	payload, err := sonic.ConfigFastest.Marshal(listing)
	if err != nil {
		return fmt.Errorf("marshal listing: %w", err)
	}

	return s.cache.Set(ctx, listingKey, payload, 0).Err()
}

func (s *Service) LoadListing(ctx context.Context) (*models.LoanListing, error) {
	payload, err := s.cache.Get(ctx, listingKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var listing models.LoanListing
	if err := sonic.ConfigFastest.Unmarshal(payload, &listing); err != nil {
		return nil, fmt.Errorf("unmarshal listing: %w", err)
	}

	return &listing, nil
}

func (s *Service) PurgeListing(ctx context.Context) error {
	return s.cache.Del(ctx, listingKey).Err()
}
