package ports

import "go.trai.ch/exsd/internal/core/domain"

// CacheObserver records cache activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type CacheObserver interface {
	// ObserveLookup records which tier served a lookup.
	ObserveLookup(tier domain.CacheTier)
	// ObserveParseFailure records a file that could not be parsed.
	ObserveParseFailure()
}
