package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StageCountResult represents the number of leads sitting in one
// pipeline stage
type StageCountResult struct {
	Stage     int
	LeadCount int
}

// QuoteStatusResult represents quotes aggregated by status
type QuoteStatusResult struct {
	Status     int
	QuoteCount int
	TotalValue float64
}

// TopPackageResult represents a package tier's quoting performance
type TopPackageResult struct {
	PackageID   uuid.UUID
	PackageName string
	QuoteCount  int
	QuotedValue float64
}

// DailyQuoteResult represents quoting activity for a single day
type DailyQuoteResult struct {
	Date        time.Time
	QuoteCount  int
	QuotedValue float64
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetPipelineCounts returns lead counts grouped by pipeline stage
	GetPipelineCounts(ctx context.Context) ([]StageCountResult, error)

	// GetQuotesByStatus returns quote counts and grand-total sums grouped by status
	GetQuotesByStatus(ctx context.Context) ([]QuoteStatusResult, error)

	// GetTopPackages returns the most quoted package tiers by value
	GetTopPackages(ctx context.Context, limit int) ([]TopPackageResult, error)

	// GetDailyQuotes returns daily quoting activity for the last N days
	GetDailyQuotes(ctx context.Context, days int) ([]DailyQuoteResult, error)

	// GetAcceptedValue returns the grand-total sum of accepted quotes
	GetAcceptedValue(ctx context.Context) (float64, error)

	// GetMonthlyQuotedValue returns the value quoted in the current month
	GetMonthlyQuotedValue(ctx context.Context) (float64, error)
}
