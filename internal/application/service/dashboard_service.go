package service

import (
	"context"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/domain/repository"
)

// DashboardService provides pipeline and quoting statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalLeads         int64               `json:"total_leads"`
	OpenLeads          int64               `json:"open_leads"`
	WonLeads           int64               `json:"won_leads"`
	TotalQuotes        int64               `json:"total_quotes"`
	PendingQuotes      int64               `json:"pending_quotes"`
	AcceptedQuotes     int64               `json:"accepted_quotes"`
	AcceptedValue      float64             `json:"accepted_value"`
	MonthlyQuotedValue float64             `json:"monthly_quoted_value"`
	WinRate            float64             `json:"win_rate"`
	PipelineData       []PipelinePoint     `json:"pipeline_data"`
	QuoteStatusData    []QuoteStatusPoint  `json:"quote_status_data"`
	TopPackages        []TopPackagePoint   `json:"top_packages"`
	DailyQuoteData     []DailyQuotePoint   `json:"daily_quote_data"`
}

// PipelinePoint represents one kanban column's size
type PipelinePoint struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// QuoteStatusPoint represents quote volume per status
type QuoteStatusPoint struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
}

// TopPackagePoint represents a package tier's quoting performance
type TopPackagePoint struct {
	Package string  `json:"package"`
	Count   int     `json:"count"`
	Value   float64 `json:"value"`
}

// DailyQuotePoint represents quoting activity for one day
type DailyQuotePoint struct {
	Date  string  `json:"date"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// GetDashboardStats returns dashboard statistics for the tenant
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	stageCounts, err := s.analyticsRepo.GetPipelineCounts(ctx)
	if err != nil {
		return nil, err
	}
	stats.PipelineData = make([]PipelinePoint, 0, len(stageCounts))
	for _, sc := range stageCounts {
		stage := enum.LeadStage(sc.Stage)
		stats.TotalLeads += int64(sc.LeadCount)
		switch stage {
		case enum.LeadStageWon:
			stats.WonLeads += int64(sc.LeadCount)
		case enum.LeadStageLost:
			// closed, not open
		default:
			stats.OpenLeads += int64(sc.LeadCount)
		}
		stats.PipelineData = append(stats.PipelineData, PipelinePoint{
			Stage: stage.String(),
			Count: sc.LeadCount,
		})
	}

	statusCounts, err := s.analyticsRepo.GetQuotesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.QuoteStatusData = make([]QuoteStatusPoint, 0, len(statusCounts))
	for _, qs := range statusCounts {
		status := enum.QuoteStatus(qs.Status)
		stats.TotalQuotes += int64(qs.QuoteCount)
		switch status {
		case enum.QuoteStatusDraft, enum.QuoteStatusSent:
			stats.PendingQuotes += int64(qs.QuoteCount)
		case enum.QuoteStatusAccepted:
			stats.AcceptedQuotes += int64(qs.QuoteCount)
		}
		stats.QuoteStatusData = append(stats.QuoteStatusData, QuoteStatusPoint{
			Status: status.String(),
			Count:  qs.QuoteCount,
			Value:  qs.TotalValue,
		})
	}

	// Win rate over resolved leads only
	closed := stats.WonLeads + (stats.TotalLeads - stats.OpenLeads - stats.WonLeads)
	if closed > 0 {
		stats.WinRate = float64(stats.WonLeads) / float64(closed) * 100
	}

	acceptedValue, err := s.analyticsRepo.GetAcceptedValue(ctx)
	if err != nil {
		return nil, err
	}
	stats.AcceptedValue = acceptedValue

	monthlyValue, err := s.analyticsRepo.GetMonthlyQuotedValue(ctx)
	if err != nil {
		return nil, err
	}
	stats.MonthlyQuotedValue = monthlyValue

	topPackages, err := s.analyticsRepo.GetTopPackages(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopPackages = make([]TopPackagePoint, 0, len(topPackages))
	for _, tp := range topPackages {
		stats.TopPackages = append(stats.TopPackages, TopPackagePoint{
			Package: tp.PackageName,
			Count:   tp.QuoteCount,
			Value:   tp.QuotedValue,
		})
	}

	daily, err := s.analyticsRepo.GetDailyQuotes(ctx, 30)
	if err != nil {
		return nil, err
	}
	stats.DailyQuoteData = make([]DailyQuotePoint, 0, len(daily))
	for _, d := range daily {
		stats.DailyQuoteData = append(stats.DailyQuoteData, DailyQuotePoint{
			Date:  d.Date.Format("2006-01-02"),
			Count: d.QuoteCount,
			Value: d.QuotedValue,
		})
	}

	return stats, nil
}
