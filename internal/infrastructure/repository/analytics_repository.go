package repository

import (
	"context"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
	domainRepo "github.com/facturalink/cotizador-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetPipelineCounts(ctx context.Context) ([]domainRepo.StageCountResult, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return []domainRepo.StageCountResult{}, nil
	}

	var results []domainRepo.StageCountResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			stage,
			COUNT(*) as lead_count
		FROM leads
		WHERE tenant_id = ? AND deleted_at IS NULL
		GROUP BY stage
		ORDER BY stage ASC
	`, tenantID).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetQuotesByStatus(ctx context.Context) ([]domainRepo.QuoteStatusResult, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return []domainRepo.QuoteStatusResult{}, nil
	}

	var results []domainRepo.QuoteStatusResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) as quote_count,
			COALESCE(SUM(grand_total), 0) as total_value
		FROM quotes
		WHERE tenant_id = ? AND deleted_at IS NULL
		GROUP BY status
		ORDER BY status ASC
	`, tenantID).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetTopPackages(ctx context.Context, limit int) ([]domainRepo.TopPackageResult, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return []domainRepo.TopPackageResult{}, nil
	}

	var results []domainRepo.TopPackageResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as package_id,
			p.name as package_name,
			COUNT(q.id) as quote_count,
			COALESCE(SUM(q.grand_total), 0) as quoted_value
		FROM quotes q
		JOIN packages p ON p.id = q.package_id
		WHERE q.tenant_id = ? AND q.deleted_at IS NULL
		GROUP BY p.id, p.name
		ORDER BY quoted_value DESC
		LIMIT ?
	`, tenantID, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetDailyQuotes(ctx context.Context, days int) ([]domainRepo.DailyQuoteResult, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return []domainRepo.DailyQuoteResult{}, nil
	}

	var results []domainRepo.DailyQuoteResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(created_at) as date,
			COUNT(*) as quote_count,
			COALESCE(SUM(grand_total), 0) as quoted_value
		FROM quotes
		WHERE tenant_id = ?
			AND deleted_at IS NULL
			AND created_at >= CURRENT_DATE - (? * INTERVAL '1 day')
		GROUP BY DATE(created_at)
		ORDER BY date ASC
	`, tenantID, days).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetAcceptedValue(ctx context.Context) (float64, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return 0, nil
	}

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(grand_total), 0)
		FROM quotes
		WHERE tenant_id = ? AND status = ? AND deleted_at IS NULL
	`, tenantID, enum.QuoteStatusAccepted).Scan(&total).Error

	return total, err
}

func (r *analyticsRepository) GetMonthlyQuotedValue(ctx context.Context) (float64, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return 0, nil
	}

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(grand_total), 0)
		FROM quotes
		WHERE tenant_id = ?
			AND deleted_at IS NULL
			AND created_at >= DATE_TRUNC('month', CURRENT_DATE)
	`, tenantID).Scan(&total).Error

	return total, err
}
