package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

func TestQuoteStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    enum.QuoteStatus
		to      enum.QuoteStatus
		allowed bool
	}{
		{"draft to sent", enum.QuoteStatusDraft, enum.QuoteStatusSent, true},
		{"draft to accepted", enum.QuoteStatusDraft, enum.QuoteStatusAccepted, false},
		{"draft to rejected", enum.QuoteStatusDraft, enum.QuoteStatusRejected, false},
		{"sent to accepted", enum.QuoteStatusSent, enum.QuoteStatusAccepted, true},
		{"sent to rejected", enum.QuoteStatusSent, enum.QuoteStatusRejected, true},
		{"sent to expired", enum.QuoteStatusSent, enum.QuoteStatusExpired, true},
		{"sent back to draft", enum.QuoteStatusSent, enum.QuoteStatusDraft, false},
		{"accepted is terminal", enum.QuoteStatusAccepted, enum.QuoteStatusRejected, false},
		{"rejected is terminal", enum.QuoteStatusRejected, enum.QuoteStatusSent, false},
		{"expired is terminal", enum.QuoteStatusExpired, enum.QuoteStatusSent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, canTransition(tt.from, tt.to))
		})
	}
}
