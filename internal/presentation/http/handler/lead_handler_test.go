package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

func TestParseLeadStage(t *testing.T) {
	tests := []struct {
		input    string
		expected enum.LeadStage
		ok       bool
	}{
		{"New", enum.LeadStageNew, true},
		{"Contacted", enum.LeadStageContacted, true},
		{"QuoteSent", enum.LeadStageQuoteSent, true},
		{"Negotiation", enum.LeadStageNegotiation, true},
		{"Won", enum.LeadStageWon, true},
		{"Lost", enum.LeadStageLost, true},
		{"0", enum.LeadStageNew, true},
		{"5", enum.LeadStageLost, true},
		{"6", 0, false},
		{"-1", 0, false},
		{"bogus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stage, ok := parseLeadStage(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, stage)
			}
		})
	}
}
