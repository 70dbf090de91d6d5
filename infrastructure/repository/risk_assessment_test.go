package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// Os fatores são gravados como JSONB pelo Insert e relidos pelos scanners.
// A viagem de ida e volta tem de preservar a lista na mesma ordem em que o
// avaliador a produziu, já que os fatores são ranqueados.
func TestRiskAssessmentFactors_idaEVolta(t *testing.T) {
	tests := []struct {
		name     string
		factors  []string
		expected []string
	}{
		{
			name: "Lista ordenada de fatores é preservada",
			factors: []string{
				"Sales volume critically low at 12% of baseline",
				"Customer traffic sharply down at 20% of baseline",
				"Receipt count critically low at 8% of baseline",
				"Low conversion: 10.0% of visitors purchasing",
			},
			expected: []string{
				"Sales volume critically low at 12% of baseline",
				"Customer traffic sharply down at 20% of baseline",
				"Receipt count critically low at 8% of baseline",
				"Low conversion: 10.0% of visitors purchasing",
			},
		},
		{
			name:     "Lista vazia volta vazia, nunca nil",
			factors:  []string{},
			expected: []string{},
		},
		{
			name:     "Fatores nil gravam como null e voltam como lista vazia",
			factors:  nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Mesma serialização usada pelo Insert antes de gravar a coluna
			factorsJSON, err := json.Marshal(tt.factors)
			require.NoError(t, err)

			assessment := &domain.RiskAssessment{}
			err = unmarshalFactors(factorsJSON, assessment)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, assessment.Factors)
			assert.NotNil(t, assessment.Factors)
		})
	}
}

func TestUnmarshalFactors_colunaNula(t *testing.T) {
	assessment := &domain.RiskAssessment{}

	err := unmarshalFactors(nil, assessment)

	require.NoError(t, err)
	assert.Equal(t, []string{}, assessment.Factors)
}

func TestUnmarshalFactors_jsonInvalido(t *testing.T) {
	assessment := &domain.RiskAssessment{}

	err := unmarshalFactors([]byte("{nope"), assessment)

	assert.Error(t, err)
}
