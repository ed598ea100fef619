package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

func TestLeadFilterPredicates(t *testing.T) {
	status := domain.LeadStatusContatado
	vendedor := "vend-1"

	tests := []struct {
		name         string
		filter       domain.LeadFilter
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:        "sem filtros",
			filter:      domain.LeadFilter{},
			expectedSQL: "SELECT l.id FROM leads l",
		},
		{
			name:         "status e vendedor",
			filter:       domain.LeadFilter{Status: &status, VendedorID: &vendedor},
			expectedSQL:  "SELECT l.id FROM leads l WHERE (l.status = $1 AND l.vendedor_id = $2)",
			expectedArgs: []interface{}{status, vendedor},
		},
		{
			name:         "busca textual",
			filter:       domain.LeadFilter{Busca: "  padaria "},
			expectedSQL:  "SELECT l.id FROM leads l WHERE ((l.nome ILIKE $1 OR l.email ILIKE $2 OR l.nome_empresa ILIKE $3))",
			expectedArgs: []interface{}{"%padaria%", "%padaria%", "%padaria%"},
		},
		{
			name:         "busca com curingas do LIKE",
			filter:       domain.LeadFilter{Busca: `50%_off\`},
			expectedSQL:  "SELECT l.id FROM leads l WHERE ((l.nome ILIKE $1 OR l.email ILIKE $2 OR l.nome_empresa ILIKE $3))",
			expectedArgs: []interface{}{`%50\%\_off\\%`, `%50\%\_off\\%`, `%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := squirrel.Select("l.id").From(leadsTable).PlaceholderFormat(squirrel.Dollar)
			if where := leadFilterPredicates(tt.filter); len(where) > 0 {
				builder = builder.Where(where)
			}

			query, args, err := builder.ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, query)
			if tt.expectedArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexão recusada")))
}
