package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		search    string
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:   "no search",
			search: "  ",
		},
		{
			name:      "name only",
			search:    "João",
			wantWhere: "WHERE (name ILIKE $1)",
			wantArgs:  []interface{}{"%João%"},
		},
		{
			name:      "phone fragment also matches name",
			search:    "(11) 9876",
			wantWhere: "WHERE (name ILIKE $1 OR phone LIKE $2)",
			wantArgs:  []interface{}{"%(11) 9876%", "%119876%"},
		},
		{
			name:      "like wildcards escaped",
			search:    "50%_off",
			wantWhere: "WHERE (name ILIKE $1 OR phone LIKE $2)",
			wantArgs:  []interface{}{`%50\%\_off%`, "%50%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListQuery(tt.search)
			require.NoError(t, err)

			if tt.wantWhere == "" {
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
				return
			}
			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
