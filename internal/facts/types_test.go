package facts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_UnmarshalUpvotes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"integer", `12`, 12},
		{"float with zero fraction", `12.0`, 12},
		{"exponent", `1e3`, 1000},
		{"fraction rounds", `4.6`, 5},
		{"missing", ``, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"text":"Cats purr.","user":{"name":{"first":"Kitty","last":"Purry"}}`
			if tt.raw != "" {
				body += `,"upvotes":` + tt.raw
			}
			body += `}`

			var rec Record
			require.NoError(t, json.Unmarshal([]byte(body), &rec))
			assert.Equal(t, tt.want, rec.Upvotes)
			assert.Equal(t, "Cats purr.", rec.Text)
			assert.Equal(t, "Kitty Purry", rec.AuthorName())
		})
	}
}

func TestRecord_UnmarshalRejectsNonNumericUpvotes(t *testing.T) {
	var rec Record
	require.Error(t, json.Unmarshal([]byte(`{"text":"x","upvotes":"many"}`), &rec))
}

func TestPage_DecodesFloatUpvotes(t *testing.T) {
	body := `{"records":[{"text":"a","upvotes":1e3}],"_pagination":{"total_count":1,"current_page":1,"per_page":10,"total_pages":1}}`

	var page Page
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Records, 1)
	assert.Equal(t, 1000, page.Records[0].Upvotes)
	assert.Equal(t, 1, page.Pagination.TotalCount)
}
