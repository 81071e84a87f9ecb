package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	keywords := []string{"ASKIP", "PROT", "UNPROT", "NUM", "BRT", "NORM", "DRK", "IC", "FSET"}

	tests := []struct {
		word string
		want []string
	}{
		{"UNPRT", []string{"UNPROT"}},
		{"askp", []string{"ASKIP"}},
		{"FSEt", nil},
		{"XYZZY", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := Suggest(tt.word, keywords, 2)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("PROTX", []string{"PROT", "UNPROT", "PROTE"}, 1)
	assert.Len(t, got, 1)
}
