package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		id   string
		want Page
	}{
		{"tableau-bord", Dashboard},
		{"  Cartographie ", LocationAnalysis},
		{"budget-creation", CreationBudget},
		{"unknown", Home},
		{"", Home},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.id))
		})
	}
}

func TestPage_Canonical(t *testing.T) {
	assert.Equal(t, TaxResult, Accountant.Canonical())
	assert.Equal(t, Calculators, CreationBudget.Canonical())
	assert.Equal(t, Statuts, Statuts.Canonical())
}

func TestAll(t *testing.T) {
	infos := All()
	assert.Len(t, infos, len(Pages))

	var underDev int
	seen := make(map[Page]bool, len(infos))
	for _, info := range infos {
		assert.True(t, info.ID.valid(), info.ID)
		assert.False(t, seen[info.ID], "duplicate page %s", info.ID)
		seen[info.ID] = true
		assert.NotEmpty(t, info.Title)
		if info.UnderDevelopment {
			underDev++
		}
	}
	assert.Equal(t, 11, underDev)
}
