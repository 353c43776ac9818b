package sale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caipirao/caipirao/internal/sale"
)

func TestTotalValue(t *testing.T) {
	manual := 15.0

	tests := []struct {
		name          string
		peso          float64
		precoUnitario float64
		precoManual   *float64
		want          float64
	}{
		{name: "CatalogPrice", peso: 2, precoUnitario: 12.50, want: 25.00},
		{name: "ManualOverride", peso: 2, precoUnitario: 12.50, precoManual: &manual, want: 30.00},
		{name: "ZeroPeso", peso: 0, precoUnitario: 12.50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sale.TotalValue(tt.peso, tt.precoUnitario, tt.precoManual)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestSale_Paid(t *testing.T) {
	paidAt := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, (&sale.Sale{}).Paid())
	assert.True(t, (&sale.Sale{DataPagamento: &paidAt}).Paid())
}
