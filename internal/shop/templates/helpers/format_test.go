package helpers

import "testing"

func TestPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "two decimals", value: 9.99, want: "$9.99"},
		{name: "pads cents", value: 20, want: "$20.00"},
		{name: "zero", value: 0, want: "$0.00"},
		{name: "rounds to cents", value: 45.254, want: "$45.25"},
		{name: "negative passes through", value: -1, want: "$-1.00"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Price(tc.value); got != tc.want {
				t.Errorf("Price(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestStockLabel(t *testing.T) {
	t.Parallel()

	if got := StockLabel(5); got != "Stock: 5" {
		t.Errorf("StockLabel(5) = %q", got)
	}
	if got := StockLabel(0); got != "Stock: 0" {
		t.Errorf("StockLabel(0) = %q", got)
	}
}
