package models

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      StockFlag
	}{
		{"zero stock", 0, 5, OutOfStock},
		{"negative stock", -3, 5, OutOfStock},
		{"zero stock zero threshold", 0, 0, OutOfStock},
		{"below threshold", 3, 5, LowStock},
		{"at threshold", 5, 5, LowStock},
		{"one unit with zero threshold", 1, 0, InStock},
		{"above threshold", 6, 5, InStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.stock, tt.threshold); got != tt.want {
				t.Errorf("Classify(%d, %d) = %q, want %q", tt.stock, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestClassify_Ranges(t *testing.T) {
	for threshold := 0; threshold <= 20; threshold++ {
		for stock := -5; stock <= 30; stock++ {
			got := Classify(stock, threshold)
			switch {
			case stock <= 0 && got != OutOfStock:
				t.Fatalf("stock=%d threshold=%d: expected Out of Stock, got %q", stock, threshold, got)
			case stock > 0 && stock <= threshold && got != LowStock:
				t.Fatalf("stock=%d threshold=%d: expected Low Stock, got %q", stock, threshold, got)
			case stock > threshold && stock > 0 && got != InStock:
				t.Fatalf("stock=%d threshold=%d: expected In Stock, got %q", stock, threshold, got)
			}
		}
	}
}

func TestStockFlag_FilterKey(t *testing.T) {
	if InStock.FilterKey() != "in" || LowStock.FilterKey() != "low" || OutOfStock.FilterKey() != "out" {
		t.Errorf("unexpected filter keys: %q %q %q", InStock.FilterKey(), LowStock.FilterKey(), OutOfStock.FilterKey())
	}
	if StockFlag("bogus").FilterKey() != "" {
		t.Errorf("expected empty key for unknown flag")
	}
}

func TestProduct_InputRoundTrip(t *testing.T) {
	barcode := "123"
	p := Product{ID: "p1", Name: "Rice", SKU: "RICE-1", Barcode: &barcode, Stock: 2, LowStockThreshold: 5, Status: StatusActive}

	in := p.Input()
	*in.Barcode = "changed"
	if *p.Barcode != "123" {
		t.Errorf("Input must not alias optional fields")
	}

	back := in.Product("p1")
	if back.ID != "p1" || back.Name != "Rice" || back.StockFlag() != LowStock {
		t.Errorf("unexpected product: %+v", back)
	}
}
