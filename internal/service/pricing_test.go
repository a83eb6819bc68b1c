package service

import (
	"errors"
	"testing"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/models"
)

func newDefaultPricingService() *PricingService {
	return NewPricingService(config.DefaultPricingRules())
}

func TestSummarizeShippingThreshold(t *testing.T) {
	pricing := newDefaultPricingService()
	cases := []struct {
		name         string
		lines        []CartLine
		wantSubtotal string
		wantShipping string
		wantTax      string
		wantTotal    string
	}{
		{
			name:         "above threshold ships free",
			lines:        []CartLine{{UnitPrice: models.RequireMoney("20.00"), Quantity: 3}},
			wantSubtotal: "60.00",
			wantShipping: "0.00",
			wantTax:      "4.20",
			wantTotal:    "64.20",
		},
		{
			name:         "below threshold pays shipping",
			lines:        []CartLine{{UnitPrice: models.RequireMoney("49.99"), Quantity: 1}},
			wantSubtotal: "49.99",
			wantShipping: "5.99",
			wantTax:      "3.50",
			wantTotal:    "59.48",
		},
		{
			name:         "exact threshold is not free",
			lines:        []CartLine{{UnitPrice: models.RequireMoney("25.00"), Quantity: 2}},
			wantSubtotal: "50.00",
			wantShipping: "5.99",
			wantTax:      "3.50",
			wantTotal:    "59.49",
		},
		{
			name: "multiple lines",
			lines: []CartLine{
				{UnitPrice: models.RequireMoney("60.00"), Quantity: 1},
				{UnitPrice: models.RequireMoney("20.00"), Quantity: 2},
			},
			wantSubtotal: "100.00",
			wantShipping: "0.00",
			wantTax:      "7.00",
			wantTotal:    "107.00",
		},
		{
			name:         "empty cart",
			lines:        nil,
			wantSubtotal: "0.00",
			wantShipping: "5.99",
			wantTax:      "0.00",
			wantTotal:    "5.99",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary := pricing.Summarize(tc.lines)
			if got := summary.Subtotal.String(); got != tc.wantSubtotal {
				t.Fatalf("subtotal want %s got %s", tc.wantSubtotal, got)
			}
			if got := summary.Shipping.String(); got != tc.wantShipping {
				t.Fatalf("shipping want %s got %s", tc.wantShipping, got)
			}
			if got := summary.Tax.String(); got != tc.wantTax {
				t.Fatalf("tax want %s got %s", tc.wantTax, got)
			}
			if got := summary.Total.String(); got != tc.wantTotal {
				t.Fatalf("total want %s got %s", tc.wantTotal, got)
			}
		})
	}
}

func TestSummarizeItemCount(t *testing.T) {
	summary := newDefaultPricingService().Summarize([]CartLine{
		{UnitPrice: models.RequireMoney("1.00"), Quantity: 2},
		{UnitPrice: models.RequireMoney("2.00"), Quantity: 5},
	})
	if summary.ItemCount != 7 {
		t.Fatalf("item count want 7 got %d", summary.ItemCount)
	}
	if summary.FreeShipping {
		t.Fatalf("subtotal 12.00 should not ship free")
	}
}

func TestSummarizeCustomRules(t *testing.T) {
	rules, err := config.PricingConfig{FreeShippingThreshold: "10", ShippingFee: "2.50", TaxRate: "0.10"}.Rules()
	if err != nil {
		t.Fatalf("parse rules failed: %v", err)
	}
	summary := NewPricingService(rules).Summarize([]CartLine{{UnitPrice: models.RequireMoney("10.00"), Quantity: 1}})
	if summary.Shipping.String() != "2.50" || summary.Tax.String() != "1.00" || summary.Total.String() != "13.50" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestDiscountPercent(t *testing.T) {
	percent, ok, err := DiscountPercent(models.RequireMoney("80"), models.NewNullMoney(models.RequireMoney("100")))
	if err != nil || !ok || percent != 20 {
		t.Fatalf("discount want 20 ok got %d ok=%v err=%v", percent, ok, err)
	}

	percent, ok, err = DiscountPercent(models.RequireMoney("66.66"), models.NewNullMoney(models.RequireMoney("99.99")))
	if err != nil || !ok || percent != 33 {
		t.Fatalf("discount want 33 got %d ok=%v err=%v", percent, ok, err)
	}

	percent, ok, err = DiscountPercent(models.RequireMoney("12.50"), models.NewNullMoney(models.RequireMoney("100")))
	if err != nil || !ok || percent != 88 {
		t.Fatalf("discount 87.5 want 88 got %d ok=%v err=%v", percent, ok, err)
	}

	percent, ok, err = DiscountPercent(models.RequireMoney("102.50"), models.NewNullMoney(models.RequireMoney("100")))
	if err != nil || !ok || percent != -2 {
		t.Fatalf("discount -2.5 want -2 got %d ok=%v err=%v", percent, ok, err)
	}

	_, ok, err = DiscountPercent(models.RequireMoney("80"), models.NullMoney{})
	if err != nil || ok {
		t.Fatalf("absent original price should not show discount, ok=%v err=%v", ok, err)
	}

	_, _, err = DiscountPercent(models.RequireMoney("80"), models.NewNullMoney(models.RequireMoney("0")))
	if !errors.Is(err, ErrInvalidPriceData) {
		t.Fatalf("zero original price want ErrInvalidPriceData got %v", err)
	}
}

func TestRenderStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   StarRating
	}{
		{rating: 3.5, want: StarRating{Full: 3, Half: 1, Empty: 1}},
		{rating: 0, want: StarRating{Full: 0, Half: 0, Empty: 5}},
		{rating: 5, want: StarRating{Full: 5, Half: 0, Empty: 0}},
		{rating: 4.4, want: StarRating{Full: 4, Half: 0, Empty: 1}},
		{rating: 4.9, want: StarRating{Full: 4, Half: 1, Empty: 0}},
		{rating: -1, want: StarRating{Full: 0, Half: 0, Empty: 5}},
		{rating: 7, want: StarRating{Full: 5, Half: 0, Empty: 0}},
	}
	for _, tc := range cases {
		got := RenderStars(tc.rating)
		if got != tc.want {
			t.Fatalf("rating %.1f want %+v got %+v", tc.rating, tc.want, got)
		}
		if got.Full+got.Half+got.Empty != 5 {
			t.Fatalf("rating %.1f should always render 5 slots, got %+v", tc.rating, got)
		}
	}
}
