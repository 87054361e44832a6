package util

import (
	"strings"
	"testing"

	"github.com/cardvault/catalog-api/pkg/model"
)

func TestMoneyFormatter(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		value  float64
		want   string
	}{
		{name: "english grouping", locale: "en", value: 15000, want: "15,000 ₽"},
		{name: "small value", locale: "en", value: 780, want: "780 ₽"},
		{name: "fraction kept", locale: "en", value: 1234.5, want: "1,234.5 ₽"},
		{name: "zero", locale: "en", value: 0, want: "0 ₽"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMoneyFormatter(tt.locale).Format(tt.value)
			if got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestMoneyFormatterRussianDefault(t *testing.T) {
	for _, locale := range []string{"", "ru", "not a locale!"} {
		got := NewMoneyFormatter(locale).Format(15000)
		if !strings.HasPrefix(got, "15") || !strings.HasSuffix(got, "000 ₽") {
			t.Errorf("locale %q: Format(15000) = %q, want grouped rubles", locale, got)
		}
		if strings.Contains(got, ",") {
			t.Errorf("locale %q: Format(15000) = %q, russian grouping must not use commas", locale, got)
		}
	}

	var zero MoneyFormatter
	if got := zero.Format(5); got != "5 ₽" {
		t.Errorf("zero formatter = %q, want %q", got, "5 ₽")
	}
}

func TestHashCatalog(t *testing.T) {
	base := []model.Card{
		{ID: 1, Name: "Феникс", Rarity: model.RarityLegendary, Value: 18000, Category: "Мифические существа"},
		{ID: 2, Name: "Гномий кузнец", Rarity: model.RarityCommon, Value: 780, Owned: true, Category: "Ремесленники"},
	}
	same := append([]model.Card(nil), base...)
	if HashCatalog(base) != HashCatalog(same) {
		t.Fatalf("hash should be stable for equal catalogs")
	}

	changed := append([]model.Card(nil), base...)
	changed[0].Owned = true
	if HashCatalog(base) == HashCatalog(changed) {
		t.Errorf("hash should change when ownership changes")
	}

	reordered := []model.Card{base[1], base[0]}
	if HashCatalog(base) == HashCatalog(reordered) {
		t.Errorf("hash should depend on catalog order")
	}

	glyph := append([]model.Card(nil), base...)
	glyph[0].Image = "🔥"
	if HashCatalog(base) == HashCatalog(glyph) {
		t.Errorf("hash should change when the display glyph changes")
	}
}
