package collection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cardvault/catalog-api/pkg/model"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		raw     string
		want    Selection
		wantErr bool
	}{
		{raw: "", want: SelectionAll},
		{raw: "all", want: SelectionAll},
		{raw: " ALL ", want: SelectionAll},
		{raw: "common", want: SelectRarity(model.RarityCommon)},
		{raw: "Rare", want: SelectRarity(model.RarityRare)},
		{raw: "epic", want: SelectRarity(model.RarityEpic)},
		{raw: "legendary", want: SelectRarity(model.RarityLegendary)},
		{raw: "mythic", wantErr: true},
		{raw: "all,rare", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSelection(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("ParseSelection(%q) err = %v, want ErrInvalidSelection", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSelection(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSelection(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFilterByRarityAllIsIdentity(t *testing.T) {
	cards := DefaultCatalog()
	got := FilterByRarity(cards, SelectionAll)
	if !reflect.DeepEqual(got, cards) {
		t.Fatalf("all selection changed the catalog")
	}
	if len(got) > 0 && &got[0] != &cards[0] {
		t.Errorf("all selection should return the input slice unchanged")
	}
}

func TestFilterByRarityExact(t *testing.T) {
	cards := DefaultCatalog()
	for _, r := range model.AllRarities() {
		got := FilterByRarity(cards, SelectRarity(r))

		var wantIDs []int
		for _, c := range cards {
			if c.Rarity == r {
				wantIDs = append(wantIDs, c.ID)
			}
		}
		var gotIDs []int
		for _, c := range got {
			if c.Rarity != r {
				t.Errorf("%s filter returned card %d with rarity %s", r, c.ID, c.Rarity)
			}
			gotIDs = append(gotIDs, c.ID)
		}
		if !reflect.DeepEqual(gotIDs, wantIDs) {
			t.Errorf("%s filter ids = %v, want %v", r, gotIDs, wantIDs)
		}
	}
}

func TestFilterByRarityEmpty(t *testing.T) {
	got := FilterByRarity(nil, SelectRarity(model.RarityEpic))
	if len(got) != 0 {
		t.Errorf("filter of empty catalog = %v, want empty", got)
	}
	if got := FilterByRarity(nil, SelectionAll); got != nil {
		t.Errorf("all filter of nil catalog = %v, want nil", got)
	}
}

func TestRarities(t *testing.T) {
	got := Rarities()
	want := []model.RarityInfo{
		{Rarity: model.RarityCommon, Label: "Обычная"},
		{Rarity: model.RarityRare, Label: "Редкая"},
		{Rarity: model.RarityEpic, Label: "Эпическая"},
		{Rarity: model.RarityLegendary, Label: "Легендарная"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rarities() = %v, want %v", got, want)
	}
}
