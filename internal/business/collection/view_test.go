package collection

import (
	"errors"
	"testing"

	"github.com/cardvault/catalog-api/pkg/model"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		raw     string
		want    Tab
		wantErr bool
	}{
		{raw: "", want: TabCatalog},
		{raw: "catalog", want: TabCatalog},
		{raw: "Collection", want: TabCollection},
		{raw: " stats ", want: TabStats},
		{raw: "profile", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseTab(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTab) {
				t.Errorf("ParseTab(%q) err = %v, want ErrInvalidTab", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseTab(%q) = %q, %v; want %q", tt.raw, got, err, tt.want)
		}
	}
}

func TestDefaultViewState(t *testing.T) {
	state := DefaultViewState()
	if state.Tab != TabCatalog || state.Rarity != SelectionAll {
		t.Errorf("default state = %+v, want catalog/all", state)
	}
}

func TestBuildViewPerTab(t *testing.T) {
	cards := DefaultCatalog()

	catalog := BuildView(cards, ViewState{Tab: TabCatalog, Rarity: SelectRarity(model.RarityEpic)})
	if catalog.Catalog == nil || catalog.Collection != nil || catalog.Stats != nil {
		t.Fatalf("catalog view set wrong sections: %+v", catalog)
	}
	if catalog.Catalog.Total != 3 {
		t.Errorf("epic total = %d, want 3", catalog.Catalog.Total)
	}
	if len(catalog.Catalog.Rarities) != 4 {
		t.Errorf("rarity buttons = %d, want 4", len(catalog.Catalog.Rarities))
	}

	coll := BuildView(cards, ViewState{Tab: TabCollection, Rarity: SelectRarity(model.RarityEpic)})
	if coll.Collection == nil || coll.Catalog != nil {
		t.Fatalf("collection view set wrong sections: %+v", coll)
	}
	// The rarity filter only applies to the catalog tab.
	if len(coll.Collection.Items) != 6 {
		t.Errorf("owned items = %d, want 6", len(coll.Collection.Items))
	}
	if coll.Collection.ByRarity[model.RarityEpic] != 2 {
		t.Errorf("owned epic = %d, want 2", coll.Collection.ByRarity[model.RarityEpic])
	}
	if coll.Collection.Completion != 50 {
		t.Errorf("completion = %v, want 50", coll.Collection.Completion)
	}

	stats := BuildView(cards, ViewState{Tab: TabStats})
	if stats.Stats == nil || stats.Stats.OwnedValue != 34920 {
		t.Fatalf("stats view = %+v, want owned value 34920", stats.Stats)
	}
	if stats.State.Rarity != SelectionAll {
		t.Errorf("empty rarity should default to all, got %q", stats.State.Rarity)
	}
}

func TestBuildViewZeroState(t *testing.T) {
	v := BuildView(DefaultCatalog(), ViewState{})
	if v.State.Tab != TabCatalog || v.Catalog == nil {
		t.Fatalf("zero state should render the catalog tab, got %+v", v.State)
	}
	if v.Catalog.Total != 12 {
		t.Errorf("zero state total = %d, want 12", v.Catalog.Total)
	}
}
