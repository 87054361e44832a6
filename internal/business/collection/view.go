package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cardvault/catalog-api/pkg/model"
	"github.com/cardvault/catalog-api/pkg/util"
)

// ErrInvalidTab is returned when a tab name is not one of the three views.
var ErrInvalidTab = errors.New("invalid tab")

// Tab is one of the page views.
type Tab string

const (
	TabCatalog    Tab = "catalog"
	TabCollection Tab = "collection"
	TabStats      Tab = "stats"
)

// ParseTab reads a tab from user input. Empty input means TabCatalog.
func ParseTab(raw string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(raw))); t {
	case "":
		return TabCatalog, nil
	case TabCatalog, TabCollection, TabStats:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTab, raw)
}

// ViewState is the page selection: active tab and rarity filter. The two are
// independent.
type ViewState struct {
	Tab    Tab       `json:"tab"`
	Rarity Selection `json:"rarity"`
}

// DefaultViewState is the state a fresh page starts with.
func DefaultViewState() ViewState {
	return ViewState{Tab: TabCatalog, Rarity: SelectionAll}
}

// CatalogView is the catalog tab: filtered cards and the filter buttons.
type CatalogView struct {
	Selection   Selection          `json:"selection"`
	Rarities    []model.RarityInfo `json:"rarities"`
	Items       []model.Card       `json:"items"`
	Total       int                `json:"total"`
	OwnedValue  float64            `json:"ownedValue"`
	// CatalogHash covers the whole catalog, not only Items.
	CatalogHash string             `json:"catalogHash"`
}

// CollectionView is the owned-collection tab.
type CollectionView struct {
	Items      []model.Card         `json:"items"`
	OwnedCards int                  `json:"ownedCards"`
	TotalCards int                  `json:"totalCards"`
	Completion float64              `json:"completion"`
	ByRarity   map[model.Rarity]int `json:"byRarity"`
	OwnedValue float64              `json:"ownedValue"`
}

// View is the payload for one tab. Only the field matching State.Tab is set.
type View struct {
	State      ViewState              `json:"state"`
	Catalog    *CatalogView           `json:"catalog,omitempty"`
	Collection *CollectionView        `json:"collection,omitempty"`
	Stats      *model.CollectionStats `json:"stats,omitempty"`
}

// BuildCatalogView filters cards by sel.
func BuildCatalogView(cards []model.Card, sel Selection) CatalogView {
	items := FilterByRarity(cards, sel)
	return CatalogView{
		Selection:   sel,
		Rarities:    Rarities(),
		Items:       items,
		Total:       len(items),
		OwnedValue:  Aggregate(cards).OwnedValue,
		CatalogHash: util.HashCatalog(cards),
	}
}

// BuildCollectionView lists owned cards and per-tier owned counts.
func BuildCollectionView(cards []model.Card) CollectionView {
	stats := Aggregate(cards)
	byRarity := make(map[model.Rarity]int, len(stats.ByRarity))
	for r, rs := range stats.ByRarity {
		byRarity[r] = rs.Owned
	}
	return CollectionView{
		Items:      OwnedCards(cards),
		OwnedCards: stats.OwnedCards,
		TotalCards: stats.TotalCards,
		Completion: stats.Completion,
		ByRarity:   byRarity,
		OwnedValue: stats.OwnedValue,
	}
}

// BuildView assembles the payload for state.Tab.
func BuildView(cards []model.Card, state ViewState) View {
	if state.Rarity == "" {
		state.Rarity = SelectionAll
	}
	v := View{State: state}
	switch state.Tab {
	case TabCollection:
		cv := BuildCollectionView(cards)
		v.Collection = &cv
	case TabStats:
		stats := Aggregate(cards)
		v.Stats = &stats
	default:
		v.State.Tab = TabCatalog
		cv := BuildCatalogView(cards, state.Rarity)
		v.Catalog = &cv
	}
	return v
}
