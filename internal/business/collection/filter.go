package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cardvault/catalog-api/pkg/model"
)

// ErrInvalidSelection is returned when a rarity selection is outside the known tiers.
var ErrInvalidSelection = errors.New("invalid rarity selection")

// Selection is the active rarity filter: one tier or SelectionAll.
type Selection string

// SelectionAll matches every card.
const SelectionAll Selection = "all"

// SelectRarity returns the selection for a single tier.
func SelectRarity(r model.Rarity) Selection {
	return Selection(r)
}

// ParseSelection reads a selection from user input. Empty input means SelectionAll.
func ParseSelection(raw string) (Selection, error) {
	val := strings.ToLower(strings.TrimSpace(raw))
	if val == "" || val == string(SelectionAll) {
		return SelectionAll, nil
	}
	if r := model.Rarity(val); r.Valid() {
		return SelectRarity(r), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSelection, raw)
}

// FilterByRarity returns the cards matching sel in their original order.
// SelectionAll returns cards unchanged.
func FilterByRarity(cards []model.Card, sel Selection) []model.Card {
	if sel == SelectionAll {
		return cards
	}
	filtered := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if Selection(c.Rarity) == sel {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Rarities lists the tiers with their labels, lowest first.
func Rarities() []model.RarityInfo {
	all := model.AllRarities()
	out := make([]model.RarityInfo, 0, len(all))
	for _, r := range all {
		out = append(out, model.RarityInfo{Rarity: r, Label: r.Label()})
	}
	return out
}
