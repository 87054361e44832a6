package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cardvault/catalog-api/pkg/model"
)

// ErrInvalidCatalog is returned by ValidateCatalog.
var ErrInvalidCatalog = errors.New("invalid catalog")

// DefaultCatalog returns the built-in catalog in ID order. Each call returns a fresh slice.
func DefaultCatalog() []model.Card {
	return []model.Card{
		{ID: 1, Name: "Огненный дракон", Rarity: model.RarityLegendary, Value: 15000, Image: "🐉", Owned: true, Category: "Мифические существа"},
		{ID: 2, Name: "Ледяной маг", Rarity: model.RarityEpic, Value: 7500, Image: "🧙‍♂️", Owned: true, Category: "Маги"},
		{ID: 3, Name: "Эльфийский лучник", Rarity: model.RarityRare, Value: 3200, Image: "🏹", Owned: false, Category: "Воины"},
		{ID: 4, Name: "Гоблин-разведчик", Rarity: model.RarityCommon, Value: 850, Image: "👺", Owned: true, Category: "Существа"},
		{ID: 5, Name: "Феникс", Rarity: model.RarityLegendary, Value: 18000, Image: "🔥", Owned: false, Category: "Мифические существа"},
		{ID: 6, Name: "Небесный рыцарь", Rarity: model.RarityEpic, Value: 6800, Image: "⚔️", Owned: true, Category: "Воины"},
		{ID: 7, Name: "Лесной страж", Rarity: model.RarityRare, Value: 4100, Image: "🌲", Owned: false, Category: "Защитники"},
		{ID: 8, Name: "Горный тролль", Rarity: model.RarityCommon, Value: 920, Image: "👹", Owned: true, Category: "Существа"},
		{ID: 9, Name: "Древний артефакт", Rarity: model.RarityLegendary, Value: 22000, Image: "💎", Owned: false, Category: "Артефакты"},
		{ID: 10, Name: "Морской страж", Rarity: model.RarityRare, Value: 3850, Image: "🌊", Owned: true, Category: "Защитники"},
		{ID: 11, Name: "Гномий кузнец", Rarity: model.RarityCommon, Value: 780, Image: "⚒️", Owned: false, Category: "Ремесленники"},
		{ID: 12, Name: "Темный некромант", Rarity: model.RarityEpic, Value: 8200, Image: "💀", Owned: false, Category: "Маги"},
	}
}

// ValidateCatalog checks that IDs are unique, tiers are known, values are
// non-negative and every card has a name and category.
func ValidateCatalog(cards []model.Card) error {
	seen := make(map[int]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate card id %d", ErrInvalidCatalog, c.ID)
		}
		seen[c.ID] = struct{}{}
		if !c.Rarity.Valid() {
			return fmt.Errorf("%w: card %d has unknown rarity %q", ErrInvalidCatalog, c.ID, c.Rarity)
		}
		if c.Value < 0 {
			return fmt.Errorf("%w: card %d has negative value", ErrInvalidCatalog, c.ID)
		}
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: card %d has no name", ErrInvalidCatalog, c.ID)
		}
		if strings.TrimSpace(c.Category) == "" {
			return fmt.Errorf("%w: card %d has no category", ErrInvalidCatalog, c.ID)
		}
	}
	return nil
}
