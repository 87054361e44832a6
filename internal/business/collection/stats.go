package collection

import "github.com/cardvault/catalog-api/pkg/model"

// OwnedCards returns the cards held by the user, order preserved.
func OwnedCards(cards []model.Card) []model.Card {
	owned := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if c.Owned {
			owned = append(owned, c)
		}
	}
	return owned
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Aggregate reduces the full catalog into collection stats. ByRarity holds
// exactly the known tiers; a card with an unknown tier counts toward the
// totals only.
func Aggregate(cards []model.Card) model.CollectionStats {
	var owned int
	var ownedValue, catalogValue float64
	byRarity := make(map[model.Rarity]model.RarityStats, len(model.AllRarities()))
	for _, r := range model.AllRarities() {
		byRarity[r] = model.RarityStats{}
	}

	for _, c := range cards {
		catalogValue += c.Value
		if c.Owned {
			owned++
			ownedValue += c.Value
		}
		rs, known := byRarity[c.Rarity]
		if !known {
			continue
		}
		rs.Total++
		if c.Owned {
			rs.Owned++
		}
		byRarity[c.Rarity] = rs
	}

	for r, rs := range byRarity {
		rs.Completion = Percent(rs.Owned, rs.Total)
		byRarity[r] = rs
	}

	return model.CollectionStats{
		TotalCards:   len(cards),
		OwnedCards:   owned,
		OwnedValue:   ownedValue,
		CatalogValue: catalogValue,
		Completion:   Percent(owned, len(cards)),
		RareOwned:    byRarity[model.RarityEpic].Owned + byRarity[model.RarityLegendary].Owned,
		ByRarity:     byRarity,
	}
}
