package model

import "time"

// Rarity is the scarcity tier of a card. The set of tiers is closed.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns every tier from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Label returns the display label shown on badges and filter buttons.
func (r Rarity) Label() string {
	switch r {
	case RarityCommon:
		return "Обычная"
	case RarityRare:
		return "Редкая"
	case RarityEpic:
		return "Эпическая"
	case RarityLegendary:
		return "Легендарная"
	default:
		return string(r)
	}
}

// Card is a single collectible in the catalog.
type Card struct {
	ID       int     `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Rarity   Rarity  `json:"rarity" firestore:"rarity"`
	Value    float64 `json:"value" firestore:"value"`
	Image    string  `json:"image,omitempty" firestore:"image,omitempty"`
	Owned    bool    `json:"owned" firestore:"owned"`
	Category string  `json:"category" firestore:"category"`
}

// RarityInfo describes a tier for the rarity filter buttons.
type RarityInfo struct {
	Rarity Rarity `json:"rarity"`
	Label  string `json:"label"`
}

// RarityStats holds completion counters for one tier.
type RarityStats struct {
	Owned      int     `json:"owned" firestore:"owned"`
	Total      int     `json:"total" firestore:"total"`
	Completion float64 `json:"completion" firestore:"completion"`
}

// CollectionStats is derived from the full catalog on every read. Persisted
// copies carry LastUpdated and the hash of the catalog they were built from.
type CollectionStats struct {
	LastUpdated  time.Time              `json:"lastUpdated,omitempty" firestore:"lastUpdated,omitempty"`
	CatalogHash  string                 `json:"catalogHash,omitempty" firestore:"catalogHash,omitempty"`
	TotalCards   int                    `json:"totalCards" firestore:"totalCards"`
	OwnedCards   int                    `json:"ownedCards" firestore:"ownedCards"`
	OwnedValue   float64                `json:"ownedValue" firestore:"ownedValue"`
	CatalogValue float64                `json:"catalogValue" firestore:"catalogValue"`
	Completion   float64                `json:"completion" firestore:"completion"`
	RareOwned    int                    `json:"rareOwned" firestore:"rareOwned"` // epic + legendary
	ByRarity     map[Rarity]RarityStats `json:"byRarity" firestore:"byRarity"`
}
