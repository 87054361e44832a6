package repository

import (
	"errors"
	"fmt"

	"github.com/cardvault/catalog-api/pkg/model"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCard is returned when a stored card does not decode to a known tier.
var ErrInvalidCard = errors.New("invalid stored card")

func checkCard(c model.Card) error {
	if !c.Rarity.Valid() {
		return fmt.Errorf("%w: card %d has unknown rarity %q", ErrInvalidCard, c.ID, c.Rarity)
	}
	return nil
}
