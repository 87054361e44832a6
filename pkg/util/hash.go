package util

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cardvault/catalog-api/pkg/model"
)

// HashCatalog returns a stable MD5 fingerprint of an ordered catalog, used as
// an ETag and to tell whether a persisted snapshot is stale.
func HashCatalog(cards []model.Card) string {
	builder := strings.Builder{}
	for _, c := range cards {
		builder.WriteString(cardKey(c))
		builder.WriteString("\n")
	}
	return hashString(builder.String())
}

// HashString returns the MD5 hash of an arbitrary string.
func HashString(input string) string {
	return hashString(input)
}

func cardKey(c model.Card) string {
	builder := strings.Builder{}
	builder.WriteString(strconv.Itoa(c.ID))
	builder.WriteString("|")
	builder.WriteString(strings.TrimSpace(c.Name))
	builder.WriteString("|")
	builder.WriteString(string(c.Rarity))
	builder.WriteString("|")
	builder.WriteString(strconv.FormatFloat(c.Value, 'f', -1, 64))
	builder.WriteString("|")
	builder.WriteString(strconv.FormatBool(c.Owned))
	builder.WriteString("|")
	builder.WriteString(strings.TrimSpace(c.Category))
	builder.WriteString("|")
	builder.WriteString(c.Image)
	return builder.String()
}

func hashString(input string) string {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
