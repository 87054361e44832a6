package http

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cardvault/catalog-api/internal/business/collection"
	"github.com/cardvault/catalog-api/internal/repository"
	"github.com/cardvault/catalog-api/pkg/model"
	"github.com/cardvault/catalog-api/pkg/util"
	"github.com/gin-gonic/gin"
)

// Router wires HTTP handlers.
type Router struct {
	collection *collection.Service
	money      util.MoneyFormatter
	origins    string
}

func NewRouter(svc *collection.Service, money util.MoneyFormatter, allowedOrigins string) *gin.Engine {
	r := &Router{
		collection: svc,
		money:      money,
		origins:    allowedOrigins,
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), r.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/rarities", r.listRarities)
		api.GET("/cards", r.listCards)
		api.GET("/cards/export", r.exportCards)
		api.GET("/collection", r.getCollection)
		api.GET("/stats", r.getStats)
		api.POST("/stats/refresh", r.refreshStats)
		api.GET("/stats/snapshot", r.getSnapshot)
		api.GET("/view", r.getView)
	}

	return router
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(r.origins, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	// An empty ALLOWED_ORIGINS keeps the API open to every origin.
	if len(trimmed) == 0 {
		trimmed = []string{"*"}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := ""
		for _, o := range trimmed {
			if o == "*" {
				allowed = "*"
				break
			}
			if origin != "" && o == origin {
				allowed = origin
				c.Header("Vary", "Origin")
				break
			}
		}
		if allowed != "" {
			c.Header("Access-Control-Allow-Origin", allowed)
		}
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, If-None-Match")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// cardResponse adds the formatted value the page shows under each card.
type cardResponse struct {
	model.Card
	RarityLabel  string `json:"rarityLabel"`
	ValueDisplay string `json:"valueDisplay"`
}

func (r *Router) present(cards []model.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardResponse{
			Card:         c,
			RarityLabel:  c.Rarity.Label(),
			ValueDisplay: r.money.Format(c.Value),
		})
	}
	return out
}

// writeError maps sentinel errors to status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, collection.ErrInvalidSelection), errors.Is(err, collection.ErrInvalidTab):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (r *Router) listRarities(c *gin.Context) {
	items := append([]model.RarityInfo{{Rarity: model.Rarity(collection.SelectionAll), Label: "Все карты"}}, collection.Rarities()...)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (r *Router) listCards(c *gin.Context) {
	sel, err := collection.ParseSelection(c.Query("rarity"))
	if err != nil {
		writeError(c, err)
		return
	}
	view, err := r.collection.Catalog(c.Request.Context(), sel)
	if err != nil {
		writeError(c, err)
		return
	}

	etag := catalogETag(view)
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":             r.present(view.Items),
		"total":             view.Total,
		"rarity":            view.Selection,
		"ownedValue":        view.OwnedValue,
		"ownedValueDisplay": r.money.Format(view.OwnedValue),
	})
}

// catalogETag covers the whole catalog and the selection, since ownedValue in
// the response depends on cards outside the filter.
func catalogETag(view collection.CatalogView) string {
	return `"` + util.HashString(view.CatalogHash+"|"+string(view.Selection)) + `"`
}

func (r *Router) exportCards(c *gin.Context) {
	sel, err := collection.ParseSelection(c.Query("rarity"))
	if err != nil {
		writeError(c, err)
		return
	}
	cards, err := r.collection.Cards(c.Request.Context(), sel)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=cards.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "name", "rarity", "category", "value", "owned"}); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	for _, card := range cards {
		row := []string{
			strconv.Itoa(card.ID),
			card.Name,
			string(card.Rarity),
			card.Category,
			strconv.FormatFloat(card.Value, 'f', 2, 64),
			strconv.FormatBool(card.Owned),
		}
		if err := writer.Write(row); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
	}
}

func (r *Router) getCollection(c *gin.Context) {
	view, err := r.collection.Collection(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":             r.present(view.Items),
		"ownedCards":        view.OwnedCards,
		"totalCards":        view.TotalCards,
		"completion":        view.Completion,
		"byRarity":          view.ByRarity,
		"ownedValue":        view.OwnedValue,
		"ownedValueDisplay": r.money.Format(view.OwnedValue),
	})
}

// statsResponse adds display strings to the stats tab.
type statsResponse struct {
	model.CollectionStats
	OwnedValueDisplay   string `json:"ownedValueDisplay"`
	CatalogValueDisplay string `json:"catalogValueDisplay"`
	CompletionRounded   int    `json:"completionRounded"`
}

func (r *Router) presentStats(stats model.CollectionStats) statsResponse {
	return statsResponse{
		CollectionStats:     stats,
		OwnedValueDisplay:   r.money.Format(stats.OwnedValue),
		CatalogValueDisplay: r.money.Format(stats.CatalogValue),
		CompletionRounded:   int(stats.Completion + 0.5),
	}
}

func (r *Router) getStats(c *gin.Context) {
	stats, err := r.collection.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r.presentStats(stats))
}

func (r *Router) refreshStats(c *gin.Context) {
	stats, err := r.collection.RefreshStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r.presentStats(stats))
}

func (r *Router) getSnapshot(c *gin.Context) {
	snap, err := r.collection.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats": r.presentStats(snap.CollectionStats),
		"stale": snap.Stale,
	})
}

func (r *Router) getView(c *gin.Context) {
	tab, err := collection.ParseTab(c.Query("tab"))
	if err != nil {
		writeError(c, err)
		return
	}
	sel, err := collection.ParseSelection(c.Query("rarity"))
	if err != nil {
		writeError(c, err)
		return
	}
	view, err := r.collection.View(c.Request.Context(), collection.ViewState{Tab: tab, Rarity: sel})
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{"state": view.State}
	switch {
	case view.Catalog != nil:
		resp["catalog"] = gin.H{
			"selection":         view.Catalog.Selection,
			"rarities":          view.Catalog.Rarities,
			"items":             r.present(view.Catalog.Items),
			"total":             view.Catalog.Total,
			"ownedValueDisplay": r.money.Format(view.Catalog.OwnedValue),
		}
	case view.Collection != nil:
		resp["collection"] = gin.H{
			"items":      r.present(view.Collection.Items),
			"ownedCards": view.Collection.OwnedCards,
			"totalCards": view.Collection.TotalCards,
			"completion": view.Collection.Completion,
			"byRarity":   view.Collection.ByRarity,
		}
	case view.Stats != nil:
		resp["stats"] = r.presentStats(*view.Stats)
	}
	c.JSON(http.StatusOK, resp)
}
