package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"listing-service/internal/store"
	"listing-service/pkg/logger"
)

// AccountHandler serves account-scoped reads
type AccountHandler struct {
	Store store.Store
}

// NewAccountHandler returns a handler backed by the given store
func NewAccountHandler(s store.Store) *AccountHandler {
	return &AccountHandler{Store: s}
}

// Listings handles retrieving all active listings owned by an account
func (h *AccountHandler) Listings(c echo.Context) error {
	log := logger.FromContext(c)

	accountID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid account ID",
		})
	}

	listings, err := h.Store.ListAccountListings(accountID)
	if err != nil {
		log.Error("Failed to list account listings", zap.Uint("account_id", accountID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch account listings",
		})
	}

	log.Info("Account listings retrieved", zap.Uint("account_id", accountID), zap.Int("count", len(listings)))
	return c.JSON(http.StatusOK, listings)
}

// Current returns the fixed demo account. No authentication headers are
// consulted.
func (h *AccountHandler) Current(c echo.Context) error {
	log := logger.FromContext(c)

	account, err := h.Store.GetAccount(demoAccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Account not found",
			})
		}
		log.Error("Failed to fetch current account", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch account",
		})
	}

	return c.JSON(http.StatusOK, account)
}
