package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"listing-service/internal/model"
	"listing-service/internal/store"
	"listing-service/pkg/logger"
	"listing-service/pkg/validate"
	"listing-service/prometheus"
)

// demoAccountID is the seeded account used when a creation request carries
// no account reference. There is no real identity integration.
const demoAccountID uint = 1

// ListingHandler manages all operations on listings
type ListingHandler struct {
	Store store.Store
}

// NewListingHandler returns a handler backed by the given store
func NewListingHandler(s store.Store) *ListingHandler {
	return &ListingHandler{Store: s}
}

// CreateListingRequest defines the structure for listing creation requests
type CreateListingRequest struct {
	AccountID   uint     `json:"accountId"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Offering    string   `json:"offering" validate:"required"`
	Seeking     string   `json:"seeking" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Status      string   `json:"status"`
	Location    string   `json:"location" validate:"required"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateListingRequest defines the structure for partial listing updates.
// Omitted fields are left unchanged.
type UpdateListingRequest struct {
	AccountID   *uint     `json:"accountId"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Offering    *string   `json:"offering"`
	Seeking     *string   `json:"seeking"`
	Category    *string   `json:"category"`
	Status      *string   `json:"status"`
	Location    *string   `json:"location"`
	Images      *[]string `json:"images"`
	IsActive    *bool     `json:"isActive"`
}

// List handles retrieving all listings with optional filtering
func (h *ListingHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	filters := &store.ListingFilters{
		Category:   c.QueryParam("category"),
		Status:     c.QueryParam("status"),
		SearchTerm: c.QueryParam("search"),
	}
	if filters.SearchTerm != "" {
		prometheus.ListingSearchesCounter.Inc()
	}
	if raw := c.QueryParam("accountId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err == nil {
			accountID := uint(id)
			filters.AccountID = &accountID
		} else {
			log.Warn("Invalid accountId parameter", zap.String("value", raw), zap.Error(err))
		}
	}

	defer prometheus.TrackStoreOperation("list_listings")(time.Now())
	listings, err := h.Store.ListListings(filters)
	if err != nil {
		log.Error("Failed to list listings", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch listings",
		})
	}

	log.Info("Listings retrieved successfully", zap.Int("count", len(listings)))
	return c.JSON(http.StatusOK, listings)
}

// Get handles retrieving a single listing by ID, joined with its owner
func (h *ListingHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid listing ID",
		})
	}

	listing, err := h.Store.GetEnrichedListing(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Listing not found",
			})
		}
		log.Error("Failed to fetch listing", zap.Uint("listing_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch listing",
		})
	}

	return c.JSON(http.StatusOK, listing)
}

// Create handles creating a new listing
func (h *ListingHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Listing validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Validation error",
			"errors":  validate.Errors(err),
		})
	}

	// No identity integration: fall back to the seeded demo account
	if req.AccountID == 0 {
		req.AccountID = demoAccountID
	}

	listing, err := h.Store.CreateListing(model.NewListing{
		AccountID:   req.AccountID,
		Title:       req.Title,
		Description: req.Description,
		Offering:    req.Offering,
		Seeking:     req.Seeking,
		Category:    model.Category(req.Category),
		Status:      model.Status(req.Status),
		Location:    req.Location,
		Images:      req.Images,
		IsActive:    req.IsActive,
	})
	if err != nil {
		log.Error("Failed to create listing", zap.String("title", req.Title), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create listing",
		})
	}
	prometheus.RecordListingOperation("create")

	enriched, err := h.Store.GetEnrichedListing(listing.ID)
	if err != nil {
		log.Error("Failed to fetch created listing", zap.Uint("listing_id", listing.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create listing",
		})
	}

	log.Info("Listing created successfully",
		zap.Uint("listing_id", listing.ID),
		zap.String("title", listing.Title),
		zap.String("category", string(listing.Category)))
	return c.JSON(http.StatusCreated, enriched)
}

// Update handles partially updating an existing listing
func (h *ListingHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid listing ID",
		})
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("listing_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Listing validation failed", zap.Uint("listing_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Validation error",
			"errors":  validate.Errors(err),
		})
	}

	patch := store.ListingPatch{
		AccountID:   req.AccountID,
		Title:       req.Title,
		Description: req.Description,
		Offering:    req.Offering,
		Seeking:     req.Seeking,
		Location:    req.Location,
		Images:      req.Images,
		IsActive:    req.IsActive,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		patch.Category = &category
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		patch.Status = &status
	}

	listing, err := h.Store.UpdateListing(id, patch)
	if err != nil {
		log.Error("Failed to update listing", zap.Uint("listing_id", id), zap.Error(err))
		// A missing id propagates unmapped here; only the delete path
		// answers 404.
		return err
	}
	prometheus.RecordListingOperation("update")

	enriched, err := h.Store.GetEnrichedListing(listing.ID)
	if err != nil {
		log.Error("Failed to fetch updated listing", zap.Uint("listing_id", listing.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update listing",
		})
	}

	log.Info("Listing updated successfully",
		zap.Uint("listing_id", listing.ID),
		zap.String("status", string(listing.Status)))
	return c.JSON(http.StatusOK, enriched)
}

// Delete handles soft-deleting a listing
func (h *ListingHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid listing ID",
		})
	}

	deleted, err := h.Store.SoftDeleteListing(id)
	if err != nil {
		log.Error("Failed to delete listing", zap.Uint("listing_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete listing",
		})
	}
	if !deleted {
		log.Warn("Listing not found for deletion", zap.Uint("listing_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Listing not found",
		})
	}
	prometheus.RecordListingOperation("delete")

	log.Info("Listing deleted successfully", zap.Uint("listing_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Listing deleted successfully",
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
