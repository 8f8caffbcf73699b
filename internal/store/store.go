package store

import (
	"errors"

	"listing-service/internal/model"
)

// ErrNotFound is returned when no record exists for the given identifier
var ErrNotFound = errors.New("record not found")

// Sentinel filter values sent by the browse UI to disable a filter
const (
	AllCategories = "All Categories"
	AllStatuses   = "All Status"
)

// ListingFilters narrows a listing scan. Zero-value fields are ignored;
// the category and status sentinels above also disable their filter.
// Filters combine conjunctively; the search term matches case-insensitively
// against title, description, offering and seeking.
type ListingFilters struct {
	Category   string
	Status     string
	SearchTerm string
	AccountID  *uint
}

// ListingPatch is a partial update. Nil fields are left unchanged.
type ListingPatch struct {
	AccountID   *uint
	Title       *string
	Description *string
	Offering    *string
	Seeking     *string
	Category    *model.Category
	Status      *model.Status
	Location    *string
	Images      *[]string
	IsActive    *bool
}

// Apply merges the patch over the listing in place
func (p ListingPatch) Apply(l *model.Listing) {
	if p.AccountID != nil {
		l.AccountID = *p.AccountID
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Offering != nil {
		l.Offering = *p.Offering
	}
	if p.Seeking != nil {
		l.Seeking = *p.Seeking
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Images != nil {
		l.Images = *p.Images
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
}

// Store is the authoritative holder of accounts and listings. All mutation
// passes through here; list reads always exclude soft-deleted rows while
// direct lookups do not.
type Store interface {
	CreateAccount(a model.NewAccount) (*model.Account, error)
	GetAccount(id uint) (*model.Account, error)
	GetAccountByExternalID(externalID string) (*model.Account, error)

	CreateListing(n model.NewListing) (*model.Listing, error)
	GetListing(id uint) (*model.Listing, error)
	GetEnrichedListing(id uint) (*model.ListingWithOwner, error)
	ListListings(filters *ListingFilters) ([]model.ListingWithOwner, error)
	ListAccountListings(accountID uint) ([]model.ListingWithOwner, error)
	UpdateListing(id uint, patch ListingPatch) (*model.Listing, error)
	SoftDeleteListing(id uint) (bool, error)

	// Reset restores the store to its initial state, for test isolation.
	Reset() error
}
