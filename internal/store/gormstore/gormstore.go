// Package gormstore implements the listing store on PostgreSQL via GORM.
// It reproduces the memory store's contract; selected with
// STORAGE_DRIVER=postgres.
package gormstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"listing-service/internal/model"
	"listing-service/internal/store"
)

// Store holds the database handle. All queries run through it.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an open database connection and migrates the two models.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&model.Account{}, &model.Listing{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) CreateAccount(a model.NewAccount) (*model.Account, error) {
	account := &model.Account{
		ExternalID:  a.ExternalID,
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Location:    a.Location,
		Bio:         a.Bio,
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Store) GetAccount(id uint) (*model.Account, error) {
	var account model.Account
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (s *Store) GetAccountByExternalID(externalID string) (*model.Account, error) {
	var account model.Account
	if err := s.db.Where("external_id = ?", externalID).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (s *Store) CreateListing(n model.NewListing) (*model.Listing, error) {
	listing := &model.Listing{
		AccountID:   n.AccountID,
		Title:       n.Title,
		Description: n.Description,
		Offering:    n.Offering,
		Seeking:     n.Seeking,
		Category:    n.Category,
		Status:      n.Status,
		Location:    n.Location,
		Images:      n.Images,
		IsActive:    true,
	}
	if listing.Status == "" {
		listing.Status = model.StatusOpen
	}
	if listing.Images == nil {
		listing.Images = []string{}
	}
	if n.IsActive != nil {
		listing.IsActive = *n.IsActive
	}
	if err := s.db.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *Store) GetListing(id uint) (*model.Listing, error) {
	var listing model.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		return nil, translate(err)
	}
	return &listing, nil
}

func (s *Store) GetEnrichedListing(id uint) (*model.ListingWithOwner, error) {
	listing, err := s.GetListing(id)
	if err != nil {
		return nil, err
	}
	owner, err := s.GetAccount(listing.AccountID)
	if err != nil {
		return nil, err
	}
	return &model.ListingWithOwner{Listing: *listing, Owner: owner.Profile()}, nil
}

func (s *Store) ListListings(filters *store.ListingFilters) ([]model.ListingWithOwner, error) {
	query := s.db.Where("is_active = ?", true)
	if filters != nil {
		if filters.Category != "" && filters.Category != store.AllCategories {
			query = query.Where("category = ?", filters.Category)
		}
		if filters.Status != "" && filters.Status != store.AllStatuses {
			query = query.Where("status = ?", filters.Status)
		}
		if filters.SearchTerm != "" {
			term := "%" + escapeLike(filters.SearchTerm) + "%"
			query = query.Where(
				"title ILIKE ? OR description ILIKE ? OR offering ILIKE ? OR seeking ILIKE ?",
				term, term, term, term)
		}
		if filters.AccountID != nil {
			query = query.Where("account_id = ?", *filters.AccountID)
		}
	}

	var listings []model.Listing
	if err := query.Order("created_at DESC, id ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return s.joinOwners(listings)
}

// joinOwners attaches each listing's owner profile; listings whose owner is
// missing are dropped rather than reported as an error.
func (s *Store) joinOwners(listings []model.Listing) ([]model.ListingWithOwner, error) {
	ids := make([]uint, 0, len(listings))
	seen := make(map[uint]bool, len(listings))
	for _, l := range listings {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID)
		}
	}

	owners := make(map[uint]model.Account, len(ids))
	if len(ids) > 0 {
		var accounts []model.Account
		if err := s.db.Where("id IN ?", ids).Find(&accounts).Error; err != nil {
			return nil, err
		}
		for _, a := range accounts {
			owners[a.ID] = a
		}
	}

	result := make([]model.ListingWithOwner, 0, len(listings))
	for _, l := range listings {
		owner, ok := owners[l.AccountID]
		if !ok {
			continue
		}
		result = append(result, model.ListingWithOwner{Listing: l, Owner: owner.Profile()})
	}
	return result, nil
}

func (s *Store) ListAccountListings(accountID uint) ([]model.ListingWithOwner, error) {
	return s.ListListings(&store.ListingFilters{AccountID: &accountID})
}

func (s *Store) UpdateListing(id uint, patch store.ListingPatch) (*model.Listing, error) {
	var listing model.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		return nil, translate(err)
	}
	patch.Apply(&listing)
	if err := s.db.Save(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (s *Store) SoftDeleteListing(id uint) (bool, error) {
	var listing model.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	listing.IsActive = false
	if err := s.db.Save(&listing).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Reset truncates both tables, for test isolation.
func (s *Store) Reset() error {
	session := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&model.Listing{}).Error; err != nil {
		return err
	}
	return session.Delete(&model.Account{}).Error
}

// escapeLike neutralizes LIKE metacharacters so the search term matches as
// a literal substring, the same contract the memory store's scan honors.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
