// Package memory implements the listing store on process-local maps.
// State lives for the lifetime of the process; there is no persistence.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"listing-service/internal/model"
	"listing-service/internal/store"
)

// Store keeps accounts and listings in maps keyed by their identifier.
// Identifiers are assigned from monotonically increasing counters that are
// never reused within a process.
type Store struct {
	mu sync.RWMutex

	accounts map[uint]*model.Account
	listings map[uint]*model.Listing

	nextAccountID uint
	nextListingID uint
}

var _ store.Store = (*Store)(nil)

// New returns a store seeded with the built-in sample data.
func New() *Store {
	s := &Store{}
	s.reseed()
	return s
}

// Reset discards all state and reseeds the sample data. Intended for test
// isolation; identifier counters restart as well.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reseed()
	return nil
}

func (s *Store) CreateAccount(a model.NewAccount) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := &model.Account{
		ID:          s.nextAccountID,
		ExternalID:  a.ExternalID,
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Location:    a.Location,
		Bio:         a.Bio,
		CreatedAt:   time.Now(),
	}
	s.nextAccountID++
	s.accounts[account.ID] = account
	return account, nil
}

// GetAccount returns the stored record directly; accounts are immutable
// after creation, so sharing the pointer is safe.
func (s *Store) GetAccount(id uint) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return account, nil
}

func (s *Store) GetAccountByExternalID(externalID string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.ExternalID == externalID {
			return account, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateListing(n model.NewListing) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	listing := &model.Listing{
		ID:          s.nextListingID,
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
		CreatedAt:   now,
		UpdatedAt:   now,
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
	s.nextListingID++
	s.listings[listing.ID] = listing
	cp := *listing
	return &cp, nil
}

// GetListing looks a listing up by identifier. Soft-deleted rows are still
// returned here; only list reads exclude them.
func (s *Store) GetListing(id uint) (*model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *listing
	return &cp, nil
}

func (s *Store) GetEnrichedListing(id uint) (*model.ListingWithOwner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	owner, ok := s.accounts[listing.AccountID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &model.ListingWithOwner{Listing: *listing, Owner: owner.Profile()}, nil
}

// ListListings scans all active listings, narrows them by the given
// filters, sorts newest-created-first and joins each survivor with its
// owner's profile. Listings whose owner is missing are dropped, not
// reported as an error.
func (s *Store) ListListings(filters *store.ListingFilters) ([]model.ListingWithOwner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint, 0, len(s.listings))
	for id := range s.listings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matched := make([]*model.Listing, 0, len(ids))
	for _, id := range ids {
		listing := s.listings[id]
		if !listing.IsActive {
			continue
		}
		if filters != nil && !matches(listing, filters) {
			continue
		}
		matched = append(matched, listing)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	result := make([]model.ListingWithOwner, 0, len(matched))
	for _, listing := range matched {
		owner, ok := s.accounts[listing.AccountID]
		if !ok {
			continue
		}
		result = append(result, model.ListingWithOwner{Listing: *listing, Owner: owner.Profile()})
	}
	return result, nil
}

func matches(l *model.Listing, f *store.ListingFilters) bool {
	if f.Category != "" && f.Category != store.AllCategories && string(l.Category) != f.Category {
		return false
	}
	if f.Status != "" && f.Status != store.AllStatuses && string(l.Status) != f.Status {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(l.Title), term) &&
			!strings.Contains(strings.ToLower(l.Description), term) &&
			!strings.Contains(strings.ToLower(l.Offering), term) &&
			!strings.Contains(strings.ToLower(l.Seeking), term) {
			return false
		}
	}
	if f.AccountID != nil && l.AccountID != *f.AccountID {
		return false
	}
	return true
}

func (s *Store) ListAccountListings(accountID uint) ([]model.ListingWithOwner, error) {
	return s.ListListings(&store.ListingFilters{AccountID: &accountID})
}

func (s *Store) UpdateListing(id uint, patch store.ListingPatch) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	patch.Apply(listing)
	listing.UpdatedAt = time.Now()
	// Hand back a copy: callers read the result after the lock is
	// released, which must not race with later mutations of the record.
	cp := *listing
	return &cp, nil
}

// SoftDeleteListing marks the listing inactive. The row is never removed,
// so a direct lookup still returns it.
func (s *Store) SoftDeleteListing(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[id]
	if !ok {
		return false, nil
	}
	listing.IsActive = false
	listing.UpdatedAt = time.Now()
	return true, nil
}
