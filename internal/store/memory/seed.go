package memory

import (
	"time"

	"listing-service/internal/model"
)

func strptr(s string) *string { return &s }

// reseed rebuilds the maps with the built-in sample data and restarts the
// identifier counters above the highest seeded identifier. Caller holds the
// write lock.
func (s *Store) reseed() {
	s.accounts = make(map[uint]*model.Account)
	s.listings = make(map[uint]*model.Listing)
	s.nextAccountID = 1
	s.nextListingID = 1

	now := time.Now()

	demoAccounts := []*model.Account{
		{
			ID:          1,
			ExternalID:  "sarah_gardens_123",
			Username:    "Sarah_Gardens",
			DisplayName: "Sarah Gardens",
			Location:    strptr("Brooklyn, NY"),
			Bio:         strptr("Urban gardener passionate about heirloom tomatoes"),
			CreatedAt:   now,
		},
		{
			ID:          2,
			ExternalID:  "mike_grows_456",
			Username:    "Mike_Grows",
			DisplayName: "Mike Thompson",
			Location:    strptr("Queens, NY"),
			Bio:         strptr("Tool collector and composting enthusiast"),
			CreatedAt:   now,
		},
		{
			ID:          3,
			ExternalID:  "lisa_herbs_789",
			Username:    "Lisa_Herbs",
			DisplayName: "Lisa Chen",
			Location:    strptr("Manhattan, NY"),
			Bio:         strptr("Herb specialist and seed saver"),
			CreatedAt:   now,
		},
	}
	for _, account := range demoAccounts {
		s.accounts[account.ID] = account
		if account.ID >= s.nextAccountID {
			s.nextAccountID = account.ID + 1
		}
	}

	demoListings := []*model.Listing{
		{
			ID:          1,
			AccountID:   1,
			Title:       "Organic Tomato Seedlings",
			Description: "Healthy Cherokee Purple tomato seedlings, 3 weeks old, hardened off and ready to transplant.",
			Offering:    "6 healthy Cherokee Purple tomato seedlings, 3 weeks old",
			Seeking:     "Herb seedlings (basil, oregano) or flower seeds",
			Category:    model.CategoryPlants,
			Status:      model.StatusOpen,
			Location:    "Brooklyn, NY",
			Images:      []string{},
			IsActive:    true,
			CreatedAt:   now.Add(-3 * time.Hour),
			UpdatedAt:   now.Add(-3 * time.Hour),
		},
		{
			ID:          2,
			AccountID:   2,
			Title:       "Garden Tool Set",
			Description: "Lightly used garden tools in great condition. Perfect for someone starting their garden.",
			Offering:    "Hand trowel, pruning shears, weeder - lightly used",
			Seeking:     "Large terracotta pots or garden soil",
			Category:    model.CategoryTools,
			Status:      model.StatusPending,
			Location:    "Queens, NY",
			Images:      []string{},
			IsActive:    true,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-12 * time.Hour),
		},
		{
			ID:          3,
			AccountID:   3,
			Title:       "Heirloom Seed Collection",
			Description: "Collection of rare heirloom vegetable seeds, all from last season's harvest.",
			Offering:    "Rainbow chard, black kale, purple carrot seeds",
			Seeking:     "Sunflower or marigold seeds for companion planting",
			Category:    model.CategorySeeds,
			Status:      model.StatusOpen,
			Location:    "Manhattan, NY",
			Images:      []string{},
			IsActive:    true,
			CreatedAt:   now.Add(-5 * time.Hour),
			UpdatedAt:   now.Add(-5 * time.Hour),
		},
	}
	for _, listing := range demoListings {
		s.listings[listing.ID] = listing
		if listing.ID >= s.nextListingID {
			s.nextListingID = listing.ID + 1
		}
	}
}
