package model

import "time"

// Category classifies what a listing offers
type Category string

const (
	CategoryPlants     Category = "Plants & Seedlings"
	CategorySeeds      Category = "Seeds"
	CategoryTools      Category = "Tools & Equipment"
	CategorySoil       Category = "Soil & Fertilizer"
	CategoryContainers Category = "Pots & Containers"
	CategoryOther      Category = "Other"
)

// Status tracks the lifecycle of a listing
type Status string

const (
	StatusOpen      Status = "open"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Categories returns the fixed category set in display order
func Categories() []Category {
	return []Category{
		CategoryPlants,
		CategorySeeds,
		CategoryTools,
		CategorySoil,
		CategoryContainers,
		CategoryOther,
	}
}

// Statuses returns the fixed status set
func Statuses() []Status {
	return []Status{StatusOpen, StatusPending, StatusCompleted, StatusCancelled}
}

// DisplayInfo carries the presentation metadata for a category or status badge
type DisplayInfo struct {
	Label string `json:"label"`
	Badge string `json:"badge"`
}

// Display maps every category to its badge metadata
func (c Category) Display() DisplayInfo {
	switch c {
	case CategoryPlants:
		return DisplayInfo{Label: "Plants & Seedlings", Badge: "bg-green-100 text-green-700"}
	case CategorySeeds:
		return DisplayInfo{Label: "Seeds", Badge: "bg-emerald-100 text-emerald-700"}
	case CategoryTools:
		return DisplayInfo{Label: "Tools & Equipment", Badge: "bg-amber-100 text-amber-700"}
	case CategorySoil:
		return DisplayInfo{Label: "Soil & Fertilizer", Badge: "bg-orange-100 text-orange-700"}
	case CategoryContainers:
		return DisplayInfo{Label: "Pots & Containers", Badge: "bg-stone-100 text-stone-700"}
	default:
		return DisplayInfo{Label: "Other", Badge: "bg-gray-100 text-gray-700"}
	}
}

// Display maps every status to its badge metadata
func (s Status) Display() DisplayInfo {
	switch s {
	case StatusPending:
		return DisplayInfo{Label: "Pending", Badge: "bg-yellow-100 text-yellow-700"}
	case StatusCompleted:
		return DisplayInfo{Label: "Completed", Badge: "bg-blue-100 text-blue-700"}
	case StatusCancelled:
		return DisplayInfo{Label: "Cancelled", Badge: "bg-gray-100 text-gray-700"}
	default:
		return DisplayInfo{Label: "Open", Badge: "bg-green-100 text-green-700"}
	}
}

// Listing represents a trade offer
type Listing struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	AccountID   uint      `json:"accountId" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Offering    string    `json:"offering" gorm:"type:text;not null"`
	Seeking     string    `json:"seeking" gorm:"type:text;not null"`
	Category    Category  `json:"category" gorm:"type:varchar(100);not null"`
	Status      Status    `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	Location    string    `json:"location" gorm:"type:varchar(255);not null"`
	Images      []string  `json:"images" gorm:"serializer:json;type:jsonb"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewListing carries the caller-supplied fields for listing creation.
// Status defaults to open, Images to an empty slice and IsActive to true
// when left unset.
type NewListing struct {
	AccountID   uint
	Title       string
	Description string
	Offering    string
	Seeking     string
	Category    Category
	Status      Status
	Location    string
	Images      []string
	IsActive    *bool
}

// ListingWithOwner is a listing joined with its owner's public profile.
// It is computed on every read and never stored.
type ListingWithOwner struct {
	Listing
	Owner OwnerProfile `json:"owner" gorm:"-"`
}
