package model

import "time"

// Account represents a registered trade participant
type Account struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ExternalID  string    `json:"externalId" gorm:"type:varchar(255);unique;not null"`
	Username    string    `json:"username" gorm:"type:varchar(100);not null"`
	DisplayName string    `json:"displayName" gorm:"type:varchar(255);not null"`
	Location    *string   `json:"location" gorm:"type:varchar(255)"`
	Bio         *string   `json:"bio" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewAccount carries the caller-supplied fields for account creation.
// Identifier and creation time are assigned by the store.
type NewAccount struct {
	ExternalID  string
	Username    string
	DisplayName string
	Location    *string
	Bio         *string
}

// OwnerProfile is the projection of an account exposed alongside its listings
type OwnerProfile struct {
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	Location    *string `json:"location"`
}

// Profile returns the public projection of the account
func (a *Account) Profile() OwnerProfile {
	return OwnerProfile{
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Location:    a.Location,
	}
}
