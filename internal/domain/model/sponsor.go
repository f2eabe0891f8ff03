package model

import "time"

// Sponsor is a listed event sponsor with an optional uploaded logo. Listings
// sort on DisplayOrder, lowest first.
type Sponsor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	WebsiteURL   string    `gorm:"size:500" json:"website_url"`
	LogoPath     *string   `gorm:"size:500" json:"logo_path,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Sponsor) TableName() string {
	return "sponsors"
}
