package models

import "time"

// ItemRequest is an open "looking for" post; items created in answer to it
// reference it through Item.RequestID.
type ItemRequest struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequesterID int64     `gorm:"not null" json:"requester_id"`
	Created     time.Time `gorm:"not null" json:"created"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}
