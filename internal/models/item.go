package models

type Item struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Available   bool   `gorm:"not null" json:"available"`
	OwnerID     int64  `gorm:"not null" json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
