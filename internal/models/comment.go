package models

import "time"

type Comment struct {
	ID       int64     `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"not null" json:"text"`
	ItemID   int64     `gorm:"not null" json:"item_id"`
	AuthorID int64     `gorm:"not null" json:"author_id"`
	Created  time.Time `gorm:"column:created_time;not null" json:"created"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
