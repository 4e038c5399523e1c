package models

import "time"

// Category là danh mục món ăn
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Category) RecordID() string { return c.ID }
