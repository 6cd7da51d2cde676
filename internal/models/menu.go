package models

import (
	"time"

	"github.com/google/uuid"
)

// Menu is the top level of the catalog hierarchy
type Menu struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuInput is the full field set a client supplies on create and update
type MenuInput struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Validate checks the payload shape
func (in MenuInput) Validate() error {
	return validateTitle(in.Title)
}

// MenuDetails is a menu joined with its derived child counts
type MenuDetails struct {
	Menu
	SubmenusCount int64
	DishesCount   int64
}

// MenuResponse is returned by create, update and delete
type MenuResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// MenuWithCounts is returned by reads and is the cached snapshot for a menu
type MenuWithCounts struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SubmenusCount int64     `json:"submenus_count"`
	DishesCount   int64     `json:"dishes_count"`
}

// NewMenuResponse builds the response shape of a menu
func NewMenuResponse(m *Menu) *MenuResponse {
	return &MenuResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
	}
}

// NewMenuWithCounts builds the aggregate response shape of a menu
func NewMenuWithCounts(d *MenuDetails) *MenuWithCounts {
	return &MenuWithCounts{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		SubmenusCount: d.SubmenusCount,
		DishesCount:   d.DishesCount,
	}
}
