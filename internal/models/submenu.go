package models

import (
	"time"

	"github.com/google/uuid"
)

// Submenu belongs to exactly one Menu and owns Dishes
type Submenu struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	MenuID      uuid.UUID
}

type SubmenuInput struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

func (in SubmenuInput) Validate() error {
	return validateTitle(in.Title)
}

type SubmenuDetails struct {
	Submenu
	DishesCount int64
}

type SubmenuResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// SubmenuWithDishCount is returned by reads and is the cached snapshot for a submenu
type SubmenuWithDishCount struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DishesCount int64     `json:"dishes_count"`
}

func NewSubmenuResponse(s *Submenu) *SubmenuResponse {
	return &SubmenuResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
	}
}

func NewSubmenuWithDishCount(d *SubmenuDetails) *SubmenuWithDishCount {
	return &SubmenuWithDishCount{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		DishesCount: d.DishesCount,
	}
}
