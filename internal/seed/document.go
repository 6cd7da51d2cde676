// Package seed loads catalog documents from files or URLs and writes them
// through the domain services.
package seed

import (
	"errors"
	"fmt"

	"github.com/sergdemc/y-lab-1/internal/models"
)

// Document is the top level of a seed file
type Document struct {
	Menus []MenuSeed `json:"menus" yaml:"menus"`
}

type MenuSeed struct {
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Submenus    []SubmenuSeed `json:"submenus" yaml:"submenus"`
}

type SubmenuSeed struct {
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Dishes      []DishSeed `json:"dishes" yaml:"dishes"`
}

type DishSeed struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
}

func (m MenuSeed) input() models.MenuInput {
	return models.MenuInput{Title: m.Title, Description: m.Description}
}

func (s SubmenuSeed) input() models.SubmenuInput {
	return models.SubmenuInput{Title: s.Title, Description: s.Description}
}

func (d DishSeed) input() models.DishInput {
	return models.DishInput{Title: d.Title, Description: d.Description, Price: d.Price}
}

// Merge appends the menus of other documents in order
func Merge(docs ...*Document) *Document {
	merged := &Document{}
	for _, doc := range docs {
		if doc != nil {
			merged.Menus = append(merged.Menus, doc.Menus...)
		}
	}
	return merged
}

// Validate checks every entry of the document and reports all problems at once
func (d *Document) Validate() error {
	var errs []error
	for i, m := range d.Menus {
		if err := m.input().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("menus[%d]: %w", i, err))
		}
		for j, s := range m.Submenus {
			if err := s.input().Validate(); err != nil {
				errs = append(errs, fmt.Errorf("menus[%d].submenus[%d]: %w", i, j, err))
			}
			for k, dish := range s.Dishes {
				if err := dish.input().Validate(); err != nil {
					errs = append(errs, fmt.Errorf("menus[%d].submenus[%d].dishes[%d]: %w", i, j, k, err))
				}
			}
		}
	}
	return errors.Join(errs...)
}
