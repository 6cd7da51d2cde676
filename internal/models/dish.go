package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prices are plain decimals of bounded size, exponent notation is refused.
const (
	maxPriceDigits = 18
	maxPriceScale  = 6
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidPrice    = errors.New("price must be a decimal number")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrPriceOutOfRange = errors.New("price has too many digits")
)

// Dish is a leaf of the catalog. Price is kept as the text the client sent.
type Dish struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmenuID   uuid.UUID
}

type DishInput struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
}

func (in DishInput) Validate() error {
	if err := validateTitle(in.Title); err != nil {
		return err
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return err
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if strings.ContainsAny(raw, "eE") {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	if price.NumDigits() > maxPriceDigits || price.Exponent() < -maxPriceScale {
		return decimal.Decimal{}, ErrPriceOutOfRange
	}
	return price, nil
}

// DishResponse is the response shape and cached snapshot for a dish
type DishResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
}

func NewDishResponse(d *Dish) *DishResponse {
	return &DishResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       FormatPrice(d.Price),
	}
}

// FormatPrice renders a stored price with exactly two fractional digits.
// Text that is not an acceptable price is returned unchanged.
func FormatPrice(price string) string {
	d, err := parsePrice(price)
	if err != nil {
		return price
	}
	return d.StringFixed(2)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
