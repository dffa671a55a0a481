package driver

import (
	"fmt"
	"strings"
	"time"
)

// Driver is the entity checked by the eligibility rules.
// Rules only read it; a nil Licence means the driver holds none.
type Driver struct {
	Age            uint8
	AlcoholInBlood float32
	Licence        *Licence
}

// HasLicence reports whether the driver holds a licence of any category.
func (d *Driver) HasLicence() bool {
	return d.Licence != nil
}

// Category is a driving licence class.
type Category string

const (
	CategoryA  Category = "A"
	CategoryA1 Category = "A1"
	CategoryB  Category = "B"
	CategoryC  Category = "C"
	CategoryD  Category = "D"
	CategoryBE Category = "BE"
	CategoryCE Category = "CE"
	CategoryDE Category = "DE"
)

// Categories lists every known licence category.
var Categories = []Category{
	CategoryA, CategoryA1, CategoryB, CategoryC,
	CategoryD, CategoryBE, CategoryCE, CategoryDE,
}

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of Categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses a category tag case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Licence is a driving licence of a single category.
type Licence struct {
	Category   Category
	Expiration time.Time
}

// IsValidAt reports whether the licence has not expired at date.
// A licence expiring exactly at date is still valid.
func (l Licence) IsValidAt(date time.Time) bool {
	return !l.Expiration.Before(date)
}
