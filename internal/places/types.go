package places

import "errors"

type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryEducation Category = "education"
	CategoryShop      Category = "shop"
	CategoryService   Category = "service"
	CategoryDefault   Category = "default"
)

var ErrUpstream = errors.New("geodata service unavailable")

type Accessibility struct {
	Status string `json:"status"` // yes | limited | no | unknown
	Text   string `json:"text"`
	Score  int    `json:"score"`
}

type Place struct {
	ID            string            `json:"id"`
	Kind          string            `json:"kind"`
	Name          string            `json:"name"`
	Category      Category          `json:"category"`
	CategoryName  string            `json:"categoryName"`
	Lat           float64           `json:"lat"`
	Lon           float64           `json:"lon"`
	Accessibility Accessibility     `json:"accessibility"`
	Tags          map[string]string `json:"tags,omitempty"`
}

// ParseCategory accepts the category keys used by the map filter.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case CategoryFood, CategoryHealth, CategoryEducation, CategoryShop, CategoryService, CategoryDefault:
		return c, true
	}
	return "", false
}
