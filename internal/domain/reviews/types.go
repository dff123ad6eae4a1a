package reviews

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

var QueryTimeoutDuration = time.Second * 5

// PlaceID is the external geodata identifier. Clients send it either as a
// JSON string or a number; it is always stored as text.
type PlaceID string

func (p *PlaceID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PlaceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("poiId must be a string or a number")
	}
	*p = PlaceID(n.String())
	return nil
}

// Review is a persisted row of the avaliacoes table.
type Review struct {
	ID        int64     `json:"id"`
	PlaceID   string    `json:"poiId"`
	PlaceName *string   `json:"poiName,omitempty"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"` // 1-5
	Comment   *string   `json:"review,omitempty"`
	CreatedAt time.Time `json:"criadoEm"`
}

// Listing is the row shape returned by the review query endpoint.
type Listing struct {
	Rating    int       `json:"Rating"`
	Review    *string   `json:"Review"`
	UserEmail string    `json:"UserEmail"`
	CriadoEm  time.Time `json:"CriadoEm"`
}

type Stats struct {
	PlaceID string  `json:"poiId"`
	Total   int     `json:"total"`
	Average float64 `json:"average"`
}

// RoundAverage rounds to one decimal place.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}

var errEmptyPlace = errors.New("place id is required")
