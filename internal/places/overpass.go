package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// DefaultArea is the municipality the map is restricted to.
const DefaultArea = "Portão"

type Fetcher interface {
	FetchPlaces(ctx context.Context) ([]Place, error)
}

type OverpassAdapter struct {
	Endpoint   string
	Area       string
	httpClient *http.Client
}

func NewOverpassAdapter(endpoint, area string, timeout time.Duration) *OverpassAdapter {
	if endpoint == "" {
		endpoint = DefaultOverpassURL
	}
	if area == "" {
		area = DefaultArea
	}
	return &OverpassAdapter{
		Endpoint:   endpoint,
		Area:       area,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Query builds the Overpass QL request for every category shown on the map.
func (o *OverpassAdapter) Query() string {
	selectors := []string{
		`["amenity"~"restaurant|cafe|pizzeria|fast_food|ice_cream"]`,
		`["amenity"~"pharmacy|hospital|clinic|doctors"]`,
		`["amenity"~"school|college|university|kindergarten"]`,
		`["shop"~"supermarket|convenience|hardware|clothes|paint"]`,
		`["amenity"~"fuel|post_office|bank|atm"]`,
	}

	var b strings.Builder
	fmt.Fprintf(&b, `[out:json][timeout:25]; area[name="%s"][admin_level="8"]->.a; (`, o.Area)
	for _, s := range selectors {
		fmt.Fprintf(&b, " node%s(area.a); way%s(area.a);", s, s)
	}
	b.WriteString(" ); out center;")
	return b.String()
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string   `json:"type"`
	ID     int64    `json:"id"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

func (o *OverpassAdapter) FetchPlaces(ctx context.Context) ([]Place, error) {
	endpoint := o.Endpoint + "?data=" + url.QueryEscape(o.Query())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: overpass request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: overpass http=%d", ErrUpstream, resp.StatusCode)
	}

	var res overpassResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%w: overpass decode: %v", ErrUpstream, err)
	}

	return toPlaces(res.Elements), nil
}

// toPlaces drops untagged or unlocated elements and sorts by name in
// Portuguese collation order.
func toPlaces(elements []overpassElement) []Place {
	out := make([]Place, 0, len(elements))
	for _, el := range elements {
		if el.Tags == nil {
			continue
		}

		var lat, lon float64
		switch {
		case el.Center != nil:
			lat, lon = el.Center.Lat, el.Center.Lon
		case el.Lat != nil && el.Lon != nil:
			lat, lon = *el.Lat, *el.Lon
		default:
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = unnamed
		}
		category, categoryName := Classify(el.Tags)

		out = append(out, Place{
			ID:            strconv.FormatInt(el.ID, 10),
			Kind:          el.Type,
			Name:          name,
			Category:      category,
			CategoryName:  categoryName,
			Lat:           lat,
			Lon:           lon,
			Accessibility: AccessibilityInfo(el.Tags),
			Tags:          el.Tags,
		})
	}

	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Name, out[j].Name) < 0 })
	return out
}
