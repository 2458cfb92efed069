package geocode

import (
	"context"
	"errors"
	"strings"

	"github.com/wxdeck/wxdeck/internal/metrics"
	"github.com/wxdeck/wxdeck/internal/models"
)

var (
	// ErrEmptyQuery is returned for blank input, before any network call.
	ErrEmptyQuery = errors.New("empty location query")

	// ErrNoMatch is returned when no tier could resolve the query.
	ErrNoMatch = errors.New("no match for location query")

	// ErrOutsideUS is returned when a tier resolved the query but the
	// coordinates fall outside US territory bounds. It is a policy
	// rejection, not a resolution failure: later tiers are not tried.
	ErrOutsideUS = errors.New("location outside US territory")

	// ErrNoResults is the tier-internal signal that a geocoder answered
	// but had no matches. Callers of Resolve only ever see ErrNoMatch.
	ErrNoResults = errors.New("no results found for the given query")
)

// Geocoder is a single resolution tier.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (models.GeoLocation, error)
}

type tier struct {
	name    string
	geocode Geocoder
}

// Resolver turns a free-text US location query into coordinates using an
// ordered list of tiers: built-in table, then Nominatim, then the Census
// geocoder. The first tier to succeed wins; tier failures fall through.
type Resolver struct {
	tiers []tier
}

// NewResolver builds a resolver over the given network geocoders, tried in
// order after the built-in table.
func NewResolver(primary, fallback Geocoder) *Resolver {
	return &Resolver{
		tiers: []tier{
			{"nominatim", primary},
			{"census", fallback},
		},
	}
}

// Resolve converts a location query to coordinates and a display name.
//
// Tier 1 is the built-in city table: no network call, no bounds check. For
// the network tiers, a successful result outside the US bounds fails
// immediately with ErrOutsideUS rather than falling through, since trying
// another geocoder cannot change where a place is.
func (r *Resolver) Resolve(ctx context.Context, query string) (models.GeoLocation, error) {
	if strings.TrimSpace(query) == "" {
		return models.GeoLocation{}, ErrEmptyQuery
	}

	if loc, ok := lookupTable(query); ok {
		metrics.GeocodeResolutions.WithLabelValues("table", "hit").Inc()
		return loc, nil
	}

	for _, t := range r.tiers {
		loc, err := t.geocode.Geocode(ctx, query)
		if err != nil {
			metrics.GeocodeResolutions.WithLabelValues(t.name, "miss").Inc()
			continue
		}
		if !WithinUS(loc.Latitude, loc.Longitude) {
			metrics.GeocodeResolutions.WithLabelValues(t.name, "outside_us").Inc()
			return models.GeoLocation{}, ErrOutsideUS
		}
		metrics.GeocodeResolutions.WithLabelValues(t.name, "hit").Inc()
		return loc, nil
	}

	return models.GeoLocation{}, ErrNoMatch
}
