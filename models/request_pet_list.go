package models

import (
	"net/url"
	"strconv"
)

// Pagination defaults and bounds applied by [ParsePetListQuery].
//
// MaxPageSize caps the number of records a single page may request.
// The original service enforced no upper bound; the cap is a deliberate
// hardening of that behaviour.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Sort orders produced by the listing query parser.
type PetSort int

const (
	// SortNewest orders by creation time, newest first. This is the
	// default applied for absent or unrecognized sortBy values.
	SortNewest PetSort = iota

	// SortName orders by pet name, ascending.
	SortName

	// SortAge orders by pet age, ascending.
	SortAge
)

// PetListQuery is the parsed form of the recognized listing query
// parameters. Nil pointer fields mean "parameter absent — no filter".
type PetListQuery struct {
	// Search is the full-text term matched against name/description/breed
	// through the collection's text index.
	Search string

	// Category filters by exact category literal.
	Category string

	// Size filters by exact size literal.
	Size string

	// MaxAge filters by age upper bound (age <= MaxAge).
	MaxAge *int

	// IsVaccinated, IsSterilized, and IsAdopted filter by boolean equality.
	IsVaccinated *bool
	IsSterilized *bool
	IsAdopted    *bool

	// Sort is the requested ordering.
	Sort PetSort

	// Page is the 1-indexed page number.
	Page int

	// Limit is the page size.
	Limit int
}

// Skip returns the number of records to skip for the requested page window.
func (q PetListQuery) Skip() int {
	return (q.Page - 1) * q.Limit
}

// ParsePetListQuery maps URL query parameters to a [PetListQuery].
//
// Parsing rules:
//   - boolean parameters compare the raw value against the literal "true";
//     any other value (including "1" or "TRUE") yields false. This mirrors
//     the behaviour the API has always had and is kept for compatibility.
//   - a non-numeric age value is ignored rather than rejected;
//   - page values below 1 fall back to the default;
//   - limit is clamped to [1, MaxPageSize].
func ParsePetListQuery(values url.Values) PetListQuery {
	q := PetListQuery{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		Size:     values.Get("size"),
		Page:     DefaultPage,
		Limit:    DefaultPageSize,
	}

	if raw := values.Get("age"); raw != "" {
		if age, err := strconv.Atoi(raw); err == nil {
			q.MaxAge = &age
		}
	}

	q.IsVaccinated = parseBoolParam(values, "isVaccinated")
	q.IsSterilized = parseBoolParam(values, "isSterilized")
	q.IsAdopted = parseBoolParam(values, "isAdopted")

	switch values.Get("sortBy") {
	case "name":
		q.Sort = SortName
	case "age":
		q.Sort = SortAge
	default:
		q.Sort = SortNewest
	}

	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			q.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit >= 1 {
			q.Limit = min(limit, MaxPageSize)
		}
	}

	return q
}

// parseBoolParam returns nil when the parameter is absent, otherwise a
// pointer to the literal-"true" comparison result.
func parseBoolParam(values url.Values, key string) *bool {
	if !values.Has(key) {
		return nil
	}
	b := values.Get(key) == "true"
	return &b
}
