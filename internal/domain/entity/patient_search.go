package entity

import (
	"strings"
)

// SortKey identifies a sortable patient field. The set is closed: anything
// outside it falls back to SortByID.
type SortKey string

const (
	SortByID          SortKey = "id"
	SortByName        SortKey = "name"
	SortByDateOfBirth SortKey = "dateofbirth"
	SortByCreatedAt   SortKey = "createdat"
)

// ParseSortKey maps a caller-supplied sort field to a SortKey,
// case-insensitively. Unrecognized or empty values sort by id.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(s)) {
	case SortByName:
		return SortByName
	case SortByDateOfBirth:
		return SortByDateOfBirth
	case SortByCreatedAt:
		return SortByCreatedAt
	default:
		return SortByID
	}
}

// Column returns the database column backing the sort key.
func (k SortKey) Column() string {
	switch k {
	case SortByName:
		return "name"
	case SortByDateOfBirth:
		return "date_of_birth"
	case SortByCreatedAt:
		return "created_at"
	default:
		return "id"
	}
}

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 5
)

// PatientSearch describes a filtered, sorted, paginated patient query.
type PatientSearch struct {
	// Name filters by case-insensitive substring match; blank means no filter.
	Name       string
	SortBy     SortKey
	Ascending  bool
	PageNumber int
	PageSize   int
}

// Normalize coerces out-of-range paging values to the defaults and trims the
// name filter. Out-of-range pages are not an error; they yield empty results.
func (s PatientSearch) Normalize() PatientSearch {
	s.Name = strings.TrimSpace(s.Name)
	if s.PageNumber <= 0 {
		s.PageNumber = DefaultPageNumber
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	return s
}

// Offset returns the number of records to skip for the requested page.
func (s PatientSearch) Offset() int {
	return (s.PageNumber - 1) * s.PageSize
}

// MatchesName reports whether a patient name satisfies the filter.
func (s PatientSearch) MatchesName(name string) bool {
	if s.Name == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(s.Name))
}
