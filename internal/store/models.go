package store

import (
	"database/sql"
	"time"
)

// Person is a tracked researcher (PI).
type Person struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Department *string   `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Project is a research project belonging to a person. Dates are stored as
// YYYY-MM-DD text, matching the harvested source data.
type Project struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Title     string    `json:"title"`
	Abstract  *string   `json:"abstract,omitempty"`
	Stage     string    `json:"stage"`
	StartDate *string   `json:"start_date,omitempty"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Publication is a publication authored by a person.
type Publication struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Title     string    `json:"title"`
	Topic     *string   `json:"topic,omitempty"`
	Year      *int      `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GrantRecord is one grant historically associated with a person.
type GrantRecord struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Agency    *string   `json:"agency,omitempty"`
	Mechanism *string   `json:"mechanism,omitempty"`
	Status    *string   `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Opportunity is a harvested funding announcement.
type Opportunity struct {
	ID                string    `json:"id"`
	OpportunityNumber *string   `json:"opportunity_number,omitempty"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	AgencyCode        *string   `json:"agency_code,omitempty"`
	AgencyName        *string   `json:"agency_name,omitempty"`
	Mechanism         *string   `json:"mechanism,omitempty"`
	Status            string    `json:"opp_status"`
	OpenDate          *string   `json:"open_date,omitempty"`
	CloseDate         *string   `json:"close_date,omitempty"`
	PostDate          *string   `json:"post_date,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Stats represents row counts across the store.
type Stats struct {
	People        int `json:"people"`
	Projects      int `json:"projects"`
	Publications  int `json:"publications"`
	GrantRecords  int `json:"grant_records"`
	Opportunities int `json:"opportunities"`
}

// ListOptions contains options for listing opportunities.
type ListOptions struct {
	Statuses []string
	Agency   *string
	Keyword  *string
	Limit    int
	Offset   int
}

// NullString is a helper to convert *string to sql.NullString.
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullInt64 is a helper to convert *int to sql.NullInt64.
func NullInt64(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// StringPtr converts sql.NullString to *string.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// IntPtr converts sql.NullInt64 to *int.
func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}
