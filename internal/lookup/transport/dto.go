// Package transport provides DTOs for the lookup pipeline.
package transport

import (
	"time"

	countryservice "idscope_backend/internal/countryinfo/service"
	"idscope_backend/internal/identity"
	"idscope_backend/internal/leaders"
)

// LookupRequest is the body of POST /api/v1/views/:viewID/lookups.
type LookupRequest struct {
	ID string `json:"id" validate:"required,notblank,max=64"`
}

// ClassifyQuery binds GET /api/v1/classify.
type ClassifyQuery struct {
	ID string `form:"id" validate:"required,max=64"`
}

// Details is the classified record plus the derived age. It is always the
// first block of a report.
type Details struct {
	identity.Record
	Age string `json:"age"`
}

// NewDetails derives the age label at now.
func NewDetails(rec identity.Record, now time.Time) Details {
	return Details{Record: rec, Age: rec.AgeLabel(now)}
}

// Report is the composed result of one lookup. Blocks are rendered in field
// order: details, then either country and leader, or errors.
type Report struct {
	Details    Details                 `json:"details"`
	Country    *countryservice.Profile `json:"country,omitempty"`
	Leader     *leaders.Profile        `json:"leader,omitempty"`
	Errors     []string                `json:"errors,omitempty"`
	Generation uint64                  `json:"generation"`
	MapUpdated bool                    `json:"mapUpdated"`
}

// Partial reports whether enrichment failed.
func (r *Report) Partial() bool {
	return len(r.Errors) > 0
}
