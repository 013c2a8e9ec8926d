package domain

import (
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
)

// DateLayout is the accepted date of birth format.
const DateLayout = "2006-01-02"

// Reading is one numerology computation for a person.
// It never changes once computed, except for the report attached afterwards.
type Reading struct {
	// ID is the unique identifier for this reading.
	ID string

	// Name is the name exactly as submitted.
	Name string

	// DateOfBirth is the date exactly as submitted, in DateLayout form.
	DateOfBirth string

	LifePathNumber   int
	ExpressionNumber int
	SoulUrgeNumber   int

	// OwnerID is empty for anonymous computations.
	OwnerID string

	// ReportID references the rendered PDF, empty until one is attached.
	ReportID string

	CreatedAt time.Time
}

// NewReading builds a reading from computed numbers.
func NewReading(id, name, dob, ownerID string, n numerology.Numbers, createdAt time.Time) *Reading {
	return &Reading{
		ID:               id,
		Name:             name,
		DateOfBirth:      dob,
		LifePathNumber:   n.LifePath,
		ExpressionNumber: n.Expression,
		SoulUrgeNumber:   n.SoulUrge,
		OwnerID:          ownerID,
		CreatedAt:        createdAt,
	}
}

// Numbers returns the computed values.
func (r *Reading) Numbers() numerology.Numbers {
	return numerology.Numbers{
		LifePath:   r.LifePathNumber,
		Expression: r.ExpressionNumber,
		SoulUrge:   r.SoulUrgeNumber,
	}
}

// Anonymous reports whether the reading has no owner.
func (r *Reading) Anonymous() bool {
	return r.OwnerID == ""
}

// OwnedBy reports whether userID owns the reading. Anonymous readings are
// owned by nobody.
func (r *Reading) OwnedBy(userID string) bool {
	return userID != "" && r.OwnerID == userID
}

// HasReport reports whether a PDF has been attached.
func (r *Reading) HasReport() bool {
	return r.ReportID != ""
}
