package dto

import (
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain"
)

// Display names of the three numbers.
const (
	NameLifePath   = "Life Path Number"
	NameExpression = "Expression Number"
	NameSoulUrge   = "Soul Urge Number"
)

// CalculateRequest is the body of POST /numerology and POST /pdf/generate.
// Deeper checks (letters present, date not in the future) happen in the
// application layer.
type CalculateRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
	DOB  string `json:"dob"  validate:"required,datetime=2006-01-02"`
}

// NamedNumber pairs a number with its display name.
type NamedNumber struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// NamedReadings is the labelled view of a reading's numbers.
type NamedReadings struct {
	LifePath   NamedNumber `json:"lifePath"`
	Expression NamedNumber `json:"expression"`
	SoulUrge   NamedNumber `json:"soulUrge"`
}

// ReadingResponse is one reading.
type ReadingResponse struct {
	ID         string        `json:"id,omitempty"`
	Name       string        `json:"name"`
	DOB        string        `json:"dob"`
	LifePath   int           `json:"lifePath"`
	Expression int           `json:"expression"`
	SoulUrge   int           `json:"soulUrge"`
	UserID     string        `json:"userId,omitempty"`
	PDFURL     *string       `json:"pdfUrl"`
	CreatedAt  time.Time     `json:"createdAt"`
	Readings   NamedReadings `json:"readings"`
}

// CalculateResponse is returned by POST /numerology.
type CalculateResponse struct {
	Message string `json:"message"`
	ReadingResponse
}

// HistoryResponse is returned by GET /numerology/history.
type HistoryResponse struct {
	Title      string            `json:"title"`
	Message    string            `json:"message,omitempty"`
	Readings   []ReadingResponse `json:"readings"`
	Pagination Pagination        `json:"pagination"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// NewReadingResponse converts a domain reading. reportURL builds the public
// link for an attached report.
func NewReadingResponse(r *domain.Reading, reportURL func(id string) string) ReadingResponse {
	resp := ReadingResponse{
		ID:         r.ID,
		Name:       r.Name,
		DOB:        r.DateOfBirth,
		LifePath:   r.LifePathNumber,
		Expression: r.ExpressionNumber,
		SoulUrge:   r.SoulUrgeNumber,
		UserID:     r.OwnerID,
		CreatedAt:  r.CreatedAt,
		Readings: NamedReadings{
			LifePath:   NamedNumber{Name: NameLifePath, Value: r.LifePathNumber},
			Expression: NamedNumber{Name: NameExpression, Value: r.ExpressionNumber},
			SoulUrge:   NamedNumber{Name: NameSoulUrge, Value: r.SoulUrgeNumber},
		},
	}

	if r.HasReport() && reportURL != nil {
		url := reportURL(r.ReportID)
		resp.PDFURL = &url
	}

	return resp
}

// NewHistoryResponse converts a page of readings.
func NewHistoryResponse(p domain.Page[*domain.Reading], reportURL func(id string) string) HistoryResponse {
	resp := HistoryResponse{
		Title:      "Numerology History",
		Readings:   make([]ReadingResponse, 0, len(p.Items)),
		Pagination: NewPagination(p),
	}

	for _, r := range p.Items {
		resp.Readings = append(resp.Readings, NewReadingResponse(r, reportURL))
	}

	if len(resp.Readings) == 0 {
		resp.Message = "No numerology history found"
	}

	return resp
}
