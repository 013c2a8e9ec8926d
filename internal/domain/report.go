package domain

import "time"

// Report is a rendered PDF document.
type Report struct {
	ID        string
	Filename  string
	Size      int64
	CreatedAt time.Time
}

// ReportFilename returns the on-disk name for a report id.
func ReportFilename(id string) string {
	return id + ".pdf"
}
