package dto

// GenerateReportResponse is returned by POST /pdf/generate.
type GenerateReportResponse struct {
	Success bool   `json:"success"`
	File    string `json:"file"`
	URL     string `json:"url"`
	Message string `json:"message"`
}
