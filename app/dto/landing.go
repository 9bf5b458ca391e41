package dto

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LandingPageResponse struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SampleHeading string   `json:"sample_heading"`
	Plans         []string `json:"plans"`
}
