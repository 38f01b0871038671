package dto

type TableCreateRequest struct {
	Label  string `json:"label" binding:"required"`
	Seats  int    `json:"seats" binding:"required,min=1"`
	Status string `json:"status"`
	Active *bool  `json:"active"`
}

type TableUpdateRequest struct {
	Label  *string `json:"label"`
	Seats  *int    `json:"seats"`
	Status *string `json:"status"`
	Active *bool   `json:"active"`
}
