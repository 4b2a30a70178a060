package dto

// Request DTOs

type CityRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// Response DTOs

type CityResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CityListResponse struct {
	Cities []CityResponse `json:"cities"`
	Total  int            `json:"total"`
}
