package dto

type UserOutput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

type UpdateStatusInput struct {
	Active *bool `json:"active"`
}
