package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`

	// Client metadata captured by the handler, not the request body.
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
