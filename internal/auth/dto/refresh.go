package dto

type RefreshInput struct {
	// RefreshToken is the raw cookie value, never a body field.
	RefreshToken string `json:"-"`
	Remember     bool   `json:"-"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}
