package constant

const (
	// RefreshCookieName is the fixed name of the refresh-token cookie.
	RefreshCookieName = "rt"

	// RefreshSecretBytes is the amount of randomness behind each refresh
	// token secret. Must stay at or above 48 bytes.
	RefreshSecretBytes = 64

	// DummyPasswordHash is a valid bcrypt hash that no real account uses.
	// Login compares against it when the account is unknown or disabled so
	// the response time does not reveal whether the email exists.
	DummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	// AuthUserLocalKey is the fiber locals key the auth guard stores the
	// verified access-token claims under.
	AuthUserLocalKey = "authUser"
)
