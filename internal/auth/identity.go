package auth

// Identity is the resolved caller of one request. It exists only for the
// duration of request handling; no session state survives between requests.
type Identity struct {
	UserID   uint
	Nickname string
}

// IsZero reports whether the identity was never resolved
func (id Identity) IsZero() bool {
	return id.UserID == 0
}
