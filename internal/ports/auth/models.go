package auth

// Claims representa la identidad del request (hoy solo el user id del header).
type Claims struct {
	UserID string
}
