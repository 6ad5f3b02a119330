package auth

// Claims es la identidad del dueño que resuelve el verifier (o el header de dev).
type Claims struct {
	OwnerID string
	Email   string
}
