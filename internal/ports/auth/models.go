package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID int64
	Role   string
}

// IsAdmin compara contra el rol de administrador configurado.
func (c Claims) IsAdmin(adminRole string) bool {
	return adminRole != "" && c.Role == adminRole
}
