package users

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User es el dueño de los gatos. Sólo guardamos lo que las respuestas de cats necesitan.
type User struct {
	ID   int64
	Name string
	Role string
}
