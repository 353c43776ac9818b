package user

// Perfil is the access role carried by every utilizador.
type Perfil string

const (
	PerfilAdmin Perfil = "ADMIN"
	PerfilUser  Perfil = "USER"
)

// IsAdmin is the single place where the role string is interpreted; middleware
// and services go through it instead of comparing strings themselves.
func (p Perfil) IsAdmin() bool {
	return p == PerfilAdmin
}

func (p Perfil) Valid() bool {
	return p == PerfilAdmin || p == PerfilUser
}

// User is a row of utilizadores. Nickname and Telefone are optional and empty
// when NULL in the database.
type User struct {
	ID        int64
	Email     string
	SenhaHash string
	Perfil    Perfil
	Nickname  string
	Telefone  string
}

// DisplayName prefers the nickname over the email, matching the COALESCE used
// by the SQL layer.
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}

	return u.Email
}
