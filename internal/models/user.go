package models

// AdminUsername is the single distinguished administrator account. It is
// created at bootstrap when the users table is empty and is exempt from
// deletion.
const AdminUsername = "admin"

type User struct {
	Username string `json:"username"`
	// PasswordHash holds the hex SHA-256 digest of the password, never the
	// plaintext.
	PasswordHash string `json:"-"`
}

func (u User) IsAdmin() bool { return u.Username == AdminUsername }
