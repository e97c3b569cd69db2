package domain

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Name     string `db:"name"`
	Hash     string `db:"password_hash"`
	Role     string `db:"role"`
}
