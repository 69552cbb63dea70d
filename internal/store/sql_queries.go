package store

const (
	createUser = `INSERT INTO users (username, password)
    VALUES (?, ?);`

	findUserByUsername = `SELECT id, username, password, created_at
    FROM users
    WHERE username = ?;`

	findUserByID = `SELECT id, username, password, created_at
    FROM users
    WHERE id = ?;`
)
