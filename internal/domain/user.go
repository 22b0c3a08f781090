package domain

import "time"

// User es una cuenta de administrador del portfolio. El hash de la contraseña
// nunca se serializa en respuestas.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
