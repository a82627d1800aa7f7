package entity

import "time"

// User usuario de la aplicación, siempre asociado a una sucursal.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	BranchID     string
	CreatedAt    time.Time
}
