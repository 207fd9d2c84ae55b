// Package repositories contains the SQL layer over the embedded store.
package repositories

import (
	"database/sql"
)

// Repositories bundles all repositories sharing one database handle
type Repositories struct {
	Users         *UserRepository
	Events        *EventRepository
	Registrations *RegistrationRepository
}

// NewRepositories creates the repository container
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Events:        NewEventRepository(db),
		Registrations: NewRegistrationRepository(db),
	}
}
