package models

import (
	"time"
)

// RoleType defines a user's role
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// RegistrationRole defines the capacity a student registers in
type RegistrationRole string

const (
	RegistrationParticipant RegistrationRole = "Participant"
	RegistrationVolunteer   RegistrationRole = "Volunteer"
)

// IsValid reports whether the registration role is known
func (r RegistrationRole) IsValid() bool {
	return r == RegistrationParticipant || r == RegistrationVolunteer
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`           // lower-cased, unique
	StudentID string    `json:"student_id" db:"student_id"` // unique
	Password  string    `json:"-" db:"password"`            // bcrypt hash, excluded from JSON
	Role      RoleType  `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Event defines an event catalog entry based on the 'events' table
type Event struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Poster string `json:"poster" db:"poster"`
}

// Registration defines a student's enrollment based on the 'registrations'
// table. Denormalized: it stores copies of the student's name/id and the
// event name as of registration time, with no foreign keys.
type Registration struct {
	ID          int64            `json:"id" db:"id"`
	StudentName string           `json:"name" db:"student_name"`
	StudentID   string           `json:"student_id" db:"student_id"`
	EventName   string           `json:"event" db:"event_name"`
	Role        RegistrationRole `json:"role" db:"role"`
}
