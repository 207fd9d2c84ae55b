package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/campushub/eventhub/internal/app/migrations"
	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = database.Close()
	})

	if err := migrations.NewMigrator(database).Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func testUser(email, studentID string) *models.User {
	return &models.User{
		Name:      "Alice",
		Email:     email,
		StudentID: studentID,
		Password:  "$2a$12$fakehashfakehashfakehash",
		Role:      models.RoleStudent,
	}
}

func TestCreateUserAndFetch(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, testUser("alice@example.com", "S100"))
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero id")
	}

	byEmail, err := repo.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != id || byEmail.StudentID != "S100" {
		t.Fatalf("unexpected user: %+v", byEmail)
	}
	if byEmail.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be populated")
	}

	byID, err := repo.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Fatalf("email = %q", byID.Email)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, testUser("alice@example.com", "S100")); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := repo.CreateUser(ctx, testUser("alice@example.com", "S200"))
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestCreateUserDuplicateStudentID(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, testUser("alice@example.com", "S100")); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := repo.CreateUser(ctx, testUser("bob@example.com", "S100"))
	if !errors.Is(err, apperrors.ErrStudentIDAlreadyExists) {
		t.Fatalf("err = %v, want ErrStudentIDAlreadyExists", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.GetUserByEmail(ctx, "ghost@example.com"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := repo.GetUserByID(ctx, 12345); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestEventLifecycle(t *testing.T) {
	repo := NewEventRepository(openTestDB(t))
	ctx := context.Background()

	empty, err := repo.GetAllEvents(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(empty))
	}

	first, err := repo.CreateEvent(ctx, &models.Event{Name: "Hack Night", Poster: "hack.png"})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	second, err := repo.CreateEvent(ctx, &models.Event{Name: "Career Fair", Poster: "fair.png"})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	events, err := repo.GetAllEvents(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Insertion order.
	if events[0].ID != first || events[1].ID != second {
		t.Fatalf("unexpected order: %+v", events)
	}

	if err := repo.DeleteEvent(ctx, first); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if err := repo.DeleteEvent(ctx, first); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Fatalf("err = %v, want ErrEventNotFound", err)
	}
}

func TestRegistrationUniqueness(t *testing.T) {
	repo := NewRegistrationRepository(openTestDB(t))
	ctx := context.Background()

	reg := &models.Registration{
		StudentName: "Alice",
		StudentID:   "S100",
		EventName:   "Hack Night",
		Role:        models.RegistrationParticipant,
	}

	if _, err := repo.CreateRegistration(ctx, reg); err != nil {
		t.Fatalf("create registration: %v", err)
	}

	// Same student and event, even with another role, is a duplicate.
	dup := &models.Registration{
		StudentName: "Alice",
		StudentID:   "S100",
		EventName:   "Hack Night",
		Role:        models.RegistrationVolunteer,
	}
	if _, err := repo.CreateRegistration(ctx, dup); !errors.Is(err, apperrors.ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}

	// Same student, different event is fine.
	other := &models.Registration{
		StudentName: "Alice",
		StudentID:   "S100",
		EventName:   "Career Fair",
		Role:        models.RegistrationParticipant,
	}
	if _, err := repo.CreateRegistration(ctx, other); err != nil {
		t.Fatalf("different event: %v", err)
	}

	regs, err := repo.GetAllRegistrations(ctx)
	if err != nil {
		t.Fatalf("list registrations: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("registrations = %d, want 2", len(regs))
	}
}

func TestDeleteRegistrationNotFound(t *testing.T) {
	repo := NewRegistrationRepository(openTestDB(t))

	err := repo.DeleteRegistration(context.Background(), 999)
	if !errors.Is(err, apperrors.ErrRegistrationNotFound) {
		t.Fatalf("err = %v, want ErrRegistrationNotFound", err)
	}
}
