package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

func TestCreateEventRequiresFields(t *testing.T) {
	svc := NewEventService(openTestRepos(t).Events)
	ctx := context.Background()

	for _, tt := range []struct{ name, poster string }{
		{"", "poster.png"},
		{"   ", "poster.png"},
		{"Hack Night", ""},
	} {
		if _, err := svc.CreateEvent(ctx, tt.name, tt.poster); !errors.Is(err, apperrors.ErrBadRequest) {
			t.Fatalf("CreateEvent(%q, %q) err = %v, want ErrBadRequest", tt.name, tt.poster, err)
		}
	}
}

func TestEventServiceLifecycle(t *testing.T) {
	svc := NewEventService(openTestRepos(t).Events)
	ctx := context.Background()

	id, err := svc.CreateEvent(ctx, "  Hack Night  ", "hack.png")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	events, err := svc.ListEvents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Name != "Hack Night" {
		t.Fatalf("name = %q, want trimmed", events[0].Name)
	}

	if err := svc.DeleteEvent(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteEvent(ctx, id); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Fatalf("err = %v, want ErrEventNotFound", err)
	}
}
