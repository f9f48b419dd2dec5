package service

import (
	"context"
	"testing"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
)

func TestAddResourceNotifiesSessionAttendees(t *testing.T) {
	svc, m := newTestServices()
	m.sessions.items = append(m.sessions.items, &model.Session{
		ID: "s1", TutorID: "t1", Attendees: []string{"stu1", "stu2"},
	})

	resource, err := svc.Resources.Add(context.Background(), AddResourceInput{
		Title: "Lecture notes", SessionID: "s1", URL: "https://cdn/notes.pdf", UploaderID: "t1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resource.ID == "" {
		t.Fatal("expected generated id")
	}
	if len(m.notifications.items) != 2 {
		t.Fatalf("expected 2 attendee notifications, got %d", len(m.notifications.items))
	}
	want := "New resource Lecture notes added for session s1"
	if m.notifications.items[0].Message != want {
		t.Fatalf("message = %q, want %q", m.notifications.items[0].Message, want)
	}
}

func TestAddResourceWithoutSessionSkipsNotifications(t *testing.T) {
	svc, m := newTestServices()

	if _, err := svc.Resources.Add(context.Background(), AddResourceInput{
		Title: "Cheat sheet", CourseCode: "CS101", UploaderID: "t1",
	}); err != nil {
		t.Fatal(err)
	}
	if len(m.notifications.items) != 0 {
		t.Fatalf("course-wide resource should not notify: %+v", m.notifications.items)
	}
}

func TestAddResourceUnknownSession(t *testing.T) {
	svc, _ := newTestServices()
	_, err := svc.Resources.Add(context.Background(), AddResourceInput{
		Title: "Notes", SessionID: "ghost",
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStreamLogsAccess(t *testing.T) {
	svc, m := newTestServices()
	m.resources.items = append(m.resources.items, &model.Resource{ID: "r1", Title: "Video"})

	resource, err := svc.Resources.Stream(context.Background(), "r1")
	if err != nil {
		t.Fatal(err)
	}
	if resource.ID != "r1" {
		t.Fatalf("wrong resource %+v", resource)
	}
	if len(m.accessLogs.items) != 1 || m.accessLogs.items[0].ResourceID != "r1" {
		t.Fatalf("access not logged: %+v", m.accessLogs.items)
	}
}

func TestStreamUnknownResource(t *testing.T) {
	svc, m := newTestServices()
	_, err := svc.Resources.Stream(context.Background(), "ghost")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(m.accessLogs.items) != 0 {
		t.Fatal("missing resource must not be logged")
	}
}

func TestListResourcesByCourse(t *testing.T) {
	svc, m := newTestServices()
	m.resources.items = append(m.resources.items,
		&model.Resource{ID: "r1", CourseCode: "CS101"},
		&model.Resource{ID: "r2", CourseCode: "MATH201"},
	)

	list, err := svc.Resources.List(context.Background(), "CS101")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != "r1" {
		t.Fatalf("course filter broken: %+v", list)
	}
}
