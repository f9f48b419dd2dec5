package service

import (
	"context"
	"testing"
	"time"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
)

func TestCreateSessionValidatesTimes(t *testing.T) {
	svc, _ := newTestServices()
	ctx := context.Background()

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"malformed start", "tomorrow", "2026-09-02T11:00:00Z"},
		{"malformed end", "2026-09-02T10:00:00Z", "later"},
		{"start after end", "2026-09-02T12:00:00Z", "2026-09-02T11:00:00Z"},
		{"start equals end", "2026-09-02T11:00:00Z", "2026-09-02T11:00:00Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Sessions.Create(ctx, CreateSessionInput{
				TutorID: "t1", Title: "Calc review", Start: tc.start, End: tc.end,
			})
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateSessionDefaults(t *testing.T) {
	svc, m := newTestServices()

	session, err := svc.Sessions.Create(context.Background(), CreateSessionInput{
		TutorID: "t1",
		Title:   "Calc review",
		Start:   "2026-09-02T10:00:00Z",
		End:     "2026-09-02T11:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	if session.Status != model.SessionStatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", session.Status)
	}
	if session.ID == "" {
		t.Fatal("expected generated id")
	}
	if len(session.Attendees) != 0 {
		t.Fatalf("expected no attendees, got %v", session.Attendees)
	}
	if len(m.sessions.items) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(m.sessions.items))
	}
}

func TestChangeStatusRejectsUnknownState(t *testing.T) {
	svc, m := newTestServices()
	m.sessions.items = append(m.sessions.items, &model.Session{ID: "s1", Status: model.SessionStatusScheduled})

	_, err := svc.Sessions.ChangeStatus(context.Background(), "s1", "CANCELLED")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChangeStatusNotifiesAttendees(t *testing.T) {
	svc, m := newTestServices()
	m.sessions.items = append(m.sessions.items, &model.Session{
		ID:        "s1",
		Status:    model.SessionStatusScheduled,
		Attendees: []string{"stu1", "stu2"},
	})

	session, err := svc.Sessions.ChangeStatus(context.Background(), "s1", model.SessionStatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if session.Status != model.SessionStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", session.Status)
	}
	if len(m.notifications.items) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(m.notifications.items))
	}
	want := "Session s1 status changed to COMPLETED"
	if m.notifications.items[0].Message != want {
		t.Fatalf("notification message = %q, want %q", m.notifications.items[0].Message, want)
	}
}

func TestDeleteSessionCascadesAndScopes(t *testing.T) {
	svc, m := newTestServices()
	ctx := context.Background()

	m.tutors.items = append(m.tutors.items, &model.Tutor{ID: "t1", AverageRating: 5, RatingCount: 2})
	m.sessions.items = append(m.sessions.items,
		&model.Session{ID: "s1", TutorID: "t1"},
		&model.Session{ID: "s2", TutorID: "t1"},
	)
	m.bookings.items = append(m.bookings.items,
		&model.Booking{ID: "b1", SessionID: "s1", StudentID: "stu1"},
		&model.Booking{ID: "b2", SessionID: "s2", StudentID: "stu1"},
	)
	m.feedback.items = append(m.feedback.items,
		&model.Feedback{ID: "f1", SessionID: "s1", TutorID: "t1", StudentID: "stu1", Rating: 5},
		&model.Feedback{ID: "f2", SessionID: "s2", TutorID: "t1", StudentID: "stu1", Rating: 3},
	)
	m.resources.items = append(m.resources.items,
		&model.Resource{ID: "r1", SessionID: "s1"},
		&model.Resource{ID: "r2", SessionID: "s2"},
	)

	if err := svc.Sessions.Delete(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	if len(m.sessions.items) != 1 || m.sessions.items[0].ID != "s2" {
		t.Fatalf("expected only s2 to survive, got %+v", m.sessions.items)
	}
	if len(m.bookings.items) != 1 || m.bookings.items[0].ID != "b2" {
		t.Fatalf("cascade touched the wrong bookings: %+v", m.bookings.items)
	}
	if len(m.feedback.items) != 1 || m.feedback.items[0].ID != "f2" {
		t.Fatalf("cascade touched the wrong feedback: %+v", m.feedback.items)
	}
	if len(m.resources.items) != 1 || m.resources.items[0].ID != "r2" {
		t.Fatalf("cascade touched the wrong resources: %+v", m.resources.items)
	}

	// Rating cache rebuilt from the surviving feedback row.
	tutor := m.tutors.items[0]
	if tutor.AverageRating != 3 || tutor.RatingCount != 1 {
		t.Fatalf("rating cache not recomputed: avg=%v count=%d", tutor.AverageRating, tutor.RatingCount)
	}
}

func TestDeleteUnknownSession(t *testing.T) {
	svc, _ := newTestServices()
	err := svc.Sessions.Delete(context.Background(), "ghost")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSweepCompletesOnlyPastScheduledSessions(t *testing.T) {
	svc, m := newTestServices()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	m.sessions.items = append(m.sessions.items,
		&model.Session{
			ID: "past", Status: model.SessionStatusScheduled,
			End: "2026-09-01T10:00:00Z", Attendees: []string{"stu1"},
		},
		&model.Session{
			ID: "future", Status: model.SessionStatusScheduled,
			End: "2026-09-01T18:00:00Z",
		},
		&model.Session{
			ID: "done", Status: model.SessionStatusCompleted,
			End: "2026-08-01T10:00:00Z",
		},
	)

	count, err := svc.Sessions.Sweep(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1 flip, got %d", count)
	}
	if m.sessions.items[0].Status != model.SessionStatusCompleted {
		t.Fatal("past session not completed")
	}
	if m.sessions.items[1].Status != model.SessionStatusScheduled {
		t.Fatal("future session should stay scheduled")
	}
	if m.sessions.saveAllCalls != 1 {
		t.Fatalf("expected one batched save, got %d", m.sessions.saveAllCalls)
	}
	if len(m.notifications.items) != 1 || m.notifications.items[0].UserID != "stu1" {
		t.Fatalf("expected attendee notification, got %+v", m.notifications.items)
	}

	// An immediate second pass finds nothing and persists nothing.
	count, err = svc.Sessions.Sweep(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("second sweep flipped %d sessions", count)
	}
	if m.sessions.saveAllCalls != 1 {
		t.Fatalf("second sweep persisted: saveAllCalls=%d", m.sessions.saveAllCalls)
	}
}

func TestSweepSkipsMalformedEnd(t *testing.T) {
	svc, m := newTestServices()
	m.sessions.items = append(m.sessions.items,
		&model.Session{ID: "bad", Status: model.SessionStatusScheduled, End: "eventually"},
		&model.Session{ID: "good", Status: model.SessionStatusScheduled, End: "2026-01-01T10:00:00Z"},
	)

	count, err := svc.Sessions.Sweep(context.Background(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1 flip, got %d", count)
	}
	if m.sessions.items[0].Status != model.SessionStatusScheduled {
		t.Fatal("malformed session must be left untouched")
	}
	if m.sessions.items[1].Status != model.SessionStatusCompleted {
		t.Fatal("valid past session not completed")
	}
}
