package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// In-memory repository fakes. Slices keep insertion order so ranking
// stability is observable; counters expose persistence calls to the tests.

type mockUserRepo struct {
	items []*model.User
}

func (r *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.items {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	return r.items, nil
}

func (r *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	r.items = append(r.items, user)
	return nil
}

type mockTutorRepo struct {
	items     []*model.Tutor
	saveCalls int
}

func (r *mockTutorRepo) GetByID(ctx context.Context, id string) (*model.Tutor, error) {
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *mockTutorRepo) List(ctx context.Context) ([]*model.Tutor, error) {
	return r.items, nil
}

func (r *mockTutorRepo) Create(ctx context.Context, tutor *model.Tutor) error {
	r.items = append(r.items, tutor)
	return nil
}

func (r *mockTutorRepo) Save(ctx context.Context, tutor *model.Tutor) error {
	r.saveCalls++
	for i, t := range r.items {
		if t.ID == tutor.ID {
			r.items[i] = tutor
			return nil
		}
	}
	r.items = append(r.items, tutor)
	return nil
}

type mockSessionRepo struct {
	items        []*model.Session
	saveCalls    int
	saveAllCalls int
}

func (r *mockSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *mockSessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	return r.items, nil
}

func (r *mockSessionRepo) Create(ctx context.Context, session *model.Session) error {
	r.items = append(r.items, session)
	return nil
}

func (r *mockSessionRepo) Save(ctx context.Context, session *model.Session) error {
	r.saveCalls++
	for i, s := range r.items {
		if s.ID == session.ID {
			r.items[i] = session
			return nil
		}
	}
	r.items = append(r.items, session)
	return nil
}

func (r *mockSessionRepo) SaveAll(ctx context.Context, sessions []*model.Session) error {
	r.saveAllCalls++
	for _, session := range sessions {
		_ = r.Save(ctx, session)
		r.saveCalls--
	}
	return nil
}

func (r *mockSessionRepo) Delete(ctx context.Context, id string) error {
	out := r.items[:0]
	for _, s := range r.items {
		if s.ID != id {
			out = append(out, s)
		}
	}
	r.items = out
	return nil
}

type mockBookingRepo struct {
	items []*model.Booking
}

func (r *mockBookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	for _, b := range r.items {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *mockBookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	return r.items, nil
}

func (r *mockBookingRepo) ListBySession(ctx context.Context, sessionID string) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range r.items {
		if b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *mockBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range r.items {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *mockBookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	r.items = append(r.items, booking)
	return nil
}

func (r *mockBookingRepo) Delete(ctx context.Context, id string) error {
	out := r.items[:0]
	for _, b := range r.items {
		if b.ID != id {
			out = append(out, b)
		}
	}
	r.items = out
	return nil
}

func (r *mockBookingRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	out := r.items[:0]
	for _, b := range r.items {
		if b.SessionID != sessionID {
			out = append(out, b)
		}
	}
	r.items = out
	return nil
}

type mockFeedbackRepo struct {
	items []*model.Feedback
}

func (r *mockFeedbackRepo) GetBySessionStudent(ctx context.Context, sessionID, studentID string) (*model.Feedback, error) {
	for _, f := range r.items {
		if f.SessionID == sessionID && f.StudentID == studentID {
			return f, nil
		}
	}
	return nil, nil
}

func (r *mockFeedbackRepo) ListByTutor(ctx context.Context, tutorID string) ([]*model.Feedback, error) {
	var out []*model.Feedback
	for _, f := range r.items {
		if f.TutorID == tutorID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *mockFeedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	r.items = append(r.items, feedback)
	return nil
}

func (r *mockFeedbackRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	out := r.items[:0]
	for _, f := range r.items {
		if f.SessionID != sessionID {
			out = append(out, f)
		}
	}
	r.items = out
	return nil
}

type mockNotificationRepo struct {
	items []*model.Notification
}

func (r *mockNotificationRepo) ListByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	var out []*model.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *mockNotificationRepo) List(ctx context.Context) ([]*model.Notification, error) {
	return r.items, nil
}

func (r *mockNotificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	r.items = append(r.items, notification)
	return nil
}

func (r *mockNotificationRepo) ClearByUser(ctx context.Context, userID string) error {
	out := r.items[:0]
	for _, n := range r.items {
		if n.UserID != userID {
			out = append(out, n)
		}
	}
	r.items = out
	return nil
}

type mockResourceRepo struct {
	items []*model.Resource
}

func (r *mockResourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	for _, res := range r.items {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, nil
}

func (r *mockResourceRepo) List(ctx context.Context) ([]*model.Resource, error) {
	return r.items, nil
}

func (r *mockResourceRepo) ListByCourse(ctx context.Context, courseCode string) ([]*model.Resource, error) {
	var out []*model.Resource
	for _, res := range r.items {
		if res.CourseCode == courseCode {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *mockResourceRepo) Create(ctx context.Context, resource *model.Resource) error {
	r.items = append(r.items, resource)
	return nil
}

func (r *mockResourceRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	out := r.items[:0]
	for _, res := range r.items {
		if res.SessionID != sessionID {
			out = append(out, res)
		}
	}
	r.items = out
	return nil
}

type mockAccessLogRepo struct {
	items []*model.AccessLog
}

func (r *mockAccessLogRepo) List(ctx context.Context) ([]*model.AccessLog, error) {
	return r.items, nil
}

func (r *mockAccessLogRepo) ListByResource(ctx context.Context, resourceID string) ([]*model.AccessLog, error) {
	var out []*model.AccessLog
	for _, l := range r.items {
		if l.ResourceID == resourceID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *mockAccessLogRepo) Create(ctx context.Context, log *model.AccessLog) error {
	r.items = append(r.items, log)
	return nil
}

type mocks struct {
	users         *mockUserRepo
	tutors        *mockTutorRepo
	sessions      *mockSessionRepo
	bookings      *mockBookingRepo
	feedback      *mockFeedbackRepo
	notifications *mockNotificationRepo
	resources     *mockResourceRepo
	accessLogs    *mockAccessLogRepo
}

func newTestServices() (*Services, *mocks) {
	m := &mocks{
		users:         &mockUserRepo{},
		tutors:        &mockTutorRepo{},
		sessions:      &mockSessionRepo{},
		bookings:      &mockBookingRepo{},
		feedback:      &mockFeedbackRepo{},
		notifications: &mockNotificationRepo{},
		resources:     &mockResourceRepo{},
		accessLogs:    &mockAccessLogRepo{},
	}
	repos := &repository.Repositories{
		Users:         m.users,
		Tutors:        m.tutors,
		Sessions:      m.sessions,
		Bookings:      m.bookings,
		Feedback:      m.feedback,
		Notifications: m.notifications,
		Resources:     m.resources,
		AccessLogs:    m.accessLogs,
	}
	return New(repos, nil, zap.NewNop()), m
}
