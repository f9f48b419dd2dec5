package jsonstore

import (
	"context"
	"strings"

	"tutorhub/internal/model"
)

type UserRepo struct {
	c *collection[model.User]
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, u := range r.c.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, u := range r.c.items {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return append([]*model.User(nil), r.c.items...), nil
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, user)
	return r.c.persist()
}

type TutorRepo struct {
	c *collection[model.Tutor]
}

func (r *TutorRepo) GetByID(ctx context.Context, id string) (*model.Tutor, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, t := range r.c.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *TutorRepo) List(ctx context.Context) ([]*model.Tutor, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return append([]*model.Tutor(nil), r.c.items...), nil
}

func (r *TutorRepo) Create(ctx context.Context, tutor *model.Tutor) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, tutor)
	return r.c.persist()
}

func (r *TutorRepo) Save(ctx context.Context, tutor *model.Tutor) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for i, t := range r.c.items {
		if t.ID == tutor.ID {
			r.c.items[i] = tutor
			return r.c.persist()
		}
	}
	r.c.items = append(r.c.items, tutor)
	return r.c.persist()
}

type SessionRepo struct {
	c *collection[model.Session]
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, s := range r.c.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *SessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return append([]*model.Session(nil), r.c.items...), nil
}

func (r *SessionRepo) Create(ctx context.Context, session *model.Session) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, session)
	return r.c.persist()
}

func (r *SessionRepo) Save(ctx context.Context, session *model.Session) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for i, s := range r.c.items {
		if s.ID == session.ID {
			r.c.items[i] = session
			return r.c.persist()
		}
	}
	r.c.items = append(r.c.items, session)
	return r.c.persist()
}

// SaveAll upserts the batch and rewrites the collection file once
func (r *SessionRepo) SaveAll(ctx context.Context, sessions []*model.Session) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, session := range sessions {
		found := false
		for i, s := range r.c.items {
			if s.ID == session.ID {
				r.c.items[i] = session
				found = true
				break
			}
		}
		if !found {
			r.c.items = append(r.c.items, session)
		}
	}
	return r.c.persist()
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	out := r.c.items[:0]
	for _, s := range r.c.items {
		if s.ID != id {
			out = append(out, s)
		}
	}
	r.c.items = out
	return r.c.persist()
}

type BookingRepo struct {
	c *collection[model.Booking]
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, b := range r.c.items {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *BookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return append([]*model.Booking(nil), r.c.items...), nil
}

func (r *BookingRepo) ListBySession(ctx context.Context, sessionID string) ([]*model.Booking, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	var out []*model.Booking
	for _, b := range r.c.items {
		if b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepo) ListByStudent(ctx context.Context, studentID string) ([]*model.Booking, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	var out []*model.Booking
	for _, b := range r.c.items {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, booking)
	return r.c.persist()
}

func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	out := r.c.items[:0]
	for _, b := range r.c.items {
		if b.ID != id {
			out = append(out, b)
		}
	}
	r.c.items = out
	return r.c.persist()
}

func (r *BookingRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	out := r.c.items[:0]
	for _, b := range r.c.items {
		if b.SessionID != sessionID {
			out = append(out, b)
		}
	}
	r.c.items = out
	return r.c.persist()
}

type FeedbackRepo struct {
	c *collection[model.Feedback]
}

func (r *FeedbackRepo) GetBySessionStudent(ctx context.Context, sessionID, studentID string) (*model.Feedback, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, f := range r.c.items {
		if f.SessionID == sessionID && f.StudentID == studentID {
			return f, nil
		}
	}
	return nil, nil
}

func (r *FeedbackRepo) ListByTutor(ctx context.Context, tutorID string) ([]*model.Feedback, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	var out []*model.Feedback
	for _, f := range r.c.items {
		if f.TutorID == tutorID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, feedback)
	return r.c.persist()
}

func (r *FeedbackRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	out := r.c.items[:0]
	for _, f := range r.c.items {
		if f.SessionID != sessionID {
			out = append(out, f)
		}
	}
	r.c.items = out
	return r.c.persist()
}

type NotificationRepo struct {
	c *collection[model.Notification]
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	var out []*model.Notification
	for _, n := range r.c.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NotificationRepo) List(ctx context.Context) ([]*model.Notification, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return append([]*model.Notification(nil), r.c.items...), nil
}

func (r *NotificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, notification)
	return r.c.persist()
}

func (r *NotificationRepo) ClearByUser(ctx context.Context, userID string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	out := r.c.items[:0]
	for _, n := range r.c.items {
		if n.UserID != userID {
			out = append(out, n)
		}
	}
	r.c.items = out
	return r.c.persist()
}

type ResourceRepo struct {
	c *collection[model.Resource]
}

func (r *ResourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, res := range r.c.items {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, nil
}

func (r *ResourceRepo) List(ctx context.Context) ([]*model.Resource, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return append([]*model.Resource(nil), r.c.items...), nil
}

func (r *ResourceRepo) ListByCourse(ctx context.Context, courseCode string) ([]*model.Resource, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	var out []*model.Resource
	for _, res := range r.c.items {
		if res.CourseCode == courseCode {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *ResourceRepo) Create(ctx context.Context, resource *model.Resource) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, resource)
	return r.c.persist()
}

func (r *ResourceRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	out := r.c.items[:0]
	for _, res := range r.c.items {
		if res.SessionID != sessionID {
			out = append(out, res)
		}
	}
	r.c.items = out
	return r.c.persist()
}

type AccessLogRepo struct {
	c *collection[model.AccessLog]
}

func (r *AccessLogRepo) List(ctx context.Context) ([]*model.AccessLog, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return append([]*model.AccessLog(nil), r.c.items...), nil
}

func (r *AccessLogRepo) ListByResource(ctx context.Context, resourceID string) ([]*model.AccessLog, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	var out []*model.AccessLog
	for _, l := range r.c.items {
		if l.ResourceID == resourceID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *AccessLogRepo) Create(ctx context.Context, log *model.AccessLog) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.items = append(r.c.items, log)
	return r.c.persist()
}
