package service

import (
	"context"
	"testing"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
)

func TestRegisterTutorCreatesProfile(t *testing.T) {
	svc, m := newTestServices()

	user, err := svc.Users.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "alice@example.com", Role: model.RoleTutor, Password: "secret",
	})
	if err != nil {
		t.Fatal(err)
	}
	if user.HashedPassword == "secret" || user.HashedPassword == "" {
		t.Fatal("password stored unhashed")
	}
	if len(m.tutors.items) != 1 || m.tutors.items[0].ID != user.ID {
		t.Fatalf("tutor profile not created under user id: %+v", m.tutors.items)
	}
}

func TestRegisterStudentSkipsTutorProfile(t *testing.T) {
	svc, m := newTestServices()

	if _, err := svc.Users.Register(context.Background(), RegisterInput{
		Name: "Bob", Email: "bob@example.com", Role: model.RoleStudent, Password: "secret",
	}); err != nil {
		t.Fatal(err)
	}
	if len(m.tutors.items) != 0 {
		t.Fatalf("student registration created a tutor profile: %+v", m.tutors.items)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestServices()
	ctx := context.Background()

	cases := []RegisterInput{
		{Email: "a@b.c", Role: model.RoleStudent, Password: "x"},
		{Name: "A", Role: model.RoleStudent, Password: "x"},
		{Name: "A", Email: "a@b.c", Role: "admin", Password: "x"},
		{Name: "A", Email: "a@b.c", Role: model.RoleStudent},
	}
	for i, in := range cases {
		if _, err := svc.Users.Register(ctx, in); !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("case %d: expected validation, got %v", i, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestServices()
	ctx := context.Background()
	in := RegisterInput{Name: "A", Email: "a@b.c", Role: model.RoleStudent, Password: "x"}

	if _, err := svc.Users.Register(ctx, in); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Users.Register(ctx, in)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestServices()
	ctx := context.Background()

	if _, err := svc.Users.Register(ctx, RegisterInput{
		Name: "A", Email: "a@b.c", Role: model.RoleStudent, Password: "secret",
	}); err != nil {
		t.Fatal(err)
	}

	user, token, err := svc.Users.Login(ctx, "a@b.c", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if user == nil || token == "" {
		t.Fatal("expected user and token on success")
	}

	if _, _, err := svc.Users.Login(ctx, "a@b.c", "wrong"); !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden on bad password, got %v", err)
	}
	if _, _, err := svc.Users.Login(ctx, "nobody@b.c", "secret"); !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden on unknown email, got %v", err)
	}
}
