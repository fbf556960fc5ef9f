package employees

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrEmailInUse     = errors.New("email already in use")
	ErrBadCredentials = errors.New("invalid email or password")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// StaffSession es lo que devuelve el login del CLI: id + rol alcanzan para
// cargar el set de comandos correspondiente.
type StaffSession struct {
	EmployeeID string
	Name       string
	Role       Role
}

func (s *Service) Login(ctx context.Context, email, password string) (StaffSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return StaffSession{}, ErrInvalidInput
	}

	e, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return StaffSession{}, ErrBadCredentials
		}
		return StaffSession{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) != nil {
		return StaffSession{}, ErrBadCredentials
	}

	return StaffSession{EmployeeID: e.ID, Name: e.Name, Role: e.Role}, nil
}

type AddInput struct {
	Email         string
	Name          string
	Password      string
	Role          string
	Mobile        string
	RoutingNumber string
}

func (s *Service) Add(ctx context.Context, in AddInput) (Employee, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)

	if !emailRe.MatchString(email) || name == "" || in.Password == "" {
		return Employee{}, ErrInvalidInput
	}
	role, ok := ParseRole(strings.ToLower(strings.TrimSpace(in.Role)))
	if !ok {
		return Employee{}, ErrInvalidInput
	}
	routing := strings.TrimSpace(in.RoutingNumber)
	if len(routing) != 9 || !allDigits(routing) {
		return Employee{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Employee{}, ErrEmailInUse
	} else if !errors.Is(err, ErrNotFound) {
		return Employee{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Employee{}, err
	}

	e := Employee{
		ID:            uuid.NewString(),
		Name:          name,
		Mobile:        strings.TrimSpace(in.Mobile),
		Email:         email,
		Role:          role,
		RoutingNumber: routing,
		PasswordHash:  string(hash),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

type UpdateInput struct {
	// nil = no tocar.
	Name          *string
	Mobile        *string
	Role          *string
	RoutingNumber *string
	Password      *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Employee{}, ErrInvalidInput
		}
		e.Name = strings.TrimSpace(*in.Name)
	}
	if in.Mobile != nil {
		e.Mobile = strings.TrimSpace(*in.Mobile)
	}
	if in.Role != nil {
		role, ok := ParseRole(strings.ToLower(strings.TrimSpace(*in.Role)))
		if !ok {
			return Employee{}, ErrInvalidInput
		}
		e.Role = role
	}
	if in.RoutingNumber != nil {
		routing := strings.TrimSpace(*in.RoutingNumber)
		if len(routing) != 9 || !allDigits(routing) {
			return Employee{}, ErrInvalidInput
		}
		e.RoutingNumber = routing
	}
	if in.Password != nil {
		if *in.Password == "" {
			return Employee{}, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return Employee{}, err
		}
		e.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Employee{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, query string) ([]Employee, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
