package customers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("customer not found")
	ErrEmailInUse       = errors.New("email already in use")
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrPasswordMismatch = errors.New("current password does not match")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SignUpInput struct {
	Name     string
	Email    string
	Mobile   string
	Address  string
	Password string
}

// SignUp chequea primero unicidad del email (como la pantalla original)
// y recién después inserta.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (Customer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || email == "" || in.Password == "" {
		return Customer{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Customer{}, ErrEmailInUse
	} else if !errors.Is(err, ErrNotFound) {
		return Customer{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Customer{}, err
	}

	c := Customer{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Mobile:       strings.TrimSpace(in.Mobile),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// Login verifica credenciales y devuelve el customer.
// El caller (handler de login) arma la sesión con email+name+customerID juntos.
func (s *Service) Login(ctx context.Context, email, password string) (Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Customer{}, ErrInvalidInput
	}

	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Customer{}, ErrBadCredentials
		}
		return Customer{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return Customer{}, ErrBadCredentials
	}
	return c, nil
}

// ChangePassword exige la contraseña actual antes de actualizar.
func (s *Service) ChangePassword(ctx context.Context, email, current, next string) error {
	if next == "" {
		return ErrInvalidInput
	}

	c, err := s.Login(ctx, email, current)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			return ErrPasswordMismatch
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, c.ID, string(hash))
}

// DeleteAccount borra la fila por email (igual que la pantalla de perfil original).
func (s *Service) DeleteAccount(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteByEmail(ctx, email)
}

func (s *Service) GetByID(ctx context.Context, id string) (Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Customer{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, query string) ([]Customer, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}
