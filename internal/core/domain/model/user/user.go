package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

const minPasswordLength = 8

// User is an account able to sign in. Password hashes are bcrypt.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash []byte
	role         Role

	isConstructed bool
}

// NewUser registers an account, hashing the plain password.
func NewUser(id kernel.UUID, name, email, password string, role Role) (*User, error) {
	if len(password) < minPasswordLength {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters", minPasswordLength),
		)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return RestoreUser(id, name, email, hash, role)
}

// RestoreUser rebuilds an account from persistence.
func RestoreUser(id kernel.UUID, name, email string, passwordHash []byte, role Role) (*User, error) {
	u := &User{isConstructed: true}
	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	u.passwordHash = passwordHash
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) PasswordHash() []byte { return u.passwordHash }

// Authenticate checks the plain password and returns the actor to act as.
func (u *User) Authenticate(password string) (Actor, error) {
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return Actor{}, ErrInvalidCredentials
	}
	return NewActor(u.id, u.role)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = strings.ToLower(addr.Address)
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
