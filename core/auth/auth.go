// Package auth checks the demo accounts. It is a placeholder gate, not a security boundary.
package auth

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ok1nam/demo-edp-final/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	sleepFunc = sleep // mockable
)

type Credentials struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Username = core.CleanString(c.Username, true /* lower */)
	return validate.Struct(c)
}

// HashPassword returns the bcrypt hash of pwd, as accepted in the demo accounts config.
func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hashing password")
	}
	return string(hash), nil
}

func isHash(pwd string) bool {
	_, err := bcrypt.Cost([]byte(pwd))
	return err == nil
}

type Service struct {
	hashes map[string][]byte
	delay  time.Duration
}

// NewService hashes the plain text passwords of accounts; bcrypt hashes are kept as is.
func NewService(accounts []core.DemoAccount, delay time.Duration) (*Service, error) {
	svc := &Service{hashes: make(map[string][]byte, len(accounts)), delay: delay}
	for _, acc := range accounts {
		hash := acc.Password
		if !isHash(hash) {
			var err error
			if hash, err = HashPassword(acc.Password); err != nil {
				return nil, err
			}
		}
		svc.hashes[core.CleanString(acc.Username, true)] = []byte(hash)
	}
	return svc, nil
}

// Authenticate checks creds after the simulated login delay.
func (svc *Service) Authenticate(ctx context.Context, creds Credentials) (core.Account, error) {
	if err := sleepFunc(ctx, svc.delay); err != nil {
		return core.Account{}, err
	}
	uname := core.CleanString(creds.Username, true)
	hash, ok := svc.hashes[uname]
	if !ok {
		return core.Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil {
		return core.Account{}, ErrInvalidCredentials
	}
	return core.Account{Username: uname}, nil
}

// Exists reports whether username is a configured account.
func (svc *Service) Exists(username string) bool {
	_, ok := svc.hashes[core.CleanString(username, true)]
	return ok
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
