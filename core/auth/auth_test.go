package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
)

func TestService_Authenticate(t *testing.T) {
	var slept []time.Duration
	orig := sleepFunc
	sleepFunc = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	defer func() { sleepFunc = orig }()

	hash, err := HashPassword("ecole123")
	require.NoError(t, err)

	svc, err := NewService([]core.DemoAccount{
		{Username: "admin", Password: "password"},
		{Username: "Directeur", Password: hash},
	}, time.Second)
	require.NoError(t, err)

	tests := []struct {
		name    string
		creds   Credentials
		want    core.Account
		wantErr error
	}{
		{name: "plain password", creds: Credentials{Username: "admin", Password: "password"}, want: core.Account{Username: "admin"}},
		{name: "hashed password", creds: Credentials{Username: " DIRECTEUR ", Password: "ecole123"}, want: core.Account{Username: "directeur"}},
		{name: "wrong password", creds: Credentials{Username: "admin", Password: "demo123"}, wantErr: ErrInvalidCredentials},
		{name: "unknown user", creds: Credentials{Username: "root", Password: "password"}, wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Authenticate(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Len(t, slept, len(tests))
	assert.Equal(t, time.Second, slept[0])
	assert.True(t, svc.Exists("Admin"))
	assert.False(t, svc.Exists("root"))
}

func TestSleep(t *testing.T) {
	assert.NoError(t, sleep(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, sleep(ctx, time.Hour))
}

func TestCredentials_Validate(t *testing.T) {
	validate, _ := core.NewValidator()
	c := Credentials{Username: " Admin "}
	assert.Error(t, c.Validate(validate))

	c.Password = "password"
	require.NoError(t, c.Validate(validate))
	assert.Equal(t, "admin", c.Username)
}
