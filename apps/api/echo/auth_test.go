package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
)

func Test_home(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to "+conf.AppName+" API!", rec.Body.String())
}

func Test_authApi_login(t *testing.T) {
	tests := []httpTest{
		{
			name:     "empty body",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username":"username is required","password":"password is required"}`),
		},
		{
			name:     "blank username",
			body:     []byte(`{"username":"   ","password":"password"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username":"username is required"}`),
		},
		{
			name:     "wrong password",
			body:     []byte(`{"username":"admin","password":"nope"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid username or password"}),
		},
		{
			name:     "unknown account",
			body:     []byte(`{"username":"expert-comptable","password":"demo123"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid username or password"}),
		},
		{
			name:     "ok",
			body:     []byte(`{"username":" Admin ","password":"password"}`),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/login"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			// cannot guess the token.. just check that it's not empty
			if tt.wantCode == http.StatusOK {
				require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
				var respData LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respData))
				assert.NotEmpty(t, respData.Token)
				assert.Equal(t, "admin", respData.Username)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_authApi_refreshToken(t *testing.T) {
	defer func() { nowFunc = time.Now }()

	// issued 5h ago: still valid but past the refresh window
	nowFunc = func() time.Time { return time.Now().Add(-5 * time.Hour) }
	unrefreshable := getToken(t, "admin")
	nowFunc = time.Now

	tests := []httpTest{
		{
			name:     "missing token",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "invalid token",
			token:    "not-a-jwt",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"}),
		},
		{
			name:     "unknown account",
			token:    getToken(t, "ghost"),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "user not authenticated"}),
		},
		{
			name:     "refresh expired",
			token:    unrefreshable,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "refresh has expired"}),
		},
		{
			name:     "ok",
			token:    getToken(t, "directeur"),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/token-refresh"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusOK {
				require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
				var respData LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respData))
				assert.NotEmpty(t, respData.Token)
				assert.Equal(t, "directeur", respData.Username)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_routesRequireToken(t *testing.T) {
	paths := []string{
		"/v1/pages",
		"/v1/business-plan",
		"/v1/rentability",
		"/v1/locations",
		"/v1/partnerships",
		"/v1/subsidies",
		"/v1/training",
		"/v1/pedagogy",
		"/v1/questionnaire",
		"/v1/dashboard",
		"/v1/downloads/template.xlsx",
		"/v1/events",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
		})
	}
}

func Test_getContextAccount_anonymous(t *testing.T) {
	ctx := app.app.NewContext(newRequest(http.MethodGet, "/"))
	assert.Equal(t, core.Account{}, getContextAccount(ctx))
}
