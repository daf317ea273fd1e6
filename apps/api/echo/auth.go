package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/auth"
)

const (
	contextTokenKey = "userToken"
	tokenAudience   = "EDP"
)

var nowFunc = time.Now // mockable

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	OrigIssuedAt int64  `json:"oriat,omitempty"`
	Username     string `json:"username,omitempty"`
}

type (
	LoginResponse struct {
		Token    string `json:"token"`
		Username string `json:"username,omitempty"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

type tokenIssuer struct {
	config                 middleware.JWTConfig
	issuer                 string
	expirationDelta        time.Duration
	refreshExpirationDelta time.Duration
}

func newTokenIssuer(conf *core.Config) tokenIssuer {
	return tokenIssuer{
		config: middleware.JWTConfig{
			SigningKey:    []byte(conf.SecretKey),
			SigningMethod: middleware.AlgorithmHS256,
			ContextKey:    contextTokenKey,
			Claims:        new(Claims),
		},
		issuer:                 conf.AppName,
		expirationDelta:        conf.Server.JWTExpirationDelta,
		refreshExpirationDelta: conf.Server.JWTRefreshExpirationDelta,
	}
}

// queryConfig reads the token from the "token" query param.
func (ti tokenIssuer) queryConfig() middleware.JWTConfig {
	cfg := ti.config
	cfg.TokenLookup = "query:token"
	return cfg
}

func (ti tokenIssuer) claims(acc core.Account, origIat ...int64) *Claims {
	now := nowFunc()
	nownix := now.Unix()

	oriat := nownix
	if len(origIat) > 0 {
		oriat = origIat[0]
	}

	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    ti.issuer,
			Subject:   acc.Username,
			Audience:  tokenAudience,
			ExpiresAt: now.Add(ti.expirationDelta).Unix(),
			IssuedAt:  nownix,
		},
		OrigIssuedAt: oriat,
		Username:     acc.Username,
	}
}

// generate signs the claims.
func (ti tokenIssuer) generate(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(ti.config.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(ti.config.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

// GenerateToken returns a signed JWT for acc, as issued by a successful login.
func GenerateToken(conf *core.Config, acc core.Account) (string, error) {
	ti := newTokenIssuer(conf)
	return ti.generate(ti.claims(acc))
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextAccount(ctx echo.Context) core.Account {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return core.Account{}
	}
	return core.Account{Username: claims.Username}
}

type authApi struct {
	svc      *auth.Service
	tokens   tokenIssuer
	validate *validator.Validate
}

func registerAuthAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *auth.Service,
	tokens tokenIssuer,
	validate *validator.Validate,
) {
	api := authApi{
		svc:      svc,
		tokens:   tokens,
		validate: validate,
	}

	// TODO: rate limit `/login` once accounts stop being demo ones
	g.POST("/login", api.login)
	g.POST("/token-refresh", api.refreshToken, jwt)
}

func (api *authApi) login(ctx echo.Context) error {
	var data auth.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	acc, err := api.svc.Authenticate(ctx.Request().Context(), data)
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			return core.NewValidationError(err)
		}
		return errors.Wrap(err, "authenticating")
	}
	token, err := api.tokens.generate(api.tokens.claims(acc))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Username: acc.Username})
}

func (api *authApi) refreshToken(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	// check if the account still exists
	if !api.svc.Exists(claims.Username) {
		return errUnauthorized
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(api.tokens.refreshExpirationDelta)
	if nowFunc().After(expTime) {
		return errRefreshExpired
	}

	acc := core.Account{Username: claims.Username}
	token, err := api.tokens.generate(api.tokens.claims(acc, claims.OrigIssuedAt))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Username: acc.Username})
}
