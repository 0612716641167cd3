package jwt

import (
	"context"
	"errors"
	"time"

	"user_center/be/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrUnexpectedJwtMethod = errors.New("unexpected jwt method")
	ErrJwtInvalid          = errors.New("jwt is invalid")
	ErrJwtExpired          = errors.New("jwt is expired")
)

const (
	logoutSentinel = "none"
	defaultCookie  = "token"
)

// Claims hold identity and expiry only. The subject's role is looked up
// from the live record at authorization time, never embedded here, so a
// role change takes effect before the token expires.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a signed session token for userID and returns it
// with its unix expiry.
func GenerateToken(ctx context.Context, userID string) (string, int64, error) {
	jwtConf := config.GetJWTConfig()
	exp := tokenExpiration(jwtConf)
	expAt := time.Now().Add(exp).Unix()

	jwtStr, err := generateToken(userID, exp, uuid.New().String(), jwtConf.SessionTokenSecret, jwtConf.Issuer)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate session token err: %v", err)
		return "", 0, err
	}

	return jwtStr, expAt, nil
}

// VerifyToken checks signature and expiry and returns the subject user id.
// Expired and otherwise-invalid tokens fail with distinct errors; callers
// collapse both to the same unauthenticated response.
func VerifyToken(tokenStr string) (string, error) {
	claims, err := validateToken(tokenStr, config.GetJWTConfig().SessionTokenSecret)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrJwtInvalid
	}
	return claims.Subject, nil
}

func generateToken(userID string, expiration time.Duration, tokenID, secret, issuer string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			ID:        tokenID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func validateToken(tokenStr, secret string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrHashUnavailable
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrHashUnavailable) {
			return nil, ErrUnexpectedJwtMethod
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrJwtExpired
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrJwtInvalid
		}
		return nil, err
	}
	if !token.Valid {
		return nil, ErrJwtInvalid
	}

	return &claims, nil
}

// CookieName is the client-visible cookie carrying the session token.
func CookieName() string {
	if name := config.GetJWTConfig().CookieName; name != "" {
		return name
	}
	return defaultCookie
}

func GetTokenFromCookie(c *app.RequestContext) string {
	token := string(c.Cookie(CookieName()))
	if token == logoutSentinel {
		return ""
	}
	return token
}

// SetTokenCookie places the token in an httpOnly cookie; the secure flag
// is only raised in the hardened deployment mode.
func SetTokenCookie(c *app.RequestContext, token string, expireAt int64) {
	conf := config.GetSessionConf()
	maxAge := int(expireAt - time.Now().Unix())

	c.SetCookie(
		CookieName(),
		token,
		maxAge,
		defaultString(conf.Path, "/"),
		conf.Domain,
		parseCookieSameSite(conf.SameSite),
		config.IsProdEnv(),
		true,
	)
}

// ClearTokenCookie overwrites the cookie with a sentinel that dies in
// seconds. Nothing is revoked server side.
func ClearTokenCookie(c *app.RequestContext) {
	conf := config.GetSessionConf()
	c.SetCookie(
		CookieName(),
		logoutSentinel,
		10,
		defaultString(conf.Path, "/"),
		conf.Domain,
		parseCookieSameSite(conf.SameSite),
		config.IsProdEnv(),
		true,
	)
}

func tokenExpiration(conf config.JWTConf) time.Duration {
	if conf.ExpirationDays > 0 {
		return time.Duration(conf.ExpirationDays) * 24 * time.Hour
	}

	return 30 * 24 * time.Hour
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseCookieSameSite(v string) protocol.CookieSameSite {
	switch v {
	case "Lax":
		return protocol.CookieSameSiteLaxMode
	case "None":
		return protocol.CookieSameSiteNoneMode
	case "Strict":
		fallthrough
	default:
		return protocol.CookieSameSiteStrictMode
	}
}
