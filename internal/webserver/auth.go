package webserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/talkincode/restopos/internal/dashboard"
)

const tokenContextKey = "user"

// OperatorClaims are the session token claims
type OperatorClaims struct {
	Username  string     `json:"username"`
	FullName  string     `json:"full_name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	License   string     `json:"license,omitempty"`
	Company   string     `json:"company,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	jwt.RegisteredClaims
}

func (c *OperatorClaims) Operator() dashboard.Operator {
	return dashboard.Operator{
		Username:  c.Username,
		FullName:  c.FullName,
		Email:     c.Email,
		Role:      c.Role,
		License:   c.License,
		Company:   c.Company,
		LastLogin: c.LastLogin,
	}
}

// IssueToken signs an HS256 session token for op valid for ttl
func IssueToken(secret string, op dashboard.Operator, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}
	now := time.Now()
	claims := &OperatorClaims{
		Username:  op.Username,
		FullName:  op.FullName,
		Email:     op.Email,
		Role:      op.Role,
		License:   op.License,
		Company:   op.Company,
		LastLogin: op.LastLogin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// CurrentOperator returns the operator of the authenticated request
func CurrentOperator(c echo.Context) (dashboard.Operator, bool) {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok || token == nil {
		return dashboard.Operator{}, false
	}
	claims, ok := token.Claims.(*OperatorClaims)
	if !ok {
		return dashboard.Operator{}, false
	}
	return claims.Operator(), true
}

func jwtMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		ContextKey: tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(OperatorClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "Missing or invalid session token",
			})
		},
	})
}
