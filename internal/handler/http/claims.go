package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/auth"
	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
)

// currentUserID pulls the authenticated user's id from the verified token
// claims. Handlers behind AuthRequired can rely on it being present.
func currentUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

func isAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	role, ok := claims["role"].(string)
	return ok && role == string(user.RoleAdmin)
}

// queryInt reads an integer query parameter, falling back when absent or
// malformed. Out-of-range values are the services' problem: they clamp.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// yearMonthParams reads year/month query parameters, defaulting to the
// current UTC month.
func yearMonthParams(r *http.Request) (year, month int) {
	now := time.Now().UTC()
	return queryInt(r, "year", now.Year()), queryInt(r, "month", int(now.Month()))
}
