package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie имя cookie с идентификатором сессии флоу
const SessionCookie = "cnap_session"

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Session выдает идентификатор сессии флоу.
// Если cookie нет, генерируется новый uuid и ставится cookie;
// идентификатор кладется в контекст запроса.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""

		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID возвращает идентификатор сессии из контекста запроса
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
