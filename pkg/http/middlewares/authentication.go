package middlewares

import (
	"net/http"

	"go.uber.org/zap"

	httputil "github.com/soapboxsocial/stories/pkg/http"
	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/sessions"
)

type AuthenticationHandler struct {
	sm *sessions.SessionManager
}

func NewAuthenticationMiddleware(sm *sessions.SessionManager) *AuthenticationHandler {
	return &AuthenticationHandler{
		sm: sm,
	}
}

func (h AuthenticationHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		token := req.Header.Get("Authorization")
		if token == "" {
			httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
			return
		}

		id, err := h.sm.GetUserIDForSession(token)
		if err != nil || id == 0 {
			logger.Log.Debug("session lookup failed", zap.Error(err))
			httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
			return
		}

		r := req.WithContext(httputil.WithUserID(req.Context(), id))

		next.ServeHTTP(w, r)
	})
}
