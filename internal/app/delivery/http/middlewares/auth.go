package middlewares

import (
	"context"
	"net/http"
	"strings"

	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"
)

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionData, err := m.AuthUsecase.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		ctx = context.WithValue(ctx, constvars.CONTEXT_TENANT_ID_KEY, sessionData.TenantID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles allows the request through only when the session role is one
// of the listed roles. It must sit behind Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, err := utils.SessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			for _, role := range roles {
				if sessionData.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
		})
	}
}
