package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/pkg/logger"
	"github.com/samandr77/microservices/dashboard/pkg/transport"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

const accessTokenCookie = "accessToken"

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type AuthService interface {
	User(ctx context.Context, token string) (entity.User, error)
}

type Middleware struct {
	auth      AuthService
	extractor request.Extractor
}

func NewMiddleware(auth AuthService) *Middleware {
	return &Middleware{
		auth: auth,
		extractor: request.MultiExtractor{
			request.BearerExtractor{},
			cookieExtractor(accessTokenCookie),
		},
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(transport.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), requestID)
		w.Header().Set(transport.RequestIDHeader, requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"method", r.Method,
				"url", r.URL.Redacted(),
				"headers", headers.String(),
				"user_ip", r.RemoteAddr,
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				http.Error(w, errInternalText, http.StatusInternalServerError)
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, HX-Request, HX-Target, HX-Current-URL")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := entity.SetIPToContext(r.Context(), clientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth resolves the caller from the bearer token or the access token cookie.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := m.extractor.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "인증 토큰이 없습니다")
			return
		}

		user, err := m.auth.User(ctx, accessToken)
		if err != nil {
			if errors.Is(err, entity.ErrUnauthorized) {
				SendErr(ctx, w, http.StatusUnauthorized, err, "유효하지 않은 토큰입니다")
			} else {
				SendErr(ctx, w, http.StatusInternalServerError, err, "인증 중 오류가 발생했습니다")
			}

			return
		}

		if user.IsBlocked {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "차단된 사용자입니다")
			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)
		ctx = entity.SetTokenToContext(ctx, accessToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CanManageClients guards the routes that change clients.
func (m *Middleware) CanManageClients(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := entity.UserFromContext(ctx)
		if err != nil || !user.CanManageClients() {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "권한이 없습니다")
			return
		}

		next.ServeHTTP(w, r)
	})
}

type cookieExtractor string

func (e cookieExtractor) ExtractToken(r *http.Request) (string, error) {
	c, err := r.Cookie(string(e))
	if err != nil || c.Value == "" {
		return "", request.ErrNoTokenInRequest
	}

	return c.Value, nil
}

// clientIP prefers the first X-Forwarded-For hop set by the ingress.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		ip, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(ip)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
