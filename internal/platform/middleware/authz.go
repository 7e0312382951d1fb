// Copyright (c) 2026 Caboomlog. All rights reserved.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/caboomlog/backend/internal/platform/apperr"
	"github.com/caboomlog/backend/internal/platform/constants"
	"github.com/caboomlog/backend/internal/platform/ctxutil"
	"github.com/caboomlog/backend/internal/platform/respond"
	"github.com/caboomlog/backend/internal/platform/sec"
)

// TokenVerifier verifies bearer tokens. Implemented by [*sec.TokenService].
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// OwnerAuthorizer answers whether a user owns a blog.
type OwnerAuthorizer interface {
	IsOwner(ctx context.Context, userID, blogID string) (bool, error)
}

// Authenticate verifies the optional 'Authorization: Bearer <token>' header.
//
// # Flow
//  1. No header: the request proceeds as anonymous.
//  2. Malformed header or invalid token: 401.
//  3. Valid token: [*sec.AuthClaims] are stored in the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_rejected",
					slog.String("error", err.Error()),
				)
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			if holder, ok := request.Context().Value(authHolderKey{}).(*authHolder); ok {
				holder.userID = claims.UserID
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireBlogOwner lets the request through only if the caller owns the blog named
// by the URL parameter param.
//
// # Flow
//  1. Anonymous caller: 401.
//  2. Ownership lookup fails: 500.
//  3. Caller is not ROLE_OWNER of the blog: 403.
func RequireBlogOwner(authorizer OwnerAuthorizer, param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			blogID := chi.URLParam(request, param)
			isOwner, err := authorizer.IsOwner(request.Context(), claims.UserID, blogID)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			if !isOwner {
				respond.Error(writer, request, apperr.Forbidden("Only the blog owner can manage categories"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
