// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expenseflow/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	UserID       uuid.UUID
	RefreshToken string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
	cache        adapter.ListCache
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService, cache adapter.ListCache) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
		cache:        cache,
	}
}

// Execute performs the user logout by invalidating the refresh token. The
// session's cached lists are dropped with it: once the identity ends, no
// cached list may be reused by whoever signs in next.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	// Invalidate refresh token (ignore errors as the token might already be invalid)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	if input.UserID != uuid.Nil {
		if err := uc.cache.InvalidateUser(ctx, input.UserID); err != nil {
			slog.Warn("Cache invalidation on logout failed",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
