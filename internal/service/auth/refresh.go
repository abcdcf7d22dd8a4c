package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/worklog-backend/internal/auth"
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// A token that is missing, revoked, or expired yields ErrUnauthorized; a
// missing token additionally logs a warning since it can indicate reuse.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() || token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Rotation is atomic: the presented token is revoked and the new one
	// stored in the same transaction, so a crash cannot leave the user with
	// zero valid refresh tokens.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.Revoke(ctx, hash); err != nil {
			return fmt.Errorf("auth.Refresh revoke token: %w", err)
		}

		result, err = s.issueTokens(ctx, user)
		if err != nil {
			return fmt.Errorf("auth.Refresh issue tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
