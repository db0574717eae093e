package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientnudge/invoicing/internal/entity"
)

// ProvisionUser loads the user behind a verified token, creating the row on
// first sight. Token issuance lives outside this service, so a valid token
// for an unknown user means a fresh signup.
func (s *Service) ProvisionUser(ctx context.Context, id uuid.UUID, email, fullName string) (entity.User, error) {
	user, err := s.repo.User(ctx, id)
	switch {
	case err == nil:
		return user, nil
	case !errors.Is(err, entity.ErrNotFound):
		return entity.User{}, fmt.Errorf("get user %s: %w", id, err)
	}

	user = entity.User{
		ID:                 id,
		Email:              email,
		FullName:           fullName,
		BaseCurrency:       "USD",
		Plan:               entity.PlanFree,
		SubscriptionStatus: entity.SubscriptionStateActive,
		CreatedAt:          time.Now(),
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user %s: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Provisioned user %s (%s)", id, email))

	return user, nil
}
