package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/store"
	"github.com/MKhiriev/recipe-manager/internal/utils"
	"github.com/MKhiriev/recipe-manager/models"
	"github.com/google/uuid"
)

// userService implements UserService. Every mutation is self-or-nothing:
// the acting identity must match the target account, otherwise the call
// fails with ErrNotAccountOwner before any storage access.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the account with the given external id.
// A malformed id is reported as ErrInvalidUserID, never as a driver error.
func (u *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return models.User{}, ErrInvalidUserID
	}

	return u.userRepository.FindUserByID(ctx, userID)
}

// ListUsers returns all registered accounts.
// Password digests never leave the service: they are excluded from JSON
// serialization at the model level.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

// UpdateUser applies a partial profile patch to the target account.
//
// Rules:
//   - actor must be the target account (ErrNotAccountOwner otherwise);
//   - changing the password requires the current password: absent →
//     ErrCurrentPasswordRequired, mismatch → ErrCurrentPasswordIncorrect;
//   - a new password must satisfy the minimum length;
//   - an email change can collide with another account, surfacing
//     store.ErrEmailAlreadyExists.
func (u *userService) UpdateUser(ctx context.Context, actor models.Identity, targetID string, patch models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := uuid.Parse(targetID)
	if err != nil {
		return models.User{}, ErrInvalidUserID
	}

	if actor.UserID != userID {
		log.Warn().
			Str("actor", actor.UserID.String()).
			Str("target", userID.String()).
			Msg("rejected update of another user's account")
		return models.User{}, ErrNotAccountOwner
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup for update failed: %w", err)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}

	if patch.Password != nil {
		if patch.CurrentPassword == nil || *patch.CurrentPassword == "" {
			return models.User{}, ErrCurrentPasswordRequired
		}
		if !utils.VerifyPassword(*patch.CurrentPassword, user.PasswordHash) {
			log.Debug().Str("id", userID.String()).Msg("current password mismatch on password change")
			return models.User{}, ErrCurrentPasswordIncorrect
		}
		if len(*patch.Password) < minPasswordLength {
			return models.User{}, ErrPasswordTooShort
		}

		digest, err := utils.HashPassword(*patch.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = digest
	}

	updated, err := u.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("id", userID.String()).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the target account. Self-or-nothing, like UpdateUser.
// Recipes owned by the account are left orphaned on purpose: there is no
// cascade in the data model.
func (u *userService) DeleteUser(ctx context.Context, actor models.Identity, targetID string) error {
	log := logger.FromContext(ctx)

	userID, err := uuid.Parse(targetID)
	if err != nil {
		return ErrInvalidUserID
	}

	if actor.UserID != userID {
		log.Warn().
			Str("actor", actor.UserID.String()).
			Str("target", userID.String()).
			Msg("rejected deletion of another user's account")
		return ErrNotAccountOwner
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("id", userID.String()).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
