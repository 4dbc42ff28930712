// File: services/staff/auth.go
package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kycdesk/utils"

	"golang.org/x/crypto/bcrypt"

	"kycdesk/models"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// the login surface never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenValidity = 12 * time.Hour

// Authenticate verifies the staff credentials, issues an HS256 token and
// caches its hash in the auth cache DB for middleware validation.
func (s *DefaultStaffService) Authenticate(email, password string) (*models.StaffUser, string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("staff lookup failed: %w", err)
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateStaffToken(u.ID, string(u.Role), u.AgencyID, tokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + u.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), tokenValidity).Err(); err != nil {
		return nil, "", fmt.Errorf("failed to cache token hash: %w", err)
	}

	return u, token, nil
}

// Logout revokes the cached token hash; the token dies even before exp.
func (s *DefaultStaffService) Logout(staffID string) error {
	ctx := context.Background()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+staffID).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// GetByID retrieves a staff user.
func (s *DefaultStaffService) GetByID(id string) (*models.StaffUser, error) {
	return s.Repo.GetByID(id)
}
