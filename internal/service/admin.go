package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hemanth-Kumar-P/weekly/internal/models"
	"github.com/Hemanth-Kumar-P/weekly/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies admin credentials and returns a signed token on
// success. The boolean is false for any failure, without distinguishing
// an unknown phone from a wrong password.
func (s *Service) Authenticate(phone, password string) (string, bool) {
	admin, err := s.repo.FindAdminByPhone(phone)
	if err != nil {
		return "", false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", false
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", admin.ID),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		s.log.Errorf("Failed to sign token for admin %d: %v", admin.ID, err)
		return "", false
	}

	s.log.Infof("Admin logged in: %s", admin.Phone)
	return tokenString, true
}

// ChangePassword replaces an admin's password after verifying the current
// one. Returns false for any failure.
func (s *Service) ChangePassword(phone, currentPassword, newPassword string) bool {
	admin, err := s.repo.FindAdminByPhone(phone)
	if err != nil {
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.log.Errorf("Failed to hash new password for admin %d: %v", admin.ID, err)
		return false
	}
	admin.PasswordHash = string(hash)
	if err := s.repo.UpdateAdmin(admin); err != nil {
		s.log.Errorf("Failed to update password for admin %d: %v", admin.ID, err)
		return false
	}

	s.log.Infof("Password changed for admin %s", admin.Phone)
	return true
}

// EnsureDefaultAdmin creates the bootstrap admin account unless one with
// the configured phone already exists. Safe to call on every startup.
func (s *Service) EnsureDefaultAdmin() error {
	_, err := s.repo.FindAdminByPhone(s.config.AdminPhone)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	admin := &models.Admin{Phone: s.config.AdminPhone, PasswordHash: string(hash)}
	if err := s.repo.CreateAdmin(admin); err != nil {
		return err
	}

	s.log.Infof("Default admin created: %s", admin.Phone)
	return nil
}
