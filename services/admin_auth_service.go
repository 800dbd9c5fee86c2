package services

import (
	"fmt"
	"log"
	"time"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts = 5
	lockoutWindow    = 15 * time.Minute
)

// AdminAuthService handles back-office credential checks and the Redis-backed
// login-attempt lockout.
type AdminAuthService struct{}

func NewAdminAuthService() *AdminAuthService {
	return &AdminAuthService{}
}

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks minimum password requirements (8+ characters)
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ════════════════════════════════════════════════════════════
// Login attempt tracking (Redis)
// ════════════════════════════════════════════════════════════

func attemptsKey(email string) string {
	return "admin:login_attempts:" + email
}

// IsLockedOut reports whether an account has exceeded the failed-login budget
// inside the lockout window.
func (s *AdminAuthService) IsLockedOut(email string) bool {
	count, err := config.RedisClient.Get(config.Ctx, attemptsKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// RecordFailedLogin increments the failure counter, starting the window on
// the first failure.
func (s *AdminAuthService) RecordFailedLogin(email string) {
	key := attemptsKey(email)
	count, err := config.RedisClient.Incr(config.Ctx, key).Result()
	if err != nil {
		log.Printf("❌ Failed to record login attempt for %s: %v", email, err)
		return
	}
	if count == 1 {
		config.RedisClient.Expire(config.Ctx, key, lockoutWindow)
	}
	if count >= maxLoginAttempts {
		log.Printf("⚠️  Admin account locked out after %d failed attempts: %s", count, email)
	}
}

// ClearFailedLogins resets the counter after a successful login.
func (s *AdminAuthService) ClearFailedLogins(email string) {
	if err := config.RedisClient.Del(config.Ctx, attemptsKey(email)).Err(); err != nil {
		log.Printf("❌ Failed to clear login attempts for %s: %v", email, err)
	}
}

// LockoutRemaining returns how long until the lockout window expires.
func (s *AdminAuthService) LockoutRemaining(email string) time.Duration {
	ttl, err := config.RedisClient.TTL(config.Ctx, attemptsKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminAuthService *AdminAuthService

// GetAdminAuthService returns the global admin auth service instance
func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = NewAdminAuthService()
	}
	return adminAuthService
}

func HashAdminPassword(password string) (string, error) {
	return GetAdminAuthService().HashPassword(password)
}

func VerifyAdminPassword(hash, password string) bool {
	return GetAdminAuthService().VerifyPassword(hash, password)
}

// LockoutMessage builds the user-facing lockout error.
func LockoutMessage(email string) string {
	remaining := GetAdminAuthService().LockoutRemaining(email)
	return fmt.Sprintf("Too many failed attempts, try again in %d minutes", int(remaining.Minutes())+1)
}
