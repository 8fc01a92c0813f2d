package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"tablemenu/internal/domain"
	"tablemenu/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates opaque manager tokens. Token lookups hit
// the cache first so the tracking interceptor stays cheap.
type AuthService struct {
	repo      AuthRepository
	cache     TokenCache
	publisher ActivityPublisher
}

func NewAuthService(repo AuthRepository, cache TokenCache, publisher ActivityPublisher) *AuthService {
	return &AuthService{repo: repo, cache: cache, publisher: publisher}
}

// Login checks the credentials and returns a fresh opaque token.
func (s *AuthService) Login(ctx context.Context, username, password, ip string) (*domain.Token, *domain.Manager, error) {
	if username == "" || password == "" {
		return nil, nil, invalid("username", "username and password are required")
	}

	manager, err := s.repo.GetManagerByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	key, err := newTokenKey()
	if err != nil {
		return nil, nil, err
	}
	token := &domain.Token{Key: key, ManagerID: manager.ID}
	if err := s.repo.InsertToken(token); err != nil {
		return nil, nil, err
	}
	if s.cache != nil {
		if err := s.cache.CacheToken(ctx, key, manager.ID); err != nil {
			log.Printf("[auth] failed to cache token: %v", err)
		}
	}

	s.publish(ctx, domain.NewActivityEvent(domain.ActivityLogin, domain.ManagerActor(manager.ID), map[string]string{
		"ip_address": ip,
		"auth_type":  "token",
	}))
	return token, manager, nil
}

// Logout revokes a token. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, key, ip string) error {
	managerID, ok := s.ValidateToken(ctx, key)

	if _, err := s.repo.DeleteToken(key); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.DropToken(ctx, key); err != nil {
			log.Printf("[auth] failed to drop cached token: %v", err)
		}
	}

	if ok {
		s.publish(ctx, domain.NewActivityEvent(domain.ActivityLogout, domain.ManagerActor(managerID), map[string]string{
			"ip_address": ip,
			"auth_type":  "token",
		}))
	}
	return nil
}

// ValidateToken resolves a token key to a manager id, cache first.
func (s *AuthService) ValidateToken(ctx context.Context, key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	if s.cache != nil {
		if managerID, ok := s.cache.GetCachedToken(ctx, key); ok {
			return managerID, true
		}
	}

	token, err := s.repo.GetToken(key)
	if err != nil {
		return 0, false
	}
	if s.cache != nil {
		if err := s.cache.CacheToken(ctx, key, token.ManagerID); err != nil {
			log.Printf("[auth] failed to cache token: %v", err)
		}
	}
	return token.ManagerID, true
}

// Bootstrap creates the initial manager account when it does not exist yet.
func (s *AuthService) Bootstrap(username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if _, err := s.repo.GetManagerByUsername(username); err == nil {
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := &domain.Manager{Username: username, PasswordHash: string(hash)}
	if err := s.repo.CreateManager(manager); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil
		}
		return err
	}
	log.Printf("[auth] bootstrapped manager account %q", username)
	return nil
}

func newTokenKey() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

func (s *AuthService) publish(ctx context.Context, event domain.ActivityEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishActivity(ctx, event); err != nil {
		log.Printf("[auth] failed to publish %s event: %v", event.Type, err)
	}
}
