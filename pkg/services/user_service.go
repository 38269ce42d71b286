package services

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/dockhand/ent"
	"github.com/codeready-toolchain/dockhand/ent/authtoken"
	"github.com/codeready-toolchain/dockhand/ent/user"
	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/models"
)

const (
	tokenNonceLen = 24
	tokenMACLen   = 16
)

// UserService manages users and opaque bearer tokens.
//
// Tokens are nonce.mac pairs: the MAC (HMAC-SHA256 over the nonce, truncated)
// rejects forged tokens without touching the store, and only the SHA-256 hash
// of the full token is persisted.
type UserService struct {
	client   *ent.Client
	secret   []byte
	tokenTTL time.Duration
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client, tokenSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		client:   client,
		secret:   []byte(tokenSecret),
		tokenTTL: tokenTTL,
	}
}

// Authenticate upserts the user for an external identity claim, mutates
// last_login_at, and issues a fresh bearer token.
func (s *UserService) Authenticate(httpCtx context.Context, provider, providerAccountID, email, name, avatarURL string) (*models.AuthResult, error) {
	if provider == "" || providerAccountID == "" || email == "" {
		return nil, apierr.New(apierr.CodeInvalidIdentity, "provider, provider_account_id and email are required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	u, err := tx.User.Query().
		Where(user.ProviderEQ(provider), user.ProviderAccountIDEQ(providerAccountID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		builder := tx.User.Create().
			SetID(uuid.New().String()).
			SetProvider(provider).
			SetProviderAccountID(providerAccountID).
			SetEmail(email).
			SetLastLoginAt(now)
		if name != "" {
			builder.SetName(name)
		}
		if avatarURL != "" {
			builder.SetAvatarURL(avatarURL)
		}
		u, err = builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to query user: %w", err)
	default:
		update := u.Update().
			SetEmail(email).
			SetLastLoginAt(now)
		if name != "" {
			update.SetName(name)
		}
		if avatarURL != "" {
			update.SetAvatarURL(avatarURL)
		}
		u, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	token, err := s.issueToken()
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	_, err = tx.AuthToken.Create().
		SetID(uuid.New().String()).
		SetUserID(u.ID).
		SetTokenHash(hashToken(token)).
		SetExpiresAt(now.Add(s.tokenTTL)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.AuthResult{
		User:  userView(u),
		Token: token,
	}, nil
}

// Validate resolves a bearer token to its user. Revoked, expired, and
// malformed tokens all fail with unauthenticated; the caller never learns
// which.
func (s *UserService) Validate(ctx context.Context, token string) (*ent.User, error) {
	if !s.verifyFormat(token) {
		return nil, apierr.New(apierr.CodeUnauthenticated, "invalid token")
	}

	row, err := s.client.AuthToken.Query().
		Where(
			authtoken.TokenHashEQ(hashToken(token)),
			authtoken.RevokedAtIsNil(),
			authtoken.ExpiresAtGT(time.Now().UTC()),
		).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apierr.New(apierr.CodeUnauthenticated, "invalid token")
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	u := row.Edges.User
	if u == nil {
		return nil, apierr.New(apierr.CodeUnauthenticated, "invalid token")
	}
	return u, nil
}

// Revoke marks the presented token revoked. Idempotent: revoking a token
// twice (or an unknown token) is not an error.
func (s *UserService) Revoke(httpCtx context.Context, token string) error {
	if !s.verifyFormat(token) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.AuthToken.Update().
		Where(
			authtoken.TokenHashEQ(hashToken(token)),
			authtoken.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Get returns the user record by id.
func (s *UserService) Get(ctx context.Context, userID string) (*models.UserView, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	v := userView(u)
	return &v, nil
}

func (s *UserService) issueToken() (string, error) {
	nonce := make([]byte, tokenNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	mac := s.computeMAC(nonce)
	return base64.RawURLEncoding.EncodeToString(nonce) + "." +
		base64.RawURLEncoding.EncodeToString(mac), nil
}

// verifyFormat checks the HMAC without a store lookup, so forged tokens are
// rejected before they cost a query.
func (s *UserService) verifyFormat(token string) bool {
	nonceB64, macB64, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}
	nonce, err := base64.RawURLEncoding.DecodeString(nonceB64)
	if err != nil || len(nonce) != tokenNonceLen {
		return false
	}
	mac, err := base64.RawURLEncoding.DecodeString(macB64)
	if err != nil || len(mac) != tokenMACLen {
		return false
	}
	return subtle.ConstantTimeCompare(mac, s.computeMAC(nonce)) == 1
}

func (s *UserService) computeMAC(nonce []byte) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write(nonce)
	return h.Sum(nil)[:tokenMACLen]
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func userView(u *ent.User) models.UserView {
	v := models.UserView{
		UserID:      u.ID,
		Provider:    u.Provider,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.AvatarURL != nil {
		v.AvatarURL = *u.AvatarURL
	}
	return v
}
