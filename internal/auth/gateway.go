// Package auth orchestrates registration, login, token refresh, logout and
// request authentication. It composes the credential hasher, token codec,
// session issuer and revocation store; user records live behind the
// user.Store collaborator.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/webimagedrive/gallery/internal/apperr"
	"github.com/webimagedrive/gallery/internal/auth/authctx"
	"github.com/webimagedrive/gallery/internal/auth/password"
	"github.com/webimagedrive/gallery/internal/auth/revocation"
	"github.com/webimagedrive/gallery/internal/auth/session"
	"github.com/webimagedrive/gallery/internal/auth/token"
	"github.com/webimagedrive/gallery/internal/logger"
	"github.com/webimagedrive/gallery/internal/user"
)

// DefaultRole is assigned to registrations that do not name a role.
const DefaultRole = "user"

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Gateway is the authentication core. All dependencies are injected at
// construction so tests run against isolated instances.
type Gateway struct {
	users  user.Store
	hasher password.Hasher
	codec  *token.Codec
	issuer *session.Issuer
	tokens revocation.Store
	log    *logger.Logger
}

// NewGateway creates an auth gateway from its collaborators.
func NewGateway(users user.Store, hasher password.Hasher, codec *token.Codec, tokens revocation.Store, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Gateway{
		users:  users,
		hasher: hasher,
		codec:  codec,
		issuer: session.NewIssuer(codec, tokens),
		tokens: tokens,
		log:    log.WithComponent("auth"),
	}
}

// Register creates a new user with a hashed password. Fails with
// DuplicateUser if the username is taken (case-sensitive exact match).
func (g *Gateway) Register(ctx context.Context, username, pass, role string) (authctx.Principal, error) {
	if role == "" {
		role = DefaultRole
	}

	existing, err := g.users.FindByUsername(ctx, username)
	if err != nil {
		return authctx.Principal{}, apperr.StoreUnavailable("user", err)
	}
	if existing != nil {
		return authctx.Principal{}, apperr.DuplicateUser(username)
	}

	hash, err := g.hasher.Hash(pass)
	if err != nil {
		return authctx.Principal{}, apperr.Internal(err)
	}

	created, err := g.users.Create(ctx, username, hash, role)
	if err != nil {
		return authctx.Principal{}, apperr.StoreUnavailable("user", err)
	}

	g.log.Info("user registered", logger.Fields(
		logger.FieldUserID, created.ID,
		"role", created.Role,
	))
	return authctx.Principal{ID: created.ID, Role: created.Role}, nil
}

// Login verifies credentials and issues one access and one refresh token.
// Unknown user and wrong password are indistinguishable to the caller.
func (g *Gateway) Login(ctx context.Context, username, pass string) (TokenPair, error) {
	u, err := g.users.FindByUsername(ctx, username)
	if err != nil {
		return TokenPair{}, apperr.StoreUnavailable("user", err)
	}
	if u == nil {
		return TokenPair{}, apperr.InvalidCredentials()
	}
	if err := g.hasher.Verify(pass, u.PasswordHash); err != nil {
		return TokenPair{}, apperr.InvalidCredentials()
	}

	p := authctx.Principal{ID: u.ID, Role: u.Role}
	access, err := g.issuer.Access(p)
	if err != nil {
		return TokenPair{}, apperr.Internal(err)
	}
	refresh, err := g.issuer.Refresh(ctx, p)
	if err != nil {
		return TokenPair{}, apperr.StoreUnavailable("revocation", err)
	}

	g.log.Info("login succeeded", logger.Fields(logger.FieldUserID, u.ID))
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a live refresh token and mints a fresh access token.
// The refresh token itself is unchanged and remains usable until logout or
// expiry.
func (g *Gateway) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := g.validateRefresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	p, err := claims.Principal()
	if err != nil {
		return "", apperr.InvalidToken().WithCause(err)
	}
	access, err := g.issuer.Access(p)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return access, nil
}

// Logout revokes the refresh token. A second logout on the same token fails
// with RevokedToken since the revalidation no longer finds a live entry.
func (g *Gateway) Logout(ctx context.Context, refreshToken string) error {
	claims, err := g.validateRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}
	if err := g.tokens.Revoke(ctx, claims.ID); err != nil {
		return apperr.StoreUnavailable("revocation", err)
	}
	g.log.Info("refresh token revoked", logger.Fields(logger.FieldTokenID, claims.ID))
	return nil
}

// validateRefresh decodes the token, checks its type and consults the
// revocation store for liveness.
func (g *Gateway) validateRefresh(ctx context.Context, refreshToken string) (*token.Claims, error) {
	if refreshToken == "" {
		return nil, apperr.MissingToken()
	}
	claims, err := g.codec.Decode(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			g.log.WithError(err).Debug("refresh token expired")
		}
		return nil, apperr.InvalidToken().WithCause(err)
	}
	if claims.Type != token.TypeRefresh {
		return nil, apperr.InvalidToken()
	}
	live, err := g.tokens.IsLive(ctx, claims.ID)
	if err != nil {
		return nil, apperr.StoreUnavailable("revocation", err)
	}
	if !live {
		return nil, apperr.RevokedToken()
	}
	return claims, nil
}

// Authenticate validates a bearer header and returns the principal. If
// requiredRole is non-empty the principal's role must match it exactly.
// Called explicitly at the top of protected handlers.
func (g *Gateway) Authenticate(bearerHeader, requiredRole string) (authctx.Principal, error) {
	tokenString, ok := strings.CutPrefix(bearerHeader, "Bearer ")
	if !ok || tokenString == "" {
		return authctx.Principal{}, apperr.MissingToken()
	}
	claims, err := g.codec.Decode(tokenString)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			g.log.WithError(err).Debug("access token expired")
		}
		return authctx.Principal{}, apperr.InvalidToken().WithCause(err)
	}
	if claims.Type != token.TypeAccess {
		return authctx.Principal{}, apperr.InvalidToken()
	}
	p, err := claims.Principal()
	if err != nil {
		return authctx.Principal{}, apperr.InvalidToken().WithCause(err)
	}
	if requiredRole != "" && p.Role != requiredRole {
		return authctx.Principal{}, apperr.InsufficientRole(requiredRole)
	}
	return p, nil
}
