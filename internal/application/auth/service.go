package auth

import "time"

type Service struct {
	ids    IdentityService
	hasher PasswordHasher
	signer TokenSigner

	accessTTL time.Duration
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(ids IdentityService, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Service{
		ids:       ids,
		hasher:    hasher,
		signer:    signer,
		accessTTL: ttl,
	}
}

// SignInResult is the token output for handlers/DTO mapping.
type SignInResult struct {
	Token string
}
