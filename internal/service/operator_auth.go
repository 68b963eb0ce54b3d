package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"elevator_dispatch/internal/models"
	"elevator_dispatch/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = time.Hour
	tokenIssuer     = "elevator-dispatch"
)

// Domain errors for operator auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrOperatorUnknown = errors.New("operator not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrNotDispatcher   = errors.New("operator role may not dispatch the car")
	ErrOperatorExists  = repository.ErrOperatorExists

	errInvalidRole   = errors.New("invalid role: must be dispatcher or observer")
	errEmptyName     = errors.New("operator name is empty")
	errEmptyPassword = errors.New("password is empty")
)

// AuthConfig carries the operator token settings loaded from config.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// AuthService registers operators and issues role-bearing tokens.
type AuthService struct {
	repo       repository.OperatorRepo
	signingKey []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(repo repository.OperatorRepo, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{repo: repo, signingKey: []byte(cfg.SigningKey), tokenTTL: ttl, now: time.Now}
}

// operatorClaims carries the operator name in sub and its role.
type operatorClaims struct {
	jwt.RegisteredClaims
	OperatorID int    `json:"oid"`
	Role       string `json:"role"`
}

// Register creates an operator. An empty role means dispatcher.
func (s *AuthService) Register(ctx context.Context, name, password, role string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errEmptyName
	}
	role, err := normalizeRole(role)
	if err != nil {
		return 0, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, models.Operator{Name: name, Role: role, PasswordHash: hash})
}

// IssueToken checks the credentials and signs a token for the operator.
func (s *AuthService) IssueToken(ctx context.Context, name, password string) (string, error) {
	op, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return "", err
	}
	if op == nil {
		return "", ErrOperatorUnknown
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return s.sign(*op)
}

// ParseToken verifies the signature and expiry and returns the operator the
// token was issued to.
func (s *AuthService) ParseToken(accessToken string) (models.Operator, error) {
	var claims operatorClaims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Operator{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !knownRole(claims.Role) || claims.Subject == "" {
		return models.Operator{}, fmt.Errorf("%w: bad operator claims", ErrInvalidToken)
	}
	return models.Operator{ID: claims.OperatorID, Name: claims.Subject, Role: claims.Role}, nil
}

func (s *AuthService) sign(op models.Operator) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &operatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   op.Name,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OperatorID: op.ID,
		Role:       op.Role,
	})
	return token.SignedString(s.signingKey)
}

func normalizeRole(role string) (string, error) {
	switch r := strings.ToLower(strings.TrimSpace(role)); r {
	case "":
		return models.RoleDispatcher, nil
	case models.RoleDispatcher, models.RoleObserver:
		return r, nil
	default:
		return "", errInvalidRole
	}
}

func knownRole(role string) bool {
	return role == models.RoleDispatcher || role == models.RoleObserver
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

type operatorCtxKey struct{}

// WithOperator attaches the authenticated operator to ctx.
func WithOperator(ctx context.Context, op models.Operator) context.Context {
	return context.WithValue(ctx, operatorCtxKey{}, op)
}

// OperatorFrom returns the operator attached by WithOperator.
func OperatorFrom(ctx context.Context) (models.Operator, bool) {
	op, ok := ctx.Value(operatorCtxKey{}).(models.Operator)
	return op, ok
}
