package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sop_inventory/internal/auth"
	"sop_inventory/internal/cache"
	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCode        = errors.New("invalid two-factor code")
	ErrEmailExists        = errors.New("email already registered")
	ErrUnknownRole        = errors.New("unknown role")
	ErrEnrollmentExpired  = errors.New("enrollment not found or expired")
)

// AuthResult is what a successful password check yields. When the account has
// two-factor enabled, Token is a pending token that only unlocks the TOTP
// verification endpoint and TwoFactorRequired is set.
type AuthResult struct {
	Token             string
	TwoFactorRequired bool
	User              *models.User
}

type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	// CompleteTwoFactorLogin exchanges a pending session and a valid TOTP code
	// for a full token.
	CompleteTwoFactorLogin(ctx context.Context, userID uint, code string) (string, error)
	ExtendToken(claims *auth.Claims) (string, error)

	BeginTwoFactorEnrollment(ctx context.Context, userID uint) (string, *auth.TOTPEnrollment, error)
	CompleteTwoFactorEnrollment(ctx context.Context, userID uint, enrollmentID, code string) error

	CreateUser(ctx context.Context, user *models.User, email, password, roleName string) error
	UpdateUserEmail(ctx context.Context, user *models.User, email string) error
	// Email returns the decrypted address for response assembly.
	Email(user *models.User) (string, error)
}

type authService struct {
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	jwt       *auth.JWTManager
	cipher    *auth.EmailCipher
	cache     *cache.Client
	issuer    string
	enrollTTL time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwt *auth.JWTManager,
	cipher *auth.EmailCipher,
	cacheClient *cache.Client,
	issuer string,
	enrollTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		jwt:       jwt,
		cipher:    cipher,
		cache:     cacheClient,
		issuer:    issuer,
		enrollTTL: enrollTTL,
	}
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmailFingerprint(ctx, s.cipher.Fingerprint(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	if user.TwoFactorEnabled {
		token, err := s.jwt.GeneratePending(user.ID, email, roleName)
		if err != nil {
			return nil, err
		}
		return &AuthResult{Token: token, TwoFactorRequired: true, User: user}, nil
	}

	token, err := s.jwt.Generate(user.ID, email, roleName)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *authService) CompleteTwoFactorLogin(ctx context.Context, userID uint, code string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil || user.TwoFactorSecret == nil {
		return "", ErrInvalidCode
	}
	if !auth.ValidateTOTP(code, *user.TwoFactorSecret) {
		return "", ErrInvalidCode
	}

	email, err := s.cipher.Decrypt(user.EncryptedEmail)
	if err != nil {
		return "", err
	}
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	return s.jwt.Generate(user.ID, email, roleName)
}

func (s *authService) ExtendToken(claims *auth.Claims) (string, error) {
	if claims.Pending {
		return "", auth.ErrInvalidToken
	}
	return s.jwt.Generate(claims.UserID, claims.Email, claims.Role)
}

func (s *authService) BeginTwoFactorEnrollment(ctx context.Context, userID uint) (string, *auth.TOTPEnrollment, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, fmt.Errorf("user %d not found", userID)
	}

	email, err := s.cipher.Decrypt(user.EncryptedEmail)
	if err != nil {
		return "", nil, err
	}

	enrollment, err := auth.NewTOTPEnrollment(s.issuer, email)
	if err != nil {
		return "", nil, err
	}

	// Park the secret until the user proves they scanned it.
	enrollmentID := uuid.NewString()
	err = s.cache.SetEnrollment(ctx, enrollmentID, &cache.Enrollment{
		UserID:    userID,
		Secret:    enrollment.Secret,
		CreatedAt: time.Now().UTC(),
	}, s.enrollTTL)
	if err != nil {
		return "", nil, err
	}

	return enrollmentID, enrollment, nil
}

func (s *authService) CompleteTwoFactorEnrollment(ctx context.Context, userID uint, enrollmentID, code string) error {
	pending, err := s.cache.GetEnrollment(ctx, enrollmentID)
	if err == cache.ErrNotFound {
		return ErrEnrollmentExpired
	}
	if err != nil {
		return err
	}
	if pending.UserID != userID {
		return ErrEnrollmentExpired
	}
	if !auth.ValidateTOTP(code, pending.Secret) {
		return ErrInvalidCode
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %d not found", userID)
	}

	secret := pending.Secret
	user.TwoFactorSecret = &secret
	user.TwoFactorEnabled = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.cache.DeleteEnrollment(ctx, enrollmentID)
}

func (s *authService) CreateUser(ctx context.Context, user *models.User, email, password, roleName string) error {
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrUnknownRole
	}

	existing, err := s.userRepo.GetByEmailFingerprint(ctx, s.cipher.Fingerprint(email))
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	encrypted, err := s.cipher.Encrypt(email)
	if err != nil {
		return err
	}

	user.RoleID = role.ID
	user.PasswordHash = hash
	user.EncryptedEmail = encrypted
	user.EmailFingerprint = s.cipher.Fingerprint(email)
	return s.userRepo.Create(ctx, user)
}

func (s *authService) UpdateUserEmail(ctx context.Context, user *models.User, email string) error {
	encrypted, err := s.cipher.Encrypt(email)
	if err != nil {
		return err
	}
	user.EncryptedEmail = encrypted
	user.EmailFingerprint = s.cipher.Fingerprint(email)
	return nil
}

func (s *authService) Email(user *models.User) (string, error) {
	return s.cipher.Decrypt(user.EncryptedEmail)
}
