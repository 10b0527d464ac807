package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymhub/internal/auth"
	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// SignupInput carries validated member signup fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Gender   string
	Phone    string
}

// TokenPair bundles the two tokens issued on signup and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles signup, login and token refresh.
type AuthService interface {
	SignupMember(ctx context.Context, input SignupInput) (*model.Member, *TokenPair, error)
	LoginMember(ctx context.Context, email, password string) (*model.Member, *TokenPair, error)
	LoginTrainer(ctx context.Context, email, password string) (*model.Trainer, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type authService struct {
	memberRepo  repository.MemberRepository
	trainerRepo repository.TrainerRepository
	tokens      *auth.TokenService
	cache       Cache
}

// NewAuthService creates a new authentication service.
func NewAuthService(memberRepo repository.MemberRepository, trainerRepo repository.TrainerRepository, tokens *auth.TokenService, cache Cache) AuthService {
	return &authService{
		memberRepo:  memberRepo,
		trainerRepo: trainerRepo,
		tokens:      tokens,
		cache:       cache,
	}
}

// SignupMember registers a new member and returns it with both tokens.
func (s *authService) SignupMember(ctx context.Context, input SignupInput) (*model.Member, *TokenPair, error) {
	existing, err := s.memberRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, nil, apperrors.ErrMemberExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("check member existence: %w", err)
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	member := &model.Member{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Age:          input.Age,
		Gender:       input.Gender,
		Phone:        input.Phone,
		Status:       model.StatusActive,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, nil, fmt.Errorf("create member: %w", err)
	}

	// Invalidate the trainer member list so the new member shows up.
	_ = s.cache.Delete(ctx, memberListCacheKey)

	pair, err := s.issuePair(member.ID.String(), member.Email, auth.RoleMember)
	if err != nil {
		return nil, nil, err
	}
	return member, pair, nil
}

// LoginMember authenticates a member. Unknown email and wrong password fail
// identically; the inactive gate runs only once the member is known to exist
// and produces its own message.
func (s *authService) LoginMember(ctx context.Context, email, password string) (*model.Member, *TokenPair, error) {
	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find member: %w", err)
	}

	if member.Status != model.StatusActive {
		return nil, nil, apperrors.ErrAccountInactive
	}

	if !auth.CheckPassword(password, member.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(member.ID.String(), member.Email, auth.RoleMember)
	if err != nil {
		return nil, nil, err
	}
	return member, pair, nil
}

// LoginTrainer authenticates a trainer. Trainers carry no status field, so
// there is no inactive gate here.
func (s *authService) LoginTrainer(ctx context.Context, email, password string) (*model.Trainer, *TokenPair, error) {
	trainer, err := s.trainerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find trainer: %w", err)
	}

	if !auth.CheckPassword(password, trainer.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(trainer.ID.String(), trainer.Email, auth.RoleTrainer)
	if err != nil {
		return nil, nil, err
	}
	return trainer, pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. Tokens are
// stateless, so verification is the only check.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.IssueAccess(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return accessToken, nil
}

func (s *authService) issuePair(userID, email, role string) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccess(userID, email, role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := s.tokens.IssueRefresh(userID, email, role)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
