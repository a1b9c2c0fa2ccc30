package services

import (
	"context"
	"log"
	"strings"

	"readandlead/internal/models/db_models"
	"readandlead/internal/models/request_models"
	"readandlead/internal/models/response_models"
	"readandlead/internal/repositories"
	"readandlead/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (response_models.TokenResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenResponse, error)
	GetMe(ctx context.Context, userID string) (response_models.AccountMe, error)
	CountUsers(ctx context.Context) (int64, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (response_models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.TokenResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.TokenResponse{}, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.TokenResponse{}, err
	}

	displayName := strings.TrimSpace(request.DisplayName)
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	account := &db_models.Account{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		log.Printf("WARN account insert failed: %v", err)
		return response_models.TokenResponse{}, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return response_models.TokenResponse{}, err
	}
	return response_models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.TokenResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}
	return response_models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (a *AccountService) GetMe(ctx context.Context, userID string) (response_models.AccountMe, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return response_models.AccountMe{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountMe{}, utils.ErrRecordNotFound
	}
	return response_models.AccountMe{
		ID:          account.ID.String(),
		Email:       account.Email,
		DisplayName: account.DisplayName,
	}, nil
}

func (a *AccountService) CountUsers(ctx context.Context) (int64, error) {
	count, err := a.accountRepo.Count(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}
