package usecase

import (
	"context"
	"fmt"

	"category_admin/internal/auth"
	"category_admin/internal/domain"
	"category_admin/internal/validation"

	"github.com/sirupsen/logrus"
)

type AccountUseCase interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Identity, string, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Identity, string, error)
	CurrentIdentity() (*domain.Identity, error)
	Logout()
}

type accountUseCase struct {
	api       domain.AccountAPI
	session   *auth.Session
	validator *validation.Validator
	log       *logrus.Logger
}

func NewAccountUseCase(api domain.AccountAPI, session *auth.Session, validator *validation.Validator, logger *logrus.Logger) AccountUseCase {
	return &accountUseCase{
		api:       api,
		session:   session,
		validator: validator,
		log:       logger,
	}
}

func (uc *accountUseCase) Login(ctx context.Context, req domain.LoginRequest) (*domain.Identity, string, error) {
	if err := uc.validator.ValidateStruct(req); err != nil {
		uc.log.Warnf("Use Case: Login rejected for '%s': %v", req.Email, err)
		return nil, "", err
	}

	uc.log.Infof("Use Case: Attempting login for email: %s", req.Email)
	res, err := uc.api.Login(ctx, req)
	if err != nil {
		uc.log.Warnf("Use Case: Login failed for %s: %v", req.Email, err)
		return nil, "", err
	}

	return uc.startSession(res.Token)
}

func (uc *accountUseCase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Identity, string, error) {
	if err := uc.validator.ValidateStruct(req); err != nil {
		uc.log.Warnf("Use Case: Registration rejected for '%s': %v", req.Email, err)
		return nil, "", err
	}

	uc.log.Infof("Use Case: Attempting registration for email: %s", req.Email)
	res, err := uc.api.Register(ctx, req)
	if err != nil {
		uc.log.Warnf("Use Case: Registration failed for %s: %v", req.Email, err)
		return nil, "", err
	}
	if res.Token == "" {
		// Some servers require an explicit login after registering.
		uc.log.Infof("Use Case: Registered %s without a session token", req.Email)
		return nil, "", nil
	}

	return uc.startSession(res.Token)
}

func (uc *accountUseCase) startSession(token string) (*domain.Identity, string, error) {
	if err := uc.session.Set(token); err != nil {
		uc.log.Errorf("Use Case: Remote API issued an unreadable token: %v", err)
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRemote, err)
	}
	identity := uc.session.Identity()
	uc.log.Infof("Use Case: Session started for %s", identity.Email)
	return identity, token, nil
}

func (uc *accountUseCase) CurrentIdentity() (*domain.Identity, error) {
	identity := uc.session.Identity()
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	return identity, nil
}

func (uc *accountUseCase) Logout() {
	uc.session.Clear()
	uc.log.Info("Use Case: Session cleared")
}
