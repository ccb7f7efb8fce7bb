package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/jwt"
	"concierge/infras/otel"
	"concierge/internal/domains/auth/model/dto"
	userModel "concierge/internal/domains/user/model"
	userRepo "concierge/internal/domains/user/repository"
	"concierge/shared"
	"concierge/shared/constant"
	"concierge/shared/failure"
	"concierge/shared/password"
	gRepo "concierge/shared/repository"
	"concierge/shared/timezone"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	errBadCredentials = failure.Unauthorized("invalid email or password")
	errBadRefresh     = failure.Unauthorized("invalid refresh token")
	errDeactivated    = failure.Unauthorized("account is deactivated")
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	// RefreshToken rotates the pair. The presented refresh token is revoked and the role
	// is reloaded, so promotions and deactivations apply without a new login.
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, req dto.LogoutRequest, session dto.Session) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) userBy(ctx context.Context, field, value string) (userModel.User, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(value, field, userModel.TableName))
	if err != nil {
		return user, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Normalize()

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// the unique index on users.email decides races between two sign ups
	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashed)); err != nil {
		if errors.Is(err, gRepo.ErrDuplicate) {
			return failure.Conflict("email already registered")
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := s.userBy(ctx, userModel.FieldEmail, dto.NormalizeEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to load user for login")

		return res, err
	}

	if user.ID == constant.Empty || password.Verify(req.Password, user.Password) != nil {
		log.Warn().Str("email", req.Email).Msg("rejected login")

		return res, errBadCredentials
	}

	if !user.Active {
		return res, errDeactivated
	}

	pair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Level)
	if err != nil {
		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	fields := shared.TransformFields(dto.LastLoginUpdate{LastLogin: now}, user.ID)

	// a stale last_login is not worth failing the sign in
	if err := s.userRepo.Update(ctx, fields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	} else {
		user.LastLogin = &now
	}

	res.FromTokenPair(pair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("rejected refresh token")

		return res, errBadRefresh
	}

	user, err := s.userBy(ctx, userModel.FieldID, claims.UserID)
	if err != nil {
		return res, err
	}

	if user.ID == constant.Empty {
		return res, errBadRefresh
	}

	if !user.Active {
		return res, errDeactivated
	}

	if err = s.jwtService.Revoke(ctx, claims); err != nil {
		return res, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	pair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Level)
	if err != nil {
		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, req dto.LogoutRequest, session dto.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if session.UserID == constant.Empty || session.TokenID == constant.Empty {
		return failure.Unauthorized("unauthorized")
	}

	if req.RefreshToken != constant.Empty {
		claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
		if err != nil || claims.UserID != session.UserID {
			return errBadRefresh
		}

		if err = s.jwtService.Revoke(ctx, claims); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}

	// without the original expiry the access token is held for a full lifetime
	access := &jwt.Claims{UserID: session.UserID, TokenID: session.TokenID, Type: jwt.AccessToken}
	if err = s.jwtService.Revoke(ctx, access); err != nil {
		return fmt.Errorf("failed to revoke access token: %w", err)
	}

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := s.userBy(ctx, userModel.FieldID, userID)
	if err != nil {
		return err
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found")
	}

	if password.Verify(req.CurrentPassword, user.Password) != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := shared.TransformFields(dto.PasswordUpdate{Password: hashed}, userID)

	if err = s.userRepo.Update(ctx, fields, shared.FilterByID(userID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
