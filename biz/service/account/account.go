package account

import (
	"context"
	"errors"
	"strings"

	"user_center/be/biz/dal/repo"
	"user_center/be/biz/db/mysql"
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// dummyHash is compared against when login hits an unknown email, so the
// unknown-email path costs the same as a wrong-password one.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Service struct {
	users repo.UserRepository
}

func New(users repo.UserRepository) *Service {
	return &Service{users: users}
}

func NewDefault() *Service {
	return New(repo.NewUserRepositoryGorm(mysql.GetDbConn()))
}

func (s *Service) Register(ctx context.Context, name, email, tel, password string, role domain.Role) (*domain.User, errs.Error) {
	email = normalizeEmail(email)

	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, errs.ParamError.SetMsg("unknown role")
	}

	hash, err := encode.HashPassword(password)
	if err != nil {
		return nil, errs.ParamError.SetMsg(err.Error())
	}

	u, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		Tel:          tel,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, errs.EmailDuplicated
		}
		hlog.CtxErrorf(ctx, "create user err: %v", err)
		return nil, errs.ServerError
	}
	return u, nil
}

// Login resolves credentials to a user. Unknown email and wrong password
// return the same error on purpose.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, errs.Error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by email err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		encode.VerifyPassword(password, dummyHash)
		return nil, errs.InvalidCredentials
	}
	if !encode.VerifyPassword(password, u.PasswordHash) {
		return nil, errs.InvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (*domain.User, errs.Error) {
	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by id err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotFound.SetMsg("user not found: " + userID)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.User, errs.Error) {
	users, err := s.users.List(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "list users err: %v", err)
		return nil, errs.ServerError
	}
	return users, nil
}

// Update applies a partial patch to the record with the given id. Only the
// record owner or an admin may update; role changes are admin-only.
func (s *Service) Update(ctx context.Context, userID string, patch domain.UserPatch, actor *domain.User) (*domain.User, errs.Error) {
	if !canTouch(actor, userID) {
		return nil, errs.Forbidden
	}
	if patch.Role != nil && actor.Role != domain.RoleAdmin {
		return nil, errs.Forbidden
	}

	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by id err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotFound.SetMsg("user not found: " + userID)
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = normalizeEmail(*patch.Email)
	}
	if patch.Tel != nil {
		u.Tel = *patch.Tel
	}
	if patch.Role != nil {
		if !patch.Role.Valid() {
			return nil, errs.ParamError.SetMsg("unknown role")
		}
		u.Role = *patch.Role
	}
	if patch.Password != nil {
		hash, hashErr := encode.HashPassword(*patch.Password)
		if hashErr != nil {
			return nil, errs.ParamError.SetMsg(hashErr.Error())
		}
		u.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, errs.EmailDuplicated
		}
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, errs.UserNotFound.SetMsg("user not found: " + userID)
		}
		hlog.CtxErrorf(ctx, "update user err: %v", err)
		return nil, errs.ServerError
	}
	return updated, nil
}

// Remove deletes the record with the given id under the same
// owner-or-admin rule as Update. Unknown ids are a not-found no-op.
func (s *Service) Remove(ctx context.Context, userID string, actor *domain.User) errs.Error {
	if !canTouch(actor, userID) {
		return errs.Forbidden
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return errs.UserNotFound.SetMsg("user not found: " + userID)
		}
		hlog.CtxErrorf(ctx, "delete user err: %v", err)
		return errs.ServerError
	}
	return nil
}

func canTouch(actor *domain.User, userID string) bool {
	if actor == nil {
		return false
	}
	return actor.Role == domain.RoleAdmin || actor.UserID == userID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
