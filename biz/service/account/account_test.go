package account

import (
	"context"
	"errors"
	"testing"

	"user_center/be/biz/dal/repo"
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/util/encode"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	findByEmailUser *domain.User
	findByEmailErr  error

	findByUserIDUser *domain.User
	findByUserIDErr  error

	createRetUser *domain.User
	createRetErr  error
	createInput   *domain.User

	listRet []*domain.User
	listErr error

	updateRetErr error
	updateInput  *domain.User

	deleteErr   error
	deleteCalls int
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.createInput = u
	if r.createRetErr != nil {
		return nil, r.createRetErr
	}
	if r.createRetUser != nil {
		return r.createRetUser, nil
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUserID(_ context.Context, _ string) (*domain.User, error) {
	return r.findByUserIDUser, r.findByUserIDErr
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return r.findByEmailUser, r.findByEmailErr
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return r.listRet, r.listErr
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	r.updateInput = u
	if r.updateRetErr != nil {
		return nil, r.updateRetErr
	}
	return u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ string) error {
	r.deleteCalls++
	return r.deleteErr
}

func strPtr(s string) *string { return &s }

func rolePtr(r domain.Role) *domain.Role { return &r }

func TestService_Register(t *testing.T) {
	t.Run("email duplicated", func(t *testing.T) {
		svc := New(&fakeUserRepo{createRetErr: repo.ErrDuplicateEmail})
		_, bizErr := svc.Register(context.Background(), "n", "a@b.com", "", "secret1", "")
		assert.True(t, errs.ErrorEqual(errs.EmailDuplicated, bizErr))
	})

	t.Run("create error", func(t *testing.T) {
		svc := New(&fakeUserRepo{createRetErr: errors.New("insert error")})
		_, bizErr := svc.Register(context.Background(), "n", "a@b.com", "", "secret1", "")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("bad role", func(t *testing.T) {
		svc := New(&fakeUserRepo{})
		_, bizErr := svc.Register(context.Background(), "n", "a@b.com", "", "secret1", "root")
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("empty password", func(t *testing.T) {
		svc := New(&fakeUserRepo{})
		_, bizErr := svc.Register(context.Background(), "n", "a@b.com", "", "", "")
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("success hashes password and normalizes email", func(t *testing.T) {
		fake := &fakeUserRepo{}
		svc := New(fake)

		u, bizErr := svc.Register(context.Background(), "n", " Alice@Example.COM ", "123", "secret1", "")
		assert.Nil(t, bizErr)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, domain.RoleUser, u.Role)

		if assert.NotNil(t, fake.createInput) {
			assert.NotEqual(t, "secret1", fake.createInput.PasswordHash)
			assert.True(t, encode.VerifyPassword("secret1", fake.createInput.PasswordHash))
		}
	})

	t.Run("admin role kept", func(t *testing.T) {
		fake := &fakeUserRepo{}
		svc := New(fake)
		u, bizErr := svc.Register(context.Background(), "n", "root@b.com", "", "secret1", domain.RoleAdmin)
		assert.Nil(t, bizErr)
		assert.Equal(t, domain.RoleAdmin, u.Role)
	})
}

func TestService_Login(t *testing.T) {
	stored, err := encode.HashPassword("right-pass")
	assert.Nil(t, err)

	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByEmailErr: errors.New("db error")})
		_, bizErr := svc.Login(context.Background(), "a@b.com", "p")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("unknown email and wrong password are identical", func(t *testing.T) {
		svcMissing := New(&fakeUserRepo{findByEmailUser: nil})
		_, errMissing := svcMissing.Login(context.Background(), "a@b.com", "p")

		u := &domain.User{UserID: "u1", PasswordHash: stored}
		svcWrongPass := New(&fakeUserRepo{findByEmailUser: u})
		_, errWrongPass := svcWrongPass.Login(context.Background(), "a@b.com", "wrong")

		assert.True(t, errs.ErrorEqual(errs.InvalidCredentials, errMissing))
		assert.True(t, errs.ErrorEqual(errs.InvalidCredentials, errWrongPass))
		assert.Equal(t, errMissing.Msg(), errWrongPass.Msg())
	})

	t.Run("success", func(t *testing.T) {
		u := &domain.User{UserID: "u1", PasswordHash: stored}
		svc := New(&fakeUserRepo{findByEmailUser: u})
		out, bizErr := svc.Login(context.Background(), "a@b.com", "right-pass")
		assert.Nil(t, bizErr)
		assert.Equal(t, u, out)
	})
}

func TestService_GetByUserID(t *testing.T) {
	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDErr: errors.New("db error")})
		_, bizErr := svc.GetByUserID(context.Background(), "u1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("not found", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDUser: nil})
		_, bizErr := svc.GetByUserID(context.Background(), "u1")
		assert.True(t, errs.ErrorEqual(errs.UserNotFound, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		u := &domain.User{UserID: "u1"}
		svc := New(&fakeUserRepo{findByUserIDUser: u})
		out, bizErr := svc.GetByUserID(context.Background(), "u1")
		assert.Nil(t, bizErr)
		assert.Equal(t, u, out)
	})
}

func TestService_List(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		svc := New(&fakeUserRepo{listErr: errors.New("db error")})
		_, bizErr := svc.List(context.Background())
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		svc := New(&fakeUserRepo{listRet: []*domain.User{{UserID: "u1"}, {UserID: "u2"}}})
		users, bizErr := svc.List(context.Background())
		assert.Nil(t, bizErr)
		assert.Len(t, users, 2)
	})
}

func TestService_Update(t *testing.T) {
	target := func() *domain.User {
		return &domain.User{UserID: "u1", Name: "old", Email: "old@b.com", Tel: "111", Role: domain.RoleUser, PasswordHash: "oldhash"}
	}
	self := &domain.User{UserID: "u1", Role: domain.RoleUser}
	other := &domain.User{UserID: "u2", Role: domain.RoleUser}
	admin := &domain.User{UserID: "a1", Role: domain.RoleAdmin}

	t.Run("non-admin on another record is forbidden", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDUser: target()})
		_, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Name: strPtr("x")}, other)
		assert.True(t, errs.ErrorEqual(errs.Forbidden, bizErr))
	})

	t.Run("self update applies only supplied fields", func(t *testing.T) {
		fake := &fakeUserRepo{findByUserIDUser: target()}
		svc := New(fake)
		out, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Name: strPtr("new")}, self)
		assert.Nil(t, bizErr)
		assert.Equal(t, "new", out.Name)
		assert.Equal(t, "old@b.com", out.Email)
		assert.Equal(t, "111", out.Tel)
		assert.Equal(t, "oldhash", out.PasswordHash)
	})

	t.Run("admin update on someone else succeeds", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDUser: target()})
		out, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Name: strPtr("by-admin")}, admin)
		assert.Nil(t, bizErr)
		assert.Equal(t, "by-admin", out.Name)
	})

	t.Run("role change by non-admin is forbidden", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDUser: target()})
		_, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Role: rolePtr(domain.RoleAdmin)}, self)
		assert.True(t, errs.ErrorEqual(errs.Forbidden, bizErr))
	})

	t.Run("role change by admin succeeds", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDUser: target()})
		out, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Role: rolePtr(domain.RoleAdmin)}, admin)
		assert.Nil(t, bizErr)
		assert.Equal(t, domain.RoleAdmin, out.Role)
	})

	t.Run("new password is re-hashed", func(t *testing.T) {
		fake := &fakeUserRepo{findByUserIDUser: target()}
		svc := New(fake)
		out, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Password: strPtr("new-pass")}, self)
		assert.Nil(t, bizErr)
		assert.NotEqual(t, "new-pass", out.PasswordHash)
		assert.True(t, encode.VerifyPassword("new-pass", out.PasswordHash))
	})

	t.Run("target gone", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDUser: nil})
		_, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Name: strPtr("x")}, admin)
		assert.True(t, errs.ErrorEqual(errs.UserNotFound, bizErr))
	})

	t.Run("email conflict surfaces as duplicate", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDUser: target(), updateRetErr: repo.ErrDuplicateEmail})
		_, bizErr := svc.Update(context.Background(), "u1", domain.UserPatch{Email: strPtr("taken@b.com")}, self)
		assert.True(t, errs.ErrorEqual(errs.EmailDuplicated, bizErr))
	})
}

func TestService_Remove(t *testing.T) {
	self := &domain.User{UserID: "u1", Role: domain.RoleUser}
	other := &domain.User{UserID: "u2", Role: domain.RoleUser}
	admin := &domain.User{UserID: "a1", Role: domain.RoleAdmin}

	t.Run("non-admin on another record is forbidden", func(t *testing.T) {
		fake := &fakeUserRepo{}
		svc := New(fake)
		bizErr := svc.Remove(context.Background(), "u1", other)
		assert.True(t, errs.ErrorEqual(errs.Forbidden, bizErr))
		assert.Equal(t, 0, fake.deleteCalls)
	})

	t.Run("self delete succeeds", func(t *testing.T) {
		fake := &fakeUserRepo{}
		svc := New(fake)
		assert.Nil(t, svc.Remove(context.Background(), "u1", self))
		assert.Equal(t, 1, fake.deleteCalls)
	})

	t.Run("admin delete succeeds", func(t *testing.T) {
		fake := &fakeUserRepo{}
		svc := New(fake)
		assert.Nil(t, svc.Remove(context.Background(), "u1", admin))
		assert.Equal(t, 1, fake.deleteCalls)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := New(&fakeUserRepo{deleteErr: repo.ErrUserNotFound})
		bizErr := svc.Remove(context.Background(), "ghost", admin)
		assert.True(t, errs.ErrorEqual(errs.UserNotFound, bizErr))
	})
}
