package repo

import (
	"context"
	"errors"

	"user_center/be/biz/model/convert"
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/storage"
	"user_center/be/biz/util/id_gen"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateEmail is the typed conflict raised by Create/Update when
	// the email unique index is violated. Callers never see store internals.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrUserNotFound is raised by Delete when no row matches the id.
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}

type userRepositoryGorm struct {
	db *gorm.DB
}

func NewUserRepositoryGorm(db *gorm.DB) UserRepository {
	return &userRepositoryGorm{db: db}
}

func (r *userRepositoryGorm) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := convert.UserDomainToRecord(u)
	if m.UserId == "" {
		m.UserId = id_gen.NewID()
	}
	if m.Role == "" {
		m.Role = string(domain.RoleUser)
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicatedErr(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *userRepositoryGorm) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *userRepositoryGorm) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *userRepositoryGorm) List(ctx context.Context) ([]*domain.User, error) {
	var ms []storage.UserRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(ms))
	for i := range ms {
		users = append(users, convert.UserRecordToDomain(&ms[i]))
	}
	return users, nil
}

func (r *userRepositoryGorm) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", u.UserID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	m.Name = u.Name
	m.Email = u.Email
	m.Tel = u.Tel
	m.Role = string(u.Role)
	m.PasswordHash = u.PasswordHash

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		if isDuplicatedErr(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *userRepositoryGorm) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&storage.UserRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// isDuplicatedErr relies on gorm's error translation, with the raw MySQL
// duplicate-entry code as a fallback for drivers opened without it.
func isDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}

	return false
}
