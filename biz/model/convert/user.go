package convert

import (
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:       u.UserID,
		Email:        u.Email,
		Name:         u.Name,
		Tel:          u.Tel,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
	}
}

// UserDomainToResp shapes a record for the wire. The password hash never
// leaves the service.
func UserDomainToResp(u *domain.User) dto.UserResp {
	if u == nil {
		return dto.UserResp{}
	}
	return dto.UserResp{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Tel:       u.Tel,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Unix(),
		UpdatedAt: u.UpdatedAt.Unix(),
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UserID:       m.UserId,
		Email:        m.Email,
		Name:         m.Name,
		Tel:          m.Tel,
		Role:         domain.Role(m.Role),
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
