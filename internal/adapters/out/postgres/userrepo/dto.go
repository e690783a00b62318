// Package userrepo persists user accounts.
package userrepo

import (
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash []byte    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

// toDomain maps an unrecognised role token to user.UnknownRole, which
// RestoreUser rejects.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, _ := user.ParseRole(dto.Role)

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, role)
}
