package identity

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository writes credentials outside of any worker transaction; callers
// delete the credential themselves when a later step fails.
//
//go:generate mockgen -source=identity_repo.go -destination=mock/identity_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Credential) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Credential, error)
	TouchLogin(ctx context.Context, id string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Credential) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Credential{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Credential, error) {
	var c Credential
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) TouchLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Credential{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
