package directory

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Repository interface {
	FindTeam(ctx context.Context, teamID string) (*Team, error)
	FindSite(ctx context.Context, siteID string) (*Site, error)
	FindCompanyByCode(ctx context.Context, code string) (*Company, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindTeam(ctx context.Context, teamID string) (*Team, error) {
	var t Team
	err := r.db.WithContext(ctx).
		Preload("Site").
		Preload("Company").
		Where("id = ? AND is_active = ?", teamID, true).
		First(&t).Error
	return &t, err
}

func (r *repository) FindSite(ctx context.Context, siteID string) (*Site, error) {
	var s Site
	err := r.db.WithContext(ctx).
		Where("id = ?", siteID).
		First(&s).Error
	return &s, err
}

func (r *repository) FindCompanyByCode(ctx context.Context, code string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).
		Preload("Sites", "is_active = ?", true).
		Preload("Sites.Teams", "is_active = ?", true).
		Where("code = ? AND is_active = ?", code, true).
		First(&c).Error
	return &c, err
}
