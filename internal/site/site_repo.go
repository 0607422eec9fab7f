package site

import (
	"context"

	"gorm.io/gorm"
)

// UnknownSiteName is reported when a record's site cannot be resolved.
const UnknownSiteName = "Unknown Site"

//go:generate mockgen -source=site_repo.go -destination=mock/site_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Site, error)
	CountSites(ctx context.Context) (int64, error)
	CountWorkers(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Site, error) {
	var s Site
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) CountSites(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Site{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *repository) CountWorkers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Worker{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// ResolveName returns the site's name, or UnknownSiteName when the lookup fails.
func ResolveName(ctx context.Context, repo Repository, id string) string {
	if id == "" {
		return UnknownSiteName
	}
	s, err := repo.FindByID(ctx, id)
	if err != nil || s == nil || s.Name == "" {
		return UnknownSiteName
	}
	return s.Name
}
