package site_test

import (
	"context"
	"errors"
	"testing"

	"construct-erp/internal/site"
	siteMock "construct-erp/internal/site/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolveName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := siteMock.NewMockRepository(ctrl)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, "s-1").Return(&site.Site{Name: "Tower A"}, nil)
		assert.Equal(t, "Tower A", site.ResolveName(ctx, repo, "s-1"))
	})

	t.Run("lookup error falls back", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, "s-2").Return(nil, errors.New("record not found"))
		assert.Equal(t, site.UnknownSiteName, site.ResolveName(ctx, repo, "s-2"))
	})

	t.Run("empty id falls back without lookup", func(t *testing.T) {
		assert.Equal(t, site.UnknownSiteName, site.ResolveName(ctx, repo, ""))
	})
}
