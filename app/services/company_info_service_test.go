package services

import (
	"context"
	"testing"

	"github.com/hstore/hstore-api/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyInfoRepo struct {
	info      models.CompanyInfo
	loadCalls int
}

func (f *fakeCompanyInfoRepo) LoadOrInit(context.Context) (*models.CompanyInfo, error) {
	f.loadCalls++
	info := f.info
	return &info, nil
}

func (f *fakeCompanyInfoRepo) Update(_ context.Context, info *models.CompanyInfo) error {
	f.info = *info
	return nil
}

func TestCompanyInfoLoadsOnceAndCaches(t *testing.T) {
	repo := &fakeCompanyInfoRepo{info: models.CompanyInfo{Phone: "254700000000"}}
	svc := NewCompanyInfoService(repo)
	ctx := context.Background()

	first, err := svc.Get(ctx)
	require.NoError(t, err)
	second, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, "254700000000", first.Phone)
	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.loadCalls)
}

func TestCompanyInfoUpdateRefreshesCache(t *testing.T) {
	repo := &fakeCompanyInfoRepo{}
	svc := NewCompanyInfoService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	updated := &models.CompanyInfo{Phone: "254711111111", Email: "info@example.com"}
	require.NoError(t, svc.Update(ctx, updated))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "254711111111", got.Phone)
	assert.Equal(t, "254711111111", repo.info.Phone)
	assert.Equal(t, 1, repo.loadCalls)
}
