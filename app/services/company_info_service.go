package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/hstore/hstore-api/app/models"
	"github.com/hstore/hstore-api/app/repositories"
)

// CompanyInfoService is the process-wide accessor for the company info
// singleton. The row is read-mostly: it is loaded once, served from memory,
// and refreshed only through the administrative Update path.
type CompanyInfoService struct {
	repo repositories.CompanyInfoRepositoryImpl

	mu     sync.RWMutex
	cached *models.CompanyInfo
}

func NewCompanyInfoService(repo repositories.CompanyInfoRepositoryImpl) *CompanyInfoService {
	return &CompanyInfoService{repo: repo}
}

func (s *CompanyInfoService) Get(ctx context.Context) (*models.CompanyInfo, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}

	info, err := s.repo.LoadOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load company info: %w", err)
	}
	s.cached = info
	return info, nil
}

// Update is the administrative write path. It persists the new values and
// replaces the in-memory copy.
func (s *CompanyInfoService) Update(ctx context.Context, info *models.CompanyInfo) error {
	if err := s.repo.Update(ctx, info); err != nil {
		return fmt.Errorf("failed to update company info: %w", err)
	}

	s.mu.Lock()
	s.cached = info
	s.mu.Unlock()
	return nil
}
