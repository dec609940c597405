package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"ai-assessment/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockAssessmentRepository ---
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, record *domain.AssessmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAssessmentRepository) GetCohortStatistics(ctx context.Context, cohort string) (*domain.CohortStatistics, error) {
	args := m.Called(ctx, cohort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CohortStatistics), args.Error(1)
}

func (m *MockAssessmentRepository) ListRecent(ctx context.Context, cohort string, limit int) ([]domain.RecentAssessment, error) {
	args := m.Called(ctx, cohort, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentAssessment), args.Error(1)
}

func (m *MockAssessmentRepository) ListDistribution(ctx context.Context, cohort string, limit int) ([]domain.DistributionPoint, error) {
	args := m.Called(ctx, cohort, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DistributionPoint), args.Error(1)
}

func (m *MockAssessmentRepository) DeleteByCohort(ctx context.Context, cohort string) (int64, error) {
	args := m.Called(ctx, cohort)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssessmentRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- ManualMockCache ---
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error { return nil }

func (m *ManualMockCache) Incr(ctx context.Context, key string) (int64, error) {
	panic("not implemented in mock")
}

func (m *ManualMockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	panic("not implemented in mock")
}

func (m *ManualMockCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	panic("not implemented in mock")
}

// memoryCache is a map-backed domain.Cache for flows that need real round trips.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error { return nil }

func (c *memoryCache) Incr(ctx context.Context, key string) (int64, error) {
	panic("not implemented in memoryCache")
}

func (c *memoryCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	panic("not implemented in memoryCache")
}

func (c *memoryCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	panic("not implemented in memoryCache")
}

// --- recorder ---
type recordingRecorder struct {
	mu       sync.Mutex
	personas []domain.PersonaKey
}

func (r *recordingRecorder) RecordSubmission(persona domain.PersonaKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.personas = append(r.personas, persona)
}
