package service

import (
	"context"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/tabular"
	"github.com/stretchr/testify/mock"
)

// MockSnapshotStore mocks the SnapshotStore interface
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Latest(ctx context.Context) (*domain.KPISnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KPISnapshot), args.Error(1)
}

func (m *MockSnapshotStore) List(ctx context.Context, limit int) ([]domain.KPISnapshot, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KPISnapshot), args.Error(1)
}

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockChatLogStore mocks the ChatLogStore interface
type MockChatLogStore struct {
	mock.Mock
}

func (m *MockChatLogStore) Append(ctx context.Context, entry *domain.ChatLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// stubTables serves in-memory tables keyed by file name; unknown names
// behave like absent files.
type stubTables struct {
	tables map[string]*tabular.Table
}

func (s stubTables) Load(name string) (*tabular.Table, error) {
	if t, ok := s.tables[name]; ok {
		return t, nil
	}
	return tabular.NewTable(nil, nil), nil
}

// stubGenerator scripts the external generation boundary.
type stubGenerator struct {
	configured   bool
	text         string
	model        string
	err          error
	systemPrompt string
	message      string
}

func (g *stubGenerator) IsConfigured() bool {
	return g.configured
}

func (g *stubGenerator) Generate(ctx context.Context, systemPrompt, message string) (string, string, error) {
	g.systemPrompt = systemPrompt
	g.message = message
	if g.err != nil {
		return "", "", g.err
	}
	return g.text, g.model, nil
}
