package board

import (
	"context"
	"errors"

	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
)

// MockBoard is an in-memory implementation of the board interfaces for tests.
type MockBoard struct {
	MoveResults   map[string]*pgdao.MoveResult // keyed by task id
	RefreshOut    pgdao.RefreshOutcome
	RefreshErr    error
	Stats         []pgdao.ProjectStats
	Boards        map[string][]pgdao.BoardColumn // keyed by project id
	MoveCalls     int
	RefreshCalls  int
	LastMoveActor string
}

var ErrMockNotConfigured = errors.New("mock response not configured")

func (m *MockBoard) MoveTaskSafe(ctx context.Context, taskID, columnID string, sortOrder int, actorEmail string) *pgdao.MoveResult {
	m.MoveCalls++
	m.LastMoveActor = actorEmail
	if r, ok := m.MoveResults[taskID]; ok {
		return r
	}
	return &pgdao.MoveResult{Success: false, TaskID: taskID, Error: "unknown", Message: ErrMockNotConfigured.Error()}
}

func (m *MockBoard) RefreshProjectStats(ctx context.Context) (pgdao.RefreshOutcome, error) {
	m.RefreshCalls++
	return m.RefreshOut, m.RefreshErr
}

func (m *MockBoard) ListProjectStats(ctx context.Context) ([]pgdao.ProjectStats, error) {
	return m.Stats, nil
}

func (m *MockBoard) GetBoard(ctx context.Context, projectID string) ([]pgdao.BoardColumn, error) {
	if b, ok := m.Boards[projectID]; ok {
		return b, nil
	}
	return nil, ErrMockNotConfigured
}
