package handlers

import (
	"context"
	"net/http"
	"sync"

	"elevator_dispatch/internal/models"
	"elevator_dispatch/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID    int
	registerErr   error
	issueToken    string
	issueErr      error
	parseOperator models.Operator
	parseErr      error

	lastRegisterName     string
	lastRegisterPassword string
	lastRegisterRole     string
	lastIssueName        string
	lastIssuePassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, name, password, role string) (int, error) {
	m.lastRegisterName = name
	m.lastRegisterPassword = password
	m.lastRegisterRole = role
	return m.registerID, m.registerErr
}
func (m *mockAuth) IssueToken(ctx context.Context, name, password string) (string, error) {
	m.lastIssueName = name
	m.lastIssuePassword = password
	return m.issueToken, m.issueErr
}
func (m *mockAuth) ParseToken(token string) (models.Operator, error) {
	m.lastParseToken = token
	return m.parseOperator, m.parseErr
}

// dispatcherAuth accepts any token as the lobby dispatcher.
func dispatcherAuth() *mockAuth {
	return &mockAuth{parseOperator: models.Operator{ID: 1, Name: "lobby-desk", Role: models.RoleDispatcher}}
}

type mockElevator struct {
	result service.RequestResult
	err    error

	requestCalls  []int
	callFloors    []int
	callDirection string
	lastOperator  models.Operator
}

func (m *mockElevator) RequestFloor(ctx context.Context, floor int) (service.RequestResult, error) {
	m.requestCalls = append(m.requestCalls, floor)
	m.lastOperator, _ = service.OperatorFrom(ctx)
	return m.result, m.err
}
func (m *mockElevator) CallFloor(ctx context.Context, floor int, direction string) (service.RequestResult, error) {
	m.callFloors = append(m.callFloors, floor)
	m.callDirection = direction
	m.lastOperator, _ = service.OperatorFrom(ctx)
	return m.result, m.err
}

// mockMonitoring is read from the websocket goroutine, hence the lock.
type mockMonitoring struct {
	mu    sync.Mutex
	state models.ElevatorState
	err   error
	calls int
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.ElevatorState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.state, m.err
}

func (m *mockMonitoring) setState(st models.ElevatorState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st
}

type mockEventLog struct {
	resp       []models.ElevatorEvent
	err        error
	lastFilter service.LogFilter
	calls      int
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ElevatorEvent, error) {
	m.calls++
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
