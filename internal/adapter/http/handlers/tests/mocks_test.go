package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	httpadapter "github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/handlers"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/pkg/translator"
)

const testToken = "3b241101-e2bb-4255-8caf-4136c566a962"

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) SearchTasks(ctx context.Context, filter domain.SearchFilter) (ports.SearchResult, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(ports.SearchResult), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Signup(ctx context.Context, input ports.SignupInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.Session, domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Get(1).(domain.User), args.Error(2)
}

func (m *authServiceMock) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

type adminServiceMock struct {
	mock.Mock
}

func (m *adminServiceMock) ListUsers(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *adminServiceMock) ApproveUser(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *adminServiceMock) RejectUser(ctx context.Context, adminID, userID uint64) (domain.User, error) {
	args := m.Called(ctx, adminID, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

type testServer struct {
	router *gin.Engine
	tasks  *taskServiceMock
	auth   *authServiceMock
	admin  *adminServiceMock
}

func newTestServer(strictSearchFilters bool) *testServer {
	s := &testServer{
		router: gin.New(),
		tasks:  new(taskServiceMock),
		auth:   new(authServiceMock),
		admin:  new(adminServiceMock),
	}

	httpadapter.RegisterRoutes(s.router, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(nil, "memory"),
		Auth:   handlers.NewAuthHandler(s.auth),
		Tasks:  handlers.NewTaskHandler(s.tasks, strictSearchFilters),
		Admin:  handlers.NewAdminHandler(s.admin),
	}, s.auth)

	return s
}

// signIn makes testToken resolve to user.
func (s *testServer) signIn(user domain.User) {
	s.auth.On("Authenticate", mock.Anything, testToken).Return(user, nil)
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	return s.doLang(method, target, body, translator.LanguageEn)
}

func (s *testServer) doLang(method, target, body, lang string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", lang)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) assertExpectations(t mock.TestingT) {
	s.tasks.AssertExpectations(t)
	s.auth.AssertExpectations(t)
	s.admin.AssertExpectations(t)
}

var (
	alice = domain.User{
		ID:        7,
		Email:     "alice@example.com",
		Name:      "Alice",
		Status:    domain.UserStatusApproved,
		CreatedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
	root = domain.User{
		ID:        1,
		Email:     "root@example.com",
		Name:      "Root",
		IsAdmin:   true,
		Status:    domain.UserStatusApproved,
		CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
)
