package handlers

import (
	"context"
	"io"
	"time"

	"account_manager/internal/models"
	"account_manager/internal/service"
	"account_manager/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	admin       *models.Admin
	adminErr    error
	user        *models.User
	userErr     error

	lastRegisterUsername string
	lastRegisterPassword string
	lastAdminLogin       string
	lastUserLogin        string
	registerCalls        int
}

func (m *mockAuth) RegisterAdmin(ctx context.Context, username, password string) (int, error) {
	m.registerCalls++
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}

func (m *mockAuth) LoginAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	m.lastAdminLogin = username
	return m.admin, m.adminErr
}

func (m *mockAuth) LoginUser(ctx context.Context, username, password string) (*models.User, error) {
	m.lastUserLogin = username
	return m.user, m.userErr
}

type mockAccounts struct {
	createID  int
	createErr error
	users     []models.User
	listErr   error
	user      *models.User
	getErr    error
	deleteErr error

	lastCreateUsername string
	deletedIDs         []int
}

func (m *mockAccounts) CreateUser(ctx context.Context, username, password string) (int, error) {
	m.lastCreateUsername = username
	return m.createID, m.createErr
}

func (m *mockAccounts) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.users, m.listErr
}

func (m *mockAccounts) GetUser(ctx context.Context, id int) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockAccounts) DeleteUser(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type profileCall struct {
	id           int
	update       service.ProfileUpdate
	photoName    string
	photoContent string
}

type mockProfile struct {
	user      *models.User
	getErr    error
	updateErr error

	updates []profileCall
}

func (m *mockProfile) Get(ctx context.Context, id int) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockProfile) Update(ctx context.Context, id int, p service.ProfileUpdate) error {
	call := profileCall{id: id, update: p}
	if p.Photo != nil {
		call.photoName = p.Photo.Filename
		data, _ := io.ReadAll(p.Photo.Content)
		call.photoContent = string(data)
	}
	m.updates = append(m.updates, call)
	return m.updateErr
}

// ---- Shared Test Helpers ----

// newTestEnv wires the handler with a real session manager so middleware and
// cookies behave as in production.
func newTestEnv(s *service.Service) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)
	mgr := session.NewManager("test-secret", session.NewMemoryStore(time.Hour))
	h := NewHandler(s, mgr, nil)
	return h.InitRoutes(), mgr
}
