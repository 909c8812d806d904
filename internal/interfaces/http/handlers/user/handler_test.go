package user

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "fixwise/internal/application/user/dto"
	"fixwise/internal/application/user/usecases"
	"fixwise/internal/interfaces/http/handlers/testutil"
	"fixwise/internal/shared/errors"
)

type mockLoginUC struct {
	gotCmd usecases.LoginCommand
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockCreateUserUC struct {
	gotCmd usecases.CreateUserCommand
	result *usecases.CreateUserResult
	err    error
}

func (m *mockCreateUserUC) Execute(_ context.Context, cmd usecases.CreateUserCommand) (*usecases.CreateUserResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func TestUserHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &usecases.LoginResult{
			Token:     "token-123",
			ExpiresAt: time.Now().Add(15 * time.Minute),
			User:      &userdto.UserDTO{ID: 7, Email: "admin@acme.test", Role: "org_admin"},
		},
	}
	handler := NewUserHandler(mockUC, nil)

	reqBody := LoginRequest{Email: "admin@acme.test", Password: "swordfish1"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@acme.test", mockUC.gotCmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid email or password")}
	handler := NewUserHandler(mockUC, nil)

	reqBody := LoginRequest{Email: "admin@acme.test", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_Login_MalformedEmail(t *testing.T) {
	handler := NewUserHandler(&mockLoginUC{}, nil)

	reqBody := map[string]string{"email": "not-an-email", "password": "swordfish1"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	orgID := uint(3)
	mockUC := &mockCreateUserUC{
		result: &usecases.CreateUserResult{
			User: &userdto.UserDTO{ID: 12, Email: "sub@acme.test", Role: "org_subadmin", OrganizationID: &orgID},
		},
	}
	handler := NewUserHandler(nil, mockUC)

	reqBody := CreateUserRequest{
		Email:          "sub@acme.test",
		Name:           "Subadmin",
		Password:       "longenough1",
		Role:           "org_subadmin",
		OrganizationID: &orgID,
		Permissions:    []string{"approve_tickets"},
		LocationIDs:    []uint{5},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/users", reqBody)
	testutil.SetActorContext(c, testutil.OrgAdminActor(7, 3))

	handler.CreateUser(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "org_subadmin", mockUC.gotCmd.Role)
	assert.Equal(t, []uint{5}, mockUC.gotCmd.LocationIDs)
}

func TestUserHandler_CreateUser_NotAuthenticated(t *testing.T) {
	handler := NewUserHandler(nil, &mockCreateUserUC{})

	reqBody := CreateUserRequest{Email: "sub@acme.test", Name: "Subadmin", Password: "longenough1", Role: "org_subadmin"}
	c, w := testutil.NewTestContext(http.MethodPost, "/users", reqBody)

	handler.CreateUser(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_CreateUser_DuplicateEmail(t *testing.T) {
	mockUC := &mockCreateUserUC{err: errors.NewConflictError("email is already registered")}
	handler := NewUserHandler(nil, mockUC)

	reqBody := CreateUserRequest{Email: "sub@acme.test", Name: "Subadmin", Password: "longenough1", Role: "org_subadmin"}
	c, w := testutil.NewTestContext(http.MethodPost, "/users", reqBody)
	testutil.SetActorContext(c, testutil.OrgAdminActor(7, 3))

	handler.CreateUser(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
