// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"carrental/model"
	"carrental/repository"
	userrepo "carrental/repository/user"
	"carrental/util/hash"
)

type mockRepo struct {
	createCustomerFn func(ctx context.Context, u *model.User, c *model.Customer) error
	createEmployeeFn func(ctx context.Context, u *model.User, e *model.Employee) error
	byUsernameFn     func(ctx context.Context, username string) (*model.User, error)
	customerIDFn     func(ctx context.Context, userID int64) (int64, error)
	employeeIDFn     func(ctx context.Context, userID int64) (int64, error)
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) CreateCustomer(ctx context.Context, u *model.User, c *model.Customer) error {
	if m.createCustomerFn == nil {
		return nil
	}
	return m.createCustomerFn(ctx, u, c)
}

func (m *mockRepo) CreateEmployee(ctx context.Context, u *model.User, e *model.Employee) error {
	if m.createEmployeeFn == nil {
		return nil
	}
	return m.createEmployeeFn(ctx, u, e)
}

func (m *mockRepo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.byUsernameFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.byUsernameFn(ctx, username)
}

func (m *mockRepo) CustomerIDByUserID(ctx context.Context, userID int64) (int64, error) {
	if m.customerIDFn == nil {
		return 0, repository.ErrNotFound
	}
	return m.customerIDFn(ctx, userID)
}

func (m *mockRepo) EmployeeIDByUserID(ctx context.Context, userID int64) (int64, error) {
	if m.employeeIDFn == nil {
		return 0, repository.ErrNotFound
	}
	return m.employeeIDFn(ctx, userID)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegisterCustomer_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createCustomerFn: func(ctx context.Context, u *model.User, c *model.Customer) error {
			u.ID = 42
			c.ID = 7
			c.UserID = u.ID
			return nil
		},
	}
	svc := New(m, "test-secret")

	req := model.RegisterCustomerReq{
		Username: "jsmith",
		Password: "supersecret",
		Name:     "John Smith",
		Email:    "john.smith@email.com",
		IDNumber: "ID12345",
		License:  "DL12345678",
	}

	c, tok, err := svc.RegisterCustomer(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), c.ID)
	require.Equal(t, int64(42), c.UserID)
	require.Equal(t, "John Smith", c.Name)
}

func TestRegisterCustomer_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.RegisterCustomer(ctx, model.RegisterCustomerReq{
		Username: " ",
		Password: "123",
	})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestRegisterCustomer_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createCustomerFn: func(ctx context.Context, u *model.User, c *model.Customer) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.RegisterCustomer(ctx, model.RegisterCustomerReq{
		Username: "taken",
		Password: "123456",
		Name:     "X",
		IDNumber: "ID1",
		License:  "DL1",
	})
	require.Error(t, err)
	require.Equal(t, ErrUsernameTaken, Code(err))
}

func TestRegisterEmployee_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createEmployeeFn: func(ctx context.Context, u *model.User, e *model.Employee) error {
			u.ID = 5
			e.ID = 2
			e.UserID = u.ID
			return nil
		},
	}
	svc := New(m, "test-secret")

	e, tok, err := svc.RegisterEmployee(ctx, model.RegisterEmployeeReq{
		Username: "ewilson",
		Password: "supersecret",
		Name:     "Emily Wilson",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(2), e.ID)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createCustomerFn: func(ctx context.Context, u *model.User, c *model.Customer) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.RegisterCustomer(ctx, model.RegisterCustomerReq{
		Username: "ok",
		Password: "123456",
		Name:     "Ok",
		IDNumber: "ID1",
		License:  "DL1",
	})
	require.Error(t, err)

	require.Equal(t, ErrCode(""), Code(err))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			return &model.User{
				ID:           7,
				Username:     "jsmith",
				PasswordHash: hashed,
				UserType:     model.RoleCustomer,
			}, nil
		},
		customerIDFn: func(ctx context.Context, userID int64) (int64, error) {
			require.Equal(t, int64(7), userID)
			return 3, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{Username: "jsmith", Password: pw})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "rightpassword")

	m := &mockRepo{
		byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			return &model.User{ID: 7, PasswordHash: hashed, UserType: model.RoleCustomer}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Username: "jsmith", Password: "wrong"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}
