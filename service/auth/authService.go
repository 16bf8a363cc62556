package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"carrental/model"
	"carrental/repository"
	userrepo "carrental/repository/user"
	"carrental/util/hash"
	jwtutil "carrental/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrUsernameTaken ErrCode = "USERNAME_TAKEN"
	ErrBadInput      ErrCode = "BAD_INPUT"
	ErrInvalidCreds  ErrCode = "INVALID_CREDENTIALS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// RegisterCustomer creates the account and the customer profile in one
	// unit of work and returns the profile with a signed token.
	RegisterCustomer(ctx context.Context, req model.RegisterCustomerReq) (*model.Customer, string, error)
	RegisterEmployee(ctx context.Context, req model.RegisterEmployeeReq) (*model.Employee, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) RegisterCustomer(ctx context.Context, req model.RegisterCustomerReq) (*model.Customer, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < 6 {
		return nil, "", makeErr(ErrBadInput)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Username:     username,
		PasswordHash: hashed,
		UserType:     model.RoleCustomer,
	}
	c := &model.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Street:   req.Street,
		City:     req.City,
		IDNumber: req.IDNumber,
		License:  req.License,
	}
	if err := s.ur.CreateCustomer(ctx, u, c); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, model.RoleCustomer, c.ID, 24)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

func (s *service) RegisterEmployee(ctx context.Context, req model.RegisterEmployeeReq) (*model.Employee, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < 6 {
		return nil, "", makeErr(ErrBadInput)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Username:     username,
		PasswordHash: hashed,
		UserType:     model.RoleEmployee,
	}
	e := &model.Employee{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Street:  req.Street,
		City:    req.City,
	}
	if err := s.ur.CreateEmployee(ctx, u, e); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, model.RoleEmployee, e.ID, 24)
	if err != nil {
		return nil, "", err
	}
	return e, token, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)
		if strings.Contains(cn, "username") || strings.Contains(msg, "username") {
			return makeErr(ErrUsernameTaken)
		}
		return makeErr(ErrBadInput)
	}
	return nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	u, err := s.ur.ByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}

	var profileID int64
	switch u.UserType {
	case model.RoleCustomer:
		profileID, err = s.ur.CustomerIDByUserID(ctx, u.ID)
	case model.RoleEmployee:
		profileID, err = s.ur.EmployeeIDByUserID(ctx, u.ID)
	default:
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.UserType, profileID, 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
