package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeev-m/finance-tracker/internal/model"
	"github.com/avdeev-m/finance-tracker/internal/repository"
)

var (
	InvalidCredentialsErr = errors.New("invalid email or password")
	InvalidTokenErr       = errors.New("invalid or expired token")
)

type Authorization interface {
	Register(ctx context.Context, user *model.User, password string) (string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	ParseToken(token string) (int64, error)
}

type Auth struct {
	users    repository.Users
	cache    repository.UserCache
	secret   []byte
	tokenTTL time.Duration
}

func NewAuth(users repository.Users, cache repository.UserCache, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		users:    users,
		cache:    cache,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register stores the user with a bcrypt-hashed password and returns a fresh
// token, so the client is logged in right after signup.
func (a *Auth) Register(ctx context.Context, user *model.User, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("service.Auth couldn't hash password in Register method: %v", err)
	}
	user.Password = string(hash)

	if err = a.users.Create(ctx, user); err != nil {
		return "", err
	}
	return a.issueToken(user.ID)
}

func (a *Auth) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", InvalidCredentialsErr
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", InvalidCredentialsErr
	}

	token, err := a.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UserByID resolves a user cache-first. Cache failures are logged and fall
// through to Postgres, they never fail the request.
func (a *Auth) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := a.cache.Get(ctx, id)
	if err != nil {
		logrus.Errorf("user cache read error: %v", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = a.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err = a.cache.Set(ctx, user); err != nil {
		logrus.Errorf("user cache write error: %v", err)
	}
	return user, nil
}

func (a *Auth) issueToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(a.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("service.Auth couldn't sign token in issueToken method: %v", err)
	}
	return signed, nil
}

func (a *Auth) ParseToken(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, InvalidTokenErr
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, InvalidTokenErr
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, InvalidTokenErr
	}
	return int64(userID), nil
}
