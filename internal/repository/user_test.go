package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdeev-m/finance-tracker/internal/model"
)

func TestPostgres_CreateGet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := model.User{
		FullName: "Dima",
		Email:    "dima@example.com",
		Password: "hashed-password",
	}
	err := usersRepo.Create(ctx, &user)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())

	byEmail, err := usersRepo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, user.FullName, byEmail.FullName)

	byID, err := usersRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, user.Email, byID.Email)
}

func TestPostgres_CreateDuplicate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := model.User{
		FullName: "Pasha",
		Email:    "pasha@example.com",
		Password: "hashed-password",
	}
	err := usersRepo.Create(ctx, &user)
	require.NoError(t, err)

	duplicate := model.User{
		FullName: "Another Pasha",
		Email:    "pasha@example.com",
		Password: "other-password",
	}
	err = usersRepo.Create(ctx, &duplicate)
	require.ErrorIs(t, err, DuplicateUserErr)
}

func TestPostgres_GetMissing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user, err := usersRepo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}
