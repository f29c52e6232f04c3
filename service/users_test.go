package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelab/catalog-api/models"
)

func newUsersFixture(t *testing.T) *Users {
	t.Helper()
	return NewUsers(models.NewUsersRepository(newTestDB(t)))
}

func TestUsersCreateRoundTrip(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, UserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestUsersViewOmitsPasswordHash(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, UserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(created)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "password_hash")
	assert.NotContains(t, string(raw), "hunter2")
}

func TestUsersRoleCoercion(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	// Anything outside {"user","admin"} silently becomes "user".
	view, err := svc.Create(ctx, UserInput{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "pw",
		Role:     "superadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, view.Role)

	view, err = svc.Create(ctx, UserInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "pw",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, view.Role)
}

func TestUsersCreateDuplicateEmail(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, UserInput{Name: "Imposter", Email: "ada@example.com", Password: "pw"})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestUsersCreateValidation(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	var verr *ValidationError

	_, err := svc.Create(ctx, UserInput{Email: "a@b.com", Password: "pw"})
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(ctx, UserInput{Name: "Ada", Password: "pw"})
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(ctx, UserInput{Name: "Ada", Email: "a@b.com"})
	assert.ErrorAs(t, err, &verr)
}

func TestUsersLogin(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, UserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2",
		Role:     "admin",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "login ok", result.Message)
	assert.Equal(t, models.RoleAdmin, result.Role)
}

func TestUsersLoginFailuresIndistinguishable(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "hunter2"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "x"})
	_, wrongErr := svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, models.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, models.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUsersVerifyAdmin(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: "admin"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, UserInput{Name: "Bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	view, err := svc.VerifyAdmin(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", view.Email)

	_, err = svc.VerifyAdmin(ctx, "bob@example.com")
	assert.ErrorIs(t, err, models.ErrAdminRequired)

	_, err = svc.VerifyAdmin(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, models.ErrAdminRequired)
}

func TestUsersListNewestFirst(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, UserInput{Name: "Bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
}
