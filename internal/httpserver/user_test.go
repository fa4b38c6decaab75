package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mcastros/clothing_store/internal/models"
	"github.com/mcastros/clothing_store/internal/transport"
)

func TestUserRegister(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"username": "test_user",
		"password": "password",
		"role":     "user",
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/users/register_user", payload)
	require.NoError(t, env.Users.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User registered successfully.", resp.Message)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := env.Tokens.AccessClaimsFromToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "test_user", claims.Subject)

	var stored models.User
	require.NoError(t, env.DB.Where("username = ?", "test_user").First(&stored).Error)
	require.NotEqual(t, "password", stored.PasswordHash)

	_, cDup := env.doJSONRequest(http.MethodPost, "/users/register_user", payload)
	err = env.Users.Register(cDup)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusConflict, he.Code)

	payload["role"] = "root"
	payload["username"] = "another_user"
	_, cBadRole := env.doJSONRequest(http.MethodPost, "/users/register_user", payload)
	err = env.Users.Register(cBadRole)
	he, ok = err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUserLogin(t *testing.T) {
	env := newTestEnv(t)

	register := map[string]string{
		"username": "test_user",
		"password": "password",
		"role":     "admin",
	}
	_, cReg := env.doJSONRequest(http.MethodPost, "/users/register_user", register)
	require.NoError(t, env.Users.Register(cReg))

	rec, c := env.doJSONRequest(http.MethodPost, "/users/login_user", map[string]string{
		"username": "test_user",
		"password": "password",
	})
	require.NoError(t, env.Users.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User logged in successfully.", resp.Message)

	claims, err := env.Tokens.AccessClaimsFromToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "test_user", claims.Subject)
	require.Equal(t, "admin", claims.Role)

	_, cBad := env.doJSONRequest(http.MethodPost, "/users/login_user", map[string]string{
		"username": "test_user",
		"password": "wrong",
	})
	err = env.Users.Login(cBad)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestUserUpdate(t *testing.T) {
	env := newTestEnv(t)

	register := map[string]string{
		"username": "test_user",
		"password": "password",
		"role":     "user",
	}
	_, cReg := env.doJSONRequest(http.MethodPost, "/users/register_user", register)
	require.NoError(t, env.Users.Register(cReg))

	rec, c := env.doJSONRequest(http.MethodPut, "/users/update_user", map[string]string{
		"username":     "test_user",
		"new_password": "new_password",
		"new_role":     "admin",
	})
	require.NoError(t, env.Users.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User test_user updated successfully.", resp.Message)

	var stored models.User
	require.NoError(t, env.DB.Where("username = ?", "test_user").First(&stored).Error)
	require.Equal(t, "admin", stored.Role)

	_, cMissing := env.doJSONRequest(http.MethodPut, "/users/update_user", map[string]string{
		"username":     "nobody",
		"new_password": "new_password",
		"new_role":     "user",
	})
	err := env.Users.Update(cMissing)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}
