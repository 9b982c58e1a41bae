package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devashishkr3/vaastman-backend/database"
	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.BlacklistedToken{}))
	database.DB = db

	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")

	app := fiber.New()
	app.Post("/api/v1/auth/register", Register)
	app.Post("/api/v1/auth/login", Login)
	app.Post("/api/v1/auth/refresh", RefreshToken)
	app.Post("/api/v1/auth/logout", Logout)
	return app
}

func TestRegisterLoginFlow(t *testing.T) {
	app := setupAuthApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Ravi Kumar",
		"email":    "ravi@vaastman.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, env.Success)

	var user models.User
	require.NoError(t, database.DB.First(&user, "email = ?", "ravi@vaastman.com").Error)
	require.Equal(t, "EMPLOYEE", user.Role, "role defaults to EMPLOYEE")
	require.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	status, env = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "ravi@vaastman.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)
	require.Contains(t, string(env.Data), "accessToken")
	require.Contains(t, string(env.Data), "refreshToken")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupAuthApp(t)

	body := map[string]any{"name": "Ravi Kumar", "email": "ravi@vaastman.com", "password": "secret123"}
	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", body)
	require.Equal(t, fiber.StatusCreated, status)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", body)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "user already exist, please login", env.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupAuthApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Ravi Kumar", "email": "ravi@vaastman.com", "password": "secret123",
	})

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email": "ravi@vaastman.com", "password": "wrong-password",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Invalid Password", env.Message)
}

func TestRefreshAndLogout(t *testing.T) {
	app := setupAuthApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Ravi Kumar", "email": "ravi@vaastman.com", "password": "secret123",
	})

	var user models.User
	require.NoError(t, database.DB.First(&user, "email = ?", "ravi@vaastman.com").Error)
	refreshToken, err := signToken(user, "test-refresh-secret", 72*time.Hour)
	require.NoError(t, err)

	doAuth := func(path string) (int, envelope) {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Authorization", "Bearer "+refreshToken)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		var env envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		return resp.StatusCode, env
	}

	status, env := doAuth("/api/v1/auth/refresh")
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, string(env.Data), "accessToken")

	status, env = doAuth("/api/v1/auth/logout")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Logout Successfull", env.Message)

	status, env = doAuth("/api/v1/auth/refresh")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Refresh token is already blacklisted", env.Message)
}
