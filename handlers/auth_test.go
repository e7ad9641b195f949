package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coffee-wifi-server/db"
	"coffee-wifi-server/handlers"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	db.SetDB(gdb)
	return mock
}

func expectSessionLookup(mock sqlmock.Sqlmock, token string, userID int, isAdmin bool) {
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"token", "id_user", "created_at"}).
			AddRow(token, userID, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_user", "name", "email", "password_hash", "is_admin"}).
			AddRow(userID, "Ana", "ana@example.com", "hash", isAdmin))
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	called := false
	handler := handlers.RequireLogin(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest("GET", "/register-cafe", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLoginResolvesUser(t *testing.T) {
	mock := setupMockDB(t)
	expectSessionLookup(mock, "token-1", 2, false)

	handler := handlers.RequireLogin(func(w http.ResponseWriter, r *http.Request) {
		user := handlers.CurrentUser(r)
		require.NotNil(t, user)
		assert.Equal(t, 2, user.UserID)
		assert.Equal(t, "Ana", user.Name)
	})

	r := httptest.NewRequest("GET", "/register-cafe", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "token-1"})
	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	mock := setupMockDB(t)
	expectSessionLookup(mock, "token-2", 2, false)

	called := false
	handler := handlers.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest("GET", "/delete-cafe/1", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "token-2"})
	w := httptest.NewRecorder()
	handler(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	mock := setupMockDB(t)
	expectSessionLookup(mock, "token-3", 1, true)

	called := false
	handler := handlers.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest("GET", "/delete-cafe/1", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "token-3"})
	w := httptest.NewRecorder()
	handler(w, r)

	assert.True(t, called)
}

func TestCurrentUserAnonymous(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, handlers.CurrentUser(r))
}
