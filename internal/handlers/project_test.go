package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/officehub/office-management-api/internal/constants"
	"github.com/officehub/office-management-api/internal/database"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProjectTestEnv(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Task{}))
	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func projectRouterAs(actor policy.Actor) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyActor, actor)
	})
	handler := NewProjectHandler()
	r.GET("/api/projects", handler.List)
	return r
}

func TestProjectListRequiresManagerOrAdmin(t *testing.T) {
	db := setupProjectTestEnv(t)

	require.NoError(t, db.Create(&models.Project{
		Name:      "Payroll revamp",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	w := httptest.NewRecorder()
	projectRouterAs(policy.Actor{UserID: 5, Role: models.RoleEmployee}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	projectRouterAs(policy.Actor{UserID: 2, Role: models.RoleManager}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Projects, 1)
	require.Equal(t, "Payroll revamp", body.Projects[0].Name)
}
