package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salleinventory/salleinventory-golang/internal/auth"
	"github.com/salleinventory/salleinventory-golang/internal/models"
)

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetInt64(CtxUserID),
			"rol":    c.GetString(CtxRol),
		})
	})
	r.GET("/protected", chain...)
	return r
}

func tokenFor(t *testing.T, rol string) string {
	t.Helper()
	token, err := auth.GenerateToken(&models.Usuario{
		ID:     7,
		Nombre: "Test User",
		Email:  "test@salle.edu",
		Rol:    rol,
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	t.Run("sin cabecera Authorization", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("formato distinto de Bearer", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token inválido", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token válido llena el contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RolDocente))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userID":7`)
		assert.Contains(t, w.Body.String(), `"rol":"docente"`)
	})
}

func TestAdminMiddleware(t *testing.T) {
	r := protectedRouter(AdminMiddleware())

	t.Run("docente recibe 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RolDocente))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("administrador pasa", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RolAdministrador))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAulaEditorMiddleware(t *testing.T) {
	r := protectedRouter(AulaEditorMiddleware())

	for rol, want := range map[string]int{
		models.RolAdministrador: http.StatusOK,
		models.RolSupervisor:    http.StatusOK,
		models.RolSoporteTI:     http.StatusForbidden,
		models.RolMantenimiento: http.StatusForbidden,
		models.RolDocente:       http.StatusForbidden,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, rol))
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "rol %s", rol)
	}
}
