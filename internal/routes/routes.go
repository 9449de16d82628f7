package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/handlers"
	"github.com/salleinventory/salleinventory-golang/internal/middleware"
)

// CORSMiddleware tells the browser which frontend origin may call the API.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:8080"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	// --- Static Frontend ---
	router.StaticFile("/", "./web/index.html")
	router.Static("/js", "./web/js")
	router.Static("/css", "./web/css")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	api := router.Group("/api")
	{
		// --- Auth Routes (Public) ---
		api.POST("/login", h.Login)

		// --- Protected Routes (Login Required) ---
		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.GET("/me", h.Me)

			// --- Aulas ---
			auth.GET("/aulas", h.GetAulas)
			auth.POST("/aulas", middleware.AulaEditorMiddleware(), h.CreateAula)
			auth.PUT("/aulas/:aulaId", middleware.AulaEditorMiddleware(), h.UpdateAula)

			// --- Catálogo ---
			auth.GET("/categorias", h.GetCategorias)
			auth.GET("/categorias/:categoryId/subcategorias",
				middleware.CategoryPermissionMiddleware(h.DB), h.GetSubcategorias)

			// --- Inventario ---
			auth.GET("/aulas/:aulaId/inventario", h.GetInventario)
			auth.POST("/aulas/:aulaId/inventario", h.CrearInventario)

			// --- Reportes ---
			auth.GET("/reportes/resumen", h.GetReporteResumen)
			auth.GET("/reportes/criticos", h.GetReporteCriticos)
			auth.GET("/reportes/aulas", h.GetReporteAulas)
		}

		// --- Admin-Only Routes ---
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/usuarios", h.GetUsuarios)
			admin.POST("/usuarios", h.CreateUsuario)
		}
	}

	return router
}
