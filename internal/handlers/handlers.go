package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB *sql.DB

	// UmbralCriticos is the problem-ratio percentage above which a line item
	// shows up in the critical-items report (CRITICAL_THRESHOLD env).
	UmbralCriticos float64

	// Produccion suppresses internal error detail in responses.
	Produccion bool
}

// serverError logs the real error and answers 500 with a sanitized message in
// production, the verbatim error otherwise.
func (h *Handlers) serverError(c *gin.Context, publicMsg string, err error) {
	log.Printf("ERROR %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	if h.Produccion {
		c.JSON(http.StatusInternalServerError, gin.H{"error": publicMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// isDuplicateEntry reports a MySQL unique-key violation (error 1062), used
// for aula codigo and usuario email conflicts.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
