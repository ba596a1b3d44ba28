package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jimmy058910/replitballgame-sub010/internal/version"
)

// GetVersion reports the build metadata baked in at link time.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
