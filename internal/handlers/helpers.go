package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itabaza/hms-api/internal/middleware"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func currentUser(c *gin.Context) (uint, string) {
	id := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)
	return id, role
}
