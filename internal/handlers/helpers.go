package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbersmart-admin/internal/middleware"
	ucInvoice "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/invoice"
)

// queryPage reads ?page=; anything missing or below 1 is page 1.
// The result is set on Query.Page directly rather than through GoToPage,
// which needs totalPages; listview.Apply clamps a page past the end.
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("page", "1")))
	if err != nil || page <= 0 {
		return 1
	}
	return page
}

func actorFrom(c *gin.Context) ucInvoice.Actor {
	return ucInvoice.Actor{
		UserID:    c.GetString(middleware.ContextUserID),
		RequestID: c.GetString(middleware.ContextRequestID),
	}
}
