package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the notes endpoints onto the router. Paths keep the
// original flat layout rather than a versioned group.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.GET("/list_notion_databases", h.ListDatabases)
	r.GET("/list_notion_pages", h.ListPages)
	r.GET("/get_text_from_notion_page", h.PageText)
	r.GET("/get_notion_database_pages", h.DatabasePages)
	r.GET("/get_notion_database_schema", h.DatabaseSchema)
	r.POST("/update_notion_database_entry", h.UpdateEntry)
	r.POST("/create_notion_entry", h.CreateEntry)
	r.POST("/query_notion_database", h.QueryDatabase)
}
