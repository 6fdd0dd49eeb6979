package http

import (
	"github.com/gin-gonic/gin"

	"workspace-gateway/pkg/response"
)

// ListDatabases godoc
// @Summary     List accessible databases
// @Description Lists every database shared with the integration, as id/title pairs.
// @Tags        Notes
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /list_notion_databases [GET]
func (h *handler) ListDatabases(c *gin.Context) {
	ctx := c.Request.Context()

	databases, err := h.uc.ListDatabases(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListDatabases: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, databases)
}

// ListPages godoc
// @Summary     List accessible pages
// @Description Lists every page shared with the integration, with timestamps and URL.
// @Tags        Notes
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /list_notion_pages [GET]
func (h *handler) ListPages(c *gin.Context) {
	ctx := c.Request.Context()

	pages, err := h.uc.ListPages(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPages: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, pages)
}

// PageText godoc
// @Summary     Extract plain text from a page
// @Description Walks the full block tree of a page, including nested children, and
// @Description returns the concatenated text content.
// @Tags        Notes
// @Produce     json
// @Param       page_id query string true "Page ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Page ID is required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /get_text_from_notion_page [GET]
func (h *handler) PageText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPageTextReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.PageText(ctx, req.PageID)
	if err != nil {
		h.l.Errorf(ctx, "uc.PageText: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// DatabasePages godoc
// @Summary     List all pages of a database
// @Description Queries a database without a filter and collects every result page.
// @Tags        Notes
// @Produce     json
// @Param       database_id query string true "Database ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Database ID is required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /get_notion_database_pages [GET]
func (h *handler) DatabasePages(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDatabaseIDReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	pages, err := h.uc.DatabasePages(ctx, req.DatabaseID)
	if err != nil {
		h.l.Errorf(ctx, "uc.DatabasePages: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, pages)
}

// DatabaseSchema godoc
// @Summary     Retrieve a database schema
// @Description Returns the raw database object, including its property definitions.
// @Tags        Notes
// @Produce     json
// @Param       database_id query string true "Database ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Database ID is required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /get_notion_database_schema [GET]
func (h *handler) DatabaseSchema(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDatabaseIDReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	schema, err := h.uc.DatabaseSchema(ctx, req.DatabaseID)
	if err != nil {
		h.l.Errorf(ctx, "uc.DatabaseSchema: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, schema)
}

// UpdateEntry godoc
// @Summary     Update a database entry
// @Description Patches the properties of an existing page. Property payloads are
// @Description passed through to the provider unchanged.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body updateEntryReq true "Page ID and properties to overwrite"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Page ID and updated properties are required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /update_notion_database_entry [POST]
func (h *handler) UpdateEntry(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateEntryReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.UpdateEntry(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateEntry: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, updated)
}

// CreateEntry godoc
// @Summary     Create a database entry
// @Description Creates a page under a database, with optional content blocks.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body createEntryReq true "Database ID, properties and optional content"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Database ID and properties are required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /create_notion_entry [POST]
func (h *handler) CreateEntry(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEntryReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.CreateEntry(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEntry: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, created)
}

// QueryDatabase godoc
// @Summary     Query a database
// @Description Runs a filtered query and collects every result page into one array.
// @Description Filter and sorts payloads are passed through to the provider unchanged.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body queryDatabaseReq true "Query parameters"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Database ID is required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /query_notion_database [POST]
func (h *handler) QueryDatabase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryDatabaseReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	results, err := h.uc.QueryDatabase(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QueryDatabase: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, results)
}
