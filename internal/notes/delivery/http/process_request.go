package http

import (
	"github.com/gin-gonic/gin"
)

// processPageTextReq binds and validates the page text query parameters.
func (h *handler) processPageTextReq(c *gin.Context) (pageTextReq, error) {
	var req pageTextReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDatabaseIDReq binds and validates a database_id query parameter.
func (h *handler) processDatabaseIDReq(c *gin.Context) (databaseIDReq, error) {
	var req databaseIDReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateEntryReq binds and validates the update entry body.
func (h *handler) processUpdateEntryReq(c *gin.Context) (updateEntryReq, error) {
	var req updateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateEntryReq binds and validates the create entry body.
func (h *handler) processCreateEntryReq(c *gin.Context) (createEntryReq, error) {
	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processQueryDatabaseReq binds and validates the query body.
func (h *handler) processQueryDatabaseReq(c *gin.Context) (queryDatabaseReq, error) {
	var req queryDatabaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
