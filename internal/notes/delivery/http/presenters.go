package http

import "workspace-gateway/internal/notes"

// --- Request DTOs ---

type pageTextReq struct {
	PageID string `form:"page_id"`
}

func (r pageTextReq) validate() error {
	if r.PageID == "" {
		return errPageIDRequired
	}
	return nil
}

// ---

type databaseIDReq struct {
	DatabaseID string `form:"database_id"`
}

func (r databaseIDReq) validate() error {
	if r.DatabaseID == "" {
		return errDatabaseIDRequired
	}
	return nil
}

// ---

type updateEntryReq struct {
	PageID            string                 `json:"page_id"`
	UpdatedProperties map[string]interface{} `json:"updated_properties"`
}

func (r updateEntryReq) validate() error {
	if r.PageID == "" || len(r.UpdatedProperties) == 0 {
		return errUpdateFieldsRequired
	}
	return nil
}

func (r updateEntryReq) toInput() notes.UpdateEntryInput {
	return notes.UpdateEntryInput{
		PageID:     r.PageID,
		Properties: r.UpdatedProperties,
	}
}

// ---

type createEntryReq struct {
	DatabaseID string                 `json:"database_id"`
	Properties map[string]interface{} `json:"properties"`
	Content    []interface{}          `json:"content"`
}

func (r createEntryReq) validate() error {
	if r.DatabaseID == "" || len(r.Properties) == 0 {
		return errCreateFieldsRequired
	}
	return nil
}

func (r createEntryReq) toInput() notes.CreateEntryInput {
	return notes.CreateEntryInput{
		DatabaseID: r.DatabaseID,
		Properties: r.Properties,
		Children:   r.Content,
	}
}

// ---

type queryDatabaseReq struct {
	DatabaseID string                 `json:"database_id"`
	Filter     map[string]interface{} `json:"filter"`
	Sorts      []interface{}          `json:"sorts"`
	PageSize   int                    `json:"page_size"`
}

func (r queryDatabaseReq) validate() error {
	if r.DatabaseID == "" {
		return errDatabaseIDRequired
	}
	return nil
}

func (r queryDatabaseReq) toInput() notes.QueryDatabaseInput {
	return notes.QueryDatabaseInput{
		DatabaseID: r.DatabaseID,
		Filter:     r.Filter,
		Sorts:      r.Sorts,
		PageSize:   r.PageSize,
	}
}
