package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list items query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateDescriptionReq binds the description body + URI param.
func (h *handler) processUpdateDescriptionReq(c *gin.Context) (updateDescriptionReq, error) {
	var req updateDescriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processToggleReq binds and validates the clicked row.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processAddItemReq binds the new checklist entry.
func (h *handler) processAddItemReq(c *gin.Context) (addItemReq, error) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processTimestampReq binds the cursor position. An empty body means
// "now at the start of the description".
func (h *handler) processTimestampReq(c *gin.Context) (timestampReq, error) {
	var req timestampReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.ID = c.Param("id")
	return req, nil
}
