package http

import (
	"errors"
	"net/http"

	"item-checklist/internal/item"
	pkgErrors "item-checklist/pkg/errors"
)

var (
	errItemNotFound          = pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	errChecklistItemNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "checklist item not found")
	errInvalidPayload        = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid payload")
	errEmptyItemText         = pkgErrors.NewHTTPError(http.StatusBadRequest, "checklist item text is required")
	errInvalidDateExpr       = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date expression")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, item.ErrChecklistItemNotFound):
		return errChecklistItemNotFound
	case errors.Is(err, item.ErrInvalidPayload):
		return errInvalidPayload
	case errors.Is(err, item.ErrEmptyItemText):
		return errEmptyItemText
	case errors.Is(err, item.ErrInvalidDateExpr):
		return errInvalidDateExpr
	default:
		return pkgErrors.ErrInternalServerError
	}
}
