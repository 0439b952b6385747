package item

import "errors"

var (
	ErrItemNotFound          = errors.New("item not found")
	ErrInvalidPayload        = errors.New("invalid payload")
	ErrEmptyItemText         = errors.New("checklist item text is empty")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrInvalidDateExpr       = errors.New("invalid date expression")
)
