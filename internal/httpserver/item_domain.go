package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-checklist/internal/item/delivery/http"
	"item-checklist/internal/middleware"
)

// setupItemDomain builds the item handler and registers its routes
// under /api/v1/items.
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := itemHTTP.New(srv.l, srv.itemUC)
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
