package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apfood/storefront-api/internal/httperr"
	"github.com/apfood/storefront-api/internal/httpresp"
	"github.com/apfood/storefront-api/internal/middleware"
	usecase "github.com/apfood/storefront-api/internal/usecase/order"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// OrdersHandler é o lado do gestor: listagem do dia e transição de
// status. A criação fica na vitrine (PublicHandler).
type OrdersHandler struct {
	listByDate *usecase.ListOrdersByDate
	confirm    *usecase.ConfirmOrder
	cancel     *usecase.CancelOrder
}

func NewOrdersHandler(
	listByDate *usecase.ListOrdersByDate,
	confirm *usecase.ConfirmOrder,
	cancel *usecase.CancelOrder,
) *OrdersHandler {
	return &OrdersHandler{
		listByDate: listByDate,
		confirm:    confirm,
		cancel:     cancel,
	}
}

////////////////////////////////////////////////////////
// LISTAGEM
////////////////////////////////////////////////////////

func (h *OrdersHandler) ListByDate(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}

	orders, err := h.listByDate.Execute(c.Request.Context(), storeID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Use o formato YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar pedidos.")
		return
	}

	httpresp.List(c, orders)
}

////////////////////////////////////////////////////////
// TRANSIÇÕES
////////////////////////////////////////////////////////

func (h *OrdersHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm")
}

func (h *OrdersHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel")
}

func (h *OrdersHandler) transition(c *gin.Context, action string) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "ID de pedido inválido.")
		return
	}

	var result any
	switch action {
	case "confirm":
		result, err = h.confirm.Execute(c.Request.Context(), storeID, userID, uint(orderID))
	case "cancel":
		result, err = h.cancel.Execute(c.Request.Context(), storeID, userID, uint(orderID))
	}

	if err != nil {
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.Conflict(c, "invalid_state", "O pedido não permite essa transição.")
			return
		}
		httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
		return
	}

	httpresp.OK(c, result)
}
