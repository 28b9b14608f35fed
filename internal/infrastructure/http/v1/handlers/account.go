package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/domain/account"
	"storeops/internal/infrastructure/http/v1/dto"
)

// AccountHandler serves the account and transaction routes.
type AccountHandler struct {
	*BaseHandler
	service *account.Service
}

// NewAccountHandler creates an account handler.
func NewAccountHandler(base *BaseHandler, service *account.Service) *AccountHandler {
	return &AccountHandler{BaseHandler: base, service: service}
}

// List handles GET /accounts.
func (h *AccountHandler) List(c *gin.Context) {
	var q dto.AccountListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page, err := h.service.List(c.Request.Context(), q.Filter())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paged(c, dto.NewListResponse(page))
}

// Get handles GET /accounts/:id and includes the live balance summary.
func (h *AccountHandler) Get(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id", "account")
	if !ok {
		return
	}

	a, summary, err := h.service.GetByID(c.Request.Context(), accountID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"account": a,
			"summary": summary,
		},
	})
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	a := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), a); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "account created", a)
}

// Update handles PUT /accounts/:id.
func (h *AccountHandler) Update(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id", "account")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	a, _, err := h.service.GetByID(c.Request.Context(), accountID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.ApplyTo(a)
	if err := h.service.Update(c.Request.Context(), a); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, a)
}

// Delete handles DELETE /accounts/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id", "account")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), accountID); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "account deleted")
}

// ListTransactions handles GET /accounts/:id/transactions.
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id", "account")
	if !ok {
		return
	}
	var q dto.TransactionListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page, summary, err := h.service.ListTransactions(c.Request.Context(), q.Filter(accountID))
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := dto.NewListResponse(page)
	resp.Summary = summary
	h.Paged(c, resp)
}

// CreateTransaction handles POST /accounts/:id/transactions.
func (h *AccountHandler) CreateTransaction(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id", "account")
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t := req.ToEntity(accountID)
	if err := h.service.CreateTransaction(c.Request.Context(), t); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "transaction created", t)
}

// DeleteTransaction handles DELETE /accounts/:id/transactions/:txId.
func (h *AccountHandler) DeleteTransaction(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id", "account")
	if !ok {
		return
	}
	txID, ok := h.ParseID(c, "txId", "transaction")
	if !ok {
		return
	}

	if err := h.service.DeleteTransaction(c.Request.Context(), accountID, txID); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "transaction deleted")
}
