package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"storeops/internal/core/apperror"
	"storeops/internal/domain/product"
	"storeops/internal/infrastructure/http/v1/dto"
	"storeops/pkg/logger"
)

// ProductHandler serves the product routes.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	var q dto.ProductListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.Filter()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters", "category must be a valid id"))
		return
	}

	page, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paged(c, dto.NewListResponse(page))
}

// LowStock handles GET /products/low-stock.
func (h *ProductHandler) LowStock(c *gin.Context) {
	items, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if items == nil {
		items = []*product.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// Get handles GET /products/:id. Each fetch bumps the view counter.
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := h.ParseID(c, "id", "product")
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product", "categoryId must be a valid id"))
		return
	}
	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "product created", p)
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParseID(c, "id", "product")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := req.ApplyTo(p); err != nil {
		h.Error(c, apperror.NewValidation("invalid product", "categoryId must be a valid id"))
		return
	}
	if err := h.service.Update(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := h.ParseID(c, "id", "product")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "product deleted")
}

// UpdateStock handles PATCH /products/:id/stock.
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	productID, ok := h.ParseID(c, "id", "product")
	if !ok {
		return
	}
	var req dto.UpdateStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.UpdateStock(c.Request.Context(), productID, product.StockOperation(req.Operation), req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

// AssignBarcode handles POST /products/:id/barcode.
func (h *ProductHandler) AssignBarcode(c *gin.Context) {
	productID, ok := h.ParseID(c, "id", "product")
	if !ok {
		return
	}

	p, err := h.service.AssignBarcode(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

var exportHeaders = []string{
	"Name", "SKU", "Barcode", "Category", "Brand",
	"Purchase Price", "Selling Price", "Stock", "Min Stock", "Unit", "Status",
}

// Export handles GET /products/export and streams an xlsx workbook.
func (h *ProductHandler) Export(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn(c.Request.Context(), "close workbook", "error", err)
		}
	}()

	const sheet = "Products"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	_ = f.SetColWidth(sheet, "A", "B", 24)
	_ = f.SetColWidth(sheet, "C", "K", 16)

	for row, p := range items {
		values := []any{
			p.Name,
			p.SKU,
			deref(p.Barcode),
			deref(p.CategoryName),
			p.Brand,
			p.PurchasePrice.InexactFloat64(),
			p.SellingPrice.InexactFloat64(),
			p.StockQuantity,
			p.MinStockLevel,
			string(p.Unit),
			string(p.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(c.Writer); err != nil {
		logger.Error(c.Request.Context(), "write workbook", "error", err)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
