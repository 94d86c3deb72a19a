package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/middleware"
)

// grnHandler handles HTTP requests related to GRNs and their line items.
type grnHandler struct {
	grnService portssvc.GRNSvcFacade
}

func newGRNHandler(grnService portssvc.GRNSvcFacade) *grnHandler {
	return &grnHandler{grnService: grnService}
}

// createGRN godoc
// @Summary Create a GRN
// @Description Creates a GRN with optional line items. The GRN number is generated when omitted.
// @Tags grns
// @Accept json
// @Produce json
// @Param grn body dto.CreateGRNRequest true "GRN details"
// @Success 201 {object} dto.Response{data=dto.GRNResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "GRN number already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns [post]
func (h *grnHandler) createGRN(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateGRNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	grn, err := h.grnService.CreateGRN(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "GRN")
		return
	}

	logger.Info("GRN created via API", slog.String("grn_id", grn.GRNID), slog.String("grn_number", grn.GRNNumber))
	respondCreated(c, dto.ToGRNResponse(grn), "GRN created successfully")
}

// listGRNs godoc
// @Summary List GRNs
// @Description Lists GRNs newest first with search, status, vendor, branch and date filters
// @Tags grns
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Matches GRN number or invoice number"
// @Param status query string false "draft, submitted, approved or rejected"
// @Param vendorID query string false "Vendor ID"
// @Param branchID query string false "Branch ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.ListResponse{data=[]dto.GRNResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns [get]
func (h *grnHandler) listGRNs(c *gin.Context) {
	var query dto.ListGRNsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	grns, meta, err := h.grnService.ListGRNs(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "GRN")
		return
	}
	respondList(c, dto.ToGRNResponses(grns), meta)
}

// getGRN godoc
// @Summary Get a GRN
// @Description Returns a GRN with its line items and vendor and branch names
// @Tags grns
// @Produce json
// @Param grnID path string true "GRN ID"
// @Success 200 {object} dto.Response{data=dto.GRNResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID} [get]
func (h *grnHandler) getGRN(c *gin.Context) {
	grn, err := h.grnService.GetGRNByID(c.Request.Context(), c.Param("grnID"))
	if err != nil {
		respondError(c, err, "GRN")
		return
	}
	respondOK(c, dto.ToGRNResponse(grn), "")
}

// updateGRN godoc
// @Summary Update a GRN
// @Description Updates header fields. When lineItems is present the whole set is replaced; an empty list clears it.
// @Tags grns
// @Accept json
// @Produce json
// @Param grnID path string true "GRN ID"
// @Param grn body dto.UpdateGRNRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.GRNResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID} [put]
func (h *grnHandler) updateGRN(c *gin.Context) {
	var req dto.UpdateGRNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	grn, err := h.grnService.UpdateGRN(c.Request.Context(), c.Param("grnID"), req, userID)
	if err != nil {
		respondError(c, err, "GRN")
		return
	}
	respondOK(c, dto.ToGRNResponse(grn), "GRN updated successfully")
}

// deleteGRN godoc
// @Summary Delete a GRN
// @Description Deletes a GRN and all of its line items
// @Tags grns
// @Produce json
// @Param grnID path string true "GRN ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID} [delete]
func (h *grnHandler) deleteGRN(c *gin.Context) {
	if err := h.grnService.DeleteGRN(c.Request.Context(), c.Param("grnID")); err != nil {
		respondError(c, err, "GRN")
		return
	}
	respondOK(c, nil, "GRN deleted successfully")
}

// replaceLineItems godoc
// @Summary Replace all line items of a GRN
// @Tags grns
// @Accept json
// @Produce json
// @Param grnID path string true "GRN ID"
// @Param items body dto.ReplaceLineItemsRequest true "New line items"
// @Success 200 {object} dto.Response{data=dto.GRNResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID}/line-items [put]
func (h *grnHandler) replaceLineItems(c *gin.Context) {
	var req dto.ReplaceLineItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	grn, err := h.grnService.ReplaceLineItems(c.Request.Context(), c.Param("grnID"), req.LineItems, userID)
	if err != nil {
		respondError(c, err, "GRN")
		return
	}
	respondOK(c, dto.ToGRNResponse(grn), "Line items replaced successfully")
}

// addLineItem godoc
// @Summary Add a line item
// @Tags grns
// @Accept json
// @Produce json
// @Param grnID path string true "GRN ID"
// @Param item body dto.LineItemRequest true "Line item"
// @Success 201 {object} dto.Response{data=dto.LineItemResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID}/line-items [post]
func (h *grnHandler) addLineItem(c *gin.Context) {
	var req dto.LineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.grnService.AddLineItem(c.Request.Context(), c.Param("grnID"), req, userID)
	if err != nil {
		respondError(c, err, "GRN")
		return
	}
	respondCreated(c, dto.ToLineItemResponse(item), "Line item added successfully")
}

// updateLineItem godoc
// @Summary Update a line item
// @Tags grns
// @Accept json
// @Produce json
// @Param grnID path string true "GRN ID"
// @Param lineItemID path string true "Line item ID"
// @Param item body dto.LineItemRequest true "Line item"
// @Success 200 {object} dto.Response{data=dto.LineItemResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID}/line-items/{lineItemID} [put]
func (h *grnHandler) updateLineItem(c *gin.Context) {
	var req dto.LineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.grnService.UpdateLineItem(c.Request.Context(), c.Param("grnID"), c.Param("lineItemID"), req, userID)
	if err != nil {
		respondError(c, err, "Line item")
		return
	}
	respondOK(c, dto.ToLineItemResponse(item), "Line item updated successfully")
}

// deleteLineItem godoc
// @Summary Delete a line item
// @Tags grns
// @Produce json
// @Param grnID path string true "GRN ID"
// @Param lineItemID path string true "Line item ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID}/line-items/{lineItemID} [delete]
func (h *grnHandler) deleteLineItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.grnService.DeleteLineItem(c.Request.Context(), c.Param("grnID"), c.Param("lineItemID"), userID); err != nil {
		respondError(c, err, "Line item")
		return
	}
	respondOK(c, nil, "Line item deleted successfully")
}

// recalculateTotals godoc
// @Summary Recalculate GRN totals
// @Description Recomputes total amount, total tax and grand total from the stored line items
// @Tags grns
// @Produce json
// @Param grnID path string true "GRN ID"
// @Success 200 {object} dto.Response{data=dto.TotalsResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/{grnID}/recalculate [post]
func (h *grnHandler) recalculateTotals(c *gin.Context) {
	grnID := c.Param("grnID")
	totals, err := h.grnService.RecalculateTotals(c.Request.Context(), grnID)
	if err != nil {
		respondError(c, err, "GRN")
		return
	}
	respondOK(c, dto.TotalsResponse{
		GRNID:       grnID,
		TotalAmount: totals.TotalAmount,
		TotalTax:    totals.TotalTax,
		GrandTotal:  totals.GrandTotal,
	}, "Totals recalculated")
}

// registerGRNRoutes registers the GRN, line item and register report routes.
func registerGRNRoutes(rg *gin.RouterGroup, grnSvc portssvc.GRNSvcFacade, registerSvc portssvc.RegisterSvc) {
	h := newGRNHandler(grnSvc)
	rh := newRegisterHandler(registerSvc)

	grns := rg.Group("/grns")
	{
		grns.GET("", h.listGRNs)
		grns.POST("", h.createGRN)
		grns.GET("/report/register", rh.getRegister)
		grns.GET("/:grnID", h.getGRN)
		grns.PUT("/:grnID", h.updateGRN)
		grns.DELETE("/:grnID", h.deleteGRN)
		grns.POST("/:grnID/recalculate", h.recalculateTotals)

		items := grns.Group("/:grnID/line-items")
		items.PUT("", h.replaceLineItems)
		items.POST("", h.addLineItem)
		items.PUT("/:lineItemID", h.updateLineItem)
		items.DELETE("/:lineItemID", h.deleteLineItem)
	}
}
