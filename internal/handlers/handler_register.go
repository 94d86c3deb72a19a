package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/middleware"
)

type registerHandler struct {
	registerService portssvc.RegisterSvc
}

func newRegisterHandler(registerService portssvc.RegisterSvc) *registerHandler {
	return &registerHandler{registerService: registerService}
}

// getRegister godoc
// @Summary GRN register report
// @Description Returns the GRN register, latest GRN date first. format=excel downloads a spreadsheet.
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Param vendorID query string false "Vendor ID"
// @Param branchID query string false "Branch ID"
// @Param format query string false "json or excel" default(json)
// @Success 200 {object} dto.Response{data=[]dto.RegisterRowResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /grns/report/register [get]
func (h *registerHandler) getRegister(c *gin.Context) {
	var query dto.RegisterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	filter := query.ToFilter()

	if query.Format == "excel" {
		content, fileName, err := h.registerService.ExportRegister(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Register")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Register exported", slog.String("file_name", fileName))
		sendWorkbook(c, content, fileName)
		return
	}

	rows, err := h.registerService.GenerateRegister(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Register")
		return
	}
	respondOK(c, dto.ToRegisterRowResponses(rows), "")
}
