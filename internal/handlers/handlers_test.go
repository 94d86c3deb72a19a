package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/handlers"
	"github.com/SscSPs/grn_tracker/internal/platform/config"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "grn-tracker-test"
	testUserID = "user-1"
)

type grnEnvelope struct {
	Success bool            `json:"success"`
	Data    dto.GRNResponse `json:"data"`
	Message string          `json:"message"`
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	grnSvc      *MockGRNService
	registerSvc *MockRegisterService
	vendorSvc   *MockVendorService
	categorySvc *MockAssetCategoryService
	token       string
}

func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.grnSvc = new(MockGRNService)
	suite.registerSvc = new(MockRegisterService)
	suite.vendorSvc = new(MockVendorService)
	suite.categorySvc = new(MockAssetCategoryService)
	suite.token = suite.generateTestToken(testUserID)

	cfg := &config.Config{
		JWTSecret:    testSecret,
		JWTIssuer:    testIssuer,
		AuthEnabled:  true,
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{
		GRN:           suite.grnSvc,
		Register:      suite.registerSvc,
		Vendor:        suite.vendorSvc,
		AssetCategory: suite.categorySvc,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, nil, nil)
}

func (suite *HandlerTestSuite) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) doJSON(method, path string, payload any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	suite.Require().NoError(err)
	return suite.do(method, path, bytes.NewReader(raw), "application/json")
}

func (suite *HandlerTestSuite) message(w *httptest.ResponseRecorder) string {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func validCreateGRNPayload() map[string]any {
	return map[string]any{
		"invoiceNumber": "INV-1",
		"vendorID":      "vendor-1",
		"branchID":      "branch-1",
		"lineItems": []map[string]any{
			{"subcategoryID": "sub-1", "itemDescription": "Laptop", "quantity": 2, "unitPrice": 100, "taxPercent": 10},
		},
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestCreateGRN_Success() {
	created := &domain.GRN{
		GRNID:         "grn-1",
		GRNNumber:     "GRN-202403-001",
		InvoiceNumber: "INV-1",
		Status:        domain.GRNDraft,
		TotalAmount:   decimal.NewFromInt(200),
		TotalTax:      decimal.NewFromInt(20),
		GrandTotal:    decimal.NewFromInt(220),
	}
	suite.grnSvc.On("CreateGRN", mock.Anything,
		mock.MatchedBy(func(req dto.CreateGRNRequest) bool {
			return req.InvoiceNumber == "INV-1" && len(req.LineItems) == 1 &&
				req.LineItems[0].Quantity.Equal(decimal.NewFromInt(2))
		}),
		testUserID,
	).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/grns", validCreateGRNPayload())

	suite.Equal(http.StatusCreated, w.Code)
	var resp grnEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("GRN-202403-001", resp.Data.GRNNumber)
	suite.True(resp.Data.GrandTotal.Equal(decimal.NewFromInt(220)))
	suite.grnSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateGRN_BindingFailures() {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing invoice number", func(p map[string]any) { delete(p, "invoiceNumber") }},
		{"unknown status", func(p map[string]any) { p["status"] = "closed" }},
		{"zero quantity", func(p map[string]any) {
			p["lineItems"] = []map[string]any{{"subcategoryID": "sub-1", "itemDescription": "x", "quantity": 0, "unitPrice": 1}}
		}},
		{"tax above 100", func(p map[string]any) {
			p["lineItems"] = []map[string]any{{"subcategoryID": "sub-1", "itemDescription": "x", "quantity": 1, "unitPrice": 1, "taxPercent": 101}}
		}},
		{"quantity just under one", func(p map[string]any) {
			p["lineItems"] = []map[string]any{{"subcategoryID": "sub-1", "itemDescription": "x", "quantity": json.Number("0.99999999999999999999"), "unitPrice": 1}}
		}},
		{"tax just over 100", func(p map[string]any) {
			p["lineItems"] = []map[string]any{{"subcategoryID": "sub-1", "itemDescription": "x", "quantity": 1, "unitPrice": 1, "taxPercent": json.Number("100.00000000000000001")}}
		}},
		{"price just under zero", func(p map[string]any) {
			p["lineItems"] = []map[string]any{{"subcategoryID": "sub-1", "itemDescription": "x", "quantity": 1, "unitPrice": json.Number("-0.00000000000000000001")}}
		}},
		{"quantity beyond six places", func(p map[string]any) {
			p["lineItems"] = []map[string]any{{"subcategoryID": "sub-1", "itemDescription": "x", "quantity": json.Number("1.0000001"), "unitPrice": 1}}
		}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			payload := validCreateGRNPayload()
			tt.mutate(payload)
			w := suite.doJSON(http.MethodPost, "/api/v1/grns", payload)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Contains(suite.message(w), "Validation failed")
		})
	}
	suite.grnSvc.AssertNotCalled(suite.T(), "CreateGRN", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateGRN_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/v1/grns", bytes.NewBufferString("{"), "application/json")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request format", suite.message(w))
}

func (suite *HandlerTestSuite) TestCreateGRN_ServiceErrors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate number", fmt.Errorf("%w: grn number", apperrors.ErrDuplicate), http.StatusConflict, "GRN already exists"},
		{"validation", apperrors.Validationf("vendor %s does not exist", "vendor-1"), http.StatusBadRequest, "vendor vendor-1 does not exist"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.grnSvc.On("CreateGRN", mock.Anything, mock.Anything, testUserID).Return(nil, tt.err).Once()
			w := suite.doJSON(http.MethodPost, "/api/v1/grns", validCreateGRNPayload())
			suite.Equal(tt.wantStatus, w.Code)
			suite.Contains(suite.message(w), tt.wantMsg)
		})
	}
}

func (suite *HandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/grns", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.grnSvc.AssertNotCalled(suite.T(), "ListGRNs", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetGRN_NotFound() {
	suite.grnSvc.On("GetGRNByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/grns/missing", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("GRN not found", suite.message(w))
}

func (suite *HandlerTestSuite) TestListGRNs_BindsFilters() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.grnSvc.On("ListGRNs", mock.Anything, mock.MatchedBy(func(q dto.ListGRNsQuery) bool {
		return q.Page == 2 && q.Limit == 5 && q.Status == "approved" && q.VendorID == "vendor-1" &&
			q.StartDate != nil && q.StartDate.Equal(start) && q.EndDate == nil
	})).Return([]domain.GRN{{GRNID: "grn-1", GRNNumber: "GRN-202403-001"}},
		pagination.Meta{CurrentPage: 2, TotalPages: 3, TotalItems: 11, ItemsPerPage: 5}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/grns?page=2&limit=5&status=approved&vendorID=vendor-1&startDate=2024-03-01", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Data       []dto.GRNResponse `json:"data"`
		Pagination pagination.Meta   `json:"pagination"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Data, 1)
	suite.Equal(11, resp.Pagination.TotalItems)
	suite.grnSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListGRNs_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/grns?startDate=03/01/2024", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateGRN_PassesLineItemPresence() {
	suite.grnSvc.On("UpdateGRN", mock.Anything, "grn-1",
		mock.MatchedBy(func(req dto.UpdateGRNRequest) bool {
			return req.LineItems != nil && len(*req.LineItems) == 0 && req.Remarks != nil && *req.Remarks == "checked"
		}),
		testUserID,
	).Return(&domain.GRN{GRNID: "grn-1"}, nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/grns/grn-1", map[string]any{"remarks": "checked", "lineItems": []any{}})

	suite.Equal(http.StatusOK, w.Code)
	suite.grnSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteGRN() {
	suite.grnSvc.On("DeleteGRN", mock.Anything, "grn-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/grns/grn-1", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("GRN deleted successfully", suite.message(w))
}

func (suite *HandlerTestSuite) TestAddLineItem_ReturnsItem() {
	item := &domain.GRNLineItem{
		LineItemID:   "li-1",
		GRNID:        "grn-1",
		Quantity:     decimal.NewFromInt(3),
		UnitPrice:    decimal.NewFromInt(100),
		TaxPercent:   decimal.NewFromInt(25),
		TaxableValue: decimal.NewFromInt(300),
		TotalAmount:  decimal.NewFromInt(375),
	}
	suite.grnSvc.On("AddLineItem", mock.Anything, "grn-1", mock.AnythingOfType("dto.LineItemRequest"), testUserID).Return(item, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/grns/grn-1/line-items", map[string]any{
		"subcategoryID": "sub-1", "itemDescription": "Chair", "quantity": 3, "unitPrice": "100", "taxPercent": 25,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp struct {
		Data dto.LineItemResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("li-1", resp.Data.LineItemID)
	suite.True(resp.Data.TotalAmount.Equal(decimal.NewFromInt(375)))
}

func (suite *HandlerTestSuite) TestUpdateLineItem_NotFound() {
	suite.grnSvc.On("UpdateLineItem", mock.Anything, "grn-1", "li-x", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("line item li-x: %w", apperrors.ErrNotFound)).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/grns/grn-1/line-items/li-x", map[string]any{
		"subcategoryID": "sub-1", "itemDescription": "Chair", "quantity": 1, "unitPrice": 5,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Line item not found", suite.message(w))
}

func (suite *HandlerTestSuite) TestRecalculateTotals() {
	suite.grnSvc.On("RecalculateTotals", mock.Anything, "grn-1").Return(domain.GRNTotals{
		TotalAmount: decimal.NewFromInt(500),
		TotalTax:    decimal.NewFromInt(45),
		GrandTotal:  decimal.NewFromInt(545),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/grns/grn-1/recalculate", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Data dto.TotalsResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("grn-1", resp.Data.GRNID)
	suite.True(resp.Data.GrandTotal.Equal(decimal.NewFromInt(545)))
}

func (suite *HandlerTestSuite) TestRegister_JSON() {
	rows := []domain.RegisterRow{{
		GRNNumber:   "GRN-202403-001",
		GRNDate:     time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		VendorName:  "Acme",
		TotalAmount: decimal.RequireFromString("200.005"),
		GrandTotal:  decimal.NewFromInt(220),
		Status:      domain.GRNApproved,
	}}
	suite.registerSvc.On("GenerateRegister", mock.Anything, mock.MatchedBy(func(f domain.RegisterFilter) bool {
		return f.BranchID == "branch-1"
	})).Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/grns/report/register?branchID=branch-1", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Data []dto.RegisterRowResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Data, 1)
	suite.Equal("Acme", resp.Data[0].VendorName)
	suite.Equal(rows[0].GRNDate.Format(domain.RegisterDateLayout), resp.Data[0].GRNDate)
	suite.registerSvc.AssertNotCalled(suite.T(), "ExportRegister", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegister_Excel() {
	suite.registerSvc.On("ExportRegister", mock.Anything, mock.Anything).
		Return([]byte("xlsx-bytes"), "grn_register_1.xlsx", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/grns/report/register?format=excel", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), `filename="grn_register_1.xlsx"`)
	suite.Equal("xlsx-bytes", w.Body.String())
}

func (suite *HandlerTestSuite) TestRegister_InvalidFormatAndRange() {
	w := suite.do(http.MethodGet, "/api/v1/grns/report/register?format=pdf", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.registerSvc.On("GenerateRegister", mock.Anything, mock.Anything).
		Return(nil, apperrors.Validationf("startDate must not be after endDate")).Once()
	w = suite.do(http.MethodGet, "/api/v1/grns/report/register?startDate=2024-04-01&endDate=2024-03-01", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.message(w), "startDate must not be after endDate")
}

func (suite *HandlerTestSuite) TestCreateVendor_InvalidEmail() {
	w := suite.doJSON(http.MethodPost, "/api/v1/vendors", map[string]any{
		"name": "Acme", "contactPerson": "Jo", "email": "not-an-email", "phone": "123", "address": "Main St",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.vendorSvc.AssertNotCalled(suite.T(), "CreateVendor", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteVendor_StillReferenced() {
	suite.vendorSvc.On("DeleteVendor", mock.Anything, "vendor-1").
		Return(fmt.Errorf("%w: vendor has GRNs", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/vendors/vendor-1", nil, "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Vendor is still referenced by other records", suite.message(w))
}

func (suite *HandlerTestSuite) TestListVendors() {
	suite.vendorSvc.On("ListVendors", mock.Anything, dto.ListQuery{Search: "acme"}).
		Return([]domain.Vendor{{VendorID: "vendor-1", Name: "Acme"}}, pagination.Meta{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 10}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/vendors?search=acme", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.vendorSvc.AssertExpectations(suite.T())
}

func multipartUpload(suite *HandlerTestSuite, fileName string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", fileName)
	suite.Require().NoError(err)
	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())
	return body, mw.FormDataContentType()
}

func (suite *HandlerTestSuite) TestImportCategories() {
	suite.categorySvc.On("ImportAssetCategories", mock.Anything, mock.Anything, testUserID).Return(3, nil).Once()

	body, contentType := multipartUpload(suite, "categories.xlsx", []byte("workbook"))
	w := suite.do(http.MethodPost, "/api/v1/asset-categories/import/excel", body, contentType)

	suite.Equal(http.StatusCreated, w.Code)
	var resp struct {
		Data dto.ImportResult `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.Data.Imported)
}

func (suite *HandlerTestSuite) TestImportCategories_RejectsUploads() {
	body, contentType := multipartUpload(suite, "categories.csv", []byte("a,b"))
	w := suite.do(http.MethodPost, "/api/v1/asset-categories/import/excel", body, contentType)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Only .xlsx files are supported", suite.message(w))

	w = suite.do(http.MethodPost, "/api/v1/asset-categories/import/excel", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.categorySvc.AssertNotCalled(suite.T(), "ImportAssetCategories", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestExportCategories() {
	suite.categorySvc.On("ExportAssetCategories", mock.Anything).Return([]byte("xlsx"), "asset_categories_1.xlsx", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/asset-categories/export/excel", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "asset_categories_1.xlsx")
}

func (suite *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestHealth_DatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{}, failingPinger{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
