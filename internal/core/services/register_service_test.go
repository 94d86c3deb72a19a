package services_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/SscSPs/grn_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegisterReader struct {
	mock.Mock
}

func (m *MockRegisterReader) ListRegisterRows(ctx context.Context, filter domain.RegisterFilter) ([]domain.RegisterRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisterRow), args.Error(1)
}

type MockRegisterExporter struct {
	mock.Mock
}

func (m *MockRegisterExporter) WriteRegister(w io.Writer, rows []domain.RegisterRow) error {
	args := m.Called(w, rows)
	if err := args.Error(0); err != nil {
		return err
	}
	_, err := w.Write([]byte("xlsx"))
	return err
}

func TestRegisterService_GenerateRegister(t *testing.T) {
	ctx := context.Background()
	rows := []domain.RegisterRow{{GRNNumber: "GRN-202403-002"}, {GRNNumber: "GRN-202403-001"}}
	filter := domain.RegisterFilter{VendorID: "vendor-1"}

	reader := new(MockRegisterReader)
	reader.On("ListRegisterRows", ctx, filter).Return(rows, nil).Once()

	svc := services.NewRegisterService(reader, new(MockRegisterExporter))
	got, err := svc.GenerateRegister(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
	reader.AssertExpectations(t)
}

func TestRegisterService_GenerateRegister_InvertedRange(t *testing.T) {
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -3)

	reader := new(MockRegisterReader)
	svc := services.NewRegisterService(reader, new(MockRegisterExporter))
	_, err := svc.GenerateRegister(context.Background(), domain.RegisterFilter{StartDate: &start, EndDate: &end})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	reader.AssertNotCalled(t, "ListRegisterRows", mock.Anything, mock.Anything)
}

func TestRegisterService_ExportRegister(t *testing.T) {
	ctx := context.Background()
	rows := []domain.RegisterRow{{GRNNumber: "GRN-202403-001"}}
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	reader := new(MockRegisterReader)
	reader.On("ListRegisterRows", ctx, domain.RegisterFilter{}).Return(rows, nil).Once()
	exporter := new(MockRegisterExporter)
	exporter.On("WriteRegister", mock.Anything, rows).Return(nil).Once()

	svc := services.NewRegisterService(reader, exporter, services.WithClock(func() time.Time { return now }))
	content, fileName, err := svc.ExportRegister(ctx, domain.RegisterFilter{})

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), content)
	assert.Equal(t, "grn_register_1710496800.xlsx", fileName)
	exporter.AssertExpectations(t)
}

func TestRegisterService_ExportRegister_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("reader fails", func(t *testing.T) {
		reader := new(MockRegisterReader)
		reader.On("ListRegisterRows", ctx, domain.RegisterFilter{}).Return(nil, errors.New("db down")).Once()

		_, _, err := services.NewRegisterService(reader, new(MockRegisterExporter)).ExportRegister(ctx, domain.RegisterFilter{})
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("exporter fails", func(t *testing.T) {
		reader := new(MockRegisterReader)
		reader.On("ListRegisterRows", ctx, domain.RegisterFilter{}).Return([]domain.RegisterRow{}, nil).Once()
		exporter := new(MockRegisterExporter)
		exporter.On("WriteRegister", mock.Anything, []domain.RegisterRow{}).Return(errors.New("disk full")).Once()

		_, _, err := services.NewRegisterService(reader, exporter).ExportRegister(ctx, domain.RegisterFilter{})
		assert.ErrorContains(t, err, "disk full")
	})
}
