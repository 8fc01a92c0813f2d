package tests

import (
	"bytes"
	"context"
	"database/sql"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"tablemenu/internal/domain"
	"tablemenu/internal/mocks"
	"tablemenu/internal/service"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pngBytes(t *testing.T, side int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestQRService_Generate_Success(t *testing.T) {
	mockRepo := mocks.NewQRRepository(t)
	mockStore := mocks.NewObjectStore(t)
	svc := service.NewQRService(mockRepo, mockStore, nil, "https://menu.example.com")

	var uploadedName string
	mockStore.On("Upload", mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) {
			uploadedName = args.Get(0).(string)
		}).Return("/uploads/qr.png", nil).Once()

	mockRepo.On("CreateQRCode", mock.MatchedBy(func(qr *domain.QRCode) bool {
		return qr.TableNumber == "12" && qr.UUID != "" && qr.ImageURL == "/uploads/qr.png"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.QRCode).ID = 3
	}).Return(nil).Once()

	qr, err := svc.Generate(context.Background(), service.QRRequest{TableNumber: "12"}, domain.ManagerActor(1))

	assert.NoError(t, err)
	assert.Equal(t, "#000000", qr.QRColor)
	assert.NotEmpty(t, qr.UUID)
	assert.Empty(t, qr.LogoURL)
	assert.True(t, strings.HasPrefix(uploadedName, "qr_"))
}

func TestQRService_Generate_WithLogo(t *testing.T) {
	mockRepo := mocks.NewQRRepository(t)
	mockStore := mocks.NewObjectStore(t)
	svc := service.NewQRService(mockRepo, mockStore, nil, "https://menu.example.com")

	// Logo first, then the composed QR image.
	mockStore.On("Upload", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "qr_logo_")
	}), mock.AnythingOfType("[]uint8")).Return("/uploads/logo.png", nil).Once()
	mockStore.On("Upload", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "qr_") && !strings.HasPrefix(name, "qr_logo_")
	}), mock.AnythingOfType("[]uint8")).Return("/uploads/qr.png", nil).Once()

	mockRepo.On("CreateQRCode", mock.AnythingOfType("*domain.QRCode")).Return(nil).Once()

	qr, err := svc.Generate(context.Background(), service.QRRequest{
		TableNumber:     "9",
		Color:           "#FF5733",
		LogoBytes:       pngBytes(t, 32),
		LogoContentType: "image/png",
	}, domain.ManagerActor(1))

	assert.NoError(t, err)
	assert.Equal(t, "/uploads/logo.png", qr.LogoURL)
	assert.Equal(t, "/uploads/qr.png", qr.ImageURL)
}

func TestQRService_Generate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		req       service.QRRequest
		wantField string
	}{
		{
			name:      "blank table number",
			req:       service.QRRequest{TableNumber: " "},
			wantField: "table_number",
		},
		{
			name:      "bad color",
			req:       service.QRRequest{TableNumber: "1", Color: "red"},
			wantField: "qr_color",
		},
		{
			name:      "short hex color",
			req:       service.QRRequest{TableNumber: "1", Color: "#FFF"},
			wantField: "qr_color",
		},
		{
			name: "oversized logo",
			req: service.QRRequest{
				TableNumber:     "1",
				LogoBytes:       make([]byte, 2<<20),
				LogoContentType: "image/png",
			},
			wantField: "logo",
		},
		{
			name: "unsupported logo type",
			req: service.QRRequest{
				TableNumber:     "1",
				LogoBytes:       []byte("GIF89a"),
				LogoContentType: "image/gif",
			},
			wantField: "logo",
		},
		{
			name: "undecodable logo",
			req: service.QRRequest{
				TableNumber:     "1",
				LogoBytes:       []byte("not an image"),
				LogoContentType: "image/png",
			},
			wantField: "logo",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			// No store or repo expectations: nothing may be uploaded or
			// inserted when validation fails.
			mockRepo := mocks.NewQRRepository(t)
			mockStore := mocks.NewObjectStore(t)
			svc := service.NewQRService(mockRepo, mockStore, nil, "https://menu.example.com")

			qr, err := svc.Generate(context.Background(), testCase.req, domain.ManagerActor(1))

			assert.Nil(t, qr)
			var valErr *service.ValidationError
			assert.ErrorAs(t, err, &valErr)
			assert.Equal(t, testCase.wantField, valErr.Field)
		})
	}
}

func TestQRService_Generate_DuplicateTable(t *testing.T) {
	mockRepo := mocks.NewQRRepository(t)
	mockStore := mocks.NewObjectStore(t)
	svc := service.NewQRService(mockRepo, mockStore, nil, "https://menu.example.com")

	mockStore.On("Upload", mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).
		Return("/uploads/qr.png", nil).Once()
	mockRepo.On("CreateQRCode", mock.AnythingOfType("*domain.QRCode")).
		Return(&pq.Error{Code: "23505"}).Once()

	qr, err := svc.Generate(context.Background(), service.QRRequest{TableNumber: "12"}, domain.ManagerActor(1))

	assert.Nil(t, qr)
	assert.ErrorIs(t, err, service.ErrTableTaken)
}

func TestQRService_ResolveUUID(t *testing.T) {
	mockRepo := mocks.NewQRRepository(t)
	mockStore := mocks.NewObjectStore(t)
	svc := service.NewQRService(mockRepo, mockStore, nil, "https://menu.example.com")

	mockRepo.On("GetQRCodeByUUID", "known").Return(&domain.QRCode{ID: 1, TableNumber: "4"}, nil).Once()
	mockRepo.On("GetQRCodeByUUID", "unknown").Return(nil, sql.ErrNoRows).Once()

	qr, err := svc.ResolveUUID("known")
	assert.NoError(t, err)
	assert.Equal(t, "4", qr.TableNumber)

	qr, err = svc.ResolveUUID("unknown")
	assert.Nil(t, qr)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
