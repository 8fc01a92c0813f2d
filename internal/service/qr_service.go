package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tablemenu/internal/domain"
	"tablemenu/internal/storage"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

const (
	// MaxLogoBytes caps logo uploads and remote fetches so compositing
	// cost stays bounded.
	MaxLogoBytes = 1 << 20

	// qrImageSize is the square pixel size of generated QR images.
	qrImageSize = 512

	logoFetchTimeout = 10 * time.Second
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// QRRequest describes one QR generation. A logo may be supplied inline or by
// URL; either way it is validated, resized to a quarter of the QR image and
// centered over the pattern.
type QRRequest struct {
	TableNumber     string
	Color           string
	LogoBytes       []byte
	LogoContentType string
	LogoURL         string
}

// QRService maps table numbers to opaque identifiers and renders the
// scannable image artifact.
type QRService struct {
	repo        QRRepository
	store       ObjectStore
	publisher   ActivityPublisher
	frontendURL string
	client      *http.Client
}

func NewQRService(repo QRRepository, store ObjectStore, publisher ActivityPublisher, frontendURL string) *QRService {
	return &QRService{
		repo:        repo,
		store:       store,
		publisher:   publisher,
		frontendURL: frontendURL,
		client:      &http.Client{Timeout: logoFetchTimeout},
	}
}

// Generate produces a new table identity and its QR image. The record is only
// inserted after the image artifact exists, so a QR row returned to a caller
// always carries both the identifier and the image reference.
func (s *QRService) Generate(ctx context.Context, req QRRequest, actor domain.Actor) (*domain.QRCode, error) {
	if strings.TrimSpace(req.TableNumber) == "" {
		return nil, invalid("table_number", "must not be empty")
	}
	if req.Color == "" {
		req.Color = "#000000"
	}
	foreground, err := parseHexColor(req.Color)
	if err != nil {
		return nil, invalid("qr_color", "must be a #RRGGBB hex color")
	}

	logo, logoData, err := s.loadLogo(ctx, req)
	if err != nil {
		return nil, err
	}

	tableUUID := uuid.New().String()
	target := fmt.Sprintf("%s?table_uuid=%s", s.frontendURL, tableUUID)

	// Highest error correction so the centered logo, at up to a quarter of
	// the image, does not break decodability.
	code, err := qrcode.New(target, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code.ForegroundColor = foreground
	code.BackgroundColor = color.White

	img := code.Image(qrImageSize)
	if logo != nil {
		img = overlayLogo(img, logo)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render qr image: %w", err)
	}

	var logoURL string
	if logoData != nil {
		logoURL, err = s.store.Upload("qr_logo_"+tableUUID+".png", logoData)
		if err != nil {
			return nil, fmt.Errorf("%w: upload logo: %v", ErrDependency, err)
		}
	}

	imageURL, err := s.store.Upload("qr_"+tableUUID+".png", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: upload qr image: %v", ErrDependency, err)
	}

	qr := &domain.QRCode{
		UUID:        tableUUID,
		TableNumber: strings.TrimSpace(req.TableNumber),
		QRColor:     req.Color,
		ImageURL:    imageURL,
		LogoURL:     logoURL,
	}
	if err := s.repo.CreateQRCode(qr); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrTableTaken
		}
		return nil, err
	}

	s.publish(ctx, domain.NewActivityEvent(domain.ActivityQRGenerated, actor, map[string]string{
		"qr_id":        strconv.Itoa(qr.ID),
		"table_number": qr.TableNumber,
	}))
	return qr, nil
}

func (s *QRService) List() ([]domain.QRCode, error) {
	return s.repo.ListQRCodes()
}

// ResolveUUID looks a table identity up by its opaque identifier.
func (s *QRService) ResolveUUID(tableUUID string) (*domain.QRCode, error) {
	qr, err := s.repo.GetQRCodeByUUID(tableUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return qr, nil
}

// loadLogo validates the supplied logo, fetching it first when only a URL was
// given. The fetch is bounded by the client timeout and the byte cap.
func (s *QRService) loadLogo(ctx context.Context, req QRRequest) (image.Image, []byte, error) {
	data := req.LogoBytes
	contentType := req.LogoContentType

	if data == nil && req.LogoURL != "" {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.LogoURL, nil)
		if err != nil {
			return nil, nil, invalid("logo_url", "must be a valid URL")
		}
		resp, err := s.client.Do(httpReq)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: fetch logo: %v", ErrDependency, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, nil, fmt.Errorf("%w: fetch logo: status %d", ErrDependency, resp.StatusCode)
		}

		data, err = io.ReadAll(io.LimitReader(resp.Body, MaxLogoBytes+1))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: fetch logo: %v", ErrDependency, err)
		}
		contentType = resp.Header.Get("Content-Type")
	}

	if data == nil {
		return nil, nil, nil
	}
	if len(data) > MaxLogoBytes {
		return nil, nil, invalid("logo", "must be at most 1 MiB")
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	switch contentType {
	case "image/png", "image/jpeg", "image/jpg":
	default:
		return nil, nil, invalid("logo", "must be a PNG or JPEG image")
	}

	logo, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, invalid("logo", "could not decode image")
	}
	return logo, data, nil
}

// overlayLogo scales the logo to a quarter of the smaller QR dimension and
// pastes it dead center.
func overlayLogo(qrImg image.Image, logo image.Image) image.Image {
	bounds := qrImg.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, qrImg, bounds.Min, draw.Src)

	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	logoSize := side / 4

	scaled := image.NewRGBA(image.Rect(0, 0, logoSize, logoSize))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Over, nil)

	offset := image.Pt(
		bounds.Min.X+(bounds.Dx()-logoSize)/2,
		bounds.Min.Y+(bounds.Dy()-logoSize)/2,
	)
	draw.Draw(canvas, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(logoSize, logoSize))},
		scaled, image.Point{}, draw.Over)
	return canvas
}

func parseHexColor(value string) (color.Color, error) {
	if !hexColorPattern.MatchString(value) {
		return nil, fmt.Errorf("invalid hex color %q", value)
	}
	r, _ := strconv.ParseUint(value[1:3], 16, 8)
	g, _ := strconv.ParseUint(value[3:5], 16, 8)
	b, _ := strconv.ParseUint(value[5:7], 16, 8)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

func (s *QRService) publish(ctx context.Context, event domain.ActivityEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishActivity(ctx, event); err != nil {
		log.Printf("[qr] failed to publish %s event: %v", event.Type, err)
	}
}
