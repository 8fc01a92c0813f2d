package service

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tablemenu/internal/domain"
)

// TokenValidator is the slice of the auth provider the tracker needs: an
// opaque key either maps to a manager or it does not.
type TokenValidator interface {
	ValidateToken(ctx context.Context, key string) (int, bool)
}

// TrackingService classifies inbound page requests and appends visitor log
// entries. Classification is re-derived per request; the client-declared type
// is never trusted.
type TrackingService struct {
	qr        QRRepository
	logs      LogRepository
	validator TokenValidator
}

func NewTrackingService(qr QRRepository, logs LogRepository, validator TokenValidator) *TrackingService {
	return &TrackingService{qr: qr, logs: logs, validator: validator}
}

// Classify derives the visitor type for a request, in priority order:
// manager credential, then recognized table identity, then anonymous.
func (s *TrackingService) Classify(r *http.Request) domain.VisitorLog {
	entry := domain.VisitorLog{
		VisitorType: domain.VisitorAnonymous,
		IPAddress:   clientIP(r),
		UserAgent:   r.UserAgent(),
		Referrer:    r.Referer(),
		PageVisited: r.URL.Path,
	}

	if key := tokenFromRequest(r); key != "" {
		if managerID, ok := s.validator.ValidateToken(r.Context(), key); ok {
			entry.VisitorType = domain.VisitorManager
			entry.SessionID = managerSessionID(managerID, key)
			return entry
		}
	}

	if tableUUID := r.URL.Query().Get("table_uuid"); tableUUID != "" {
		qr, err := s.qr.GetQRCodeByUUID(tableUUID)
		if err == nil {
			entry.VisitorType = domain.VisitorCustomer
			entry.TableNumber = qr.TableNumber
			entry.QRCodeID = &qr.ID
			entry.SessionID = customerSessionID(tableUUID)
		}
		// Invalid identifiers fall through as anonymous.
	}

	return entry
}

// Record appends a visit entry. Failures are logged and swallowed: tracking
// must never surface to or block the underlying request.
func (s *TrackingService) Record(entry domain.VisitorLog) {
	if err := s.logs.InsertVisitorLog(&entry); err != nil {
		log.Printf("[tracking] visitor log write failed: %v", err)
	}
}

func tokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Token ") {
		return strings.TrimPrefix(auth, "Token ")
	}
	if cookie, err := r.Cookie("manager_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func managerSessionID(managerID int, key string) string {
	short := key
	if len(short) > 8 {
		short = short[:8]
	}
	return "manager_" + strconv.Itoa(managerID) + "_" + short
}

func customerSessionID(tableUUID string) string {
	short := tableUUID
	if len(short) > 8 {
		short = short[:8]
	}
	return "customer_" + short
}

// clientIP honors X-Forwarded-For when present, first hop wins.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}
