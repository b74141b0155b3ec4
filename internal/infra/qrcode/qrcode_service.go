// Package qrcode renders offer share codes.
package qrcode

import (
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const offerPathSegment = "/offers/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. The code content
// is the public URL of the offer under cfg.QRCode.BaseURL.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := cfg.QRCode.Size
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel),
		baseURL:              strings.TrimSuffix(cfg.QRCode.BaseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// OfferURL is the content encoded for an offer.
func (s *qrcodeService) OfferURL(offerID uuid.UUID) string {
	return s.baseURL + offerPathSegment + offerID.String() + "/"
}

// GenerateOfferQR renders the offer URL as a PNG.
func (s *qrcodeService) GenerateOfferQR(offerID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.OfferURL(offerID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOfferQR reads the offer ID back out of a scanned offer URL.
func (s *qrcodeService) ParseOfferQR(payload string) (uuid.UUID, error) {
	payload = strings.TrimSpace(payload)

	rest, ok := strings.CutPrefix(payload, s.baseURL+offerPathSegment)
	if !ok {
		return uuid.Nil, errors.Errorf("invalid QR code content: %q is not an offer link", payload)
	}

	offerID, err := uuid.Parse(strings.TrimSuffix(rest, "/"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse offer ID")
	}

	return offerID, nil
}
