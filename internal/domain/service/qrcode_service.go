package service

import "github.com/google/uuid"

// QRCodeService renders and reads the share codes printed for offers.
type QRCodeService interface {
	// GenerateOfferQR renders a PNG share code pointing at the offer.
	GenerateOfferQR(offerID uuid.UUID) ([]byte, error)

	// ParseOfferQR extracts the offer ID from a scanned share code payload.
	ParseOfferQR(payload string) (uuid.UUID, error)
}
