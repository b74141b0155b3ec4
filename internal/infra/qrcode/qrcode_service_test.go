package qrcode

import (
	"testing"

	"bazaar/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	cfg := config.Defaults()
	cfg.QRCode.Size = size
	cfg.QRCode.ErrorCorrectionLevel = level
	cfg.QRCode.BaseURL = "https://bazaar.example/api/"

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestNewQRCodeService_RecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestService(256, tt.level).errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateOfferQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		qrBytes, err := newTestService(size, "M").GenerateOfferQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ParseOfferQR(t *testing.T) {
	svc := newTestService(256, "M")
	offerID := uuid.New()

	url := svc.OfferURL(offerID)
	assert.Equal(t, "https://bazaar.example/api/offers/"+offerID.String()+"/", url)

	parsed, err := svc.ParseOfferQR(url)
	require.NoError(t, err)
	assert.Equal(t, offerID, parsed)

	parsed, err = svc.ParseOfferQR("  https://bazaar.example/api/offers/" + offerID.String() + "\n")
	require.NoError(t, err)
	assert.Equal(t, offerID, parsed)
}

func TestQRCodeService_ParseOfferQR_Invalid(t *testing.T) {
	svc := newTestService(256, "M")

	_, err := svc.ParseOfferQR("https://elsewhere.example/offers/" + uuid.NewString() + "/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an offer link")

	_, err = svc.ParseOfferQR("https://bazaar.example/api/offers/not-a-uuid/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse offer ID")
}
