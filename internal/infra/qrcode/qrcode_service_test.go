package qrcode

import (
	"testing"

	"cardbox/config"
	"cardbox/internal/domain/entity"
	"cardbox/internal/infra/share"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() *config.Config {
	cfg := &config.Config{}
	cfg.Share.BaseURL = "https://cards.example.com/"

	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	codec := share.NewCodec(newTestCodec())

	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(codec, tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	codec := share.NewCodec(newTestCodec())
	service := NewQRCodeService(codec, 256, "M")

	card := entity.DefaultCard()
	card.ID = "card-qr"

	qrBytes, err := service.GenerateShareQR(card)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}
