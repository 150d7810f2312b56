package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{" H ", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestGeneratePNG(t *testing.T) {
	svc := NewQRCodeService(128, "M")
	png, err := svc.GeneratePNG("tunezone://pay?ref=TZ-ABC&amount=10.00")
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	_, err = svc.GeneratePNG("")
	assert.Error(t, err)
}

func TestNewQRCodeService_TamanoPorDefecto(t *testing.T) {
	assert.Equal(t, DefaultSize, NewQRCodeService(0, "").size)
}
