package render

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSizePx = 300

// EncodeQRDataURL renders the verification URL as an inline PNG data URL so
// the certificate template embeds it without a second network fetch.
func EncodeQRDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSizePx)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
