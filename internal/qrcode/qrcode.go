package qrcode

import qr "github.com/skip2/go-qrcode"

const size = 256

// Generate creates a QR code PNG of the join link handed to the second
// player.
func Generate(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, size)
}
