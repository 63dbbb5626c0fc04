package service

// QRCodeService renders QR codes for the public menu.
type QRCodeService interface {
	// GenerateMenuQR encodes url as a PNG image.
	GenerateMenuQR(url string) ([]byte, error)
}
