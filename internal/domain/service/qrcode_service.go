package service

// QRCodeService renders share codes.
type QRCodeService interface {
	// GenerateStoreQR returns a PNG encoding the public URL of a store.
	GenerateStoreQR(storeURL string) ([]byte, error)
}
