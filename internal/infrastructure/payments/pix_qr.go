package payments

import (
	"encoding/base64"
	"fmt"

	"checkout_hub/internal/domain/entities"

	"github.com/skip2/go-qrcode"
)

const pixQRSize = 256

// ensurePixQR fills the QR image from the copy-and-paste code when the reply
// only carries the code.
func ensurePixQR(gp *entities.GatewayPayment) error {
	if gp.Pix == nil || gp.Pix.QRCode == "" || gp.Pix.QRCodeBase64 != "" {
		return nil
	}
	png, err := qrcode.Encode(gp.Pix.QRCode, qrcode.Medium, pixQRSize)
	if err != nil {
		return fmt.Errorf("rendering pix qr code: %w", err)
	}
	gp.Pix.QRCodeBase64 = base64.StdEncoding.EncodeToString(png)
	return nil
}
