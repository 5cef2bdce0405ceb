package validation

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MaxImageBytes caps decoded image payloads (profile pictures and
// image attachments) at 5 MiB.
const MaxImageBytes = 5 << 20

// ValidateImage checks that the payload is a decodable raster image in
// a supported format (png, jpeg, gif, webp) and within the size cap.
func ValidateImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("image payload is empty")
	}
	if len(data) > MaxImageBytes {
		return fmt.Errorf("image exceeds the %d byte limit", MaxImageBytes)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("unsupported or corrupt image data")
	}
	return nil
}
