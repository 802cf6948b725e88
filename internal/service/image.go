package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/png"
)

// maxUploadBytes caps the submitted photo near 1 MB, the backend limit.
const maxUploadBytes = 1_000_000

// reencodeJPEG re-encodes the image as JPEG, stepping quality down until
// the payload fits under the cap. If even the lowest step stays over,
// the smallest attempt is returned and the backend gets the final say.
func reencodeJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	for quality := 90; quality >= 10; quality -= 10 {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		if buf.Len() <= maxUploadBytes {
			break
		}
	}
	return buf.Bytes(), nil
}
