package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/webp"
)

// DefaultJPEGQuality は参照画像を取り込むときの既定の JPEG 品質です。
const DefaultJPEGQuality = 85

// CompressToJPEG は画像データ（PNG, GIF, JPEG, WebP）を JPEG 形式に再エンコードします。
// image.Decode が扱えるフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToDataURI は画像を可能なら JPEG に圧縮して data URI にします。
// 圧縮後の方が大きい場合やデコードできない場合は元のバイト列をそのまま使います。
func ToDataURI(data []byte, quality int) string {
	if compressed, err := CompressToJPEG(data, quality); err == nil && len(compressed) < len(data) {
		return EncodeDataURI("image/jpeg", compressed)
	}
	return EncodeDataURI(DetectMIME(data), data)
}
