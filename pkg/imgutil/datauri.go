package imgutil

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrMalformedDataURI は data URI として解釈できない入力です。
var ErrMalformedDataURI = errors.New("malformed data URI")

var (
	strictDataURI = regexp.MustCompile(`^data:(.+);base64,(.+)$`)
	headerMIME    = regexp.MustCompile(`:(.*?);`)
)

const fallbackMIME = "image/png"

// ParseDataURI は data:<mime>;base64,<payload> を MIME タイプとバイト列に分解します。
//
// 厳密な形式に一致しない場合は、カンマがちょうど 1 つの入力に限り
// ヘッダーの ":...;" から MIME を取り出し（なければ image/png）、残りを payload とみなします。
func ParseDataURI(uri string) (string, []byte, error) {
	var mimeType, payload string
	if m := strictDataURI.FindStringSubmatch(uri); m != nil {
		mimeType, payload = m[1], m[2]
	} else {
		parts := strings.Split(uri, ",")
		if len(parts) != 2 {
			return "", nil, ErrMalformedDataURI
		}
		mimeType = fallbackMIME
		if m := headerMIME.FindStringSubmatch(parts[0]); m != nil {
			mimeType = m[1]
		}
		payload = parts[1]
	}

	data, err := decodeBase64(payload)
	if err != nil || len(data) == 0 {
		return "", nil, ErrMalformedDataURI
	}
	return mimeType, data, nil
}

func decodeBase64(s string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// EncodeDataURI はバイト列を data:<mime>;base64,<payload> 形式にします。
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DetectMIME はバイト列から画像の MIME タイプを推定します。画像でなければ image/png を返します。
func DetectMIME(data []byte) string {
	if mt := mimetype.Detect(data).String(); strings.HasPrefix(mt, "image/") {
		return mt
	}
	return fallbackMIME
}

// IsImage はバイト列が画像として判定されるかを返します。
func IsImage(data []byte) bool {
	return strings.HasPrefix(mimetype.Detect(data).String(), "image/")
}
