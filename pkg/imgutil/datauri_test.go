package imgutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI(t *testing.T) {
	payload := []byte("\x89PNG\r\n\x1a\n-binary-\x00\xff")

	t.Run("厳密な形式はエンコードと往復できる", func(t *testing.T) {
		uri := EncodeDataURI("image/webp", payload)

		mimeType, data, err := ParseDataURI(uri)

		require.NoError(t, err)
		assert.Equal(t, "image/webp", mimeType)
		assert.Equal(t, payload, data)
	})

	t.Run("カンマ 1 つのフォールバックでも往復できる", func(t *testing.T) {
		full := EncodeDataURI("image/gif", payload)
		// ";base64," を含まないヘッダーに置き換えて厳密な形式から外す
		uri := "data:image/gif;name=ref.gif," + full[len("data:image/gif;base64,"):]

		mimeType, data, err := ParseDataURI(uri)

		require.NoError(t, err)
		assert.Equal(t, "image/gif", mimeType)
		assert.Equal(t, payload, data)
	})

	t.Run("フォールバックで MIME が取れなければ image/png", func(t *testing.T) {
		full := EncodeDataURI("x", payload)
		uri := "data:whatever," + full[len("data:x;base64,"):]

		mimeType, data, err := ParseDataURI(uri)

		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
		assert.Equal(t, payload, data)
	})

	t.Run("不正な入力", func(t *testing.T) {
		for _, uri := range []string{
			"",
			"not a data uri",
			"data:image/png;base64,a,b,c",
			"data:image/png;base64,@@@not-base64@@@",
			"data:image/png;base64,",
		} {
			_, _, err := ParseDataURI(uri)
			assert.ErrorIs(t, err, ErrMalformedDataURI, uri)
		}
	})
}

func TestDetectMIME(t *testing.T) {
	assert.Equal(t, "image/png", DetectMIME(createDummyImageData(t, "png")))
	assert.Equal(t, "image/jpeg", DetectMIME(createDummyImageData(t, "jpeg")))
	assert.Equal(t, "image/png", DetectMIME([]byte("plain text")))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(createDummyImageData(t, "png")))
	assert.False(t, IsImage([]byte("<html>not an image</html>")))
	assert.False(t, IsImage(nil))
}
