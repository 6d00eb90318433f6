package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageResponse_ToHistory(t *testing.T) {
	resp := ImageResponse{DataURI: "data:image/png;base64,AAAA", Label: "[단독컷] 서울 카페"}

	got := resp.ToHistory()

	assert.Equal(t, "data:image/png;base64,AAAA", got.URL)
	assert.Equal(t, "[단독컷] 서울 카페", got.Prompt)
}

func TestHistory_Prepend(t *testing.T) {
	var h History
	h.Prepend(GeneratedImage{URL: "a", Prompt: "1"})
	h.Prepend(GeneratedImage{URL: "b", Prompt: "2"})

	entries := h.Entries()
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "b", entries[0].URL, "新しいものが先頭")
	assert.Equal(t, "a", entries[1].URL)

	entries[0].URL = "mutated"
	assert.Equal(t, "b", h.Entries()[0].URL, "Entries はコピーを返す")
}
