package domain

// GeneratedImage は生成履歴の 1 件です。作成後は変更されません。
type GeneratedImage struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// History は新しいものが先頭に来る追記専用の生成履歴です。
type History struct {
	entries []GeneratedImage
}

// Prepend は履歴の先頭にエントリを追加します。
func (h *History) Prepend(img GeneratedImage) {
	h.entries = append([]GeneratedImage{img}, h.entries...)
}

// Entries は履歴のコピーを新しい順に返します。
func (h *History) Entries() []GeneratedImage {
	out := make([]GeneratedImage, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len は履歴の件数です。
func (h *History) Len() int { return len(h.entries) }
