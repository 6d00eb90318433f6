package domain

// ImageGenerationRequest はプロバイダーへ送る 1 回分の生成要求です。
// References は data URI で、並び順がそのままリクエストのパーツ順になります。
type ImageGenerationRequest struct {
	Prompt      string
	References  []string
	AspectRatio AspectRatio
	Resolution  Resolution
}

// ImageResponse は生成された画像です。
type ImageResponse struct {
	// DataURI は data:image/png;base64,... 形式の画像です。
	DataURI string
	// Label は履歴に表示する短い説明です。
	Label string
}

// ToHistory は履歴エントリに変換します。
func (r ImageResponse) ToHistory() GeneratedImage {
	return GeneratedImage{URL: r.DataURI, Prompt: r.Label}
}
