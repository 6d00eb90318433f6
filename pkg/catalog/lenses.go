// Package catalog は撮影設定 UI が参照する静的なカタログ（レンズ、顔型、メイク、
// モデル属性、アングル、ポーズ、撮影場所）を提供します。値はすべて不変です。
package catalog

// Lens はレンズカタログの 1 項目です。
type Lens struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FocalLength string `json:"focalLength"`
	Aperture    string `json:"aperture"`
	Description string `json:"description"`
}

var lenses = []Lens{
	{
		ID:          "rf85",
		Name:        "Canon RF 85mm f/1.2L USM",
		FocalLength: "85mm",
		Aperture:    "f/1.2",
		Description: "궁극의 인물 렌즈. 크리미한 배경 흐림(보케), 눈동자의 놀라운 선명도, 인물을 돋보이게 하는 압축 효과.",
	},
	{
		ID:          "rf50",
		Name:        "Canon RF 50mm f/1.2L USM",
		FocalLength: "50mm",
		Aperture:    "f/1.2",
		Description: "마법 같은 입체감의 표준 화각. 반신(Half-body) 촬영에 적합하며 자연스러운 시선을 제공합니다.",
	},
	{
		ID:          "rf35",
		Name:        "Canon RF 35mm f/1.4L VCM",
		FocalLength: "35mm",
		Aperture:    "f/1.4",
		Description: "광각 환경 인물 사진. 배경과 의상이 돋보이는 역동적인 구도를 연출합니다.",
	},
	{
		ID:          "rf135",
		Name:        "Canon RF 135mm f/1.8L IS USM",
		FocalLength: "135mm",
		Aperture:    "f/1.8",
		Description: "강력한 망원 압축 효과. 배경과 피사체를 완벽하게 분리하여 몽환적인 분위기를 만듭니다.",
	},
}

// Lenses はレンズカタログのコピーを返します。
func Lenses() []Lens {
	out := make([]Lens, len(lenses))
	copy(out, lenses)
	return out
}

// FindLens は ID に一致するレンズを返します。見つからない場合は先頭のレンズを返します。
func FindLens(id string) Lens {
	for _, l := range lenses {
		if l.ID == id {
			return l
		}
	}
	return lenses[0]
}
