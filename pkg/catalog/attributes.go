package catalog

import "github.com/shouni/gemini-fashion-kit/pkg/domain"

// Option は値と表示ラベルの組です。
type Option[T any] struct {
	Value T      `json:"value"`
	Label string `json:"label"`
}

// ModelAttributeOptions はモデル属性ごとの選択肢です。
type ModelAttributeOptions struct {
	Gender        []string      `json:"gender"`
	Nationality   []string      `json:"nationality"`
	Age           []string      `json:"age"`
	Height        []string      `json:"height"`
	BodyType      []string      `json:"bodyType"`
	Proportion    []string      `json:"proportion"`
	ShoulderWidth []string      `json:"shoulderWidth"`
	Makeup        []MakeupStyle `json:"makeup"`
}

// UnsetAttribute は「選択なし」を表す属性値の目印です。
const UnsetAttribute = "선택 안 함"

var (
	genders       = []string{"여성 (Female)", "남성 (Male)"}
	nationalities = []string{
		"한국인 (Korean)",
		"일본인 (Japanese)",
		"중국인 (Chinese)",
		"미국인 (American - Caucasian)",
		"유럽인 (European)",
		"혼혈 (Mixed Heritage)",
	}
	ages = []string{
		"10대 초반 (Early Teens)",
		"10대 중반 (Mid Teens)",
		"10대 후반 (Late Teens)",
		"20대 초반 (Early 20s)",
		"20대 중반 (Mid 20s)",
		"20대 후반 (Late 20s)",
		"30대 (30s)",
		"40대 (40s / Middle-aged)",
		"50대 (50s / Mature)",
		"60대 이상 (60s+ / Senior / Silver Model)",
	}
	heights = []string{
		"150cm 대 (Short/Cute)",
		"160cm 초반 (Petite)",
		"165cm 평균 (Average)",
		"170cm 이상 (Tall Model)",
		"175cm 이상 (Runway Height)",
	}
	bodyTypes = []string{
		"슬림형 (Slender) - 기본 슬림",
		"일반형 (Average) - 자연스러운 핏",
		"플러스 사이즈 (Plus-size / Curvy) - 볼륨감 있고 부드러운 곡선",
		"아담한 체형 (Petite Frame) - 작고 여리여리한 골격",
		"스키니/하이패션 (High-Fashion Skinny) - 모델처럼 매우 마르고 골격 강조",
		"하체 발달형 (Pear-shaped) - 상체는 슬림, 골반과 힙 발달",
		"글래머러스 (Glamorous / Hourglass) - 가슴과 힙이 강조된 모래시계형",
		"탄탄한 근육형 (Athletic / Fit) - 건강미 넘치는 근육질",
	}
	proportions = []string{
		"선택 안 함 (Default)",
		"다리가 긴 타입 (Long Legs / Short Torso)",
		"허리가 긴 타입 (Long Torso / Short Legs)",
		"황금 비율 (Balanced 8-Head Ratio)",
	}
	shoulderWidths = []string{
		"선택 안 함 (Default)",
		"좁은 어깨 (Narrow / Sloping) - 여리여리함 강조",
		"직각 어깨 (Square / Broad) - 옷걸이가 좋은 모델 체형",
		"라운드 숄더 (Rounded) - 부드러운 인상",
	}
)

// ModelAttributes はモデル属性の選択肢をまとめて返します。
func ModelAttributes() ModelAttributeOptions {
	return ModelAttributeOptions{
		Gender:        clone(genders),
		Nationality:   clone(nationalities),
		Age:           clone(ages),
		Height:        clone(heights),
		BodyType:      clone(bodyTypes),
		Proportion:    clone(proportions),
		ShoulderWidth: clone(shoulderWidths),
		Makeup:        MakeupStyles(),
	}
}

var cameraAngles = []string{
	"랜덤 (AI 추천)",
	"아이 레벨 (Standard Eye-Level) - 가장 자연스러운 시선",
	"로우 앵글 (Low Angle) - 다리가 길어 보이고 웅장함",
	"하이 앵글 (High Angle) - 얼굴이 돋보이고 귀여운 느낌",
	"더치 앵글 (Dutch Angle) - 역동적이고 힙한 분위기",
	"클로즈업 (Extreme Close-up) - 얼굴 디테일 강조",
	"바스트 샷 (Bust Shot) - 상반신 중심 포트레이트",
	"니 샷 (Knee Shot) - 무릎 위, 패션과 비율 강조",
	"풀 샷 (Full Shot) - 전신과 배경의 조화",
	"오버헤드 (Overhead) - 머리 위에서 내려다보는 구도",
}

var fashionPoses = []string{
	"랜덤 (AI 추천)",
	"정면 응시 (Front View)",
	"측면 응시 (Side Profile)",
	"뒤돌아보기 (Looking Back)",
	"전신 워킹 (Walking Full Body)",
	"의자에 앉기 (Sitting on Chair)",
	"바닥에 앉기 (Sitting on Floor)",
	"다리 꼬기 (Crossed Legs)",
	"손으로 턱 받치기 (Hand on Chin)",
	"머리카락 쓸어넘기기 (Hand in Hair)",
	"얼굴 클로즈업 (Face Close-up)",
	"눈 감고 느끼기 (Eyes Closed)",
	"역동적인 점프 (Dynamic Jump)",
	"주머니에 손 넣기 (Hands in Pocket)",
	"팔짱 끼기 (Arms Crossed)",
	"소품 활용 (Holding Prop)",
}

// CameraAngles はカメラアングルの語彙です。先頭が既定値です。
func CameraAngles() []string { return clone(cameraAngles) }

// FashionPoses はポーズの語彙です。先頭が既定値です。
func FashionPoses() []string { return clone(fashionPoses) }

// DefaultAngle はグリッド拡張時に新しいカットへ入るアングルです。
func DefaultAngle() string { return cameraAngles[0] }

// DefaultPose はグリッド拡張時に新しいカットへ入るポーズです。
func DefaultPose() string { return fashionPoses[0] }

// ConceptGroup は撮影場所のグループ（屋内・屋外）です。
type ConceptGroup struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Items []string `json:"items"`
}

var conceptGroups = []ConceptGroup{
	{
		Key:   "indoor",
		Label: "실내 (Indoor)",
		Items: []string{
			"깔끔한 스튜디오 (Studio Clean)",
			"럭셔리 호텔 (Luxury Hotel)",
			"감성 카페 (Cozy Cafe)",
			"모던 거실 (Modern Living Room)",
			"화려한 파티룸 (Fancy Party Room)",
			"클래식 도서관 (Classic Library)",
			"햇살 드는 창가 (Sunlit Window)",
		},
	},
	{
		Key:   "outdoor",
		Label: "실외 (Outdoor)",
		Items: []string{
			"네온 시티 야경 (Neon City Night)",
			"햇살 가득한 정원 (Sunlit Garden)",
			"푸른 해변 (Blue Beach)",
			"벚꽃 흩날리는 거리 (Cherry Blossom Street)",
			"도심 루프탑 (City Rooftop)",
			"숲속의 오솔길 (Forest Path)",
			"고급 리조트 수영장 (Luxury Resort Pool)",
		},
	},
}

// ConceptGroups は撮影場所カタログを返します。
func ConceptGroups() []ConceptGroup {
	out := make([]ConceptGroup, len(conceptGroups))
	for i, g := range conceptGroups {
		out[i] = ConceptGroup{Key: g.Key, Label: g.Label, Items: clone(g.Items)}
	}
	return out
}

// AspectRatios はアスペクト比の選択肢です。
func AspectRatios() []Option[domain.AspectRatio] {
	return []Option[domain.AspectRatio]{
		{Value: domain.AspectRatioPortrait, Label: "세로 (3:4)"},
		{Value: domain.AspectRatioTall, Label: "소셜 스토리 (9:16)"},
		{Value: domain.AspectRatioSquare, Label: "정방형 (1:1)"},
		{Value: domain.AspectRatioLandscape, Label: "가로 (4:3)"},
		{Value: domain.AspectRatioWide, Label: "시네마틱 (16:9)"},
	}
}

// Resolutions は解像度の選択肢です。
func Resolutions() []Option[domain.Resolution] {
	return []Option[domain.Resolution]{
		{Value: domain.Resolution1K, Label: "표준 (1K)"},
		{Value: domain.Resolution2K, Label: "고화질 (2K)"},
		{Value: domain.Resolution4K, Label: "초고화질 (4K)"},
	}
}

// GridOptions はカット数の選択肢です。
func GridOptions() []Option[int] {
	return []Option[int]{
		{Value: 1, Label: "1장 (단독)"},
		{Value: 2, Label: "2장 분할"},
		{Value: 3, Label: "3장 분할"},
		{Value: 4, Label: "4장 분할"},
		{Value: 6, Label: "6장 분할"},
		{Value: 9, Label: "9장 분할"},
	}
}

// GridSizingOptions はパネルサイズの選択肢です。
func GridSizingOptions() []Option[domain.GridSizing] {
	return []Option[domain.GridSizing]{
		{Value: domain.GridSizingUniform, Label: "동일 크기 (Uniform)"},
		{Value: domain.GridSizingRandom, Label: "랜덤 크기 (Random)"},
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
