package domain

import (
	"fmt"
	"slices"
	"strings"
)

// LayoutMode は 1 回の生成でどのような画面構成を要求するかを表します。
type LayoutMode string

const (
	// LayoutProfileSpread は顔・正面・背面の 3 面コンプカードです。
	LayoutProfileSpread LayoutMode = "profile_spread"
	// LayoutGrid は単独カットまたは複数カットのコラージュです。
	LayoutGrid LayoutMode = "grid"
)

// GridSizing はコラージュ時のパネルサイズの決め方です。
type GridSizing string

const (
	GridSizingUniform GridSizing = "uniform"
	GridSizingRandom  GridSizing = "random"
)

// AspectRatio は出力画像のアスペクト比です。
type AspectRatio string

const (
	AspectRatioPortrait  AspectRatio = "3:4"
	AspectRatioTall      AspectRatio = "9:16"
	AspectRatioSquare    AspectRatio = "1:1"
	AspectRatioLandscape AspectRatio = "4:3"
	AspectRatioWide      AspectRatio = "16:9"
)

// Resolution は出力画像の解像度です。
type Resolution string

const (
	Resolution1K Resolution = "1K"
	Resolution2K Resolution = "2K"
	Resolution4K Resolution = "4K"
)

// AllowedGridCounts は選択可能なカット数です。
var AllowedGridCounts = []int{1, 2, 3, 4, 6, 9}

// ModelAttributes はモデルの属性（人口統計・体型・顔・メイク）です。
// 値はカタログの表示文字列をそのまま保持します。体型の判定は部分一致で行うためです。
type ModelAttributes struct {
	Gender        string `json:"gender" yaml:"gender"`
	Nationality   string `json:"nationality" yaml:"nationality"`
	Age           string `json:"age" yaml:"age"`
	Height        string `json:"height" yaml:"height"`
	BodyType      string `json:"bodyType" yaml:"bodyType"`
	Proportion    string `json:"proportion" yaml:"proportion"`
	ShoulderWidth string `json:"shoulderWidth" yaml:"shoulderWidth"`
	FaceShape     string `json:"faceShape" yaml:"faceShape"`
	FacialMood    string `json:"facialMood,omitempty" yaml:"facialMood,omitempty"`
	Makeup        string `json:"makeup" yaml:"makeup"`
}

// GenerationSettings は 1 回の生成リクエストに必要な設定のすべてです。
type GenerationSettings struct {
	LensID      string      `json:"lensId" yaml:"lensId"`
	AspectRatio AspectRatio `json:"aspectRatio" yaml:"aspectRatio"`
	Resolution  Resolution  `json:"resolution" yaml:"resolution"`

	Model *ModelAttributes `json:"model,omitempty" yaml:"model,omitempty"`

	// FacialExpression は 0〜100 の表情スカラーです（0: 無表情, 100: 満面の笑み）。
	FacialExpression int `json:"facialExpression" yaml:"facialExpression"`

	LayoutMode LayoutMode `json:"layoutMode" yaml:"layoutMode"`
	GridCount  int        `json:"gridCount" yaml:"gridCount"`
	GridSizing GridSizing `json:"gridSizing" yaml:"gridSizing"`

	CameraAngles       []string `json:"cameraAngles" yaml:"cameraAngles"`
	CustomCameraAngles []string `json:"customCameraAngles" yaml:"customCameraAngles"`
	Poses              []string `json:"poses" yaml:"poses"`
	CustomPoses        []string `json:"customPoses" yaml:"customPoses"`

	AdditionalPrompt string `json:"additionalPrompt" yaml:"additionalPrompt"`
	ClothingPrompt   string `json:"clothingPrompt" yaml:"clothingPrompt"`

	Concept        string `json:"concept" yaml:"concept"`
	CustomLocation string `json:"customLocation" yaml:"customLocation"`
}

// Clone はスライスを含めた深いコピーを返します。
func (s GenerationSettings) Clone() GenerationSettings {
	out := s
	if s.Model != nil {
		m := *s.Model
		out.Model = &m
	}
	out.CameraAngles = slices.Clone(s.CameraAngles)
	out.CustomCameraAngles = slices.Clone(s.CustomCameraAngles)
	out.Poses = slices.Clone(s.Poses)
	out.CustomPoses = slices.Clone(s.CustomPoses)
	return out
}

// EffectiveAngle はカット i のカメラアングルを返します。
// 前後の空白を除いたカスタム入力が空でなければそれを、空ならカタログの選択値を使います。
func (s GenerationSettings) EffectiveAngle(i int) string {
	return effective(s.CustomCameraAngles, s.CameraAngles, i)
}

// EffectivePose はカット i のポーズを EffectiveAngle と同じ優先順位で返します。
func (s GenerationSettings) EffectivePose(i int) string {
	return effective(s.CustomPoses, s.Poses, i)
}

func effective(custom, catalog []string, i int) string {
	if i >= 0 && i < len(custom) {
		if v := strings.TrimSpace(custom[i]); v != "" {
			return v
		}
	}
	if i >= 0 && i < len(catalog) {
		return catalog[i]
	}
	return ""
}

// EffectiveLocation は撮影場所を返します。空白以外の customLocation は常に concept より優先されます。
func (s GenerationSettings) EffectiveLocation() string {
	if v := strings.TrimSpace(s.CustomLocation); v != "" {
		return s.CustomLocation
	}
	return s.Concept
}

// HasOverride は additionalPrompt が空白以外の文字を含むかを返します。
func (s GenerationSettings) HasOverride() bool {
	return strings.TrimSpace(s.AdditionalPrompt) != ""
}

// ResizeGrid はカット数を count に変更し、グリッドモードへ切り替えます。
// 既存のカット設定はインデックスを保ったまま残し、新しいカットは
// defaultAngle / defaultPose と空のカスタム入力で埋めます。
func (s *GenerationSettings) ResizeGrid(count int, defaultAngle, defaultPose string) error {
	if !slices.Contains(AllowedGridCounts, count) {
		return fmt.Errorf("unsupported grid count: %d", count)
	}
	s.LayoutMode = LayoutGrid
	s.GridCount = count
	s.CameraAngles = resizeSlots(s.CameraAngles, count, defaultAngle)
	s.CustomCameraAngles = resizeSlots(s.CustomCameraAngles, count, "")
	s.Poses = resizeSlots(s.Poses, count, defaultPose)
	s.CustomPoses = resizeSlots(s.CustomPoses, count, "")
	return nil
}

func resizeSlots(src []string, count int, pad string) []string {
	out := make([]string, count)
	for i := range out {
		if i < len(src) && src[i] != "" {
			out[i] = src[i]
			continue
		}
		out[i] = pad
	}
	return out
}

// SelectProfileSpread は 3 面プロフィールモードへ切り替え、16:9 / 2K を強制します。
func (s *GenerationSettings) SelectProfileSpread() {
	s.LayoutMode = LayoutProfileSpread
	s.AspectRatio = AspectRatioWide
	s.Resolution = Resolution2K
}

// ResetPosesAndAngles は全カットをカタログ既定値に戻し、カスタム入力と上書き指示を消去します。
func (s *GenerationSettings) ResetPosesAndAngles(defaultAngle, defaultPose string) {
	n := s.GridCount
	if n < 1 {
		n = 1
	}
	s.CameraAngles = resizeSlots(nil, n, defaultAngle)
	s.CustomCameraAngles = resizeSlots(nil, n, "")
	s.Poses = resizeSlots(nil, n, defaultPose)
	s.CustomPoses = resizeSlots(nil, n, "")
	s.AdditionalPrompt = ""
}

// SelectConcept はカタログの撮影場所を選び、自由入力の場所を消去します。
func (s *GenerationSettings) SelectConcept(concept string) {
	s.Concept = concept
	s.CustomLocation = ""
}

// Validate は設定の不変条件を検証します。
func (s GenerationSettings) Validate() error {
	switch s.LayoutMode {
	case LayoutProfileSpread, LayoutGrid:
	default:
		return fmt.Errorf("unknown layout mode: %q", s.LayoutMode)
	}
	switch s.GridSizing {
	case GridSizingUniform, GridSizingRandom:
	default:
		return fmt.Errorf("unknown grid sizing: %q", s.GridSizing)
	}
	if !slices.Contains(AllowedGridCounts, s.GridCount) {
		return fmt.Errorf("unsupported grid count: %d", s.GridCount)
	}
	slots := map[string][]string{
		"cameraAngles":       s.CameraAngles,
		"customCameraAngles": s.CustomCameraAngles,
		"poses":              s.Poses,
		"customPoses":        s.CustomPoses,
	}
	for name, v := range slots {
		if len(v) < s.GridCount {
			return fmt.Errorf("%s has %d entries, need at least %d", name, len(v), s.GridCount)
		}
	}
	if s.FacialExpression < 0 || s.FacialExpression > 100 {
		return fmt.Errorf("facialExpression out of range: %d", s.FacialExpression)
	}
	return nil
}
