package catalog

import "github.com/shouni/gemini-fashion-kit/pkg/domain"

// DefaultModel はスタジオ起動時のモデルです。黄金比とメイク 4 番目を初期値にします。
func DefaultModel() domain.ModelAttributes {
	return domain.ModelAttributes{
		Gender:        genders[0],
		Nationality:   nationalities[0],
		Age:           ages[3],
		Height:        heights[2],
		BodyType:      bodyTypes[0],
		Proportion:    proportions[3],
		ShoulderWidth: shoulderWidths[0],
		FaceShape:     "puppy",
		Makeup:        makeupStyles[3].Value,
	}
}

// DefaultSettings はスタジオ起動時の初期設定です。
func DefaultSettings() domain.GenerationSettings {
	model := DefaultModel()
	return domain.GenerationSettings{
		LensID:             lenses[0].ID,
		AspectRatio:        domain.AspectRatioWide,
		Resolution:         domain.Resolution2K,
		Model:              &model,
		FacialExpression:   50,
		LayoutMode:         domain.LayoutProfileSpread,
		GridCount:          1,
		GridSizing:         domain.GridSizingUniform,
		CameraAngles:       []string{DefaultAngle()},
		CustomCameraAngles: []string{""},
		Poses:              []string{DefaultPose()},
		CustomPoses:        []string{""},
		Concept:            conceptGroups[0].Items[0],
	}
}

// ResetModel はモデル属性をリセットします。
// 起動時の DefaultModel とは異なり、比率は「선택 안 함」、メイクは先頭のスタイルに戻します。
func ResetModel(s *domain.GenerationSettings) {
	m := DefaultModel()
	m.Proportion = proportions[0]
	m.Makeup = makeupStyles[0].Value
	s.Model = &m
}

// ResizeGrid はカタログの既定アングル・ポーズで新しいカットを埋めながらカット数を変更します。
func ResizeGrid(s *domain.GenerationSettings, count int) error {
	return s.ResizeGrid(count, DefaultAngle(), DefaultPose())
}

// ResetPosesAndAngles は全カットをカタログ既定値に戻します。
func ResetPosesAndAngles(s *domain.GenerationSettings) {
	s.ResetPosesAndAngles(DefaultAngle(), DefaultPose())
}
