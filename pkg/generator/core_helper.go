package generator

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// layoutLabel は履歴ラベルの先頭に付けるレイアウト名です。
func layoutLabel(s domain.GenerationSettings) string {
	switch {
	case s.LayoutMode == domain.LayoutProfileSpread:
		return "프로필(3면)"
	case s.GridCount > 1:
		return fmt.Sprintf("%d컷", s.GridCount)
	default:
		return "단독컷"
	}
}

// GenerateLabel は通常生成の履歴ラベルです。
func GenerateLabel(s domain.GenerationSettings) string {
	return fmt.Sprintf("[%s] %s", layoutLabel(s), s.EffectiveLocation())
}

// ReferencesLabel は参照画像ミックス生成の履歴ラベルです。
func ReferencesLabel(s domain.GenerationSettings) string {
	return fmt.Sprintf("[%s] Ref Mix: %s", layoutLabel(s), s.EffectiveLocation())
}

// EditLabel は修正の履歴ラベルです。
func EditLabel(instruction string) string { return "수정: " + instruction }

// ConsistentLabel は次のカット生成の履歴ラベルです。
func ConsistentLabel(newContext string) string { return "다음 컷: " + newContext }

// orderedReferences はモデル、衣装、ロケーションの順に data URI を並べます。
func orderedReferences(sel domain.SelectedSet) []string {
	refs := make([]string, 0, len(sel.Model)+len(sel.Clothing)+len(sel.Location))
	for _, group := range [][]domain.ReferenceImage{sel.Model, sel.Clothing, sel.Location} {
		for _, img := range group {
			refs = append(refs, img.URL)
		}
	}
	return refs
}

// hasReferenceInput は参照画像ミックス生成に使える入力が 1 つでもあるかを返します。
func hasReferenceInput(sel domain.SelectedSet, s domain.GenerationSettings) bool {
	return !sel.Empty() || strings.TrimSpace(s.ClothingPrompt) != ""
}

func requireSource(imageURI string) error {
	if strings.TrimSpace(imageURI) == "" {
		return ErrNoSourceImage
	}
	return nil
}
