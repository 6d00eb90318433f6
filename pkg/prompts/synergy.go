// Package prompts は撮影設定から生成プロンプトを組み立てます。
// すべての関数は純粋で、同じ入力に対して常に同じ文字列を返します。
package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-fashion-kit/pkg/catalog"
)

// 身長・体型の判定に使う部分文字列です。属性値はカタログの表示文字列そのままなので部分一致で判定します。
var (
	shortHeightMarkers = []string{"150cm", "160cm 초반"}
	tallHeightMarkers  = []string{"170cm", "175cm"}
	slimMarkers        = []string{"슬림", "스키니"}
	curvyMarkers       = []string{"플러스", "글래머러스"}
)

const (
	petiteMarker    = "아담한"
	skinnyMarker    = "스키니"
	plusSizeMarker  = "플러스"
	glamorousMarker = "글래머러스"
	pearMarker      = "하체 발달형"
)

const (
	vibeDainty      = " Visual Vibe: Dainty, fairy-like, delicate bone structure, cute and petite proportions."
	vibeStatuesque  = " Visual Vibe: Statuesque, runway model physique, long limbs, willow-like elegance, high-fashion editorial look."
	vibeCompact     = " Visual Vibe: Compact curves, soft and romantic silhouette, adorable yet alluring."
	vibeGrand       = " Visual Vibe: Grand goddess-like presence, powerful curves, imposing and luxurious figure."
	featurePetite   = " Features: Short torso, delicate joints, small frame."
	featureSkinny   = " Features: Bony structure, ultra-slim, chic and sharp lines."
	featurePlusSize = " Features: Curvy plus-size, soft silhouette, realistic body standards, voluminous beauty."
	// ウエストや砂時計型には触れず、ボリュームだけを描写する。
	featureGlamorous = " Features: Voluptuous physique. Prominent large bust and full hips. Emphasis on body volume. Realistic body shape."
	featurePear      = " Features: Pear-shaped, wide hips, thicker thighs, narrow shoulders, feminine lower body curve."
)

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func isShort(height string) bool   { return containsAny(height, shortHeightMarkers) }
func isTall(height string) bool    { return containsAny(height, tallHeightMarkers) }
func isSlim(bodyType string) bool  { return containsAny(bodyType, slimMarkers) }
func isCurvy(bodyType string) bool { return containsAny(bodyType, curvyMarkers) }

// isSet は属性が「選択なし」以外の値を持つかを返します。
func isSet(v string) bool {
	return v != "" && !strings.Contains(v, catalog.UnsetAttribute)
}

// BodySynergy は身長・体型・比率・肩幅の組み合わせから体型描写を合成します。
//
// 身長×体型のクロス判定は最大 1 つだけ出力されますが、体型キーワードごとの
// 特徴文は互いに排他ではなく、一致したものがすべて追加されます。
func BodySynergy(height, bodyType, proportion, shoulderWidth string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Physique: %s, %s.", height, bodyType)

	short, tall := isShort(height), isTall(height)
	slim, curvy := isSlim(bodyType), isCurvy(bodyType)
	switch {
	case short && slim:
		b.WriteString(vibeDainty)
	case tall && slim:
		b.WriteString(vibeStatuesque)
	case short && curvy:
		b.WriteString(vibeCompact)
	case tall && curvy:
		b.WriteString(vibeGrand)
	}

	if strings.Contains(bodyType, petiteMarker) {
		b.WriteString(featurePetite)
	}
	if strings.Contains(bodyType, skinnyMarker) {
		b.WriteString(featureSkinny)
	}
	if strings.Contains(bodyType, plusSizeMarker) {
		b.WriteString(featurePlusSize)
	}
	if strings.Contains(bodyType, glamorousMarker) {
		b.WriteString(featureGlamorous)
	}
	if strings.Contains(bodyType, pearMarker) {
		b.WriteString(featurePear)
	}

	if isSet(proportion) {
		fmt.Fprintf(&b, " Proportion Emphasis: %s.", proportion)
	}
	if isSet(shoulderWidth) {
		fmt.Fprintf(&b, " Shoulder Structure: %s.", shoulderWidth)
	}
	return b.String()
}
