package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

const profileSpreadTemplate = `FORMAT: Character Reference Sheet / Model Profile Card (Comp Card).
Canvas Ratio: 16:9.
LAYOUT: Three distinct sections arranged horizontally (Left, Center, Right).

COMPOSITION:
1. LEFT SECTION: Extreme Close-up of the face (Beauty Shot). Focus on makeup, skin texture, and eye expression.
2. CENTER SECTION: Full Body Frontal View. Standing confident pose. Show the full outfit clearly from head to toe.
3. RIGHT SECTION: Full Body Back View. Standing pose showing the back of the outfit/hair.

CRITICAL CONSTRAINT 1: The character MUST be identical in all three shots (same face, same hair, same outfit, same body type).
CRITICAL CONSTRAINT 2: ABSOLUTELY NO TEXT, NO LABELS, NO WATERMARKS, NO TYPOGRAPHY ON THE IMAGE. PURE PHOTOGRAPHY ONLY.
Background: Consistent studio background across all three sections.`

const (
	sizingUniform = "Split the image into equal-sized panels."
	sizingRandom  = "Create a collage with varied sized panels (artistic layout)."
)

// Grid はレイアウトブロックを返します。
//   - profile_spread: 3 面コンプカード。アングルとポーズは無視します。
//   - grid かつ 1 カット: カット 0 の実効アングルとポーズによる単独構図。
//   - grid かつ複数カット: コラージュ指定とカットごとの Panel 行。
func Grid(s domain.GenerationSettings) string {
	if s.LayoutMode == domain.LayoutProfileSpread {
		return profileSpreadTemplate
	}

	if s.GridCount <= 1 {
		return fmt.Sprintf("Composition: Single full-frame high-quality photo.\nCamera Angle: %s.\nPose: %s.",
			s.EffectiveAngle(0), s.EffectivePose(0))
	}

	sizing := sizingUniform
	if s.GridSizing == domain.GridSizingRandom {
		sizing = sizingRandom
	}

	var b strings.Builder
	b.WriteString("FORMAT: PHOTO COLLAGE / SPLIT SCREEN.\n")
	fmt.Fprintf(&b, "Count: %d distinct sub-images (panels) merged into one final image file.\n", s.GridCount)
	fmt.Fprintf(&b, "Layout: %s\n\n", sizing)
	b.WriteString("PANEL CONFIGURATIONS (Angle & Pose per cut):\n")
	for i := range s.GridCount {
		fmt.Fprintf(&b, "Panel %d: Angle: %s, Pose: %s\n", i+1, s.EffectiveAngle(i), s.EffectivePose(i))
	}
	b.WriteString("\nEnsure borders between panels are clean (white or thin black line or gapless).\n")
	b.WriteString("Maintain consistent lighting and color grading across all panels.")
	return b.String()
}

// Priority は additionalPrompt による最優先の上書き指示を返します。
// 空白のみの場合は何も出力しません。
func Priority(s domain.GenerationSettings) string {
	if !s.HasOverride() {
		return ""
	}
	var b strings.Builder
	b.WriteString("*** GLOBAL OVERRIDE INSTRUCTIONS (HIGHEST PRIORITY) ***\n")
	fmt.Fprintf(&b, "USER REQUEST: \"%s\"\n\n", s.AdditionalPrompt)
	b.WriteString("CRITICAL NOTE:\n")
	b.WriteString(`The "USER REQUEST" above takes ABSOLUTE PRECEDENCE over any specific camera angle, pose, or layout settings defined previously.` + "\n")
	b.WriteString("If the user request contradicts the selected pose or angle, IGNORE the selection and FOLLOW the user request.")
	return b.String()
}

// Build は撮影設定から最終プロンプトを組み立てます。
// 後ろのブロックほど優先度が高いものとして解釈されるため、スタイル前文を先頭に置きます。
func Build(s domain.GenerationSettings) string {
	var b strings.Builder
	b.WriteString(BaseStyle(s))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Concept/Location: %s.\n", s.EffectiveLocation())
	b.WriteString(Grid(s))
	if p := Priority(s); p != "" {
		b.WriteString("\n\n")
		b.WriteString(p)
	}
	return b.String()
}
