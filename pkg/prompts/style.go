package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-fashion-kit/pkg/catalog"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

const styleHeader = `High-end commercial fashion photography.
Luxury fashion magazine editorial style.
K-POP idol aesthetic, sophisticated and trendy.
Flawless skin texture, vivid colors, professional studio lighting.
Bright and lively atmosphere, photo-realistic 8K resolution.
Ultra-detailed, sharp focus on eyes and face.
Crystal clear quality, clean composition.`

const (
	defaultSubject = "Professional female fashion model."
	defaultFace    = "Charming and attractive face."
)

// FaceTraits は顔型の特徴文を返します。未知の ID は空文字です。
func FaceTraits(faceShapeID string) string {
	f, ok := catalog.FindFaceShape(faceShapeID)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Face Type: %s style. Visual traits: %s", f.Label, f.Prompt)
}

// SubjectBlock はモデルの人口統計と体型描写です。
func SubjectBlock(m *domain.ModelAttributes) string {
	if m == nil {
		return defaultSubject
	}
	var b strings.Builder
	b.WriteString("Professional Fashion Model.\n")
	fmt.Fprintf(&b, "Demographics: %s, %s, %s.\n", m.Nationality, m.Gender, m.Age)
	b.WriteString(BodySynergy(m.Height, m.BodyType, m.Proportion, m.ShoulderWidth))
	return b.String()
}

// FaceBlock は顔型・ムード・表情・メイクの描写です。
func FaceBlock(m *domain.ModelAttributes, expression int) string {
	if m == nil {
		return defaultFace
	}
	var b strings.Builder
	b.WriteString("Detailed Facial Features:\n")
	if traits := FaceTraits(m.FaceShape); traits != "" {
		b.WriteString(traits + "\n")
	}
	if mood := catalog.FacialMoodPrompt(m.FacialMood); mood != "" {
		fmt.Fprintf(&b, "Facial Mood & Vibe: %s\n", mood)
	}
	fmt.Fprintf(&b, "Facial Expression: %s.\n", catalog.ExpressionPhrase(expression))
	if m.Makeup != "" {
		fmt.Fprintf(&b, "Makeup Style: %s.\n", m.Makeup)
	}
	if m.FacialMood != "" {
		fmt.Fprintf(&b, "Styling Guidance: Create makeup and styling that perfectly compliments the %s face type and %s mood.\n", m.FaceShape, m.FacialMood)
	} else {
		fmt.Fprintf(&b, "Styling Guidance: Create makeup and styling that perfectly compliments the %s face type.\n", m.FaceShape)
	}
	b.WriteString("High quality, detailed skin texture, expressive eyes.")
	return b.String()
}

// LensBlock はカメラとレンズの描写です。
func LensBlock(lens catalog.Lens) string {
	return fmt.Sprintf("Camera: Canon EOS R5.\nLens: %s (%s, %s).\nTechnique: %s.",
		lens.Name, lens.FocalLength, lens.Aperture, lens.Description)
}

// BaseStyle は全操作で共通のスタイル前文です。
// レンズは settings.LensID から引き、見つからなければカタログ先頭のレンズを使います。
func BaseStyle(s domain.GenerationSettings) string {
	var b strings.Builder
	b.WriteString(styleHeader)
	b.WriteString("\n\nSubject details:\n")
	b.WriteString(SubjectBlock(s.Model))
	b.WriteString("\nElegant and confident pose.\n")
	b.WriteString(FaceBlock(s.Model, s.FacialExpression))
	b.WriteString("\n\n")
	b.WriteString(LensBlock(catalog.FindLens(s.LensID)))
	return b.String()
}
