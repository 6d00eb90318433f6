package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-fashion-kit/pkg/catalog"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// Edit は直前の生成画像を部分修正するためのプロンプトです。
func Edit(s domain.GenerationSettings, instruction string) string {
	var b strings.Builder
	b.WriteString(BaseStyle(s))
	b.WriteString("\n\nORIGINAL CONTEXT:\n")
	fmt.Fprintf(&b, "Concept: %s\n", s.EffectiveLocation())
	fmt.Fprintf(&b, "Primary Camera Angle: %s\n\n", s.EffectiveAngle(0))
	b.WriteString("USER EDIT REQUEST:\n")
	b.WriteString(instruction)
	b.WriteString("\n\nMaintain the original composition, lighting, and high-quality 8K aesthetic.\n")
	b.WriteString("Only modify the specific details requested in the edit.")
	return b.String()
}

// Consistent は参照画像と同一人物で新しいカットを生成するためのプロンプトです。
func Consistent(s domain.GenerationSettings, newContext string) string {
	var b strings.Builder
	b.WriteString(BaseStyle(s))
	b.WriteString("\n\nTASK:\n")
	b.WriteString("The provided image is the Reference Model.\n")
	b.WriteString("Generate a COMPLETELY NEW photo (or photo set) of this consistent character (face, hairstyle, physique).\n\n")
	b.WriteString("LAYOUT & COMPOSITION:\n")
	b.WriteString(Grid(s))
	b.WriteString("\n\nNEW SCENE / ACTION REQUIREMENTS:\n")
	b.WriteString(newContext)
	if p := Priority(s); p != "" {
		b.WriteString("\n\n")
		b.WriteString(p)
	}
	b.WriteString("\n\nCRITICAL INSTRUCTIONS:\n")
	b.WriteString("1. Maintain consistent character identity (Face, Hair, Physique) with the reference image.\n")
	b.WriteString(`2. Change the Pose, Angle, and Background according to the "New Scene" and "Layout" requirements.` + "\n")
	b.WriteString(`3. Maintain the "Commercial Beauty Pictorial" aesthetic.`)
	return b.String()
}

// ReferenceCounts はリクエストに添付する各プールの選択画像数です。
type ReferenceCounts struct {
	Model    int
	Clothing int
	Location int
}

// CountsOf は選択済み画像の組から枚数を数えます。
func CountsOf(sel domain.SelectedSet) ReferenceCounts {
	return ReferenceCounts{Model: len(sel.Model), Clothing: len(sel.Clothing), Location: len(sel.Location)}
}

// References は参照画像ミックス生成のプロンプトです。
// 画像はモデル、衣装、ロケーションの順に添付される前提で入力の説明を書きます。
func References(s domain.GenerationSettings, n ReferenceCounts) string {
	location := s.EffectiveLocation()

	var modelDesc, characterInst string
	if n.Model > 0 {
		modelDesc = fmt.Sprintf("- Group A: First %d images = Character Reference (Face, Hair, Body).", n.Model)
		characterInst = "1. CHARACTER: Generate a character that looks like the person in Group A. Maintain consistency in facial features, hairstyle, and body proportions."
	} else {
		modelDesc = "- No specific character reference images provided."
		characterInst = characterFromAttributes(s.Model)
	}

	var clothingDesc, clothingInst string
	if n.Clothing > 0 {
		clothingDesc = fmt.Sprintf("- The NEXT %d images are the 'CLOTHING REFERENCE' (Target Outfit).", n.Clothing)
		note := "Follow the clothing reference exactly."
		if s.ClothingPrompt != "" {
			note = fmt.Sprintf("Additional Styling Details: \"%s\"", s.ClothingPrompt)
		}
		clothingInst = strings.Join([]string{
			"2. OUTFIT REPLACEMENT (VIRTUAL TRY-ON):",
			"   - Disregard the clothing worn in the 'IDENTITY REFERENCE' images.",
			"   - Dress the model in the items from the 'CLOTHING REFERENCE'.",
			"   - Accurately replicate the fabric, color, texture, and silhouette of the reference clothing.",
			"   - Ensure the clothing fits the model's body shape naturally.",
			fmt.Sprintf("   (Note: %s)", note),
		}, "\n")
	} else {
		clothingDesc = "- No specific clothing reference images provided."
		clothingInst = strings.Join([]string{
			"2. OUTFIT REPLACEMENT:",
			"   - The user has provided a text description for the new outfit.",
			fmt.Sprintf("   - OUTFIT DESCRIPTION: \"%s\"", s.ClothingPrompt),
			"   - Generate a high-fashion outfit matching this description, replacing the original clothes.",
		}, "\n")
	}

	var locationDesc, locationInst string
	if n.Location > 0 {
		locationDesc = fmt.Sprintf("- The NEXT %d images are 'BACKGROUND REFERENCE' (Location/Scene).", n.Location)
		locationInst = strings.Join([]string{
			"3. BACKGROUND/LOCATION REFERENCE:",
			"   - Use the provided 'BACKGROUND REFERENCE' images as the setting.",
			"   - Replicate the architectural style, lighting atmosphere, and environment details from these images.",
			"   - Integrate the model naturally into this specific background.",
		}, "\n")
	} else {
		locationDesc = "- No specific background reference images provided."
		locationInst = fmt.Sprintf("3. BACKGROUND/LOCATION:\n   - Generate the background based on the text concept: \"%s\".", location)
	}

	var b strings.Builder
	b.WriteString(BaseStyle(s))
	b.WriteString("\n\nTASK: Fashion Editorial with Consistent Character and Environment.\n\n")
	b.WriteString("INPUT REFERENCES:\n")
	b.WriteString(modelDesc + "\n" + clothingDesc + "\n" + locationDesc + "\n\n")
	b.WriteString("INSTRUCTIONS:\nGenerate a high-end commercial fashion photo.\n")
	b.WriteString(characterInst + "\n" + clothingInst + "\n" + locationInst + "\n\n")
	b.WriteString("4. COMPOSITION: Seamlessly integrate the character, outfit, and background.\n\n")
	b.WriteString("SCENE & COMPOSITION:\n")
	fmt.Fprintf(&b, "Concept/Location (Text Hint): %s\n", location)
	b.WriteString(Grid(s))
	if p := Priority(s); p != "" {
		b.WriteString("\n\n")
		b.WriteString(p)
	}
	b.WriteString("\n\nSTYLE NOTES:\n- Photorealistic, 8K resolution.\n- Professional fashion lighting.\n- Natural skin texture.")
	return b.String()
}

// characterFromAttributes はモデル参照画像がないときに属性からキャラクターを指示します。
func characterFromAttributes(m *domain.ModelAttributes) string {
	if m == nil {
		return "1. CHARACTER GENERATION:\n   - Generate a professional fashion model."
	}
	lines := []string{
		"1. CHARACTER GENERATION:",
		"   - Generate a professional fashion model based on these attributes:",
		fmt.Sprintf("   - %s, %s, %s.", m.Nationality, m.Gender, m.Age),
		"   - " + BodySynergy(m.Height, m.BodyType, m.Proportion, m.ShoulderWidth),
		"   - Face: " + FaceTraits(m.FaceShape),
	}
	if mood := catalog.FacialMoodPrompt(m.FacialMood); mood != "" {
		lines = append(lines, "   - Vibe: "+mood)
	}
	return strings.Join(lines, "\n")
}

// 抽出系の操作は撮影設定に依存しない固定プロンプトです。
const (
	ExtractOutfitPrompt = `TASK: Analyze the clothing, shoes, and accessories worn by the model in this image.
Generate a high-end commercial product photography shot of ONLY these items.

STYLE:
- "Flat Lay" (items arranged neatly on a surface) OR "Ghost Mannequin" (invisible 3D form).
- High-fashion magazine catalog style.
- Professional studio lighting.
- Clean, neutral background (Off-white or light grey).

CONTENT:
- Include the main outfit (Top, Bottom, Dress, Outerwear).
- Include visible accessories (Shoes, Bag, Jewelry, Hats).
- REMOVE the human body, face, hair, and skin.
- Focus strictly on the fashion items as a product display.`

	ExtractBackgroundPrompt = `TASK: Remove the person/model from this image and generate a clean, empty background.

INSTRUCTIONS:
- Identify the background environment (architecture, landscape, furniture, lighting).
- Remove ALL human subjects from the scene.
- Fill in the empty space (Inpainting) where the person was, using context from the surroundings.
- The result should look like a natural, empty room or location shot.
- Preserve the original lighting, depth of field, and atmosphere.
- Do NOT crop the image. Maintain the original composition.`
)

// EditOutfit は抽出済みの衣装画像を修正するプロンプトです。
func EditOutfit(instruction string) string {
	return fmt.Sprintf(`TASK: Edit this fashion product image according to the user's request.
USER REQUEST: "%s"

CONSTRAINTS:
- Maintain the "Flat Lay" or "Product Photography" style.
- Keep the background clean and neutral unless specified otherwise.
- High-quality commercial finish.`, instruction)
}

// EditBackground は抽出済みの背景画像を修正するプロンプトです。
func EditBackground(instruction string) string {
	return fmt.Sprintf(`TASK: Edit this background image according to the user's request.
USER REQUEST: "%s"

CONSTRAINTS:
- Keep the image as a background scene (no people).
- Maintain high-quality architectural/landscape details.`, instruction)
}
