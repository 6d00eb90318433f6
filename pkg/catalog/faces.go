package catalog

// FaceShape は動物顔型アーキタイプです。Prompt は生成プロンプトに注入する外見の特徴です。
type FaceShape struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	DescriptionKo string `json:"descriptionKo"`
	Prompt        string `json:"prompt"`
}

// FaceShapeGroup は顔型のカテゴリです。
type FaceShapeGroup struct {
	Category string      `json:"category"`
	Items    []FaceShape `json:"items"`
}

var faceShapeGroups = []FaceShapeGroup{
	{
		Category: "1. 순수하고 귀여운 계열 (Lovely & Cute)",
		Items: []FaceShape{
			{
				ID:            "puppy",
				Label:         "강아지상 (Puppy)",
				DescriptionKo: "눈꼬리가 살짝 처지고 눈동자가 커서 순하고 친근한 인상을 줍니다. (예: 박보영, 백현)",
				Prompt:        "drooping eye corners, large round pupils, soft jawline, round nose tip. Warm, friendly, approachable, puppy-like eyes.",
			},
			{
				ID:            "rabbit",
				Label:         "토끼상 (Rabbit)",
				DescriptionKo: "앞니가 살짝 보이고 인중이 짧으며 볼이 발그레한 귀엽고 사랑스러운 동안입니다. (예: 나연, 정국)",
				Prompt:        "large front teeth, short philtrum, bright round eyes, rosy cheeks. Adorable, youthful, lively, bunny-like.",
			},
			{
				ID:            "hamster",
				Label:         "햄스터상 (Hamster)",
				DescriptionKo: "볼이 통통하고 이목구비가 작고 오밀조밀하여 주머니에 넣고 싶은 귀여움이 특징입니다.",
				Prompt:        "puffy cheeks, small button nose, tiny mouth, round face. Squeezable, tiny, innocent, soft-focus.",
			},
			{
				ID:            "quokka",
				Label:         "쿼카상 (Quokka)",
				DescriptionKo: "입꼬리가 항상 올라가 있고 하관이 짧아 언제나 행복하게 웃는 듯한 인상입니다.",
				Prompt:        "upturned corners of the mouth, chubby lower face, sparkling eyes. Joyful, happiest animal, blunt chin, wide smile.",
			},
		},
	},
	{
		Category: "2. 시크하고 매혹적인 계열 (Chic & Charismatic)",
		Items: []FaceShape{
			{
				ID:            "cat",
				Label:         "고양이상 (Cat)",
				DescriptionKo: "눈꼬리가 올라가고 콧대가 높으며 턱선이 날렵하여 도도하고 세련된 분위기를 풍깁니다. (예: 해린, 제니)",
				Prompt:        "upturned eyes, sharp inner corners of eyes, high bridge nose, V-shaped chin. Sharp, sophisticated, mysterious, feline-like.",
			},
			{
				ID:            "fox",
				Label:         "여우상 (Fox)",
				DescriptionKo: "눈이 가로로 길고 눈매가 그윽하며, 지적이고 매혹적인 느낌을 주는 얼굴입니다. (예: 황민현, 예지)",
				Prompt:        "elongated eyes, slanted almond eyes, pointed chin, sharp facial contours. Seductive, clever, elegant, mature, foxy.",
			},
			{
				ID:            "snake",
				Label:         "뱀상 (Snake)",
				DescriptionKo: "눈매가 날카롭고 피부가 하얗며, 차갑지만 치명적인 카리스마가 느껴지는 인상입니다. (예: 카리나)",
				Prompt:        "narrow sharp eyes, thin lips, pale skin, flawless sharp T-zone. Cold, charismatic, AI-like perfection, lethal.",
			},
			{
				ID:            "wolf",
				Label:         "늑대상 (Wolf)",
				DescriptionKo: "T존이 뚜렷하고 눈빛이 강렬하며, 야생적이고 남성미/걸크러쉬가 돋보입니다.",
				Prompt:        "fierce gaze, strong brow bone, defined jawline, cool-toned skin. Tomboyish, wild, intense, charismatic, wolf-like.",
			},
		},
	},
	{
		Category: "3. 우아하고 맑은 계열 (Elegant & Pure)",
		Items: []FaceShape{
			{
				ID:            "deer",
				Label:         "사슴상 (Deer)",
				DescriptionKo: "눈망울이 크고 맑으며 목이 길고 얼굴형이 갸름하여 우아하고 청초한 분위기입니다. (예: 윤아)",
				Prompt:        "large doe eyes, long slender neck, clean oval face, long eyelashes. Graceful, pure, clear, serene, deer-like.",
			},
			{
				ID:            "bird",
				Label:         "새상/요정상 (Bird/Fairy)",
				DescriptionKo: "얼굴이 매우 작고 이목구비가 섬세하여 현실감이 없는 요정 같은 신비로운 느낌입니다.",
				Prompt:        "small face, dainty features, pointed small lips, delicate bone structure. Ethereal, fairy-like, fragile, petite.",
			},
		},
	},
	{
		Category: "4. 개성 있고 싱그러운 계열 (Unique & Fresh)",
		Items: []FaceShape{
			{
				ID:            "turtle",
				Label:         "꼬부기상 (Turtle)",
				DescriptionKo: "입이 크고 시원하며 웃을 때 반달눈이 되어 보는 사람을 기분 좋게 만드는 활기찬 인상입니다.",
				Prompt:        "wide mouth, curved lip line, large eyes, round face. Refreshing, cheerful, bright, energetic.",
			},
			{
				ID:            "frog",
				Label:         "개구리상 (Frog)",
				DescriptionKo: "눈이 크고 돌출형이며 입체적인 얼굴로, 하이패션과 독특한 컨셉을 잘 소화합니다.",
				Prompt:        "wide-set eyes, prominent eyes, wide smile, unique facial structure. High-fashion, artistic, distinctive, fresh.",
			},
		},
	},
}

// FaceShapeGroups は顔型カタログをカテゴリ順に返します。
func FaceShapeGroups() []FaceShapeGroup {
	out := make([]FaceShapeGroup, len(faceShapeGroups))
	for i, g := range faceShapeGroups {
		items := make([]FaceShape, len(g.Items))
		copy(items, g.Items)
		out[i] = FaceShapeGroup{Category: g.Category, Items: items}
	}
	return out
}

// FindFaceShape は ID に一致する顔型を返します。
func FindFaceShape(id string) (FaceShape, bool) {
	for _, g := range faceShapeGroups {
		for _, f := range g.Items {
			if f.ID == id {
				return f, true
			}
		}
	}
	return FaceShape{}, false
}

// FacialMood は表情の雰囲気（ムード）です。
type FacialMood struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

var facialMoods = []FacialMood{
	{ID: "innocent", Label: "청순 (Innocent)", Prompt: "innocent, clear and gentle gaze, soft relaxed lips, pure and fresh aura."},
	{ID: "lovely", Label: "러블리 (Lovely)", Prompt: "lovely and bright, sparkling eyes, playful charm, warm and sweet aura."},
	{ID: "chic", Label: "시크 (Chic)", Prompt: "chic and cool, confident direct gaze, composed neutral lips, sophisticated urban aura."},
	{ID: "dreamy", Label: "몽환 (Dreamy)", Prompt: "dreamy and ethereal, half-lidded soft eyes, distant gaze, mysterious calm aura."},
	{ID: "charismatic", Label: "카리스마 (Charismatic)", Prompt: "charismatic and intense, strong piercing gaze, firm jaw, powerful commanding aura."},
}

// FacialMoods はムードカタログのコピーを返します。
func FacialMoods() []FacialMood {
	out := make([]FacialMood, len(facialMoods))
	copy(out, facialMoods)
	return out
}

// FacialMoodPrompt はムード ID のプロンプトを返します。未設定や未知の ID は空文字です。
func FacialMoodPrompt(id string) string {
	for _, m := range facialMoods {
		if m.ID == id {
			return m.Prompt
		}
	}
	return ""
}

// ExpressionPhrase は 0〜100 の表情スカラーを短い英語表現に変換します。
func ExpressionPhrase(v int) string {
	switch {
	case v < 20:
		return "neutral, expressionless, calm face"
	case v < 40:
		return "subtle, faint smile"
	case v < 60:
		return "soft natural smile"
	case v < 80:
		return "bright smile showing a little teeth"
	default:
		return "big joyful laughing smile"
	}
}

// MakeupStyle はメイクスタイルの 1 項目です。
type MakeupStyle struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var makeupStyles = []MakeupStyle{
	{
		Value:       "K-Pop 아이돌 (Idol Stage Makeup)",
		Label:       "K-Pop 아이돌 (Idol Stage Makeup)",
		Description: "글리터와 속눈썹을 강조하여 무대에서 빛나는 화려한 스타일입니다.",
	},
	{
		Value:       "내추럴 투명 메이크업 (Natural No-Makeup Look)",
		Label:       "내추럴 투명 메이크업 (Natural No-Makeup Look)",
		Description: "피부 결을 살리고 색조를 최소화한 청순하고 깨끗한 스타일입니다.",
	},
	{
		Value:       "시크 스모키 (Chic Smoky)",
		Label:       "시크 스모키 (Chic Smoky)",
		Description: "눈매를 깊고 진하게 강조하여 강렬하고 도시적인 분위기를 연출합니다.",
	},
	{
		Value:       "과즙 메이크업 (Fruity/Juicy)",
		Label:       "과즙 메이크업 (Fruity/Juicy)",
		Description: "볼터치와 립에 생기를 주어 상큼하고 발랄한 이미지를 줍니다.",
	},
	{
		Value:       "배우 프로필 스타일 (Clean Actor Profile)",
		Label:       "배우 프로필 스타일 (Clean Actor Profile)",
		Description: "이목구비의 장점을 자연스럽게 살린 단정하고 고급스러운 느낌입니다.",
	},
	{
		Value:       "하이패션 런웨이 (Avant-garde High Fashion)",
		Label:       "하이패션 런웨이 (Avant-garde High Fashion)",
		Description: "예술적이고 실험적인 터치로 개성을 극대화한 모던한 스타일입니다.",
	},
}

// MakeupStyles はメイクカタログのコピーを返します。
func MakeupStyles() []MakeupStyle {
	out := make([]MakeupStyle, len(makeupStyles))
	copy(out, makeupStyles)
	return out
}
