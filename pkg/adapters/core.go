package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"

	"google.golang.org/genai"
)

// ImageGeneratorCore はリクエストの組み立てとレスポンスの分類を抽象化するインターフェースです。
type ImageGeneratorCore interface {
	PrepareImagePart(dataURI string) (*genai.Part, error)
	BuildContents(req domain.ImageGenerationRequest) ([]*genai.Content, error)
	BuildConfig(req domain.ImageGenerationRequest) *genai.GenerateContentConfig
	ParseToResponse(resp *genai.GenerateContentResponse) (string, error)
}

// ContentGenerator は Gemini の GenerateContent 呼び出しです。*genai.Models がこれを満たします。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// successMIME は生成画像を返すときの MIME タイプです。プロバイダーの申告値に関わらず固定します。
const successMIME = "image/png"

// GeminiImageCore はリクエスト組み立てとレスポンス分類の共通ロジックを保持するコンポーネントです。
// 状態を持たないため、ゼロ値のまま利用できます。
type GeminiImageCore struct{}

// NewGeminiImageCore は GeminiImageCore のインスタンスを生成します。
func NewGeminiImageCore() *GeminiImageCore {
	return &GeminiImageCore{}
}

// SafetySettings はすべてのリクエストに付与する固定の安全設定です。
// 4 カテゴリすべてを「高リスクのみブロック」にします。
func SafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	out := make([]*genai.SafetySetting, 0, len(categories))
	for _, c := range categories {
		out = append(out, &genai.SafetySetting{Category: c, Threshold: genai.HarmBlockThresholdBlockOnlyHigh})
	}
	return out
}

// PrepareImagePart は data URI を genai.Part (InlineData) に変換します。
func (c *GeminiImageCore) PrepareImagePart(dataURI string) (*genai.Part, error) {
	mimeType, data, err := imgutil.ParseDataURI(dataURI)
	if err != nil {
		return nil, &domain.GenerationError{Kind: domain.KindInvalidImageFormat}
	}
	return c.ToPart(mimeType, data), nil
}

// ToPart はバイト列を genai.Part (InlineData) に変換します。
func (c *GeminiImageCore) ToPart(mimeType string, data []byte) *genai.Part {
	return genai.NewPartFromBytes(data, mimeType)
}

// BuildContents は参照画像をリクエスト順に並べ、最後にテキストプロンプトを置いた user コンテンツを作ります。
func (c *GeminiImageCore) BuildContents(req domain.ImageGenerationRequest) ([]*genai.Content, error) {
	parts := make([]*genai.Part, 0, len(req.References)+1)
	for i, ref := range req.References {
		part, err := c.PrepareImagePart(ref)
		if err != nil {
			return nil, fmt.Errorf("参照画像 %d の変換に失敗しました: %w", i, err)
		}
		parts = append(parts, part)
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

// BuildConfig はアスペクト比・解像度と安全設定を含む生成設定を作ります。
func (c *GeminiImageCore) BuildConfig(req domain.ImageGenerationRequest) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: string(req.AspectRatio),
			ImageSize:   string(req.Resolution),
		},
		SafetySettings: SafetySettings(),
	}
}

// ParseToResponse は Gemini のレスポンスを分類し、画像があれば data URI を返します。
//
// 判定順:
//  1. 候補なし: promptFeedback.blockReason があれば BlockedByPolicy、なければ NoCandidates
//  2. 先頭候補の finishReason が SAFETY / RECITATION / OTHER なら対応する失敗
//  3. パーツを走査し、最初の画像を返す。テキストは連結しておく
//  4. 画像がなくテキストがあれば ModelRefusal、どちらもなければ NoImageData
func (c *GeminiImageCore) ParseToResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if reason := blockReason(resp); reason != "" {
			return "", &domain.GenerationError{Kind: domain.KindBlockedByPolicy, Reason: reason}
		}
		return "", &domain.GenerationError{Kind: domain.KindNoCandidates}
	}

	// 現在の仕様では、Geminiからの最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", &domain.GenerationError{Kind: domain.KindNoImageData}
	}

	switch candidate.FinishReason {
	case genai.FinishReasonSafety:
		return "", &domain.GenerationError{Kind: domain.KindUnsafeContent}
	case genai.FinishReasonRecitation:
		return "", &domain.GenerationError{Kind: domain.KindRecitationBlocked}
	case genai.FinishReasonOther:
		return "", &domain.GenerationError{Kind: domain.KindPolicyOther}
	}

	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return imgutil.EncodeDataURI(successMIME, part.InlineData.Data), nil
			}
			text.WriteString(part.Text)
		}
	}

	if text.Len() > 0 {
		return "", &domain.GenerationError{Kind: domain.KindModelRefusal, Text: text.String()}
	}
	return "", &domain.GenerationError{Kind: domain.KindNoImageData, Reason: string(candidate.FinishReason)}
}

// blockReason は意味のあるブロック理由を返します。未指定値は理由なしとして扱います。
func blockReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.PromptFeedback == nil {
		return ""
	}
	switch r := resp.PromptFeedback.BlockReason; r {
	case "", genai.BlockedReasonUnspecified:
		return ""
	default:
		return string(r)
	}
}

// logClassified は分類済みの失敗を警告ログに残します。
func logClassified(ctx context.Context, model string, err error) {
	var ge *domain.GenerationError
	if errors.As(err, &ge) {
		slog.WarnContext(ctx, "Geminiの応答から画像を取得できませんでした",
			"model", model, "kind", ge.Kind, "reason", ge.Reason)
	}
}
