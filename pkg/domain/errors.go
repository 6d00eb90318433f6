package domain

import "fmt"

// Kind は生成処理の失敗分類です。
type Kind string

const (
	KindMissingCredential   Kind = "missing_credential"
	KindInvalidImageFormat  Kind = "invalid_image_format"
	KindBlockedByPolicy     Kind = "blocked_by_policy"
	KindNoCandidates        Kind = "no_candidates"
	KindUnsafeContent       Kind = "unsafe_content"
	KindRecitationBlocked   Kind = "recitation_blocked"
	KindPolicyOther         Kind = "policy_other"
	KindModelRefusal        Kind = "model_refusal"
	KindNoImageData         Kind = "no_image_data"
	KindNoReferenceSelected Kind = "no_reference_selected"
	KindExtractSourceCount  Kind = "extract_source_count"
)

// BlockReasonOther はプロンプト段階のブロック理由のうち、専用メッセージを持つものです。
const BlockReasonOther = "OTHER"

// GenerationError は分類済みの失敗です。Error() はそのままユーザーに表示できる文言を返します。
type GenerationError struct {
	Kind Kind
	// Reason はブロック理由または終了理由です（BlockedByPolicy / NoImageData）。
	Reason string
	// Text はモデルが画像の代わりに返したテキストです（ModelRefusal）。
	Text string
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case KindMissingCredential:
		return "API Key가 설정되지 않았습니다. 우측 상단 설정 버튼을 눌러 API Key를 등록해주세요."
	case KindInvalidImageFormat:
		return "Invalid image data format. Please try uploading the image again."
	case KindBlockedByPolicy:
		if e.Reason == BlockReasonOther {
			return "Generation blocked (Reason: OTHER). The system may have interpreted the prompt or reference image as sensitive. Please try a different pose or reference image."
		}
		return fmt.Sprintf("Generation blocked: %s. The prompt may have violated safety policies.", e.Reason)
	case KindNoCandidates:
		return "The model returned no results. This might be due to high safety settings or a refusal to generate the specific content."
	case KindUnsafeContent:
		return "Generation blocked by safety filters. Please try modifying the prompt or using a different reference image."
	case KindRecitationBlocked:
		return "Generation blocked due to recitation check."
	case KindPolicyOther:
		return "Generation blocked (Reason: OTHER). This typically occurs when the model detects potential policy violations in the reference images. Please try a different reference image."
	case KindModelRefusal:
		return "Model Refusal: " + e.Text
	case KindNoImageData:
		reason := e.Reason
		if reason == "" {
			reason = "Unknown"
		}
		return "No image data received from model. Finish Reason: " + reason
	case KindNoReferenceSelected:
		return "모델, 의상, 또는 배경 이미지를 하나 이상 선택해주세요."
	case KindExtractSourceCount:
		return "의상을 추출할 모델 사진을 정확히 1장만 선택해주세요."
	}
	return fmt.Sprintf("generation failed (%s)", e.Kind)
}

// Is は Kind が一致すれば同一の失敗とみなします。
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	return ok && t.Kind == e.Kind
}

// errors.Is で比較するための番兵です。
var (
	ErrMissingCredential   = &GenerationError{Kind: KindMissingCredential}
	ErrInvalidImageFormat  = &GenerationError{Kind: KindInvalidImageFormat}
	ErrBlockedByPolicy     = &GenerationError{Kind: KindBlockedByPolicy}
	ErrNoCandidates        = &GenerationError{Kind: KindNoCandidates}
	ErrUnsafeContent       = &GenerationError{Kind: KindUnsafeContent}
	ErrRecitationBlocked   = &GenerationError{Kind: KindRecitationBlocked}
	ErrPolicyOther         = &GenerationError{Kind: KindPolicyOther}
	ErrModelRefusal        = &GenerationError{Kind: KindModelRefusal}
	ErrNoImageData         = &GenerationError{Kind: KindNoImageData}
	ErrNoReferenceSelected = &GenerationError{Kind: KindNoReferenceSelected}
	ErrExtractSourceCount  = &GenerationError{Kind: KindExtractSourceCount}
)
