package studio

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
)

// IsCredentialFailure は API キーの再設定が必要そうな失敗かを返します。
// キー未設定、401/403 の API エラー、またはメッセージにキーや 403 を含むものが該当します。
func IsCredentialFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrMissingCredential) {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && isAuthStatus(apiErr.Code) {
		return true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && isAuthStatus(apiErrPtr.Code) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "API Key") || strings.Contains(msg, "403")
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
