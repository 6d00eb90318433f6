package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/generator"
	"github.com/shouni/gemini-fashion-kit/pkg/studio"
)

// errorBody はエラー応答の JSON です。Reconfigure は API キーの再設定を促すべきかを表します。
type errorBody struct {
	Error       string `json:"error"`
	Kind        string `json:"kind,omitempty"`
	Reconfigure bool   `json:"reconfigure"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("レスポンスの書き込みに失敗しました", "error", err)
	}
}

// writeError はエラーの種類に応じたステータスで応答します。
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorBody{Error: err.Error(), Reconfigure: studio.IsCredentialFailure(err)}
	var ge *domain.GenerationError
	if errors.As(err, &ge) {
		body.Kind = string(ge.Kind)
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "リクエストの処理に失敗しました", "path", r.URL.Path, "error", err)
	} else {
		slog.WarnContext(r.Context(), "リクエストを処理できませんでした", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, body)
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	slog.WarnContext(r.Context(), "不正なリクエストです", "path", r.URL.Path, "error", err)
}

func statusFor(err error) int {
	var ge *domain.GenerationError
	if errors.As(err, &ge) {
		switch ge.Kind {
		case domain.KindMissingCredential:
			return http.StatusUnauthorized
		case domain.KindInvalidImageFormat, domain.KindNoReferenceSelected, domain.KindExtractSourceCount:
			return http.StatusBadRequest
		default:
			return http.StatusUnprocessableEntity
		}
	}
	switch {
	case errors.Is(err, studio.ErrNoCurrentImage), errors.Is(err, generator.ErrNoSourceImage):
		return http.StatusBadRequest
	case studio.IsCredentialFailure(err):
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

// decode は JSON ボディを読み込みます。空のボディは許容します。
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("リクエストボディを解析できません: %w", err)
	}
	return nil
}
