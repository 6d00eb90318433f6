// Package server はスタジオの操作を JSON over HTTP で公開します。
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shouni/gemini-fashion-kit/pkg/studio"
)

const (
	// maxBodyBytes は参照画像の data URI を複数含むリクエストを想定した上限です。
	maxBodyBytes    = 64 << 20
	shutdownTimeout = 10 * time.Second
)

// Credentials は API キーの保存先です。keystore.Store がこれを満たします。
type Credentials interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Configured(ctx context.Context) bool
}

// Validator は API キーの接続確認です。generator.Studio がこれを満たします。
type Validator interface {
	ValidateConnection(ctx context.Context, apiKey string) error
}

// Server は HTTP ハンドラーと依存関係をまとめたものです。
type Server struct {
	session   *studio.Session
	creds     Credentials
	validator Validator
	router    *mux.Router
}

// New はルーティングを設定した Server を作成します。
func New(session *studio.Session, creds Credentials, validator Validator) (*Server, error) {
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if creds == nil {
		return nil, fmt.Errorf("credentials is required")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator is required")
	}
	s := &Server{session: session, creds: creds, validator: validator}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)

	r.HandleFunc("/settings", s.handleGetSettings).Methods(http.MethodGet)
	r.HandleFunc("/settings", s.handlePutSettings).Methods(http.MethodPut)
	r.HandleFunc("/settings/grid", s.handleResizeGrid).Methods(http.MethodPost)
	r.HandleFunc("/settings/profile", s.handleSelectProfile).Methods(http.MethodPost)
	r.HandleFunc("/settings/concept", s.handleSelectConcept).Methods(http.MethodPost)
	r.HandleFunc("/settings/poses/reset", s.handleResetPoses).Methods(http.MethodPost)
	r.HandleFunc("/settings/model/reset", s.handleResetModel).Methods(http.MethodPost)
	r.HandleFunc("/prompt", s.handlePrompt).Methods(http.MethodPost)

	r.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/generate/references", s.handleGenerateFromReferences).Methods(http.MethodPost)
	r.HandleFunc("/edit", s.handleEdit).Methods(http.MethodPost)
	r.HandleFunc("/consistent", s.handleConsistent).Methods(http.MethodPost)
	r.HandleFunc("/extract/outfit", s.handleExtractOutfit).Methods(http.MethodPost)
	r.HandleFunc("/extract/background", s.handleExtractBackground).Methods(http.MethodPost)
	r.HandleFunc("/edit/outfit", s.handleEditOutfit).Methods(http.MethodPost)
	r.HandleFunc("/edit/background", s.handleEditBackground).Methods(http.MethodPost)

	r.HandleFunc("/references/{pool}", s.handleListReferences).Methods(http.MethodGet)
	r.HandleFunc("/references/{pool}", s.handleAddReferences).Methods(http.MethodPost)
	r.HandleFunc("/references/{pool}/{id}/toggle", s.handleToggleReference).Methods(http.MethodPost)
	r.HandleFunc("/references/{pool}/{id}", s.handleRemoveReference).Methods(http.MethodDelete)

	r.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)

	r.HandleFunc("/credential", s.handleGetCredential).Methods(http.MethodGet)
	r.HandleFunc("/credential", s.handlePutCredential).Methods(http.MethodPut)
	r.HandleFunc("/credential", s.handleDeleteCredential).Methods(http.MethodDelete)
	r.HandleFunc("/credential/validate", s.handleValidateCredential).Methods(http.MethodPost)

	s.router = r
}

// Handler はミドルウェアで包んだルーターを返します。
// mux のミドルウェアはルートが一致したときしか動かないため、
// OPTIONS のプリフライトに応えられるようルーターの外側で包みます。
func (s *Server) Handler() http.Handler { return enableCORS(limitBody(s.router)) }

// ListenAndServe は ctx がキャンセルされるまでサーバーを動かし、その後グレースフルに停止します。
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTPサーバーを起動します", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("HTTPサーバーを停止します")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
