package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/shouni/gemini-fashion-kit/pkg/catalog"
	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/prompts"
)

type imageResponse struct {
	Image string `json:"image"`
	Label string `json:"label,omitempty"`
}

type catalogResponse struct {
	Lenses            []catalog.Lens                       `json:"lenses"`
	FaceShapes        []catalog.FaceShapeGroup             `json:"faceShapes"`
	FacialMoods       []catalog.FacialMood                 `json:"facialMoods"`
	ModelAttributes   catalog.ModelAttributeOptions        `json:"modelAttributes"`
	CameraAngles      []string                             `json:"cameraAngles"`
	Poses             []string                             `json:"poses"`
	Concepts          []catalog.ConceptGroup               `json:"concepts"`
	AspectRatios      []catalog.Option[domain.AspectRatio] `json:"aspectRatios"`
	Resolutions       []catalog.Option[domain.Resolution]  `json:"resolutions"`
	GridOptions       []catalog.Option[int]                `json:"gridOptions"`
	GridSizingOptions []catalog.Option[domain.GridSizing]  `json:"gridSizingOptions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"configured": s.creds.Configured(r.Context()),
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Lenses:            catalog.Lenses(),
		FaceShapes:        catalog.FaceShapeGroups(),
		FacialMoods:       catalog.FacialMoods(),
		ModelAttributes:   catalog.ModelAttributes(),
		CameraAngles:      catalog.CameraAngles(),
		Poses:             catalog.FashionPoses(),
		Concepts:          catalog.ConceptGroups(),
		AspectRatios:      catalog.AspectRatios(),
		Resolutions:       catalog.Resolutions(),
		GridOptions:       catalog.GridOptions(),
		GridSizingOptions: catalog.GridSizingOptions(),
	})
}

// --- 設定 ---

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Settings())
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var next domain.GenerationSettings
	if err := decode(r, &next); err != nil {
		badRequest(w, r, err)
		return
	}
	if err := s.session.ReplaceSettings(next); err != nil {
		badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Settings())
}

func (s *Server) handleResizeGrid(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Count int `json:"count"`
	}
	if err := decode(r, &body); err != nil {
		badRequest(w, r, err)
		return
	}
	settings, err := s.session.ResizeGrid(body.Count)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.SelectProfileSpread())
}

func (s *Server) handleSelectConcept(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Concept string `json:"concept"`
	}
	if err := decode(r, &body); err != nil {
		badRequest(w, r, err)
		return
	}
	settings, err := s.session.SelectConcept(body.Concept)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleResetPoses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.ResetPosesAndAngles())
}

func (s *Server) handleResetModel(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.ResetModel())
}

// handlePrompt は現在の設定から組み立てたプロンプトを返します（送信はしません）。
func (s *Server) handlePrompt(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"prompt": prompts.Build(s.session.Settings())})
}

// --- 生成 ---

func (s *Server) writeImage(w http.ResponseWriter, r *http.Request, resp *domain.ImageResponse, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{Image: resp.DataURI, Label: resp.Label})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	resp, err := s.session.Generate(r.Context())
	s.writeImage(w, r, resp, err)
}

func (s *Server) handleGenerateFromReferences(w http.ResponseWriter, r *http.Request) {
	resp, err := s.session.GenerateFromReferences(r.Context())
	s.writeImage(w, r, resp, err)
}

type instructionRequest struct {
	Image       string `json:"image"`
	Instruction string `json:"instruction"`
}

func (s *Server) decodeInstruction(w http.ResponseWriter, r *http.Request) (instructionRequest, bool) {
	var body instructionRequest
	if err := decode(r, &body); err != nil {
		badRequest(w, r, err)
		return body, false
	}
	if strings.TrimSpace(body.Instruction) == "" {
		badRequest(w, r, errors.New("instruction is required"))
		return body, false
	}
	return body, true
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeInstruction(w, r)
	if !ok {
		return
	}
	resp, err := s.session.Edit(r.Context(), body.Instruction)
	s.writeImage(w, r, resp, err)
}

func (s *Server) handleConsistent(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeInstruction(w, r)
	if !ok {
		return
	}
	resp, err := s.session.GenerateConsistent(r.Context(), body.Instruction)
	s.writeImage(w, r, resp, err)
}

func (s *Server) handleExtractOutfit(w http.ResponseWriter, r *http.Request) {
	resp, err := s.session.ExtractOutfit(r.Context())
	s.writeImage(w, r, resp, err)
}

func (s *Server) handleExtractBackground(w http.ResponseWriter, r *http.Request) {
	var body instructionRequest
	if err := decode(r, &body); err != nil {
		badRequest(w, r, err)
		return
	}
	resp, err := s.session.ExtractBackground(r.Context(), body.Image)
	s.writeImage(w, r, resp, err)
}

func (s *Server) handleEditOutfit(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeInstruction(w, r)
	if !ok {
		return
	}
	resp, err := s.session.EditOutfit(r.Context(), body.Image, body.Instruction)
	s.writeImage(w, r, resp, err)
}

func (s *Server) handleEditBackground(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeInstruction(w, r)
	if !ok {
		return
	}
	resp, err := s.session.EditBackground(r.Context(), body.Image, body.Instruction)
	s.writeImage(w, r, resp, err)
}

// --- 参照プール ---

func poolOf(w http.ResponseWriter, r *http.Request) (domain.PoolKind, bool) {
	kind, err := domain.ParsePoolKind(mux.Vars(r)["pool"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return "", false
	}
	return kind, true
}

func (s *Server) handleListReferences(w http.ResponseWriter, r *http.Request) {
	kind, ok := poolOf(w, r)
	if !ok {
		return
	}
	refs, err := s.session.References(kind)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

func (s *Server) handleAddReferences(w http.ResponseWriter, r *http.Request) {
	kind, ok := poolOf(w, r)
	if !ok {
		return
	}
	var body struct {
		Sources []string `json:"sources"`
	}
	if err := decode(r, &body); err != nil {
		badRequest(w, r, err)
		return
	}
	if len(body.Sources) == 0 {
		badRequest(w, r, errors.New("sources is required"))
		return
	}

	added, err := s.session.AddUploads(r.Context(), kind, body.Sources)
	resp := map[string]any{"added": added}
	if added == nil {
		resp["added"] = []domain.ReferenceImage{}
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleToggleReference(w http.ResponseWriter, r *http.Request) {
	kind, ok := poolOf(w, r)
	if !ok {
		return
	}
	if !s.session.Toggle(kind, mux.Vars(r)["id"]) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "reference not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveReference(w http.ResponseWriter, r *http.Request) {
	kind, ok := poolOf(w, r)
	if !ok {
		return
	}
	if !s.session.Remove(kind, mux.Vars(r)["id"]) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "reference not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.History())
}

// --- API キー ---

type credentialRequest struct {
	APIKey string `json:"apiKey"`
}

func (s *Server) handleGetCredential(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"configured": s.creds.Configured(r.Context())})
}

func (s *Server) handlePutCredential(w http.ResponseWriter, r *http.Request) {
	var body credentialRequest
	if err := decode(r, &body); err != nil {
		badRequest(w, r, err)
		return
	}
	if err := s.creds.Save(r.Context(), body.APIKey); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"configured": s.creds.Configured(r.Context())})
}

func (s *Server) handleDeleteCredential(w http.ResponseWriter, r *http.Request) {
	if err := s.creds.Clear(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleValidateCredential はボディのキー（省略時は保存済みのキー）で接続を確認します。
func (s *Server) handleValidateCredential(w http.ResponseWriter, r *http.Request) {
	var body credentialRequest
	if err := decode(r, &body); err != nil {
		badRequest(w, r, err)
		return
	}
	key := strings.TrimSpace(body.APIKey)
	if key == "" {
		stored, err := s.creds.Get(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
			return
		}
		key = stored
	}

	if err := s.validator.ValidateConnection(r.Context(), key); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}
