package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	old := geminiAPIBase
	SetGeminiAPIBase(srv.URL)
	t.Cleanup(func() { SetGeminiAPIBase(old) })

	t.Setenv("GEMINI_API_KEY", "test-key")
	c, err := NewClient("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return c
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := NewClient(""); err == nil {
		t.Fatalf("expected error without GEMINI_API_KEY")
	}
}

func TestGenerate_SendsConfigAndParsesText(t *testing.T) {
	var gotReq geminiRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "Reco"}, {"text": "mendação"}}}},
			},
		})
	})

	out, err := c.Generate(context.Background(), "", "prompt", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "Recomendação" {
		t.Fatalf("expected concatenated parts, got %q", out)
	}
	if gotReq.GenerationConfig == nil || gotReq.GenerationConfig.Temperature != 0.5 ||
		gotReq.GenerationConfig.TopP != 0.95 || gotReq.GenerationConfig.TopK != 64 {
		t.Fatalf("default generation config not forwarded: %+v", gotReq.GenerationConfig)
	}
}

func TestGenerate_SystemInstructionForwarded(t *testing.T) {
	var gotReq geminiRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "ok"}}}},
			},
		})
	})

	if _, err := c.Generate(context.Background(), "regras", "prompt", nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != "regras" {
		t.Fatalf("system instruction not forwarded: %+v", gotReq.SystemInstruction)
	}
}

func TestGenerate_APIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "status": "RESOURCE_EXHAUSTED", "message": "quota"},
		})
	})

	_, err := c.Generate(context.Background(), "", "prompt", nil)
	if err == nil || !strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		t.Fatalf("expected structured API error, got %v", err)
	}
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	if _, err := c.Generate(context.Background(), "", "prompt", nil); err == nil {
		t.Fatalf("expected error for empty response")
	}
}

type fakeGen struct {
	lastSystem string
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeGen) Generate(_ context.Context, system, prompt string, _ *GenerationConfig) (string, error) {
	f.lastSystem = system
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestAssistant_RecommendEmbedsFinding(t *testing.T) {
	gen := &fakeGen{reply: "Plano sugerido"}
	a := NewAssistant(gen)

	out, err := a.Recommend(context.Background(), "Política desatualizada")
	if err != nil || out != "Plano sugerido" {
		t.Fatalf("unexpected result: %q, %v", out, err)
	}
	if !strings.Contains(gen.lastPrompt, "Política desatualizada") {
		t.Fatalf("finding description missing from prompt: %q", gen.lastPrompt)
	}
	if gen.lastSystem != "" {
		t.Fatalf("recommendations carry no system instruction")
	}
}

func TestAssistant_ChatConstrainsToContext(t *testing.T) {
	gen := &fakeGen{reply: "Resposta"}
	a := NewAssistant(gen)

	if _, err := a.Chat(context.Background(), "Quantas auditorias?", `{"audits":[]}`); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, `{"audits":[]}`) {
		t.Fatalf("serialized context missing from prompt")
	}
	if !strings.Contains(gen.lastSystem, "contexto") {
		t.Fatalf("chat must carry the constraining system instruction")
	}
}

func TestAssistant_ErrorsPropagateForFallback(t *testing.T) {
	wantErr := errors.New("model down")
	a := NewAssistant(&fakeGen{err: wantErr})

	if _, err := a.Recommend(context.Background(), "x"); !errors.Is(err, wantErr) {
		t.Fatalf("expected error to propagate to the caller, got %v", err)
	}
}
