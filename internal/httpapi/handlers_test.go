package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auditforce/internal/ai"
	"auditforce/internal/auth"
	"auditforce/internal/config"
	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

type failingGen struct{}

func (failingGen) Generate(context.Context, string, string, *ai.GenerationConfig) (string, error) {
	return "", errors.New("model down")
}

type echoGen struct{}

func (echoGen) Generate(_ context.Context, _ string, prompt string, _ *ai.GenerationConfig) (string, error) {
	if !strings.Contains(prompt, "Contexto") {
		return "", errors.New("prompt missing serialized context")
	}
	return "resposta gerada", nil
}

type testAPI struct {
	router *gin.Engine
	store  *store.Store
}

func newTestAPI(t *testing.T, gen ai.Generator) testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.DemoSeed())
	mgr, err := auth.NewManager(config.AuthConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	rev := auth.NewMemoryRevoker()

	h := Handlers{Store: st, Auth: mgr, Revoker: rev}
	if gen != nil {
		h.Assistant = ai.NewAssistant(gen)
	}

	r := gin.New()
	Register(r, h, auth.RequireAccessToken(mgr, rev))
	return testAPI{router: r, store: st}
}

func (a testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a testAPI) login(t *testing.T, email, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("login response: %v", err)
	}
	return resp.AccessToken
}

func TestLoginAndMe(t *testing.T) {
	api := newTestAPI(t, nil)

	tok := api.login(t, "auditor@example.com", "password")

	w := api.do(t, http.MethodGet, "/v1/me", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}
	var u store.User
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatalf("me body: %v", err)
	}
	if u.Email != "auditor@example.com" || u.Status != store.PresenceOnline {
		t.Fatalf("unexpected user: %+v", u)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("user payload must not carry credentials")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	api := newTestAPI(t, nil)
	w := api.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{"email": "auditor@example.com", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	api := newTestAPI(t, nil)
	tok := api.login(t, "auditor@example.com", "password")

	if w := api.do(t, http.MethodPost, "/v1/auth/logout", tok, nil); w.Code != http.StatusNoContent {
		t.Fatalf("logout: %d %s", w.Code, w.Body.String())
	}
	if w := api.do(t, http.MethodGet, "/v1/me", tok, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token must be rejected, got %d", w.Code)
	}
}

func TestCreateUser_AdminOnly(t *testing.T) {
	api := newTestAPI(t, nil)
	body := gin.H{"name": "Novo", "email": "novo@example.com", "role": "Employee", "password": "x"}

	auditorTok := api.login(t, "auditor@example.com", "password")
	if w := api.do(t, http.MethodPost, "/v1/users", auditorTok, body); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for auditor, got %d", w.Code)
	}

	adminTok := api.login(t, "admin@example.com", "password")
	if w := api.do(t, http.MethodPost, "/v1/users", adminTok, body); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d %s", w.Code, w.Body.String())
	}

	// Duplicate email conflicts.
	if w := api.do(t, http.MethodPost, "/v1/users", adminTok, body); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestCreateAudit_UnknownGridRejected(t *testing.T) {
	api := newTestAPI(t, nil)
	tok := api.login(t, "auditor@example.com", "password")

	w := api.do(t, http.MethodPost, "/v1/audits", tok, gin.H{
		"title": "X", "auditorId": "user-2", "gridId": "ghost",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %s", w.Code, w.Body.String())
	}
}

func TestDeleteGrid_InUseConflicts(t *testing.T) {
	api := newTestAPI(t, nil)
	tok := api.login(t, "auditor@example.com", "password")

	if w := api.do(t, http.MethodDelete, "/v1/grids/grid-1", tok, nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for referenced grid, got %d", w.Code)
	}
}

func TestSaveActionPlan_InvalidLink(t *testing.T) {
	api := newTestAPI(t, nil)
	tok := api.login(t, "manager@example.com", "password")

	w := api.do(t, http.MethodPost, "/v1/plans", tok, gin.H{"what": "X", "who": "user-3"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unlinked plan, got %d %s", w.Code, w.Body.String())
	}
}

func TestAuditReportEndpoint(t *testing.T) {
	api := newTestAPI(t, nil)
	tok := api.login(t, "auditor@example.com", "password")

	w := api.do(t, http.MethodGet, "/v1/audits/audit-1/report", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report: %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "AUD-TI-2023-001") {
		t.Fatalf("report must carry the audit code: %s", w.Body.String())
	}
}

func TestMeetingInviteDownload(t *testing.T) {
	api := newTestAPI(t, nil)
	tok := api.login(t, "manager@example.com", "password")

	w := api.do(t, http.MethodPost, "/v1/meetings", tok, gin.H{
		"title": "Revisão da política", "policyId": "policy-1",
		"attendeeIds": []string{"user-2"},
		"date":        "2024-08-10", "startTime": "14:00", "endTime": "15:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("save meeting: %d %s", w.Code, w.Body.String())
	}
	var m store.Meeting
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("meeting body: %v", err)
	}

	w = api.do(t, http.MethodGet, "/v1/meetings/"+m.ID+"/invite.ics", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("invite: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VEVENT") {
		t.Fatalf("invite must be an ics document")
	}
}

func TestRecommend_FallsBackOnModelFailure(t *testing.T) {
	api := newTestAPI(t, failingGen{})
	tok := api.login(t, "auditor@example.com", "password")

	w := api.do(t, http.MethodPost, "/v1/ai/recommendation", tok, gin.H{"findingDescription": "Política desatualizada"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with fallback, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), ai.RecommendationFallback) {
		t.Fatalf("expected fallback message: %s", w.Body.String())
	}
}

func TestChat_AnswersWithContext(t *testing.T) {
	api := newTestAPI(t, echoGen{})
	tok := api.login(t, "auditor@example.com", "password")

	w := api.do(t, http.MethodPost, "/v1/ai/chat", tok, gin.H{"prompt": "Quantas auditorias tenho?"})
	if w.Code != http.StatusOK {
		t.Fatalf("chat: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Answer    string `json:"answer"`
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("chat body: %v", err)
	}
	if resp.Answer == "" {
		t.Fatalf("expected an answer")
	}
}

func TestNotificationsFlow(t *testing.T) {
	api := newTestAPI(t, nil)
	managerTok := api.login(t, "manager@example.com", "password")

	// Saving a plan for user-3 notifies the responsible.
	w := api.do(t, http.MethodPost, "/v1/plans", managerTok, gin.H{
		"link": gin.H{"kind": "finding", "targetId": "find-2-1"},
		"what": "Corrigir análise", "who": "user-3",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("save plan: %d %s", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/v1/notifications", managerTok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("notifications: %d", w.Code)
	}
	var ns []store.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &ns); err != nil {
		t.Fatalf("notifications body: %v", err)
	}
	if len(ns) == 0 {
		t.Fatalf("expected a notification for the responsible user")
	}

	if w := api.do(t, http.MethodPut, "/v1/notifications", managerTok, nil); w.Code != http.StatusNoContent {
		t.Fatalf("mark all read: %d", w.Code)
	}
	w = api.do(t, http.MethodGet, "/v1/notifications", managerTok, nil)
	_ = json.Unmarshal(w.Body.Bytes(), &ns)
	for _, n := range ns {
		if !n.Read {
			t.Fatalf("expected all notifications read: %+v", n)
		}
	}
}
