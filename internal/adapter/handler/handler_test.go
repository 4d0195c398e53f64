package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/database"
	actionuse "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/action"
	aiuse "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/ai"
	meetinguse "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meeting-notes-tracker/pkg/ai"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-notes-tracker/pkg/validator"
)

// newTestApp wires the whole stack over the in-memory store and a fake
// Gemini upstream served by handler. Pass nil for an unreachable upstream.
func newTestApp(t *testing.T, gemini http.HandlerFunc) *echo.Echo {
	t.Helper()

	ts := httptest.NewServer(gemini)
	if gemini == nil {
		ts.Close()
	} else {
		t.Cleanup(ts.Close)
	}

	cfg := &config.Config{}
	logger := zap.NewNop()
	store := database.NewMemoryStore()
	meetingRepo := repository.NewMeetingRepository(store)
	actionRepo := repository.NewActionItemRepository(store)

	client := pkgai.NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})
	aiService := aiuse.NewService(client, logger)
	meetingService := meetinguse.NewService(meetingRepo, actionRepo, aiService, logger)
	actionService := actionuse.NewService(actionRepo, logger)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	router := NewRouter(cfg, store, NewMeetingHandler(meetingService, logger), NewActionHandler(actionService, logger))
	router.Setup(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success      bool            `json:"success"`
	Data         json.RawMessage `json:"data"`
	Error        string          `json:"error"`
	AISuccess    *bool           `json:"ai_success"`
	ErrorMessage string          `json:"error_message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestHealth(t *testing.T) {
	e := newTestApp(t, nil)

	rec := doJSON(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected status %v", body["status"])
	}
	if body["storage"] != database.BackendMemory {
		t.Fatalf("unexpected storage %v", body["storage"])
	}
}

func TestCreateMeeting(t *testing.T) {
	e := newTestApp(t, nil)

	rec := doJSON(e, http.MethodPost, "/meetings/create", `{"transcript":"we met and talked","meeting_type":"Standup"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope")
	}

	var data struct {
		MeetingID string `json:"meeting_id"`
		Title     string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if data.MeetingID == "" {
		t.Fatalf("expected meeting_id in response")
	}
	if !strings.HasPrefix(data.Title, "Standup Meeting — ") {
		t.Fatalf("unexpected title %q", data.Title)
	}
}

func TestCreateMeeting_MissingTranscript(t *testing.T) {
	e := newTestApp(t, nil)

	for _, body := range []string{`{}`, `{"transcript":"   "}`} {
		rec := doJSON(e, http.MethodPost, "/meetings/create", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.Success || env.Error == "" {
			t.Fatalf("expected error envelope, got %s", rec.Body.String())
		}
	}

	// Nothing may have been persisted
	rec := doJSON(e, http.MethodGet, "/meetings", "")
	env := decodeEnvelope(t, rec)
	var meetings []json.RawMessage
	if err := json.Unmarshal(env.Data, &meetings); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(meetings) != 0 {
		t.Fatalf("validation failure persisted a meeting")
	}
}

func TestGetMeeting_NotFound(t *testing.T) {
	e := newTestApp(t, nil)

	rec := doJSON(e, http.MethodGet, "/meetings/does-not-exist", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatalf("expected error envelope")
	}
}

func TestProcessMeeting_MissingID(t *testing.T) {
	e := newTestApp(t, nil)

	rec := doJSON(e, http.MethodPost, "/meetings/process", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProcessMeeting_NotFound(t *testing.T) {
	e := newTestApp(t, nil)

	rec := doJSON(e, http.MethodPost, "/meetings/process", `{"meeting_id":"missing"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProcessMeeting_DegradedStillReturns200(t *testing.T) {
	e := newTestApp(t, nil) // upstream unreachable

	rec := doJSON(e, http.MethodPost, "/meetings/create", `{"transcript":"we met"}`)
	env := decodeEnvelope(t, rec)
	var created struct {
		MeetingID string `json:"meeting_id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("invalid data: %v", err)
	}

	rec = doJSON(e, http.MethodPost, "/meetings/process", `{"meeting_id":"`+created.MeetingID+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("degraded process must still be 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env = decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if env.AISuccess == nil || *env.AISuccess {
		t.Fatalf("expected ai_success=false, got %v", env.AISuccess)
	}
	if env.ErrorMessage == "" {
		t.Fatalf("expected in-band error message")
	}

	var data struct {
		MeetingSentiment string `json:"meeting_sentiment"`
		ActionItems      []struct {
			Title string `json:"title"`
			Owner string `json:"owner"`
		} `json:"action_items"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if data.MeetingSentiment != "Neutral" {
		t.Fatalf("unexpected sentiment %q", data.MeetingSentiment)
	}
	if len(data.ActionItems) != 1 || data.ActionItems[0].Title != "Configure Gemini API Key" || data.ActionItems[0].Owner != "Developer" {
		t.Fatalf("unexpected demo items %+v", data.ActionItems)
	}
}

func TestProcessMeeting_SuccessfulPass(t *testing.T) {
	analysis := `{"summary":"All good.","key_decisions":["Go live"],"action_items":[{"title":"Deploy","owner":"Alice","priority":"High","due_date":"2026-09-03","status":"Pending"}],"meeting_sentiment":"Productive","topics_discussed":["Launch"]}`
	e := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": analysis}}}},
			},
		})
	})

	rec := doJSON(e, http.MethodPost, "/meetings/create", `{"transcript":"launch talk","participants":["Alice","Bob"]}`)
	env := decodeEnvelope(t, rec)
	var created struct {
		MeetingID string `json:"meeting_id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("invalid data: %v", err)
	}

	rec = doJSON(e, http.MethodPost, "/meetings/process", `{"meeting_id":"`+created.MeetingID+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env = decodeEnvelope(t, rec)
	if env.AISuccess == nil || !*env.AISuccess {
		t.Fatalf("expected ai_success=true")
	}

	// Items are now visible through the actions listing, newest first
	rec = doJSON(e, http.MethodGet, "/actions?owner=alice", "")
	env = decodeEnvelope(t, rec)
	var items []struct {
		Title     string `json:"title"`
		MeetingID string `json:"meeting_id"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Deploy" || items[0].MeetingID != created.MeetingID {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].Status != "Pending" {
		t.Fatalf("created items must start Pending, got %q", items[0].Status)
	}

	// The meeting itself is now processed
	rec = doJSON(e, http.MethodGet, "/meetings/"+created.MeetingID, "")
	env = decodeEnvelope(t, rec)
	var m struct {
		Status    string  `json:"status"`
		AISummary *string `json:"ai_summary"`
	}
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if m.Status != "processed" {
		t.Fatalf("expected processed meeting, got %q", m.Status)
	}
	if m.AISummary == nil || *m.AISummary != "All good." {
		t.Fatalf("summary not exposed: %v", m.AISummary)
	}
}

func TestUpdateAction_Validation(t *testing.T) {
	e := newTestApp(t, nil)

	// Unknown target with valid fields
	rec := doJSON(e, http.MethodPatch, "/actions/missing", `{"status":"Done"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// Create a demo item through a degraded process pass
	rec = doJSON(e, http.MethodPost, "/meetings/create", `{"transcript":"talk"}`)
	var created struct {
		MeetingID string `json:"meeting_id"`
	}
	json.Unmarshal(decodeEnvelope(t, rec).Data, &created)
	doJSON(e, http.MethodPost, "/meetings/process", `{"meeting_id":"`+created.MeetingID+`"}`)

	rec = doJSON(e, http.MethodGet, "/actions", "")
	var items []struct {
		ID string `json:"_id"`
	}
	json.Unmarshal(decodeEnvelope(t, rec).Data, &items)
	if len(items) != 1 {
		t.Fatalf("expected one seeded item, got %d", len(items))
	}
	id := items[0].ID

	// Disallowed fields only
	rec = doJSON(e, http.MethodPatch, "/actions/"+id, `{"foo":"bar"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Empty body
	rec = doJSON(e, http.MethodPatch, "/actions/"+id, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d", rec.Code)
	}

	// Valid partial update
	rec = doJSON(e, http.MethodPatch, "/actions/"+id, `{"status":"Done","owner":"Carol"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		Status string `json:"status"`
		Owner  string `json:"owner"`
	}
	json.Unmarshal(decodeEnvelope(t, rec).Data, &updated)
	if updated.Status != "Done" || updated.Owner != "Carol" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestDeleteAction(t *testing.T) {
	e := newTestApp(t, nil)

	rec := doJSON(e, http.MethodDelete, "/actions/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// Seed one item via degraded process
	rec = doJSON(e, http.MethodPost, "/meetings/create", `{"transcript":"talk"}`)
	var created struct {
		MeetingID string `json:"meeting_id"`
	}
	json.Unmarshal(decodeEnvelope(t, rec).Data, &created)
	doJSON(e, http.MethodPost, "/meetings/process", `{"meeting_id":"`+created.MeetingID+`"}`)

	rec = doJSON(e, http.MethodGet, "/actions", "")
	var items []struct {
		ID string `json:"_id"`
	}
	json.Unmarshal(decodeEnvelope(t, rec).Data, &items)
	id := items[0].ID

	rec = doJSON(e, http.MethodDelete, "/actions/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/actions/"+id, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/actions", "")
	json.Unmarshal(decodeEnvelope(t, rec).Data, &items)
	if len(items) != 0 {
		t.Fatalf("deleted item still listed")
	}
}
