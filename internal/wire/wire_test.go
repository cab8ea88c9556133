package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffee-house/internal/data/repository/demo"
	"coffee-house/pkg/payment"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*httptest.Server, *payment.FakeGateway) {
	t.Helper()

	repo := demo.NewSeededRepository(zap.NewNop())
	gateway := payment.NewFakeGateway()
	config := &utils.Config{
		App: utils.AppConfig{
			Name:      "coffee-house",
			UploadDir: t.TempDir(),
		},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	app := Wiring(repo, config, gateway, zap.NewNop())
	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)
	return server, gateway
}

func postJSON(t *testing.T, url string, body any, token string) (*http.Response, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, env
}

func getJSON(t *testing.T, url, token string) (*http.Response, envelope) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, env
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp, env := postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"email":    "admin@coffeehouse.local",
		"password": "changeme",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return data.Token
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestPublicContent(t *testing.T) {
	server, _ := newTestServer(t)

	resp, env := getJSON(t, server.URL+"/api/content", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Status {
		t.Errorf("envelope status false: %s", env.Message)
	}

	var data struct {
		Menu   []json.RawMessage `json:"menu"`
		Events []json.RawMessage `json:"events"`
		Posts  []json.RawMessage `json:"posts"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if len(data.Menu) == 0 || len(data.Events) == 0 || len(data.Posts) == 0 {
		t.Errorf("content incomplete: %d menu sections, %d events, %d posts",
			len(data.Menu), len(data.Events), len(data.Posts))
	}
}

func TestPublicMenuCategories(t *testing.T) {
	server, _ := newTestServer(t)

	resp, env := getJSON(t, server.URL+"/api/menu/categories", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Status {
		t.Errorf("envelope status false: %s", env.Message)
	}

	var categories []json.RawMessage
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(categories) == 0 {
		t.Error("no categories returned")
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{
		"/api/admin/orders",
		"/api/admin/bookings",
		"/api/admin/dashboard",
		"/api/admin/tickets",
	} {
		resp, _ := getJSON(t, server.URL+path, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want 401", path, resp.StatusCode)
		}
	}
}

func TestLoginAndDashboard(t *testing.T) {
	server, _ := newTestServer(t)
	token := login(t, server)

	resp, env := getJSON(t, server.URL+"/api/admin/dashboard", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status = %d, body: %s", resp.StatusCode, env.Message)
	}
	if !env.Status {
		t.Errorf("envelope status false: %s", env.Message)
	}
}

func TestContactForm(t *testing.T) {
	server, _ := newTestServer(t)

	resp, _ := postJSON(t, server.URL+"/api/messages", map[string]string{
		"name":  "Grace Hopper",
		"email": "grace@example.com",
		"body":  "Do you host private events?",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	token := login(t, server)
	listResp, env := getJSON(t, server.URL+"/api/admin/messages", token)
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", listResp.StatusCode)
	}

	var messages []struct {
		Email  string `json:"email"`
		IsRead bool   `json:"is_read"`
	}
	if err := json.Unmarshal(env.Data, &messages); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Email != "grace@example.com" || messages[0].IsRead {
		t.Errorf("messages = %+v", messages)
	}
}

func TestTicketPurchaseOverHTTP(t *testing.T) {
	server, gateway := newTestServer(t)

	// pick a seeded published event
	resp, env := getJSON(t, server.URL+"/api/events", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("events status = %d", resp.StatusCode)
	}

	var events []struct {
		ID          string  `json:"id"`
		TicketPrice float64 `json:"ticket_price"`
	}
	if err := json.Unmarshal(env.Data, &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("no seeded events")
	}
	event := events[0]

	intentResp, intentEnv := postJSON(t, server.URL+"/api/tickets/intent", map[string]any{
		"event_id":       event.ID,
		"quantity":       2,
		"customer_name":  "Ada Lovelace",
		"customer_email": "ada@example.com",
	}, "")
	if intentResp.StatusCode != http.StatusCreated {
		t.Fatalf("intent status = %d, message: %s", intentResp.StatusCode, intentEnv.Message)
	}

	var intent struct {
		PaymentIntentID string `json:"payment_intent_id"`
		Amount          int64  `json:"amount"`
	}
	if err := json.Unmarshal(intentEnv.Data, &intent); err != nil {
		t.Fatalf("decode intent: %v", err)
	}
	if want := utils.PoundsToPence(event.TicketPrice * 2); intent.Amount != want {
		t.Errorf("amount = %d pence, want %d", intent.Amount, want)
	}

	// simulate the card flow completing
	if err := gateway.MarkSucceeded(intent.PaymentIntentID); err != nil {
		t.Fatalf("MarkSucceeded: %v", err)
	}

	confirmResp, confirmEnv := postJSON(t, server.URL+"/api/tickets/confirm", map[string]string{
		"payment_intent_id": intent.PaymentIntentID,
	}, "")
	if confirmResp.StatusCode != http.StatusOK {
		t.Fatalf("confirm status = %d, message: %s", confirmResp.StatusCode, confirmEnv.Message)
	}

	var confirmation struct {
		ConfirmationNumber string `json:"confirmation_number"`
	}
	if err := json.Unmarshal(confirmEnv.Data, &confirmation); err != nil {
		t.Fatalf("decode confirmation: %v", err)
	}
	if !strings.HasPrefix(confirmation.ConfirmationNumber, "TKT-") {
		t.Errorf("confirmation = %q", confirmation.ConfirmationNumber)
	}
}
