package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

const testChannelSecret = "testsecret"

func newTestServer(t *testing.T, market MarketClient) *WebServer {
	t.Helper()

	db := newTestDB(t)
	lineClient, err := linebot.New(testChannelSecret, "testtoken")
	if err != nil {
		t.Fatalf("failed to create line client: %v", err)
	}

	gin.SetMode(gin.TestMode)
	ws := &WebServer{
		cfg: Config{
			LiffID:     "liff-test",
			HostURL:    "https://bot.example.com",
			UploadDir:  t.TempDir(),
			SymbolFile: "docs/stock_name.csv",
		},
		db:         db,
		lineClient: lineClient,
		bot:        NewBot(db, market, &fakeCharts{}, "liff-test"),
		market:     market,
		router:     gin.New(),
	}
	ws.setupRoutes()
	return ws
}

func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testChannelSecret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestCallbackValidSignature(t *testing.T) {
	ws := newTestServer(t, &fakeMarket{})

	body := `{"destination":"xxx","events":[]}`
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Line-Signature", signBody(body))

	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Fatalf("expected OK body, got %q", w.Body.String())
	}
}

func TestCallbackTamperedSignature(t *testing.T) {
	ws := newTestServer(t, &fakeMarket{})

	body := `{"destination":"xxx","events":[]}`
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Line-Signature", signBody(body+"tampered"))

	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for tampered signature, got %d", w.Code)
	}
}

func TestAddFavoritesSkipsInvalidCodes(t *testing.T) {
	market := &fakeMarket{valid: map[string]bool{"2330": true}}
	ws := newTestServer(t, market)

	body := `{"userId":"U1","stockCodes":["2330","9999INVALID"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/add_favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AddFavoritesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}

	codes, err := ws.db.GetFavorites("U1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(codes) != 1 || codes[0] != "2330" {
		t.Fatalf("expected exactly [2330] stored, got %v", codes)
	}
}

func TestAddFavoritesMissingFields(t *testing.T) {
	ws := newTestServer(t, &fakeMarket{})

	cases := []struct {
		name string
		body string
	}{
		{"missing userId", `{"stockCodes":["2330"]}`},
		{"missing stockCodes", `{"userId":"U1"}`},
		{"empty stockCodes", `{"userId":"U1","stockCodes":[]}`},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/add_favorites", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		ws.router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, w.Code)
		}

		var resp AddFavoritesResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: bad response body: %v", tc.name, err)
		}
		if resp.Success {
			t.Fatalf("%s: expected failure response", tc.name)
		}
	}
}

func TestGetStockSymbols(t *testing.T) {
	ws := newTestServer(t, &fakeMarket{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var symbols []SymbolEntry
	if err := json.Unmarshal(w.Body.Bytes(), &symbols); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(symbols) == 0 {
		t.Fatal("expected at least one symbol")
	}
	for _, s := range symbols {
		if s.Code == "" || s.Name == "" {
			t.Fatalf("malformed entry survived: %+v", s)
		}
	}
}
