package demo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// Requirement: one failing outbound call leaves its error in that slot only;
// the sibling slots still carry their results.
func TestExternalDataSlotIsolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts/1":
			json.NewEncoder(w).Encode(map[string]any{"id": 1, "title": "post"})
		case "/users/1":
			// Simulate a timeout: the handler outlives the per-call deadline.
			time.Sleep(200 * time.Millisecond)
			json.NewEncoder(w).Encode(map[string]any{"id": 1})
		case "/comments/1":
			json.NewEncoder(w).Encode(map[string]any{"id": 1, "body": "comment"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	f := NewFetcher(50 * time.Millisecond)
	f.PlaceholderBase = server.URL

	out := f.ExternalData(context.Background())

	post, ok := out["post"].(map[string]any)
	if !ok || post["title"] != "post" {
		t.Fatalf("post slot = %v, want fetched payload", out["post"])
	}
	comment, ok := out["comment"].(map[string]any)
	if !ok || comment["body"] != "comment" {
		t.Fatalf("comment slot = %v, want fetched payload", out["comment"])
	}

	userSlot, ok := out["user"].(map[string]any)
	if !ok {
		t.Fatalf("user slot = %v, want error marker", out["user"])
	}
	if _, hasErr := userSlot["error"]; !hasErr {
		t.Fatalf("user slot missing error marker: %v", userSlot)
	}
}

func TestExternalDataAllFailing(t *testing.T) {
	f := NewFetcher(50 * time.Millisecond)
	f.PlaceholderBase = "http://127.0.0.1:1" // nothing listens here

	out := f.ExternalData(context.Background())

	for _, key := range []string{"post", "user", "comment"} {
		slot, ok := out[key].(map[string]any)
		if !ok {
			t.Fatalf("%s slot = %v, want error marker", key, out[key])
		}
		if _, hasErr := slot["error"]; !hasErr {
			t.Fatalf("%s slot missing error marker: %v", key, slot)
		}
	}
}

func TestFetchJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer server.Close()

	f := NewFetcher(time.Second)

	out, err := f.FetchJSON(context.Background(), server.URL+"/good")
	if err != nil {
		t.Fatalf("FetchJSON() failed: %v", err)
	}
	if out["ok"] != true {
		t.Fatalf("FetchJSON() = %v", out)
	}

	if _, err := f.FetchJSON(context.Background(), server.URL+"/bad"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestWeather(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"main": map[string]any{"temp": 280.1}})
	}))
	defer server.Close()

	f := NewFetcher(time.Second)
	f.WeatherBase = server.URL

	out, err := f.Weather(context.Background(), "London")
	if err != nil {
		t.Fatalf("Weather() failed: %v", err)
	}
	if gotPath != "/data/2.5/weather" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery != "q=London&appid=demo" {
		t.Fatalf("query = %q", gotQuery)
	}
	if _, ok := out["main"]; !ok {
		t.Fatalf("Weather() = %v", out)
	}
}
