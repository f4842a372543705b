package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/remote"
)

func TestHTTPStorePull(t *testing.T) {
	t.Parallel()
	var gotPath, gotAuth, gotDevice string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotDevice = r.Header.Get("X-Device-ID")
		_ = json.NewEncoder(w).Encode(remote.Payload{
			Goals:   &model.UserGoals{CalorieGoal: 2200},
			FoodLog: []model.FoodEntry{{ID: 1, Name: "Remote meal", Kcal: 400}},
			Water:   3,
		})
	}))
	defer srv.Close()

	c := &remote.HTTPStore{BaseURL: srv.URL, Token: "tok", DeviceID: "dev-1", HTTPClient: srv.Client()}
	p, err := c.Pull(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if gotPath != "/v1/users/user-1/state" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer tok" || gotDevice != "dev-1" {
		t.Fatalf("auth headers = %q / %q", gotAuth, gotDevice)
	}
	if p.Goals == nil || p.Goals.CalorieGoal != 2200 {
		t.Fatalf("goals = %+v", p.Goals)
	}
	if len(p.FoodLog) != 1 || p.Water != 3 {
		t.Fatalf("payload = %+v", p)
	}
}

func TestHTTPStorePullNotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := &remote.HTTPStore{BaseURL: srv.URL, HTTPClient: srv.Client()}
	p, err := c.Pull(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if p == nil || p.Profile != nil || len(p.FoodLog) != 0 {
		t.Fatalf("404 should yield an empty payload, got %+v", p)
	}
}

func TestHTTPStorePullTrimsWeightHistory(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p remote.Payload
		for i := 0; i < 150; i++ {
			p.WeightLog = append(p.WeightLog, model.WeightEntry{ID: int64(i + 1), WeightKg: 80})
		}
		_ = json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	c := &remote.HTTPStore{BaseURL: srv.URL, HTTPClient: srv.Client()}
	p, err := c.Pull(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if len(p.WeightLog) != 100 {
		t.Fatalf("weight log length = %d, want 100", len(p.WeightLog))
	}
	// The newest tail survives the trim.
	if p.WeightLog[len(p.WeightLog)-1].ID != 150 {
		t.Fatalf("last entry id = %d, want 150", p.WeightLog[len(p.WeightLog)-1].ID)
	}
}

func TestHTTPStorePushSendsPut(t *testing.T) {
	t.Parallel()
	var gotMethod string
	var gotPayload remote.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := &remote.HTTPStore{BaseURL: srv.URL + "/", HTTPClient: srv.Client()}
	err := c.Push(context.Background(), "user-1", remote.Payload{
		Water:   4,
		FoodLog: []model.FoodEntry{{ID: 7, Name: "Push me", Kcal: 120}},
	})
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("method = %q, want PUT", gotMethod)
	}
	if gotPayload.Water != 4 || len(gotPayload.FoodLog) != 1 {
		t.Fatalf("server saw %+v", gotPayload)
	}
}

func TestHTTPStoreErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &remote.HTTPStore{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := c.Pull(context.Background(), "user-1"); err == nil {
		t.Fatalf("pull should surface a 500")
	}
	if err := c.Push(context.Background(), "user-1", remote.Payload{}); err == nil {
		t.Fatalf("push should surface a 500")
	}
	if _, err := c.Pull(context.Background(), " "); err == nil {
		t.Fatalf("pull with blank user id must fail")
	}
	if err := c.Push(context.Background(), "", remote.Payload{}); err == nil {
		t.Fatalf("push with blank user id must fail")
	}
}
