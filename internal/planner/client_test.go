package planner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func envelopeHandler(t *testing.T, wantPath string, status int, data any, message string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("request path = %q, want %q", r.URL.Path, wantPath)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("Authorization = %q", got)
		}
		raw, _ := json.Marshal(data)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(apiEnvelope{
			Status:  "success",
			Code:    status,
			Message: message,
			Data:    raw,
		})
	}
}

func TestClient_FetchItineraryUnwrapsEnvelope(t *testing.T) {
	it := Itinerary{
		ID:        7,
		Title:     "Porto",
		StartDate: "2025-05-01",
		EndDate:   "2025-05-03",
		Schedule: Schedule{
			Days:       []Day{{Date: "2025-05-01", Morning: []Event{{ID: 1, Name: "Ribeira walk"}}}},
			Unassigned: []Event{{ID: 2, Name: "Port tasting", UserCreated: true}},
		},
	}
	srv := httptest.NewServer(envelopeHandler(t, "/itineraries/7", http.StatusOK, it, ""))
	defer srv.Close()

	client := NewClient(srv.URL, "token-1", 5*time.Second)
	got, err := client.FetchItinerary(context.Background(), 7)
	if err != nil {
		t.Fatalf("FetchItinerary failed: %v", err)
	}
	if got.Title != "Porto" || len(got.Days) != 1 || len(got.Unassigned) != 1 {
		t.Errorf("itinerary = %+v", got)
	}
	if got.Days[0].Morning[0].Name != "Ribeira walk" {
		t.Error("per-block event arrays not decoded")
	}
}

func TestClient_SaveItineraryReturnsID(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, "/itineraries/save", http.StatusOK, idPayload{ID: 7}, "saved"))
	defer srv.Close()

	client := NewClient(srv.URL, "token-1", 5*time.Second)
	id, err := client.SaveItinerary(context.Background(), &Itinerary{ID: 7, Title: "Porto"})
	if err != nil {
		t.Fatalf("SaveItinerary failed: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}
}

func TestClient_MapsStatusesToAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(apiEnvelope{Status: "error", Code: 401, Message: "Invalid or expired token"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token-1", 5*time.Second)
	_, err := client.FetchItinerary(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("401 did not match ErrUnauthenticated: %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 401 {
		t.Errorf("err = %v, want APIError with status 401", err)
	}
}

func TestClient_DeleteSendsNoBodyExpectations(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, "/events/user-events/9", http.StatusOK, nil, "deleted"))
	defer srv.Close()

	client := NewClient(srv.URL, "token-1", 5*time.Second)
	if err := client.DeleteUserEvent(context.Background(), 9); err != nil {
		t.Fatalf("DeleteUserEvent failed: %v", err)
	}
}
