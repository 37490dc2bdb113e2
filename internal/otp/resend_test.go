package otp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResendClientSend(t *testing.T) {
	var got Email
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewResendClient("re_test_key")
	client.baseURL = srv.URL

	email := Email{From: "noreply@rewixcash.com", To: "ana@x.com", Subject: "hi", HTML: "<p>hi</p>"}
	if err := client.Send(context.Background(), email); err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotAuth != "Bearer re_test_key" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if got != email {
		t.Fatalf("expected payload %+v, got %+v", email, got)
	}
}

func TestResendClientNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer srv.Close()

	client := NewResendClient("re_test_key")
	client.baseURL = srv.URL

	err := client.Send(context.Background(), Email{To: "not-an-email"})
	if err == nil {
		t.Fatalf("expected error on 422 response")
	}
}
