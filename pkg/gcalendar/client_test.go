package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tailortalk/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gcalendar.Client, func()) {
	t.Helper()

	ts := httptest.NewServer(handler)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		ts.Close()
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts.Close
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from installed app config missing token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds),
			filepath.Join(t.TempDir(), "does-not-exist.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name(), "")
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", "")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Create Event E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
			Summary:    "Meeting with User",
			StartTime:  time.Now(),
			EndTime:    time.Now().Add(30 * time.Minute),
			Timezone:   "UTC",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer closeFn()

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})

	t.Run("FreeBusy E2E", func(t *testing.T) {
		busy := true
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/freeBusy" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				if busy {
					w.Write([]byte(`{
						"calendars": {
							"primary": {
								"busy": [
									{"start": "2025-06-06T09:00:00Z", "end": "2025-06-06T09:30:00Z"}
								]
							}
						}
					}`))
				} else {
					w.Write([]byte(`{"calendars": {"primary": {"busy": []}}}`))
				}
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		start := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)

		free, err := client.IsFree(context.Background(), gcalendar.FreeBusyRequest{
			CalendarID: "primary",
			TimeMin:    start,
			TimeMax:    start.Add(30 * time.Minute),
		})
		if err != nil {
			t.Fatalf("IsFree failed: %v", err)
		}
		if free {
			t.Errorf("expected busy slot to report not free")
		}

		busy = false
		free, err = client.IsFree(context.Background(), gcalendar.FreeBusyRequest{
			CalendarID: "primary",
			TimeMin:    start,
			TimeMax:    start.Add(30 * time.Minute),
		})
		if err != nil {
			t.Fatalf("IsFree failed: %v", err)
		}
		if !free {
			t.Errorf("expected empty busy list to report free")
		}
	})

	t.Run("FreeBusy missing calendar", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"calendars": {}}`))
		})
		defer closeFn()

		_, err := client.IsFree(context.Background(), gcalendar.FreeBusyRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(30 * time.Minute),
		})
		if err == nil {
			t.Fatalf("expected error when response omits the calendar")
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/test-fail/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "Meeting with User",
							"start": { "dateTime": "2025-06-06T09:00:00Z" },
							"end": { "dateTime": "2025-06-06T09:30:00Z" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].Summary != "Meeting with User" {
			t.Errorf("unexpected event: %s", events[0].Summary)
		}
		if events[0].StartTime.Hour() != 9 {
			t.Errorf("unexpected start: %v", events[0].StartTime)
		}

		_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "test-fail",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(24 * time.Hour),
		})
		if err == nil {
			t.Fatalf("expected api error on test-fail")
		}
	})
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")

	if _, err := gcalendar.LoadToken(path); err == nil {
		t.Fatal("expected error loading missing token")
	}

	os.WriteFile(path, []byte(`{"access_token":"abc","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0600)

	tok, err := gcalendar.LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if tok.AccessToken != "abc" {
		t.Errorf("unexpected access token: %q", tok.AccessToken)
	}

	tok.AccessToken = "def"
	if err := gcalendar.SaveToken(path, tok); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	reloaded, err := gcalendar.LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken after save: %v", err)
	}
	if reloaded.AccessToken != "def" {
		t.Errorf("expected persisted token, got %q", reloaded.AccessToken)
	}
}
