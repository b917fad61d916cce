package aspace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/secondary"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts, New(ts.URL, "admin", "secret", "2")
}

func TestAuthenticate(t *testing.T) {
	var gotPath, gotPassword string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPassword = r.URL.Query().Get("password")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"session": "tok-123"})
	})

	if err := client.Authenticate(context.Background()); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if gotPath != "/users/admin/login" {
		t.Errorf("path = %q", gotPath)
	}
	if gotPassword != "secret" {
		t.Errorf("password = %q", gotPassword)
	}
	if client.token != "tok-123" {
		t.Errorf("token = %q", client.token)
	}
}

func TestAuthenticateRejectsEmptySession(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	if err := client.Authenticate(context.Background()); err == nil {
		t.Fatal("expected error for missing session token")
	}
}

func TestLookupParsesRecord(t *testing.T) {
	var gotPath, gotSession string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSession = r.Header.Get(sessionHeader)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"title":      "Folder A",
			"suppressed": false,
			"resource":   map[string]string{"ref": "/repositories/2/resources/9290"},
			"ancestors": []map[string]string{
				{"ref": "/repositories/2/archival_objects/500"},
				{"ref": "/repositories/2/resources/9290"},
			},
		})
	})
	client.token = "tok"

	rec, err := client.Lookup(context.Background(), models.RecordTypeArchivalObject, 101)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if gotPath != "/repositories/2/archival_objects/101" {
		t.Errorf("path = %q", gotPath)
	}
	if gotSession != "tok" {
		t.Errorf("session header = %q", gotSession)
	}
	if rec.Title != "Folder A" || rec.ResourceRef != "/repositories/2/resources/9290" {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.AncestorRefs) != 2 {
		t.Errorf("ancestors = %v", rec.AncestorRefs)
	}
}

func TestLookupClassifiesFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind secondary.LookupErrorKind
	}{
		{"404 is not found", http.StatusNotFound, secondary.KindNotFound},
		{"403 is access denied", http.StatusForbidden, secondary.KindAccessDenied},
		{"401 is access denied", http.StatusUnauthorized, secondary.KindAccessDenied},
		{"500 is transport", http.StatusInternalServerError, secondary.KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Lookup(context.Background(), models.RecordTypeResource, 9290)
			le, ok := err.(*secondary.LookupError)
			if !ok {
				t.Fatalf("err = %T, want *LookupError", err)
			}
			if le.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", le.Kind, tt.wantKind)
			}
			if le.ID != 9290 {
				t.Errorf("id = %d, failures must name the record", le.ID)
			}
		})
	}
}

func TestSetPositionBuildsAcceptChildrenCall(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]string{"status": "Updated"})
	})
	client.token = "tok"

	err := client.SetPosition(context.Background(), models.RecordTypeResource, 9290, 101, 3)
	if err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if gotPath != "/repositories/2/resources/9290/accept_children" {
		t.Errorf("path = %q", gotPath)
	}
	if got := gotQuery["children[]"]; len(got) != 1 || got[0] != "/repositories/2/archival_objects/101" {
		t.Errorf("children[] = %v", got)
	}
	if got := gotQuery["position"]; len(got) != 1 || got[0] != "3" {
		t.Errorf("position = %v", got)
	}
}

func TestBulkInsertRepeatsChildrenParamInOrder(t *testing.T) {
	var calls int
	var gotChildren []string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotChildren = r.URL.Query()["children[]"]
		json.NewEncoder(w).Encode(map[string]string{"status": "Updated"})
	})
	client.token = "tok"

	err := client.BulkInsert(context.Background(), models.RecordTypeResource, 9290, []int{103, 101, 102}, 0)
	if err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want exactly 1", calls)
	}
	want := []string{
		"/repositories/2/archival_objects/103",
		"/repositories/2/archival_objects/101",
		"/repositories/2/archival_objects/102",
	}
	for i := range want {
		if gotChildren[i] != want[i] {
			t.Fatalf("children[] = %v, want %v", gotChildren, want)
		}
	}
}

func TestAcceptChildrenSurfacesServerRejection(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conflict", http.StatusConflict)
	})
	client.token = "tok"

	err := client.SetPosition(context.Background(), models.RecordTypeResource, 9290, 101, 0)
	if err == nil {
		t.Fatal("expected error")
	}
}
