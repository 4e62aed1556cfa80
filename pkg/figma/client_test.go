package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "valid /file/ URL",
			url:  "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "valid /design/ URL",
			url:  "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with node-id parameter",
			url:  "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Tokens?node-id=11933-305884",
			want: "4gkABR5gEZnIvlCaXmA4KI",
		},
		{
			name: "URL with query directly after the key",
			url:  "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI?node-id=1-2",
			want: "4gkABR5gEZnIvlCaXmA4KI",
		},
		{
			name: "URL without www subdomain",
			url:  "https://figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with http protocol",
			url:  "http://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with trailing slash",
			url:  "https://www.figma.com/file/ABC123XYZ/",
			want: "ABC123XYZ",
		},
		{
			name:    "invalid URL - missing file key",
			url:     "https://www.figma.com/file/",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

const localVariablesBody = `{
  "status": 200,
  "error": false,
  "meta": {
    "variables": {
      "VariableID:2": {
        "id": "VariableID:2",
        "name": "Color/Brand",
        "variableCollectionId": "VariableCollectionId:1",
        "resolvedType": "COLOR",
        "valuesByMode": {"1:1": {"r": 1, "g": 0, "b": 0, "a": 1}, "1:0": {"type": "VARIABLE_ALIAS", "id": "VariableID:1"}},
        "remote": false
      },
      "VariableID:1": {
        "id": "VariableID:1",
        "name": "Spacing Small",
        "variableCollectionId": "VariableCollectionId:1",
        "resolvedType": "FLOAT",
        "valuesByMode": {"1:0": 4}
      }
    },
    "variableCollections": {
      "VariableCollectionId:1": {
        "id": "VariableCollectionId:1",
        "name": "Core Tokens",
        "modes": [{"modeId": "1:0", "name": "Light"}, {"modeId": "1:1", "name": "Dark"}]
      }
    }
  }
}`

func TestGetLocalVariables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/KEY/variables/local" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Figma-Token"); got != "secret" {
			t.Errorf("X-Figma-Token = %q, want %q", got, "secret")
		}
		w.Write([]byte(localVariablesBody))
	}))
	defer srv.Close()

	c := NewClient("secret")
	c.BaseURL = srv.URL

	resp, err := c.GetLocalVariables(context.Background(), "KEY")
	if err != nil {
		t.Fatalf("GetLocalVariables() error = %v", err)
	}

	vars := resp.Meta.Variables
	if len(vars) != 2 {
		t.Fatalf("got %d variables, want 2", len(vars))
	}
	// API order is kept.
	if vars[0].ID != "VariableID:2" || vars[1].ID != "VariableID:1" {
		t.Errorf("variable order = [%s %s]", vars[0].ID, vars[1].ID)
	}

	modes := vars[0].ValuesByMode
	if len(modes) != 2 || modes[0].ModeID != "1:1" || modes[1].ModeID != "1:0" {
		t.Fatalf("mode order = %+v", modes)
	}
	if modes[0].Value.Kind != KindColor || modes[0].Value.Color.R != 1 {
		t.Errorf("first mode value = %+v, want red color", modes[0].Value)
	}
	if modes[1].Value.Kind != KindAlias || modes[1].Value.Alias.ID != "VariableID:1" {
		t.Errorf("second mode value = %+v, want alias", modes[1].Value)
	}
	if vars[0].Remote == nil || vars[0].Remote.ID != "" {
		t.Errorf("boolean remote flag should decode into an empty marker, got %+v", vars[0].Remote)
	}
	if vars[1].Remote != nil {
		t.Errorf("missing remote flag should stay nil, got %+v", vars[1].Remote)
	}

	snap := resp.Snapshot()
	if len(snap.Collections) != 1 {
		t.Fatalf("got %d collections, want 1", len(snap.Collections))
	}
	if name, ok := snap.Collections[0].ModeName("1:1"); !ok || name != "Dark" {
		t.Errorf("ModeName(1:1) = %q, %v", name, ok)
	}
}

func TestGetLocalVariablesRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(localVariablesBody))
	}))
	defer srv.Close()

	c := NewClient("secret")
	c.BaseURL = srv.URL
	c.retryDelay = time.Millisecond

	if _, err := c.GetLocalVariables(context.Background(), "KEY"); err != nil {
		t.Fatalf("GetLocalVariables() error = %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server called %d times, want 3", got)
	}
}

func TestGetLocalVariablesNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("bad")
	c.BaseURL = srv.URL
	c.retryDelay = time.Millisecond

	if _, err := c.GetLocalVariables(context.Background(), "KEY"); err == nil {
		t.Fatal("expected an error for 403 response")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server called %d times, want 1", got)
	}
}
