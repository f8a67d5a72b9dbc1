package notestore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/notes/internal/devstore"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL+"/" {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL+"/")
	}

	u, err = parseBaseURL("example.com:1234/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Path != "/api/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL without host returned nil error")
	}
}

func TestNoteURL_EscapesIDWithinOneSegment(t *testing.T) {
	base, err := parseBaseURL("http://h/api")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	got := base.ResolveReference(noteURL("a/b c")).String()
	want := "http://h/api/notes/a%2Fb%20c"
	if got != want {
		t.Fatalf("note url = %q, want %q", got, want)
	}
}

func TestClient_CRUDAgainstDevStore(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(devstore.NewHandler(devstore.NewStore(), zerolog.Nop()))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("List = %#v, want empty non-nil slice", list)
	}

	created, err := c.Create(ctx, Draft{Title: "  Shopping  list ", Content: "eggs"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Timestamp == "" {
		t.Fatalf("Create = %#v, want server-assigned id and timestamp", created)
	}
	if created.Title != "Shopping list" {
		t.Fatalf("Create title = %q, want normalized %q", created.Title, "Shopping list")
	}
	if created.ParsedTimestamp().IsZero() {
		t.Fatalf("ParsedTimestamp is zero for %q", created.Timestamp)
	}

	got, err := c.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != created {
		t.Fatalf("Get = %#v, want %#v", got, created)
	}

	updated, err := c.Update(ctx, created.ID, Draft{Title: "Errands", Content: "eggs, milk"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != created.ID || updated.Content != "eggs, milk" {
		t.Fatalf("Update = %#v, want same id with new content", updated)
	}

	list, err = c.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID || list[0].Title != "Errands" {
		t.Fatalf("List = %#v, want one Errands row", list)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	_, err = c.Get(ctx, created.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete error = %v, want ErrNotFound", err)
	}
	var storeErr *Error
	if !errors.As(err, &storeErr) || storeErr.Op != OpGet || storeErr.Status != http.StatusNotFound {
		t.Fatalf("Get after delete error = %#v, want *Error op=get status=404", err)
	}
}

func TestClient_SendsHeadersAndBody(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotContentType, gotBody, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, r.Body)
		gotBody = buf.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":17,"title":"t","content":"c","timestamp":"2025-03-01T10:00:00Z"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	note, err := c.Update(context.Background(), "17", Draft{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if note.ID != "17" {
		t.Fatalf("numeric id decoded as %q, want 17", note.ID)
	}
	if gotPath != "/api/notes/17" {
		t.Fatalf("path = %q, want /api/notes/17", gotPath)
	}
	if !strings.HasPrefix(gotUserAgent, "notes/") {
		t.Fatalf("User-Agent = %q, want notes/*", gotUserAgent)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody != `{"title":"t","content":"c"}` {
		t.Fatalf("body = %q, want draft json", gotBody)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case http.MethodPost:
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("List error = %v, want decode response error", err)
	}
	if got := Message(err); got != "Failed to fetch notes" {
		t.Fatalf("Message = %q, want Failed to fetch notes", got)
	}

	_, err = c.Create(context.Background(), Draft{Title: "x"})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("Create error = %v, want status 500 error", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("500 should not match ErrNotFound")
	}
	if got := Message(err); got != "Failed to create note" {
		t.Fatalf("Message = %q, want Failed to create note", got)
	}

	err = c.Delete(context.Background(), "gone")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url, WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.List(context.Background())
	var storeErr *Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("List error = %v, want *Error", err)
	}
	if storeErr.Status != 0 {
		t.Fatalf("Status = %d, want 0 for transport failure", storeErr.Status)
	}
}

func TestClient_RequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Get(context.Background(), " "); err == nil {
		t.Fatalf("Get returned nil error, want error")
	}
	if _, err := c.Update(context.Background(), "", Draft{}); err == nil {
		t.Fatalf("Update returned nil error, want error")
	}
	if err := c.Delete(context.Background(), ""); err == nil {
		t.Fatalf("Delete returned nil error, want error")
	}
}
