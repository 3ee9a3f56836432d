package matcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(context.Background(), zap.NewNop(), server.URL)
}

func TestAPIErrorSurfacesDetail(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Project not found"})
	}))

	_, err := client.GetProject(99)
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Error() != "Project not found" {
		t.Fatalf("expected backend detail, got %q", apiErr.Error())
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status code: %d", apiErr.StatusCode)
	}
}

func TestAPIErrorDefaultsWithoutDetail(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))

	_, err := client.ListProjects()
	if err == nil {
		t.Fatal("expected an error for a 502 response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected a generic message naming the status, got %q", err.Error())
	}
}

func TestGetMatchesDecodesSchemalessPayload(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/projects/7/matches" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"match_id":         1,
				"rank":             1,
				"resume_id":        11,
				"resume_filename":  "ada.pdf",
				"position_id":      3,
				"similarity_score": 0.92,
				"position_data":    map[string]any{"title": "Engineer", "headcount": 4},
			},
		})
	}))

	matches, err := client.GetMatches(7, nil)
	if err != nil {
		t.Fatalf("get matches: %v", err)
	}
	if matches.Len() != 1 {
		t.Fatalf("expected 1 match, got %d", matches.Len())
	}

	match := matches.Items[0]
	if match.ID != 1 || match.PositionID != 3 || match.SimilarityScore != 0.92 {
		t.Fatalf("match decoded incorrectly: %+v", match)
	}
	if title, ok := match.Field("title"); !ok || title != "Engineer" {
		t.Fatalf("expected title Engineer, got %q (%v)", title, ok)
	}
	if headcount, ok := match.Field("headcount"); !ok || headcount != "4" {
		t.Fatalf("expected stringified headcount 4, got %q", headcount)
	}
	if _, ok := match.Field("missing"); ok {
		t.Fatal("absent column must report ok=false")
	}
}

func TestGetMatchesBuildsQuery(t *testing.T) {
	var query string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode([]map[string]any{})
	}))

	_, err := client.GetMatches(7, &MatchOptions{
		Offset:      100,
		Limit:       50,
		PositionID:  3,
		MinScore:    0.7,
		HasMinScore: true,
	})
	if err != nil {
		t.Fatalf("get matches: %v", err)
	}

	for _, expected := range []string{"offset=100", "limit=50", "position_id=3", "min_score=0.7"} {
		if !strings.Contains(query, expected) {
			t.Fatalf("query %q missing %q", query, expected)
		}
	}
}

func TestStartProcessingReturnsJobID(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]any{"job_id": 42, "status": "started"})
	}))

	jobID, err := client.StartProcessing(7)
	if err != nil {
		t.Fatalf("start processing: %v", err)
	}
	if jobID != 42 {
		t.Fatalf("expected job id 42, got %d", jobID)
	}
}

func TestUploadResumesSendsMultipart(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		files := r.MultipartForm.File["files"]
		if len(files) != 2 {
			t.Errorf("expected 2 files under the files field, got %d", len(files))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"results": []map[string]any{
				{"filename": "a.pdf", "status": "processed", "text_length": 120},
				{"filename": "b.pdf", "status": "failed", "message": "empty document"},
			},
		})
	}))

	result, err := client.UploadResumes(7, []FilePart{
		{Filename: "a.pdf", Reader: strings.NewReader("alpha")},
		{Filename: "b.pdf", Reader: strings.NewReader("beta")},
	})
	if err != nil {
		t.Fatalf("upload resumes: %v", err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected 2 per-file results, got %d", len(result.Results))
	}
	if result.Results[1].Message != "empty document" {
		t.Fatalf("unexpected failure message: %q", result.Results[1].Message)
	}
}

func TestConfirmPositionsEncodesColumnChoice(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if got := r.FormValue("embedding_columns"); got != `["title","skills"]` {
			t.Errorf("unexpected embedding_columns: %s", got)
		}
		if got := r.FormValue("output_columns"); got != `["title"]` {
			t.Errorf("unexpected output_columns: %s", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"message": "ok", "count": 12})
	}))

	result, err := client.ConfirmPositions(7, "positions.xlsx", strings.NewReader("sheet"),
		[]string{"title", "skills"}, []string{"title"})
	if err != nil {
		t.Fatalf("confirm positions: %v", err)
	}
	if result.Count != 12 {
		t.Fatalf("expected count 12, got %d", result.Count)
	}
}

func TestBearerTokenHeader(t *testing.T) {
	var auth string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]map[string]any{})
	}))

	if _, err := client.ListProjects(); err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if auth != "" {
		t.Fatalf("no Authorization header expected without a token, got %q", auth)
	}

	client.SetToken("sekret")
	if _, err := client.ListProjects(); err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if auth != "Bearer sekret" {
		t.Fatalf("expected bearer header, got %q", auth)
	}
}

func TestPositionTitleFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]any
		expect string
	}{
		{"title column", map[string]any{"title": "Staff Engineer"}, "Staff Engineer"},
		{"job_title column", map[string]any{"job_title": "Analyst"}, "Analyst"},
		{"no known column", map[string]any{"dept": "R&D"}, "Position 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Position{ID: 5, OriginalData: tt.data}
			if got := p.Title(); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
