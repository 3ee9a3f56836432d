package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emr-dev1/resume-matcher/internal/matcher"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	mux        *http.ServeMux
	server     *httptest.Server
	nextID     int
	failDelete bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{mux: http.NewServeMux(), nextID: 100}

	b.mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "alpha", "status": "created"},
			{"id": 2, "name": "beta", "status": "completed"},
		})
	})
	b.mux.HandleFunc("POST /api/projects", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		b.nextID++
		json.NewEncoder(w).Encode(map[string]any{"id": b.nextID, "name": body.Name, "status": "created"})
	})
	b.mux.HandleFunc("DELETE /api/projects/", func(w http.ResponseWriter, _ *http.Request) {
		if b.failDelete {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "database is on fire"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	})
	b.mux.HandleFunc("GET /api/projects/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/projects/")
		fmt.Fprintf(w, `{"id": %s, "name": "alpha", "status": "processing"}`, id)
	})

	b.server = httptest.NewServer(b.mux)
	t.Cleanup(b.server.Close)

	return b
}

func (b *fakeBackend) store(t *testing.T) *Projects {
	t.Helper()
	client := matcher.New(context.Background(), zap.NewNop(), b.server.URL)
	return NewProjects(client, zap.NewNop())
}

func TestProjectsLoadAndCreatePrepends(t *testing.T) {
	backend := newFakeBackend(t)
	projects := backend.store(t)

	require.NoError(t, projects.Load())
	require.Equal(t, 2, projects.Len())

	created, err := projects.Create("gamma")
	require.NoError(t, err)
	require.Equal(t, "gamma", created.Name)

	all := projects.All()
	require.Equal(t, created.ID, all[0].ID, "new project must be prepended")
	require.Equal(t, 3, len(all))
}

func TestProjectsRemoveClearsSelectionOnlyForSelected(t *testing.T) {
	backend := newFakeBackend(t)
	projects := backend.store(t)
	require.NoError(t, projects.Load())

	projects.Select(1)

	// Deleting a different project leaves the selection alone.
	require.NoError(t, projects.Remove(2))
	require.NotNil(t, projects.Selected())
	require.Equal(t, 1, projects.Selected().ID)

	// Deleting the selected project clears it.
	require.NoError(t, projects.Remove(1))
	require.Nil(t, projects.Selected())
	require.Equal(t, 0, projects.Len())
}

func TestProjectsRemoveFailureLeavesCacheUntouched(t *testing.T) {
	backend := newFakeBackend(t)
	projects := backend.store(t)
	require.NoError(t, projects.Load())
	projects.Select(1)

	backend.failDelete = true
	err := projects.Remove(1)

	require.Error(t, err)
	require.Contains(t, err.Error(), "database is on fire")
	require.Equal(t, 2, projects.Len())
	require.NotNil(t, projects.Selected())
}

func TestProjectsSetStatusPreservesIdentity(t *testing.T) {
	backend := newFakeBackend(t)
	projects := backend.store(t)
	require.NoError(t, projects.Load())

	before := projects.FindByID(1)
	projects.SetStatus(1, "processing")
	after := projects.FindByID(1)

	require.Same(t, before, after, "status update must not replace the entry")
	require.Equal(t, "processing", after.Status)
	require.Equal(t, 2, projects.Len(), "status update must not duplicate the entry")
}

func TestProjectsGetFoldsFreshFieldsIntoCache(t *testing.T) {
	backend := newFakeBackend(t)
	projects := backend.store(t)
	require.NoError(t, projects.Load())

	cached := projects.FindByID(1)
	fetched, err := projects.Get(1)

	require.NoError(t, err)
	require.Same(t, cached, fetched)
	require.Equal(t, "processing", fetched.Status)
}
