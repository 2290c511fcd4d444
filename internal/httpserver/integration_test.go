package httpserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/MrSnakeDoc/alumnet/internal/config"
	"github.com/MrSnakeDoc/alumnet/internal/directory"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/scheduler"
	"github.com/MrSnakeDoc/alumnet/internal/store"
	"github.com/MrSnakeDoc/alumnet/internal/store/sqlite"
)

// newSQLiteServer runs the full router over a real listener with the sqlite backend.
func newSQLiteServer(t *testing.T) (*httptest.Server, *directory.Service) {
	t.Helper()
	b, err := sqlite.New(filepath.Join(t.TempDir(), "alumnet.db"))
	assert.NilError(t, err)
	st := store.New(b)
	t.Cleanup(func() { _ = st.Close() })
	_, err = st.EnsureAll(context.Background())
	assert.NilError(t, err)

	dir := directory.New(st)
	d := deps.Deps{
		Logger:    logger.NewNop(),
		StartTime: time.Now(),
		Store:     st,
		Directory: dir,
	}
	cfg := &config.Config{RequestTimeout: 5 * time.Second, CORSOrigins: []string{"*"}}

	srv := httptest.NewServer(httpserver.NewHandler(cfg, d.Logger, d))
	t.Cleanup(srv.Close)
	return srv, dir
}

func call(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	assert.NilError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	assert.NilError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	assert.NilError(t, err)
	return resp.StatusCode, string(data)
}

func TestConcurrentCreatesLoseNothing(t *testing.T) {
	srv, _ := newSQLiteServer(t)

	const n = 40
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"name":"Alumni %d","company":"Acme"}`, i)
			resp, err := http.Post(srv.URL+"/api/alumni", "application/json", strings.NewReader(body))
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				errs <- fmt.Errorf("status %d", resp.StatusCode)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	status, body := call(t, http.MethodGet, srv.URL+"/api/alumni", "")
	assert.Equal(t, status, http.StatusOK)
	var list []map[string]any
	assert.NilError(t, json.Unmarshal([]byte(body), &list))
	assert.Assert(t, is.Len(list, n))

	ids := make(map[any]bool, n)
	for _, a := range list {
		ids[a["id"]] = true
	}
	assert.Equal(t, len(ids), n, "ids must be unique")
}

func TestMentoringFlow(t *testing.T) {
	srv, _ := newSQLiteServer(t)

	status, body := call(t, http.MethodPost, srv.URL+"/api/students", `{"name":"Asha","college":"IIT"}`)
	assert.Equal(t, status, http.StatusOK)
	var student map[string]string
	assert.NilError(t, json.Unmarshal([]byte(body), &student))

	status, body = call(t, http.MethodPost, srv.URL+"/api/alumni", `{"name":"Ravi","company":"Google","skills":["Go"],"timing":"Sat 10-12"}`)
	assert.Equal(t, status, http.StatusOK)
	var alumni map[string]any
	assert.NilError(t, json.Unmarshal([]byte(body), &alumni))

	booking := fmt.Sprintf(`{"alumniId":%q,"alumniName":"Ravi","studentId":%q,"studentName":"Asha","studentCollege":"IIT","slot":"2026-03-01T10:00","fee":"Free"}`,
		alumni["id"], student["id"])
	status, body = call(t, http.MethodPost, srv.URL+"/api/bookings", booking)
	assert.Equal(t, status, http.StatusOK)
	var created map[string]any
	assert.NilError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, created["alumniId"], alumni["id"])

	status, _ = call(t, http.MethodPost, srv.URL+"/api/bookmarks", fmt.Sprintf(`{"alumniId":%q,"studentId":%q}`, alumni["id"], student["id"]))
	assert.Equal(t, status, http.StatusOK)

	status, body = call(t, http.MethodDelete, srv.URL+"/api/bookmarks/"+alumni["id"].(string), "")
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, strings.TrimSpace(body), `{"success":true}`)

	status, body = call(t, http.MethodGet, srv.URL+"/api/bookmarks", "")
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, strings.TrimSpace(body), "[]")

	status, _ = call(t, http.MethodDelete, srv.URL+"/api/bookings/"+created["id"].(string), "")
	assert.Equal(t, status, http.StatusOK)
	status, body = call(t, http.MethodGet, srv.URL+"/api/bookings", "")
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, strings.TrimSpace(body), "[]")
}

func TestSeedImportIsSearchable(t *testing.T) {
	srv, dir := newSQLiteServer(t)

	seedFile := filepath.Join(t.TempDir(), "alumni.yaml")
	assert.NilError(t, os.WriteFile(seedFile, []byte(`
- Batch 2018:
    - Asha Rao:
        company: Infosys
        skills: [Kubernetes]
`), 0o644))

	importer := scheduler.NewSeedImporter(seedFile, dir, logger.NewNop(), time.Hour, nil)
	for range 2 {
		_, err := importer.Import(context.Background())
		assert.NilError(t, err)
	}

	status, body := call(t, http.MethodGet, srv.URL+"/api/alumni/search?q=kubernetes", "")
	assert.Equal(t, status, http.StatusOK)
	var found []map[string]any
	assert.NilError(t, json.Unmarshal([]byte(body), &found))
	assert.Assert(t, is.Len(found, 1))
	assert.Equal(t, found[0]["name"], "Asha Rao")
	assert.Equal(t, found[0]["batch"], "Batch 2018")
}
