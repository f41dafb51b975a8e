package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"geotagger-be/internal/bootstrap"
	"geotagger-be/internal/config"
	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/serverutils"
	"geotagger-be/internal/server"
	"geotagger-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the full stack against a real Postgres. Skipped unless
// DB_CONNECTION_STRING is set.
func TestFolderAndNoteFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// 1. Resolve a coordinate nobody has visited: a folder is minted.
	body, _ := json.Marshal(dto.ResolveFolderRequest{Latitude: -33.8688, Longitude: 151.2093})
	req := httptest.NewRequest("POST", "/api/folders/resolve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var resolveRes serverutils.BaseResponse[dto.ResolveFolderResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&resolveRes))
	assert.True(t, resolveRes.Data.Created)
	folderId := resolveRes.Data.Id

	defer func() {
		req := httptest.NewRequest("DELETE", "/api/folders/"+folderId.String(), nil)
		_, _ = app.Test(req, -1)
	}()

	// 2. A note at nearly the same spot lands in the same folder.
	body, _ = json.Marshal(dto.CreateNoteRequest{
		Text:      "integration test note",
		Latitude:  -33.86881,
		Longitude: 151.2093,
	})
	req = httptest.NewRequest("POST", "/api/notes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var noteRes serverutils.BaseResponse[dto.CreateNoteResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&noteRes))
	assert.False(t, noteRes.Data.FolderCreated)
	assert.Equal(t, folderId, noteRes.Data.FolderId)

	// 3. The folder shows up with its note embedded.
	req = httptest.NewRequest("GET", "/api/folders/"+folderId.String(), nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var showRes serverutils.BaseResponse[dto.FolderResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&showRes))
	assert.Len(t, showRes.Data.Notes, 1)
}

func TestHeatmapEndpoint(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	app := server.New(cfg, container).GetApp()

	body, _ := json.Marshal(dto.HeatmapRequest{Latitude: 48.8566, Longitude: 2.3522, Scheme: "moisture"})
	req := httptest.NewRequest("POST", "/api/satellite/heatmap", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var res serverutils.BaseResponse[dto.HeatmapResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 200, res.Data.Width)
	assert.NotEmpty(t, res.Data.ImageBase64)
	assert.Greater(t, res.Data.Bounds.North, res.Data.Bounds.South)
}
