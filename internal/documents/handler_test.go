package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/bootstrap"
	"docchat-backend/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LLMProvider:     "none",
		MaxUploadMB:     10,
	}
}

func uploadFile(t *testing.T, router *gin.Engine, userID, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-User-Id", userID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDocumentsUploadListDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(testConfig())
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	router := app.Router

	resp := uploadFile(t, router, "u1", "notes.txt", []byte("The sky is blue."))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID string `json:"documentId"`
		FileName   string `json:"fileName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatal("expected documentId, got empty")
	}
	if created.FileName != "notes.txt" {
		t.Fatalf("expected fileName notes.txt, got %s", created.FileName)
	}

	// Listing shows the document, newest first.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	reqList.Header.Set("X-User-Id", "u1")
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)

	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var listing struct {
		Documents []struct {
			DocumentID string `json:"documentId"`
			FileName   string `json:"fileName"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listing); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listing.Documents) != 1 || listing.Documents[0].DocumentID != created.DocumentID {
		t.Fatalf("unexpected listing: %+v", listing)
	}

	// Delete, then the document is gone.
	reqDel := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/"+created.DocumentID, nil)
	reqDel.Header.Set("X-User-Id", "u1")
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", respDel.Code)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created.DocumentID, nil)
	reqGet.Header.Set("X-User-Id", "u1")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", respGet.Code)
	}

	// Deleting again stays a 204 (idempotent).
	reqDel2 := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/"+created.DocumentID, nil)
	reqDel2.Header.Set("X-User-Id", "u1")
	respDel2 := httptest.NewRecorder()
	router.ServeHTTP(respDel2, reqDel2)
	if respDel2.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 on repeat delete, got %d", respDel2.Code)
	}
}

func TestDocumentsUploadUnsupportedType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(testConfig())
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	resp := uploadFile(t, app.Router, "u1", "report.docx", []byte("content"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "unsupported_file_type" {
		t.Fatalf("expected unsupported_file_type, got %s", body.Error.Code)
	}
}

func TestDocumentsRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(testConfig())
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without identity, got %d", resp.Code)
	}
}
