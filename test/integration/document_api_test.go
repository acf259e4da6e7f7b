package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-procurement-be/internal/bootstrap"
	"ai-procurement-be/internal/config"
	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/pkg/serverutils"
	"ai-procurement-be/internal/server"
	"ai-procurement-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestDocumentAPIFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	email := fmt.Sprintf("doc-flow-%s@example.com", uuid.New().String())
	password := "secret123"

	// 1. Signup
	signupBody, _ := json.Marshal(dto.SignupRequest{
		Email:     email,
		Password:  password,
		Firstname: "Doc",
		Lastname:  "Flow",
		Role:      "user",
	})
	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(string(signupBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)
	assert.Equal(t, 201, resp.StatusCode)

	// 2. Login
	loginBody, _ := json.Marshal(dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(loginBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	var login dto.LoginResponse
	json.NewDecoder(resp.Body).Decode(&login)
	assert.NotEmpty(t, login.Session.AccessToken)
	token := login.Session.AccessToken

	var created []dto.DocumentResponse
	names := []string{"Invoice_Test_Alpha.pdf", "Contract_Test_Beta.docx", "Invoice_Test_Gamma.pdf"}
	types := []string{"pdf", "docx", "pdf"}

	// 3. Create documents
	for i, name := range names {
		body, _ := json.Marshal(dto.CreateDocumentRequest{
			Name: name,
			Type: types[i],
			Size: 1024,
		})
		req = httptest.NewRequest("POST", "/api/documents", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 201, resp.StatusCode)

		var result serverutils.BaseResponse[dto.DocumentResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.True(t, result.Success)
		assert.Equal(t, name, result.Data.Name)
		created = append(created, result.Data)
	}

	// 4. List with search filter
	t.Run("Search filters by name", func(t *testing.T) {
		req = httptest.NewRequest("GET", "/api/documents?search=invoice", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[dto.ListDocumentsResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Data.TotalItems)
		for _, item := range result.Data.Items {
			assert.Contains(t, strings.ToLower(item.Name), "invoice")
		}
	})

	// 5. Unauthorized access rejected
	t.Run("Missing token rejected", func(t *testing.T) {
		req = httptest.NewRequest("GET", "/api/documents", nil)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 401, resp.StatusCode)
	})

	// 6. Bulk delete cleans up
	t.Run("Bulk delete", func(t *testing.T) {
		ids := make([]uuid.UUID, len(created))
		for i, d := range created {
			ids[i] = d.Id
		}
		body, _ := json.Marshal(dto.BulkIdsRequest{Ids: ids})
		req = httptest.NewRequest("POST", "/api/documents/bulk-delete", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[dto.BulkDeleteResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.True(t, result.Success)
		assert.Equal(t, len(created), result.Data.Deleted)
	})
}
