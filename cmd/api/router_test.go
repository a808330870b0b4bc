package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "happy-thoughts-backend/internal/auth/domain"
	authRepo "happy-thoughts-backend/internal/auth/repository"
	authUsecase "happy-thoughts-backend/internal/auth/usecase"
	thoughtdomain "happy-thoughts-backend/internal/thought/domain"
	thoughtRepo "happy-thoughts-backend/internal/thought/repository"
	thoughtUsecase "happy-thoughts-backend/internal/thought/usecase"
	"happy-thoughts-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T, authEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &thoughtdomain.Thought{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{Port: "0", AuthEnabled: authEnabled}
	authUc := authUsecase.NewAuthUsecase(authRepo.NewUserRepository(db))
	thoughtUc := thoughtUsecase.NewThoughtUsecase(thoughtRepo.NewGormThoughtRepository(db), authEnabled)

	return NewHandler(authUc, thoughtUc, cfg).Engine()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) (id, token string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"name": name, "email": email, "password": "hunter22",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	return body["id"].(string), body["accessToken"].(string)
}

func TestAPIDoc(t *testing.T) {
	r := setupServer(t, true)

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["name"] != "Happy Thoughts API" {
		t.Errorf("unexpected API doc payload: %v", body)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupServer(t, true)

	_, token := registerUser(t, r, "Ada", "ada@example.com")

	t.Run("register never leaks the password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
			"name": "Eva", "email": "eva@example.com", "password": "hunter22",
		})
		body := decode(t, w)
		if _, leaked := body["password"]; leaked {
			t.Error("password must not appear in the response")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
			"name": "Imposter", "email": "ada@example.com", "password": "hunter22",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation details", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
			"name": "A", "email": "bad", "password": "123",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decode(t, w)
		if _, ok := body["details"]; !ok {
			t.Error("expected field-level details in validation response")
		}
	})

	t.Run("login with correct password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
			"email": "ada@example.com", "password": "hunter22",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["accessToken"] != token {
			t.Error("login must return the token issued at registration")
		}
	})

	t.Run("login with wrong password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
			"email": "ada@example.com", "password": "wrong-password",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login with unknown email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
			"email": "ghost@example.com", "password": "hunter22",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestThoughtLifecycle_Authenticated(t *testing.T) {
	r := setupServer(t, true)

	_, ownerToken := registerUser(t, r, "Ada", "ada@example.com")
	_, strangerToken := registerUser(t, r, "Eva", "eva@example.com")

	// Unauthenticated create is rejected
	w := doJSON(t, r, http.MethodPost, "/thoughts", "", gin.H{"message": "cold beer"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// Authenticated create
	w = doJSON(t, r, http.MethodPost, "/thoughts", ownerToken, gin.H{"message": "cold beer"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	id := created["id"].(string)
	if created["hearts"].(float64) != 0 {
		t.Errorf("expected 0 hearts, got %v", created["hearts"])
	}

	t.Run("list expands user to name only", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/thoughts", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatalf("failed to decode list: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected 1 thought, got %d", len(list))
		}
		user, ok := list[0]["user"].(map[string]any)
		if !ok {
			t.Fatalf("expected expanded user, got %v", list[0]["user"])
		}
		if user["name"] != "Ada" {
			t.Errorf("expected user name Ada, got %v", user["name"])
		}
		if len(user) != 1 {
			t.Errorf("user must expose name only, got %v", user)
		}
	})

	t.Run("non-owner update is forbidden", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/thoughts/"+id, strangerToken, gin.H{"message": "hijacked text"})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner update", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/thoughts/"+id, ownerToken, gin.H{"message": "warm beer"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		if decode(t, w)["message"] != "warm beer" {
			t.Error("expected updated message in response")
		}
	})

	t.Run("like twice", func(t *testing.T) {
		doJSON(t, r, http.MethodPost, "/thoughts/"+id+"/like", "", nil)
		w := doJSON(t, r, http.MethodPost, "/thoughts/"+id+"/like", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decode(t, w)["hearts"].(float64) != 2 {
			t.Errorf("expected 2 hearts after two likes, got %v", decode(t, w)["hearts"])
		}
	})

	t.Run("non-owner delete is forbidden", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/thoughts/"+id, strangerToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner delete returns prior state", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/thoughts/"+id, ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decode(t, w)["message"] != "warm beer" {
			t.Error("expected deleted entity in response")
		}
	})

	t.Run("get after delete", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/thoughts/"+id, "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", w.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/thoughts/not-a-uuid", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decode(t, w)["error"] != "invalid id" {
			t.Errorf("expected invalid id error, got %v", decode(t, w)["error"])
		}
	})
}

func TestThoughtLifecycle_Simplified(t *testing.T) {
	r := setupServer(t, false)

	// No token needed anywhere in the simplified variant
	w := doJSON(t, r, http.MethodPost, "/thoughts", "", gin.H{"message": "cold beer"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	id := created["id"].(string)
	if _, hasUser := created["user"]; hasUser {
		t.Error("simplified variant must not attribute thoughts")
	}

	w = doJSON(t, r, http.MethodPatch, "/thoughts/"+id, "", gin.H{"message": "edited freely"})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for anonymous edit, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/thoughts/"+id, "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for anonymous delete, got %d", w.Code)
	}
}

func TestCreateThought_MessageTooShort(t *testing.T) {
	r := setupServer(t, false)

	w := doJSON(t, r, http.MethodPost, "/thoughts", "", gin.H{"message": "four"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decode(t, w)
	if body["error"] != "validation failed" {
		t.Errorf("expected validation error, got %v", body)
	}
}
