package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/exam-portal/exam-portal/internal/api/http"
	"github.com/exam-portal/exam-portal/internal/auth"
	"github.com/exam-portal/exam-portal/internal/exam"
	"github.com/exam-portal/exam-portal/internal/identity"
)

func newTestRouter() http.Handler {
	store := exam.NewMemoryStore(exam.DefaultTests()...)
	users := identity.NewMemoryStore()
	authSvc := auth.NewAuthService("test-secret")
	svc := exam.NewService(store, store)
	return api.NewRouter(svc, users, authSvc, []string{"http://localhost:3000"})
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func signup(t *testing.T, h http.Handler, name, email, password string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/signup", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("signup returned empty token")
	}
	return resp.Token
}

func TestSignupValidationAndConflict(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodPost, "/api/signup", "", map[string]string{"name": "Alice"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: expected 400, got %d", rec.Code)
	}

	signup(t, h, "Alice", "a@x.com", "pw123")

	rec = do(t, h, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Alice Again", "email": "a@x.com", "password": "other",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	decode(t, rec, &resp)
	if resp.Message != "User already exists" {
		t.Fatalf("unexpected conflict message: %q", resp.Message)
	}
}

func TestSignupNeverLeaksHash(t *testing.T) {
	h := newTestRouter()
	rec := do(t, h, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "pw123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup returned %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Fatalf("response leaks credential material: %s", body)
	}
}

func TestLoginUniformFailure(t *testing.T) {
	h := newTestRouter()
	signup(t, h, "Alice", "a@x.com", "pw123")

	unknown := do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "missing@x.com", "password": "pw123",
	})
	wrongPw := do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "a@x.com", "password": "nope",
	})
	if unknown.Code != http.StatusBadRequest || wrongPw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", unknown.Code, wrongPw.Code)
	}
	// No account enumeration: both failures read identically.
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Fatalf("login failures differ: %q vs %q", unknown.Body.String(), wrongPw.Body.String())
	}

	ok := do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "a@x.com", "password": "pw123",
	})
	if ok.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", ok.Code, ok.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestRouter()

	for _, path := range []string{"/api/tests", "/api/tests/1", "/api/results"} {
		rec := do(t, h, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s without token: expected 401, got %d", path, rec.Code)
		}
	}

	rec := do(t, h, http.MethodPost, "/api/tests/1/submit", "", map[string]any{"answers": map[string]int{}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("submit without token: expected 401, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/tests", "garbage-token", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("invalid token: expected 403, got %d", rec.Code)
	}
}

func TestListAndGetTestsAreRedacted(t *testing.T) {
	h := newTestRouter()
	token := signup(t, h, "Alice", "a@x.com", "pw123")

	rec := do(t, h, http.MethodGet, "/api/tests", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list tests returned %d", rec.Code)
	}
	var list []map[string]any
	decode(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 tests, got %d", len(list))
	}
	if list[0]["id"] != float64(1) || list[0]["title"] != "SSC CGL General Knowledge" || list[0]["questionCount"] != float64(5) {
		t.Fatalf("unexpected first summary: %+v", list[0])
	}
	if _, ok := list[0]["questions"]; ok {
		t.Fatal("listing must not include questions")
	}

	rec = do(t, h, http.MethodGet, "/api/tests/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get test returned %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"correct"`) || strings.Contains(rec.Body.String(), `"correctAnswer"`) {
		t.Fatalf("redacted test leaks answer key: %s", rec.Body.String())
	}
	var pub struct {
		Questions []map[string]any `json:"questions"`
	}
	decode(t, rec, &pub)
	if len(pub.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(pub.Questions))
	}

	rec = do(t, h, http.MethodGet, "/api/tests/99", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown test: expected 404, got %d", rec.Code)
	}
}

func TestSubmitAndResultsEndToEnd(t *testing.T) {
	h := newTestRouter()
	token := signup(t, h, "Alice", "a@x.com", "pw123")

	rec := do(t, h, http.MethodPost, "/api/tests/1/submit", token, map[string]any{
		"answers": map[string]int{"1": 0, "2": 2, "3": 1, "4": 2, "5": 1},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit returned %d: %s", rec.Code, rec.Body.String())
	}
	var sub struct {
		Score      int              `json:"score"`
		Total      int              `json:"totalQuestions"`
		Percentage int              `json:"percentage"`
		Details    []map[string]any `json:"detailedResults"`
	}
	decode(t, rec, &sub)
	if sub.Score != 5 || sub.Total != 5 || sub.Percentage != 100 {
		t.Fatalf("unexpected submission result: %+v", sub)
	}
	if len(sub.Details) != 5 || sub.Details[0]["isCorrect"] != true {
		t.Fatalf("unexpected detailed results: %+v", sub.Details)
	}

	rec = do(t, h, http.MethodPost, "/api/tests/99/submit", token, map[string]any{"answers": map[string]int{}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("submit unknown test: expected 404, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/results", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("results returned %d", rec.Code)
	}
	var results []map[string]any
	decode(t, rec, &results)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r["percentage"] != float64(100) || r["testTitle"] != "SSC CGL General Knowledge" {
		t.Fatalf("unexpected result summary: %+v", r)
	}
	if _, ok := r["detailedResults"]; ok {
		t.Fatal("result summary must omit the detailed breakdown")
	}
	if r["completedAt"] == nil {
		t.Fatal("result summary missing completedAt")
	}
}

func TestPartialAndMessySubmissionScores(t *testing.T) {
	h := newTestRouter()
	token := signup(t, h, "Alice", "a@x.com", "pw123")

	// one correct, one wrong, one out-of-range, one wrong type, one missing
	rec := do(t, h, http.MethodPost, "/api/tests/1/submit", token, map[string]any{
		"answers": map[string]any{"1": 0, "2": 1, "3": 99, "4": "2"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit returned %d: %s", rec.Code, rec.Body.String())
	}
	var sub struct {
		Score      int `json:"score"`
		Total      int `json:"totalQuestions"`
		Percentage int `json:"percentage"`
	}
	decode(t, rec, &sub)
	if sub.Score != 1 || sub.Total != 5 || sub.Percentage != 20 {
		t.Fatalf("unexpected score: %+v", sub)
	}
}

func TestResultsAreIsolatedPerUser(t *testing.T) {
	h := newTestRouter()
	alice := signup(t, h, "Alice", "a@x.com", "pw123")
	bob := signup(t, h, "Bob", "b@x.com", "pw456")

	rec := do(t, h, http.MethodPost, "/api/tests/1/submit", alice, map[string]any{
		"answers": map[string]int{"1": 0},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit returned %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/results", bob, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("results returned %d", rec.Code)
	}
	var results []map[string]any
	decode(t, rec, &results)
	if len(results) != 0 {
		t.Fatalf("bob sees alice's results: %+v", results)
	}
	if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
		t.Fatalf("expected JSON array body, got %q", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	h := newTestRouter()
	rec := do(t, h, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz returned %d", rec.Code)
	}
}
