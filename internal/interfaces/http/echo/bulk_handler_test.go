package echo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	app "github.com/greenfieldhq/provisioning/internal/application/provisioning"
	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
	httpecho "github.com/greenfieldhq/provisioning/internal/interfaces/http/echo"
)

type fakeBulkUseCase struct {
	gotInput app.BulkProvisionInput
	output   app.BulkProvisionOutput
	err      error
}

func (f *fakeBulkUseCase) Execute(ctx context.Context, in app.BulkProvisionInput) (app.BulkProvisionOutput, error) {
	f.gotInput = in
	if f.err != nil {
		return app.BulkProvisionOutput{}, f.err
	}
	return f.output, nil
}

func newBulkServer(useCase app.BulkProvisionUsers) *echo.Echo {
	e := echo.New()
	users := httpecho.NewUserHandler(nil, nil, 100)
	httpecho.RegisterRoutes(e, users, httpecho.NewBulkHandler(useCase))
	return e
}

func sampleOutput() app.BulkProvisionOutput {
	successRow := domain.RawRow{"role": "student", "name": "Alice", "admissionNumber": "ADM001"}
	failureRow := domain.RawRow{"role": "teacher", "name": "NoID"}
	return app.BulkProvisionOutput{
		BatchID: "batch-1",
		Result: domain.BatchResult{
			Summary: domain.BatchSummary{Total: 2, SuccessCount: 1, FailureCount: 1},
			Successes: []domain.Outcome{domain.SuccessOutcome(domain.ProvisionedUser{
				UID:               "uid-1",
				Email:             "adm001@greenfield.edu",
				GeneratedPassword: "GRA@ADM001",
				Role:              domain.RoleStudent,
				Name:              "Alice",
			}, successRow)},
			Failures: []domain.Outcome{domain.FailureOutcome("Missing Employee ID", failureRow)},
		},
	}
}

func TestBulkProvisionResponseShape(t *testing.T) {
	t.Parallel()

	e := newBulkServer(&fakeBulkUseCase{output: sampleOutput()})

	body := []byte(`{"users":[{"role":"student","name":"Alice","admissionNumber":"ADM001"},{"role":"teacher","name":"NoID"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/bulk", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Batch-ID") != "batch-1" {
		t.Fatalf("expected batch id header, got %q", rec.Header().Get("X-Batch-ID"))
	}

	var got struct {
		Success bool `json:"success"`
		Summary struct {
			Total        int `json:"total"`
			SuccessCount int `json:"successCount"`
			FailureCount int `json:"failureCount"`
		} `json:"summary"`
		Details struct {
			Successes []struct {
				Success bool           `json:"success"`
				User    map[string]any `json:"user"`
			} `json:"successes"`
			Failures []struct {
				Success bool           `json:"success"`
				Error   string         `json:"error"`
				User    map[string]any `json:"user"`
			} `json:"failures"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}

	if !got.Success || got.Summary.Total != 2 || got.Summary.SuccessCount != 1 || got.Summary.FailureCount != 1 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}

	user := got.Details.Successes[0].User
	if user["uid"] != "uid-1" || user["generatedPassword"] != "GRA@ADM001" || user["generatedEmail"] != "adm001@greenfield.edu" {
		t.Fatalf("unexpected success user: %#v", user)
	}
	if user["admissionNumber"] != "ADM001" {
		t.Fatalf("original fields must be echoed, got %#v", user)
	}

	failure := got.Details.Failures[0]
	if failure.Success || failure.Error != "Missing Employee ID" || failure.User["name"] != "NoID" {
		t.Fatalf("unexpected failure entry: %+v", failure)
	}
}

func TestBulkProvisionRejectsMissingUsersArray(t *testing.T) {
	t.Parallel()

	e := newBulkServer(&fakeBulkUseCase{})

	for _, body := range []string{`{}`, `{"users":`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/bulk", bytes.NewReader([]byte(body)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestBulkProvisionStoreNotInitialized(t *testing.T) {
	t.Parallel()

	e := newBulkServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/bulk", bytes.NewReader([]byte(`{"users":[]}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestBulkProvisionFileUpload(t *testing.T) {
	t.Parallel()

	useCase := &fakeBulkUseCase{output: app.BulkProvisionOutput{BatchID: "batch-2"}}
	e := newBulkServer(useCase)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "students.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("name,admissionNumber\nAlice,ADM001\n")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.WriteField("role", "student"); err != nil {
		t.Fatalf("write role field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/bulk/file", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if useCase.gotInput.Role != "student" {
		t.Fatalf("expected role forwarded, got %q", useCase.gotInput.Role)
	}
	if len(useCase.gotInput.Rows) != 1 || useCase.gotInput.Rows[0]["admissionNumber"] != "ADM001" {
		t.Fatalf("unexpected parsed rows: %#v", useCase.gotInput.Rows)
	}
}

func TestBulkProvisionFileUnsupportedFormat(t *testing.T) {
	t.Parallel()

	e := newBulkServer(&fakeBulkUseCase{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "roster.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("not a roster")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/bulk/file", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
