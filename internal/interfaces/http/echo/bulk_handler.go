package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/greenfieldhq/provisioning/internal/application/provisioning"
	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
	"github.com/greenfieldhq/provisioning/internal/infrastructure/upload"
)

const batchIDHeader = "X-Batch-ID"

// BulkHandler serves batch provisioning, from a JSON body or an uploaded
// roster file. The use case may be nil when the backing store could not be
// initialized; every request then fails top-level with 500.
type BulkHandler struct {
	useCase app.BulkProvisionUsers
}

func NewBulkHandler(useCase app.BulkProvisionUsers) *BulkHandler {
	return &BulkHandler{useCase: useCase}
}

type bulkProvisionRequest struct {
	Role  string          `json:"role"`
	Users []domain.RawRow `json:"users"`
}

type bulkSummary struct {
	Total        int `json:"total"`
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
}

type bulkSuccessEntry struct {
	Success bool           `json:"success"`
	User    map[string]any `json:"user"`
}

type bulkFailureEntry struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	User    domain.RawRow `json:"user"`
}

type bulkDetails struct {
	Successes []bulkSuccessEntry `json:"successes"`
	Failures  []bulkFailureEntry `json:"failures"`
}

type bulkProvisionResponse struct {
	Success bool        `json:"success"`
	Summary bulkSummary `json:"summary"`
	Details bulkDetails `json:"details"`
}

func (h *BulkHandler) BulkProvision(c echo.Context) error {
	if h.useCase == nil {
		return storeNotInitialized(c)
	}

	var req bulkProvisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "Invalid data format. Expected 'users' array.",
		}})
	}
	if req.Users == nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "Invalid data format. Expected 'users' array.",
		}})
	}

	return h.runBatch(c, req.Role, req.Users)
}

// BulkProvisionFile accepts a multipart roster (.csv or .xlsx) plus an
// optional "role" form field applied to rows without one.
func (h *BulkHandler) BulkProvisionFile(c echo.Context) error {
	if h.useCase == nil {
		return storeNotInitialized(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "missing roster file",
		}})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "unreadable roster file",
		}})
	}
	defer file.Close()

	rows, err := upload.ParseRoster(fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedFormat) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "unsupported_format",
				Message: "roster must be a .csv or .xlsx file",
			}})
		}
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: err.Error(),
		}})
	}

	return h.runBatch(c, c.FormValue("role"), rows)
}

func (h *BulkHandler) runBatch(c echo.Context, role string, rows []domain.RawRow) error {
	out, err := h.useCase.Execute(c.Request().Context(), app.BulkProvisionInput{
		Role: role,
		Rows: rows,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "bulk provisioning failed",
		}})
	}

	c.Response().Header().Set(batchIDHeader, out.BatchID)
	return c.JSON(http.StatusOK, toBulkResponse(out.Result))
}

func toBulkResponse(result domain.BatchResult) bulkProvisionResponse {
	resp := bulkProvisionResponse{
		Success: true,
		Summary: bulkSummary{
			Total:        result.Summary.Total,
			SuccessCount: result.Summary.SuccessCount,
			FailureCount: result.Summary.FailureCount,
		},
		Details: bulkDetails{
			Successes: make([]bulkSuccessEntry, 0, len(result.Successes)),
			Failures:  make([]bulkFailureEntry, 0, len(result.Failures)),
		},
	}

	for _, outcome := range result.Successes {
		user := make(map[string]any, len(outcome.Row)+3)
		for key, value := range outcome.Row {
			user[key] = value
		}
		user["uid"] = outcome.User.UID
		user["generatedPassword"] = outcome.User.GeneratedPassword
		user["generatedEmail"] = outcome.User.Email
		resp.Details.Successes = append(resp.Details.Successes, bulkSuccessEntry{
			Success: true,
			User:    user,
		})
	}

	for _, outcome := range result.Failures {
		resp.Details.Failures = append(resp.Details.Failures, bulkFailureEntry{
			Success: false,
			Error:   outcome.Reason,
			User:    outcome.Row,
		})
	}

	return resp
}

func storeNotInitialized(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
		Code:    "store_not_initialized",
		Message: "identity/document store is not initialized",
	}})
}
