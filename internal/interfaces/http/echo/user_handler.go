package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/greenfieldhq/provisioning/internal/application/provisioning"
	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

type UserHandler struct {
	createUser app.CreateUser
	listUsers  app.ListUsers
	listLimit  int
}

func NewUserHandler(createUser app.CreateUser, listUsers app.ListUsers, listLimit int) *UserHandler {
	return &UserHandler{createUser: createUser, listUsers: listUsers, listLimit: listLimit}
}

type createUserResponse struct {
	Success bool                 `json:"success"`
	Data    app.CreateUserOutput `json:"data"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	if h.createUser == nil {
		return storeNotInitialized(c)
	}

	var row domain.RawRow
	if err := c.Bind(&row); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	out, err := h.createUser.Execute(c.Request().Context(), app.CreateUserInput{Row: row})
	if err != nil {
		var validationErr *app.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "validation_failed",
				Message: validationErr.Reason,
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: err.Error(),
		}})
	}

	return c.JSON(http.StatusOK, createUserResponse{Success: true, Data: out})
}

type listUsersResponse struct {
	Users []map[string]any `json:"users"`
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	if h.listUsers == nil {
		return storeNotInitialized(c)
	}

	out, err := h.listUsers.Execute(c.Request().Context(), app.ListUsersInput{Limit: h.listLimit})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to fetch users",
		}})
	}

	resp := listUsersResponse{Users: make([]map[string]any, 0, len(out.Users))}
	for _, user := range out.Users {
		entry := make(map[string]any, len(user.Fields)+1)
		for key, value := range user.Fields {
			entry[key] = value
		}
		entry["id"] = user.ID
		resp.Users = append(resp.Users, entry)
	}

	return c.JSON(http.StatusOK, resp)
}
