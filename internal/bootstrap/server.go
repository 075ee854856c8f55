package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	app "github.com/greenfieldhq/provisioning/internal/application/provisioning"
	"github.com/greenfieldhq/provisioning/internal/config"
	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
	httpecho "github.com/greenfieldhq/provisioning/internal/interfaces/http/echo"
)

// Dependencies carries the wired store adapters. Identities/Profiles may be
// nil when the backing store is unconfigured; the handlers then answer 500
// per request instead of failing startup, matching the dashboard's behavior.
type Dependencies struct {
	Config     config.Config
	Log        *logrus.Logger
	Identities domain.IdentityStore
	Profiles   domain.ProfileStore
	Verifier   domain.TokenVerifier
}

func NewHTTPServer(deps Dependencies) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(deps.Config.BodyLimit))

	var (
		bulkUseCase   app.BulkProvisionUsers
		createUseCase app.CreateUser
		listUseCase   app.ListUsers
	)
	if deps.Identities != nil && deps.Profiles != nil {
		policy := domain.CredentialPolicy{
			SchoolCode:  deps.Config.SchoolCode,
			EmailDomain: deps.Config.EmailDomain,
		}
		provisioner := app.NewRecordProvisioner(deps.Identities, deps.Profiles, deps.Config.SchoolCode, deps.Config.StoreCallTimeout)
		bulkUseCase = app.NewBulkProvisionUsers(provisioner, policy, deps.Log)
		createUseCase = app.NewCreateUser(provisioner, policy)
		listUseCase = app.NewListUsers(deps.Profiles)
	}

	userHandler := httpecho.NewUserHandler(createUseCase, listUseCase, deps.Config.UserListLimit)
	bulkHandler := httpecho.NewBulkHandler(bulkUseCase)

	var guard []echo.MiddlewareFunc
	if deps.Verifier != nil {
		guard = append(guard, httpecho.AdminGuard(deps.Verifier))
	}
	httpecho.RegisterRoutes(server, userHandler, bulkHandler, guard...)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
