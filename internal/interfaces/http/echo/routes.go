package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, users *UserHandler, bulk *BulkHandler, guard ...e.MiddlewareFunc) {
	group := server.Group("/api/v1", guard...)
	group.POST("/users", users.CreateUser)
	group.GET("/users", users.ListUsers)
	group.POST("/users/bulk", bulk.BulkProvision)
	group.POST("/users/bulk/file", bulk.BulkProvisionFile)
}
