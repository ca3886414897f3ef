package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skyrail/skyrail/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PlannerRouter(group.Group("/planner"))
	routes.SchedulesRouter(group.Group("/schedules"))

	return webApp.Listen(listen)
}
