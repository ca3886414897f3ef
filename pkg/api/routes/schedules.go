package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/skyrail/skyrail/pkg/dataaggregator"
	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/sdf"
)

func SchedulesRouter(router fiber.Router) {
	router.Get("/:origin/:destination", getSchedulesBetweenCities)
}

func getSchedulesBetweenCities(c *fiber.Ctx) error {
	origin := c.Params("origin")
	destination := c.Params("destination")

	mode := sdf.TransportMode(c.Query("mode", string(sdf.TransportModeTrain)))
	if mode != sdf.TransportModeTrain && mode != sdf.TransportModeFlight {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter mode should be Train or Flight",
		})
	}

	var date time.Time
	dateString := c.Query("date")
	if dateString == "" {
		date = time.Now()
	} else {
		var err error
		date, err = time.Parse("2006-01-02", dateString)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter date should be a YYYY-MM-DD date",
			})
		}
	}

	schedules, err := dataaggregator.Lookup[[]sdf.ScheduleRecord](query.Schedule{
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Mode:        mode,
	})

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	schedulesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, schedules)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce ScheduleRecords",
		})
	}

	return c.JSON(schedulesReduced)
}
