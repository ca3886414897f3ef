package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/skyrail/skyrail/pkg/dataaggregator"
	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/nlquery"
	"github.com/skyrail/skyrail/pkg/sdf"
	"github.com/skyrail/skyrail/pkg/util"
)

var nlQueryClient *nlquery.Client

func PlannerRouter(router fiber.Router) {
	if endpoint := util.GetEnvironmentVariable("SKYRAIL_NLQUERY_ENDPOINT", ""); endpoint != "" {
		nlQueryClient = &nlquery.Client{Endpoint: endpoint}
	}

	router.Get("/:origin/:destination", getPlanBetweenCities)
	router.Post("/query", postNaturalLanguagePlan)
}

func getPlanBetweenCities(c *fiber.Ctx) error {
	origin := c.Params("origin")
	destination := c.Params("destination")

	hub := c.Query("hub")
	preference := c.Query("preference")
	dateString := c.Query("date")

	var date time.Time
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

	return lookupAndRenderPlan(c, query.RoutePlan{
		Origin:      origin,
		Destination: destination,
		Hub:         hub,
		Date:        date,
		Preference:  preference,
	})
}

func postNaturalLanguagePlan(c *fiber.Ctx) error {
	if nlQueryClient == nil {
		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"error": "Natural language queries are not configured",
		})
	}

	var requestBody struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&requestBody); err != nil || requestBody.Query == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Body should contain a query string",
		})
	}

	travelQuery, err := nlQueryClient.Parse(c.Context(), requestBody.Query)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	date, err := travelQuery.DateValue()
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Understanding service returned an unparseable date",
		})
	}

	return lookupAndRenderPlan(c, query.RoutePlan{
		Origin:      travelQuery.Origin,
		Destination: travelQuery.Destination,
		Hub:         travelQuery.Hub,
		Date:        date,
		Preference:  travelQuery.Preference,
	})
}

func lookupAndRenderPlan(c *fiber.Ctx, planQuery query.RoutePlan) error {
	rankedResult, err := dataaggregator.Lookup[*sdf.RankedResult](planQuery)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resultReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, rankedResult)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce RankedResult",
		})
	}

	return c.JSON(resultReduced)
}
