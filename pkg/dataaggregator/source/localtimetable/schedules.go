package localtimetable

import (
	"context"

	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/database"
	"github.com/skyrail/skyrail/pkg/sdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s Source) ScheduleQuery(q query.Schedule) ([]sdf.ScheduleRecord, error) {
	schedulesCollection := database.GetCollection("schedules")

	dayStart := q.Date.Format("2006-01-02T00:00:00Z")
	dayEnd := q.Date.Format("2006-01-02T23:59:59Z")

	filter := bson.M{
		"originref":      q.Origin,
		"destinationref": q.Destination,
		"mode":           q.Mode,
		"departuretime":  bson.M{"$gte": dayStart, "$lte": dayEnd},
	}

	opts := options.Find().SetSort(bson.D{bson.E{Key: "departuretime", Value: 1}})

	cursor, err := schedulesCollection.Find(context.Background(), filter, opts)
	if err != nil {
		return nil, err
	}

	var schedules []sdf.ScheduleRecord

	for cursor.Next(context.TODO()) {
		var schedule sdf.ScheduleRecord
		if err := cursor.Decode(&schedule); err != nil {
			continue
		}

		schedules = append(schedules, schedule)
	}

	return schedules, nil
}
