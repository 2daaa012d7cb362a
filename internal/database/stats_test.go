package database

import (
	"testing"
	"wheelmarket/internal/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStatsFilter(t *testing.T) {
	t.Run("base filter pins kind and active flag", func(t *testing.T) {
		f := statsFilter(model.KindBike, nil)
		assert.Equal(t, bson.M{"kind": model.KindBike, "is_active": true}, f)
	})

	t.Run("per-figure narrowing", func(t *testing.T) {
		f := statsFilter(model.KindBike, bson.M{"availability": model.AvailabilityAvailable})
		assert.Equal(t, model.AvailabilityAvailable, f["availability"])
		assert.Equal(t, true, f["is_active"])

		f = statsFilter(model.KindBike, bson.M{"availability": model.AvailabilitySold})
		assert.Equal(t, model.AvailabilitySold, f["availability"])

		f = statsFilter(model.KindScooter, bson.M{"engine_type": model.EngineTypePetrol})
		assert.Equal(t, model.EngineTypePetrol, f["engine_type"])
		assert.Equal(t, model.KindScooter, f["kind"])

		f = statsFilter(model.KindScooter, bson.M{"engine_type": model.EngineTypeElectric})
		assert.Equal(t, model.EngineTypeElectric, f["engine_type"])
	})

	t.Run("narrowing never drops the active flag", func(t *testing.T) {
		for _, extra := range []bson.M{
			nil,
			{"availability": model.AvailabilityAvailable},
			{"availability": model.AvailabilitySold},
			{"engine_type": model.EngineTypePetrol},
			{"engine_type": model.EngineTypeElectric},
		} {
			f := statsFilter(model.KindBike, extra)
			assert.Equal(t, true, f["is_active"])
			assert.Equal(t, model.KindBike, f["kind"])
		}
	})
}

func TestStatsPricePipeline(t *testing.T) {
	pipeline := statsPricePipeline(model.KindBike)
	assert.Len(t, pipeline, 2)

	t.Run("price aggregates restricted to available listings", func(t *testing.T) {
		match, ok := pipeline[0]["$match"].(bson.M)
		assert.True(t, ok)
		assert.Equal(t, model.AvailabilityAvailable, match["availability"])
		assert.Equal(t, true, match["is_active"])
		assert.Equal(t, model.KindBike, match["kind"])
	})

	t.Run("groups avg, min and max of present price", func(t *testing.T) {
		group, ok := pipeline[1]["$group"].(bson.M)
		assert.True(t, ok)
		assert.Equal(t, bson.M{"$avg": "$present_price"}, group["avg"])
		assert.Equal(t, bson.M{"$min": "$present_price"}, group["min"])
		assert.Equal(t, bson.M{"$max": "$present_price"}, group["max"])
	})
}
