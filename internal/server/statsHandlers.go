package server

import (
	"encoding/json"
	"github.com/go-redis/redis/v9"
	"net/http"
	"wheelmarket/internal/database"
	"wheelmarket/internal/model"
)

func (s Server) listingStats(kind model.VehicleKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheKey := "stats-" + string(kind)
		if s.Redis != nil {
			cached, err := s.Redis.Get(r.Context(), cacheKey).Result()
			if err == nil {
				var st database.ListingStats
				if err = json.Unmarshal([]byte(cached), &st); err == nil {
					s.Logger.Debugf("listingStats: Cache found, key: %s", cacheKey)
					s.writeData(w, http.StatusOK, "statistics retrieved", st)
					return
				}
				s.Logger.Errorf("listingStats: Error unmarshalling cache, key: %s, err: %v", cacheKey, err)
			} else if err != redis.Nil {
				s.Logger.Errorf("listingStats: Error getting Redis cache with key: %s, err: %v", cacheKey, err)
			}
		}

		st, err := s.DB.ListingStatsCompute(r.Context(), kind)
		if err != nil {
			s.Logger.Errorf("listingStats: Error computing Listing stats for kind: %s, err: %v", kind, err)
			s.writeServerError(w)
			return
		}

		if s.Redis != nil {
			if encoded, err := json.Marshal(st); err != nil {
				s.Logger.Errorf("listingStats: Error marshalling stats for cache, key: %s, err: %v", cacheKey, err)
			} else if err = s.Redis.Set(r.Context(), cacheKey, encoded, s.StatsCacheTTL).Err(); err != nil {
				s.Logger.Errorf("listingStats: Error setting Redis cache with key: %s, err: %v", cacheKey, err)
			}
		}
		s.writeData(w, http.StatusOK, "statistics retrieved", st)
	}
}
