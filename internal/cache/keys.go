package cache

import "strings"

const (
	GlobalKeyPrefix = "assessment"

	ServiceStats     = "stats"
	ServiceRateLimit = "ratelimit"
	ObjectCohort     = "cohort"
	ObjectClient     = "client"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// CohortStatsKey is the key under which a cohort's aggregate statistics are cached.
func CohortStatsKey(cohort string) string {
	return GenerateCacheKey(ServiceStats, ObjectCohort, cohort)
}

// RateLimitKey is the fixed-window counter key for a client identifier.
func RateLimitKey(clientID string) string {
	return GenerateCacheKey(ServiceRateLimit, ObjectClient, clientID)
}
