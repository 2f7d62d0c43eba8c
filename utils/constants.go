package utils

import "time"

// ServiceCachePrefix is the Redis key prefix for cached service documents.
const ServiceCachePrefix = "servicecache:"

// ServiceCacheTTL is how long a cached service document stays valid.
const ServiceCacheTTL = 5 * time.Minute
