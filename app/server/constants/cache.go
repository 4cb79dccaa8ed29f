package constants

import "time"

const (
	CacheKeyContactList = "contacts:list"
)

const (
	CacheExpireContactList = 1 * time.Minute
)
