// Package cache keeps computed analytics views in a freecache instance, keyed by user and day.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// Views cached by the analytics service.
const (
	ViewDashboard  = "dashboard"
	ViewMonitoring = "monitoring"
)

// AnalyticsCache stores JSON encoded analytics results with a TTL.
// Keys embed the calendar day so results never outlive the day they were computed for.
type AnalyticsCache struct {
	cache     *freecache.Cache
	ttlSecond int
}

func NewAnalyticsCache(sizeMB int, ttl time.Duration) *AnalyticsCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &AnalyticsCache{
		cache:     freecache.NewCache(sizeMB * megabyte),
		ttlSecond: int(ttl / time.Second),
	}
}

func DashboardKey(userID, date string) string {
	return fmt.Sprintf("%s::%s::%s", ViewDashboard, userID, date)
}

func MonitoringKey(date string) string {
	return fmt.Sprintf("%s::%s", ViewMonitoring, date)
}

// Get decodes the cached value of key into v and reports whether it was found.
func (c *AnalyticsCache) Get(key string, v any) bool {
	data, err := c.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Errorf("analytics cache: unmarshal %s: %s", key, err)
		return false
	}
	return true
}

func (c *AnalyticsCache) Set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("analytics cache: marshal %s: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), data, c.ttlSecond); err != nil {
		log.Errorf("analytics cache: set %s: %s", key, err)
	}
}

// InvalidateUser drops the user's dashboard and the admin monitoring view of date.
func (c *AnalyticsCache) InvalidateUser(userID, date string) {
	c.cache.Del([]byte(DashboardKey(userID, date)))
	c.cache.Del([]byte(MonitoringKey(date)))
	log.Tracef("analytics cache: invalidated %s on %s", userID, date)
}

// Clear drops every cached view, e.g. after a session is rescheduled.
func (c *AnalyticsCache) Clear() {
	c.cache.Clear()
}
