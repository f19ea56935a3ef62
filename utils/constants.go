package utils

import "time"

// DayCachePrefix is the prefix for cached per-date appointment snapshots.
const DayCachePrefix = "appointments:day:"

// DayCacheTTL bounds how stale a cached day snapshot can get; writes also
// delete the key eagerly.
const DayCacheTTL = 30 * time.Second

// ReminderLeadTime is how long before a booked slot the reminder fires.
const ReminderLeadTime = 30 * time.Minute
