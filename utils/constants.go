// File: utils/constants.go
package utils

import "time"

// SubmissionLockPrefix is the prefix used for Redis submission lock keys.
const SubmissionLockPrefix = "leadlock:"

// AdminTokenTTL is the lifetime of back-office session tokens.
const AdminTokenTTL = 12 * time.Hour
