/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent = "kyutd/0.4.0 (+https://github.com/mikeb26/kyutd)"
	// default TTL for cached roster fetches, in hours
	DefaultCacheMaxAgeHours = 24
	DefaultAffiliationWidth = 6
)
