// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package bridge

import "cosmossdk.io/math"

// SecondsPerDay fixes the calendar window used by the daily limit. The day
// identifier is floor(timestamp / 86400), not a rolling 24h window, so up to
// roughly twice the nominal limit can cross in a window straddling midnight.
// That is accepted behavior, not a defect.
const SecondsPerDay = 86400

// Chain is the per-destination (and per-source) bridging configuration,
// registered by the authority before any transfer can target that chain.
type Chain struct {
	Allowlisted bool   `json:"allowlisted"`
	Gateway     []byte `json:"gateway"` // remote peer gateway, 32 bytes

	FeeBps     int64    `json:"fee_bps"`
	PerSendCap math.Int `json:"per_send_cap"`

	// Rate limiting: smoothing token bucket plus a hard calendar-day ceiling.
	BucketCapacity      math.Int `json:"bucket_capacity"`
	RefillRatePerSecond math.Int `json:"refill_rate_per_second"`
	DailyLimit          math.Int `json:"daily_limit"`
}

// RateLimitBucket is the mutable throttle state for one direction of one
// chain. Outbound and inbound buckets are fully independent.
type RateLimitBucket struct {
	TokensAvailable     math.Int `json:"tokens_available"`
	LastRefillTimestamp int64    `json:"last_refill_timestamp"`
	DailySent           math.Int `json:"daily_sent"`
	DayId               int64    `json:"day_id"`
}

// DayId computes the calendar day identifier for a unix timestamp.
func DayId(timestamp int64) int64 {
	return timestamp / SecondsPerDay
}
