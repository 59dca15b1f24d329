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

package vault

import (
	"time"

	"cosmossdk.io/math"
)

// Config is the vault's protocol configuration. It is mutated only through
// authority-gated messages, never by user-facing calls.
type Config struct {
	// Interest rate curve, all rates in basis points. The effective deposit
	// rate decreases by RateDecrementPerThreshold for every full
	// DecrementThreshold of total deposits, floored at MinimumRate.
	BaseInterestRate          int64    `json:"base_interest_rate"`
	RateDecrementPerThreshold int64    `json:"rate_decrement_per_threshold"`
	DecrementThreshold        math.Int `json:"decrement_threshold"`
	MinimumRate               int64    `json:"minimum_rate"`

	// Deposit limits.
	MinDeposit math.Int `json:"min_deposit"`
	MaxPerUser math.Int `json:"max_per_user"`
	MaxTotal   math.Int `json:"max_total"`

	// Protocol fee skimmed from each accrual.
	FeeBps       int64  `json:"fee_bps"`
	FeeRecipient string `json:"fee_recipient"`

	// Accrual timing and the per-period circuit breaker.
	AccrualPeriod      int64 `json:"accrual_period"`
	DailyAccrualCapBps int64 `json:"daily_accrual_cap_bps"`

	AllowlistEnabled bool `json:"allowlist_enabled"`
	DepositsPaused   bool `json:"deposits_paused"`
	RedeemsPaused    bool `json:"redeems_paused"`
}

// UserInfo tracks a depositor's recorded principal. Created on first deposit
// and zeroed, never deleted, on full withdrawal.
type UserInfo struct {
	DepositedAmount math.Int  `json:"deposited_amount"`
	LastDepositTime time.Time `json:"last_deposit_time"`
}

// Stats is the aggregate view reported by the vault stats query.
type Stats struct {
	TotalDeposited  math.Int `json:"total_deposited"`
	TotalShares     math.Int `json:"total_shares"`
	TotalSupply     math.Int `json:"total_supply"`
	CurrentRate     int64    `json:"current_rate"`
	LastAccrualTime int64    `json:"last_accrual_time"`
	DepositsPaused  bool     `json:"deposits_paused"`
	RedeemsPaused   bool     `json:"redeems_paused"`
}
