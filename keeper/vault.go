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

package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"usdr.arcline.xyz/types/vault"
)

// CurrentRate evaluates the deposit rate curve at the vault's current size.
// The rate steps down by RateDecrementPerThreshold for every full
// DecrementThreshold of total deposits, floored at MinimumRate.
func (k *Keeper) CurrentRate(ctx context.Context) int64 {
	config := k.GetVaultConfig(ctx)
	rate := math.NewInt(config.BaseInterestRate)

	if !config.DecrementThreshold.IsNil() && config.DecrementThreshold.IsPositive() && config.RateDecrementPerThreshold > 0 {
		steps := k.GetTotalDeposited(ctx).Quo(config.DecrementThreshold)
		rate = rate.Sub(steps.MulRaw(config.RateDecrementPerThreshold))
	}

	minimum := math.NewInt(config.MinimumRate)
	if rate.LT(minimum) {
		rate = minimum
	}

	return rate.Int64()
}

// EstimateInterest computes the next accrual without applying it: the gross
// interest for one period, the circuit-breaker clamp, and the protocol fee
// slice taken from the clamped amount.
func (k *Keeper) EstimateInterest(ctx context.Context) (interest math.Int, fee math.Int, clamped bool) {
	config := k.GetVaultConfig(ctx)
	totalSupply := k.GetTotalSupply(ctx)

	interest = totalSupply.MulRaw(k.CurrentRate(ctx)).QuoRaw(BasisPointsDivisor)

	if config.DailyAccrualCapBps > 0 {
		cap := totalSupply.MulRaw(config.DailyAccrualCapBps).QuoRaw(BasisPointsDivisor)
		if interest.GT(cap) {
			interest = cap
			clamped = true
		}
	}

	fee = interest.MulRaw(config.FeeBps).QuoRaw(BasisPointsDivisor)
	return
}

// CheckUpkeep reports whether an accrual period has elapsed since the last
// recorded accrual. Any caller can act on it.
func (k *Keeper) CheckUpkeep(ctx context.Context) bool {
	config := k.GetVaultConfig(ctx)
	if config.AccrualPeriod <= 0 {
		return false
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	return now >= k.GetLastAccrualTime(ctx)+config.AccrualPeriod
}

// AccrueInterest applies one period of interest when due: the fee slice is
// minted to the fee recipient and the remainder distributed to all holders as
// a positive rebase. Calling again inside the same period is a no-op, so the
// tick is idempotent regardless of who drives it.
func (k *Keeper) AccrueInterest(ctx context.Context) (bool, math.Int, error) {
	if !k.CheckUpkeep(ctx) {
		return false, math.ZeroInt(), nil
	}

	interest, fee, clamped := k.EstimateInterest(ctx)

	if fee.IsPositive() {
		config := k.GetVaultConfig(ctx)
		recipient, err := k.address.StringToBytes(config.FeeRecipient)
		if err != nil {
			return false, math.ZeroInt(), errors.Wrapf(vault.ErrInvalidConfig, "unable to decode fee recipient %s", config.FeeRecipient)
		}
		if err := k.Mint(ctx, recipient, fee, nil); err != nil {
			return false, math.ZeroInt(), errors.Wrap(err, "unable to mint accrual fee")
		}
	}

	remainder := interest.Sub(fee)
	if remainder.IsPositive() {
		if err := k.Rebase(ctx, remainder, true); err != nil {
			return false, math.ZeroInt(), errors.Wrap(err, "unable to apply accrual rebase")
		}
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	if err := k.SetLastAccrualTime(ctx, now); err != nil {
		return false, math.ZeroInt(), err
	}

	err := k.event.EventManager(ctx).EmitKV(
		ctx,
		vault.EventTypeAccrual,
		event.Attribute{Key: vault.AttributeKeyInterest, Value: interest.String()},
		event.Attribute{Key: vault.AttributeKeyFee, Value: fee.String()},
		event.Attribute{Key: vault.AttributeKeyClamped, Value: strconv.FormatBool(clamped)},
	)
	if err != nil {
		return false, math.ZeroInt(), err
	}

	return true, interest, nil
}
