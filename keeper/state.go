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

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
)

func (k *Keeper) GetTotalShares(ctx context.Context) math.Int {
	total, err := k.TotalShares.Get(ctx)
	if err != nil {
		return math.ZeroInt()
	}
	return total
}

func (k *Keeper) SetTotalShares(ctx context.Context, total math.Int) error {
	return k.TotalShares.Set(ctx, total)
}

func (k *Keeper) GetTotalSupply(ctx context.Context) math.Int {
	total, err := k.TotalSupply.Get(ctx)
	if err != nil {
		return math.ZeroInt()
	}
	return total
}

func (k *Keeper) SetTotalSupply(ctx context.Context, total math.Int) error {
	return k.TotalSupply.Set(ctx, total)
}

func (k *Keeper) GetShares(ctx context.Context, account []byte) math.Int {
	shares, err := k.Shares.Get(ctx, account)
	if err != nil {
		return math.ZeroInt()
	}
	return shares
}

func (k *Keeper) SetShares(ctx context.Context, account []byte, shares math.Int) error {
	return k.Shares.Set(ctx, account, shares)
}

// GetRate returns the interest rate, in basis points, recorded against an
// account at its last balance-changing interaction.
func (k *Keeper) GetRate(ctx context.Context, account []byte) int64 {
	rate, err := k.Rates.Get(ctx, account)
	if err != nil {
		return 0
	}
	return rate
}

func (k *Keeper) SetRate(ctx context.Context, account []byte, rate int64) error {
	return k.Rates.Set(ctx, account, rate)
}

// HasRate reports whether a rate was ever recorded against the account. The
// record survives full withdrawals, so this is not the same as holding shares.
func (k *Keeper) HasRate(ctx context.Context, account []byte) bool {
	has, err := k.Rates.Has(ctx, account)
	return err == nil && has
}

func (k *Keeper) GetAllowance(ctx context.Context, owner, spender []byte) math.Int {
	allowance, err := k.Allowances.Get(ctx, collections.Join(owner, spender))
	if err != nil {
		return math.ZeroInt()
	}
	return allowance
}

func (k *Keeper) SetAllowance(ctx context.Context, owner, spender []byte, amount math.Int) error {
	return k.Allowances.Set(ctx, collections.Join(owner, spender), amount)
}

// IterateShares walks every share-holding account. Stops when cb returns true.
func (k *Keeper) IterateShares(ctx context.Context, cb func(account []byte, shares math.Int) bool) error {
	return k.Shares.Walk(ctx, nil, func(account []byte, shares math.Int) (bool, error) {
		return cb(account, shares), nil
	})
}
