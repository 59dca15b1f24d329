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
	"bytes"
	"context"
	"fmt"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"usdr.arcline.xyz/types"
)

// BasisPointsDivisor scales all basis-point quantities in this module.
const BasisPointsDivisor = 10_000

// BalanceOf returns an account's rebasing balance, derived from its share of
// the total supply. Balances are never stored directly.
func (k *Keeper) BalanceOf(ctx context.Context, account []byte) math.Int {
	totalShares := k.GetTotalShares(ctx)
	if totalShares.IsZero() {
		return math.ZeroInt()
	}

	shares := k.GetShares(ctx, account)
	return shares.Mul(k.GetTotalSupply(ctx)).Quo(totalShares)
}

// SharesForAmount converts a token amount into shares at the current ratio,
// rounding down. During bootstrap the ratio is 1:1.
func (k *Keeper) SharesForAmount(ctx context.Context, amount math.Int) math.Int {
	totalShares := k.GetTotalShares(ctx)
	totalSupply := k.GetTotalSupply(ctx)
	if totalShares.IsZero() || totalSupply.IsZero() {
		return amount
	}

	return amount.Mul(totalShares).Quo(totalSupply)
}

// Mint credits an account with new tokens, creating shares at the current
// ratio. An optional rate is recorded against the account for reporting.
func (k *Keeper) Mint(ctx context.Context, account []byte, amount math.Int, rate *int64) error {
	if len(account) == 0 {
		return types.ErrZeroAddress
	}
	if amount.IsNil() || !amount.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "mint amount must be positive")
	}

	shares := k.SharesForAmount(ctx, amount)
	if shares.IsZero() {
		return errors.Wrap(types.ErrInvalidAmount, "mint amount rounds to zero shares")
	}

	newTotalShares, err := k.GetTotalShares(ctx).SafeAdd(shares)
	if err != nil {
		return errors.Wrap(err, "unable to increase total shares")
	}
	newTotalSupply, err := k.GetTotalSupply(ctx).SafeAdd(amount)
	if err != nil {
		return errors.Wrap(err, "unable to increase total supply")
	}

	if err := k.SetTotalShares(ctx, newTotalShares); err != nil {
		return err
	}
	if err := k.SetTotalSupply(ctx, newTotalSupply); err != nil {
		return err
	}
	if err := k.SetShares(ctx, account, k.GetShares(ctx, account).Add(shares)); err != nil {
		return err
	}

	if rate != nil {
		if err := k.SetRate(ctx, account, *rate); err != nil {
			return err
		}
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeMint,
		event.Attribute{Key: types.AttributeKeyAccount, Value: k.encodeAddress(account)},
		event.Attribute{Key: types.AttributeKeyAmount, Value: amount.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	)
}

// Burn removes tokens from an account. Burning the full balance also removes
// the residual shares that flooring would otherwise strand.
func (k *Keeper) Burn(ctx context.Context, account []byte, amount math.Int) error {
	if len(account) == 0 {
		return types.ErrZeroAddress
	}
	if amount.IsNil() || !amount.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "burn amount must be positive")
	}

	balance := k.BalanceOf(ctx, account)
	if balance.LT(amount) {
		return errors.Wrapf(types.ErrInsufficientBalance, "balance %s, burning %s", balance, amount)
	}

	accountShares := k.GetShares(ctx, account)
	shares := k.SharesForAmount(ctx, amount)
	if balance.Equal(amount) {
		shares = accountShares
	}

	newTotalShares, err := k.GetTotalShares(ctx).SafeSub(shares)
	if err != nil {
		return errors.Wrap(err, "unable to decrease total shares")
	}
	newTotalSupply, err := k.GetTotalSupply(ctx).SafeSub(amount)
	if err != nil {
		return errors.Wrap(err, "unable to decrease total supply")
	}
	newAccountShares, err := accountShares.SafeSub(shares)
	if err != nil {
		return errors.Wrap(err, "unable to decrease account shares")
	}

	if err := k.SetTotalShares(ctx, newTotalShares); err != nil {
		return err
	}
	if err := k.SetTotalSupply(ctx, newTotalSupply); err != nil {
		return err
	}
	if err := k.SetShares(ctx, account, newAccountShares); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeBurn,
		event.Attribute{Key: types.AttributeKeyAccount, Value: k.encodeAddress(account)},
		event.Attribute{Key: types.AttributeKeyAmount, Value: amount.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	)
}

// Transfer moves tokens between accounts by reassigning shares. A recipient
// with no recorded rate inherits the sender's; an existing rate record is
// never overwritten.
func (k *Keeper) Transfer(ctx context.Context, from, to []byte, amount math.Int) error {
	if len(from) == 0 || len(to) == 0 {
		return types.ErrZeroAddress
	}
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "transfer amount cannot be negative")
	}

	balance := k.BalanceOf(ctx, from)
	if balance.LT(amount) {
		return errors.Wrapf(types.ErrInsufficientBalance, "balance %s, sending %s", balance, amount)
	}

	// A self-transfer must not touch shares at all.
	if bytes.Equal(from, to) {
		return nil
	}

	fromShares := k.GetShares(ctx, from)
	toShares := k.GetShares(ctx, to)

	shares := k.SharesForAmount(ctx, amount)
	if balance.Equal(amount) {
		shares = fromShares
	}

	newFromShares, err := fromShares.SafeSub(shares)
	if err != nil {
		return errors.Wrap(err, "unable to decrease sender shares")
	}

	// Inheritance keys on the rate record, not on share balance: a rate can
	// outlive a full withdrawal, and a rateless sender must not write a
	// spurious zero-rate entry against the recipient.
	if !k.HasRate(ctx, to) && k.HasRate(ctx, from) {
		if err := k.SetRate(ctx, to, k.GetRate(ctx, from)); err != nil {
			return err
		}
	}

	if err := k.SetShares(ctx, from, newFromShares); err != nil {
		return err
	}
	if err := k.SetShares(ctx, to, toShares.Add(shares)); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeTransfer,
		event.Attribute{Key: types.AttributeKeyFrom, Value: k.encodeAddress(from)},
		event.Attribute{Key: types.AttributeKeyTo, Value: k.encodeAddress(to)},
		event.Attribute{Key: types.AttributeKeyAmount, Value: amount.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	)
}

// Approve sets a spender's allowance over an owner's balance, replacing any
// previous value.
func (k *Keeper) Approve(ctx context.Context, owner, spender []byte, amount math.Int) error {
	if len(owner) == 0 || len(spender) == 0 {
		return types.ErrZeroAddress
	}
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "allowance cannot be negative")
	}

	if err := k.SetAllowance(ctx, owner, spender, amount); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeApprove,
		event.Attribute{Key: types.AttributeKeyOwner, Value: k.encodeAddress(owner)},
		event.Attribute{Key: types.AttributeKeySpender, Value: k.encodeAddress(spender)},
		event.Attribute{Key: types.AttributeKeyAmount, Value: amount.String()},
	)
}

// TransferFrom moves tokens on behalf of an owner, consuming allowance before
// touching balances.
func (k *Keeper) TransferFrom(ctx context.Context, spender, owner, to []byte, amount math.Int) error {
	if len(spender) == 0 {
		return types.ErrZeroAddress
	}
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "transfer amount cannot be negative")
	}

	allowance := k.GetAllowance(ctx, owner, spender)
	if allowance.LT(amount) {
		return errors.Wrapf(types.ErrInsufficientAllowance, "allowance %s, spending %s", allowance, amount)
	}

	if err := k.SetAllowance(ctx, owner, spender, allowance.Sub(amount)); err != nil {
		return err
	}

	return k.Transfer(ctx, owner, to, amount)
}

// Rebase adjusts total supply without touching shares, scaling every balance
// proportionally. A negative rebase can never take the supply below zero.
func (k *Keeper) Rebase(ctx context.Context, amount math.Int, positive bool) error {
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "rebase amount cannot be negative")
	}
	if amount.IsZero() {
		return nil
	}

	totalSupply := k.GetTotalSupply(ctx)

	var newTotalSupply math.Int
	var err error
	if positive {
		newTotalSupply, err = totalSupply.SafeAdd(amount)
		if err != nil {
			return errors.Wrap(err, "unable to increase total supply")
		}
	} else {
		if totalSupply.LT(amount) {
			return errors.Wrapf(types.ErrInvalidAmount, "negative rebase %s exceeds supply %s", amount, totalSupply)
		}
		newTotalSupply = totalSupply.Sub(amount)
	}

	if err := k.SetTotalSupply(ctx, newTotalSupply); err != nil {
		return err
	}

	direction := "positive"
	if !positive {
		direction = "negative"
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeRebase,
		event.Attribute{Key: types.AttributeKeyDirection, Value: direction},
		event.Attribute{Key: types.AttributeKeyAmount, Value: amount.String()},
		event.Attribute{Key: types.AttributeKeySupply, Value: newTotalSupply.String()},
	)
}

// RebaseByPercentage applies a basis-point rebase relative to current supply.
func (k *Keeper) RebaseByPercentage(ctx context.Context, bps int64, positive bool) error {
	if bps < 0 {
		return errors.Wrap(types.ErrInvalidAmount, "rebase percentage cannot be negative")
	}

	delta := k.GetTotalSupply(ctx).MulRaw(bps).QuoRaw(BasisPointsDivisor)
	return k.Rebase(ctx, delta, positive)
}

// encodeAddress renders an address for event attributes, falling back to hex
// formatting when the codec rejects it (foreign-chain addresses).
func (k *Keeper) encodeAddress(account []byte) string {
	encoded, err := k.address.BytesToString(account)
	if err != nil {
		return fmt.Sprintf("%x", account)
	}
	return encoded
}
