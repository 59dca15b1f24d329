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
	sdk "github.com/cosmos/cosmos-sdk/types"

	"usdr.arcline.xyz/types"
	"usdr.arcline.xyz/types/vault"
)

var _ vault.MsgServer = &vaultMsgServer{}

type vaultMsgServer struct {
	*Keeper
}

func NewVaultMsgServer(keeper *Keeper) vault.MsgServer {
	return &vaultMsgServer{Keeper: keeper}
}

func (k vaultMsgServer) Deposit(ctx context.Context, msg *vault.MsgDeposit) (*vault.MsgDepositResponse, error) {
	depositor, err := k.address.StringToBytes(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode depositor address %s", msg.Depositor)
	}

	config := k.GetVaultConfig(ctx)
	if config.DepositsPaused {
		return nil, vault.ErrDepositsPaused
	}
	if config.AllowlistEnabled && !k.IsAllowlisted(ctx, depositor) {
		return nil, vault.ErrNotAllowlisted
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "deposit amount must be positive")
	}
	if config.MinDeposit.IsPositive() && msg.Amount.LT(config.MinDeposit) {
		return nil, errors.Wrapf(vault.ErrBelowMinimum, "minimum is %s", config.MinDeposit)
	}

	info := k.GetUserInfo(ctx, depositor)
	if config.MaxPerUser.IsPositive() && info.DepositedAmount.Add(msg.Amount).GT(config.MaxPerUser) {
		return nil, errors.Wrapf(vault.ErrDepositCapExceeded, "per-user cap is %s", config.MaxPerUser)
	}

	totalDeposited := k.GetTotalDeposited(ctx)
	if config.MaxTotal.IsPositive() && totalDeposited.Add(msg.Amount).GT(config.MaxTotal) {
		return nil, errors.Wrapf(vault.ErrDepositCapExceeded, "global cap is %s", config.MaxTotal)
	}

	// Rate is fixed by the curve at the vault's size before this deposit.
	rate := k.CurrentRate(ctx)

	err = k.bank.SendCoins(
		ctx, depositor, types.ModuleAddress,
		sdk.NewCoins(sdk.NewCoin(k.underlyingDenom, msg.Amount)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to collect deposit")
	}

	if err := k.Mint(ctx, depositor, msg.Amount, &rate); err != nil {
		return nil, err
	}

	info.DepositedAmount = info.DepositedAmount.Add(msg.Amount)
	info.LastDepositTime = k.header.GetHeaderInfo(ctx).Time
	if err := k.SetUserInfo(ctx, depositor, info); err != nil {
		return nil, err
	}
	if err := k.SetTotalDeposited(ctx, totalDeposited.Add(msg.Amount)); err != nil {
		return nil, err
	}

	err = k.event.EventManager(ctx).EmitKV(
		ctx,
		vault.EventTypeDeposit,
		event.Attribute{Key: vault.AttributeKeyDepositor, Value: msg.Depositor},
		event.Attribute{Key: vault.AttributeKeyAmount, Value: msg.Amount.String()},
		event.Attribute{Key: vault.AttributeKeyRate, Value: strconv.FormatInt(rate, 10)},
	)
	if err != nil {
		return nil, err
	}

	return &vault.MsgDepositResponse{AmountDeposited: msg.Amount, Rate: rate}, nil
}

func (k vaultMsgServer) Withdraw(ctx context.Context, msg *vault.MsgWithdraw) (*vault.MsgWithdrawResponse, error) {
	res, err := k.Redeem(ctx, &vault.MsgRedeem{
		Withdrawer: msg.Withdrawer,
		Amount:     msg.Amount,
		MinOut:     math.ZeroInt(),
	})
	if err != nil {
		return nil, err
	}

	return &vault.MsgWithdrawResponse{Payout: res.Payout}, nil
}

func (k vaultMsgServer) Redeem(ctx context.Context, msg *vault.MsgRedeem) (*vault.MsgRedeemResponse, error) {
	if err := k.enterGuard("vault/redeem"); err != nil {
		return nil, err
	}
	defer k.exitGuard("vault/redeem")

	withdrawer, err := k.address.StringToBytes(msg.Withdrawer)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode withdrawer address %s", msg.Withdrawer)
	}

	config := k.GetVaultConfig(ctx)
	if config.RedeemsPaused {
		return nil, vault.ErrRedeemsPaused
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "redeem amount must be positive")
	}

	info := k.GetUserInfo(ctx, withdrawer)
	if info.DepositedAmount.LT(msg.Amount) {
		return nil, errors.Wrapf(vault.ErrInsufficientDeposit, "recorded deposit %s, redeeming %s", info.DepositedAmount, msg.Amount)
	}

	// Principal redeems 1:1 against the backing; accrued interest stays in
	// the rebasing balance.
	payout := msg.Amount
	if !msg.MinOut.IsNil() && payout.LT(msg.MinOut) {
		return nil, errors.Wrapf(vault.ErrSlippageExceeded, "payout %s below minimum %s", payout, msg.MinOut)
	}

	if err := k.Burn(ctx, withdrawer, msg.Amount); err != nil {
		return nil, err
	}

	info.DepositedAmount = info.DepositedAmount.Sub(msg.Amount)
	if err := k.SetUserInfo(ctx, withdrawer, info); err != nil {
		return nil, err
	}
	if err := k.SetTotalDeposited(ctx, k.GetTotalDeposited(ctx).Sub(msg.Amount)); err != nil {
		return nil, err
	}

	// Asset transfer happens last, after all ledger and vault state updates.
	err = k.bank.SendCoins(
		ctx, types.ModuleAddress, withdrawer,
		sdk.NewCoins(sdk.NewCoin(k.underlyingDenom, payout)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to pay out redemption")
	}

	err = k.event.EventManager(ctx).EmitKV(
		ctx,
		vault.EventTypeWithdraw,
		event.Attribute{Key: vault.AttributeKeyWithdrawer, Value: msg.Withdrawer},
		event.Attribute{Key: vault.AttributeKeyAmount, Value: msg.Amount.String()},
		event.Attribute{Key: vault.AttributeKeyPayout, Value: payout.String()},
	)
	if err != nil {
		return nil, err
	}

	return &vault.MsgRedeemResponse{Payout: payout}, nil
}

func (k vaultMsgServer) PerformUpkeep(ctx context.Context, msg *vault.MsgPerformUpkeep) (*vault.MsgPerformUpkeepResponse, error) {
	performed, interest, err := k.AccrueInterest(ctx)
	if err != nil {
		return nil, err
	}

	return &vault.MsgPerformUpkeepResponse{Performed: performed, Interest: interest}, nil
}

func (k vaultMsgServer) SetFeeConfig(ctx context.Context, msg *vault.MsgSetFeeConfig) (*vault.MsgSetFeeConfigResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if msg.FeeBps < 0 || msg.FeeBps > BasisPointsDivisor {
		return nil, errors.Wrapf(vault.ErrInvalidConfig, "fee %d out of range", msg.FeeBps)
	}
	if msg.FeeBps > 0 {
		if _, err := k.address.StringToBytes(msg.FeeRecipient); err != nil {
			return nil, errors.Wrapf(vault.ErrInvalidConfig, "unable to decode fee recipient %s", msg.FeeRecipient)
		}
	}

	config := k.GetVaultConfig(ctx)
	config.FeeBps = msg.FeeBps
	config.FeeRecipient = msg.FeeRecipient
	if err := k.SetVaultConfig(ctx, config); err != nil {
		return nil, err
	}

	if err := k.emitVaultConfigUpdated(ctx); err != nil {
		return nil, err
	}

	return &vault.MsgSetFeeConfigResponse{}, nil
}

func (k vaultMsgServer) SetAccrualConfig(ctx context.Context, msg *vault.MsgSetAccrualConfig) (*vault.MsgSetAccrualConfigResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if msg.BaseInterestRate < 0 || msg.MinimumRate < 0 || msg.RateDecrementPerThreshold < 0 {
		return nil, errors.Wrap(vault.ErrInvalidConfig, "rates cannot be negative")
	}
	if msg.MinimumRate > msg.BaseInterestRate {
		return nil, errors.Wrap(vault.ErrInvalidConfig, "minimum rate above base rate")
	}
	if msg.AccrualPeriod <= 0 {
		return nil, errors.Wrap(vault.ErrInvalidConfig, "accrual period must be positive")
	}
	if msg.DailyAccrualCapBps < 0 {
		return nil, errors.Wrap(vault.ErrInvalidConfig, "accrual cap cannot be negative")
	}
	if msg.DecrementThreshold.IsNil() || msg.DecrementThreshold.IsNegative() {
		return nil, errors.Wrap(vault.ErrInvalidConfig, "decrement threshold cannot be negative")
	}

	config := k.GetVaultConfig(ctx)
	config.BaseInterestRate = msg.BaseInterestRate
	config.RateDecrementPerThreshold = msg.RateDecrementPerThreshold
	config.DecrementThreshold = msg.DecrementThreshold
	config.MinimumRate = msg.MinimumRate
	config.AccrualPeriod = msg.AccrualPeriod
	config.DailyAccrualCapBps = msg.DailyAccrualCapBps
	if err := k.SetVaultConfig(ctx, config); err != nil {
		return nil, err
	}

	if err := k.emitVaultConfigUpdated(ctx); err != nil {
		return nil, err
	}

	return &vault.MsgSetAccrualConfigResponse{}, nil
}

func (k vaultMsgServer) SetDepositCaps(ctx context.Context, msg *vault.MsgSetDepositCaps) (*vault.MsgSetDepositCapsResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if msg.MinDeposit.IsNil() || msg.MaxPerUser.IsNil() || msg.MaxTotal.IsNil() {
		return nil, errors.Wrap(vault.ErrInvalidConfig, "caps cannot be nil")
	}
	if msg.MinDeposit.IsNegative() || msg.MaxPerUser.IsNegative() || msg.MaxTotal.IsNegative() {
		return nil, errors.Wrap(vault.ErrInvalidConfig, "caps cannot be negative")
	}

	config := k.GetVaultConfig(ctx)
	config.MinDeposit = msg.MinDeposit
	config.MaxPerUser = msg.MaxPerUser
	config.MaxTotal = msg.MaxTotal
	if err := k.SetVaultConfig(ctx, config); err != nil {
		return nil, err
	}

	if err := k.emitVaultConfigUpdated(ctx); err != nil {
		return nil, err
	}

	return &vault.MsgSetDepositCapsResponse{}, nil
}

func (k vaultMsgServer) SetAllowlistStatus(ctx context.Context, msg *vault.MsgSetAllowlistStatus) (*vault.MsgSetAllowlistStatusResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	config := k.GetVaultConfig(ctx)
	config.AllowlistEnabled = msg.Enabled
	if err := k.SetVaultConfig(ctx, config); err != nil {
		return nil, err
	}

	if err := k.emitVaultConfigUpdated(ctx); err != nil {
		return nil, err
	}

	return &vault.MsgSetAllowlistStatusResponse{}, nil
}

func (k vaultMsgServer) SetAllowlisted(ctx context.Context, msg *vault.MsgSetAllowlisted) (*vault.MsgSetAllowlistedResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	account, err := k.address.StringToBytes(msg.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode account address %s", msg.Account)
	}

	if err := k.Keeper.SetAllowlisted(ctx, account, msg.Allowed); err != nil {
		return nil, err
	}

	return &vault.MsgSetAllowlistedResponse{}, nil
}

func (k vaultMsgServer) PauseDeposits(ctx context.Context, msg *vault.MsgPauseDeposits) (*vault.MsgPauseDepositsResponse, error) {
	if err := k.setVaultPaused(ctx, msg.Authority, boolPtr(true), nil); err != nil {
		return nil, err
	}
	return &vault.MsgPauseDepositsResponse{}, nil
}

func (k vaultMsgServer) UnpauseDeposits(ctx context.Context, msg *vault.MsgUnpauseDeposits) (*vault.MsgUnpauseDepositsResponse, error) {
	if err := k.setVaultPaused(ctx, msg.Authority, boolPtr(false), nil); err != nil {
		return nil, err
	}
	return &vault.MsgUnpauseDepositsResponse{}, nil
}

func (k vaultMsgServer) PauseRedeems(ctx context.Context, msg *vault.MsgPauseRedeems) (*vault.MsgPauseRedeemsResponse, error) {
	if err := k.setVaultPaused(ctx, msg.Authority, nil, boolPtr(true)); err != nil {
		return nil, err
	}
	return &vault.MsgPauseRedeemsResponse{}, nil
}

func (k vaultMsgServer) UnpauseRedeems(ctx context.Context, msg *vault.MsgUnpauseRedeems) (*vault.MsgUnpauseRedeemsResponse, error) {
	if err := k.setVaultPaused(ctx, msg.Authority, nil, boolPtr(false)); err != nil {
		return nil, err
	}
	return &vault.MsgUnpauseRedeemsResponse{}, nil
}

func (k vaultMsgServer) PauseAll(ctx context.Context, msg *vault.MsgPauseAll) (*vault.MsgPauseAllResponse, error) {
	if err := k.setVaultPaused(ctx, msg.Authority, boolPtr(true), boolPtr(true)); err != nil {
		return nil, err
	}
	return &vault.MsgPauseAllResponse{}, nil
}

func (k vaultMsgServer) UnpauseAll(ctx context.Context, msg *vault.MsgUnpauseAll) (*vault.MsgUnpauseAllResponse, error) {
	if err := k.setVaultPaused(ctx, msg.Authority, boolPtr(false), boolPtr(false)); err != nil {
		return nil, err
	}
	return &vault.MsgUnpauseAllResponse{}, nil
}

func (k vaultMsgServer) RescueFunds(ctx context.Context, msg *vault.MsgRescueFunds) (*vault.MsgRescueFundsResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if msg.Denom == k.underlyingDenom {
		return nil, vault.ErrCannotRescueBacking
	}

	recipient, err := k.address.StringToBytes(msg.Recipient)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode recipient address %s", msg.Recipient)
	}

	balance := k.bank.GetBalance(ctx, types.ModuleAddress, msg.Denom)
	if balance.Amount.IsPositive() {
		if err := k.bank.SendCoins(ctx, types.ModuleAddress, recipient, sdk.NewCoins(balance)); err != nil {
			return nil, errors.Wrap(err, "unable to rescue funds")
		}
	}

	err = k.event.EventManager(ctx).EmitKV(
		ctx,
		vault.EventTypeRescue,
		event.Attribute{Key: vault.AttributeKeyDenom, Value: msg.Denom},
		event.Attribute{Key: vault.AttributeKeyRecipient, Value: msg.Recipient},
		event.Attribute{Key: vault.AttributeKeyAmount, Value: balance.Amount.String()},
	)
	if err != nil {
		return nil, err
	}

	return &vault.MsgRescueFundsResponse{AmountRescued: balance.Amount}, nil
}

func (k *Keeper) checkAuthority(authority string) error {
	if authority != k.authority {
		return errors.Wrapf(vault.ErrInvalidAuthority, "expected %s, got %s", k.authority, authority)
	}
	return nil
}

// setVaultPaused updates only the pause bits that are non-nil, so the four
// combinations remain reachable through the explicit messages.
func (k *Keeper) setVaultPaused(ctx context.Context, authority string, deposits, redeems *bool) error {
	if err := k.checkAuthority(authority); err != nil {
		return err
	}

	config := k.GetVaultConfig(ctx)
	if deposits != nil {
		config.DepositsPaused = *deposits
	}
	if redeems != nil {
		config.RedeemsPaused = *redeems
	}
	if err := k.SetVaultConfig(ctx, config); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		vault.EventTypePauseChanged,
		event.Attribute{Key: vault.AttributeKeyDepositsPaused, Value: strconv.FormatBool(config.DepositsPaused)},
		event.Attribute{Key: vault.AttributeKeyRedeemsPaused, Value: strconv.FormatBool(config.RedeemsPaused)},
	)
}

func (k *Keeper) emitVaultConfigUpdated(ctx context.Context) error {
	return k.event.EventManager(ctx).EmitKV(ctx, vault.EventTypeConfigUpdated)
}

func boolPtr(b bool) *bool {
	return &b
}
