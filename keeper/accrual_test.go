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

package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usdr.arcline.xyz/keeper"
	"usdr.arcline.xyz/types/vault"
	"usdr.arcline.xyz/utils"
	"usdr.arcline.xyz/utils/mocks"
)

// setupAccrualTest configures a vault with a 10% rate, a daily accrual
// period, and the given fee and circuit-breaker settings. Bob holds the
// entire 1000 USDR supply.
func setupAccrualTest(t *testing.T, feeBps, capBps int64) (*keeper.Keeper, vault.MsgServer, sdk.Context, utils.Account, utils.Account) {
	k, ctx := mocks.USDRKeeper(t)
	server := keeper.NewVaultMsgServer(k)
	ctx = ctx.WithHeaderInfo(header.Info{Time: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)})

	feeCollector := utils.TestAccount()
	config := vault.Config{
		BaseInterestRate:   1000,
		DecrementThreshold: math.ZeroInt(),
		MinimumRate:        0,
		MinDeposit:         math.ZeroInt(),
		MaxPerUser:         math.ZeroInt(),
		MaxTotal:           math.ZeroInt(),
		FeeBps:             feeBps,
		FeeRecipient:       feeCollector.Address,
		AccrualPeriod:      86400,
		DailyAccrualCapBps: capBps,
	}
	require.NoError(t, k.SetVaultConfig(ctx, config))

	bob := utils.TestAccount()
	require.NoError(t, k.Mint(ctx, bob.Bytes, math.NewInt(1000*ONE), nil))

	return k, server, ctx, bob, feeCollector
}

func TestAccrualAppliesRebase(t *testing.T) {
	k, server, ctx, bob, _ := setupAccrualTest(t, 0, 0)

	// ACT: First tick is due (no accrual recorded yet).
	resp, err := server.PerformUpkeep(ctx, &vault.MsgPerformUpkeep{Caller: bob.Address})
	require.NoError(t, err)

	// ASSERT: One period of 10% interest, all of it rebased to holders.
	assert.True(t, resp.Performed)
	assert.Equal(t, math.NewInt(100*ONE), resp.Interest)
	assert.Equal(t, math.NewInt(1100*ONE), k.GetTotalSupply(ctx))
	assert.Equal(t, math.NewInt(1100*ONE), k.BalanceOf(ctx, bob.Bytes))
	assert.Equal(t, ctx.HeaderInfo().Time.Unix(), k.GetLastAccrualTime(ctx))
}

func TestAccrualIdempotentWithinPeriod(t *testing.T) {
	k, server, ctx, bob, _ := setupAccrualTest(t, 0, 0)

	resp, err := server.PerformUpkeep(ctx, &vault.MsgPerformUpkeep{Caller: bob.Address})
	require.NoError(t, err)
	require.True(t, resp.Performed)

	// ASSERT: A second tick in the same period does nothing.
	assert.False(t, k.CheckUpkeep(ctx))
	resp, err = server.PerformUpkeep(ctx, &vault.MsgPerformUpkeep{Caller: bob.Address})
	require.NoError(t, err)
	assert.False(t, resp.Performed)
	assert.Equal(t, math.ZeroInt(), resp.Interest)
	assert.Equal(t, math.NewInt(1100*ONE), k.GetTotalSupply(ctx))

	// ASSERT: One second before the next period boundary is still too early.
	early := ctx.WithHeaderInfo(header.Info{Time: ctx.HeaderInfo().Time.Add(24*time.Hour - time.Second)})
	assert.False(t, k.CheckUpkeep(early))

	// ACT: At the boundary the tick runs again, compounding.
	due := ctx.WithHeaderInfo(header.Info{Time: ctx.HeaderInfo().Time.Add(24 * time.Hour)})
	resp, err = server.PerformUpkeep(due, &vault.MsgPerformUpkeep{Caller: bob.Address})
	require.NoError(t, err)
	assert.True(t, resp.Performed)
	assert.Equal(t, math.NewInt(110*ONE), resp.Interest)
	assert.Equal(t, math.NewInt(1210*ONE), k.GetTotalSupply(ctx))
}

func TestAccrualFeeSkim(t *testing.T) {
	k, server, ctx, bob, feeCollector := setupAccrualTest(t, 1000, 0)

	// ACT: 10% interest with a 10% protocol fee.
	resp, err := server.PerformUpkeep(ctx, &vault.MsgPerformUpkeep{Caller: bob.Address})
	require.NoError(t, err)
	require.True(t, resp.Performed)
	require.Equal(t, math.NewInt(100*ONE), resp.Interest)

	// ASSERT: Supply grew by the full interest: 10 fee minted, 90 rebased.
	assert.Equal(t, math.NewInt(1100*ONE), k.GetTotalSupply(ctx))

	// ASSERT: The fee recipient's slice is the fee plus its share of the
	// rebase, since it holds shares by the time the rebase lands.
	assert.Equal(t, math.NewInt(10_891_089), k.BalanceOf(ctx, feeCollector.Bytes))
	assert.Equal(t, math.NewInt(1_089_108_910), k.BalanceOf(ctx, bob.Bytes))
}

func TestAccrualCircuitBreaker(t *testing.T) {
	k, server, ctx, bob, _ := setupAccrualTest(t, 0, 50)

	// ASSERT: The estimate reports the clamp before it is applied.
	interest, fee, clamped := k.EstimateInterest(ctx)
	assert.Equal(t, math.NewInt(5*ONE), interest)
	assert.Equal(t, math.ZeroInt(), fee)
	assert.True(t, clamped)

	// ACT: 10% gross interest clamped to the 0.5% per-period ceiling.
	resp, err := server.PerformUpkeep(ctx, &vault.MsgPerformUpkeep{Caller: bob.Address})
	require.NoError(t, err)
	require.True(t, resp.Performed)
	assert.Equal(t, math.NewInt(5*ONE), resp.Interest)
	assert.Equal(t, math.NewInt(1005*ONE), k.GetTotalSupply(ctx))
}

func TestBeginBlockerTicksAccrual(t *testing.T) {
	k, _, ctx, bob, _ := setupAccrualTest(t, 0, 0)

	// ACT
	k.BeginBlocker(ctx)

	// ASSERT: The block tick applied the accrual.
	assert.Equal(t, math.NewInt(1100*ONE), k.GetTotalSupply(ctx))
	assert.Equal(t, math.NewInt(1100*ONE), k.BalanceOf(ctx, bob.Bytes))

	// ASSERT: The next block inside the same period changes nothing.
	k.BeginBlocker(ctx)
	assert.Equal(t, math.NewInt(1100*ONE), k.GetTotalSupply(ctx))
}
