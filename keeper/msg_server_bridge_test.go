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
	"usdr.arcline.xyz/types"
	"usdr.arcline.xyz/types/bridge"
	"usdr.arcline.xyz/utils"
	"usdr.arcline.xyz/utils/mocks"
)

// setupBridgeTest wires a keeper on chain 1 with chain 2 registered: 1% fee,
// 5000 per-send cap, a 10000 bucket refilling 1 USDR per second, and a 20000
// daily limit. Alice starts with 10000 USDR.
func setupBridgeTest(t *testing.T) (*keeper.Keeper, bridge.MsgServer, *mocks.Transport, sdk.Context, utils.Account, utils.Account) {
	bank := mocks.BankKeeper{Balances: make(map[string]sdk.Coins)}
	transport := mocks.NewTransport()
	k, ctx := mocks.USDRKeeperWithKeepers(t, bank, transport, 1)
	server := keeper.NewBridgeMsgServer(k)

	ctx = ctx.WithHeaderInfo(header.Info{Time: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)})

	feeCollector := utils.TestAccount()
	require.NoError(t, k.SetBridgeFeeRecipient(ctx, feeCollector.Address))

	_, err := server.SetChainConfig(ctx, &bridge.MsgSetChainConfig{
		Authority: mocks.Authority,
		ChainId:   2,
		Config: bridge.Chain{
			Allowlisted:         true,
			Gateway:             utils.TestAccount().Bytes,
			FeeBps:              100,
			PerSendCap:          math.NewInt(5000 * ONE),
			BucketCapacity:      math.NewInt(10_000 * ONE),
			RefillRatePerSecond: math.NewInt(ONE),
			DailyLimit:          math.NewInt(20_000 * ONE),
		},
	})
	require.NoError(t, err)

	alice := utils.TestAccount()
	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(10_000*ONE), nil))

	return k, server, transport, ctx, alice, feeCollector
}

func TestBridgeSendFeeSplit(t *testing.T) {
	k, server, transport, ctx, alice, feeCollector := setupBridgeTest(t)
	recipient := utils.TestAccount()

	// ACT: Send 1000 USDR to chain 2 with a 1% fee.
	resp, err := server.SendTokensCrossChain(ctx, &bridge.MsgSendTokensCrossChain{
		Sender:           alice.Address,
		DestinationChain: 2,
		Recipient:        recipient.Bytes,
		Amount:           math.NewInt(1000 * ONE),
	})
	require.NoError(t, err)

	// ASSERT: 1000 burned, 10 fee kept locally, 990 in the payload.
	assert.Equal(t, math.NewInt(990*ONE), resp.NetAmount)
	assert.Equal(t, math.NewInt(10*ONE), resp.Fee)
	assert.Equal(t, math.NewInt(9000*ONE), k.BalanceOf(ctx, alice.Bytes))
	assert.Equal(t, math.NewInt(10*ONE), k.BalanceOf(ctx, feeCollector.Bytes))
	assert.Equal(t, math.NewInt(9010*ONE), k.GetTotalSupply(ctx))

	// ASSERT: The submitted payload round-trips with the right fields.
	require.Len(t, transport.Submitted, 1)
	message := transport.Submitted[0]
	assert.Equal(t, uint32(2), message.DestinationChain)
	assert.Equal(t, bridge.MessageID(message.Payload), resp.MessageId)

	payload, err := bridge.ParseTokenPayload(message.Payload)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), payload.SourceChain)
	assert.Equal(t, uint32(2), payload.DestChain)
	assert.Equal(t, bridge.PadAddress(alice.Bytes), payload.Sender)
	assert.Equal(t, recipient.Bytes, payload.Recipient)
	assert.Equal(t, math.NewInt(990*ONE), payload.NetAmount)
	assert.Equal(t, math.NewInt(10*ONE), payload.Fee)
	assert.Equal(t, uint64(1), payload.Nonce)
}

func TestBridgeSendValidation(t *testing.T) {
	k, server, _, ctx, alice, _ := setupBridgeTest(t)
	recipient := utils.TestAccount()

	send := func(destination uint32, amount math.Int) error {
		_, err := server.SendTokensCrossChain(ctx, &bridge.MsgSendTokensCrossChain{
			Sender:           alice.Address,
			DestinationChain: destination,
			Recipient:        recipient.Bytes,
			Amount:           amount,
		})
		return err
	}

	// ASSERT: Unknown destination.
	require.ErrorIs(t, send(9, math.NewInt(ONE)), bridge.ErrChainNotAllowlisted)

	// ASSERT: Allowlisted chain with no gateway registered.
	_, err := server.SetChainConfig(ctx, &bridge.MsgSetChainConfig{
		Authority: mocks.Authority,
		ChainId:   3,
		Config: bridge.Chain{
			Allowlisted:         true,
			PerSendCap:          math.NewInt(5000 * ONE),
			BucketCapacity:      math.NewInt(10_000 * ONE),
			RefillRatePerSecond: math.NewInt(ONE),
			DailyLimit:          math.NewInt(20_000 * ONE),
		},
	})
	require.NoError(t, err)
	require.ErrorIs(t, send(3, math.NewInt(ONE)), bridge.ErrReceiverNotSet)

	// ASSERT: Per-send cap is enforced at the boundary.
	require.ErrorIs(t, send(2, math.NewInt(5000*ONE+1)), bridge.ErrAmountExceedsCap)

	// ASSERT: Amount and recipient validation.
	require.ErrorIs(t, send(2, math.ZeroInt()), types.ErrInvalidAmount)
	_, err = server.SendTokensCrossChain(ctx, &bridge.MsgSendTokensCrossChain{
		Sender:           alice.Address,
		DestinationChain: 2,
		Recipient:        make([]byte, 33),
		Amount:           math.NewInt(ONE),
	})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ASSERT: Paused bridge rejects sends, unpausing restores them.
	_, err = server.Pause(ctx, &bridge.MsgPause{Authority: mocks.Authority})
	require.NoError(t, err)
	require.ErrorIs(t, send(2, math.NewInt(ONE)), bridge.ErrPaused)

	_, err = server.Unpause(ctx, &bridge.MsgUnpause{Authority: mocks.Authority})
	require.NoError(t, err)
	require.NoError(t, send(2, math.NewInt(ONE)))

	// ASSERT: Nothing above burned more than the one successful send.
	assert.Equal(t, math.NewInt(9999*ONE), k.BalanceOf(ctx, alice.Bytes))
}

func TestBridgeTokenBucket(t *testing.T) {
	k, server, _, ctx, alice, _ := setupBridgeTest(t)
	recipient := utils.TestAccount()

	// ARRANGE: Enough balance that only the throttle can bind.
	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(20_000*ONE), nil))

	send := func(ctx sdk.Context, amount int64) error {
		_, err := server.SendTokensCrossChain(ctx, &bridge.MsgSendTokensCrossChain{
			Sender:           alice.Address,
			DestinationChain: 2,
			Recipient:        recipient.Bytes,
			Amount:           math.NewInt(amount),
		})
		return err
	}

	// ACT: Drain the 10000 bucket with two capped sends.
	require.NoError(t, send(ctx, 5000*ONE))
	require.NoError(t, send(ctx, 5000*ONE))

	// ASSERT: The bucket is empty.
	require.ErrorIs(t, send(ctx, ONE), bridge.ErrRateLimitExceeded)

	// ACT: 1000 seconds refill 1000 USDR.
	later := ctx.WithHeaderInfo(header.Info{Time: ctx.HeaderInfo().Time.Add(1000 * time.Second)})
	require.ErrorIs(t, send(later, 1000*ONE+1), bridge.ErrRateLimitExceeded)
	require.NoError(t, send(later, 1000*ONE))

	// ASSERT: Refill clamps at capacity rather than accumulating forever.
	muchLater := ctx.WithHeaderInfo(header.Info{Time: ctx.HeaderInfo().Time.Add(100 * time.Hour)})
	require.NoError(t, send(muchLater, 5000*ONE))
	require.NoError(t, send(muchLater, 5000*ONE))
	require.ErrorIs(t, send(muchLater, ONE), bridge.ErrRateLimitExceeded)
}

func TestBridgeDailyLimit(t *testing.T) {
	k, server, _, ctx, alice, _ := setupBridgeTest(t)
	recipient := utils.TestAccount()

	// ARRANGE: A destination where only the daily limit binds.
	_, err := server.SetChainConfig(ctx, &bridge.MsgSetChainConfig{
		Authority: mocks.Authority,
		ChainId:   4,
		Config: bridge.Chain{
			Allowlisted:         true,
			Gateway:             utils.TestAccount().Bytes,
			PerSendCap:          math.NewInt(6000 * ONE),
			BucketCapacity:      math.NewInt(100_000 * ONE),
			RefillRatePerSecond: math.NewInt(1000 * ONE),
			DailyLimit:          math.NewInt(6000 * ONE),
		},
	})
	require.NoError(t, err)

	send := func(ctx sdk.Context, amount int64) error {
		_, err := server.SendTokensCrossChain(ctx, &bridge.MsgSendTokensCrossChain{
			Sender:           alice.Address,
			DestinationChain: 4,
			Recipient:        recipient.Bytes,
			Amount:           math.NewInt(amount),
		})
		return err
	}

	// ACT: Exhaust the daily limit.
	require.NoError(t, send(ctx, 5000*ONE))
	require.NoError(t, send(ctx, 1000*ONE))
	require.ErrorIs(t, send(ctx, ONE), bridge.ErrDailyLimitExceeded)

	// ASSERT: Later the same calendar day the limit still binds.
	sameDay := ctx.WithHeaderInfo(header.Info{Time: ctx.HeaderInfo().Time.Add(6 * time.Hour)})
	require.ErrorIs(t, send(sameDay, ONE), bridge.ErrDailyLimitExceeded)

	// ASSERT: The counter resets at midnight, not 24h after first use.
	nextDay := ctx.WithHeaderInfo(header.Info{Time: time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC)})
	require.NoError(t, send(nextDay, 3000*ONE))

	bucket, found := k.GetOutboundBucket(ctx, 4)
	require.True(t, found)
	assert.Equal(t, math.NewInt(3000*ONE), bucket.DailySent)
	assert.Equal(t, bridge.DayId(nextDay.HeaderInfo().Time.Unix()), bucket.DayId)
}

// TestBridgeDailyLimitMidnightStraddle documents that a window straddling
// midnight can move close to twice the nominal daily limit. That is the
// calendar-day semantics, not a defect.
func TestBridgeDailyLimitMidnightStraddle(t *testing.T) {
	k, server, _, ctx, alice, _ := setupBridgeTest(t)
	recipient := utils.TestAccount()

	// ARRANGE: A 1000 daily limit with a bucket wide enough not to bind.
	_, err := server.SetChainConfig(ctx, &bridge.MsgSetChainConfig{
		Authority: mocks.Authority,
		ChainId:   5,
		Config: bridge.Chain{
			Allowlisted:         true,
			Gateway:             utils.TestAccount().Bytes,
			PerSendCap:          math.NewInt(1000 * ONE),
			BucketCapacity:      math.NewInt(5000 * ONE),
			RefillRatePerSecond: math.NewInt(1000 * ONE),
			DailyLimit:          math.NewInt(1000 * ONE),
		},
	})
	require.NoError(t, err)

	send := func(ctx sdk.Context, amount int64) error {
		_, err := server.SendTokensCrossChain(ctx, &bridge.MsgSendTokensCrossChain{
			Sender:           alice.Address,
			DestinationChain: 5,
			Recipient:        recipient.Bytes,
			Amount:           math.NewInt(amount),
		})
		return err
	}

	// ACT: Fill the limit one minute before midnight, then again one minute
	// after. Both pass, moving 2x the nominal limit in two minutes.
	beforeMidnight := ctx.WithHeaderInfo(header.Info{Time: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)})
	require.NoError(t, send(beforeMidnight, 1000*ONE))
	require.ErrorIs(t, send(beforeMidnight, ONE), bridge.ErrDailyLimitExceeded)

	afterMidnight := ctx.WithHeaderInfo(header.Info{Time: time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)})
	require.NoError(t, send(afterMidnight, 1000*ONE))

	assert.Equal(t, math.NewInt(8000*ONE), k.BalanceOf(ctx, alice.Bytes))
}

func TestBridgeAdmin(t *testing.T) {
	k, server, _, ctx, alice, _ := setupBridgeTest(t)

	// ASSERT: Authority is checked on every admin entrypoint.
	_, err := server.SetChainConfig(ctx, &bridge.MsgSetChainConfig{Authority: alice.Address, ChainId: 7})
	require.ErrorIs(t, err, bridge.ErrInvalidAuthority)
	_, err = server.RemoveChainConfig(ctx, &bridge.MsgRemoveChainConfig{Authority: alice.Address, ChainId: 2})
	require.ErrorIs(t, err, bridge.ErrInvalidAuthority)
	_, err = server.SetFeeRecipient(ctx, &bridge.MsgSetFeeRecipient{Authority: alice.Address, FeeRecipient: alice.Address})
	require.ErrorIs(t, err, bridge.ErrInvalidAuthority)
	_, err = server.Pause(ctx, &bridge.MsgPause{Authority: alice.Address})
	require.ErrorIs(t, err, bridge.ErrInvalidAuthority)

	// ASSERT: The local chain cannot be registered as a destination.
	_, err = server.SetChainConfig(ctx, &bridge.MsgSetChainConfig{Authority: mocks.Authority, ChainId: 1})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ASSERT: Registering a chain creates full buckets in both directions.
	queries := keeper.NewBridgeQueryServer(k)
	resp, err := queries.Chain(ctx, &bridge.QueryChainRequest{ChainId: 2})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(10_000*ONE), resp.OutboundBucket.TokensAvailable)
	assert.Equal(t, math.NewInt(10_000*ONE), resp.InboundBucket.TokensAvailable)
	assert.Equal(t, math.ZeroInt(), resp.OutboundBucket.DailySent)

	// ACT: Remove the chain and its throttle state.
	_, err = server.RemoveChainConfig(ctx, &bridge.MsgRemoveChainConfig{Authority: mocks.Authority, ChainId: 2})
	require.NoError(t, err)
	_, found := k.GetChain(ctx, 2)
	assert.False(t, found)
	_, found = k.GetOutboundBucket(ctx, 2)
	assert.False(t, found)

	_, err = queries.Chain(ctx, &bridge.QueryChainRequest{ChainId: 2})
	require.ErrorIs(t, err, bridge.ErrChainNotAllowlisted)

	// ASSERT: Fee recipient must decode.
	_, err = server.SetFeeRecipient(ctx, &bridge.MsgSetFeeRecipient{Authority: mocks.Authority, FeeRecipient: "garbage"})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
	_, err = server.SetFeeRecipient(ctx, &bridge.MsgSetFeeRecipient{Authority: mocks.Authority, FeeRecipient: alice.Address})
	require.NoError(t, err)
	assert.Equal(t, alice.Address, k.GetBridgeFeeRecipient(ctx))
}
