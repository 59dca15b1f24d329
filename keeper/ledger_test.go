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
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usdr.arcline.xyz/keeper"
	"usdr.arcline.xyz/types"
	"usdr.arcline.xyz/utils"
	"usdr.arcline.xyz/utils/mocks"
)

const ONE = 1_000_000

func TestMintBootstrap(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice := utils.TestAccount()

	// ACT: Mint 100 USDR into an empty ledger at a 10% rate.
	rate := int64(1000)
	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), &rate))

	// ASSERT: Bootstrap is 1:1 between shares and balance.
	assert.Equal(t, math.NewInt(100), k.BalanceOf(ctx, alice.Bytes))
	assert.Equal(t, math.NewInt(100), k.GetTotalShares(ctx))
	assert.Equal(t, math.NewInt(100), k.GetTotalSupply(ctx))
	assert.Equal(t, int64(1000), k.GetRate(ctx, alice.Bytes))
}

func TestMintInvalid(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice := utils.TestAccount()

	// ASSERT: Empty account and non-positive amounts are rejected.
	require.ErrorIs(t, k.Mint(ctx, nil, math.NewInt(100), nil), types.ErrZeroAddress)
	require.ErrorIs(t, k.Mint(ctx, alice.Bytes, math.ZeroInt(), nil), types.ErrInvalidAmount)
	require.ErrorIs(t, k.Mint(ctx, alice.Bytes, math.NewInt(-1), nil), types.ErrInvalidAmount)
}

func TestRebaseScalesSingleHolder(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice := utils.TestAccount()

	// ARRANGE: Alice holds the whole supply.
	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), nil))

	// ACT: Distribute 10 as a positive rebase.
	require.NoError(t, k.Rebase(ctx, math.NewInt(10), true))

	// ASSERT: Supply and balance both grew; shares did not.
	assert.Equal(t, math.NewInt(110), k.GetTotalSupply(ctx))
	assert.Equal(t, math.NewInt(110), k.BalanceOf(ctx, alice.Bytes))
	assert.Equal(t, math.NewInt(100), k.GetShares(ctx, alice.Bytes))
}

func TestRebaseScalesAllHolders(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	// ARRANGE: Two equal holders.
	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), nil))
	require.NoError(t, k.Mint(ctx, bob.Bytes, math.NewInt(100), nil))
	require.Equal(t, math.NewInt(200), k.GetTotalSupply(ctx))

	// ACT
	require.NoError(t, k.Rebase(ctx, math.NewInt(20), true))

	// ASSERT: Proportional distribution.
	assert.Equal(t, math.NewInt(220), k.GetTotalSupply(ctx))
	assert.Equal(t, math.NewInt(110), k.BalanceOf(ctx, alice.Bytes))
	assert.Equal(t, math.NewInt(110), k.BalanceOf(ctx, bob.Bytes))
}

func TestRebaseByPercentage(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice := utils.TestAccount()

	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(200*ONE), nil))

	// ACT: +5% then -5% of the new supply.
	require.NoError(t, k.RebaseByPercentage(ctx, 500, true))
	assert.Equal(t, math.NewInt(210*ONE), k.GetTotalSupply(ctx))

	require.NoError(t, k.RebaseByPercentage(ctx, 500, false))
	assert.Equal(t, math.NewInt(199_500_000), k.GetTotalSupply(ctx))

	// ASSERT: Negative percentages are rejected.
	require.ErrorIs(t, k.RebaseByPercentage(ctx, -100, true), types.ErrInvalidAmount)
}

func TestNegativeRebaseCannotUnderflow(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice := utils.TestAccount()

	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(200), nil))

	// ASSERT: A negative rebase larger than supply is rejected outright.
	require.ErrorIs(t, k.Rebase(ctx, math.NewInt(300), false), types.ErrInvalidAmount)
	assert.Equal(t, math.NewInt(200), k.GetTotalSupply(ctx))

	// ASSERT: Down to exactly zero is allowed.
	require.NoError(t, k.Rebase(ctx, math.NewInt(200), false))
	assert.Equal(t, math.ZeroInt(), k.GetTotalSupply(ctx))
	assert.Equal(t, math.ZeroInt(), k.BalanceOf(ctx, alice.Bytes))
}

func TestTransferRateInheritance(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice, bob, charlie := utils.TestAccount(), utils.TestAccount(), utils.TestAccount()

	// ARRANGE: Alice holds at 10%, Charlie already holds at 5%.
	aliceRate, charlieRate := int64(1000), int64(500)
	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), &aliceRate))
	require.NoError(t, k.Mint(ctx, charlie.Bytes, math.NewInt(100), &charlieRate))

	// ACT: Alice pays both.
	require.NoError(t, k.Transfer(ctx, alice.Bytes, bob.Bytes, math.NewInt(30)))
	require.NoError(t, k.Transfer(ctx, alice.Bytes, charlie.Bytes, math.NewInt(30)))

	// ASSERT: A fresh recipient inherits the sender's rate, an existing
	// holder keeps their own.
	assert.Equal(t, int64(1000), k.GetRate(ctx, bob.Bytes))
	assert.Equal(t, int64(500), k.GetRate(ctx, charlie.Bytes))

	assert.Equal(t, math.NewInt(40), k.BalanceOf(ctx, alice.Bytes))
	assert.Equal(t, math.NewInt(30), k.BalanceOf(ctx, bob.Bytes))
	assert.Equal(t, math.NewInt(130), k.BalanceOf(ctx, charlie.Bytes))
}

func TestTransferRateInheritanceKeysOnRateRecord(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice, bob, charlie, dave := utils.TestAccount(), utils.TestAccount(), utils.TestAccount(), utils.TestAccount()

	aliceRate, charlieRate := int64(1000), int64(500)
	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(300), &aliceRate))

	// ARRANGE: Bob holds shares but was minted to without a rate.
	require.NoError(t, k.Mint(ctx, bob.Bytes, math.NewInt(100), nil))

	// ARRANGE: Charlie's rate record outlived a full withdrawal.
	require.NoError(t, k.Mint(ctx, charlie.Bytes, math.NewInt(100), &charlieRate))
	require.NoError(t, k.Burn(ctx, charlie.Bytes, math.NewInt(100)))
	require.True(t, k.HasRate(ctx, charlie.Bytes))

	// ACT
	require.NoError(t, k.Transfer(ctx, alice.Bytes, bob.Bytes, math.NewInt(30)))
	require.NoError(t, k.Transfer(ctx, alice.Bytes, charlie.Bytes, math.NewInt(30)))

	// ASSERT: A holder without a rate record inherits; a surviving record is
	// never overwritten, even on an account holding nothing.
	assert.Equal(t, int64(1000), k.GetRate(ctx, bob.Bytes))
	assert.Equal(t, int64(500), k.GetRate(ctx, charlie.Bytes))

	// ASSERT: A rateless sender writes no rate record at all, so the
	// recipient can still inherit from a rated sender later.
	require.NoError(t, k.Transfer(ctx, bob.Bytes, dave.Bytes, math.NewInt(10)))
	assert.Equal(t, int64(1000), k.GetRate(ctx, dave.Bytes))
	erin := utils.TestAccount()
	require.NoError(t, k.Mint(ctx, erin.Bytes, math.NewInt(50), nil))
	frank := utils.TestAccount()
	require.NoError(t, k.Transfer(ctx, erin.Bytes, frank.Bytes, math.NewInt(20)))
	assert.False(t, k.HasRate(ctx, frank.Bytes))
	require.NoError(t, k.Transfer(ctx, alice.Bytes, frank.Bytes, math.NewInt(10)))
	assert.Equal(t, int64(1000), k.GetRate(ctx, frank.Bytes))
}

func TestTransferInsufficientBalance(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), nil))

	require.ErrorIs(t, k.Transfer(ctx, alice.Bytes, bob.Bytes, math.NewInt(101)), types.ErrInsufficientBalance)
	assert.Equal(t, math.NewInt(100), k.BalanceOf(ctx, alice.Bytes))
}

func TestTransferFullBalanceMovesAllShares(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), nil))
	require.NoError(t, k.Rebase(ctx, math.NewInt(33), true))

	// ACT: Send the entire balance after an uneven rebase.
	require.NoError(t, k.Transfer(ctx, alice.Bytes, bob.Bytes, k.BalanceOf(ctx, alice.Bytes)))

	// ASSERT: No dust shares stranded with Alice.
	assert.Equal(t, math.ZeroInt(), k.GetShares(ctx, alice.Bytes))
	assert.Equal(t, math.NewInt(100), k.GetShares(ctx, bob.Bytes))
}

func TestBurn(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	alice := utils.TestAccount()

	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), nil))

	// ASSERT: Burning more than the balance fails.
	require.ErrorIs(t, k.Burn(ctx, alice.Bytes, math.NewInt(101)), types.ErrInsufficientBalance)

	// ACT: Partial then full burn.
	require.NoError(t, k.Burn(ctx, alice.Bytes, math.NewInt(40)))
	assert.Equal(t, math.NewInt(60), k.BalanceOf(ctx, alice.Bytes))

	require.NoError(t, k.Burn(ctx, alice.Bytes, math.NewInt(60)))
	assert.Equal(t, math.ZeroInt(), k.BalanceOf(ctx, alice.Bytes))
	assert.Equal(t, math.ZeroInt(), k.GetShares(ctx, alice.Bytes))
	assert.Equal(t, math.ZeroInt(), k.GetTotalSupply(ctx))
}

func TestAllowanceFlow(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	server := keeper.NewMsgServer(k)
	alice, bob, charlie := utils.TestAccount(), utils.TestAccount(), utils.TestAccount()

	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), nil))

	// ACT: Alice approves Bob for 50.
	_, err := server.Approve(ctx, &types.MsgApprove{
		Owner:   alice.Address,
		Spender: bob.Address,
		Amount:  math.NewInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), k.GetAllowance(ctx, alice.Bytes, bob.Bytes))

	// ACT: Bob spends 30 of it towards Charlie.
	_, err = server.TransferFrom(ctx, &types.MsgTransferFrom{
		Spender:   bob.Address,
		Owner:     alice.Address,
		Recipient: charlie.Address,
		Amount:    math.NewInt(30),
	})
	require.NoError(t, err)

	// ASSERT: Allowance decremented, balances moved.
	assert.Equal(t, math.NewInt(20), k.GetAllowance(ctx, alice.Bytes, bob.Bytes))
	assert.Equal(t, math.NewInt(70), k.BalanceOf(ctx, alice.Bytes))
	assert.Equal(t, math.NewInt(30), k.BalanceOf(ctx, charlie.Bytes))

	// ASSERT: Spending beyond the remainder fails.
	_, err = server.TransferFrom(ctx, &types.MsgTransferFrom{
		Spender:   bob.Address,
		Owner:     alice.Address,
		Recipient: charlie.Address,
		Amount:    math.NewInt(21),
	})
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)
}

func TestMsgTransfer(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	server := keeper.NewMsgServer(k)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	require.NoError(t, k.Mint(ctx, alice.Bytes, math.NewInt(100), nil))

	// ASSERT: Malformed addresses are rejected before any state change.
	_, err := server.Transfer(ctx, &types.MsgTransfer{
		Sender:    "not-an-address",
		Recipient: bob.Address,
		Amount:    math.NewInt(10),
	})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = server.Transfer(ctx, &types.MsgTransfer{
		Sender:    alice.Address,
		Recipient: bob.Address,
		Amount:    math.NewInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(10), k.BalanceOf(ctx, bob.Bytes))
}

// TestSharesConservation drives a random mix of mints, transfers, burns and
// rebases and checks that account shares always sum to the recorded total.
func TestSharesConservation(t *testing.T) {
	k, ctx := mocks.USDRKeeper(t)
	rng := rand.New(rand.NewSource(42))

	accounts := make([]utils.Account, 8)
	for i := range accounts {
		accounts[i] = utils.TestAccount()
	}

	for i := 0; i < 500; i++ {
		from := accounts[rng.Intn(len(accounts))]
		to := accounts[rng.Intn(len(accounts))]
		amount := math.NewInt(rng.Int63n(100) + 1)

		switch rng.Intn(4) {
		case 0:
			require.NoError(t, k.Mint(ctx, from.Bytes, amount, nil))
		case 1:
			if k.BalanceOf(ctx, from.Bytes).GTE(amount) {
				require.NoError(t, k.Burn(ctx, from.Bytes, amount))
			}
		case 2:
			if k.BalanceOf(ctx, from.Bytes).GTE(amount) {
				require.NoError(t, k.Transfer(ctx, from.Bytes, to.Bytes, amount))
			}
		case 3:
			if err := k.Rebase(ctx, amount, rng.Intn(2) == 0); err != nil {
				require.ErrorIs(t, err, types.ErrInvalidAmount)
			}
		}

		sum := math.ZeroInt()
		require.NoError(t, k.IterateShares(ctx, func(_ []byte, shares math.Int) bool {
			sum = sum.Add(shares)
			return false
		}))
		require.Equal(t, k.GetTotalShares(ctx), sum, "shares diverged from total after op %d", i)
	}
}
