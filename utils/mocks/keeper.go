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

package mocks

import (
	"testing"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"usdr.arcline.xyz/keeper"
	"usdr.arcline.xyz/types"
)

// Authority is the governance address wired into test keepers.
const Authority = "authority"

// USDRKeeper builds a keeper with fresh mocks on the default local chain.
func USDRKeeper(t *testing.T) (*keeper.Keeper, sdk.Context) {
	bank := BankKeeper{Balances: make(map[string]sdk.Coins)}
	k, ctx := USDRKeeperWithKeepers(t, bank, NewTransport(), 1)
	return k, ctx
}

// USDRKeeperWithKeepers builds a keeper against an in-memory store with the
// provided collaborators, for tests that need to drive or fail them.
func USDRKeeperWithKeepers(t *testing.T, bank types.BankKeeper, transport types.TransportKeeper, chainId uint32) (*keeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_usdr")
	testCtx := testutil.DefaultContextWithDB(t, key, tkey)

	k := keeper.NewKeeper(
		"uusdr",
		"uusdc",
		Authority,
		chainId,
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		HeaderService{},
		EventService{},
		address.NewBech32Codec("arc"),
		bank,
		transport,
	)

	return k, testCtx.Ctx
}
