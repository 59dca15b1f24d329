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
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"usdr.arcline.xyz/types"
	"usdr.arcline.xyz/types/bridge"
	"usdr.arcline.xyz/types/vault"
)

type Keeper struct {
	denom           string
	underlyingDenom string
	authority       string
	chainId         uint32

	store store.KVStoreService

	logger    log.Logger
	header    header.Service
	event     event.Service
	address   address.Codec
	bank      types.BankKeeper
	transport types.TransportKeeper

	// Re-entry guards for entrypoints that hand control to collaborators
	// (asset transfer on withdrawal, message submission on bridging).
	// Execution is serialized per call, so plain flags are sufficient.
	guards map[string]bool

	TotalShares collections.Item[math.Int]
	TotalSupply collections.Item[math.Int]
	Shares      collections.Map[[]byte, math.Int]
	Rates       collections.Map[[]byte, int64]
	Allowances  collections.Map[collections.Pair[[]byte, []byte], math.Int]

	VaultConfig     collections.Item[vault.Config]
	UserInfos       collections.Map[[]byte, vault.UserInfo]
	TotalDeposited  collections.Item[math.Int]
	LastAccrualTime collections.Item[int64]
	Allowlist       collections.Map[[]byte, bool]

	BridgePaused       collections.Item[bool]
	BridgeFeeRecipient collections.Item[string]
	BridgeNonce        collections.Item[uint64]
	Chains             collections.Map[uint32, bridge.Chain]
	OutboundBuckets    collections.Map[uint32, bridge.RateLimitBucket]
	InboundBuckets     collections.Map[uint32, bridge.RateLimitBucket]
}

func NewKeeper(
	denom string,
	underlyingDenom string,
	authority string,
	chainId uint32,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	bank types.BankKeeper,
	transport types.TransportKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom:           denom,
		underlyingDenom: underlyingDenom,
		authority:       authority,
		chainId:         chainId,

		store: store,

		logger:    logger.With("module", types.ModuleName),
		header:    header,
		event:     event,
		address:   address,
		bank:      bank,
		transport: transport,

		guards: make(map[string]bool),

		TotalShares: collections.NewItem(builder, types.TotalSharesKey, "total_shares", sdk.IntValue),
		TotalSupply: collections.NewItem(builder, types.TotalSupplyKey, "total_supply", sdk.IntValue),
		Shares:      collections.NewMap(builder, types.SharesPrefix, "shares", collections.BytesKey, sdk.IntValue),
		Rates:       collections.NewMap(builder, types.RatePrefix, "rates", collections.BytesKey, collections.Int64Value),
		Allowances:  collections.NewMap(builder, types.AllowancePrefix, "allowances", collections.PairKeyCodec(collections.BytesKey, collections.BytesKey), sdk.IntValue),

		VaultConfig:     collections.NewItem(builder, vault.ConfigKey, "vault_config", types.JSONValue[vault.Config]("vault.Config")),
		UserInfos:       collections.NewMap(builder, vault.UserInfoPrefix, "vault_user_infos", collections.BytesKey, types.JSONValue[vault.UserInfo]("vault.UserInfo")),
		TotalDeposited:  collections.NewItem(builder, vault.TotalDepositedKey, "vault_total_deposited", sdk.IntValue),
		LastAccrualTime: collections.NewItem(builder, vault.LastAccrualTimeKey, "vault_last_accrual_time", collections.Int64Value),
		Allowlist:       collections.NewMap(builder, vault.AllowlistPrefix, "vault_allowlist", collections.BytesKey, collections.BoolValue),

		BridgePaused:       collections.NewItem(builder, bridge.PausedKey, "bridge_paused", collections.BoolValue),
		BridgeFeeRecipient: collections.NewItem(builder, bridge.FeeRecipientKey, "bridge_fee_recipient", collections.StringValue),
		BridgeNonce:        collections.NewItem(builder, bridge.NonceKey, "bridge_nonce", collections.Uint64Value),
		Chains:             collections.NewMap(builder, bridge.ChainPrefix, "bridge_chains", collections.Uint32Key, types.JSONValue[bridge.Chain]("bridge.Chain")),
		OutboundBuckets:    collections.NewMap(builder, bridge.OutboundBucketPrefix, "bridge_outbound_buckets", collections.Uint32Key, types.JSONValue[bridge.RateLimitBucket]("bridge.RateLimitBucket")),
		InboundBuckets:     collections.NewMap(builder, bridge.InboundBucketPrefix, "bridge_inbound_buckets", collections.Uint32Key, types.JSONValue[bridge.RateLimitBucket]("bridge.RateLimitBucket")),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bank types.BankKeeper) {
	k.bank = bank
}

// SetTransportKeeper overwrites the message transport used by the bridge.
func (k *Keeper) SetTransportKeeper(transport types.TransportKeeper) {
	k.transport = transport
}

// GetDenom is a utility that returns the configured denomination of the
// rebasing token.
func (k *Keeper) GetDenom() string {
	return k.denom
}

// GetUnderlyingDenom returns the denom of the asset backing the vault.
func (k *Keeper) GetUnderlyingDenom() string {
	return k.underlyingDenom
}

// GetAuthority returns the module's governance authority address.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetChainId returns the local chain identifier used in bridge messages.
func (k *Keeper) GetChainId() uint32 {
	return k.chainId
}

// enterGuard marks a protected entrypoint as executing. A second entry while
// the flag is held is a re-entrant call and is rejected.
func (k *Keeper) enterGuard(name string) error {
	if k.guards[name] {
		return bridge.ErrReentrantCall
	}
	k.guards[name] = true
	return nil
}

func (k *Keeper) exitGuard(name string) {
	delete(k.guards, name)
}
