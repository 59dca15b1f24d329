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

	"cosmossdk.io/errors"

	"usdr.arcline.xyz/types"
	"usdr.arcline.xyz/types/bridge"
	"usdr.arcline.xyz/types/vault"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (k queryServer) Balance(ctx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	account, err := k.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode account address %s", req.Account)
	}

	return &types.QueryBalanceResponse{
		Balance: k.BalanceOf(ctx, account),
		Shares:  k.GetShares(ctx, account),
		Rate:    k.GetRate(ctx, account),
	}, nil
}

func (k queryServer) Allowance(ctx context.Context, req *types.QueryAllowanceRequest) (*types.QueryAllowanceResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	owner, err := k.address.StringToBytes(req.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode owner address %s", req.Owner)
	}
	spender, err := k.address.StringToBytes(req.Spender)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode spender address %s", req.Spender)
	}

	return &types.QueryAllowanceResponse{
		Allowance: k.GetAllowance(ctx, owner, spender),
	}, nil
}

func (k queryServer) Supply(ctx context.Context, req *types.QuerySupplyRequest) (*types.QuerySupplyResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	return &types.QuerySupplyResponse{
		TotalSupply: k.GetTotalSupply(ctx),
		TotalShares: k.GetTotalShares(ctx),
	}, nil
}

var _ vault.QueryServer = &vaultQueryServer{}

type vaultQueryServer struct {
	*Keeper
}

func NewVaultQueryServer(keeper *Keeper) vault.QueryServer {
	return &vaultQueryServer{Keeper: keeper}
}

func (k vaultQueryServer) PreviewDeposit(ctx context.Context, req *vault.QueryPreviewDepositRequest) (*vault.QueryPreviewDepositResponse, error) {
	if req == nil || req.Amount.IsNil() || req.Amount.IsNegative() {
		return nil, types.ErrInvalidRequest
	}

	return &vault.QueryPreviewDepositResponse{
		Minted: req.Amount,
		Rate:   k.CurrentRate(ctx),
	}, nil
}

func (k vaultQueryServer) PreviewRedeem(ctx context.Context, req *vault.QueryPreviewRedeemRequest) (*vault.QueryPreviewRedeemResponse, error) {
	if req == nil || req.Amount.IsNil() || req.Amount.IsNegative() {
		return nil, types.ErrInvalidRequest
	}

	return &vault.QueryPreviewRedeemResponse{Payout: req.Amount}, nil
}

func (k vaultQueryServer) EstimateInterest(ctx context.Context, req *vault.QueryEstimateInterestRequest) (*vault.QueryEstimateInterestResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	interest, fee, clamped := k.Keeper.EstimateInterest(ctx)
	return &vault.QueryEstimateInterestResponse{
		Interest: interest,
		Fee:      fee,
		Clamped:  clamped,
	}, nil
}

func (k vaultQueryServer) UserInfo(ctx context.Context, req *vault.QueryUserInfoRequest) (*vault.QueryUserInfoResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	account, err := k.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode account address %s", req.Account)
	}

	return &vault.QueryUserInfoResponse{Info: k.GetUserInfo(ctx, account)}, nil
}

func (k vaultQueryServer) AccrualPeriod(ctx context.Context, req *vault.QueryAccrualPeriodRequest) (*vault.QueryAccrualPeriodResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	config := k.GetVaultConfig(ctx)
	return &vault.QueryAccrualPeriodResponse{
		AccrualPeriod: config.AccrualPeriod,
		NextAccrual:   k.GetLastAccrualTime(ctx) + config.AccrualPeriod,
	}, nil
}

func (k vaultQueryServer) Stats(ctx context.Context, req *vault.QueryStatsRequest) (*vault.QueryStatsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	config := k.GetVaultConfig(ctx)
	return &vault.QueryStatsResponse{
		Stats: vault.Stats{
			TotalDeposited:  k.GetTotalDeposited(ctx),
			TotalShares:     k.GetTotalShares(ctx),
			TotalSupply:     k.GetTotalSupply(ctx),
			CurrentRate:     k.CurrentRate(ctx),
			LastAccrualTime: k.GetLastAccrualTime(ctx),
			DepositsPaused:  config.DepositsPaused,
			RedeemsPaused:   config.RedeemsPaused,
		},
	}, nil
}

var _ bridge.QueryServer = &bridgeQueryServer{}

type bridgeQueryServer struct {
	*Keeper
}

func NewBridgeQueryServer(keeper *Keeper) bridge.QueryServer {
	return &bridgeQueryServer{Keeper: keeper}
}

func (k bridgeQueryServer) Chain(ctx context.Context, req *bridge.QueryChainRequest) (*bridge.QueryChainResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	config, found := k.GetChain(ctx, req.ChainId)
	if !found {
		return nil, errors.Wrapf(bridge.ErrChainNotAllowlisted, "chain %d", req.ChainId)
	}

	outbound, _ := k.GetOutboundBucket(ctx, req.ChainId)
	inbound, _ := k.GetInboundBucket(ctx, req.ChainId)

	return &bridge.QueryChainResponse{
		Config:         config,
		OutboundBucket: outbound,
		InboundBucket:  inbound,
	}, nil
}
