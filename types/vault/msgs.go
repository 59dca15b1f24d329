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

package vault

import (
	"context"

	"cosmossdk.io/math"
)

type MsgDeposit struct {
	Depositor string
	Amount    math.Int
}

type MsgDepositResponse struct {
	AmountDeposited math.Int
	Rate            int64
}

type MsgWithdraw struct {
	Withdrawer string
	Amount     math.Int
}

type MsgWithdrawResponse struct {
	Payout math.Int
}

type MsgRedeem struct {
	Withdrawer string
	Amount     math.Int
	MinOut     math.Int
}

type MsgRedeemResponse struct {
	Payout math.Int
}

// MsgPerformUpkeep is the external scheduler's tick. Any caller may submit
// it; accrual only happens when due.
type MsgPerformUpkeep struct {
	Caller string
}

type MsgPerformUpkeepResponse struct {
	Performed bool
	Interest  math.Int
}

type MsgSetFeeConfig struct {
	Authority    string
	FeeBps       int64
	FeeRecipient string
}

type MsgSetFeeConfigResponse struct{}

type MsgSetAccrualConfig struct {
	Authority                 string
	BaseInterestRate          int64
	RateDecrementPerThreshold int64
	DecrementThreshold        math.Int
	MinimumRate               int64
	AccrualPeriod             int64
	DailyAccrualCapBps        int64
}

type MsgSetAccrualConfigResponse struct{}

type MsgSetDepositCaps struct {
	Authority  string
	MinDeposit math.Int
	MaxPerUser math.Int
	MaxTotal   math.Int
}

type MsgSetDepositCapsResponse struct{}

type MsgSetAllowlistStatus struct {
	Authority string
	Enabled   bool
}

type MsgSetAllowlistStatusResponse struct{}

type MsgSetAllowlisted struct {
	Authority string
	Account   string
	Allowed   bool
}

type MsgSetAllowlistedResponse struct{}

type MsgPauseDeposits struct {
	Authority string
}

type MsgPauseDepositsResponse struct{}

type MsgUnpauseDeposits struct {
	Authority string
}

type MsgUnpauseDepositsResponse struct{}

type MsgPauseRedeems struct {
	Authority string
}

type MsgPauseRedeemsResponse struct{}

type MsgUnpauseRedeems struct {
	Authority string
}

type MsgUnpauseRedeemsResponse struct{}

type MsgPauseAll struct {
	Authority string
}

type MsgPauseAllResponse struct{}

type MsgUnpauseAll struct {
	Authority string
}

type MsgUnpauseAllResponse struct{}

// MsgRescueFunds sweeps stray assets out of the module account. The vault's
// underlying denom is never sweepable; that would drain the backing.
type MsgRescueFunds struct {
	Authority string
	Denom     string
	Recipient string
}

type MsgRescueFundsResponse struct {
	AmountRescued math.Int
}

type MsgServer interface {
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	Redeem(ctx context.Context, msg *MsgRedeem) (*MsgRedeemResponse, error)
	PerformUpkeep(ctx context.Context, msg *MsgPerformUpkeep) (*MsgPerformUpkeepResponse, error)
	SetFeeConfig(ctx context.Context, msg *MsgSetFeeConfig) (*MsgSetFeeConfigResponse, error)
	SetAccrualConfig(ctx context.Context, msg *MsgSetAccrualConfig) (*MsgSetAccrualConfigResponse, error)
	SetDepositCaps(ctx context.Context, msg *MsgSetDepositCaps) (*MsgSetDepositCapsResponse, error)
	SetAllowlistStatus(ctx context.Context, msg *MsgSetAllowlistStatus) (*MsgSetAllowlistStatusResponse, error)
	SetAllowlisted(ctx context.Context, msg *MsgSetAllowlisted) (*MsgSetAllowlistedResponse, error)
	PauseDeposits(ctx context.Context, msg *MsgPauseDeposits) (*MsgPauseDepositsResponse, error)
	UnpauseDeposits(ctx context.Context, msg *MsgUnpauseDeposits) (*MsgUnpauseDepositsResponse, error)
	PauseRedeems(ctx context.Context, msg *MsgPauseRedeems) (*MsgPauseRedeemsResponse, error)
	UnpauseRedeems(ctx context.Context, msg *MsgUnpauseRedeems) (*MsgUnpauseRedeemsResponse, error)
	PauseAll(ctx context.Context, msg *MsgPauseAll) (*MsgPauseAllResponse, error)
	UnpauseAll(ctx context.Context, msg *MsgUnpauseAll) (*MsgUnpauseAllResponse, error)
	RescueFunds(ctx context.Context, msg *MsgRescueFunds) (*MsgRescueFundsResponse, error)
}

type QueryPreviewDepositRequest struct {
	Amount math.Int
}

type QueryPreviewDepositResponse struct {
	Minted math.Int
	Rate   int64
}

type QueryPreviewRedeemRequest struct {
	Amount math.Int
}

type QueryPreviewRedeemResponse struct {
	Payout math.Int
}

type QueryEstimateInterestRequest struct{}

type QueryEstimateInterestResponse struct {
	Interest math.Int
	Fee      math.Int
	Clamped  bool
}

type QueryUserInfoRequest struct {
	Account string
}

type QueryUserInfoResponse struct {
	Info UserInfo
}

type QueryAccrualPeriodRequest struct{}

type QueryAccrualPeriodResponse struct {
	AccrualPeriod int64
	NextAccrual   int64
}

type QueryStatsRequest struct{}

type QueryStatsResponse struct {
	Stats Stats
}

type QueryServer interface {
	PreviewDeposit(ctx context.Context, req *QueryPreviewDepositRequest) (*QueryPreviewDepositResponse, error)
	PreviewRedeem(ctx context.Context, req *QueryPreviewRedeemRequest) (*QueryPreviewRedeemResponse, error)
	EstimateInterest(ctx context.Context, req *QueryEstimateInterestRequest) (*QueryEstimateInterestResponse, error)
	UserInfo(ctx context.Context, req *QueryUserInfoRequest) (*QueryUserInfoResponse, error)
	AccrualPeriod(ctx context.Context, req *QueryAccrualPeriodRequest) (*QueryAccrualPeriodResponse, error)
	Stats(ctx context.Context, req *QueryStatsRequest) (*QueryStatsResponse, error)
}
