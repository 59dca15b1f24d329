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

package types

import (
	"context"

	"cosmossdk.io/math"
)

type MsgTransfer struct {
	Sender    string
	Recipient string
	Amount    math.Int
}

type MsgTransferResponse struct{}

type MsgApprove struct {
	Owner   string
	Spender string
	Amount  math.Int
}

type MsgApproveResponse struct{}

type MsgTransferFrom struct {
	Spender   string
	Owner     string
	Recipient string
	Amount    math.Int
}

type MsgTransferFromResponse struct{}

type MsgServer interface {
	Transfer(ctx context.Context, msg *MsgTransfer) (*MsgTransferResponse, error)
	Approve(ctx context.Context, msg *MsgApprove) (*MsgApproveResponse, error)
	TransferFrom(ctx context.Context, msg *MsgTransferFrom) (*MsgTransferFromResponse, error)
}

type QueryBalanceRequest struct {
	Account string
}

type QueryBalanceResponse struct {
	Balance math.Int
	Shares  math.Int
	Rate    int64
}

type QueryAllowanceRequest struct {
	Owner   string
	Spender string
}

type QueryAllowanceResponse struct {
	Allowance math.Int
}

type QuerySupplyRequest struct{}

type QuerySupplyResponse struct {
	TotalSupply math.Int
	TotalShares math.Int
}

type QueryServer interface {
	Balance(ctx context.Context, req *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Allowance(ctx context.Context, req *QueryAllowanceRequest) (*QueryAllowanceResponse, error)
	Supply(ctx context.Context, req *QuerySupplyRequest) (*QuerySupplyResponse, error)
}
