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
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (k msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	from, err := k.address.StringToBytes(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode sender address %s", msg.Sender)
	}
	to, err := k.address.StringToBytes(msg.Recipient)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode recipient address %s", msg.Recipient)
	}

	if err := k.Keeper.Transfer(ctx, from, to, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgTransferResponse{}, nil
}

func (k msgServer) Approve(ctx context.Context, msg *types.MsgApprove) (*types.MsgApproveResponse, error) {
	owner, err := k.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode owner address %s", msg.Owner)
	}
	spender, err := k.address.StringToBytes(msg.Spender)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode spender address %s", msg.Spender)
	}

	if err := k.Keeper.Approve(ctx, owner, spender, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgApproveResponse{}, nil
}

func (k msgServer) TransferFrom(ctx context.Context, msg *types.MsgTransferFrom) (*types.MsgTransferFromResponse, error) {
	spender, err := k.address.StringToBytes(msg.Spender)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode spender address %s", msg.Spender)
	}
	owner, err := k.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode owner address %s", msg.Owner)
	}
	to, err := k.address.StringToBytes(msg.Recipient)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode recipient address %s", msg.Recipient)
	}

	if err := k.Keeper.TransferFrom(ctx, spender, owner, to, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgTransferFromResponse{}, nil
}
