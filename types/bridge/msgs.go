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

package bridge

import (
	"context"

	"cosmossdk.io/math"
)

type MsgSendTokensCrossChain struct {
	Sender           string
	DestinationChain uint32
	Recipient        []byte // recipient on the destination chain, up to 32 bytes
	Amount           math.Int
}

type MsgSendTokensCrossChainResponse struct {
	MessageId []byte
	NetAmount math.Int
	Fee       math.Int
}

type MsgSetChainConfig struct {
	Authority string
	ChainId   uint32
	Config    Chain
}

type MsgSetChainConfigResponse struct{}

type MsgRemoveChainConfig struct {
	Authority string
	ChainId   uint32
}

type MsgRemoveChainConfigResponse struct{}

type MsgSetFeeRecipient struct {
	Authority    string
	FeeRecipient string
}

type MsgSetFeeRecipientResponse struct{}

type MsgPause struct {
	Authority string
}

type MsgPauseResponse struct{}

type MsgUnpause struct {
	Authority string
}

type MsgUnpauseResponse struct{}

type MsgServer interface {
	SendTokensCrossChain(ctx context.Context, msg *MsgSendTokensCrossChain) (*MsgSendTokensCrossChainResponse, error)
	SetChainConfig(ctx context.Context, msg *MsgSetChainConfig) (*MsgSetChainConfigResponse, error)
	RemoveChainConfig(ctx context.Context, msg *MsgRemoveChainConfig) (*MsgRemoveChainConfigResponse, error)
	SetFeeRecipient(ctx context.Context, msg *MsgSetFeeRecipient) (*MsgSetFeeRecipientResponse, error)
	Pause(ctx context.Context, msg *MsgPause) (*MsgPauseResponse, error)
	Unpause(ctx context.Context, msg *MsgUnpause) (*MsgUnpauseResponse, error)
}

type QueryChainRequest struct {
	ChainId uint32
}

type QueryChainResponse struct {
	Config         Chain
	OutboundBucket RateLimitBucket
	InboundBucket  RateLimitBucket
}

type QueryServer interface {
	Chain(ctx context.Context, req *QueryChainRequest) (*QueryChainResponse, error)
}
