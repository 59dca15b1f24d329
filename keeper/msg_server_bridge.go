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
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"

	"usdr.arcline.xyz/types"
	"usdr.arcline.xyz/types/bridge"
)

var _ bridge.MsgServer = &bridgeMsgServer{}

type bridgeMsgServer struct {
	*Keeper
}

func NewBridgeMsgServer(keeper *Keeper) bridge.MsgServer {
	return &bridgeMsgServer{Keeper: keeper}
}

func (k bridgeMsgServer) SendTokensCrossChain(ctx context.Context, msg *bridge.MsgSendTokensCrossChain) (*bridge.MsgSendTokensCrossChainResponse, error) {
	sender, err := k.address.StringToBytes(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode sender address %s", msg.Sender)
	}

	messageId, net, fee, err := k.SendTokens(ctx, sender, msg.DestinationChain, msg.Recipient, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &bridge.MsgSendTokensCrossChainResponse{
		MessageId: messageId,
		NetAmount: net,
		Fee:       fee,
	}, nil
}

func (k bridgeMsgServer) SetChainConfig(ctx context.Context, msg *bridge.MsgSetChainConfig) (*bridge.MsgSetChainConfigResponse, error) {
	if err := k.checkBridgeAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if msg.ChainId == k.chainId {
		return nil, errors.Wrap(types.ErrInvalidRequest, "cannot register the local chain")
	}

	config := msg.Config
	if config.FeeBps < 0 || config.FeeBps > BasisPointsDivisor {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "fee %d out of range", config.FeeBps)
	}
	if config.PerSendCap.IsNil() || config.BucketCapacity.IsNil() || config.RefillRatePerSecond.IsNil() || config.DailyLimit.IsNil() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "limits cannot be nil")
	}
	if config.PerSendCap.IsNegative() || config.BucketCapacity.IsNegative() || config.RefillRatePerSecond.IsNegative() || config.DailyLimit.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "limits cannot be negative")
	}
	if len(config.Gateway) > 32 {
		return nil, errors.Wrap(types.ErrInvalidRequest, "gateway address exceeds 32 bytes")
	}
	if len(config.Gateway) > 0 {
		config.Gateway = bridge.PadAddress(config.Gateway)
	}

	if err := k.SetChain(ctx, msg.ChainId, config); err != nil {
		return nil, err
	}

	// Both directions start with full buckets.
	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	if err := k.SetOutboundBucket(ctx, msg.ChainId, NewBucket(config, now)); err != nil {
		return nil, err
	}
	if err := k.SetInboundBucket(ctx, msg.ChainId, NewBucket(config, now)); err != nil {
		return nil, err
	}

	err := k.event.EventManager(ctx).EmitKV(
		ctx,
		bridge.EventTypeChainConfigSet,
		event.Attribute{Key: bridge.AttributeKeyChainId, Value: strconv.FormatUint(uint64(msg.ChainId), 10)},
	)
	if err != nil {
		return nil, err
	}

	return &bridge.MsgSetChainConfigResponse{}, nil
}

func (k bridgeMsgServer) RemoveChainConfig(ctx context.Context, msg *bridge.MsgRemoveChainConfig) (*bridge.MsgRemoveChainConfigResponse, error) {
	if err := k.checkBridgeAuthority(msg.Authority); err != nil {
		return nil, err
	}

	if _, found := k.GetChain(ctx, msg.ChainId); !found {
		return nil, errors.Wrapf(bridge.ErrChainNotAllowlisted, "chain %d", msg.ChainId)
	}

	if err := k.RemoveChain(ctx, msg.ChainId); err != nil {
		return nil, err
	}

	return &bridge.MsgRemoveChainConfigResponse{}, nil
}

func (k bridgeMsgServer) SetFeeRecipient(ctx context.Context, msg *bridge.MsgSetFeeRecipient) (*bridge.MsgSetFeeRecipientResponse, error) {
	if err := k.checkBridgeAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if _, err := k.address.StringToBytes(msg.FeeRecipient); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode fee recipient %s", msg.FeeRecipient)
	}

	if err := k.SetBridgeFeeRecipient(ctx, msg.FeeRecipient); err != nil {
		return nil, err
	}

	return &bridge.MsgSetFeeRecipientResponse{}, nil
}

func (k bridgeMsgServer) Pause(ctx context.Context, msg *bridge.MsgPause) (*bridge.MsgPauseResponse, error) {
	if err := k.setBridgePaused(ctx, msg.Authority, true); err != nil {
		return nil, err
	}
	return &bridge.MsgPauseResponse{}, nil
}

func (k bridgeMsgServer) Unpause(ctx context.Context, msg *bridge.MsgUnpause) (*bridge.MsgUnpauseResponse, error) {
	if err := k.setBridgePaused(ctx, msg.Authority, false); err != nil {
		return nil, err
	}
	return &bridge.MsgUnpauseResponse{}, nil
}

func (k *Keeper) checkBridgeAuthority(authority string) error {
	if authority != k.authority {
		return errors.Wrapf(bridge.ErrInvalidAuthority, "expected %s, got %s", k.authority, authority)
	}
	return nil
}

func (k *Keeper) setBridgePaused(ctx context.Context, authority string, paused bool) error {
	if err := k.checkBridgeAuthority(authority); err != nil {
		return err
	}

	if err := k.SetBridgePaused(ctx, paused); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		bridge.EventTypePauseChanged,
		event.Attribute{Key: bridge.AttributeKeyPaused, Value: strconv.FormatBool(paused)},
	)
}
