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

	"usdr.arcline.xyz/types/bridge"
)

func (k *Keeper) GetBridgePaused(ctx context.Context) bool {
	paused, err := k.BridgePaused.Get(ctx)
	if err != nil {
		return false
	}
	return paused
}

func (k *Keeper) SetBridgePaused(ctx context.Context, paused bool) error {
	return k.BridgePaused.Set(ctx, paused)
}

func (k *Keeper) GetBridgeFeeRecipient(ctx context.Context) string {
	recipient, err := k.BridgeFeeRecipient.Get(ctx)
	if err != nil {
		return ""
	}
	return recipient
}

func (k *Keeper) SetBridgeFeeRecipient(ctx context.Context, recipient string) error {
	return k.BridgeFeeRecipient.Set(ctx, recipient)
}

func (k *Keeper) GetChain(ctx context.Context, chainId uint32) (bridge.Chain, bool) {
	chain, err := k.Chains.Get(ctx, chainId)
	if err != nil {
		return bridge.Chain{}, false
	}
	return chain, true
}

func (k *Keeper) SetChain(ctx context.Context, chainId uint32, chain bridge.Chain) error {
	return k.Chains.Set(ctx, chainId, chain)
}

func (k *Keeper) RemoveChain(ctx context.Context, chainId uint32) error {
	if err := k.Chains.Remove(ctx, chainId); err != nil {
		return err
	}
	if err := k.OutboundBuckets.Remove(ctx, chainId); err != nil {
		return err
	}
	return k.InboundBuckets.Remove(ctx, chainId)
}

func (k *Keeper) GetOutboundBucket(ctx context.Context, chainId uint32) (bridge.RateLimitBucket, bool) {
	bucket, err := k.OutboundBuckets.Get(ctx, chainId)
	if err != nil {
		return bridge.RateLimitBucket{}, false
	}
	return bucket, true
}

func (k *Keeper) SetOutboundBucket(ctx context.Context, chainId uint32, bucket bridge.RateLimitBucket) error {
	return k.OutboundBuckets.Set(ctx, chainId, bucket)
}

func (k *Keeper) GetInboundBucket(ctx context.Context, chainId uint32) (bridge.RateLimitBucket, bool) {
	bucket, err := k.InboundBuckets.Get(ctx, chainId)
	if err != nil {
		return bridge.RateLimitBucket{}, false
	}
	return bucket, true
}

func (k *Keeper) SetInboundBucket(ctx context.Context, chainId uint32, bucket bridge.RateLimitBucket) error {
	return k.InboundBuckets.Set(ctx, chainId, bucket)
}

// NextNonce increments and returns the bridge message nonce.
func (k *Keeper) NextNonce(ctx context.Context) (uint64, error) {
	nonce, err := k.BridgeNonce.Get(ctx)
	if err != nil {
		nonce = 0
	}

	nonce += 1
	if err := k.BridgeNonce.Set(ctx, nonce); err != nil {
		return 0, err
	}

	return nonce, nil
}
