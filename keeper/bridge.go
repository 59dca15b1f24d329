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
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"usdr.arcline.xyz/types"
	"usdr.arcline.xyz/types/bridge"
)

// refillBucket advances a throttle bucket to the given time: tokens grow by
// elapsed*refillRate up to capacity, and the daily counter resets when the
// calendar day rolls over.
func refillBucket(bucket bridge.RateLimitBucket, chain bridge.Chain, now int64) bridge.RateLimitBucket {
	if elapsed := now - bucket.LastRefillTimestamp; elapsed > 0 {
		refill := chain.RefillRatePerSecond.MulRaw(elapsed)
		bucket.TokensAvailable = bucket.TokensAvailable.Add(refill)
		if bucket.TokensAvailable.GT(chain.BucketCapacity) {
			bucket.TokensAvailable = chain.BucketCapacity
		}
	}
	bucket.LastRefillTimestamp = now

	if day := bridge.DayId(now); day != bucket.DayId {
		bucket.DayId = day
		bucket.DailySent = math.ZeroInt()
	}

	return bucket
}

// consumeFromBucket charges an amount against a refilled bucket, enforcing
// the smoothing limit first and the calendar-day ceiling second.
func consumeFromBucket(bucket bridge.RateLimitBucket, chain bridge.Chain, amount math.Int, now int64) (bridge.RateLimitBucket, error) {
	bucket = refillBucket(bucket, chain, now)

	if bucket.TokensAvailable.LT(amount) {
		return bucket, errors.Wrapf(bridge.ErrRateLimitExceeded, "available %s, requested %s", bucket.TokensAvailable, amount)
	}
	if chain.DailyLimit.IsPositive() && bucket.DailySent.Add(amount).GT(chain.DailyLimit) {
		return bucket, errors.Wrapf(bridge.ErrDailyLimitExceeded, "sent %s today, limit %s", bucket.DailySent, chain.DailyLimit)
	}

	bucket.TokensAvailable = bucket.TokensAvailable.Sub(amount)
	bucket.DailySent = bucket.DailySent.Add(amount)
	return bucket, nil
}

// NewBucket returns a full throttle bucket for a freshly configured chain.
func NewBucket(chain bridge.Chain, now int64) bridge.RateLimitBucket {
	return bridge.RateLimitBucket{
		TokensAvailable:     chain.BucketCapacity,
		LastRefillTimestamp: now,
		DailySent:           math.ZeroInt(),
		DayId:               bridge.DayId(now),
	}
}

// SendTokens burns the sender's balance and hands an encoded token payload to
// the external transport. The burn happens before submission; a transfer in
// flight is out of this module's hands until the remote side mints.
func (k *Keeper) SendTokens(ctx context.Context, sender []byte, destinationChain uint32, recipient []byte, amount math.Int) ([]byte, math.Int, math.Int, error) {
	zero := math.ZeroInt()

	if err := k.enterGuard("bridge/send"); err != nil {
		return nil, zero, zero, err
	}
	defer k.exitGuard("bridge/send")

	if k.GetBridgePaused(ctx) {
		return nil, zero, zero, bridge.ErrPaused
	}
	if amount.IsNil() || !amount.IsPositive() {
		return nil, zero, zero, errors.Wrap(types.ErrInvalidAmount, "bridge amount must be positive")
	}
	if len(recipient) == 0 || len(recipient) > 32 {
		return nil, zero, zero, errors.Wrap(types.ErrInvalidRequest, "recipient must be between 1 and 32 bytes")
	}

	chain, found := k.GetChain(ctx, destinationChain)
	if !found || !chain.Allowlisted {
		return nil, zero, zero, errors.Wrapf(bridge.ErrChainNotAllowlisted, "chain %d", destinationChain)
	}
	if len(chain.Gateway) == 0 {
		return nil, zero, zero, errors.Wrapf(bridge.ErrReceiverNotSet, "chain %d", destinationChain)
	}
	if chain.PerSendCap.IsPositive() && amount.GT(chain.PerSendCap) {
		return nil, zero, zero, errors.Wrapf(bridge.ErrAmountExceedsCap, "cap %s, sending %s", chain.PerSendCap, amount)
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	bucket, found := k.GetOutboundBucket(ctx, destinationChain)
	if !found {
		bucket = NewBucket(chain, now)
	}
	bucket, err := consumeFromBucket(bucket, chain, amount, now)
	if err != nil {
		return nil, zero, zero, err
	}
	if err := k.SetOutboundBucket(ctx, destinationChain, bucket); err != nil {
		return nil, zero, zero, err
	}

	fee := amount.MulRaw(chain.FeeBps).QuoRaw(BasisPointsDivisor)
	net := amount.Sub(fee)

	if err := k.Burn(ctx, sender, amount); err != nil {
		return nil, zero, zero, err
	}

	if fee.IsPositive() {
		feeRecipient, err := k.address.StringToBytes(k.GetBridgeFeeRecipient(ctx))
		if err != nil {
			return nil, zero, zero, errors.Wrap(types.ErrInvalidRequest, "bridge fee recipient not configured")
		}
		if err := k.Mint(ctx, feeRecipient, fee, nil); err != nil {
			return nil, zero, zero, err
		}
	}

	nonce, err := k.NextNonce(ctx)
	if err != nil {
		return nil, zero, zero, err
	}

	payload, err := bridge.EncodeTokenPayload(bridge.TokenPayload{
		SourceChain: k.chainId,
		DestChain:   destinationChain,
		Sender:      sender,
		Recipient:   recipient,
		NetAmount:   net,
		Fee:         fee,
		Nonce:       nonce,
	})
	if err != nil {
		return nil, zero, zero, errors.Wrap(bridge.ErrInvalidMessage, err.Error())
	}

	// Submission is the last step, after every state effect has landed.
	if _, err := k.transport.SubmitMessage(ctx, destinationChain, payload); err != nil {
		return nil, zero, zero, errors.Wrap(err, "unable to submit bridge message")
	}

	messageId := bridge.MessageID(payload)

	err = k.event.EventManager(ctx).EmitKV(
		ctx,
		bridge.EventTypeTokensSent,
		event.Attribute{Key: bridge.AttributeKeySender, Value: k.encodeAddress(sender)},
		event.Attribute{Key: bridge.AttributeKeyDestChain, Value: fmt.Sprint(destinationChain)},
		event.Attribute{Key: bridge.AttributeKeyAmount, Value: amount.String()},
		event.Attribute{Key: bridge.AttributeKeyNetAmount, Value: net.String()},
		event.Attribute{Key: bridge.AttributeKeyFee, Value: fee.String()},
		event.Attribute{Key: bridge.AttributeKeyMessageId, Value: base64.StdEncoding.EncodeToString(messageId)},
	)
	if err != nil {
		return nil, zero, zero, err
	}

	return messageId, net, fee, nil
}

// Deliver is the transport's entrypoint for inbound transfers. The sender
// must be the gateway registered for the source chain; anything else is an
// impersonation attempt and is rejected before the payload is even parsed.
func (k *Keeper) Deliver(ctx context.Context, sourceChain uint32, sender []byte, payload []byte) error {
	if err := k.enterGuard("bridge/deliver"); err != nil {
		return err
	}
	defer k.exitGuard("bridge/deliver")

	if k.GetBridgePaused(ctx) {
		return bridge.ErrPaused
	}

	chain, found := k.GetChain(ctx, sourceChain)
	if !found || !chain.Allowlisted {
		return errors.Wrapf(bridge.ErrChainNotAllowlisted, "chain %d", sourceChain)
	}
	if len(chain.Gateway) == 0 || !bytes.Equal(bridge.PadAddress(sender), chain.Gateway) {
		return errors.Wrapf(bridge.ErrInvalidPeer, "sender is not the registered gateway for chain %d", sourceChain)
	}

	message, err := bridge.ParseTokenPayload(payload)
	if err != nil {
		return errors.Wrap(bridge.ErrInvalidMessage, err.Error())
	}
	if message.SourceChain != sourceChain {
		return errors.Wrapf(bridge.ErrInvalidMessage, "payload source chain %d does not match transport %d", message.SourceChain, sourceChain)
	}
	if message.DestChain != k.chainId {
		return errors.Wrapf(bridge.ErrInvalidMessage, "payload destined for chain %d", message.DestChain)
	}
	if !message.NetAmount.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "inbound amount must be positive")
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	bucket, found := k.GetInboundBucket(ctx, sourceChain)
	if !found {
		bucket = NewBucket(chain, now)
	}
	bucket, err = consumeFromBucket(bucket, chain, message.NetAmount, now)
	if err != nil {
		return err
	}
	if err := k.SetInboundBucket(ctx, sourceChain, bucket); err != nil {
		return err
	}

	recipient := message.Recipient
	if err := k.Mint(ctx, recipient, message.NetAmount, nil); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		bridge.EventTypeTokensReceived,
		event.Attribute{Key: bridge.AttributeKeyRecipient, Value: k.encodeAddress(recipient)},
		event.Attribute{Key: bridge.AttributeKeySourceChain, Value: fmt.Sprint(sourceChain)},
		event.Attribute{Key: bridge.AttributeKeyNetAmount, Value: message.NetAmount.String()},
		event.Attribute{Key: bridge.AttributeKeyMessageId, Value: base64.StdEncoding.EncodeToString(bridge.MessageID(payload))},
	)
}
