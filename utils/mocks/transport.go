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
	"context"
	"encoding/hex"
	"errors"

	"usdr.arcline.xyz/types/bridge"
)

// ReceiverFn is a registered destination endpoint, typically a closure over a
// remote keeper's Deliver.
type ReceiverFn func(ctx context.Context, payload []byte) error

// PendingMessage is a submitted but not yet delivered bridge message.
type PendingMessage struct {
	Id               []byte
	DestinationChain uint32
	Payload          []byte
}

// Transport is an in-memory at-least-once message transport. Messages queue
// on submit and move on DeliverAll, so tests control delivery timing,
// ordering and duplication. Delivery is deduplicated by message id the way a
// real transport tracks processed messages.
type Transport struct {
	Receivers map[uint32]ReceiverFn
	Pending   []PendingMessage
	Submitted []PendingMessage

	FailSubmit bool

	delivered map[string]bool
}

func NewTransport() *Transport {
	return &Transport{
		Receivers: make(map[uint32]ReceiverFn),
		delivered: make(map[string]bool),
	}
}

func (t *Transport) SubmitMessage(_ context.Context, destinationChainId uint32, payload []byte) ([]byte, error) {
	if t.FailSubmit {
		return nil, errors.New("transport unavailable")
	}

	message := PendingMessage{
		Id:               bridge.MessageID(payload),
		DestinationChain: destinationChainId,
		Payload:          payload,
	}
	t.Pending = append(t.Pending, message)
	t.Submitted = append(t.Submitted, message)

	return message.Id, nil
}

// DeliverAll drains the pending queue into the registered receivers. A
// message with no receiver or a failing receiver stays queued; an already
// delivered duplicate is dropped without a second receiver call.
func (t *Transport) DeliverAll(ctx context.Context) error {
	pending := t.Pending
	t.Pending = nil

	var firstErr error
	for _, message := range pending {
		if t.delivered[hex.EncodeToString(message.Id)] {
			continue
		}

		receiver, ok := t.Receivers[message.DestinationChain]
		if !ok {
			t.Pending = append(t.Pending, message)
			continue
		}

		if err := receiver(ctx, message.Payload); err != nil {
			t.Pending = append(t.Pending, message)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		t.delivered[hex.EncodeToString(message.Id)] = true
	}

	return firstErr
}

// Redeliver replays an already submitted message, simulating a duplicate
// from an at-least-once transport. Deduplication drops it silently.
func (t *Transport) Redeliver(ctx context.Context, message PendingMessage) error {
	if t.delivered[hex.EncodeToString(message.Id)] {
		return nil
	}

	receiver, ok := t.Receivers[message.DestinationChain]
	if !ok {
		return errors.New("no receiver registered")
	}

	if err := receiver(ctx, message.Payload); err != nil {
		return err
	}

	t.delivered[hex.EncodeToString(message.Id)] = true
	return nil
}
