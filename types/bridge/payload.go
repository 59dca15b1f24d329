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
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

const (
	tokenPayloadSize = 146
	tokenMessageType = 0x01
	addressFieldSize = 32
	amountFieldSize  = 32
)

// TokenPayload is the decoded burn-side message carried across chains. All
// numeric fields are big-endian encoded on the wire. The sender is carried
// left-padded to the 32-byte field width; the recipient's true length rides
// in the trailing byte so addresses of any size up to 32 bytes round-trip
// exactly.
type TokenPayload struct {
	MessageType uint8
	SourceChain uint32
	DestChain   uint32
	Sender      []byte
	Recipient   []byte
	NetAmount   math.Int
	Fee         math.Int
	Nonce       uint64
}

// EncodeTokenPayload serializes a token payload into its fixed-length wire
// representation.
func EncodeTokenPayload(payload TokenPayload) ([]byte, error) {
	if len(payload.Sender) > addressFieldSize {
		return nil, fmt.Errorf("sender address exceeds %d bytes", addressFieldSize)
	}
	if len(payload.Recipient) == 0 || len(payload.Recipient) > addressFieldSize {
		return nil, fmt.Errorf("recipient address must be between 1 and %d bytes", addressFieldSize)
	}
	if payload.NetAmount.IsNil() || payload.NetAmount.IsNegative() {
		return nil, fmt.Errorf("net amount must be non-negative")
	}
	if payload.Fee.IsNil() || payload.Fee.IsNegative() {
		return nil, fmt.Errorf("fee must be non-negative")
	}

	bz := make([]byte, tokenPayloadSize)
	bz[0] = tokenMessageType
	binary.BigEndian.PutUint32(bz[1:5], payload.SourceChain)
	binary.BigEndian.PutUint32(bz[5:9], payload.DestChain)
	copy(bz[9+addressFieldSize-len(payload.Sender):41], payload.Sender)
	copy(bz[41+addressFieldSize-len(payload.Recipient):73], payload.Recipient)

	net := make([]byte, amountFieldSize)
	payload.NetAmount.BigInt().FillBytes(net)
	copy(bz[73:105], net)

	fee := make([]byte, amountFieldSize)
	payload.Fee.BigInt().FillBytes(fee)
	copy(bz[105:137], fee)

	binary.BigEndian.PutUint64(bz[137:145], payload.Nonce)
	bz[145] = byte(len(payload.Recipient))

	return bz, nil
}

// ParseTokenPayload decodes the fixed-length token payload into a strongly
// typed representation, rejecting malformed bodies outright. The recipient is
// returned at its original length.
func ParseTokenPayload(bz []byte) (TokenPayload, error) {
	if len(bz) != tokenPayloadSize {
		return TokenPayload{}, fmt.Errorf("invalid token payload size: expected %d, got %d", tokenPayloadSize, len(bz))
	}
	if bz[0] != tokenMessageType {
		return TokenPayload{}, fmt.Errorf("invalid token payload message type 0x%02x", bz[0])
	}

	recipientLen := int(bz[145])
	if recipientLen == 0 || recipientLen > addressFieldSize {
		return TokenPayload{}, fmt.Errorf("invalid recipient length %d", recipientLen)
	}

	sender := make([]byte, addressFieldSize)
	copy(sender, bz[9:41])
	recipient := make([]byte, recipientLen)
	copy(recipient, bz[73-recipientLen:73])

	return TokenPayload{
		MessageType: bz[0],
		SourceChain: binary.BigEndian.Uint32(bz[1:5]),
		DestChain:   binary.BigEndian.Uint32(bz[5:9]),
		Sender:      sender,
		Recipient:   recipient,
		NetAmount:   math.NewIntFromBigInt(new(big.Int).SetBytes(bz[73:105])),
		Fee:         math.NewIntFromBigInt(new(big.Int).SetBytes(bz[105:137])),
		Nonce:       binary.BigEndian.Uint64(bz[137:145]),
	}, nil
}

// MessageID derives the unique identifier of an encoded payload. The nonce is
// part of the payload, so two otherwise identical transfers never collide.
func MessageID(payload []byte) []byte {
	digest := sha256.Sum256(payload)
	return digest[:]
}

// PadAddress left-pads an account address to the 32-byte wire width. Input at
// or beyond that width is returned unchanged, so an oversized address can
// never match a registered gateway.
func PadAddress(bz []byte) []byte {
	if len(bz) >= addressFieldSize {
		return bz
	}
	padded := make([]byte, addressFieldSize)
	copy(padded[addressFieldSize-len(bz):], bz)
	return padded
}
