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
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// BankKeeper is an in-memory bank with balances keyed by bech32 address.
type BankKeeper struct {
	Balances map[string]sdk.Coins
	Failing  bool
}

func (k BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	balance := k.Balances[encodeAddress(addr)].AmountOf(denom)
	return sdk.NewCoin(denom, balance)
}

func (k BankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if k.Failing {
		return errors.New("bank transfer failed")
	}

	from := encodeAddress(fromAddr)
	balance, negative := k.Balances[from].SafeSub(amt...)
	if negative {
		return errors.New("insufficient funds")
	}

	to := encodeAddress(toAddr)
	k.Balances[from] = balance
	k.Balances[to] = k.Balances[to].Add(amt...)
	return nil
}

func encodeAddress(addr sdk.AccAddress) string {
	encoded, _ := bech32.ConvertAndEncode("arc", addr)
	return encoded
}
