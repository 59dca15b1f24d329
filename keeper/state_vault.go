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

	"cosmossdk.io/math"

	"usdr.arcline.xyz/types/vault"
)

func (k *Keeper) GetVaultConfig(ctx context.Context) vault.Config {
	config, err := k.VaultConfig.Get(ctx)
	if err != nil {
		return vault.Config{
			DecrementThreshold: math.ZeroInt(),
			MinDeposit:         math.ZeroInt(),
			MaxPerUser:         math.ZeroInt(),
			MaxTotal:           math.ZeroInt(),
		}
	}
	return config
}

func (k *Keeper) SetVaultConfig(ctx context.Context, config vault.Config) error {
	return k.VaultConfig.Set(ctx, config)
}

func (k *Keeper) GetUserInfo(ctx context.Context, account []byte) vault.UserInfo {
	info, err := k.UserInfos.Get(ctx, account)
	if err != nil {
		return vault.UserInfo{DepositedAmount: math.ZeroInt()}
	}
	return info
}

func (k *Keeper) SetUserInfo(ctx context.Context, account []byte, info vault.UserInfo) error {
	return k.UserInfos.Set(ctx, account, info)
}

func (k *Keeper) GetTotalDeposited(ctx context.Context) math.Int {
	total, err := k.TotalDeposited.Get(ctx)
	if err != nil {
		return math.ZeroInt()
	}
	return total
}

func (k *Keeper) SetTotalDeposited(ctx context.Context, total math.Int) error {
	return k.TotalDeposited.Set(ctx, total)
}

func (k *Keeper) GetLastAccrualTime(ctx context.Context) int64 {
	timestamp, err := k.LastAccrualTime.Get(ctx)
	if err != nil {
		return 0
	}
	return timestamp
}

func (k *Keeper) SetLastAccrualTime(ctx context.Context, timestamp int64) error {
	return k.LastAccrualTime.Set(ctx, timestamp)
}

func (k *Keeper) IsAllowlisted(ctx context.Context, account []byte) bool {
	allowed, err := k.Allowlist.Get(ctx, account)
	if err != nil {
		return false
	}
	return allowed
}

func (k *Keeper) SetAllowlisted(ctx context.Context, account []byte, allowed bool) error {
	return k.Allowlist.Set(ctx, account, allowed)
}
