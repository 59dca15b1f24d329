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

package vault

import "cosmossdk.io/errors"

var (
	ErrInvalidAuthority    = errors.Register(SubmoduleName, 1, "signer is not authority")
	ErrDepositsPaused      = errors.Register(SubmoduleName, 2, "deposits are paused")
	ErrRedeemsPaused       = errors.Register(SubmoduleName, 3, "redeems are paused")
	ErrNotAllowlisted      = errors.Register(SubmoduleName, 4, "account is not allowlisted")
	ErrBelowMinimum        = errors.Register(SubmoduleName, 5, "deposit below minimum")
	ErrDepositCapExceeded  = errors.Register(SubmoduleName, 6, "deposit cap exceeded")
	ErrInsufficientDeposit = errors.Register(SubmoduleName, 7, "insufficient recorded deposit")
	ErrSlippageExceeded    = errors.Register(SubmoduleName, 8, "payout below minimum out")
	ErrCannotRescueBacking = errors.Register(SubmoduleName, 9, "cannot rescue the vault's backing asset")
	ErrInvalidConfig       = errors.Register(SubmoduleName, 10, "invalid vault configuration")
)
