// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package invariants - compile time switch for expensive self checks
//
// Build with "-tags invariants" (or "-race") to make every structural
// mutation of a tree verify the whole tree before and after the change.
package invariants
