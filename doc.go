// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package lookup implements IPv4 longest-prefix-match forwarding tables.
//
// Two engines share one bit-level address codec: PrefixTable, a map keyed
// by the exact bit prefix of each route and probed from 32 bits down, and
// PrefixTrie, a binary trie walked one query bit at a time. Both are built
// once from "address/prefixLength" lines, sealed, and then only read.
package lookup
