// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Scope selects which database partition of the container a call addresses.
type Scope string

const (
	// ScopePrivate addresses records owned by the current account.
	ScopePrivate Scope = "private"

	// ScopeShared addresses records other accounts shared with this one.
	ScopeShared Scope = "shared"
)

// ContactZoneID is the single private zone all contact records live in.
// It is created once per installation and never deleted.
const ContactZoneID = "contacts"
