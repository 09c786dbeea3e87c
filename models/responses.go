// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListZonesResponse lists the zones visible inside one database scope.
type ListZonesResponse struct {
	// ZoneIDs are the zone identifiers, unordered.
	ZoneIDs []string `json:"zone_ids"`

	// Length is the total number of entries in ZoneIDs.
	Length int `json:"length"`
}

// AcceptShareResponse reports the outcome of joining a share.
type AcceptShareResponse struct {
	// ShareID identifies the share that was joined.
	ShareID string `json:"share_id"`

	// ZoneID names the shared zone the joined records live in.
	ZoneID string `json:"zone_id"`

	// PerShare carries the backend result for this individual share.
	PerShare string `json:"per_share"`

	// Overall carries the backend result for the whole accept operation.
	Overall string `json:"overall"`
}

// AcceptResultOK is the backend result value for a successful accept.
const AcceptResultOK = "ok"
