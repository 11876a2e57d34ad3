// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package favorite is the ledger of ads an actor has liked.

An actor is either an authenticated user or an anonymous device (see
[actor.Actor]). For every ad there is at most one entry per user and at most
one entry per device id; the database enforces both with partial unique
indexes, and [Repository.Add] resolves races against them instead of failing.

An entry belongs to exactly the actor that created it. A user cannot see or
remove a device's entry for the same ad, and the other way round: such an
entry is reported as not found.
*/
package favorite

import (
	"time"
)

// Entry records that one actor liked one ad. Exactly one of UserID and
// DeviceID is set.
type Entry struct {
	ID        int64     `json:"id"`
	AdID      int64     `json:"ad_id"`
	UserID    *int64    `json:"user_id"`
	DeviceID  *string   `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AddInput is the body of a favorite request.
type AddInput struct {
	AdID     int64  `json:"ad_id"`
	DeviceID string `json:"device_id"`
}

// FieldAdID is the request field naming the target ad.
const FieldAdID = "ad_id"
