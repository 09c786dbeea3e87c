package models

// CreateZoneRequest asks the backend to create a logical record partition.
// Creating a zone that already exists is a backend-side no-op.
type CreateZoneRequest struct {
	// ZoneID names the zone to create.
	ZoneID string `json:"zone_id"`
}

// SaveRecordRequest stores a single record.
type SaveRecordRequest struct {
	// Record is the full record to persist.
	Record Record `json:"record"`

	// Policy selects the backend conflict behaviour for this save.
	Policy SavePolicy `json:"policy"`
}

// SaveRecordsRequest stores several records and deletions as one atomic
// write: either every operation applies or none does.
type SaveRecordsRequest struct {
	// Records are the records to save.
	Records []Record `json:"records"`

	// Deletions lists record identifiers to delete in the same transaction.
	Deletions []string `json:"deletions,omitempty"`

	// Length is the total number of entries in Records.
	Length int `json:"length"`
}

// ChangePageRequest fetches one page of a zone's change feed.
type ChangePageRequest struct {
	// Scope selects the private or shared database partition.
	Scope Scope `json:"scope"`

	// ZoneID names the zone whose feed is paged.
	ZoneID string `json:"zone_id"`

	// Cursor is the opaque position of the previous page; empty starts
	// from the beginning of the feed.
	Cursor Cursor `json:"cursor,omitempty"`
}

// CreateShareRequest mints a share object for a root record. The association
// only becomes durable once the root record and the share record are saved
// together via SaveRecordsRequest.
type CreateShareRequest struct {
	// RootRecordID identifies the record the share grants access to.
	RootRecordID string `json:"root_record_id"`

	// Title is the human-readable invite title.
	Title string `json:"title"`
}

// AcceptShareRequest joins a share on behalf of the current account.
type AcceptShareRequest struct {
	// Token is the share token carried by the sharing link.
	Token string `json:"token"`
}
