package model

// CatalogItem is the shared shape of the reference entities: groups, rooms
// and event statuses are all flat id/name tables.
type CatalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NameRequest is the create/update payload shared by groups, rooms and
// statuses.
type NameRequest struct {
	Name string `json:"name"`
}
