package api

import "github.com/mugiliam/contentcatalog/pkg/types"

type CreateViewRsp struct {
	ViewId  string `json:"viewId"`
	Catalog string `json:"catalog"`
}

// GetViewRsp is the state of a view. Expanded is null when nothing is
// expanded or the expanded id no longer resolves to a record.
type GetViewRsp struct {
	ViewId     string                 `json:"viewId"`
	Catalog    string                 `json:"catalog"`
	ExpandedId types.NullableRecordId `json:"expandedId"`
	Expanded   *RecordView            `json:"expanded"`
}

type ImportCatalogRsp struct {
	Name    string `json:"name"`
	Hash    string `json:"hash"`
	Changed bool   `json:"changed"`
}
