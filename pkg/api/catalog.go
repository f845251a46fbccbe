package api

import (
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/types"
)

// CatalogSummary is one entry of the catalog directory.
type CatalogSummary struct {
	Name        string       `json:"name"`
	Title       string       `json:"title,omitempty"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Description string       `json:"description,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	Color       string       `json:"color,omitempty"`
	Level       string       `json:"level,omitempty"`
	Scheme      types.Scheme `json:"scheme"`
	RecordCount int          `json:"recordCount"`
	Categories  []string     `json:"categories"`
}

type GetCatalogsRsp struct {
	Catalogs []CatalogSummary `json:"catalogs"`
}

type CategorySummary struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Icon        string               `json:"icon,omitempty"`
	RecordCount int                  `json:"recordCount"`
	Levels      []catalog.LevelCount `json:"levels"`
}

type GetCatalogRsp struct {
	CatalogSummary
	Levels     []string          `json:"levels"`
	Categories []CategorySummary `json:"categories"`
}

// RecordView is a record together with the color of its classification.
type RecordView struct {
	catalog.Record
	Color string `json:"color"`
}

type GetRecordsRsp struct {
	Catalog        string       `json:"catalog"`
	Category       string       `json:"category,omitempty"`
	Classification string       `json:"classification,omitempty"`
	Records        []RecordView `json:"records"`
}

type GetRecordRsp struct {
	Catalog string       `json:"catalog"`
	Record  RecordView   `json:"record"`
	Related []RecordView `json:"related"`
}

type GetCountsRsp struct {
	Catalog  string               `json:"catalog"`
	Category string               `json:"category,omitempty"`
	Total    int                  `json:"total"`
	Counts   []catalog.LevelCount `json:"counts"`
}

// NewRecordView colors r with the scheme of c.
func NewRecordView(c *catalog.Catalog, r catalog.Record) RecordView {
	return RecordView{Record: r, Color: c.Color(r.Classification)}
}

func NewRecordViews(c *catalog.Catalog, records []catalog.Record) []RecordView {
	views := make([]RecordView, 0, len(records))
	for _, r := range records {
		views = append(views, NewRecordView(c, r))
	}
	return views
}

// NewCountsRsp counts the records of c per classification level, within one
// category when category is not empty.
func NewCountsRsp(c *catalog.Catalog, category string) GetCountsRsp {
	ix := c.Index()
	rsp := GetCountsRsp{Catalog: c.Name(), Category: category}
	if category != "" {
		rsp.Total = len(ix.ByCategory(category))
		rsp.Counts = ix.Summary(category)
		return rsp
	}
	rsp.Total = c.Store().Len()
	rsp.Counts = make([]catalog.LevelCount, 0, len(c.Scheme().Levels()))
	for _, l := range c.Scheme().Levels() {
		rsp.Counts = append(rsp.Counts, catalog.LevelCount{
			Classification: l,
			Count:          len(c.Query(catalog.WithClassification(l))),
			Color:          c.Color(l),
		})
	}
	return rsp
}

// NewRecordsRsp runs a filtered query against c.
func NewRecordsRsp(c *catalog.Catalog, f catalog.Filter) GetRecordsRsp {
	return GetRecordsRsp{
		Catalog:        c.Name(),
		Category:       f.Category.String(),
		Classification: f.Classification.String(),
		Records:        NewRecordViews(c, c.Query(f.Options()...)),
	}
}
