// Package fsq builds directory catalogs from Foursquare OS Places parquet
// exports. Rows are streamed from one file or a directory of files, filtered
// by location, and converted into catalog entries.
package fsq

// PlaceRow is the subset of an FSQ OS Places row the importer reads.
type PlaceRow struct {
	FSQPlaceID       string   `parquet:"fsq_place_id"`
	Name             string   `parquet:"name"`
	Address          *string  `parquet:"address"`
	Locality         *string  `parquet:"locality"`
	Region           *string  `parquet:"region"`
	Country          *string  `parquet:"country"`
	Website          *string  `parquet:"website"`
	Tel              *string  `parquet:"tel"`
	FSQCategoryLabel []string `parquet:"fsq_category_labels,list"`
	DateClosed       *string  `parquet:"date_closed"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
