// Package dirsearch embeds the directory search engine in a Go program:
// catalog loading, faceted filtering with location ranking, grouping,
// top-local selection and per-owner favorites.
//
// # Quick start
//
//	client, _ := dirsearch.New(ctx) // built-in catalogs, in-memory favorites
//	defer client.Close()
//
//	res, _ := client.Filter(ctx, "rentals", dirsearch.Query{
//	    Text:     "scooter",
//	    Platform: "telegram",
//	}, &dirsearch.Location{City: "Phuket", Country: "Thailand"})
//	for _, e := range res.Entries {
//	    fmt.Println(e.Key, e.Name, e.Tier)
//	}
//
// # Favorites in Valkey
//
//	client, _ := dirsearch.New(ctx,
//	    dirsearch.WithValkey("localhost:6379", ""),
//	    dirsearch.WithCatalogDir("/etc/dirsearch/catalogs"),
//	    dirsearch.WithMaxFavorites(50),
//	)
//	keys, added, _ := client.ToggleFavorite(ctx, "user-42", "rentals", "bikes-phuket")
package dirsearch
