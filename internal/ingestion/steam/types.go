package steam

// AppEntry is one row of the paginated catalog listing.
type AppEntry struct {
	AppID int64  `json:"appid"`
	Name  string `json:"name"`
}

// appListEnvelope wraps the IStoreService/GetAppList response.
type appListEnvelope struct {
	Response *appListPage `json:"response"`
}

// appListPage is a single page of the catalog listing. HaveMoreResults is a
// pointer because the upstream signals the last page by omitting the key, not
// by sending false.
type appListPage struct {
	Apps            []AppEntry `json:"apps"`
	HaveMoreResults *bool      `json:"have_more_results"`
	LastAppID       int64      `json:"last_appid"`
}
