package api

const ApiVersion_1_0 = "1.0"

// GetVersionRsp is served at /catalogs/version.
type GetVersionRsp struct {
	ServerVersion string `json:"server_version"`
	ApiVersion    string `json:"api_version"`
	Catalogs      int    `json:"catalogs"`
}
