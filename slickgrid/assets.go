package slickgrid

const (
	// RemoteAssetBaseURL is the versioned CDN location
	// of the widget's script and style sheet files.
	RemoteAssetBaseURL = "https://cdn.rawgit.com/quantopian/qgrid/ddf33c0efb813cd574f3838f6cf1fd584b733621/qgrid/qgridjs/"

	// LocalAssetBasePath is the path under which the document host
	// serves the widget's script and style sheet files.
	LocalAssetBasePath = "/nbextensions/qgridjs"
)

// AssetBaseURL returns RemoteAssetBaseURL if remote is true,
// else LocalAssetBasePath.
func AssetBaseURL(remote bool) string {
	if remote {
		return RemoteAssetBaseURL
	}
	return LocalAssetBasePath
}
