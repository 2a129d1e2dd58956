package youtube

// Wire types for the Data API v3 endpoints the client touches. Only the
// fields the scout reads are mapped.

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID searchItemID `json:"id"`
}

type searchItemID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID         string          `json:"id"`
	Snippet    videoSnippet    `json:"snippet"`
	Statistics videoStatistics `json:"statistics"`
}

type videoSnippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Description  string `json:"description"`
}

// Statistics counters arrive as decimal strings.
type videoStatistics struct {
	ViewCount string `json:"viewCount"`
}
