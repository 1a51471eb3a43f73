package cricapi

// Wire types for the CricAPI currentMatches endpoint. Field names follow the
// provider's JSON; anything the service does not use is left out and ignored
// on decode.

type currentMatchesResponse struct {
	Status string          `json:"status"`
	Reason string          `json:"reason"`
	Data   []matchResponse `json:"data"`
	Info   usageInfo       `json:"info"`
}

type matchResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MatchType    string          `json:"matchType"`
	Status       string          `json:"status"`
	Venue        string          `json:"venue"`
	Date         string          `json:"date"`
	DateTimeGMT  string          `json:"dateTimeGMT"`
	Teams        []string        `json:"teams"`
	Score        []inningsScore  `json:"score"`
	SeriesID     string          `json:"series_id"`
	MatchStarted bool            `json:"matchStarted"`
	MatchEnded   bool            `json:"matchEnded"`
}

type inningsScore struct {
	Runs    int     `json:"r"`
	Wickets int     `json:"w"`
	Overs   float64 `json:"o"`
	Inning  string  `json:"inning"`
}

type usageInfo struct {
	HitsToday int `json:"hitsToday"`
	HitsUsed  int `json:"hitsUsed"`
	HitsLimit int `json:"hitsLimit"`
	TotalRows int `json:"totalRows"`
}
