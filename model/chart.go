package model

// Tile is one record of the chart the device plays. Slot is 1-indexed and
// Release is null for taps.
type Tile struct {
	Type    TileType `json:"type"`
	Press   int      `json:"press"`
	Slot    int      `json:"slot"`
	Release *int     `json:"release"`
}

type Chart struct {
	SongName string `json:"songName"`
	Artist   string `json:"artist"`
	Length   int    `json:"length"`
	Tiles    []Tile `json:"tiles"`
}

type ChartMeta struct {
	SongName string
	Artist   string
	Length   int
}

func (c Chart) Meta() ChartMeta {
	return ChartMeta{SongName: c.SongName, Artist: c.Artist, Length: c.Length}
}

// ChartSummary is what the library lists without loading every tile.
type ChartSummary struct {
	Name     string `json:"name"`
	SongName string `json:"songName"`
	Artist   string `json:"artist"`
	Length   int    `json:"length"`
	NumTiles int    `json:"numTiles"`
}

func (c Chart) Summary(name string) ChartSummary {
	return ChartSummary{
		Name:     name,
		SongName: c.SongName,
		Artist:   c.Artist,
		Length:   c.Length,
		NumTiles: len(c.Tiles),
	}
}
