package domain

import "time"

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Statistics - summary of the loaded datasets
type Statistics struct {
	Traffic   TrafficStats  `json:"traffic"`
	Locations LocationStats `json:"locations"`
	Coverage  CoverageStats `json:"coverage"`
	LoadedAt  time.Time     `json:"loaded_at"`
}

// TrafficStats - statistics of the traffic table
type TrafficStats struct {
	TotalStations int            `json:"total_stations"`
	TotalTraffic  int64          `json:"total_traffic"`
	ByNetwork     map[string]int `json:"by_network"`
	Cities        int            `json:"cities"`
}

// LocationStats - statistics of the location table
type LocationStats struct {
	TotalStations int            `json:"total_stations"`
	TotalLines    int            `json:"total_lines"`
	ByOperator    map[string]int `json:"by_operator"`
}

// CoverageStats - extent of the station points
type CoverageStats struct {
	BoundingBox
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
}
