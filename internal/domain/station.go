package domain

// Column names of the traffic dataset (trafic annuel entrant par station).
const (
	ColNetwork = "Réseau"
	ColStation = "Station"
	ColTraffic = "Trafic"
	ColCity    = "Ville"
)

// Column names of the station location dataset (emplacement des gares IDF).
const (
	ColOperator = "exploitant"
	ColName     = "nom"
	ColLine     = "ligne"
	ColGeoPoint = "Geo Point"
)

// Derived columns.
const (
	ColLat   = "lat"
	ColLng   = "lng"
	ColCount = "count"
)

// TrafficColumns - columns the traffic file must provide
var TrafficColumns = []string{ColNetwork, ColStation, ColTraffic, ColCity}

// LocationColumns - columns the location file must provide
var LocationColumns = []string{ColOperator, ColName, ColLine, ColGeoPoint}
