package types

// GeoPoint is a WGS84 coordinate pair as clients send it: {"lat":..,"lng":..}.
type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}
