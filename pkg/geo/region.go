package geo

// Region is a closed-interval bounding rectangle, independent of the quadrant
// grid. Emergency contact coverage areas use regions, and unlike quadrants
// they include all four edges, so a point on a shared border belongs to both
// adjoining regions.
type Region struct {
	NorthWest Point `json:"northWest"`
	SouthEast Point `json:"southEast"`
}

func (r Region) Contains(p Point) bool {
	return p.Latitude <= r.NorthWest.Latitude &&
		p.Latitude >= r.SouthEast.Latitude &&
		p.Longitude >= r.NorthWest.Longitude &&
		p.Longitude <= r.SouthEast.Longitude
}
