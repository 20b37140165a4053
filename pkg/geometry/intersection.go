package geometry

// Intersection tags a distance along a ray with the identity of the object
// hit. Negative distances are kept: they matter for rays cast from inside a
// shape and for shadow tests.
type Intersection struct {
	ObjectID int
	Distance float64
}

// NewIntersection creates an intersection record.
func NewIntersection(objectID int, distance float64) Intersection {
	return Intersection{ObjectID: objectID, Distance: distance}
}

// Hit returns the visible intersection: the one with the smallest strictly
// positive distance. The boolean is false when no intersection is in front
// of the ray origin.
func Hit(intersections []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, intersection := range intersections {
		if intersection.Distance <= 0.0 {
			continue
		}
		if !found || intersection.Distance < best.Distance {
			best = intersection
			found = true
		}
	}
	return best, found
}
