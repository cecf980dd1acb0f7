package model

import "github.com/Clinery1/laser-cam/internal/geom"

// Picker resolves which entity a click selects, cycling through stacked
// entities on repeated clicks at the same spot. It keeps the last pick
// point and cursor as small explicit state; Reset clears them.
type Picker struct {
	lastPoint geom.Point2
	lastIndex int
	hasLast   bool
}

// Pick returns the entity under point, or nil. Candidates are entities
// whose transformed outline (outer or any hole) passes within epsilon of
// the point, ordered front-most first. When the point is within epsilon of
// the previous pick point, the next candidate in that order is returned,
// wrapping around; otherwise the front-most candidate is returned and the
// cycle restarts.
func (p *Picker) Pick(sheet *Sheet, point geom.Point2, epsilon float64) *Entity {
	candidates := p.candidates(sheet, point, epsilon)
	if len(candidates) == 0 {
		p.hasLast = false
		return nil
	}

	if p.hasLast && p.lastPoint.Near(point, epsilon) {
		p.lastIndex = (p.lastIndex + 1) % len(candidates)
	} else {
		p.lastIndex = 0
	}
	p.lastPoint = point
	p.hasLast = true
	return candidates[p.lastIndex]
}

// Reset forgets the previous pick, so the next pick starts from the
// front-most candidate again.
func (p *Picker) Reset() {
	p.hasLast = false
}

// candidates returns entities near the point, front-most first. The hull
// bounding box is a cheap pre-filter; the decision is an exact edge
// distance test against the outer loop and every hole.
func (p *Picker) candidates(sheet *Sheet, point geom.Point2, epsilon float64) []*Entity {
	var out []*Entity
	for _, e := range sheet.zOrdered() {
		g := e.Geometry()

		min, max := geom.BoundingBox(g.Hull)
		if point.X < min.X-epsilon || point.X > max.X+epsilon ||
			point.Y < min.Y-epsilon || point.Y > max.Y+epsilon {
			continue
		}

		if entityHit(g, point, epsilon) {
			out = append(out, e)
		}
	}
	return out
}

func entityHit(g *TransformedGeometry, point geom.Point2, epsilon float64) bool {
	if geom.DistanceToPolygon(point, g.Outer) <= epsilon {
		return true
	}
	for _, h := range g.Holes {
		if geom.DistanceToPolygon(point, h) <= epsilon {
			return true
		}
	}
	return false
}
