package game

import (
	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/systems"
)

// NucleusView is a read-only copy of one nucleus.
type NucleusView struct {
	ID       uint32
	Seed     int
	Position components.Point
	Trail    []components.Point
	Nearest  components.Nearest
}

// FoodView is a read-only copy of one food source.
type FoodView struct {
	Index    int
	Location components.Point
	Active   bool
	Reached  int
}

// NucleusCount returns the number of nuclei spawned so far.
func (g *Game) NucleusCount() int {
	return len(g.nuclei)
}

// Nuclei returns copies of all nuclei in spawn order.
func (g *Game) Nuclei() []NucleusView {
	views := make([]NucleusView, 0, len(g.nuclei))
	for _, e := range g.nuclei {
		pos, _, nuc, _, trail, nearest := g.nucleusMapper.Get(e)
		points := make([]components.Point, trail.Len())
		copy(points, trail.Points)
		views = append(views, NucleusView{
			ID:       nuc.ID,
			Seed:     nuc.Seed,
			Position: pos.Point(),
			Trail:    points,
			Nearest:  *nearest,
		})
	}
	return views
}

// Positions returns the current location of every nucleus in spawn order.
func (g *Game) Positions() []components.Point {
	out := make([]components.Point, len(g.nuclei))
	for i, e := range g.nuclei {
		pos, _, _, _, _, _ := g.nucleusMapper.Get(e)
		out[i] = pos.Point()
	}
	return out
}

// Foods returns every food source ever added, active or not, in insertion
// order.
func (g *Game) Foods() []FoodView {
	views := make([]FoodView, len(g.foods))
	for i := range g.foods {
		f := &g.foods[i]
		views[i] = FoodView{
			Index:    i,
			Location: f.Location,
			Active:   f.Active,
			Reached:  f.ReachedCount(),
		}
	}
	return views
}

// FoodPoints returns the locations of all food sources.
func (g *Game) FoodPoints() []components.Point {
	out := make([]components.Point, len(g.foods))
	for i := range g.foods {
		out[i] = g.foods[i].Location
	}
	return out
}

// LiveFood returns the locations of the active food sources.
func (g *Game) LiveFood() []components.Point {
	var out []components.Point
	for i := range g.foods {
		if g.foods[i].Active {
			out = append(out, g.foods[i].Location)
		}
	}
	return out
}

// NonAttractors returns copies of the obstacles in insertion order.
func (g *Game) NonAttractors() []components.NonAttractor {
	out := make([]components.NonAttractor, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// LiveFoodCount returns the number of active food sources.
func (g *Game) LiveFoodCount() int {
	return systems.ActiveFoodCount(g.foods)
}
