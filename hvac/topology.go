package hvac

import (
	"fmt"
	"sort"

	"idfgen/idferrors"
	"idfgen/model"
)

// nodeGraph tallies, per node name, how many component outlets produce
// it and how many component inlets consume it. The boundary nodes of
// an airloop (outdoor-air intake and relief exhaust, or the ERV's
// intake and exhaust when one is present) are fed or drained by the
// environment and are registered explicitly so the once-each rule
// applies uniformly.
type nodeGraph struct {
	produced map[model.Node]int
	consumed map[model.Node]int
}

func newNodeGraph() *nodeGraph {
	return &nodeGraph{
		produced: make(map[model.Node]int),
		consumed: make(map[model.Node]int),
	}
}

func (g *nodeGraph) edge(outlet, inlet model.Node) {
	g.produced[outlet]++
	g.consumed[inlet]++
}

func (g *nodeGraph) component(c model.Component) {
	g.consumed[c.InletNode]++
	g.produced[c.OutletNode]++
}

// check enforces the once-each rule: every node consumed somewhere
// must be produced exactly once, and every node produced must be
// consumed exactly once. Violations are reported deterministically,
// smallest node name first.
func (g *nodeGraph) check(owner string) error {
	var names []model.Node
	seen := make(map[model.Node]bool)
	for n := range g.produced {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for n := range g.consumed {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, n := range names {
		p, c := g.produced[n], g.consumed[n]
		if p != 1 || c != 1 {
			return idferrors.NewTopologyError(owner,
				fmt.Sprintf("dangling node %q: produced %d times, consumed %d times", n, p, c))
		}
	}
	return nil
}

// validateTopology is the second pass over the graph: construction
// happened in one pass, and this walk confirms every inlet has exactly
// one outlet-source and vice versa before the loop may reach
// Validated. A partially constructed loop never passes this gate.
func validateTopology(loop *model.AirLoop) error {
	g := newNodeGraph()

	// Supply chain.
	g.component(loop.OAMixer)
	g.component(loop.Fan)
	g.component(loop.CoolCoil)
	g.component(loop.HeatCoil)

	// The OA mixer also consumes the outdoor-air stream and produces
	// the relief stream.
	g.consumed[loop.OANode]++
	g.produced[loop.ReliefNode]++

	if loop.ERV != nil {
		g.component(model.Component{
			Name: loop.ERV.Name, Kind: "HeatExchanger:AirToAir:SensibleAndLatent",
			InletNode: loop.ERV.SupplyInletNode, OutletNode: loop.ERV.SupplyOutletNode,
		})
		g.component(model.Component{
			Name: loop.ERV.Name, Kind: "HeatExchanger:AirToAir:SensibleAndLatent",
			InletNode: loop.ERV.ExhaustInletNode, OutletNode: loop.ERV.ExhaustOutletNode,
		})
		// Environment feeds the ERV intake and drains its exhaust.
		g.produced[loop.ERV.SupplyInletNode]++
		g.consumed[loop.ERV.ExhaustOutletNode]++
	} else {
		g.produced[loop.OANode]++     // environment feeds the OA stream directly
		g.consumed[loop.ReliefNode]++ // relief discharges to environment
	}

	// Loop endpoints must be shared physical nodes: air leaving the
	// supply side enters the demand splitter through the same node,
	// and the demand mixer's output is the supply side's return. With
	// that pairing in place the loop is closed and needs no
	// environment credit at either endpoint; a mismatch is the classic
	// four-dangling-node AirLoopHVAC error, caught here by name.
	if loop.Splitter.InletNode != loop.SupplyOutletNode {
		return idferrors.NewTopologyError(loop.Name, fmt.Sprintf(
			"demand inlet %q is not the supply outlet %q", loop.Splitter.InletNode, loop.SupplyOutletNode))
	}
	if loop.Mixer.OutletNode != loop.SupplyInletNode {
		return idferrors.NewTopologyError(loop.Name, fmt.Sprintf(
			"demand outlet %q is not the supply inlet %q", loop.Mixer.OutletNode, loop.SupplyInletNode))
	}

	// Demand side: splitter fans out, terminals condition, zones
	// return into the mixer.
	g.consumed[loop.Splitter.InletNode]++
	for _, out := range loop.Splitter.Outlets {
		g.produced[out]++
	}
	g.produced[loop.Mixer.OutletNode]++
	for _, in := range loop.Mixer.Inlets {
		g.consumed[in]++
	}

	for _, t := range loop.Terminals {
		g.consumed[t.InletNode]++
		g.produced[t.OutletNode]++
		// The zone itself consumes its supply inlet and produces its
		// return node.
		g.consumed[t.ZoneInletNode]++
		g.produced[t.ZoneExhaustNode]++
	}

	if err := g.check(loop.Name); err != nil {
		return err
	}
	return advance(loop, model.Validated)
}
