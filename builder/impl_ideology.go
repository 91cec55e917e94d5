// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// impl_ideology.go — ideology networks: members positioned on a [0,1]
// ideology axis, wired by a connection policy, annotated with vote
// coefficients.
//
// Contract:
//   • Members are non-empty, names unique, ranks a permutation of 1..n
//     (else ErrInvalidRoster).
//   • Node ID = member name; nodes are inserted in ascending rank order.
//   • Policies:
//       – PolicyLinear:   rank r links rank r+1.
//       – PolicyLimited:  every pair with |Δideology| ≤ radius (inclusive);
//                         any isolated node ⇒ ErrDisconnectedGraph.
//       – PolicyComplete: every pair.
//   • Center = mean ideology of the reference ranks (default the median
//     rank(s)). Each node gets beta = phi = 1/(k·(|ideology−center|+ε)) + 1.
//
// Complexity:
//   • PolicyLinear O(n), PolicyLimited/PolicyComplete O(n²).

package builder

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/cayley/core"
)

// Member is one roster entry of an ideology network.
type Member struct {
	Name     string
	Rank     int
	Ideology float64
}

// Policy selects how ideology network members are linked.
type Policy uint8

const (
	// PolicyLinear chains members by consecutive rank.
	PolicyLinear Policy = iota
	// PolicyLimited links members whose ideologies differ by at most the radius.
	PolicyLimited
	// PolicyComplete links every pair of members.
	PolicyComplete
)

var policyNames = [...]string{PolicyLinear: "linear", PolicyLimited: "limited", PolicyComplete: "complete"}

// String returns the lowercase policy name.
func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}

	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps a case-insensitive policy name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Policy(i), nil
		}
	}

	return 0, fmt.Errorf("ParsePolicy: %q: %w", name, ErrUnknownPolicy)
}

// IdeologyNetwork is a member graph with the center it was calibrated on.
type IdeologyNetwork struct {
	*core.Graph
	policy Policy
	center float64
	byRank []string
}

// Ideology builds an ideology network over members with the given policy.
// Construction is atomic: on error no network is returned.
func Ideology(members []Member, policy Policy, opts ...BuilderOption) (*IdeologyNetwork, error) {
	if int(policy) >= len(policyNames) {
		return nil, fmt.Errorf("%s: %v: %w", MethodIdeology, policy, ErrUnknownPolicy)
	}
	sorted, err := checkRoster(members)
	if err != nil {
		return nil, err
	}

	var center float64
	g, err := BuildGraph(nil, opts, IdeologyLayout(sorted, policy, &center))
	if err != nil {
		return nil, err
	}

	byRank := make([]string, len(sorted))
	for i, m := range sorted {
		byRank[i] = m.Name
	}

	return &IdeologyNetwork{Graph: g, policy: policy, center: center, byRank: byRank}, nil
}

// IdeologyLayout returns a Constructor adding members, links and
// coefficients to g. When center is non-nil it receives the computed center.
func IdeologyLayout(members []Member, policy Policy, center *float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		sorted, err := checkRoster(members)
		if err != nil {
			return err
		}
		c, err := ideologyCenter(sorted, cfg.centerRanks)
		if err != nil {
			return err
		}
		if center != nil {
			*center = c
		}

		for _, m := range sorted {
			coef := Coefficient(m.Ideology, c, cfg.scale, cfg.epsilon)
			if err = g.Add(m.Name,
				core.WithRank(m.Rank),
				core.WithIdeology(m.Ideology),
				core.WithBeta(coef),
				core.WithPhi(coef),
			); err != nil {
				return fmt.Errorf("%s: Add(%s): %w", MethodIdeology, m.Name, err)
			}
		}

		switch policy {
		case PolicyLinear:
			for i := 0; i+1 < len(sorted); i++ {
				if err = g.Link(sorted[i].Name, sorted[i+1].Name); err != nil {
					return fmt.Errorf("%s: %w", MethodIdeology, err)
				}
			}
		case PolicyLimited:
			return linkWithinRadius(g, sorted, cfg.radius)
		case PolicyComplete:
			if err = g.Complete(); err != nil {
				return fmt.Errorf("%s: %w", MethodIdeology, err)
			}
		default:
			return fmt.Errorf("%s: %v: %w", MethodIdeology, policy, ErrUnknownPolicy)
		}

		return nil
	}
}

// Coefficient returns the vote coefficient 1/(k·(|ideology−center|+ε)) + 1.
func Coefficient(ideology, center, k, eps float64) float64 {
	return 1/(k*(math.Abs(ideology-center)+eps)) + 1
}

// linkWithinRadius links every pair with |Δ| ≤ radius and fails on isolated nodes.
func linkWithinRadius(g *core.Graph, members []Member, radius float64) error {
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			if math.Abs(members[i].Ideology-members[j].Ideology) > radius {
				continue
			}
			if err := g.Link(members[i].Name, members[j].Name); err != nil {
				return fmt.Errorf("%s: %w", MethodIdeology, err)
			}
		}
	}
	for _, m := range members {
		if d, _ := g.Degree(m.Name); d == 0 {
			return fmt.Errorf("%s: radius %g leaves %q isolated: %w", MethodIdeology, radius, m.Name, ErrDisconnectedGraph)
		}
	}

	return nil
}

// checkRoster validates members and returns a copy sorted by rank.
func checkRoster(members []Member) ([]Member, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%s: no members: %w", MethodIdeology, ErrInvalidRoster)
	}
	sorted := slices.Clone(members)
	slices.SortFunc(sorted, func(a, b Member) int { return a.Rank - b.Rank })

	seen := make(map[string]struct{}, len(sorted))
	for i, m := range sorted {
		if m.Name == "" {
			return nil, fmt.Errorf("%s: rank %d: %w", MethodIdeology, m.Rank, core.ErrEmptyNodeID)
		}
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate member %q: %w", MethodIdeology, m.Name, ErrInvalidRoster)
		}
		seen[m.Name] = struct{}{}
		if m.Rank != i+1 {
			return nil, fmt.Errorf("%s: ranks are not a permutation of 1..%d (got %d at position %d): %w",
				MethodIdeology, len(sorted), m.Rank, i+1, ErrInvalidRoster)
		}
	}

	return sorted, nil
}

// medianRanks returns the middle rank(s) of 1..n.
func medianRanks(n int) []int {
	if n%2 == 0 {
		return []int{n / 2, n/2 + 1}
	}

	return []int{(n + 1) / 2}
}

// ideologyCenter averages the ideology of the reference ranks.
// sorted must be the output of checkRoster, so rank r sits at index r-1.
func ideologyCenter(sorted []Member, ranks []int) (float64, error) {
	if len(ranks) == 0 {
		ranks = medianRanks(len(sorted))
	}
	var sum float64
	for _, r := range ranks {
		if r < 1 || r > len(sorted) {
			return 0, fmt.Errorf("%s: center rank %d outside 1..%d: %w", MethodIdeology, r, len(sorted), ErrInvalidRoster)
		}
		sum += sorted[r-1].Ideology
	}

	return sum / float64(len(ranks)), nil
}

// Policy returns the connection policy the network was built with.
func (n *IdeologyNetwork) Policy() Policy { return n.policy }

// Center returns the reference ideology the coefficients were computed from.
func (n *IdeologyNetwork) Center() float64 { return n.center }

// ByRank returns the member name holding rank (1-based).
func (n *IdeologyNetwork) ByRank(rank int) (string, error) {
	if rank < 1 || rank > len(n.byRank) {
		return "", fmt.Errorf("ByRank: rank %d outside 1..%d: %w", rank, len(n.byRank), core.ErrUnknownNode)
	}

	return n.byRank[rank-1], nil
}
