package main

import (
	"encoding/xml"
	"fmt"
	"os"
)

/**
 * @file scenario.go
 * @brief Scenario XML ingestion: an external collaborator that yields the
 * initial Agent set and Waypoint catalogue the simulation core consumes.
 *
 * Kept deliberately small: a handful of flat <waypoint>/<agent> elements
 * don't warrant a third-party XML/XPath library, and no repo in the pack
 * parses XML at all, so stdlib encoding/xml is the idiomatic choice here
 * (see DESIGN.md).
 */

type scenarioDoc struct {
	XMLName   xml.Name      `xml:"scenario"`
	Waypoints []waypointDoc `xml:"waypoint"`
	Agents    []agentDoc    `xml:"agent"`
}

type waypointDoc struct {
	ID string `xml:"id,attr"`
	X  int    `xml:"x,attr"`
	Y  int    `xml:"y,attr"`
	R  int    `xml:"r,attr"`
}

type agentDoc struct {
	X         int             `xml:"x,attr"`
	Y         int             `xml:"y,attr"`
	Waypoints []waypointRefDoc `xml:"addWaypoint"`
}

type waypointRefDoc struct {
	ID string `xml:"id,attr"`
}

// LoadScenario reads and parses a scenario XML file, returning a ready-to-run
// agent set (with routes attached and initDestination already called) and
// the waypoint catalogue. Scenario errors (a dangling waypoint reference or
// an empty agent list) are returned rather than panicked, so the CLI can
// report them as a usage diagnostic.
func LoadScenario(path string) ([]*Agent, []*Waypoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scenario %q: %w", path, err)
	}

	var doc scenarioDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse scenario %q: %w", path, err)
	}

	byID := make(map[string]*Waypoint, len(doc.Waypoints))
	waypoints := make([]*Waypoint, 0, len(doc.Waypoints))
	for _, w := range doc.Waypoints {
		if w.R <= 0 {
			return nil, nil, fmt.Errorf("scenario %q: waypoint %q has non-positive radius %d", path, w.ID, w.R)
		}
		wp := NewWaypoint(w.ID, w.X, w.Y, w.R)
		byID[w.ID] = wp
		waypoints = append(waypoints, wp)
	}

	if len(doc.Agents) == 0 {
		return nil, nil, fmt.Errorf("scenario %q: empty agent list", path)
	}

	agents := make([]*Agent, 0, len(doc.Agents))
	for i, ad := range doc.Agents {
		if len(ad.Waypoints) == 0 {
			return nil, nil, fmt.Errorf("scenario %q: agent %d has no waypoints", path, i)
		}
		a := NewAgent(ad.X, ad.Y)
		for _, ref := range ad.Waypoints {
			wp, ok := byID[ref.ID]
			if !ok {
				return nil, nil, fmt.Errorf("scenario %q: agent %d references unknown waypoint %q", path, i, ref.ID)
			}
			a.addWaypoint(wp)
		}
		a.initDestination()
		agents = append(agents, a)
	}

	return agents, waypoints, nil
}
