/*
Package stratum is the well-state core of a reservoir flow simulator.

It models the per-well dynamic state of a run — pressures, rates and
temperatures for a set of wells and their downhole perforations — and the
policy for deriving initial values for these quantities from each well's
operating controls. It also extracts depth-ordered vertical columns from a
structured grid for column-wise solver passes. Grid generation, solvers,
unit conversion and file formats beyond the YAML deck are external
collaborators; the core consumes only their contracts.

# Usage

Load a deck and compute the initial state:

	package main

	import (
		"fmt"
		"log"

		"github.com/stratumsim/stratum"
	)

	func main() {
		model, err := stratum.Load("./run.deck.yaml")
		if err != nil {
			log.Fatal(err)
		}

		ws, err := model.InitialState()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ws.Bhp, ws.WellRates)
	}

The underlying packages are usable on their own: pkg/wells and pkg/grid
hold the data model, pkg/state the initializer, pkg/deck the YAML loading.
*/
package stratum
