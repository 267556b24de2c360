/*
Package wells models the well and control data consumed by the state
initializer.

It is a pure data package: wells are described by their type (injector or
producer), an ordered list of perforated grid cells, and a stack of operating
controls of which one is current. The package performs structural validation
only; deriving state values from controls belongs to package state.

# Key Entities

  - Well: one injection or production point with its perforations and controls.
  - Control: a single operating constraint (kind, target, optional phase split).
  - Fleet: the full well set plus the run's phase count.
*/
package wells
