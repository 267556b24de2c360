package state

// Restart records serialize the five state arrays back to back in a fixed
// order: bhp, perfPress, perfRates, temperature, wellRates. The offsets
// below are a contract with the restart writer and reader; reordering them
// breaks every archived run.

// Layout gives the element offset of each field within a serialized
// restart record, plus the total element count.
type Layout struct {
	Bhp         int
	PerfPress   int
	PerfRates   int
	Temperature int
	WellRates   int
	Total       int
}

// Layout returns the restart record layout for the current array sizes.
func (s *WellState) Layout() Layout {
	l := Layout{
		Bhp:         s.RestartBhpOffset(),
		PerfPress:   s.RestartPerfPressOffset(),
		PerfRates:   s.RestartPerfRatesOffset(),
		Temperature: s.RestartTemperatureOffset(),
		WellRates:   s.RestartWellRatesOffset(),
	}
	l.Total = l.WellRates + len(s.WellRates)
	return l
}

// RestartBhpOffset returns the element offset of the bhp block.
func (s *WellState) RestartBhpOffset() int {
	return 0
}

// RestartPerfPressOffset returns the element offset of the perfPress block.
func (s *WellState) RestartPerfPressOffset() int {
	return len(s.Bhp)
}

// RestartPerfRatesOffset returns the element offset of the perfRates block.
func (s *WellState) RestartPerfRatesOffset() int {
	return s.RestartPerfPressOffset() + len(s.PerfPress)
}

// RestartTemperatureOffset returns the element offset of the temperature block.
func (s *WellState) RestartTemperatureOffset() int {
	return s.RestartPerfRatesOffset() + len(s.PerfRates)
}

// RestartWellRatesOffset returns the element offset of the wellRates block.
func (s *WellState) RestartWellRatesOffset() int {
	return s.RestartTemperatureOffset() + len(s.Temperature)
}
