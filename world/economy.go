package world

// Debit takes n chips if the balance covers them. The balance never goes
// negative.
func (s *State) Debit(n int) bool {
	if n < 0 || s.Chips < n {
		return false
	}
	s.Chips -= n
	return true
}

// Credit adds n chips. Non-positive amounts are ignored.
func (s *State) Credit(n int) {
	if n <= 0 {
		return
	}
	s.Chips += n
}

func (s *State) CanAfford(n int) bool {
	return n >= 0 && s.Chips >= n
}
