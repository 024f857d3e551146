package entity

// MaxInterests is the largest number of topics a user may select.
const MaxInterests = 5

// InterestSelection is the ordered set of topics chosen by the user.
type InterestSelection []string

// Empty reports whether no topic is selected.
func (s InterestSelection) Empty() bool {
	return len(s) == 0
}

// Contains reports whether topic is part of the selection.
func (s InterestSelection) Contains(topic string) bool {
	for _, t := range s {
		if t == topic {
			return true
		}
	}
	return false
}
