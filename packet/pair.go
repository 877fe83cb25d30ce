package packet

// Container for two packets read from the same group
type Pair struct {
	Left  Value
	Right Value
}
