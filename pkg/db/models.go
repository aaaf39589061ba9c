package db

// Staff represents a stored roster entry
type Staff struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	ContractedHours float64 `yaml:"contractedHours"`
}
