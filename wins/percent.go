package wins

import "fmt"

// CalculatePercentage returns number as a percentage of total, or 0 when
// total is 0. No rounding or range checking is done.
func CalculatePercentage(number, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(number) * 100 / float64(total)
}

// Percentage pairs a count with the total it is measured against.
type Percentage struct {
	Number int `json:"number"`
	Total  int `json:"total"`
}

// NewPercentage creates a Percentage.
func NewPercentage(number, total int) Percentage {
	return Percentage{Number: number, Total: total}
}

// Calculate returns the percentage value.
func (p Percentage) Calculate() float64 {
	return CalculatePercentage(p.Number, p.Total)
}

func (p Percentage) String() string {
	return fmt.Sprintf("%.2f%%", p.Calculate())
}
