package util

func MinInt(val0 int, vals ...int) int {
	min := val0
	for _, v := range vals {
		if v < min {
			min = v
		}
	}
	return min
}
