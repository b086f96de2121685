package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFeatures разбирает строку признаков вида "0.1, 0.2,0.3".
//
// Токены, не разбирающиеся как число, молча отбрасываются:
// "0.1,x,0.3" даёт [0.1 0.3] без пер-токенной диагностики.
// ErrInvalidInput возвращается только когда не осталось ни одного
// значения. Менять эту леность нельзя без смены наблюдаемого
// поведения CLI.
func ParseFeatures(s string) ([]float64, error) {
	var features []float64
	for _, token := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			continue
		}
		features = append(features, v)
	}

	if len(features) == 0 {
		return nil, fmt.Errorf("%w: no numeric values in %q", ErrInvalidInput, s)
	}
	return features, nil
}
