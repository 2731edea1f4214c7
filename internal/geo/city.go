package geo

import "strings"

type CityMatch struct {
	City string
	// Degraded - совпадения не нашлось и взят город по умолчанию.
	Degraded bool
}

// ReconcileCity сопоставляет метку обратного геокодинга со списком городов сервиса.
// Порядок: точное совпадение без учета регистра, затем самый длинный город внутри метки,
// затем метка внутри названия города. При равенстве побеждает город, стоящий раньше в списке.
func ReconcileCity(rawLabel string, knownCities []string, defaultCity string) CityMatch {
	label := strings.ToLower(strings.TrimSpace(rawLabel))
	if label == "" {
		return CityMatch{City: defaultCity, Degraded: true}
	}

	for _, city := range knownCities {
		if strings.ToLower(city) == label {
			return CityMatch{City: city}
		}
	}

	best := ""
	for _, city := range knownCities {
		lowered := strings.ToLower(city)
		if lowered == "" || !strings.Contains(label, lowered) {
			continue
		}
		if len(city) > len(best) {
			best = city
		}
	}
	if best != "" {
		return CityMatch{City: best}
	}

	for _, city := range knownCities {
		if strings.Contains(strings.ToLower(city), label) {
			return CityMatch{City: city}
		}
	}

	return CityMatch{City: defaultCity, Degraded: true}
}
