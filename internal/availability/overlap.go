package availability

import "github.com/Freeeeeet/fitness_club/internal/model"

// Overlaps проверяет пересечение двух интервалов.
// Интервалы пересекаются, если начало одного лежит внутри другого
// либо b строго охватывает a. Касание границ пересечением не считается.
func Overlaps(a, b model.TimeInterval) bool {
	return (a.Start <= b.Start && b.Start < a.End) ||
		(b.Start <= a.Start && a.Start < b.End) ||
		(b.Start < a.Start && b.End > a.End)
}

// Contains проверяет, что интервал iv целиком лежит внутри окна w
func Contains(w, iv model.TimeInterval) bool {
	return w.Start <= iv.Start && w.End >= iv.End
}

// CountOverlaps количество интервалов из existing, пересекающихся с iv
func CountOverlaps(existing []model.TimeInterval, iv model.TimeInterval) int {
	count := 0
	for _, e := range existing {
		if Overlaps(iv, e) {
			count++
		}
	}
	return count
}

func anyContains(windows []model.TimeInterval, iv model.TimeInterval) bool {
	for _, w := range windows {
		if Contains(w, iv) {
			return true
		}
	}
	return false
}
