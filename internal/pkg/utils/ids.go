package utils

import (
	"sort"
	"strconv"
	"strings"
)

// ParseIDList разбирает список идентификаторов через запятую ("1, 2,3").
// Пустые элементы пропускаются, дубликаты удаляются, порядок - по возрастанию.
func ParseIDList(s string) ([]int64, bool) {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, false
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, true
}
