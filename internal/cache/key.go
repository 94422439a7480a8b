// Package cache запоминает результаты анализа соответствия вакансии и навыков,
// чтобы не повторять дорогой вызов сервиса анализа для одинаковых запросов.
package cache

import (
	"slices"
	"strings"
)

// Key строит ключ кэша из позиции и набора навыков.
//
// Навыки сортируются и склеиваются через запятую, поэтому порядок навыков на ключ
// не влияет. Повторы навыков схлопываются: навыки — это множество.
// Разделители внутри позиции и навыков экранируются обратной косой чертой,
// поэтому разные запросы не дают одинаковый ключ.
func Key(position string, skills []string) string {
	sorted := slices.Clone(skills)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var b strings.Builder
	b.WriteString(keyEscaper.Replace(position))
	b.WriteByte('_')
	for _, s := range sorted {
		b.WriteString(keyEscaper.Replace(s))
		b.WriteByte(',')
	}
	return b.String()
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, "_", `\_`, ",", `\,`)
