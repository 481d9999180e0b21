package unsplash

import (
	"net/url"
	"strconv"
	"strings"
)

// param — один необязательный параметр строки запроса.
// Пустое value означает, что параметр не передан.
type param struct {
	name  string
	value string
}

func text[T ~string](name string, v T) param {
	return param{name: name, value: string(v)}
}

func number(name string, v int) param {
	if v == 0 {
		return param{name: name}
	}
	return param{name: name, value: strconv.Itoa(v)}
}

func boolean(name string, v bool) param {
	if !v {
		return param{name: name}
	}
	return param{name: name, value: "true"}
}

func list(name string, v []string) param {
	items := make([]string, 0, len(v))
	for _, item := range v {
		if item != "" {
			items = append(items, item)
		}
	}
	return param{name: name, value: strings.Join(items, ",")}
}

// encodeQuery собирает строку запроса в порядке перечисления параметров,
// пропуская отсутствующие.
func encodeQuery(params ...param) string {
	var b strings.Builder
	for _, p := range params {
		if p.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeQuery(p.name))
		b.WriteByte('=')
		b.WriteString(escapeQuery(p.value))
	}
	return b.String()
}

// Запятая в списках остаётся как есть: ids=a,b.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2C", ",")
}
