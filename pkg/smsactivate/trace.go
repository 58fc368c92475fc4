package smsactivate

import (
	"strconv"
	"strings"
)

const redactedAPIKey = "***"

var traceEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r", `\r`,
	"\n", `\n`,
	"\t", `\t`,
)

// formatTrace renders a request and its response as one log line:
//
//	query {action:"getBalance", api_key:"***"} response {status:"200", text:"ACCESS_BALANCE:10.00"}
func formatTrace(q *Query, statusCode int, body string) string {
	var b strings.Builder

	b.WriteString("query {")
	for i, p := range q.params {
		value := p.value
		if p.key == ParamAPIKey {
			value = redactedAPIKey
		}
		writeTraceField(&b, i, string(p.key), value)
	}

	b.WriteString("} response {")
	writeTraceField(&b, 0, "status", strconv.Itoa(statusCode))
	writeTraceField(&b, 1, "text", body)
	b.WriteString("}")

	return b.String()
}

func writeTraceField(b *strings.Builder, i int, key, value string) {
	if i > 0 {
		b.WriteString(", ")
	}
	b.WriteString(key)
	b.WriteString(`:"`)
	b.WriteString(traceEscaper.Replace(value))
	b.WriteString(`"`)
}
