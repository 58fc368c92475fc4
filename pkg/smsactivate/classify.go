package smsactivate

import "strings"

const fieldSeparator = ":"

// splitFields splits a text response into its colon separated fields. An
// empty body yields no fields.
func splitFields(body string) []string {
	body = strings.TrimRight(body, "\r\n")
	if body == "" {
		return nil
	}

	return strings.Split(body, fieldSeparator)
}

// CheckResponse validates the fields of a text response against the expected
// success marker. A marker ending in "_" is matched as a prefix, any other
// marker must equal the status code. An empty successCode accepts any
// non-empty response. noSMSCode, when set, is reported as ErrNoSMS before the
// known provider tokens are consulted.
func CheckResponse(fields []string, successCode, noSMSCode string) ([]string, error) {
	if len(fields) == 0 {
		return nil, &ProviderError{Kind: ErrEmptyResponse}
	}

	if successCode == "" || isSuccess(fields[0], successCode) {
		return fields, nil
	}

	return nil, classifyFailure(fields, noSMSCode)
}

func isSuccess(code, successCode string) bool {
	if strings.HasSuffix(successCode, "_") {
		return strings.HasPrefix(code, successCode)
	}

	return code == successCode
}

func classifyFailure(fields []string, noSMSCode string) error {
	code := fields[0]
	if noSMSCode != "" && code == noSMSCode {
		return &ProviderError{Kind: ErrNoSMS, Code: code, Fields: fields}
	}

	return &ProviderError{Kind: MapCodeToError(code), Code: code, Fields: fields}
}
