package smsactivate

import (
	"fmt"
	"sort"
)

// isoToProvider maps ISO 3166-1 alpha-2 codes to provider country ids.
var isoToProvider = map[string]string{
	"AE": "95", "AF": "74", "AG": "169", "AI": "181", "AL": "155", "AM": "148",
	"AO": "76", "AR": "39", "AT": "50", "AU": "175", "AW": "179", "AZ": "35",
	"BA": "108", "BB": "118", "BD": "60", "BE": "82", "BF": "152", "BG": "83",
	"BH": "145", "BI": "119", "BJ": "120", "BM": "158", "BN": "121", "BO": "92",
	"BR": "73", "BS": "122", "BW": "123", "BY": "51", "BZ": "124", "CA": "36",
	"CD": "150", "CF": "125", "CG": "18", "CH": "173", "CI": "27", "CL": "151",
	"CM": "41", "CN": "3", "CO": "33", "CR": "93", "CV": "186", "CY": "77",
	"CZ": "63", "DE": "43", "DJ": "168", "DK": "172", "DM": "126", "DO": "109",
	"DZ": "58", "EC": "105", "EE": "34", "EG": "21", "ER": "176", "ES": "56",
	"ET": "71", "FI": "163", "FR": "78", "GA": "154", "GB": "16", "GD": "127",
	"GE": "128", "GF": "162", "GH": "38", "GM": "28", "GN": "68", "GP": "160",
	"GQ": "167", "GR": "129", "GT": "94", "GW": "130", "GY": "131", "HK": "14",
	"HN": "88", "HR": "45", "HT": "26", "HU": "84", "ID": "6", "IE": "23",
	"IL": "13", "IN": "22", "IQ": "47", "IR": "10016", "IS": "132", "IT": "86",
	"JM": "103", "JO": "116", "JP": "182", "KE": "8", "KG": "11", "KH": "24",
	"KM": "133", "KN": "134", "KP": "10350", "KW": "100", "KY": "170", "KZ": "2",
	"LA": "25", "LB": "153", "LC": "164", "LI": "10348", "LK": "64", "LR": "135",
	"LS": "136", "LT": "44", "LU": "165", "LV": "49", "LY": "102", "MA": "37",
	"MC": "144", "MD": "85", "ME": "171", "MG": "17", "MK": "183", "ML": "69",
	"MM": "5", "MN": "72", "MO": "20", "MR": "114", "MS": "180", "MU": "157",
	"MV": "159", "MW": "137", "MX": "54", "MY": "7", "MZ": "80", "NA": "138",
	"NC": "185", "NE": "139", "NG": "19", "NI": "90", "NL": "48", "NO": "174",
	"NP": "81", "NZ": "67", "OM": "107", "PA": "112", "PE": "65", "PG": "79",
	"PH": "4", "PK": "66", "PL": "15", "PR": "97", "PT": "117", "PY": "87",
	"QA": "111", "RE": "146", "RO": "32", "RS": "29", "RU": "0", "RW": "140",
	"SA": "53", "SC": "184", "SE": "46", "SG": "10351", "SI": "59", "SK": "141",
	"SL": "115", "SN": "61", "SO": "149", "SR": "142", "SS": "177", "ST": "178",
	"SV": "101", "SX": "10349", "SZ": "106", "TD": "42", "TG": "99", "TH": "52",
	"TJ": "143", "TL": "91", "TM": "161", "TN": "89", "TO": "10227", "TR": "62",
	"TT": "104", "TW": "55", "TZ": "9", "UA": "1", "UG": "75", "US": "187",
	"UY": "156", "UZ": "40", "VC": "166", "VE": "70", "VN": "10", "WS": "10231",
	"YE": "30", "ZA": "31", "ZM": "147", "ZW": "96",
}

// providerAliases are provider ids accepted on the reverse lookup only.
// "12" is the provider's virtual US pool; "187" is the canonical US id.
var providerAliases = map[string]string{
	"12": "US",
}

var providerToISO = func() map[string]string {
	m := make(map[string]string, len(isoToProvider)+len(providerAliases))
	for iso, code := range isoToProvider {
		m[code] = iso
	}
	for code, iso := range providerAliases {
		m[code] = iso
	}
	return m
}()

// CountryCode returns the provider country id for an ISO 3166-1 alpha-2 code.
func CountryCode(iso string) (string, error) {
	code, ok := isoToProvider[iso]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, iso)
	}
	return code, nil
}

// CountryISO returns the ISO code for a provider country id, or def when the
// id is unknown.
func CountryISO(code, def string) string {
	if iso, ok := providerToISO[code]; ok {
		return iso
	}
	return def
}

// ISOCodes returns the supported ISO codes in ascending order.
func ISOCodes() []string {
	codes := make([]string, 0, len(isoToProvider))
	for iso := range isoToProvider {
		codes = append(codes, iso)
	}
	sort.Strings(codes)
	return codes
}
