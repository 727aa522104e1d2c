// Package gst implements GSTIN validation and GST calculation for Indian
// e-commerce transactions.
package gst

import "strings"

type stateEntry struct {
	code string
	name string
}

// GST state codes as published for GSTIN registration. Codes "28" and "37"
// both map to "Andhra Pradesh" (pre- and post-bifurcation allocations); the
// duplication is intentional and name lookups resolve to "28", the first
// entry in registry order.
var stateRegistry = []stateEntry{
	{"01", "Jammu and Kashmir"},
	{"02", "Himachal Pradesh"},
	{"03", "Punjab"},
	{"04", "Chandigarh"},
	{"05", "Uttarakhand"},
	{"06", "Haryana"},
	{"07", "Delhi"},
	{"08", "Rajasthan"},
	{"09", "Uttar Pradesh"},
	{"10", "Bihar"},
	{"11", "Sikkim"},
	{"12", "Arunachal Pradesh"},
	{"13", "Nagaland"},
	{"14", "Manipur"},
	{"15", "Mizoram"},
	{"16", "Tripura"},
	{"17", "Meghalaya"},
	{"18", "Assam"},
	{"19", "West Bengal"},
	{"20", "Jharkhand"},
	{"21", "Odisha"},
	{"22", "Chhattisgarh"},
	{"23", "Madhya Pradesh"},
	{"24", "Gujarat"},
	{"25", "Daman and Diu"},
	{"26", "Dadra and Nagar Haveli"},
	{"27", "Maharashtra"},
	{"28", "Andhra Pradesh"},
	{"29", "Karnataka"},
	{"30", "Goa"},
	{"31", "Lakshadweep"},
	{"32", "Kerala"},
	{"33", "Tamil Nadu"},
	{"34", "Puducherry"},
	{"35", "Andaman and Nicobar Islands"},
	{"36", "Telangana"},
	{"37", "Andhra Pradesh"},
	{"38", "Ladakh"},
}

var stateByCode = func() map[string]string {
	m := make(map[string]string, len(stateRegistry))
	for _, e := range stateRegistry {
		m[e.code] = e.name
	}
	return m
}()

// StateNameForCode returns the state name for a two-digit GST state code.
func StateNameForCode(code string) (string, bool) {
	name, ok := stateByCode[code]
	return name, ok
}

// StateCodeForName resolves a state name (or a two-digit code passed through)
// to its GST state code. Matching is case-insensitive: exact name first, then
// a substring match in either direction, taking the first registry entry in
// insertion order.
func StateCodeForName(state string) (string, bool) {
	state = strings.TrimSpace(state)
	if state == "" {
		return "", false
	}

	if len(state) == 2 && isDigits(state) {
		if _, ok := stateByCode[state]; ok {
			return state, true
		}
		return "", false
	}

	upper := strings.ToUpper(state)
	for _, e := range stateRegistry {
		if strings.ToUpper(e.name) == upper {
			return e.code, true
		}
	}
	for _, e := range stateRegistry {
		name := strings.ToUpper(e.name)
		if strings.Contains(name, upper) || strings.Contains(upper, name) {
			return e.code, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
