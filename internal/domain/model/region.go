// Package model defines the core domain entities for the rate service.
package model

import (
	"errors"
	"strings"
)

// ErrInvalidDestination is returned when the destination region is empty or blank.
var ErrInvalidDestination = errors.New("destination region is empty")

// RegionKey is the canonical uppercase identifier of a destination province.
// Tariff lookups are keyed by RegionKey only; all input normalization happens
// in ResolveRegion.
type RegionKey string

// String returns the string representation.
func (k RegionKey) String() string {
	return string(k)
}

// provinceAliases maps the two-letter province code to the full province name.
// Built once at init and never mutated afterwards.
var provinceAliases = map[string]RegionKey{
	"AG": "AGRIGENTO", "AL": "ALESSANDRIA", "AN": "ANCONA", "AO": "AOSTA", "AR": "AREZZO",
	"AT": "ASTI", "AV": "AVELLINO", "BA": "BARI", "BG": "BERGAMO", "BI": "BIELLA",
	"BL": "BELLUNO", "BN": "BENEVENTO", "BO": "BOLOGNA", "BR": "BRINDISI", "BS": "BRESCIA",
	"BT": "BARLETTA-ANDRIA-TRANI", "BZ": "BOLZANO", "CA": "CAGLIARI", "CB": "CAMPOBASSO",
	"CE": "CASERTA", "CH": "CHIETI", "CI": "CARBONIA-IGLESIAS", "CN": "CUNEO", "CO": "COMO",
	"CR": "CREMONA", "CS": "COSENZA", "CT": "CATANIA", "CZ": "CATANZARO", "EN": "ENNA",
	"FC": "FORLÌ-CESENA", "FE": "FERRARA", "FG": "FOGGIA", "FI": "FIRENZE", "FR": "FROSINONE",
	"GE": "GENOVA", "GO": "GORIZIA", "GR": "GROSSETO", "IM": "IMPERIA", "IS": "ISERNIA",
	"KR": "CROTONE", "LC": "LECCO", "LE": "LECCE", "LI": "LIVORNO", "LO": "LODI",
	"LT": "LATINA", "LU": "LUCCA", "MB": "MONZA BRIANZA", "MC": "MACERATA", "ME": "MESSINA",
	"MI": "MILANO", "MN": "MANTOVA", "MO": "MODENA", "MS": "MASSA CARRARA", "MT": "MATERA",
	"NA": "NAPOLI", "NO": "NOVARA", "NP": "NORTHERN PROVINCE", "NU": "NUORO", "OR": "ORISTANO",
	"PA": "PALERMO", "PC": "PIACENZA", "PD": "PADOVA", "PE": "PESCARA", "PG": "PERUGIA",
	"PI": "PISA", "PN": "PORDENONE", "PO": "POZZUOLI", "PR": "PARMA", "PT": "PISTOIA",
	"PU": "PESARO URBINO", "PV": "PAVIA", "PZ": "POTENZA", "RA": "RAVENNA", "RC": "REGGIO CALABRIA",
	"RE": "REGGIO EMILIA", "RG": "RAGUSA", "RI": "RIETI", "RM": "ROMA", "RN": "RIMINI",
	"RO": "ROVIGO", "SA": "SALERNO", "SI": "SIENA", "SO": "SONDRIO", "SP": "LA SPEZIA",
	"SR": "SIRACUSA", "SS": "SASSARI", "SV": "ALESSANDRIA", "TA": "TARANTO", "TE": "TERAMO",
	"TN": "TRENTO", "TO": "TORINO", "TP": "TRAPANI", "TR": "TERNI", "TS": "TRIESTE",
	"TV": "TREVISO", "UD": "UDINE", "VA": "VARESE", "VB": "VERBANIA", "VC": "VERCELLI",
	"VE": "VENEZIA", "VI": "VICENZA", "VR": "VERONA", "VT": "VITERBO",
}

// ResolveRegion normalizes a free-form destination string into a RegionKey.
//
// The input is trimmed and uppercased. A two-letter province code is expanded
// through the alias table; anything else is treated as a full province name
// and passed through uppercased. Unknown names are not rejected here: a region
// that has no tariff entries surfaces later as a region-not-found error, which
// carries both the raw and the resolved name for diagnosability.
func ResolveRegion(raw string) (RegionKey, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidDestination
	}
	upper := strings.ToUpper(trimmed)
	if full, ok := provinceAliases[upper]; ok {
		return full, nil
	}
	return RegionKey(upper), nil
}

// KnownProvinceCodes returns the number of province codes in the alias table.
// Exposed for the tariffs summary endpoint.
func KnownProvinceCodes() int {
	return len(provinceAliases)
}
