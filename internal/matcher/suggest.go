package matcher

import (
	"github.com/agentstation/rostercheck/pkg/normalize"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Header patterns in priority order. They are matched against normalized
// headers, so they are upper case and free of accents and punctuation.
var (
	IdentifierPatterns = []string{
		"CEDULA", "CI", "DNI", "ID", "IDENTIFIER", "IDENTIFICACION", "DOCUMENTO", "DOCUMENT",
		`^(N|NO|NRO|NUM|NUMERO)( DE)? (CEDULA|DOCUMENTO|CI|DNI)$`,
		"*CEDULA*", "*DNI*", "*DOCUMENTO*", "*IDENTIF*",
		`(^| )(CI|ID)( |$)`,
	}
	NamePatterns = []string{
		"NOMBRE", "NOMBRES", "NAME", "FULL NAME", "NOMBRE COMPLETO",
		"APELLIDOS Y NOMBRES", "NOMBRES Y APELLIDOS",
		"*NOMBRE*", "*NAME*", "FUNCIONARIO", "EMPLEADO", "EMPLOYEE",
	}
	WorkplacePatterns = []string{
		"LUGAR", "LUGAR DE TRABAJO", "WORKPLACE", "SEDE", "OFICINA",
		"*LUGAR*", "*SEDE*", "*WORKPLACE*", "*OFICINA*", "*DEPENDENCIA*",
		"*UNIDAD*", "*LOCATION*", "SITE", "*DEPARTAMENTO*", "*DEPARTMENT*",
	}
)

var (
	identifierMatcher = mustMulti(IdentifierPatterns)
	nameMatcher       = mustMulti(NamePatterns)
	workplaceMatcher  = mustMulti(WorkplacePatterns)
)

func mustMulti(patterns []string) *MultiMatcher {
	mm, err := NewMultiMatcher(patterns)
	if err != nil {
		panic(err)
	}
	return mm
}

// SuggestFields proposes a column mapping for headers. Each header is used
// for at most one field; fields without a plausible header stay empty.
func SuggestFields(headers []string) records.Fields {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalize.Text(h)
	}
	used := make(map[int]bool)
	skip := func(i int) bool { return used[i] || normalized[i] == "" }

	pick := func(mm *MultiMatcher) string {
		i := mm.Best(normalized, skip)
		if i < 0 {
			return ""
		}
		used[i] = true
		return headers[i]
	}

	var f records.Fields
	f.Identifier = pick(identifierMatcher)
	f.Name = pick(nameMatcher)
	f.Workplace = pick(workplaceMatcher)
	return f
}
