package findings

// Category groups findings for reporting.
type Category string

const (
	CategoryDuplicates       Category = "duplicates"
	CategoryScrambledNames   Category = "scrambled_names"
	CategoryWrongIdentifiers Category = "wrong_identifiers"
	CategoryWrongNames       Category = "wrong_names"
	CategoryWrongWorkplaces  Category = "wrong_workplaces"
	CategoryNotFound         Category = "not_found"
)

// Categories returns every category in report order.
func Categories() []Category {
	return []Category{
		CategoryDuplicates,
		CategoryScrambledNames,
		CategoryWrongIdentifiers,
		CategoryWrongNames,
		CategoryWrongWorkplaces,
		CategoryNotFound,
	}
}

// Title returns the human-readable category title.
func (c Category) Title() string {
	switch c {
	case CategoryDuplicates:
		return "Duplicate Records"
	case CategoryScrambledNames:
		return "Scrambled Names"
	case CategoryWrongIdentifiers:
		return "Wrong Identifiers"
	case CategoryWrongNames:
		return "Wrong Names"
	case CategoryWrongWorkplaces:
		return "Wrong Workplaces"
	case CategoryNotFound:
		return "Persons Not Found"
	default:
		return string(c)
	}
}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
