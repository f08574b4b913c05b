package models

// All returns every model in migration order (parents before children)
func All() []interface{} {
	return []interface{}{
		&Client{},
		&Case{},
		&Activity{},
		&Hearing{},
		&Document{},
		&FinancialRecord{},
		&Communication{},
	}
}
