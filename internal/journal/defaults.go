package journal

// Seed catalogs for a fresh dataset. Both lists are user-editable at
// runtime; removing an entry never invalidates events that reference it.

// DefaultSmokeTypes returns the initial substance-type catalog.
func DefaultSmokeTypes() []string {
	return []string{
		"Cigarro",
		"Meio charuto",
		"Charuto inteiro",
		"Cigarrilha / Purito",
		"Tabaco",
		"Pod",
		"Chiclete de nicotina",
	}
}

// DefaultActivities returns the initial activity catalog.
func DefaultActivities() []string {
	return []string{
		"Estudando",
		"Aula",
		"Reunião Velt",
		"Reunião Trabalho",
		"Trabalhando",
		"Jogando LoL",
		"Bar",
		"Festa",
		"Social com amigos",
	}
}
