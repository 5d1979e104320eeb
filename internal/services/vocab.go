package services

// VocabTable maps a short numeric option code to its human-readable label.
type VocabTable map[string]string

// Lookup resolves a normalized input against the table. A miss is a normal
// user-input outcome, not an error: the dispatcher turns it into a re-prompt.
func (t VocabTable) Lookup(input string) (string, bool) {
	label, ok := t[input]
	return label, ok
}

// Static answer vocabularies, one per menu question.
var (
	PropertyTypes = VocabTable{
		"1": "casa",
		"2": "departamento",
		"3": "local comercial",
		"4": "local industrial",
		"5": "otro",
	}

	Areas = VocabTable{
		"1": "0-50 m²",
		"2": "51-100 m²",
		"3": "101-200 m²",
		"4": "más de 200 m²",
	}

	Services = VocabTable{
		"1": "desinsectación integral",
		"2": "fumigación de mercaderías",
		"3": "control y monitoreo de roedores",
		"4": "desinfección de ambientes",
		"5": "limpieza de cisterna/reservorios",
		"6": "limpieza de pozos sépticos",
		"7": "mantenimiento de trampas de grasa",
		"8": "otro servicio",
	}

	ServiceTypes = VocabTable{
		"1": "preventivo",
		"2": "correctivo",
	}

	ContactOptions = VocabTable{
		"1": "sí, por favor",
		"2": "no, gracias",
	}
)
