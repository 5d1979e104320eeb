package services

// Outbound prompt texts, kept verbatim from the production bot so WhatsApp
// renders the exact same conversation.

const (
	promptWelcome = "👋 ¡Buenos días/tardes/noches!\n\n" +
		"Bienvenido/a a Econtrol Saneamiento Ambiental.\n\n" +
		"¿Podría indicarme su nombre completo?"

	promptName = "¿Podría indicarme su nombre completo?"

	promptDistrict = "📍 ¿En qué distrito se encuentra ubicado/a?"

	menuPropertyType = "🏡 ¿Qué tipo de local es?\n\n" +
		"1. Casa\n2. Departamento\n3. Local Comercial\n4. Local Industrial\n5. Otro"

	menuArea = "📐 ¿Cuántos metros cuadrados tiene su inmueble?\n\n" +
		"1. 0-50 m²\n2. 51-100 m²\n3. 101-200 m²\n4. Más de 200 m²"

	menuService = "⚙️ ¿Qué servicio necesita?\n\n" +
		"1. Desinsectación Integral\n2. Fumigación de mercaderías\n" +
		"3. Control y Monitoreo de Roedores\n4. Desinfección de ambientes\n" +
		"5. Limpieza de Cisterna/Reservorios\n6. Limpieza de Pozos Sépticos\n" +
		"7. Mantenimiento de Trampas de Grasa\n8. Otro servicio"

	menuServiceType = "⚠️ ¿El servicio es Preventivo o Correctivo?\n\n" +
		"1. Preventivo (mantenimiento regular)\n2. Correctivo (solución a problema existente)"

	menuContact = "📞 ¿Desea que un asesor le contacte?\n\n1. Sí, por favor\n2. No, gracias"

	errPrefix = "❌ Por favor, seleccione una opción válida:\n\n"

	rejectPropertyType = errPrefix +
		"1. Casa\n2. Departamento\n3. Local Comercial\n4. Local Industrial\n5. Otro"

	rejectArea = errPrefix +
		"1. 0-50 m²\n2. 51-100 m²\n3. 101-200 m²\n4. Más de 200 m²"

	rejectService = "❌ Por favor, seleccione una opción válida."

	rejectServiceType = "❌ Por favor, responda con:\n\n1. Preventivo\n2. Correctivo"

	rejectContact = "❌ Por favor, responda con:\n\n1. Sí, por favor\n2. No, gracias"

	msgThanks = "✅ ¡Gracias por su solicitud!\n\n" +
		"Nos pondremos en contacto en el menor tiempo posible."

	msgSinkError = "⚠️ Hubo un error guardando sus datos. Por favor, inténtelo más tarde."
)
