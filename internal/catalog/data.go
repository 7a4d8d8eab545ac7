package catalog

var categories = []Category{
	{ID: "A", Nombre: "Facturas y Gastos"},
	{ID: "B", Nombre: "Horarios y Proyectos"},
	{ID: "C", Nombre: "Finanzas y Tesorería"},
	{ID: "D", Nombre: "Internos Agencias"},
	{ID: "F", Nombre: "IA y Asistentes"},
}

var processes = []Process{
	{
		ID:              "A1",
		Codigo:          "A1",
		Slug:            "facturas-automatizadas",
		Categoria:       "A",
		CategoriaNombre: "Facturas y Gastos",
		Nombre:          "Facturas automatizadas",
		Tagline:         "No pierdas más tiempo calculando fees fijos y variables sobre la inversión.",
		Recomendado:     true,
		Descripcion:     "Desde tu hoja de Servicios → Generamos todas tus facturas automáticamente (proformas o en estado borrador), listas para validar y emitir.",
		Pasos: []string{
			"Leemos fees por cliente, proyectos y periodos desde donde los tengas volcados",
			"Creamos la factura borrador en Holded con líneas, cantidades y periodo, asignada a cada cliente",
			"Enviamos notificación al responsable para validar, emitir y enviar",
		},
		Personalizacion:    "Elige la vía de comunicación que mejor se adapte a tu agencia.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"Holded", "Google Sheets", "Excel"},
		Canales:            []string{"Email", "Slack"},
		Madurez:            []string{"Básico", "Intermedio"},
		Dolores:            []string{"Quiero automatizar presupuestos y respuestas"},
		IntegrationDomains: []Domain{DomainERP, DomainComms},
		Complejidad:        "Media",
	},
	{
		ID:              "A2",
		Codigo:          "A2",
		Slug:            "informe-semanal-facturas-vencidas",
		Categoria:       "A",
		CategoriaNombre: "Facturas y Gastos",
		Nombre:          "Informe semanal de facturas vencidas",
		Tagline:         "Controla cada semana cómo van los impagos.",
		Recomendado:     true,
		Descripcion:     "Cada lunes → recibes un informe con un desglose de las facturas vencidas, quién debe cuánto y desde cuándo.",
		Pasos: []string{
			"Revisamos todas las facturas con estado 'vencida'",
			"Calculamos antigüedad, importe total y asignamos cliente",
			"Generamos un informe automático",
		},
		Personalizacion:    "Decide cuándo recibes el informe y si es por email, Slack o Drive.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales", "Inmobiliaria"},
		Herramientas:       []string{"Holded", "Sage", "Odoo"},
		Canales:            []string{"Email", "Slack"},
		Madurez:            []string{"Básico", "Intermedio", "Avanzado"},
		Dolores:            []string{"No hago seguimiento a las personas interesadas"},
		IntegrationDomains: []Domain{DomainERP},
		Complejidad:        "Baja",
	},
	{
		ID:              "A3",
		Codigo:          "A3",
		Slug:            "presupuestos-automaticos",
		Categoria:       "A",
		CategoriaNombre: "Facturas y Gastos",
		Nombre:          "Presupuestos automáticos",
		Tagline:         "Vuela enviando presupuestos.",
		Recomendado:     false,
		Descripcion:     "Desde un Sheets o cualquier fuente → Creamos presupuestos completos en Holded.",
		Pasos: []string{
			"Leemos tarifas, servicios y cantidades",
			"Creamos el presupuesto con líneas y totales",
			"Notificamos al responsable para envío o revisión",
		},
		Personalizacion:    "Decide si el presupuesto se envía automáticamente al cliente o queda en borrador para que lo revises.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"Holded", "Google Sheets"},
		Canales:            []string{"Email"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{"Quiero automatizar presupuestos y respuestas"},
		IntegrationDomains: []Domain{DomainERP},
		Complejidad:        "Media",
	},
	{
		ID:              "A4",
		Codigo:          "A4",
		Slug:            "seguimiento-presupuestos-enviados",
		Categoria:       "A",
		CategoriaNombre: "Facturas y Gastos",
		Nombre:          "Seguimiento de presupuestos enviados",
		Tagline:         "Controla todos los presupuestos enviados.",
		Recomendado:     false,
		Descripcion:     "Si pasan X días sin respuesta → Aviso a responsables por cualquier vía.",
		Pasos: []string{
			"Revisamos el estado del presupuesto en Holded",
			"Detectamos inactividad",
			"Disparamos alerta o email de seguimiento",
		},
		Personalizacion:    "Elige el canal del aviso y los días sin respuesta.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"Holded"},
		Canales:            []string{"Email", "Slack", "WhatsApp"},
		Madurez:            []string{"Básico", "Intermedio"},
		Dolores:            []string{"No hago seguimiento a las personas interesadas"},
		IntegrationDomains: []Domain{DomainERP, DomainComms},
		Complejidad:        "Baja",
	},
	{
		ID:              "A5",
		Codigo:          "A5",
		Slug:            "recordatorios-de-pagos",
		Categoria:       "A",
		CategoriaNombre: "Facturas y Gastos",
		Nombre:          "Envío de recordatorios de pagos a clientes",
		Tagline:         "Automatiza el ir detrás de quien no ha pagado.",
		Recomendado:     true,
		Descripcion:     "Envía recordatorios de pago a los clientes que tienen facturas vencidas según hayan pasado 5/10/15 días.",
		Pasos: []string{
			"Identificación de facturas vencidas según días de atraso",
			"Generación del mensaje con plantilla dinámica",
			"Envío automático al correo del cliente",
		},
		Personalizacion:    "Elige tono del mensaje (amable, neutro, firme) y excepciones por cliente.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales", "Gimnasio/yoga", "Clínica"},
		Herramientas:       []string{"Holded", "QuickBooks"},
		Canales:            []string{"Email", "WhatsApp"},
		Madurez:            []string{"Básico", "Intermedio", "Avanzado"},
		Dolores:            []string{"Tardamos en responder y perdemos clientes", "No hago seguimiento a las personas interesadas"},
		IntegrationDomains: []Domain{DomainERP, DomainComms},
		Complejidad:        "Media",
	},
	{
		ID:              "B6",
		Codigo:          "B6",
		Slug:            "informe-incidencias-horarios",
		Categoria:       "B",
		CategoriaNombre: "Horarios y Proyectos",
		Nombre:          "Informe de análisis e incidencias en horarios",
		Tagline:         "Ahorra tiempo analizando los datos para controlar a tus equipos.",
		Recomendado:     true,
		Descripcion:     "Cada semana → Recibes un reporte con fichajes incompletos, duplicados, días sin fichaje sin ausencia relacionada, cálculo del riesgo de burnout por exceso sostenido de horas extra, etc.",
		Pasos: []string{
			"Leemos los registros diarios de horas",
			"Detectamos anomalías (faltantes, duplicados, exceso)",
			"Generamos alerta al manager",
		},
		Personalizacion:    "Elige qué tipo de alertas quieres recibir y cada cuánto.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"ClickUp", "Excel", "Google Sheets"},
		Canales:            []string{"Slack", "Teams", "Email"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{"Quiero ordenar tareas y que se asignen solas"},
		IntegrationDomains: []Domain{DomainOther},
		Complejidad:        "Media",
	},
	{
		ID:              "B7",
		Codigo:          "B7",
		Slug:            "informe-horas-vs-estimadas",
		Categoria:       "B",
		CategoriaNombre: "Horarios y Proyectos",
		Nombre:          "Informe mensual de horas vs estimadas por proyecto",
		Tagline:         "Controla los desvíos de horas de cada proyecto.",
		Recomendado:     true,
		Descripcion:     "Recibe un informe mensual el primer día de cada mes → con horas estimadas, registradas y desviaciones.",
		Pasos: []string{
			"Cruzamos datos de imputación y de planning",
			"Calculamos desviaciones individuales y por proyecto",
			"Generamos un informe detallado",
		},
		Personalizacion:    "Elige formato del informe (PDF, Excel).",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"ClickUp", "Notion", "Asana"},
		Canales:            []string{"Email", "Drive"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{"Quiero ordenar tareas y que se asignen solas"},
		IntegrationDomains: []Domain{DomainDocs},
		Complejidad:        "Media",
	},
	{
		ID:              "B8",
		Codigo:          "B8",
		Slug:            "alertas-exceso-horas",
		Categoria:       "B",
		CategoriaNombre: "Horarios y Proyectos",
		Nombre:          "Alertas por exceso de horas en proyectos",
		Tagline:         "Recibe avisos cuando algún proyecto se dispara en horas.",
		Recomendado:     true,
		Descripcion:     "Si un proyecto supera el umbral (ej. +15%) → Aviso automático a dirección y al Project Manager.",
		Pasos: []string{
			"Calculamos desviación entre horas estimadas vs. horas imputadas",
			"Detectamos el umbral superado",
			"Enviamos notificaciones automáticas",
		},
		Personalizacion:    "Define el porcentaje de exceso que activa la alerta, el mensaje y quién la recibe.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"ClickUp", "Monday"},
		Canales:            []string{"Slack", "Teams"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{"Quiero ordenar tareas y que se asignen solas"},
		IntegrationDomains: []Domain{DomainComms},
		Complejidad:        "Baja",
	},
	{
		ID:              "C9",
		Codigo:          "C9",
		Slug:            "alertas-facturas-compra",
		Categoria:       "C",
		CategoriaNombre: "Finanzas y Tesorería",
		Nombre:          "Alertas de facturas de compra próximas a vencer",
		Tagline:         "Entérate de cuándo van a ir llegando los gastos previstos.",
		Recomendado:     true,
		Descripcion:     "Detectamos facturas a X días de vencimiento → Aviso para que prepares pago y evites sustos de tesorería.",
		Pasos: []string{
			"Leemos facturas de proveedores, importes y fechas",
			"Calculamos los días restantes",
			"Enviamos alertas individuales",
		},
		Personalizacion:    "Decide días de anticipación y por dónde recibir el aviso.",
		Sectores:           []string{"Agencia/marketing", "Retail", "E-commerce"},
		Herramientas:       []string{"Holded", "Sage", "A3"},
		Canales:            []string{"Email", "Slack"},
		Madurez:            []string{"Básico", "Intermedio"},
		Dolores:            []string{"Necesito centralizar la información de clientes"},
		IntegrationDomains: []Domain{DomainERP},
		Complejidad:        "Baja",
	},
	{
		ID:              "C10",
		Codigo:          "C10",
		Slug:            "informes-financieros-direccion",
		Categoria:       "C",
		CategoriaNombre: "Finanzas y Tesorería",
		Nombre:          "Informes financieros para dirección",
		Tagline:         "Claridad financiera directa en tu inbox, cada mes.",
		Recomendado:     true,
		Descripcion:     "Cierre mensual → Informe con facturación, margen, costes.",
		Pasos: []string{
			"Consolidamos datos de ingresos, gastos y estructura",
			"Calculamos KPIs clave",
			"Enviamos informe por correo",
		},
		Personalizacion:    "Elige tu fecha de cierre y tus KPIs.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales", "E-commerce"},
		Herramientas:       []string{"Holded", "Excel", "Google Sheets"},
		Canales:            []string{"Email"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{"Necesito centralizar la información de clientes"},
		IntegrationDomains: []Domain{DomainERP, DomainDocs},
		Complejidad:        "Alta",
	},
	{
		ID:              "C11",
		Codigo:          "C11",
		Slug:            "proyeccion-ingresos",
		Categoria:       "C",
		CategoriaNombre: "Finanzas y Tesorería",
		Nombre:          "Proyección automática de ingresos",
		Tagline:         "Recibe una previsión de ingresos según tu histórico y visión.",
		Recomendado:     false,
		Descripcion:     "Cierre mensual → Informe forecast con proyección de ingresos los próximos meses.",
		Pasos: []string{
			"Analizamos patrones de facturación anteriores",
			"Calculamos escenarios moderados y alcistas",
			"Generamos un forecast en gráfico + tabla",
		},
		Personalizacion:    "Elige entre visión moderada, alcista o pesimista.",
		Sectores:           []string{"Agencia/marketing", "E-commerce"},
		Herramientas:       []string{"Holded", "Excel"},
		Canales:            []string{"Email"},
		Madurez:            []string{"Avanzado"},
		Dolores:            []string{},
		IntegrationDomains: []Domain{DomainERP},
		Complejidad:        "Alta",
	},
	{
		ID:              "C12",
		Codigo:          "C12",
		Slug:            "traspasos-automaticos-iva",
		Categoria:       "C",
		CategoriaNombre: "Finanzas y Tesorería",
		Nombre:          "Traspasos automáticos de IVA",
		Tagline:         "Retira los impuestos a medida que llegan, para evitar sustos de tesorería cada trimestre.",
		Recomendado:     false,
		Descripcion:     "Cada factura recibida → Generamos desglose de IVA → Actualizamos documento con solicitud de traspaso bancario a cuenta de impuestos.",
		Pasos: []string{
			"Calculamos base y cuota de IVA por periodo",
			"Generamos documento oficial de solicitud de traspaso",
			"Notificamos al responsable",
		},
		Personalizacion:    "Elige cuándo se notifica (mensual, trimestral) y vía (email, Slack o Drive).",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"Holded", "Sage"},
		Canales:            []string{"Email", "Slack"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{},
		IntegrationDomains: []Domain{DomainERP, DomainDocs},
		Complejidad:        "Media",
	},
	{
		ID:              "D13",
		Codigo:          "D13",
		Slug:            "registro-automatico-gastos",
		Categoria:       "D",
		CategoriaNombre: "Internos Agencias",
		Nombre:          "Registro automático de gastos",
		Tagline:         "Agiliza la gestión de facturas de gasto al máximo.",
		Recomendado:     true,
		Descripcion:     "Vuelcas factura en carpeta de Drive → Generamos la factura de gasto en Holded.",
		Pasos: []string{
			"Detección automática de facturas de compra volcadas",
			"Envío al Inbox de Holded que las escanea con tecnología OCR",
			"Creación automática del borrador de la factura de compra",
			"Asignación a proveedor",
			"Notificación al responsable para su revisión (opcional)",
		},
		Personalizacion:    "Elige la carpeta de Drive.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales", "Retail"},
		Herramientas:       []string{"Holded", "Drive"},
		Canales:            []string{"Email", "Slack"},
		Madurez:            []string{"Básico", "Intermedio", "Avanzado"},
		Dolores:            []string{"Necesito centralizar la información de clientes"},
		IntegrationDomains: []Domain{DomainERP, DomainDocs},
		Complejidad:        "Media",
	},
	{
		ID:              "D14",
		Codigo:          "D14",
		Slug:            "metas-clickup",
		Categoria:       "D",
		CategoriaNombre: "Internos Agencias",
		Nombre:          "Creación de metas en ClickUp",
		Tagline:         "Saca todo el partido a las metas de ClickUp sin perder tiempo en crearlas a mano.",
		Recomendado:     true,
		Descripcion:     "Desde un documento con objetivos mensuales → Creamos metas en ClickUp, asignadas por cliente y equipo.",
		Pasos: []string{
			"Leemos los objetivos del documento",
			"Creamos metas dinámicas en ClickUp por usuario/equipo",
			"Configuramos seguimiento automático de KPIs",
		},
		Personalizacion:    "Elige colores por cliente/equipo.",
		Sectores:           []string{"Agencia/marketing"},
		Herramientas:       []string{"ClickUp"},
		Canales:            []string{"ClickUp", "Slack"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{"Quiero ordenar tareas y que se asignen solas"},
		IntegrationDomains: []Domain{DomainOther},
		Complejidad:        "Baja",
	},
	{
		ID:              "D15",
		Codigo:          "D15",
		Slug:            "facturacion-horas-freelance",
		Categoria:       "B",
		CategoriaNombre: "Horarios y Proyectos",
		Nombre:          "Facturación automática basada en horas (freelance)",
		Tagline:         "¿Trabajas con distintos freelance a distintos precios por hora?",
		Recomendado:     false,
		Descripcion:     "Te imputa sus horas un freelance → Se crea la factura de gasto y se asocia a proyecto.",
		Pasos: []string{
			"Leemos horas registradas por cada freelance",
			"Multiplicamos por tarifa asociada",
			"Creamos factura de gasto y la asignamos al proyecto/cliente",
		},
		Personalizacion:    "Define tarifas por freelance y si quieres aprobación antes de crear la factura.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"Holded", "ClickUp"},
		Canales:            []string{"Email"},
		Madurez:            []string{"Intermedio", "Avanzado"},
		Dolores:            []string{},
		IntegrationDomains: []Domain{DomainERP},
		Complejidad:        "Media",
	},
	{
		ID:              "D16",
		Codigo:          "D16",
		Slug:            "gestion-retenciones-freelance",
		Categoria:       "B",
		CategoriaNombre: "Horarios y Proyectos",
		Nombre:          "Gestión automática de retenciones (freelance)",
		Tagline:         "Retira las retenciones a medida que llegan, para evitar sustos de tesorería cada trimestre.",
		Recomendado:     false,
		Descripcion:     "Cuando entra una factura de proveedor → Calculamos retención, generamos asiento y la solicitud de traspaso.",
		Pasos: []string{
			"Detectamos facturas sujetas a retención",
			"Calculamos el % correspondiente",
			"Creamos asiento contable y aviso de pago",
		},
		Personalizacion:    "Elige periodicidad del cálculo y cómo quieres recibir el aviso de pago.",
		Sectores:           []string{"Agencia/marketing", "Servicios profesionales"},
		Herramientas:       []string{"Holded", "Sage"},
		Canales:            []string{"Email"},
		Madurez:            []string{"Avanzado"},
		Dolores:            []string{},
		IntegrationDomains: []Domain{DomainERP},
		Complejidad:        "Alta",
	},
	{
		ID:              "F25",
		Codigo:          "F25",
		Slug:            "asistente-ia-personalizado",
		Categoria:       "F",
		CategoriaNombre: "IA y Asistentes",
		Nombre:          "Asistente IA personalizado",
		Tagline:         "Un asistente entrenado con la información de tu negocio, disponible 24/7.",
		Recomendado:     false,
		Descripcion:     "Conectamos un asistente de IA a tus canales y fuentes de datos → responde preguntas repetidas, cualifica solicitudes y deriva al equipo cuando hace falta.",
		Pasos: []string{
			"Conectamos el asistente a tus canales (web, WhatsApp, email)",
			"Lo entrenamos con tu información (precios, horarios, servicios)",
			"Definimos cuándo deriva la conversación a una persona",
		},
		Personalizacion:    "Elige canales, tono y reglas de derivación.",
		Sectores:           []string{"Peluquería/estética", "Gimnasio/yoga", "Clínica", "Restauración", "Retail"},
		Herramientas:       []string{"ChatGPT/otros", "Zapier", "Make", "n8n"},
		Canales:            []string{"WhatsApp", "Web chat", "Instagram DM"},
		Madurez:            []string{"Básico", "Intermedio", "Avanzado"},
		Dolores:            []string{"Me escriben mucho y no doy abasto", "Tengo muchas preguntas repetidas (horarios, precios, ubicación…)"},
		IntegrationDomains: []Domain{DomainOther},
		Complejidad:        "N/A",
	},
}
