// Package catalog holds the static catalog of automation process offerings.
// The catalog is defined at compile time and is read-only at runtime; process
// identity (id/slug) never changes once defined.
package catalog

// Domain identifies an integration domain a process touches. The complexity
// engine uses these to decide which platform delta applies.
type Domain string

const (
	DomainERP   Domain = "ERP"
	DomainCRM   Domain = "CRM"
	DomainComms Domain = "Comms"
	DomainDocs  Domain = "Docs"
	DomainOther Domain = "Other"
)

// Process is a single catalog-listed automation offering.
//
// The Sectores/Herramientas/Canales/Madurez/Dolores lists exist only for
// recommendation matching; they are never rendered to visitors.
type Process struct {
	ID              string   `json:"id"`
	Codigo          string   `json:"codigo"`
	Slug            string   `json:"slug"`
	Categoria       string   `json:"categoria"`
	CategoriaNombre string   `json:"categoriaNombre"`
	Nombre          string   `json:"nombre"`
	Tagline         string   `json:"tagline"`
	Recomendado     bool     `json:"recomendado"`
	Descripcion     string   `json:"descripcionDetallada"`
	Pasos           []string `json:"pasos"`
	Personalizacion string   `json:"personalizacion"`

	Sectores     []string `json:"-"`
	Herramientas []string `json:"-"`
	Canales      []string `json:"-"`
	Madurez      []string `json:"-"`
	Dolores      []string `json:"-"`

	IntegrationDomains []Domain `json:"-"`

	// Complejidad is the declared implementation-complexity tier
	// ("Baja", "Media", "Alta" or "N/A"). Empty means unspecified.
	Complejidad string `json:"-"`
}

// Category groups processes for filtering. Pure grouping key, no lifecycle.
type Category struct {
	ID     string `json:"id"`
	Nombre string `json:"name"`
}

var (
	byID   map[string]*Process
	bySlug map[string]*Process
)

func init() {
	byID = make(map[string]*Process, len(processes))
	bySlug = make(map[string]*Process, len(processes))
	for i := range processes {
		p := &processes[i]
		byID[p.ID] = p
		bySlug[p.Slug] = p
	}
}

// All returns every process in catalog-definition order. Callers must treat
// the returned slice as read-only.
func All() []Process {
	return processes
}

// Categories returns the filter categories in display order.
func Categories() []Category {
	return categories
}

// ByID looks up a process by identifier.
func ByID(id string) (*Process, bool) {
	p, ok := byID[id]
	return p, ok
}

// BySlug looks up a process by its URL-safe key.
func BySlug(slug string) (*Process, bool) {
	p, ok := bySlug[slug]
	return p, ok
}

// Exists reports whether id identifies a catalog process.
func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}

// ByCategory returns the processes whose category code matches, in
// catalog-definition order.
func ByCategory(categoria string) []Process {
	var out []Process
	for _, p := range processes {
		if p.Categoria == categoria {
			out = append(out, p)
		}
	}
	return out
}
