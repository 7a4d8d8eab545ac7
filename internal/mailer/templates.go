package mailer

import (
	"fmt"
	"strings"

	"github.com/immoralia/process-catalog/internal/pricing"
	"github.com/immoralia/process-catalog/internal/types"
)

// escapeHTML neutralizes user-supplied text before interpolation into email
// HTML. Every visitor-controlled field goes through this.
func escapeHTML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return r.Replace(s)
}

// ContactData is everything the contact email pair interpolates.
type ContactData struct {
	Request *types.ContactRequest
	Price   *pricing.Result
}

func priceLine(price *pricing.Result) string {
	if price == nil {
		return "Presupuesto personalizado"
	}
	if price.IsCustom {
		return price.PackName
	}
	return fmt.Sprintf("%s (%d€/mes)", price.PackName, price.Price)
}

// BusinessContactEmail builds the internal notification for a new contact
// request.
func BusinessContactEmail(from, to string, data *ContactData) *Message {
	req := data.Request

	var b strings.Builder
	b.WriteString("<h2>Nueva solicitud de contacto</h2>")
	fmt.Fprintf(&b, "<p><strong>Nombre:</strong> %s</p>", escapeHTML(req.Nombre))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", escapeHTML(req.Email))
	fmt.Fprintf(&b, "<p><strong>Empresa:</strong> %s</p>", escapeHTML(req.Empresa))
	if req.Comentario != "" {
		fmt.Fprintf(&b, "<p><strong>Comentario:</strong> %s</p>", escapeHTML(req.Comentario))
	}
	fmt.Fprintf(&b, "<p><strong>Precio estimado:</strong> %s</p>", escapeHTML(priceLine(data.Price)))
	b.WriteString("<h3>Procesos seleccionados</h3><ul>")
	for _, p := range req.SelectedProcesses {
		fmt.Fprintf(&b, "<li><strong>%s · %s</strong> (%s)<br/>%s</li>",
			escapeHTML(p.Codigo), escapeHTML(p.Nombre), escapeHTML(p.CategoriaNombre), escapeHTML(p.Tagline))
	}
	b.WriteString("</ul>")

	return &Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Nueva solicitud de %s (%s)", req.Nombre, req.Empresa),
		HTML:    b.String(),
		ReplyTo: req.Email,
	}
}

// ClientContactEmail builds the confirmation sent back to the visitor.
func ClientContactEmail(from string, data *ContactData) *Message {
	req := data.Request

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>¡Gracias por tu solicitud, %s!</h2>", escapeHTML(req.Nombre))
	b.WriteString("<p>Hemos recibido tu selección de procesos y te contactaremos en menos de 24 horas laborables.</p>")
	b.WriteString("<h3>Tu selección</h3><ul>")
	for _, p := range req.SelectedProcesses {
		fmt.Fprintf(&b, "<li>%s</li>", escapeHTML(p.Nombre))
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p><strong>Estimación:</strong> %s</p>", escapeHTML(priceLine(data.Price)))
	b.WriteString("<p>Un saludo,<br/>El equipo de Immoralia</p>")

	return &Message{
		From:    from,
		To:      []string{req.Email},
		Subject: "Hemos recibido tu solicitud",
		HTML:    b.String(),
	}
}

// LeadNotificationEmail builds the internal notification for a completed
// questionnaire.
func LeadNotificationEmail(from, to string, lead *types.LeadRequest) *Message {
	var b strings.Builder
	b.WriteString("<h2>Nuevo lead del cuestionario</h2>")
	fmt.Fprintf(&b, "<p><strong>Nombre:</strong> %s</p>", escapeHTML(lead.Nombre))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", escapeHTML(lead.Email))
	if lead.Telefono != "" {
		fmt.Fprintf(&b, "<p><strong>Teléfono:</strong> %s</p>", escapeHTML(lead.Telefono))
	}
	fmt.Fprintf(&b, "<p><strong>Sector:</strong> %s</p>", escapeHTML(answerString(lead.Answers, "sector")))
	fmt.Fprintf(&b, "<p><strong>Herramientas:</strong> %s</p>", escapeHTML(formatTools(lead.Answers)))
	fmt.Fprintf(&b, "<p><strong>Canales:</strong> %s</p>", escapeHTML(formatChannels(lead.Answers)))
	fmt.Fprintf(&b, "<p><strong>Madurez digital:</strong> %s</p>", escapeHTML(answerString(lead.Answers, "maturity")))
	fmt.Fprintf(&b, "<p><strong>Dolores:</strong> %s</p>", escapeHTML(strings.Join(answerList(lead.Answers, "pains"), ", ")))

	return &Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Nuevo lead: %s", lead.Nombre),
		HTML:    b.String(),
		ReplyTo: lead.Email,
	}
}

const otherMarker = "Otro"

// formatTools renders the tool list, resolving "Categoría: Otro" entries to
// the visitor's free-text answer under "other_<Categoría>".
func formatTools(answers map[string]any) string {
	tools := answerList(answers, "tools")
	if len(tools) == 0 {
		return "No indicado"
	}

	out := make([]string, 0, len(tools))
	for _, tool := range tools {
		category, suffix, found := strings.Cut(tool, ": ")
		if found && suffix == otherMarker {
			if custom := answerString(answers, "other_"+category); custom != "" {
				out = append(out, category+": "+custom)
				continue
			}
		}
		out = append(out, tool)
	}
	return strings.Join(out, ", ")
}

// formatChannels renders client and internal channels, resolving the "Otro"
// placeholder to the matching free-text answer.
func formatChannels(answers map[string]any) string {
	channels, _ := answers["channels"].(map[string]any)

	resolve := func(key, otherKey string) string {
		list := anyList(channels[key])
		for i, item := range list {
			if item == otherMarker {
				if custom := answerString(answers, otherKey); custom != "" {
					list[i] = custom
				}
			}
		}
		if len(list) == 0 {
			return "No indicado"
		}
		return strings.Join(list, ", ")
	}

	return fmt.Sprintf("Clientes: %s | Internos: %s",
		resolve("clients", "otherClientChannel"),
		resolve("internal", "otherInternalChannel"))
}

func answerString(answers map[string]any, key string) string {
	s, _ := answers[key].(string)
	return s
}

func answerList(answers map[string]any, key string) []string {
	return anyList(answers[key])
}

func anyList(v any) []string {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
